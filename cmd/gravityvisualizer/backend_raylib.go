//go:build raylib

package main

import (
	"github.com/VanDerGroot/gravityvisualizer/internal/config"
	"github.com/VanDerGroot/gravityvisualizer/internal/gui"
	"github.com/VanDerGroot/gravityvisualizer/internal/scene"
)

const windowBackend = config.BackendRaylib

var openWindow scene.Opener = gui.Open

// windowObservers feeds the raylib HUD.
func windowObservers(b scene.Backend) []scene.Observer {
	if app, ok := b.(*gui.App); ok {
		return []scene.Observer{scene.ObserverFunc(app.Observe)}
	}
	return nil
}

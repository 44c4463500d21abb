//go:build !raylib

package main

import (
	"github.com/VanDerGroot/gravityvisualizer/internal/config"
	"github.com/VanDerGroot/gravityvisualizer/internal/glview"
	"github.com/VanDerGroot/gravityvisualizer/internal/scene"
)

// raylib-go bundles its own glfw, so only one window backend is linked.
// Build with -tags raylib to swap glview for the raylib window.
const windowBackend = config.BackendGL

var openWindow scene.Opener = glview.Open

func windowObservers(scene.Backend) []scene.Observer { return nil }

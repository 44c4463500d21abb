package glview

import (
	"math"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/VanDerGroot/gravityvisualizer/internal/scene"
)

func TestFrustum(t *testing.T) {
	l, r, b, top := Frustum(45, 800.0/600.0, 0.1, 50)

	want := 0.1 * math.Tan(22.5*math.Pi/180)
	if math.Abs(top-want) > 1e-12 {
		t.Errorf("expected top %f, got %f", want, top)
	}
	if b != -top || l != -r {
		t.Errorf("expected symmetric frustum, got l=%f r=%f b=%f t=%f", l, r, b, top)
	}
	if math.Abs(r/top-4.0/3.0) > 1e-12 {
		t.Errorf("expected aspect 4:3, got %f", r/top)
	}
}

func TestFrustumNarrowsWithFOV(t *testing.T) {
	_, _, _, wide := Frustum(90, 1, 1, 10)
	_, _, _, narrow := Frustum(30, 1, 1, 10)
	if math.Abs(wide-1) > 1e-12 {
		t.Errorf("expected 90° to give top 1, got %f", wide)
	}
	if narrow >= wide {
		t.Errorf("expected narrower fov to shrink the frustum: %f >= %f", narrow, wide)
	}
}

func TestMouseButton(t *testing.T) {
	tests := []struct {
		in   glfw.MouseButton
		want scene.Button
	}{
		{glfw.MouseButtonLeft, scene.ButtonPrimary},
		{glfw.MouseButtonMiddle, scene.ButtonMiddle},
		{glfw.MouseButtonRight, scene.ButtonSecondary},
	}
	for _, tt := range tests {
		if got := mouseButton(tt.in); got != tt.want {
			t.Errorf("button %v: expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestMoveQueues(t *testing.T) {
	w := &Window{}
	w.onMove(nil, 3, 4)
	w.onKey(nil, glfw.KeyEscape, 0, glfw.Press, 0)

	if len(w.queue) != 2 {
		t.Fatalf("expected 2 queued events, got %d", len(w.queue))
	}
	if w.queue[0] != scene.MoveEvent(3, 4) || w.queue[1].Kind != scene.Quit {
		t.Errorf("unexpected queue %v", w.queue)
	}
}

package gui

import (
	"testing"

	"github.com/VanDerGroot/gravityvisualizer/internal/lens"
	"github.com/VanDerGroot/gravityvisualizer/internal/render"
)

type emitted struct {
	mode  int32
	verts []vertex
}

func capture(s *stripBuffer) []emitted {
	var out []emitted
	s.flush(func(mode int32, verts []vertex) {
		out = append(out, emitted{mode, append([]vertex(nil), verts...)})
	})
	return out
}

func TestLineStripBecomesLines(t *testing.T) {
	var s stripBuffer
	s.begin(render.LineStrip)
	for i := 0; i < 10; i++ {
		s.add(lens.Vec3{X: float64(i)})
	}

	got := capture(&s)
	if len(got) != 1 || got[0].mode != rlLines {
		t.Fatalf("expected one lines batch, got %+v", got)
	}
	if len(got[0].verts) != 18 {
		t.Errorf("expected 9 segments (18 vertices), got %d", len(got[0].verts))
	}
	if got[0].verts[1].pos != got[0].verts[2].pos {
		t.Error("consecutive segments should share an endpoint")
	}
}

func TestQuadStripBecomesQuads(t *testing.T) {
	var s stripBuffer
	s.begin(render.QuadStrip)
	for i := 0; i < 42; i++ {
		s.add(lens.Vec3{X: float64(i)})
	}

	got := capture(&s)
	if len(got) != 1 || got[0].mode != rlQuads {
		t.Fatalf("expected one quads batch, got %+v", got)
	}
	if len(got[0].verts) != 20*4 {
		t.Errorf("expected 20 quads, got %d vertices", len(got[0].verts))
	}
	first := got[0].verts[:4]
	want := []float64{0, 1, 3, 2}
	for i, v := range first {
		if v.pos.X != want[i] {
			t.Errorf("quad vertex %d: expected %f, got %f", i, want[i], v.pos.X)
		}
	}
}

func TestStripKeepsPerVertexColor(t *testing.T) {
	var s stripBuffer
	s.begin(render.LineStrip)
	s.color = render.GridBlue.WithAlpha(0.2)
	s.add(lens.Vec3{})
	s.color = render.GridBlue.WithAlpha(0.9)
	s.add(lens.Vec3{X: 1})

	got := capture(&s)
	if got[0].verts[0].color.A != 0.2 || got[0].verts[1].color.A != 0.9 {
		t.Errorf("unexpected alphas %v", got[0].verts)
	}
}

func TestFlushWithoutBegin(t *testing.T) {
	var s stripBuffer
	s.add(lens.Vec3{X: 1})
	if got := capture(&s); len(got) != 0 {
		t.Errorf("expected nothing emitted, got %+v", got)
	}

	s.begin(render.LineStrip)
	s.add(lens.Vec3{})
	if got := capture(&s); len(got) != 0 {
		t.Errorf("a single vertex has no segment, got %+v", got)
	}
}

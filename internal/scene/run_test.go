package scene_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/VanDerGroot/gravityvisualizer/internal/lens"
	"github.com/VanDerGroot/gravityvisualizer/internal/render"
	"github.com/VanDerGroot/gravityvisualizer/internal/scene"
)

type fakeBackend struct {
	*render.Recorder
	frames   [][]scene.Event
	polls    int
	clears   int
	presents int
}

func (f *fakeBackend) Clear() {
	f.clears++
	f.Recorder.Reset()
}

func (f *fakeBackend) Present() { f.presents++ }

func (f *fakeBackend) PollEvents() []scene.Event {
	defer func() { f.polls++ }()
	if f.polls < len(f.frames) {
		return f.frames[f.polls]
	}
	return []scene.Event{scene.QuitEvent()}
}

var _ = Describe("Scene", func() {
	var (
		sc *scene.Scene
		st scene.State
	)

	BeforeEach(func() {
		l, err := lens.NewLattice(10, 1.0)
		Expect(err).NotTo(HaveOccurred())
		sc = scene.New(l, lens.DefaultParams(1.0), render.DefaultSphere())
		st = scene.NewState(l, 0.1)
	})

	Describe("Draw", func() {
		It("wraps the grid and mass in one rotated scope", func() {
			r := render.NewRecorder()
			sc.Draw(r, st)

			Expect(r.Ops[:3]).To(Equal([]string{"push", "rotate_x", "rotate_y"}))
			Expect(r.Ops[len(r.Ops)-1]).To(Equal("pop"))
			Expect(r.Depth).To(BeZero())
			Expect(r.MaxDepth).To(Equal(2))
			Expect(r.Count(render.LineStrip)).To(Equal(300))
			Expect(r.Count(render.QuadStrip)).To(Equal(20))
		})

		It("draws the grid before the mass", func() {
			r := render.NewRecorder()
			sc.Draw(r, st)

			Expect(r.Batches[299].Mode).To(Equal(render.LineStrip))
			Expect(r.Batches[300].Mode).To(Equal(render.QuadStrip))
		})
	})

	Describe("Run", func() {
		It("renders until quit and returns the last state", func() {
			b := &fakeBackend{
				Recorder: render.NewRecorder(),
				frames:   [][]scene.Event{nil, {scene.PressEvent(scene.ButtonPrimary, 0, 0)}, {scene.MoveEvent(3, 4)}},
			}
			seen := 0
			obs := scene.ObserverFunc(func(scene.State) { seen++ })

			final, err := scene.Run(context.Background(), b, sc, st, 0, obs)

			Expect(err).NotTo(HaveOccurred())
			Expect(final.Phase).To(Equal(scene.Terminated))
			Expect(final.Frame).To(Equal(3))
			Expect(final.Camera).To(Equal(scene.Camera{Pitch: 4, Yaw: 3}))
			Expect(b.clears).To(Equal(3))
			Expect(b.presents).To(Equal(3))
			Expect(seen).To(Equal(3))
		})

		It("stops with a loop error when the context is cancelled", func() {
			b := &fakeBackend{Recorder: render.NewRecorder(), frames: make([][]scene.Event, 1000)}
			ctx, cancel := context.WithCancel(context.Background())
			obs := scene.ObserverFunc(func(s scene.State) {
				if s.Frame == 2 {
					cancel()
				}
			})

			final, err := scene.Run(ctx, b, sc, st, 0, obs)

			Expect(errors.Is(err, context.Canceled)).To(BeTrue())
			var le *scene.LoopError
			Expect(errors.As(err, &le)).To(BeTrue())
			Expect(le.Frame).To(Equal(2))
			Expect(final.Phase).To(Equal(scene.Running))
		})
	})
})

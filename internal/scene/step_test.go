package scene_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/VanDerGroot/gravityvisualizer/internal/lens"
	"github.com/VanDerGroot/gravityvisualizer/internal/scene"
)

var _ = Describe("Animation", func() {
	var st scene.State

	BeforeEach(func() {
		l, err := lens.NewLattice(10, 1.0)
		Expect(err).NotTo(HaveOccurred())
		st = scene.NewState(l, 0.1)
	})

	It("starts at the negative bound moving forward", func() {
		Expect(st.Animation.Offset).To(Equal(-6.0))
		Expect(st.Animation.Bound).To(Equal(6.0))
		Expect(st.Animation.Direction).To(Equal(1.0))
		Expect(st.Phase).To(Equal(scene.Running))
	})

	It("moves one step without turning around", func() {
		st = scene.Step(st, nil)
		Expect(st.Animation.Offset).To(BeNumerically("~", -5.9, 1e-9))
		Expect(st.Animation.Direction).To(Equal(1.0))
	})

	It("reflects once the offset passes the positive bound", func() {
		for st.Animation.Offset <= st.Animation.Bound {
			Expect(st.Animation.Direction).To(Equal(1.0))
			st = scene.Step(st, nil)
		}
		Expect(st.Animation.Direction).To(Equal(-1.0))
		Expect(st.Animation.Offset).To(BeNumerically("<=", st.Animation.Bound+st.Animation.Step+1e-9))

		st = scene.Step(st, nil)
		Expect(st.Animation.Offset).To(BeNumerically("<=", st.Animation.Bound+1e-9))
	})

	It("stays within one step of the bound over many cycles", func() {
		limit := st.Animation.Bound + st.Animation.Step + 1e-9
		for i := 0; i < 2000; i++ {
			st = scene.Step(st, nil)
			Expect(st.Animation.Offset).To(BeNumerically("<=", limit))
			Expect(st.Animation.Offset).To(BeNumerically(">=", -limit))
		}
	})

	It("keeps the mass on the x axis", func() {
		st = scene.Step(st, nil)
		c := st.Center()
		Expect(c.X).To(Equal(st.Animation.Offset))
		Expect(c.Y).To(BeZero())
		Expect(c.Z).To(BeZero())
	})
})

var _ = Describe("Input", func() {
	var st scene.State

	BeforeEach(func() {
		l, _ := lens.NewLattice(10, 1.0)
		st = scene.NewState(l, 0.1)
	})

	It("ignores moves without a drag", func() {
		st = scene.Step(st, []scene.Event{scene.MoveEvent(10, 10), scene.MoveEvent(50, 80)})
		Expect(st.Camera).To(Equal(scene.Camera{}))
	})

	It("accumulates drag deltas into pitch and yaw", func() {
		st = scene.Step(st, []scene.Event{
			scene.PressEvent(scene.ButtonPrimary, 100, 100),
			scene.MoveEvent(110, 95),
			scene.MoveEvent(130, 105),
		})
		Expect(st.Camera.Yaw).To(Equal(30.0))
		Expect(st.Camera.Pitch).To(Equal(5.0))
		Expect(st.Drag.LastX).To(Equal(130.0))
		Expect(st.Drag.LastY).To(Equal(105.0))
	})

	It("keeps the rotation across frames and stops at release", func() {
		st = scene.Step(st, []scene.Event{scene.PressEvent(scene.ButtonPrimary, 0, 0), scene.MoveEvent(4, 2)})
		st = scene.Step(st, []scene.Event{scene.MoveEvent(6, 2), scene.ReleaseEvent(scene.ButtonPrimary, 6, 2)})
		st = scene.Step(st, []scene.Event{scene.MoveEvent(100, 100)})
		Expect(st.Camera).To(Equal(scene.Camera{Pitch: 2, Yaw: 6}))
		Expect(st.Drag.Active).To(BeFalse())
	})

	It("only drags with the primary button", func() {
		st = scene.Step(st, []scene.Event{scene.PressEvent(scene.ButtonSecondary, 0, 0), scene.MoveEvent(20, 20)})
		Expect(st.Drag.Active).To(BeFalse())
		Expect(st.Camera).To(Equal(scene.Camera{}))

		st = scene.Step(st, []scene.Event{scene.PressEvent(scene.ButtonPrimary, 0, 0), scene.ReleaseEvent(scene.ButtonSecondary, 0, 0)})
		Expect(st.Drag.Active).To(BeTrue())
	})

	It("terminates on quit without advancing the mass", func() {
		before := st.Animation
		st = scene.Step(st, []scene.Event{scene.QuitEvent(), scene.PressEvent(scene.ButtonPrimary, 1, 1)})
		Expect(st.Phase).To(Equal(scene.Terminated))
		Expect(st.Animation).To(Equal(before))
		Expect(st.Drag.Active).To(BeFalse())
	})

	It("leaves a terminated state untouched", func() {
		st = scene.Step(st, []scene.Event{scene.QuitEvent()})
		again := scene.Step(st, []scene.Event{scene.PressEvent(scene.ButtonPrimary, 0, 0)})
		Expect(again).To(Equal(st))
	})
})

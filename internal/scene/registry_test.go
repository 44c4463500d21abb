package scene_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/VanDerGroot/gravityvisualizer/internal/render"
	"github.com/VanDerGroot/gravityvisualizer/internal/scene"
)

var _ = Describe("Registry", func() {
	var reg *scene.Registry

	BeforeEach(func() {
		reg = scene.NewRegistry()
	})

	It("opens a registered backend and hands back its release func", func() {
		released := false
		var got scene.WindowOptions
		reg.Register("fake", func(opts scene.WindowOptions) (scene.Backend, func(), error) {
			got = opts
			return &fakeBackend{Recorder: render.NewRecorder()}, func() { released = true }, nil
		})

		b, release, err := reg.Open("fake", scene.WindowOptions{Title: "t", Camera: render.DefaultCamera()})
		Expect(err).NotTo(HaveOccurred())
		Expect(b).NotTo(BeNil())
		Expect(got.Title).To(Equal("t"))

		release()
		Expect(released).To(BeTrue())
	})

	It("rejects unknown names", func() {
		_, _, err := reg.Open("vulkan", scene.WindowOptions{})
		Expect(errors.Is(err, scene.ErrUnknownBackend)).To(BeTrue())
	})

	It("wraps opener failures", func() {
		boom := errors.New("no display")
		reg.Register("broken", func(scene.WindowOptions) (scene.Backend, func(), error) {
			return nil, nil, boom
		})

		_, _, err := reg.Open("broken", scene.WindowOptions{})
		Expect(err).To(MatchError(ContainSubstring("open broken")))
		Expect(errors.Is(err, boom)).To(BeTrue())
	})

	It("lists names in order", func() {
		noop := func(scene.WindowOptions) (scene.Backend, func(), error) { return nil, func() {}, nil }
		reg.Register("raylib", noop)
		reg.Register("gl", noop)
		Expect(reg.List()).To(Equal([]string{"gl", "raylib"}))
	})
})

package platform_test

import (
	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/chime-cli/chime/internal/platform"
)

var _ = Describe("Registry", func() {
	var ctrl *gomock.Controller

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
	})

	newStrategy := func(supported bool) *platform.MockStrategy {
		strategy := platform.NewMockStrategy(ctrl)
		strategy.EXPECT().Supported().Return(supported).AnyTimes()

		return strategy
	}

	Describe("Resolve", func() {
		It("returns the first supported strategy", func() {
			first := newStrategy(false)
			second := newStrategy(true)
			third := newStrategy(true)

			registry := platform.NewRegistry(first, second, third)

			resolved, err := registry.Resolve()
			Expect(err).NotTo(HaveOccurred())
			Expect(resolved).To(BeIdenticalTo(second))
		})

		It("returns ErrUnsupportedPlatform when nothing matches", func() {
			registry := platform.NewRegistry(newStrategy(false), newStrategy(false))

			_, err := registry.Resolve()
			Expect(errors.Is(err, platform.ErrUnsupportedPlatform)).To(BeTrue())
		})

		It("returns ErrUnsupportedPlatform for an empty registry", func() {
			_, err := platform.NewRegistry().Resolve()
			Expect(errors.Is(err, platform.ErrUnsupportedPlatform)).To(BeTrue())
		})
	})

	Describe("AnySupported", func() {
		It("reports whether any strategy matches", func() {
			Expect(platform.NewRegistry(newStrategy(true)).AnySupported()).To(BeTrue())
			Expect(platform.NewRegistry(newStrategy(false)).AnySupported()).To(BeFalse())
		})
	})

	Describe("Strategies", func() {
		It("returns a copy of the strategy list", func() {
			first := newStrategy(false)
			registry := platform.NewRegistry(first)

			strategies := registry.Strategies()
			Expect(strategies).To(HaveLen(1))

			strategies[0] = nil

			resolved := registry.Strategies()
			Expect(resolved[0]).NotTo(BeNil())
		})
	})

	Describe("DefaultRegistryFor", func() {
		DescribeTable("resolves the built-in strategy for each OS",
			func(goos, wantID string) {
				registry := platform.DefaultRegistryFor(goos)

				resolved, err := registry.Resolve()
				Expect(err).NotTo(HaveOccurred())
				Expect(resolved.ID()).To(Equal(wantID))
			},
			Entry("darwin", "darwin", "darwin"),
			Entry("linux", "linux", "linux"),
			Entry("windows", "windows", "windows"),
		)

		It("resolves nothing for an unknown OS", func() {
			_, err := platform.DefaultRegistryFor("plan9").Resolve()
			Expect(errors.Is(err, platform.ErrUnsupportedPlatform)).To(BeTrue())
		})
	})
})

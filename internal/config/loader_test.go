package config_test

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/chime-cli/chime/internal/config"
)

var _ = Describe("Loader", func() {
	var (
		tmpDir     string
		configPath string
	)

	BeforeEach(func() {
		tmpDir = GinkgoT().TempDir()
		configPath = filepath.Join(tmpDir, "config.toml")
	})

	writeConfig := func(content string) {
		Expect(os.WriteFile(configPath, []byte(content), 0o600)).To(Succeed())
	}

	Context("when no config file exists", func() {
		It("returns the built-in defaults", func() {
			cfg, err := config.NewLoaderWithPath(configPath).Load()
			Expect(err).NotTo(HaveOccurred())

			Expect(cfg.Notification.Title).To(Equal("Claude Code"))
			Expect(cfg.Notification.Sound).To(Equal("Glass"))
			Expect(cfg.Events.Completion).To(BeTrue())
			Expect(cfg.Events.Stop).To(BeTrue())
			Expect(cfg.Events.Sound).To(BeTrue())
			Expect(cfg.Debug).To(BeFalse())
			Expect(cfg.Trace).To(BeFalse())
		})
	})

	Context("when a config file exists", func() {
		It("overrides the defaults it names and keeps the rest", func() {
			writeConfig(`
[notification]
title = "My App"

[events]
stop = false
`)

			cfg, err := config.NewLoaderWithPath(configPath).Load()
			Expect(err).NotTo(HaveOccurred())

			Expect(cfg.Notification.Title).To(Equal("My App"))
			Expect(cfg.Notification.Sound).To(Equal("Glass"))
			Expect(cfg.Events.Stop).To(BeFalse())
			Expect(cfg.Events.Completion).To(BeTrue())
		})

		It("returns ErrInvalidTOML for unparseable content", func() {
			writeConfig("not [valid toml")

			_, err := config.NewLoaderWithPath(configPath).Load()
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, config.ErrInvalidTOML)).To(BeTrue())
		})
	})

	Context("when environment variables are set", func() {
		It("wins over the config file", func() {
			writeConfig(`
[notification]
title = "From File"
`)

			GinkgoT().Setenv("CHIME_NOTIFICATION_TITLE", "From Env")

			cfg, err := config.NewLoaderWithPath(configPath).Load()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Notification.Title).To(Equal("From Env"))
		})

		It("coerces boolean values", func() {
			GinkgoT().Setenv("CHIME_EVENTS_STOP", "false")
			GinkgoT().Setenv("CHIME_DEBUG", "true")

			cfg, err := config.NewLoaderWithPath(configPath).Load()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Events.Stop).To(BeFalse())
			Expect(cfg.Debug).To(BeTrue())
		})
	})

	Describe("ConfigPath", func() {
		It("returns the path the loader reads", func() {
			loader := config.NewLoaderWithPath(configPath)
			Expect(loader.ConfigPath()).To(Equal(configPath))
		})
	})

	It("can load repeatedly without accumulating state", func() {
		loader := config.NewLoaderWithPath(configPath)

		writeConfig(`
[notification]
title = "First"
`)

		cfg, err := loader.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Notification.Title).To(Equal("First"))

		writeConfig(`
[notification]
sound = "Ping"
`)

		cfg, err = loader.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Notification.Title).To(Equal("Claude Code"))
		Expect(cfg.Notification.Sound).To(Equal("Ping"))
	})
})

package platform_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/chime-cli/chime/internal/platform"
)

var _ = Describe("Sanitize", func() {
	Describe("SanitizeShell", func() {
		It("passes plain text through", func() {
			Expect(platform.SanitizeShell("Task completed")).To(Equal("Task completed"))
		})

		It("keeps the safe punctuation allowance", func() {
			Expect(platform.SanitizeShell("Done! Really? v1.2-rc")).
				To(Equal("Done! Really? v1.2-rc"))
		})

		It("strips interpolation characters", func() {
			Expect(platform.SanitizeShell("a`b$c\"d'e\\f")).To(Equal("abcdef"))
		})

		It("strips chaining and redirection characters", func() {
			Expect(platform.SanitizeShell("hi; rm -rf / | nc && curl > out")).
				To(Equal("hi rm -rf   nc  curl  out"))
		})

		It("strips subshell and substitution syntax", func() {
			Expect(platform.SanitizeShell("$(whoami) `id` ${HOME}")).
				To(Equal("whoami id HOME"))
		})
	})

	Describe("SanitizeAppleScript", func() {
		It("escapes embedded double quotes", func() {
			Expect(platform.SanitizeAppleScript(`say "hi"`)).To(Equal(`say \"hi\"`))
		})

		It("escapes backslashes before quotes", func() {
			Expect(platform.SanitizeAppleScript(`a\"b`)).To(Equal(`a\\\"b`))
		})

		It("collapses line breaks to spaces", func() {
			Expect(platform.SanitizeAppleScript("one\ntwo\r\nthree\rfour")).
				To(Equal("one two three four"))
		})
	})

	Describe("SanitizePowerShell", func() {
		It("doubles embedded single quotes", func() {
			Expect(platform.SanitizePowerShell("it's done")).To(Equal("its done"))
		})

		It("strips interpolation characters after quoting", func() {
			Expect(platform.SanitizePowerShell("$env:PATH `whoami`")).
				To(Equal("envPATH whoami"))
		})
	})
})

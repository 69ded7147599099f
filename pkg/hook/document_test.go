package hook_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/chime-cli/chime/pkg/hook"
)

var _ = Describe("Document", func() {
	Describe("Hooks", func() {
		It("returns the hooks map when present", func() {
			doc := hook.Document{"hooks": map[string]any{"Stop": []any{}}}

			hooks, ok := doc.Hooks()
			Expect(ok).To(BeTrue())
			Expect(hooks).To(HaveKey("Stop"))
		})

		It("reports absence", func() {
			_, ok := hook.Document{}.Hooks()
			Expect(ok).To(BeFalse())
		})

		It("reports a hooks key of the wrong type as absent", func() {
			_, ok := hook.Document{"hooks": "oops"}.Hooks()
			Expect(ok).To(BeFalse())
		})
	})
})

var _ = Describe("Group", func() {
	Describe("NewCommandGroup", func() {
		It("wraps a single command entry", func() {
			group := hook.NewCommandGroup("notify-send hi")

			Expect(group.Hooks).To(HaveLen(1))
			Expect(group.Hooks[0].Type).To(Equal("command"))
			Expect(group.Hooks[0].Command).To(Equal("notify-send hi"))
		})
	})

	Describe("Raw", func() {
		It("produces the generic document shape", func() {
			raw := hook.NewCommandGroup("notify-send hi").Raw()

			entries, ok := raw["hooks"].([]any)
			Expect(ok).To(BeTrue())
			Expect(entries).To(HaveLen(1))

			entry, ok := entries[0].(map[string]any)
			Expect(ok).To(BeTrue())
			Expect(entry).To(HaveKeyWithValue("type", "command"))
			Expect(entry).To(HaveKeyWithValue("command", "notify-send hi"))
		})
	})
})

var _ = Describe("Preference", func() {
	It("maps completion fields to the Notification event", func() {
		pref := hook.Preference{NotifyOnCompletion: true, CompletionSound: true}

		Expect(pref.Enabled(hook.EventTypeNotification)).To(BeTrue())
		Expect(pref.Sound(hook.EventTypeNotification)).To(BeTrue())
		Expect(pref.Enabled(hook.EventTypeStop)).To(BeFalse())
		Expect(pref.Sound(hook.EventTypeStop)).To(BeFalse())
	})

	It("maps stop fields to the Stop event", func() {
		pref := hook.Preference{NotifyOnStop: true, StopSound: true}

		Expect(pref.Enabled(hook.EventTypeStop)).To(BeTrue())
		Expect(pref.Sound(hook.EventTypeStop)).To(BeTrue())
		Expect(pref.Enabled(hook.EventTypeNotification)).To(BeFalse())
	})

	It("never enables an unknown event", func() {
		pref := hook.Preference{
			NotifyOnCompletion: true,
			CompletionSound:    true,
			NotifyOnStop:       true,
			StopSound:          true,
		}

		Expect(pref.Enabled(hook.EventTypeUnknown)).To(BeFalse())
		Expect(pref.Sound(hook.EventTypeUnknown)).To(BeFalse())
	})
})

package hook_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/chime-cli/chime/pkg/hook"
)

var _ = Describe("EventType", func() {
	Describe("String", func() {
		It("matches the settings document event keys", func() {
			Expect(hook.EventTypeNotification.String()).To(Equal("Notification"))
			Expect(hook.EventTypeStop.String()).To(Equal("Stop"))
			Expect(hook.EventTypeUnknown.String()).To(Equal("Unknown"))
		})
	})

	Describe("EventTypeString", func() {
		It("parses valid event names", func() {
			event, err := hook.EventTypeString("Notification")
			Expect(err).NotTo(HaveOccurred())
			Expect(event).To(Equal(hook.EventTypeNotification))
		})

		It("rejects unknown names", func() {
			_, err := hook.EventTypeString("PreToolUse")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("JSON round trip", func() {
		It("marshals to the event name", func() {
			data, err := json.Marshal(hook.EventTypeStop)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal(`"Stop"`))
		})

		It("unmarshals from the event name", func() {
			var event hook.EventType
			Expect(json.Unmarshal([]byte(`"Notification"`), &event)).To(Succeed())
			Expect(event).To(Equal(hook.EventTypeNotification))
		})
	})

	Describe("ManagedEvents", func() {
		It("lists Notification before Stop", func() {
			Expect(hook.ManagedEvents()).To(Equal([]hook.EventType{
				hook.EventTypeNotification,
				hook.EventTypeStop,
			}))
		})
	})

	Describe("Action", func() {
		It("labels completion and stop distinctly", func() {
			Expect(hook.EventTypeNotification.Action()).To(Equal("Task completed"))
			Expect(hook.EventTypeStop.Action()).To(Equal("Task stopped"))
		})

		It("is empty for unknown events", func() {
			Expect(hook.EventTypeUnknown.Action()).To(BeEmpty())
		})
	})
})

package schema_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/chime-cli/chime/internal/schema"
)

var _ = Describe("Generate", func() {
	var s map[string]any

	BeforeEach(func() {
		data, err := schema.GenerateJSON(true)
		Expect(err).NotTo(HaveOccurred())
		Expect(json.Unmarshal(data, &s)).To(Succeed())
	})

	It("produces valid JSON", func() {
		Expect(s).NotTo(BeEmpty())
	})

	It("sets the $schema URI", func() {
		Expect(s["$schema"]).To(Equal("https://json-schema.org/draft/2020-12/schema"))
	})

	It("sets the title", func() {
		Expect(s["title"]).To(Equal("chime configuration"))
	})

	It("includes top-level properties", func() {
		props, ok := s["properties"].(map[string]any)
		Expect(ok).To(BeTrue())

		for _, key := range []string{"notification", "events", "debug", "trace"} {
			Expect(props).To(HaveKey(key), "missing top-level property: %s", key)
		}
	})

	Describe("GenerateJSON", func() {
		It("produces compact JSON when indent is false", func() {
			data, err := schema.GenerateJSON(false)
			Expect(err).NotTo(HaveOccurred())

			lines := 0

			for _, b := range data {
				if b == '\n' {
					lines++
				}
			}

			// Compact JSON is a single line plus trailing newline
			Expect(lines).To(Equal(1))
		})

		It("produces indented JSON when indent is true", func() {
			data, err := schema.GenerateJSON(true)
			Expect(err).NotTo(HaveOccurred())

			lines := 0

			for _, b := range data {
				if b == '\n' {
					lines++
				}
			}

			Expect(lines).To(BeNumerically(">", 10))
		})
	})
})

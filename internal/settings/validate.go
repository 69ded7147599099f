package settings

import (
	"fmt"
	"sort"

	"github.com/chime-cli/chime/pkg/hook"
)

// Outcome accumulates every structural violation found in a document so a
// caller can report all problems at once instead of failing on the first.
type Outcome struct {
	Valid  bool
	Errors []string
}

// ValidateDocument checks the document against the structural schema: the
// hooks key, when present, must be an object; every event value must be an
// array; every element of that array must be an object carrying a hooks
// array. Entry command contents are the producing strategy's responsibility
// and are not checked here.
func ValidateDocument(doc hook.Document) Outcome {
	var violations []string

	if doc == nil {
		violations = append(violations, "document is not an object")

		return Outcome{Valid: false, Errors: violations}
	}

	if raw, ok := doc[hook.HooksKey]; ok {
		hooksMap, ok := raw.(map[string]any)
		if !ok {
			violations = append(violations,
				fmt.Sprintf("hooks must be an object, got %v", raw))
		} else {
			// Deterministic error order regardless of map iteration.
			events := make([]string, 0, len(hooksMap))
			for event := range hooksMap {
				events = append(events, event)
			}

			sort.Strings(events)

			for _, event := range events {
				validateEventValue(event, hooksMap[event], &violations)
			}
		}
	}

	return Outcome{
		Valid:  len(violations) == 0,
		Errors: violations,
	}
}

// validateEventValue checks one event key's value: an array of group objects,
// each exposing a hooks array.
func validateEventValue(event string, value any, violations *[]string) {
	groups, ok := value.([]any)
	if !ok {
		*violations = append(*violations,
			fmt.Sprintf("hooks.%s must be an array, got %v", event, value))

		return
	}

	for i, raw := range groups {
		group, ok := raw.(map[string]any)
		if !ok {
			*violations = append(*violations,
				fmt.Sprintf("hooks.%s[%d] must be an object, got %v", event, i, raw))

			continue
		}

		entries, ok := group[hook.HooksKey]
		if !ok {
			*violations = append(*violations,
				fmt.Sprintf("hooks.%s[%d] is missing the hooks array", event, i))

			continue
		}

		if _, ok := entries.([]any); !ok {
			*violations = append(*violations,
				fmt.Sprintf("hooks.%s[%d].hooks must be an array, got %v", event, i, entries))
		}
	}
}

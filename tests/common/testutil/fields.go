//go:build unit || e2e

package testutil

import "strings"

// Field sets or, for a nil value, deletes a key. Dotted keys reach into nested objects,
// e.g. Field("fulfillment.method", "ship").
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		parts := strings.Split(key, ".")
		for _, p := range parts[:len(parts)-1] {
			next, ok := m[p].(map[string]any)
			if !ok {
				next = map[string]any{}
				m[p] = next
			}
			m = next
		}
		last := parts[len(parts)-1]
		if value == nil {
			delete(m, last)
		} else {
			m[last] = value
		}
	}
}

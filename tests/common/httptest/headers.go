//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertHeaders checks exact header values. An empty expected value asserts the header is absent.
func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		if v == "" {
			assert.Empty(t, w.Header().Values(k), "header %s should be absent", k)
			continue
		}
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertHeaderHas checks that some value of header k carries every attribute, e.g. the
// parts of a Set-Cookie line.
func AssertHeaderHas(t *testing.T, w *httptest.ResponseRecorder, k string, attrs ...string) {
	t.Helper()
	for _, line := range w.Header().Values(k) {
		if hasAll(line, attrs) {
			return
		}
	}
	assert.Failf(t, "header attributes missing", "%s %v not found in %q", k, attrs, w.Header().Values(k))
}

func hasAll(line string, attrs []string) bool {
	for _, a := range attrs {
		if !strings.Contains(line, a) {
			return false
		}
	}
	return true
}

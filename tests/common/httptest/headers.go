//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const IdempotencyKeyHeader = "Idempotency-Key"

func IdempotencyKey(key string) map[string]string {
	return map[string]string{IdempotencyKeyHeader: key}
}

// header names are matched case-insensitively; values must match exactly
func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

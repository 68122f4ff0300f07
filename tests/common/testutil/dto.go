//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"
)

// DtoMap turns a request DTO into a map so individual fields can be mutated
// or dropped before sending it.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()
	b, _ := json.Marshal(v)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	for _, f := range muts {
		f(m)
	}
	return m
}

// Field returns a mutator setting key to value; a nil value deletes the key.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}

package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIssueDeterministic(t *testing.T) {
	a := Issue("nullPointer", "src/a.c", 42, "Null pointer dereference")
	b := Issue("nullPointer", "src/a.c", 42, "Null pointer dereference")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
	assert.Regexp(t, "^[0-9a-f]+$", a)
}

func TestIssueSensitivity(t *testing.T) {
	base := Issue("nullPointer", "src/a.c", 42, "msg")

	tests := []struct {
		name  string
		other string
	}{
		{"rule", Issue("uninitvar", "src/a.c", 42, "msg")},
		{"path", Issue("nullPointer", "src/b.c", 42, "msg")},
		{"line", Issue("nullPointer", "src/a.c", 43, "msg")},
		{"message", Issue("nullPointer", "src/a.c", 42, "outra msg")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, base, tt.other)
		})
	}
}

// Campos contendo o separador não podem colidir com a fronteira entre campos.
func TestIssueFieldBoundaries(t *testing.T) {
	assert.NotEqual(t,
		Issue("regra|src", "a.c", 1, "m"),
		Issue("regra", "src|a.c", 1, "m"),
	)
	assert.NotEqual(t,
		Issue("regra", "a.c", 1, `m\|x`),
		Issue("regra", "a.c", 1, `m\\|x`),
	)
}

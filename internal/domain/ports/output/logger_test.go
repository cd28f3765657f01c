package ports_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	ports "studentoffice-service/internal/domain/ports/output"
)

func TestOptionalInt64(t *testing.T) {
	value := int64(42)

	tests := []struct {
		name string
		v    *int64
		want string
	}{
		{name: "set", v: &value, want: "42"},
		{name: "nil", v: nil, want: "none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr := ports.OptionalInt64("cursor", tt.v)
			assert.Equal(t, "cursor", attr.Key)
			assert.Equal(t, tt.want, attr.Value.String())
		})
	}
}

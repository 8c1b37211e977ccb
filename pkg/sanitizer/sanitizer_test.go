package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formflow/pkg/sanitizer"
)

func TestTrim(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"  hello  ":   "hello",
		"\t\nAnn\r\n": "Ann",
		"Mary Ann":    "Mary Ann",
		"":            "",
		"   ":         "",
	}
	for in, want := range tests {
		assert.Equal(t, want, sanitizer.Trim(in), "input %q", in)
	}
}

func TestRemoveControlChars(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Ann", sanitizer.RemoveControlChars("A\x00n\x07n"))
	assert.Equal(t, "a\tb\nc\r", sanitizer.RemoveControlChars("a\tb\nc\r"))
}

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		transforms []func(string) string
		expected   string
	}{
		{
			name:       "applies single transform",
			input:      "  hello  ",
			transforms: []func(string) string{sanitizer.Trim},
			expected:   "hello",
		},
		{
			name:       "applies transforms in sequence",
			input:      "  HELLO\x00  ",
			transforms: []func(string) string{sanitizer.RemoveControlChars, sanitizer.Trim, strings.ToLower},
			expected:   "hello",
		},
		{
			name:       "order matters",
			input:      " x",
			transforms: []func(string) string{func(s string) string { return s + " " }, sanitizer.Trim},
			expected:   "x",
		},
		{
			name:     "no transforms",
			input:    " as is ",
			expected: " as is ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.Apply(tt.input, tt.transforms...))
		})
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()

	clean := sanitizer.Compose(sanitizer.Trim, strings.ToUpper)
	assert.Equal(t, "ANN", clean("  ann "))
	assert.Equal(t, "LEE", clean("lee"))

	double := sanitizer.Compose(func(n int) int { return n * 2 }, func(n int) int { return n + 1 })
	assert.Equal(t, 7, double(3))
}

func TestValue(t *testing.T) {
	t.Parallel()

	t.Run("strings are transformed", func(t *testing.T) {
		t.Parallel()
		v, err := sanitizer.Value("  ann@lee.com ", sanitizer.Trim)
		require.NoError(t, err)
		assert.Equal(t, "ann@lee.com", v)
	})

	t.Run("booleans pass through", func(t *testing.T) {
		t.Parallel()
		v, err := sanitizer.Value(true, sanitizer.Trim)
		require.NoError(t, err)
		assert.Equal(t, true, v)
	})

	t.Run("other types are rejected", func(t *testing.T) {
		t.Parallel()
		_, err := sanitizer.Value(42, sanitizer.Trim)
		require.ErrorIs(t, err, sanitizer.ErrUnsupportedValue)
		assert.Contains(t, err.Error(), "int")

		_, err = sanitizer.Value(nil)
		assert.ErrorIs(t, err, sanitizer.ErrUnsupportedValue)
	})
}

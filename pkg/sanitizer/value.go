package sanitizer

import (
	"errors"
	"fmt"
)

// ErrUnsupportedValue is returned by Value for inputs that are neither strings nor booleans.
var ErrUnsupportedValue = errors.New("sanitizer: unsupported value type")

// Value normalizes a form input value. Strings run through the given
// transforms; booleans, as produced by checkbox-style inputs, pass through
// verbatim.
func Value(v any, transforms ...func(string) string) (any, error) {
	switch val := v.(type) {
	case string:
		return Apply(val, transforms...), nil
	case bool:
		return val, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

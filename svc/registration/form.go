package registration

import (
	"context"

	"github.com/dmitrymomot/formflow/pkg/transform"
)

// ValidateAll runs ValidateOneField over every field and collects the
// failures. The result never contains WildcardKey.
func ValidateAll(data FormData) ValidationErrors {
	errs := ValidationErrors{}
	for _, field := range formFields {
		if msg, failed := ValidateOneField(field, data.Get(field)); failed {
			errs[string(field)] = msg
		}
	}
	return errs
}

// ValidateForm validates the whole form. With no errors the lifecycle moves
// to Validated and the error map is cleared. Otherwise the lifecycle stays
// Updating and the error map is replaced by the new failures.
func ValidateForm(ctx context.Context, s State) transform.Outcome[State] {
	errs := ValidateAll(s.Data)
	to, err := advance(ctx, s.Lifecycle, eventValidateForm, OpValidateForm, errs)
	if err != nil {
		return transform.Rejected(s, err)
	}

	next := s
	next.Lifecycle = to
	next.Errors = errs
	if next.Equal(s) {
		return transform.Unchanged(s)
	}
	return transform.Applied(next)
}

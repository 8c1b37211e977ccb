package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formflow/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.Required("name", "Ann"),
			validator.ValidEmail("email", "ann@lee.com"),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.Required("name", ""),
			validator.ValidEmail("email", "bad"),
			validator.ValidPhone("phone", "555-1580"),
		)
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, []string{"name", "email"}, verrs.Fields())
		assert.True(t, verrs.Has("email"))
		assert.False(t, verrs.Has("phone"))
		assert.Equal(t, []string{"must be a valid email address"}, verrs.Get("email"))
		assert.Equal(t, "validation failed: name: field is required; email: must be a valid email address", err.Error())
	})
}

func TestFirst(t *testing.T) {
	t.Parallel()

	t.Run("stops at first failing rule", func(t *testing.T) {
		t.Parallel()
		evaluated := 0
		count := func(ok bool) validator.Rule {
			return validator.Rule{
				Check: func() bool {
					evaluated++
					return ok
				},
				Error: validator.ValidationError{Field: "f", Message: fmt.Sprintf("rule %d", evaluated)},
			}
		}

		verr, failed := validator.First(count(true), count(false), count(false))
		assert.True(t, failed)
		assert.Equal(t, "f", verr.Field)
		assert.Equal(t, 2, evaluated)
	})

	t.Run("no failure", func(t *testing.T) {
		t.Parallel()
		verr, failed := validator.First(validator.Required("name", "Ann"))
		assert.False(t, failed)
		assert.Equal(t, validator.ValidationError{}, verr)
	})

	t.Run("no rules", func(t *testing.T) {
		t.Parallel()
		_, failed := validator.First()
		assert.False(t, failed)
	})
}

func TestRule_WithMessage(t *testing.T) {
	t.Parallel()

	base := validator.Required("firstName", "")
	custom := base.WithMessage("First name can't be empty.")

	assert.Equal(t, "First name can't be empty.", custom.Error.Message)
	assert.Equal(t, "field is required", base.Error.Message, "original rule is not modified")
	assert.Equal(t, base.Error.TranslationKey, custom.Error.TranslationKey)
	assert.False(t, custom.Check())
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	var verrs validator.ValidationErrors
	assert.True(t, verrs.IsEmpty())
	assert.Equal(t, "validation failed", verrs.Error())

	verrs.Add(validator.ValidationError{Field: "email", Message: "first"})
	verrs.Add(validator.ValidationError{Field: "email", Message: "second"})
	verrs.Add(validator.ValidationError{Field: "phone", Message: "third"})

	assert.False(t, verrs.IsEmpty())
	assert.Equal(t, map[string]string{"email": "first", "phone": "third"}, verrs.FirstByField())
	assert.Equal(t, []string{"first", "second"}, verrs.Get("email"))
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("other")))
	assert.False(t, validator.IsValidationError(nil))
	assert.False(t, validator.IsValidationError(errors.New("other")))

	wrapped := fmt.Errorf("wrap: %w", validator.ValidationErrors{{Field: "x", Message: "y"}})
	verrs := validator.ExtractValidationErrors(wrapped)
	require.Len(t, verrs, 1)
	assert.Equal(t, "x", verrs[0].Field)
}

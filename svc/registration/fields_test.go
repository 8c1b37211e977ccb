package registration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formflow/svc/registration"
)

func TestValidateOneField_Names(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		field registration.Field
		value string
		want  string
	}{
		{"valid first name", registration.FirstName, "Ann", ""},
		{"exactly ten", registration.FirstName, "Abcdefghij", ""},
		{"surrounding whitespace is trimmed", registration.FirstName, "  Ann  ", ""},
		{"empty", registration.FirstName, "", "First name can't be empty."},
		{"only spaces", registration.FirstName, "   ", "First name can't be empty."},
		{"too long", registration.FirstName, "Abcdefghijk", "First name can be no longer than 10 characters."},
		{"inner space", registration.FirstName, "Mary Ann", "First name can be no longer than 10 characters and must not contain whitespace."},
		{"long with space reports length", registration.FirstName, "Mary Ann Smith", "First name can be no longer than 10 characters."},
		{"valid last name", registration.LastName, "Lee", ""},
		{"empty last name", registration.LastName, "", "Last name can't be empty."},
		{"long last name", registration.LastName, "Wolfeschlegel", "Last name can be no longer than 10 characters."},
		{"last name tab", registration.LastName, "Le\te", "Last name can be no longer than 10 characters and must not contain whitespace."},
		{"multibyte counted as characters", registration.LastName, "Łukasiewić", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			msg, failed := registration.ValidateOneField(tt.field, tt.value)
			assert.Equal(t, tt.want != "", failed)
			assert.Equal(t, tt.want, msg)
		})
	}
}

func TestValidateOneField_Email(t *testing.T) {
	t.Parallel()

	msg, failed := registration.ValidateOneField(registration.Email, "a@b.com")
	assert.False(t, failed)
	assert.Empty(t, msg)

	for _, bad := range []string{"not-an-email", "bad", "", "Ann <ann@lee.com>"} {
		msg, failed := registration.ValidateOneField(registration.Email, bad)
		assert.True(t, failed, "expected %q to fail", bad)
		assert.Equal(t, "Email is formatted incorrectly.", msg)
	}
}

func TestValidateOneField_Phone(t *testing.T) {
	t.Parallel()

	for _, good := range []string{"(213) 555-1580", "213-555-1580", "555-1580", "(213)555-1580"} {
		_, failed := registration.ValidateOneField(registration.Phone, good)
		assert.False(t, failed, "expected %q to pass", good)
	}

	for _, bad := range []string{"12345", "", "2135551580", "213 555 1580"} {
		msg, failed := registration.ValidateOneField(registration.Phone, bad)
		assert.True(t, failed, "expected %q to fail", bad)
		assert.Equal(t, "Phone number is improperly formatted.", msg)
	}
}

func TestValidateOneField_Deterministic(t *testing.T) {
	t.Parallel()

	inputs := map[registration.Field][]string{
		registration.FirstName: {"Ann", "", "Mary Ann", "Abcdefghijk"},
		registration.LastName:  {"Lee", " "},
		registration.Email:     {"a@b.com", "bad"},
		registration.Phone:     {"555-1580", "12345"},
	}
	for field, values := range inputs {
		for _, v := range values {
			msg1, failed1 := registration.ValidateOneField(field, v)
			msg2, failed2 := registration.ValidateOneField(field, v)
			assert.Equal(t, failed1, failed2)
			assert.Equal(t, msg1, msg2)
		}
	}
}

func TestValidateOneField_UnknownField(t *testing.T) {
	t.Parallel()
	msg, failed := registration.ValidateOneField(registration.Field("nickname"), "")
	assert.False(t, failed)
	assert.Empty(t, msg)
}

func TestParseField(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"firstName", "lastName", "email", "phone"} {
		assert.True(t, registration.IsField(name))
		field, err := registration.ParseField(name)
		require.NoError(t, err)
		assert.Equal(t, name, string(field))
	}

	assert.False(t, registration.IsField("*"))
	assert.False(t, registration.IsField("FirstName"))
	_, err := registration.ParseField("nickname")
	assert.ErrorIs(t, err, registration.ErrUnknownField)

	assert.Equal(t, []registration.Field{
		registration.FirstName, registration.LastName, registration.Email, registration.Phone,
	}, registration.Fields())
}

package registration

import (
	"maps"
	"slices"

	"github.com/tiendc/go-deepcopy"
)

// Lifecycle is the coarse mode of a form session.
type Lifecycle string

const (
	Updating   Lifecycle = "Updating"
	Validated  Lifecycle = "Validated"
	Submitting Lifecycle = "Submitting"
	Submitted  Lifecycle = "Submitted"
)

// Name implements statemachine.State.
func (l Lifecycle) Name() string { return string(l) }

func (l Lifecycle) String() string { return string(l) }

// Field names a form input.
type Field string

const (
	FirstName Field = "firstName"
	LastName  Field = "lastName"
	Email     Field = "email"
	Phone     Field = "phone"
)

var formFields = []Field{FirstName, LastName, Email, Phone}

// Fields returns every form field in display order.
func Fields() []Field {
	return slices.Clone(formFields)
}

// IsField reports whether name is one of the form fields.
func IsField(name string) bool {
	return slices.Contains(formFields, Field(name))
}

// ParseField converts a plain input name to a Field.
func ParseField(name string) (Field, error) {
	if !IsField(name) {
		return "", unknownField(Field(name))
	}
	return Field(name), nil
}

const (
	// WildcardKey holds errors that do not belong to a single field.
	WildcardKey = "*"

	// SubmissionFailedMessage is stored under WildcardKey after a failed submission.
	SubmissionFailedMessage = "Submission Failed..."
)

// FormData holds the trimmed field values.
type FormData struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Get returns the value of field, or "" for an unknown field.
func (d FormData) Get(field Field) string {
	switch field {
	case FirstName:
		return d.FirstName
	case LastName:
		return d.LastName
	case Email:
		return d.Email
	case Phone:
		return d.Phone
	default:
		return ""
	}
}

func (d FormData) with(field Field, value string) FormData {
	switch field {
	case FirstName:
		d.FirstName = value
	case LastName:
		d.LastName = value
	case Email:
		d.Email = value
	case Phone:
		d.Phone = value
	}
	return d
}

// ValidationErrors maps a field name, or WildcardKey, to one message.
type ValidationErrors map[string]string

// For returns the message stored for field.
func (e ValidationErrors) For(field Field) (string, bool) {
	msg, ok := e[string(field)]
	return msg, ok
}

// Form returns the form-level message stored under WildcardKey.
func (e ValidationErrors) Form() (string, bool) {
	msg, ok := e[WildcardKey]
	return msg, ok
}

func (e ValidationErrors) clone() ValidationErrors {
	out := make(ValidationErrors, len(e))
	maps.Copy(out, e)
	return out
}

// State is the complete form session state.
//
// Transforms never modify a State's Errors map in place; they build a new
// map instead. States received from a subscription share maps with the
// dispatcher and must be treated as read-only. Use Clone for a private copy.
type State struct {
	Lifecycle Lifecycle        `json:"lifecycle"`
	Data      FormData         `json:"data"`
	Errors    ValidationErrors `json:"errors"`
}

// NewState returns the initial state of a form session.
func NewState() State {
	return State{
		Lifecycle: Updating,
		Errors:    ValidationErrors{},
	}
}

// Clone returns a deep copy of s. Copy only fails for mismatched source
// and destination types, which cannot happen here.
func (s State) Clone() (State, error) {
	var out State
	if err := deepcopy.Copy(&out, s); err != nil {
		return State{}, err
	}
	if out.Errors == nil {
		out.Errors = ValidationErrors{}
	}
	return out, nil
}

// Equal reports whether two states hold the same values.
func (s State) Equal(other State) bool {
	return s.Lifecycle == other.Lifecycle &&
		s.Data == other.Data &&
		maps.Equal(s.Errors, other.Errors)
}

// Package validator provides small, composable validation rules for string
// input such as names, email addresses and phone numbers.
//
// A Rule pairs a boolean Check with translation-friendly error metadata.
// Rules are evaluated either with Apply, which collects every failure into a
// ValidationErrors value that satisfies the error interface, or with First,
// which stops at the first failing rule. First suits fields whose checks are
// ordered from coarse to fine and where only one message should be shown.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("name", name),
//	    validator.ValidEmail("email", email),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // iterate over field-level messages or translate them
//	}
//
//	if verr, failed := validator.First(
//	    validator.Required("firstName", v).WithMessage("First name can't be empty."),
//	    validator.MaxLen("firstName", v, 10),
//	); failed {
//	    fmt.Println(verr.Message)
//	}
//
// The package holds no state; rules are built per value and are safe to use
// from any goroutine.
package validator

package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Field returns an error instance that wraps the original error with
// additional information about the model field that failed validation. It
// returns nil if provided error is nil.
//
// Use Go naming for the field name, with dot notation for nested fields, for
// example Resolver.Account.
func Field(fieldName string, err error, description string, args ...interface{}) error {
	if isNilErr(err) {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	if len(args) > 0 {
		description = fmt.Sprintf(description, args...)
	}
	return &fieldError{
		parent: err,
		field:  fieldName,
		desc:   description,
	}
}

type fieldError struct {
	parent error
	field  string
	desc   string
}

func (err *fieldError) Error() string {
	if err.desc == "" {
		return fmt.Sprintf("field %q: %s", err.field, err.parent)
	}
	return fmt.Sprintf("field %q: %s: %s", err.field, err.desc, err.parent)
}

func (err *fieldError) Cause() error {
	return err.parent
}

// Field returns the name of the field this error was created for.
func (err *fieldError) Field() string {
	return err.field
}

// FieldName returns the name of the field the given error was created for or
// an empty string if the error does not describe a field.
func FieldName(err error) string {
	for err != nil {
		if f, ok := err.(*fieldError); ok {
			return f.field
		}
		c, ok := err.(causer)
		if !ok {
			return ""
		}
		err = c.Cause()
	}
	return ""
}

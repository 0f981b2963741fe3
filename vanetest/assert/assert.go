// Package assert provides minimal, dependency free assertions used where
// a full assertion library would obscure the intent.
package assert

import (
	"reflect"
	"testing"

	"github.com/iov-one/vane/errors"
)

// Tester is the minimal subset of testing.TB needed to run most assert commands
type Tester interface {
	Helper()
	Fatal(...interface{})
	Fatalf(string, ...interface{})
}

// Nil fails the test if given value is not nil.
func Nil(t Tester, value interface{}) {
	t.Helper()
	if !isNil(value) {
		// %+v prints the stack trace of errors that carry one.
		t.Fatalf("want a nil value, got %+v", value)
	}
}

func isNil(value interface{}) (isnil bool) {
	if value == nil {
		return true
	}
	defer func() {
		if recover() != nil {
			isnil = false
		}
	}()
	return reflect.ValueOf(value).IsNil()
}

// Equal fails the test if two values are not equal.
func Equal(t Tester, want, got interface{}) {
	t.Helper()
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("values not equal \nwant %T %v\n got %T %v", want, want, got, got)
	}
}

// Panics will run given function and recover any panic. It will fail the test
// if given function call did not panic.
func Panics(t Tester, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	fn()
}

// IsErr is a convenient helper that checks if the errors are a match and
// prints out the difference if not as well as failing the assertion.
func IsErr(t Tester, want *errors.Error, got error) {
	t.Helper()
	if !want.Is(got) {
		t.Fatalf("want %v, got %+v", want, got)
	}
}

// FieldError ensures that given error was created for the named field and
// is of the wanted kind.
func FieldError(t testing.TB, err error, fieldName string, want *errors.Error) {
	t.Helper()
	if got := errors.FieldName(err); got != fieldName {
		t.Fatalf("want error for field %q, got %q: %v", fieldName, got, err)
	}
	if !want.Is(err) {
		t.Fatalf("want %v, got %+v", want, err)
	}
}

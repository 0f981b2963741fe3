package errors

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

var (
	// ErrUnauthorized is used whenever a request without sufficient
	// authorization is handled.
	ErrUnauthorized = Register(2, "unauthorized")

	// ErrNotFound is used when a requested operation cannot be completed
	// due to missing data.
	ErrNotFound = Register(3, "not found")

	// ErrMsg is returned whenever a message is invalid and cannot be
	// handled.
	ErrMsg = Register(4, "invalid message")

	// ErrModel is returned whenever a model is invalid and cannot be
	// persisted.
	ErrModel = Register(5, "invalid model")

	// ErrDuplicate is returned when there is a record already that has the
	// same unique key.
	ErrDuplicate = Register(6, "duplicate")

	// ErrHuman is returned when application reaches a code path which
	// should not ever be reached if the code was written as expected.
	ErrHuman = Register(7, "coding error")

	// ErrEmpty is returned when a value fails a not empty assertion.
	ErrEmpty = Register(9, "value is empty")

	// ErrState is returned when an object is in invalid state.
	ErrState = Register(10, "invalid state")

	// ErrType is returned whenever the type is not what was expected.
	ErrType = Register(11, "invalid type")

	// ErrInsufficientAmount is returned when an amount of currency is
	// insufficient, e.g. funds/fees.
	ErrInsufficientAmount = Register(12, "insufficient amount")

	// ErrAmount stands for invalid amount of whatever.
	ErrAmount = Register(13, "invalid amount")

	// ErrInput stands for general input problems indication.
	ErrInput = Register(14, "invalid input")

	// ErrOverflow is returned when a computation cannot be completed
	// because the result value exceeds the type.
	ErrOverflow = Register(16, "an operation cannot be completed due to value overflow")

	// ErrCurrency is returned whenever a coin is of an unexpected currency.
	ErrCurrency = Register(17, "invalid currency code")

	// ErrDatabase is returned when the underlying storage fails.
	ErrDatabase = Register(18, "database error")

	// ErrPanic is only set when we recover from a panic, so we know to
	// redact potentially sensitive system info.
	ErrPanic = Register(111222, "panic")
)

// Register returns an error instance that should be used as the base for
// creating error instances during runtime.
//
// Popular root errors are declared in this package, but extensions may want to
// declare custom codes. This function ensures that no error code is used
// twice. Attempt to reuse an error code results in panic.
//
// Use this function only during a program startup phase.
func Register(code uint32, description string) *Error {
	if e, ok := usedCodes[code]; ok {
		panic(fmt.Sprintf("error with code %d is already registered: %q", code, e.desc))
	}
	err := &Error{
		code: code,
		desc: description,
	}
	usedCodes[err.code] = err
	return err
}

// usedCodes is keeping track of used codes to ensure their uniqueness. No two
// error instances should share the same error code.
var usedCodes = map[uint32]*Error{
	// Code 1 is reserved for errors that do not declare a code.
	1: {code: 1, desc: "internal"},
}

// Error represents a root error.
//
// Each error instance created during the runtime should wrap one of the
// declared root errors. This allows error tests and returning all errors to
// the client in a safe manner.
type Error struct {
	code uint32
	desc string
}

func (e Error) Error() string {
	return e.desc
}

// ABCICode returns the code this error is reported with.
func (e Error) ABCICode() uint32 {
	return e.code
}

// New returns a new error. Returned instance is having the root cause set to
// this error. Below two lines are equal
//   e.New("my description")
//   Wrap(e, "my description")
func (e *Error) New(description string) error {
	return Wrap(e, description)
}

// Newf is basically New with formatting capabilities.
func (e *Error) Newf(description string, args ...interface{}) error {
	return e.New(fmt.Sprintf(description, args...))
}

// Is check if given error instance is of a given kind. This involves
// unwrapping given error using the Cause method if available.
func (e *Error) Is(err error) bool {
	// Reflect usage is necessary to correctly compare with
	// a nil implementation of an error.
	if e == nil {
		return isNilErr(err)
	}

	for {
		if err == e {
			return true
		}
		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return false
		}
	}
}

// Wrap extends given error with an additional information.
//
// If err is nil, this returns nil, avoiding the need for an if statement when
// wrapping a error returned at the end of a function.
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}

	// Attach the stack trace only once, at the most inner wrap.
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}

	return &wrappedError{
		parent: err,
		msg:    description,
	}
}

// Wrapf extends given error with an additional information. Description is
// formatted as with fmt.Sprintf.
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

type wrappedError struct {
	// This error layer description.
	msg string
	// The underlying error that triggered this one.
	parent error
}

func (e *wrappedError) Error() string {
	return fmt.Sprintf("%s: %s", e.msg, e.parent.Error())
}

func (e *wrappedError) Cause() error {
	return e.parent
}

// Format prints the full stack trace with the %+v verb.
func (e *wrappedError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%s: %+v", e.msg, e.parent)
		return
	}
	fmt.Fprint(s, e.Error())
}

// Recover captures a panic and stop its propagation. If panic happens it is
// transformed into a ErrPanic instance and assigned to given error. Call this
// function using defer in order to work as expected.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

// WithType is a helper to augment an error with a corresponding type message.
func WithType(err error, obj interface{}) error {
	return Wrap(err, fmt.Sprintf("%T", obj))
}

// Cause returns the most inner error.
func Cause(err error) error {
	for {
		c, ok := err.(causer)
		if !ok {
			return err
		}
		next := c.Cause()
		if next == nil {
			return err
		}
		err = next
	}
}

// causer is an interface implemented by an error that supports wrapping. Use
// it to test if an error wraps another error instance.
type causer interface {
	Cause() error
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// stackTrace returns the first found stack trace frame carried by given error
// or any wrapped error. It returns nil if no stack trace is found.
func stackTrace(err error) errors.StackTrace {
	for {
		if st, ok := err.(stackTracer); ok {
			return st.StackTrace()
		}
		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return nil
		}
	}
}

func isNilErr(err error) bool {
	if err == nil {
		return true
	}
	// Typed nil values stored in an error interface must be nil as well.
	v := reflect.ValueOf(err)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

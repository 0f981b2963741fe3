package errors

import "fmt"

const (
	// SuccessABCICode is returned when the processing was successful and
	// no error is returned.
	SuccessABCICode = 0

	// All unclassified errors that do not provide an ABCI code are clubbed
	// under an internal error code and a generic message instead of
	// detailed error string.
	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

// ABCIInfo returns the error code and log message that should be reported to
// a client. Errors that do not wrap a registered root error are considered
// internal and unless debug is set their message is replaced with a generic
// one. Panics are always redacted.
func ABCIInfo(err error, debug bool) (uint32, string) {
	if isNilErr(err) {
		return SuccessABCICode, ""
	}

	code := abciCode(err)
	if debug {
		return code, fmt.Sprintf("%+v", err)
	}
	if code == internalABCICode || code == ErrPanic.code {
		return code, internalABCILog
	}
	return code, err.Error()
}

type coder interface {
	ABCICode() uint32
}

// abciCode unwraps given error and returns the code of the first error that
// declares one.
func abciCode(err error) uint32 {
	for {
		if c, ok := err.(coder); ok {
			return c.ABCICode()
		}
		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return internalABCICode
		}
	}
}

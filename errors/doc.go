/*
Package errors implements the error handling conventions shared by all vane
extensions.

Root errors are declared once with Register and carry a unique code that is
reported to clients (see ABCIInfo). Runtime errors must always wrap one of the
root errors, either with ErrXyz.New/Newf or with Wrap/Wrapf, so that the kind
of an error can be tested with ErrXyz.Is(err) no matter how many times it was
wrapped.

The innermost wrap attaches a stack trace. Use fmt verbs to inspect it:
	%s is just the error message
	%+v is the full stack trace
*/
package errors

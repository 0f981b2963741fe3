/*
Package app glues the vane extensions into a transactional application.

An Application owns the committed state, routes every delivered message to
the handler registered for its path and guarantees that a message is applied
atomically: either all of its state writes and events are kept, or none.
Application can be driven directly, as the command line client does, or
through the ABCI adapter.
*/
package app

/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each extension owns a single configuration entry stored under the "_c:<pkg>"
key. It is loaded from the "conf" section of the genesis file during chain
initialization and must be valid before it is written.
*/
package gconf

// Package vanetest provides helpers shared by the tests of all extensions.
package vanetest

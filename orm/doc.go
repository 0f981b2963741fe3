/*
Package orm provides an easy to use db wrapper.

Break state space into prefixed sections called Buckets. Each bucket
contains only one type of model, stored under the "<bucket name>:" prefix.
Sequences provide monotonically increasing counters that can be used to build
ordered keys.
*/
package orm

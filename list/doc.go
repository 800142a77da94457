/*
Package list implements an immutable singly-linked list.

Every “modification” (pushing an element to the front, taking the tail)
creates a new list value and leaves the original untouched; tails are
shared between a list and its derivations. Immutable lists are inherently
concurrency-safe.

This is the sequence type destructured by the Nil and Cons patterns of the
root package: a list is either empty, or an element (head) in front of a
remaining list (tail).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'patterns.list'.
func tracer() tracing.Trace {
	return tracing.Select("patterns.list")
}

/*
Package folderer offers single-slot folding containers.

A folder holds exactly one accumulator value, the inner value, and updates it
in place as items are pushed in. Folders can be used to sum, append, select,
etc. values in an ad-hoc fashion, without writing the loop and the accumulator
variable over and over again.

# Folders

There are four flavours, differing in how an item is combined with the inner
value:

	Adder[T]                 inner += item, for built-in types supporting +=
	Accumulator[I, Item, P]  inner.AddAssign(item), for client types
	DynFolder[I, Item]       fold(&inner, item), with fold chosen at construction
	MonoidFolder[T]          inner = m.Add(inner, item), starting at m.Zero()

The zero value of an Adder or an Accumulator is a valid, empty folder wrapping
the zero value of its inner type. A DynFolder needs a fold function and a
MonoidFolder needs a monoid; create them with NewDynFolder, DynFolderFrom or
NewMonoidFolder.

	sum := CollectAdder(slices.Values([]int{1, 2, 3, 4, 5}))
	sum.Append(10, 9, 8, 7, 6)
	fmt.Println(sum.Value()) // 55

	names := DynFolderFrom(func(inner *[]string, item string) {
	    *inner = append(*inner, item)
	})
	names.Append("9", "8", "7", "6")
	list := names.Unwrap() // [9 8 7 6]

Unwrap ends the life of a folder. Any further call to the same folder
panics with ErrFolderConsumed.

Folders are not safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package folderer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'folderer'
func tracer() tracing.Trace {
	return tracing.Select("folderer")
}

// FolderError is an error type for the folderer module.
type FolderError string

func (e FolderError) Error() string {
	return string(e)
}

// ErrFolderConsumed signals that a folder has already been unwrapped and
// it's illegal to use it any further.
const ErrFolderConsumed = FolderError("folder has been unwrapped; it must not be used any more")

// ErrNilFoldFunc is flagged when a DynFolder is asked to fold without a fold function.
const ErrNilFoldFunc = FolderError("fold function is nil")

// ErrNilMonoid is flagged when a MonoidFolder is created without a monoid.
const ErrNilMonoid = FolderError("monoid is nil")

// fail traces a programming error and panics with it. Panicking with a
// FolderError lets recovering clients test the value with errors.Is.
func fail(err FolderError, where string) {
	tracer().Errorf("%s: %s", where, err)
	panic(err)
}

// alive guards every operation on a folder against use after Unwrap.
func alive(done bool, where string) {
	if done {
		fail(ErrFolderConsumed, where)
	}
}

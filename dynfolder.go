package folderer

import (
	"fmt"
	"iter"
)

// FoldFunc folds item into the inner value of a folder. It is free to update
// inner in whatever way it likes: add, append, select, overwrite, etc.
type FoldFunc[Inner, Item any] func(inner *Inner, item Item)

// DynFolder folds items with a fold function chosen at construction time.
//
// A DynFolder with a fold function doing `*inner += item` behaves like an
// Adder. The fold function is fixed for the lifetime of the folder.
type DynFolder[Inner, Item any] struct {
	inner Inner
	fold  FoldFunc[Inner, Item]
	done  bool
}

// NewDynFolder creates a folder wrapping inner, folding items with fold.
// fold must not be nil.
func NewDynFolder[Inner, Item any](inner Inner, fold FoldFunc[Inner, Item]) *DynFolder[Inner, Item] {
	if fold == nil {
		fail(ErrNilFoldFunc, "NewDynFolder")
	}
	return &DynFolder[Inner, Item]{inner: inner, fold: fold}
}

// DynFolderFrom creates a folder wrapping the zero value of Inner, folding
// items with fold. fold must not be nil.
func DynFolderFrom[Inner, Item any](fold FoldFunc[Inner, Item]) *DynFolder[Inner, Item] {
	if fold == nil {
		fail(ErrNilFoldFunc, "DynFolderFrom")
	}
	return &DynFolder[Inner, Item]{fold: fold}
}

// Value returns the current inner value.
func (d *DynFolder[Inner, Item]) Value() Inner {
	alive(d.done, "DynFolder.Value")
	return d.inner
}

// Fold calls the fold function once, with the current inner value and item.
func (d *DynFolder[Inner, Item]) Fold(item Item) {
	d.check("DynFolder.Fold")
	d.fold(&d.inner, item)
}

// Extend folds every item of seq into the inner value, in iteration order.
//
// If the fold function panics, items folded before stay applied and the
// remaining items are not pulled from seq.
func (d *DynFolder[Inner, Item]) Extend(seq iter.Seq[Item]) {
	d.check("DynFolder.Extend")
	n := 0
	for item := range seq {
		d.fold(&d.inner, item)
		n++
	}
	tracer().Debugf("dynfolder: extended by %d items", n)
}

// Append folds items into the inner value, left to right.
func (d *DynFolder[Inner, Item]) Append(items ...Item) {
	d.check("DynFolder.Append")
	for _, item := range items {
		d.fold(&d.inner, item)
	}
	tracer().Debugf("dynfolder: appended %d items", len(items))
}

// Unwrap returns the inner value. The folder must not be used afterwards.
func (d *DynFolder[Inner, Item]) Unwrap() Inner {
	alive(d.done, "DynFolder.Unwrap")
	d.done = true
	return d.inner
}

// Consumed is true if the folder has been unwrapped.
func (d *DynFolder[Inner, Item]) Consumed() bool {
	return d.done
}

func (d *DynFolder[Inner, Item]) String() string {
	if d.done {
		return "DynFolder(<unwrapped>)"
	}
	return fmt.Sprintf("DynFolder(%v)", d.inner)
}

func (d *DynFolder[Inner, Item]) check(where string) {
	alive(d.done, where)
	if d.fold == nil {
		fail(ErrNilFoldFunc, where)
	}
}

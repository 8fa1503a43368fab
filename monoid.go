package folderer

import (
	"fmt"
	"iter"
)

// Monoid defines how values are combined by a MonoidFolder.
//
// For values s, t, u, Add should be associative:
//
//	Add(Add(s, t), u) == Add(s, Add(t, u))
//
// and Zero should be the neutral element:
//
//	Add(Zero(), s) == s == Add(s, Zero())
//
// Folders do not check these laws, they just combine items in push order.
type Monoid[T any] interface {
	Zero() T
	Add(left, right T) T
}

// SumMonoid combines values with +.
type SumMonoid[T Summable] struct{}

// Zero returns the zero value of T.
func (SumMonoid[T]) Zero() T {
	var zero T
	return zero
}

// Add returns left + right.
func (SumMonoid[T]) Add(left, right T) T {
	return left + right
}

// ProductMonoid combines values with *.
type ProductMonoid[T Number] struct{}

// Zero returns 1, the neutral element of multiplication.
func (ProductMonoid[T]) Zero() T {
	return 1
}

// Add returns left * right.
func (ProductMonoid[T]) Add(left, right T) T {
	return left * right
}

// MonoidFoldFunc converts m into a fold function for a DynFolder.
func MonoidFoldFunc[T any](m Monoid[T]) FoldFunc[T, T] {
	if m == nil {
		fail(ErrNilMonoid, "MonoidFoldFunc")
	}
	return func(inner *T, item T) {
		*inner = m.Add(*inner, item)
	}
}

// AddFunc returns a fold function which adds items with +=.
//
//	NewDynFolder(0, AddFunc[int]())
//
// folds exactly as
//
//	NewAdder(0)
func AddFunc[T Summable]() FoldFunc[T, T] {
	return func(inner *T, item T) {
		*inner += item
	}
}

// --- Monoid folder ---------------------------------------------------------

// MonoidFolder folds values with a monoid, starting from the monoid's Zero.
//
// MonoidFolder is useful for inner values whose neutral element is not
// Go's zero value, e.g. products or minimum/maximum selections with a sentinel.
type MonoidFolder[T any] struct {
	m     Monoid[T]
	inner T
	done  bool
}

// NewMonoidFolder creates a folder over m.Zero(). m must not be nil.
func NewMonoidFolder[T any](m Monoid[T]) *MonoidFolder[T] {
	if m == nil {
		fail(ErrNilMonoid, "NewMonoidFolder")
	}
	return &MonoidFolder[T]{m: m, inner: m.Zero()}
}

// Value returns the current inner value.
func (f *MonoidFolder[T]) Value() T {
	alive(f.done, "MonoidFolder.Value")
	return f.inner
}

// Push combines the inner value with item.
func (f *MonoidFolder[T]) Push(item T) {
	f.check("MonoidFolder.Push")
	f.inner = f.m.Add(f.inner, item)
}

// Extend combines every item of seq with the inner value, in iteration order.
func (f *MonoidFolder[T]) Extend(seq iter.Seq[T]) {
	f.check("MonoidFolder.Extend")
	n := 0
	for item := range seq {
		f.inner = f.m.Add(f.inner, item)
		n++
	}
	tracer().Debugf("monoid folder: extended by %d items", n)
}

// Append combines items with the inner value, left to right.
func (f *MonoidFolder[T]) Append(items ...T) {
	f.check("MonoidFolder.Append")
	for _, item := range items {
		f.inner = f.m.Add(f.inner, item)
	}
	tracer().Debugf("monoid folder: appended %d items", len(items))
}

// Unwrap returns the inner value. The folder must not be used afterwards.
func (f *MonoidFolder[T]) Unwrap() T {
	alive(f.done, "MonoidFolder.Unwrap")
	f.done = true
	return f.inner
}

// Consumed is true if the folder has been unwrapped.
func (f *MonoidFolder[T]) Consumed() bool {
	return f.done
}

func (f *MonoidFolder[T]) String() string {
	if f.done {
		return "MonoidFolder(<unwrapped>)"
	}
	return fmt.Sprintf("MonoidFolder(%v)", f.inner)
}

func (f *MonoidFolder[T]) check(where string) {
	alive(f.done, where)
	if f.m == nil {
		fail(ErrNilMonoid, where)
	}
}

package folderer

import (
	"fmt"
	"iter"
)

// Number is the set of built-in numeric types, including types derived from them.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Summable is the set of built-in types which support the += operator.
type Summable interface {
	Number | ~string
}

// Adder folds values by using +=.
//
// An Adder created by
//
//	Adder[int]{}
//
// is a valid object and folds onto the zero value of its inner type. Clients
// may use NewAdder to start from a different value.
type Adder[T Summable] struct {
	inner T
	done  bool
}

// NewAdder creates an adder wrapping inner.
func NewAdder[T Summable](inner T) *Adder[T] {
	return &Adder[T]{inner: inner}
}

// CollectAdder creates an adder over the zero value of T and folds all items
// of seq into it.
func CollectAdder[T Summable](seq iter.Seq[T]) *Adder[T] {
	a := &Adder[T]{}
	a.Extend(seq)
	return a
}

// Value returns the current inner value.
func (a *Adder[T]) Value() T {
	alive(a.done, "Adder.Value")
	return a.inner
}

// Push adds item to the inner value.
func (a *Adder[T]) Push(item T) {
	alive(a.done, "Adder.Push")
	a.inner += item
}

// Extend adds every item of seq to the inner value, in iteration order.
func (a *Adder[T]) Extend(seq iter.Seq[T]) {
	alive(a.done, "Adder.Extend")
	n := 0
	for item := range seq {
		a.inner += item
		n++
	}
	tracer().Debugf("adder: extended by %d items", n)
}

// Append adds items to the inner value, left to right.
func (a *Adder[T]) Append(items ...T) {
	alive(a.done, "Adder.Append")
	for _, item := range items {
		a.inner += item
	}
	tracer().Debugf("adder: appended %d items", len(items))
}

// Unwrap returns the inner value. The adder must not be used afterwards.
func (a *Adder[T]) Unwrap() T {
	alive(a.done, "Adder.Unwrap")
	a.done = true
	return a.inner
}

// Consumed is true if the adder has been unwrapped.
func (a *Adder[T]) Consumed() bool {
	return a.done
}

func (a *Adder[T]) String() string {
	if a.done {
		return "Adder(<unwrapped>)"
	}
	return fmt.Sprintf("Adder(%v)", a.inner)
}

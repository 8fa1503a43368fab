package folderer

import (
	"fmt"
	"iter"
)

// AddAssigner is implemented by types which add an item to themselves in place.
type AddAssigner[Item any] interface {
	AddAssign(item Item)
}

// InPlaceAdder constrains P to be a pointer to Inner which implements
// AddAssign(Item). Clients usually do not spell it out: P is inferred from
// Inner when calling NewAccumulator or CollectAccumulator.
type InPlaceAdder[Inner, Item any] interface {
	*Inner
	AddAssigner[Item]
}

// Accumulator folds items into client types by calling their AddAssign method.
//
// Accumulator is the counterpart of Adder for types which cannot use the
// built-in += operator:
//
//	type lines []string
//
//	func (l *lines) AddAssign(s string) { *l = append(*l, s) }
//
//	acc := NewAccumulator[lines, string](nil)
//	acc.Append("a", "b")
//
// The empty instance is a valid accumulator over the zero value of Inner.
type Accumulator[Inner, Item any, P InPlaceAdder[Inner, Item]] struct {
	inner Inner
	done  bool
}

// NewAccumulator creates an accumulator wrapping inner.
func NewAccumulator[Inner, Item any, P InPlaceAdder[Inner, Item]](inner Inner) *Accumulator[Inner, Item, P] {
	return &Accumulator[Inner, Item, P]{inner: inner}
}

// CollectAccumulator creates an accumulator over the zero value of Inner and
// folds all items of seq into it.
func CollectAccumulator[Inner, Item any, P InPlaceAdder[Inner, Item]](seq iter.Seq[Item]) *Accumulator[Inner, Item, P] {
	acc := &Accumulator[Inner, Item, P]{}
	acc.Extend(seq)
	return acc
}

// Value returns the current inner value.
func (acc *Accumulator[Inner, Item, P]) Value() Inner {
	alive(acc.done, "Accumulator.Value")
	return acc.inner
}

// Push adds item to the inner value.
func (acc *Accumulator[Inner, Item, P]) Push(item Item) {
	alive(acc.done, "Accumulator.Push")
	P(&acc.inner).AddAssign(item)
}

// Extend adds every item of seq to the inner value, in iteration order.
func (acc *Accumulator[Inner, Item, P]) Extend(seq iter.Seq[Item]) {
	alive(acc.done, "Accumulator.Extend")
	n := 0
	for item := range seq {
		P(&acc.inner).AddAssign(item)
		n++
	}
	tracer().Debugf("accumulator: extended by %d items", n)
}

// Append adds items to the inner value, left to right.
func (acc *Accumulator[Inner, Item, P]) Append(items ...Item) {
	alive(acc.done, "Accumulator.Append")
	for _, item := range items {
		P(&acc.inner).AddAssign(item)
	}
	tracer().Debugf("accumulator: appended %d items", len(items))
}

// Unwrap returns the inner value. The accumulator must not be used afterwards.
func (acc *Accumulator[Inner, Item, P]) Unwrap() Inner {
	alive(acc.done, "Accumulator.Unwrap")
	acc.done = true
	return acc.inner
}

// Consumed is true if the accumulator has been unwrapped.
func (acc *Accumulator[Inner, Item, P]) Consumed() bool {
	return acc.done
}

func (acc *Accumulator[Inner, Item, P]) String() string {
	if acc.done {
		return "Accumulator(<unwrapped>)"
	}
	return fmt.Sprintf("Accumulator(%v)", acc.inner)
}

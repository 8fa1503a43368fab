package folderer

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestAdderBuiltinInt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "folderer")
	defer teardown()

	sum := CollectAdder(slices.Values([]int{1, 2, 3, 4, 5}))
	t.Logf("sum = %v", sum)
	if sum.Value() != 15 {
		t.Fatalf("expected sum to be 15, is %d", sum.Value())
	}
	sum.Extend(slices.Values([]int{10, 9, 8, 7, 6}))
	if sum.Value() != 55 {
		t.Fatalf("expected sum to be 55, is %d", sum.Value())
	}
}

func TestAdderBuiltinFloat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "folderer")
	defer teardown()

	var sum Adder[float32]
	sum.Extend(slices.Values([]float32{1.0, 2.0, 3.0, 4.0, 5.0}))
	if sum.Value() != 15.0 {
		t.Fatalf("expected sum to be 15.0, is %f", sum.Value())
	}
	sum.Push(10.0)
	if sum.Value() != 25.0 {
		t.Fatalf("expected sum to be 25.0, is %f", sum.Value())
	}
	other := NewAdder[float32](10.0)
	if v := other.Unwrap(); v != 10.0 {
		t.Fatalf("expected unwrapped value to be 10.0, is %f", v)
	}
}

type meters int

func TestAdderDerivedType(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "folderer")
	defer teardown()

	sum := NewAdder[meters](0)
	sum.Append(5, 4, 3, 2, 1)
	if sum.Value() != meters(15) {
		t.Fatalf("expected 15 meters, have %d", sum.Value())
	}
}

func TestAdderStrings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "folderer")
	defer teardown()

	s := NewAdder(">")
	s.Append("a", "b")
	s.Extend(slices.Values([]string{"c", "d"}))
	if s.Unwrap() != ">abcd" {
		t.Fatalf("expected '>abcd', have %q", s.String())
	}
}

func TestAdderEmptySequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "folderer")
	defer teardown()

	sum := CollectAdder(slices.Values([]int64{}))
	if sum.Value() != 0 {
		t.Fatalf("expected empty sum to be 0, is %d", sum.Value())
	}
	sum = NewAdder[int64](7)
	sum.Extend(slices.Values([]int64(nil)))
	sum.Append()
	if sum.Value() != 7 {
		t.Fatalf("expected sum to stay at 7, is %d", sum.Value())
	}
}

func TestAdderExtendPullsInOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "folderer")
	defer teardown()

	var pulled []string
	seq := func(yield func(string) bool) {
		for _, s := range []string{"x", "y", "z"} {
			pulled = append(pulled, s)
			if !yield(s) {
				return
			}
		}
	}
	var a Adder[string]
	a.Extend(seq)
	if a.Value() != "xyz" {
		t.Fatalf("expected items to be added left to right, have %q", a.Value())
	}
	if len(pulled) != 3 {
		t.Fatalf("expected sequence to be pulled exactly once per item, pulled %v", pulled)
	}
}

func TestAdderUnwrapIsTerminal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "folderer")
	defer teardown()

	sum := NewAdder(1)
	sum.Push(2)
	if v := sum.Unwrap(); v != 3 {
		t.Fatalf("expected unwrapped value to be 3, is %d", v)
	}
	if !sum.Consumed() {
		t.Fatalf("expected adder to be consumed after Unwrap")
	}
	if sum.String() != "Adder(<unwrapped>)" {
		t.Fatalf("unexpected string for unwrapped adder: %q", sum.String())
	}
	for name, op := range map[string]func(){
		"Push":   func() { sum.Push(1) },
		"Value":  func() { _ = sum.Value() },
		"Extend": func() { sum.Extend(slices.Values([]int{1})) },
		"Append": func() { sum.Append(1) },
		"Unwrap": func() { _ = sum.Unwrap() },
	} {
		err := recoverFolderError(op)
		if !errors.Is(err, ErrFolderConsumed) {
			t.Errorf("%s after Unwrap: expected ErrFolderConsumed, got %v", name, err)
		}
	}
}

// recoverFolderError runs op and returns the error it panicked with, if any.
func recoverFolderError(op func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()
	op()
	return nil
}

func TestAppendMatchesExtendAtDebugLevel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "folderer")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelDebug)

	items := []int{4, 5, 6}
	adder, extended := NewAdder(1), NewAdder(1)
	adder.Append(items...)
	extended.Extend(slices.Values(items))
	if adder.Value() != extended.Value() {
		t.Errorf("Adder: Append gave %d, Extend gave %d", adder.Value(), extended.Value())
	}
	acc, accExt := NewAccumulator[counter, counter](counter{1}), NewAccumulator[counter, counter](counter{1})
	acc.Append(counters(items...)...)
	accExt.Extend(slices.Values(counters(items...)))
	if acc.Value() != accExt.Value() {
		t.Errorf("Accumulator: Append gave %v, Extend gave %v", acc.Value(), accExt.Value())
	}
	dyn, dynExt := NewDynFolder(1, AddFunc[int]()), NewDynFolder(1, AddFunc[int]())
	dyn.Append(items...)
	dynExt.Extend(slices.Values(items))
	if dyn.Value() != dynExt.Value() {
		t.Errorf("DynFolder: Append gave %d, Extend gave %d", dyn.Value(), dynExt.Value())
	}
	prod, prodExt := NewMonoidFolder[int](ProductMonoid[int]{}), NewMonoidFolder[int](ProductMonoid[int]{})
	prod.Append(items...)
	prodExt.Extend(slices.Values(items))
	if prod.Value() != 120 || prodExt.Value() != 120 {
		t.Errorf("MonoidFolder: Append gave %d, Extend gave %d, expected 120", prod.Value(), prodExt.Value())
	}
}

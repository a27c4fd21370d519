package mdp

import "testing"

func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	f()
}

func TestOrElseShortCircuits(t *testing.T) {
	calls := 0
	alt := func() result[int] {
		calls++
		return matched(2)
	}

	if r := matched(1).orElse(alt); r.unwrap() != 1 {
		t.Fatalf("unwrap = %d, want 1", r.unwrap())
	}
	if calls != 0 {
		t.Fatal("matched outcome must not evaluate the alternative")
	}

	if r := exhausted[int]().orElse(alt); !r.isExhausted() {
		t.Fatal("exhausted outcome must pass through orElse")
	}
	if calls != 0 {
		t.Fatal("exhausted outcome must not evaluate the alternative")
	}

	if r := noMatch[int]().orElse(alt); r.unwrap() != 2 {
		t.Fatalf("unwrap = %d, want 2", r.unwrap())
	}
	if calls != 1 {
		t.Fatalf("alternative evaluated %d times, want 1", calls)
	}
}

func TestFirstOfStopsAtExhausted(t *testing.T) {
	var order []string
	r := firstOf(
		func() result[int] { order = append(order, "a"); return noMatch[int]() },
		func() result[int] { order = append(order, "b"); return exhausted[int]() },
		func() result[int] { order = append(order, "c"); return matched(3) },
	)
	if !r.isExhausted() {
		t.Fatal("expected exhausted outcome")
	}
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("evaluation order = %v", order)
	}
}

func TestFirstOfReturnsFirstMatch(t *testing.T) {
	r := firstOf(
		func() result[int] { return noMatch[int]() },
		func() result[int] { return matched(7) },
		func() result[int] { t.Fatal("must not be reached"); return matched(9) },
	)
	if r.unwrap() != 7 {
		t.Fatalf("unwrap = %d, want 7", r.unwrap())
	}
}

func TestUnwrapPanics(t *testing.T) {
	mustPanic(t, func() { noMatch[int]().unwrap() })
	mustPanic(t, func() { exhausted[int]().unwrap() })
}

func TestValue(t *testing.T) {
	if v, ok := matched(5).value(); !ok || v != 5 {
		t.Fatalf("value = %d, %v", v, ok)
	}
	if v, ok := exhausted[int]().value(); ok || v != 0 {
		t.Fatalf("value = %d, %v, want zero and false", v, ok)
	}
	mustPanic(t, func() { noMatch[int]().value() })
}

func TestMapResult(t *testing.T) {
	double := func(n int) int { return n * 2 }
	if r := mapResult(matched(3), double); r.unwrap() != 6 {
		t.Fatalf("unwrap = %d, want 6", r.unwrap())
	}
	if r := mapResult(noMatch[int](), double); r.isMatched() || r.isExhausted() {
		t.Fatal("non-match must pass through mapResult")
	}
	if r := mapResult(exhausted[int](), double); !r.isExhausted() {
		t.Fatal("exhaustion must pass through mapResult")
	}
}

func TestForward(t *testing.T) {
	if r := forward[string](exhausted[int]()); !r.isExhausted() {
		t.Fatal("forward must carry exhaustion")
	}
	if r := forward[string](noMatch[int]()); r.isMatched() || r.isExhausted() {
		t.Fatal("forward must carry non-match")
	}
}

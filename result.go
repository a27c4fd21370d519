package mdp

// A production over the buffer resolves to exactly one of three outcomes:
// it matched and produced a value, it recognized nothing at the current
// position (cursor restored, callers try alternatives), or the input was
// already exhausted when it was invoked. Exhaustion is not an error and it
// is not a non-match: it tells callers to stop iterating rather than try
// further alternatives.
type resultStatus uint8

const (
	statusMatched resultStatus = iota
	statusNoMatch
	statusExhausted
)

type result[T any] struct {
	status resultStatus
	val    T
}

func matched[T any](v T) result[T] { return result[T]{status: statusMatched, val: v} }

func noMatch[T any]() result[T] { return result[T]{status: statusNoMatch} }

func exhausted[T any]() result[T] { return result[T]{status: statusExhausted} }

// empty is the payload for productions that recognize input without
// capturing anything.
type empty struct{}

func success() result[empty] { return matched(empty{}) }

// orElse tries the next alternative only on a non-match. A matched or
// exhausted outcome short-circuits: end of input is not something a further
// alternative can resolve.
func (r result[T]) orElse(f func() result[T]) result[T] {
	if r.status == statusNoMatch {
		return f()
	}
	return r
}

func (r result[T]) isMatched() bool { return r.status == statusMatched }

func (r result[T]) isExhausted() bool { return r.status == statusExhausted }

// unwrap returns the matched value. Calling it on any other outcome is a
// programmer error, not a recoverable parse failure.
func (r result[T]) unwrap() T {
	switch r.status {
	case statusMatched:
		return r.val
	case statusExhausted:
		panic("mdp: unwrap of exhausted parse outcome")
	default:
		panic("mdp: unwrap of unmatched parse outcome")
	}
}

// value converts the outcome for a total call site: matched yields the value,
// exhausted yields false. A non-match reaching such a site violates the
// totality contract of the block grammar and aborts.
func (r result[T]) value() (T, bool) {
	switch r.status {
	case statusMatched:
		return r.val, true
	case statusExhausted:
		var zero T
		return zero, false
	default:
		panic("mdp: no-match reached a total call site")
	}
}

// mapResult transforms only the matched payload, passing the other two
// outcomes through unchanged.
func mapResult[T, U any](r result[T], f func(T) U) result[U] {
	switch r.status {
	case statusMatched:
		return matched(f(r.val))
	case statusExhausted:
		return exhausted[U]()
	default:
		return noMatch[U]()
	}
}

// forward carries a non-matched outcome across payload types.
func forward[U, T any](r result[T]) result[U] {
	if r.status == statusExhausted {
		return exhausted[U]()
	}
	return noMatch[U]()
}

// firstOf tries alternatives left to right, stopping at the first matched or
// exhausted outcome.
func firstOf[T any](alts ...func() result[T]) result[T] {
	r := noMatch[T]()
	for _, alt := range alts {
		r = r.orElse(alt)
	}
	return r
}

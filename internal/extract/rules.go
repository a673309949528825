package extract

// rule produces one candidate for a field. ok is false when the rule does
// not apply to the input it closed over.
type rule[T any] func() (T, bool)

// first runs rules in order and returns the first candidate produced.
// Priority is strict: once an earlier rule fires, later rules never run.
func first[T any](rules ...rule[T]) (T, bool) {
	for _, r := range rules {
		if v, ok := r(); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

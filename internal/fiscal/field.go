package fiscal

// FieldState tags how strongly an extraction stage believes in a value.
type FieldState uint8

const (
	// FieldUnset means no stage has produced a value yet.
	FieldUnset FieldState = iota
	// FieldTentative marks a value a later stage may still improve on.
	FieldTentative
	// FieldConfirmed marks a value no later stage may replace.
	FieldConfirmed
)

// Field is a tagged extraction slot. Stages communicate through the state
// instead of ad-hoc "already found" flags: Unset accepts anything, Tentative
// yields only to Confirmed, Confirmed never changes.
type Field[T any] struct {
	value T
	state FieldState
}

// Tentative builds a tentative field holding v.
func Tentative[T any](v T) Field[T] {
	return Field[T]{value: v, state: FieldTentative}
}

// Confirmed builds a confirmed field holding v.
func Confirmed[T any](v T) Field[T] {
	return Field[T]{value: v, state: FieldConfirmed}
}

// IsSet reports whether any stage has produced a value.
func (f Field[T]) IsSet() bool { return f.state != FieldUnset }

// State returns the current tag.
func (f Field[T]) State() FieldState { return f.state }

// Get returns the value and whether it is set.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.state != FieldUnset
}

// Value returns the value, or the zero value when unset.
func (f Field[T]) Value() T { return f.value }

// SetTentative stores v only when the slot is still unset.
func (f *Field[T]) SetTentative(v T) bool {
	if f.state != FieldUnset {
		return false
	}
	f.value = v
	f.state = FieldTentative
	return true
}

// Confirm stores v unless the slot already holds a confirmed value.
func (f *Field[T]) Confirm(v T) bool {
	if f.state == FieldConfirmed {
		return false
	}
	f.value = v
	f.state = FieldConfirmed
	return true
}

package fiscal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldZeroValueIsUnset(t *testing.T) {
	var f Field[string]
	assert.False(t, f.IsSet())
	assert.Equal(t, FieldUnset, f.State())

	v, ok := f.Get()
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestFieldConstructors(t *testing.T) {
	tent := Tentative("4711")
	assert.Equal(t, FieldTentative, tent.State())
	assert.Equal(t, "4711", tent.Value())

	conf := Confirmed("98765")
	assert.Equal(t, FieldConfirmed, conf.State())
	assert.Equal(t, "98765", conf.Value())
}

func TestFieldSetTentative(t *testing.T) {
	var f Field[string]

	assert.True(t, f.SetTentative("first"))
	assert.Equal(t, "first", f.Value())

	// A tentative slot never yields to another tentative value.
	assert.False(t, f.SetTentative("second"))
	assert.Equal(t, "first", f.Value())
}

func TestFieldConfirm(t *testing.T) {
	var f Field[string]

	assert.True(t, f.SetTentative("guess"))
	assert.True(t, f.Confirm("sure"))
	assert.Equal(t, "sure", f.Value())
	assert.Equal(t, FieldConfirmed, f.State())

	assert.False(t, f.Confirm("late"))
	assert.False(t, f.SetTentative("later"))
	assert.Equal(t, "sure", f.Value())
}

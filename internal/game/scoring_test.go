package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLetterSet(t *testing.T) {
	t.Run("repetition and order do not matter", func(t *testing.T) {
		assert.Equal(t, NewLetterSet("GLAM"), NewLetterSet("AMALGAM"))
		assert.Equal(t, "AGLM", NewLetterSet("AMALGAM").String())
		assert.Equal(t, "AGLM", NewLetterSet("GLAM").String())
	})

	t.Run("canonical string is sorted ascending", func(t *testing.T) {
		assert.Equal(t, "ACEIORT", NewLetterSet("CACCIATORE").String())
		assert.Equal(t, "AEGLMPX", NewLetterSet("MEGAPLEX").String())
	})

	t.Run("size counts distinct letters", func(t *testing.T) {
		assert.Equal(t, 4, NewLetterSet("AMALGAM").Size())
		assert.Equal(t, 7, NewLetterSet("CACCIATORE").Size())
		assert.Equal(t, 1, NewLetterSet("AAAA").Size())
	})
}

func TestParseLetterSet(t *testing.T) {
	set, err := ParseLetterSet("aceiort")
	require.NoError(t, err)
	assert.Equal(t, NewLetterSet("CACCIATORE"), set)

	_, err = ParseLetterSet("ACE1ORT")
	assert.ErrorIs(t, err, ErrBadLetterSet)
}

func TestLetterSetMembership(t *testing.T) {
	set := NewLetterSet("EROTICA")
	assert.True(t, set.Has('T'))
	assert.False(t, set.Has('Z'))
	assert.False(t, set.Has('t')) // members are uppercase only

	assert.True(t, set.ContainsAll(NewLetterSet("TACO")))
	assert.False(t, set.ContainsAll(NewLetterSet("TACK")))
	assert.Equal(t, []byte("ACEIORT"), set.Letters())
}

func TestWordScore(t *testing.T) {
	t.Run("four letter words score one", func(t *testing.T) {
		assert.Equal(t, 1, WordScore("GAME"))
		assert.Equal(t, 1, WordScore("GLAM"))
	})

	t.Run("longer non-pangrams score their length", func(t *testing.T) {
		assert.Equal(t, 7, WordScore("AMALGAM"))
		assert.Equal(t, 5, WordScore("APPLE"))
	})

	t.Run("pangrams earn the bonus", func(t *testing.T) {
		assert.Equal(t, 10+PangramBonus, WordScore("CACCIATORE"))
		assert.Equal(t, 7+PangramBonus, WordScore("EROTICA"))
		assert.Equal(t, 8+PangramBonus, WordScore("MEGAPLEX"))
	})
}

func TestIsPangram(t *testing.T) {
	assert.True(t, IsPangram("EROTICA"))
	assert.True(t, IsPangram("CACCIATORE")) // repeats don't block pangram status
	assert.False(t, IsPangram("AMALGAM"))
	assert.False(t, IsPangram("GAME"))
}

func TestHoneycomb(t *testing.T) {
	hc := Honeycomb{Letters: NewLetterSet("CACCIATORE"), Center: 'T'}

	t.Run("validity", func(t *testing.T) {
		assert.True(t, hc.Valid())
		assert.False(t, Honeycomb{Letters: NewLetterSet("GLAM"), Center: 'G'}.Valid())
		assert.False(t, Honeycomb{Letters: NewLetterSet("CACCIATORE"), Center: 'Z'}.Valid())
	})

	t.Run("admits center-using words drawn from its letters", func(t *testing.T) {
		assert.True(t, hc.Admits(NewLetterSet("EROTICA")))
		assert.True(t, hc.Admits(NewLetterSet("TACO")))
		assert.False(t, hc.Admits(NewLetterSet("AREA")))  // never uses the center
		assert.False(t, hc.Admits(NewLetterSet("TRUCK"))) // U and K are off the comb
	})

	t.Run("Before orders by letters then center", func(t *testing.T) {
		a := Honeycomb{Letters: NewLetterSet("CACCIATORE"), Center: 'A'}
		b := Honeycomb{Letters: NewLetterSet("CACCIATORE"), Center: 'T'}
		c := Honeycomb{Letters: NewLetterSet("MEGAPLEX"), Center: 'A'}
		assert.True(t, a.Before(b))
		assert.False(t, b.Before(a))
		assert.True(t, a.Before(c)) // "ACEIORT" < "AEGLMPX"
	})
}

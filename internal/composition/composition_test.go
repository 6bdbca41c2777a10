package composition

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExampleBody(t *testing.T) {
	s := Of("ACgtGC", true, true)
	assert.Equal(t, 6, s.Size)
	assert.Equal(t, 4, s.GC)
	assert.Equal(t, 2, s.Repeat)

	gc, err := s.GCPercent()
	require.NoError(t, err)
	assert.Equal(t, 66.67, gc)

	rep, err := s.RepeatPercent()
	require.NoError(t, err)
	assert.Equal(t, 33.33, rep)
}

func TestOrderIndependent(t *testing.T) {
	lines := []string{"ACGTNNacgt", "ggccAT", "", "n-n*"}
	a := New(true, true)
	for _, l := range lines {
		a.Update(l)
	}
	assert.Equal(t, Of(strings.Join(lines, ""), true, true), a.Stats())
}

func TestGCCaseInvariant(t *testing.T) {
	body := "AcGtTTgggCCCaN"
	orig := Of(body, true, false)
	assert.Equal(t, orig.GC, Of(strings.ToUpper(body), true, false).GC)
	assert.Equal(t, orig.GC, Of(strings.ToLower(body), true, false).GC)
}

func TestRepeatCountsLowercaseOnly(t *testing.T) {
	body := "acgtNN--1234xyzACGT"
	assert.Equal(t, 7, Of(body, false, true).Repeat)
	assert.Zero(t, Of(strings.ToUpper(body), false, true).Repeat)
}

func TestUntrackedCountersStayZero(t *testing.T) {
	s := Of("ggcc", false, false)
	assert.Equal(t, 4, s.Size)
	assert.Zero(t, s.GC)
	assert.Zero(t, s.Repeat)
}

func TestZeroSizePercent(t *testing.T) {
	var s Stats
	_, err := s.GCPercent()
	assert.ErrorIs(t, err, ErrInvalidComposition)
	_, err = s.RepeatPercent()
	assert.ErrorIs(t, err, ErrInvalidComposition)
}

func TestPercentRoundsHalfToEven(t *testing.T) {
	gc, err := Stats{Size: 32, GC: 1}.GCPercent()
	require.NoError(t, err)
	assert.Equal(t, 3.12, gc)

	rep, err := Stats{Size: 8, Repeat: 1}.RepeatPercent()
	require.NoError(t, err)
	assert.Equal(t, 12.5, rep)
}

func TestCountsCharactersNotBytes(t *testing.T) {
	s := Of("ACgtéé", true, true)
	assert.Equal(t, 6, s.Size)
	assert.Equal(t, 2, s.GC)
	assert.Equal(t, 4, s.Repeat)

	a := New(false, false)
	a.Update("éA")
	assert.Equal(t, 2, a.Stats().Size)
}

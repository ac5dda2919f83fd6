package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModDemodRestoresBaseline(t *testing.T) {
	mods := []float64{0.2, 1, 0.5, 2, -0.2, 0.33}

	for s := Stat(0); s < numStats; s++ {
		for _, m := range mods {
			var st Stats
			st.Set(s, 7.5)

			st.Mod(s, m)
			assert.InDelta(t, 7.5+7.5*m, st.Get(s), 1e-9, "%s mod %v", s, m)
			st.Demod(s, m)
			assert.InDelta(t, 7.5, st.Get(s), 1e-9, "%s demod %v", s, m)
		}
	}
}

func TestModAccumulates(t *testing.T) {
	var st Stats
	st.Set(Speed, 1)

	st.Mod(Speed, 0.2)
	st.Mod(Speed, 0.2)

	assert.InDelta(t, 1.4, st.Get(Speed), 1e-9)
	assert.InDelta(t, 0.4, st.Modifier(Speed), 1e-9)

	st.Demod(Speed, 0.2)
	assert.InDelta(t, 1.2, st.Get(Speed), 1e-9)
}

func TestModIsAdditiveOverBaseline(t *testing.T) {
	var st Stats
	st.Set(ThrustPierce, 2)

	st.Mod(ThrustPierce, 2)
	st.Mod(ThrustPierce, 1)

	// Not compounded: 2 + 2*(2+1).
	assert.InDelta(t, 8, st.Get(ThrustPierce), 1e-9)
}

func TestSetWhileModified(t *testing.T) {
	var st Stats
	st.Set(Speed, 1)
	st.Mod(Speed, 0.5)

	st.Set(Speed, 2)

	assert.InDelta(t, 3, st.Get(Speed), 1e-9)
	st.Demod(Speed, 0.5)
	assert.InDelta(t, 2, st.Get(Speed), 1e-9)
}

func TestParseStat(t *testing.T) {
	for s := Stat(0); s < numStats; s++ {
		got, ok := ParseStat(s.String())
		assert.True(t, ok)
		assert.Equal(t, s, got)
	}
	_, ok := ParseStat("charisma")
	assert.False(t, ok)
}

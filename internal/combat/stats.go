// Package combat resolves damage against actors: iframes, the save roll,
// shields, stagger, and additive stat modifiers from blessings.
package combat

import "fmt"

// Stat names a modifiable attribute.
type Stat uint8

const (
	Speed Stat = iota
	ArrowDamage
	ArrowPierce
	SlashDamage
	SlashPierce
	ThrustDamage
	ThrustPierce
	DamageTaken

	numStats
)

var statNames = [numStats]string{
	Speed:        "speed",
	ArrowDamage:  "arrow_dmg",
	ArrowPierce:  "arrow_pierce",
	SlashDamage:  "slash_dmg",
	SlashPierce:  "slash_pierce",
	ThrustDamage: "thrust_dmg",
	ThrustPierce: "thrust_pierce",
	DamageTaken:  "dmg_taken",
}

func (s Stat) String() string {
	if s < numStats {
		return statNames[s]
	}
	return fmt.Sprintf("stat(%d)", uint8(s))
}

// ParseStat looks a stat up by its config name.
func ParseStat(name string) (Stat, bool) {
	for i, n := range statNames {
		if n == name {
			return Stat(i), true
		}
	}
	return 0, false
}

// Stats holds the live value of every modifiable attribute together with
// the accumulated modifier and the baseline it applies to.
//
// A modifier m scales the baseline additively: live = base + base*sum(m).
// The baseline is captured on the first Mod or Demod of a stat. Mod and Demod
// are not idempotent; every Mod needs exactly one matching Demod.
type Stats struct {
	live     [numStats]float64
	base     [numStats]float64
	acc      [numStats]float64
	captured [numStats]bool
}

// Get returns the live value of s.
func (st *Stats) Get(s Stat) float64 {
	return st.live[s]
}

// Set assigns the unmodified value of s. If modifiers are active they are
// reapplied on top of the new baseline.
func (st *Stats) Set(s Stat, v float64) {
	if st.captured[s] {
		st.base[s] = v
		st.apply(s)
		return
	}
	st.live[s] = v
}

// Modifier returns the accumulated modifier on s.
func (st *Stats) Modifier(s Stat) float64 {
	return st.acc[s]
}

// Mod adds m to the modifier on s.
func (st *Stats) Mod(s Stat, m float64) {
	st.acc[s] += m
	st.apply(s)
}

// Demod removes m from the modifier on s.
func (st *Stats) Demod(s Stat, m float64) {
	st.acc[s] -= m
	st.apply(s)
}

func (st *Stats) apply(s Stat) {
	if !st.captured[s] {
		st.base[s] = st.live[s]
		st.captured[s] = true
	}
	st.live[s] = st.base[s] + st.base[s]*st.acc[s]
}

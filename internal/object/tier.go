package object

import (
	"math/rand/v2"
	"strings"
)

// Tier is a ball's rank. The set is closed: TierOne through TierEleven.
type Tier int

const (
	TierOne Tier = iota
	TierTwo
	TierThree
	TierFour
	TierFive
	TierSix
	TierSeven
	TierEight
	TierNine
	TierTen
	TierEleven
)

// TierCount is the number of ranks.
const TierCount = 11

// ColliderFactor scales a ball's sprite size to its collider radius.
const ColliderFactor = 0.53

// Properties are the static attributes of a tier.
type Properties struct {
	Scale  float64 // Sprite diameter in world units; also the body mass
	Visual string  // Sprite key for the presentation layer
	Score  uint64  // Points for spawning or fusing into this tier
}

var catalog = [TierCount]Properties{
	TierOne:    {Scale: 25, Visual: "moon.png", Score: 1},
	TierTwo:    {Scale: 35, Visual: "earth.png", Score: 2},
	TierThree:  {Scale: 55, Visual: "mars.png", Score: 4},
	TierFour:   {Scale: 75, Visual: "snow.png", Score: 8},
	TierFive:   {Scale: 100, Visual: "toxic.png", Score: 16},
	TierSix:    {Scale: 125, Visual: "lava.png", Score: 32},
	TierSeven:  {Scale: 150, Visual: "milk.png", Score: 64},
	TierEight:  {Scale: 175, Visual: "green.png", Score: 128},
	TierNine:   {Scale: 200, Visual: "emma.png", Score: 258},
	TierTen:    {Scale: 225, Visual: "sand.png", Score: 512},
	TierEleven: {Scale: 250, Visual: "sun.png", Score: 1024},
}

// SpawnTiers is the low subrange the on-deck ball is drawn from.
var SpawnTiers = [...]Tier{TierOne, TierTwo, TierThree, TierFour, TierFive}

// Properties returns the tier's static attributes.
func (t Tier) Properties() Properties {
	return catalog[t]
}

// Next returns the tier a fusion of two t balls produces.
// The largest tier wraps around to the smallest.
func (t Tier) Next() Tier {
	return (t + 1) % TierCount
}

// Radius returns the collider radius of a full-size ball of this tier.
func (t Tier) Radius() float64 {
	return catalog[t].Scale * ColliderFactor
}

// Valid reports whether t is one of the ranks.
func (t Tier) Valid() bool {
	return t >= TierOne && t < TierCount
}

// String returns the visual key without its extension, e.g. "moon".
func (t Tier) String() string {
	if !t.Valid() {
		return "invalid"
	}
	return strings.TrimSuffix(catalog[t].Visual, ".png")
}

// Tiers returns every rank in ascending order.
func Tiers() []Tier {
	tiers := make([]Tier, TierCount)
	for i := range tiers {
		tiers[i] = Tier(i)
	}
	return tiers
}

// MaxRadius returns the largest collider radius in the catalog.
func MaxRadius() float64 {
	r := 0.0
	for _, t := range Tiers() {
		r = max(r, t.Radius())
	}
	return r
}

// RandomSpawnTier draws uniformly from SpawnTiers.
func RandomSpawnTier(rng *rand.Rand) Tier {
	return SpawnTiers[rng.IntN(len(SpawnTiers))]
}

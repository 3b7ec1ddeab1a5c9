package object

import (
	"math/rand/v2"
	"testing"
)

func TestNextIsCyclicWithoutFixedPoints(t *testing.T) {
	for _, tier := range Tiers() {
		if tier.Next() == tier {
			t.Errorf("%v.Next() is a fixed point", tier)
		}
		got := tier
		for range TierCount {
			got = got.Next()
		}
		if got != tier {
			t.Errorf("%v after %d Next calls = %v, want itself", tier, TierCount, got)
		}
	}
}

func TestNextIsPermutation(t *testing.T) {
	seen := make(map[Tier]bool)
	for _, tier := range Tiers() {
		n := tier.Next()
		if !n.Valid() {
			t.Fatalf("%v.Next() = %d, out of range", tier, n)
		}
		if seen[n] {
			t.Fatalf("%v produced twice by Next", n)
		}
		seen[n] = true
	}
}

func TestTopTierWrapsToBottom(t *testing.T) {
	if got := TierEleven.Next(); got != TierOne {
		t.Fatalf("TierEleven.Next() = %v, want %v", got, TierOne)
	}
}

func TestCatalogValues(t *testing.T) {
	tests := []struct {
		tier   Tier
		scale  float64
		visual string
		score  uint64
	}{
		{TierOne, 25, "moon.png", 1},
		{TierTwo, 35, "earth.png", 2},
		{TierFive, 100, "toxic.png", 16},
		{TierNine, 200, "emma.png", 258},
		{TierEleven, 250, "sun.png", 1024},
	}
	for _, tt := range tests {
		p := tt.tier.Properties()
		if p.Scale != tt.scale || p.Visual != tt.visual || p.Score != tt.score {
			t.Errorf("%v properties = %+v, want {%v %v %v}", tt.tier, p, tt.scale, tt.visual, tt.score)
		}
	}
}

func TestCatalogScalesIncrease(t *testing.T) {
	for _, tier := range Tiers()[1:] {
		if tier.Properties().Scale <= (tier - 1).Properties().Scale {
			t.Errorf("%v is not larger than the tier below it", tier)
		}
	}
	if MaxRadius() != TierEleven.Radius() {
		t.Errorf("MaxRadius = %v, want %v", MaxRadius(), TierEleven.Radius())
	}
}

func TestTierString(t *testing.T) {
	if s := TierThree.String(); s != "mars" {
		t.Errorf("TierThree.String() = %q, want mars", s)
	}
	if s := Tier(42).String(); s != "invalid" {
		t.Errorf("Tier(42).String() = %q", s)
	}
}

func TestRandomSpawnTierStaysLow(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	counts := make(map[Tier]int)
	for range 1000 {
		tier := RandomSpawnTier(rng)
		if tier > TierFive {
			t.Fatalf("drew %v, outside the spawn range", tier)
		}
		counts[tier]++
	}
	if len(counts) != len(SpawnTiers) {
		t.Errorf("drew %d distinct tiers, want all %d", len(counts), len(SpawnTiers))
	}
}

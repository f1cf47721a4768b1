package game

import (
	"fmt"
	"strings"
)

// Variant selects one of the three rule sets
type Variant int

const (
	// VariantA plays the official scoring rules
	VariantA Variant = iota
	// VariantB scores like VariantA but settles contested trophies by card strength
	VariantB
	// VariantC inverts the suits and drops the bonuses
	VariantC
)

var variantNames = []string{"A", "B", "C"}

func (v Variant) String() string {
	if v < VariantA || v > VariantC {
		return "Unknown"
	}
	return variantNames[v]
}

// ParseVariant reads "A", "B" or "C"
func ParseVariant(s string) (Variant, error) {
	for i, name := range variantNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Variant(i), nil
		}
	}
	return VariantA, fmt.Errorf("unknown rule variant %q", s)
}

// WinnerPolicy picks the trophy winner among the players meeting its condition.
// It returns nil when there is no candidate.
type WinnerPolicy func(candidates []*Player) *Player

// RuleSet bundles how a variant scores a Jest and awards trophies
type RuleSet struct {
	Variant Variant
	Scorer  Scorer
	Winner  WinnerPolicy
}

// Rules returns the rule set of a variant. Unknown variants get the official rules.
func Rules(v Variant) RuleSet {
	switch v {
	case VariantB:
		return RuleSet{Variant: VariantB, Scorer: officialScorer{}, Winner: StrongestCandidate}
	case VariantC:
		return RuleSet{Variant: VariantC, Scorer: invertedScorer{}, Winner: FirstCandidate}
	default:
		return RuleSet{Variant: VariantA, Scorer: officialScorer{}, Winner: FirstCandidate}
	}
}

// NumberOfTrophies is 1 for four players, 2 otherwise
func NumberOfTrophies(playerCount int) int {
	if playerCount == 4 {
		return 1
	}
	return 2
}

// FirstCandidate awards the trophy to the first candidate in seat order
func FirstCandidate(candidates []*Player) *Player {
	if len(candidates) == 0 {
		return nil
	}
	return candidates[0]
}

// StrongestCandidate awards the trophy to the candidate holding the strongest
// card, the earliest seat winning a tie
func StrongestCandidate(candidates []*Player) *Player {
	var winner *Player
	for _, c := range candidates {
		if winner == nil || c.Jest.MaxStrength() > winner.Jest.MaxStrength() {
			winner = c
		}
	}
	return winner
}

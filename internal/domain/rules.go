package domain

// ComboType classifies a set of cards played together.
type ComboType int

const (
	Invalid ComboType = iota
	Single
	Pair
	Triple
	Four
	ThreePairsRun // Three consecutive pairs (doi thong)
	FourPairsRun  // Four consecutive pairs
	Straight      // Three or more consecutive ranks, no 2s
	Other         // Multi-card shape that is neither a run nor a same-rank set; reporting only
)

var comboNames = map[ComboType]string{
	Invalid:       "invalid",
	Single:        "single",
	Pair:          "pair",
	Triple:        "triple",
	Four:          "four",
	ThreePairsRun: "three_pairs_run",
	FourPairsRun:  "four_pairs_run",
	Straight:      "straight",
	Other:         "other",
}

func (t ComboType) String() string {
	if name, ok := comboNames[t]; ok {
		return name
	}
	return "invalid"
}

// Classify maps an unordered set of cards to its combo type. It never fails:
// unrecognized input yields Invalid (empty or two mismatched cards) or Other.
func Classify(cards []Card) ComboType {
	n := len(cards)
	switch {
	case n == 0:
		return Invalid
	case n == 1:
		return Single
	}

	// Same-rank sets: pair, triple, four of a kind.
	if allSameRank(cards) {
		switch n {
		case 2:
			return Pair
		case 3:
			return Triple
		case 4:
			return Four
		}
	}

	// Runs of pairs are only recognized at exactly 6 and 8 cards. Anything that
	// fails here falls through to the straight test, which rejects it as well.
	if n == 6 && isPairsRun(cards) {
		return ThreePairsRun
	}
	if n == 8 && isPairsRun(cards) {
		return FourPairsRun
	}

	if n >= 3 {
		if isStraight(cards) {
			return Straight
		}
		return Other
	}
	return Invalid
}

// IsLegal reports whether cards form a playable combination.
func IsLegal(cards []Card) bool {
	switch Classify(cards) {
	case Invalid, Other:
		return false
	}
	return true
}

// Beats reports whether challenger defeats incumbent. An empty incumbent means the
// table is open, so any legal challenger wins. Chop rules are checked before the
// same-shape comparison: a four against a four compares ranks only.
func Beats(challenger, incumbent []Card) bool {
	if !IsLegal(challenger) {
		return false
	}
	if len(incumbent) == 0 {
		return true
	}

	if beats, decided := chop(challenger, incumbent); decided {
		return beats
	}

	// --- Same-shape rules ---
	if len(challenger) != len(incumbent) || Classify(challenger) != Classify(incumbent) {
		return false
	}
	return highest(incumbent).Less(highest(challenger))
}

// IsChop reports whether challenger beats incumbent through the chop hierarchy
// rather than the same-shape comparison.
func IsChop(challenger, incumbent []Card) bool {
	if len(incumbent) == 0 || !IsLegal(challenger) {
		return false
	}
	beats, decided := chop(challenger, incumbent)
	return decided && beats
}

// chop applies the chop hierarchy. decided is false when no chop rule covers the
// pair of shapes and the caller must fall back to the same-shape comparison.
func chop(challenger, incumbent []Card) (beats, decided bool) {
	ct := Classify(challenger)
	it := Classify(incumbent)

	switch {
	case it == Single && incumbent[0].Rank == RankTwo:
		switch ct {
		case Four, ThreePairsRun, FourPairsRun:
			return true, true
		}

	case it == Pair && incumbent[0].Rank == RankTwo:
		switch ct {
		case Four, FourPairsRun:
			return true, true
		}

	case it == ThreePairsRun:
		switch ct {
		case Four, FourPairsRun:
			return true, true
		case ThreePairsRun:
			return topRank(challenger) > topRank(incumbent), true
		}

	case it == Four:
		switch ct {
		case FourPairsRun:
			return true, true
		case Four:
			return topRank(challenger) > topRank(incumbent), true
		}

	case it == FourPairsRun:
		if ct == FourPairsRun {
			return topRank(challenger) > topRank(incumbent), true
		}
	}
	return false, false
}

func allSameRank(cards []Card) bool {
	if len(cards) == 0 {
		return false
	}
	r := cards[0].Rank
	for _, c := range cards {
		if c.Rank != r {
			return false
		}
	}
	return true
}

// isStraight is the single straight predicate: ranks strictly consecutive after
// sorting and no 2 anywhere in the run.
func isStraight(cards []Card) bool {
	if len(cards) < 3 {
		return false
	}
	sorted := Sorted(cards)
	for i, c := range sorted {
		if c.Rank == RankTwo {
			return false
		}
		if i > 0 && c.Rank != sorted[i-1].Rank+1 {
			return false
		}
	}
	return true
}

// isPairsRun checks that cards group into pairs of equal rank whose ranks climb by one.
func isPairsRun(cards []Card) bool {
	if len(cards) < 6 || len(cards)%2 != 0 {
		return false
	}
	sorted := Sorted(cards)
	for i := 0; i < len(sorted); i += 2 {
		if sorted[i].Rank != sorted[i+1].Rank {
			return false
		}
		if i > 0 && sorted[i].Rank != sorted[i-2].Rank+1 {
			return false
		}
	}
	return true
}

// highest returns the top card by rank, then suit.
func highest(cards []Card) Card {
	top := cards[0]
	for _, c := range cards[1:] {
		if top.Less(c) {
			top = c
		}
	}
	return top
}

func topRank(cards []Card) Rank {
	return highest(cards).Rank
}

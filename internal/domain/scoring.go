package domain

// ChopDelta returns the points the chopper gains (and the chopped player loses)
// when challenger beats incumbent through a chop rule. Zero means no transfer.
func ChopDelta(challenger, incumbent []Card) int {
	if !IsChop(challenger, incumbent) {
		return 0
	}

	ct := Classify(challenger)
	it := Classify(incumbent)

	switch it {
	case Single:
		// Only a single 2 is choppable.
		return 5
	case Pair:
		return 10
	case ThreePairsRun:
		switch ct {
		case Four, ThreePairsRun:
			return 5
		}
	case Four:
		return 10
	case FourPairsRun:
		return 20
	}
	return 0
}

// rankPoints holds the end-of-match award per finishing position, keyed by seat count.
var rankPoints = map[int][]int{
	2: {10, 0},
	3: {10, 5, 0},
	4: {10, 5, 0, 0},
}

// RankPoints returns the award per finishing position for a match of seatCount players.
func RankPoints(seatCount int) []int {
	points, ok := rankPoints[seatCount]
	if !ok {
		return make([]int, seatCount)
	}
	return append([]int(nil), points...)
}

// Ranking orders players for the end-of-match award: finishers in the order they went
// out, then anyone still holding cards in seat order. Unknown ids in finishOrder are dropped.
func Ranking(finishOrder, seatOrder []string) []string {
	seated := make(map[string]bool, len(seatOrder))
	for _, id := range seatOrder {
		seated[id] = true
	}

	ranked := make([]string, 0, len(seatOrder))
	placed := make(map[string]bool, len(seatOrder))
	for _, id := range finishOrder {
		if seated[id] && !placed[id] {
			ranked = append(ranked, id)
			placed[id] = true
		}
	}
	for _, id := range seatOrder {
		if !placed[id] {
			ranked = append(ranked, id)
			placed[id] = true
		}
	}
	return ranked
}

package domain

import (
	"math/rand"
	"sort"
)

const (
	// DeckSize is the number of cards in a full deck.
	DeckSize = 52
	// HandSize is the number of cards dealt to each seat.
	HandSize = 13
)

// NewDeck returns an ordered 52-card deck.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for s := Spades; s <= Hearts; s++ {
		for r := RankThree; r <= RankTwo; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// Shuffle permutes the deck in place.
func Shuffle(rng *rand.Rand, deck []Card) {
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
}

// Deal splits the deck into consecutive 13-card hands, one per seat, in seat order.
// Each hand is sorted. Seats beyond the deck capacity receive no cards.
func Deal(deck []Card, seats int) [][]Card {
	hands := make([][]Card, seats)
	for i := 0; i < seats; i++ {
		start, end := i*HandSize, (i+1)*HandSize
		if end > len(deck) {
			break
		}
		hands[i] = append([]Card(nil), deck[start:end]...)
		SortCards(hands[i])
	}
	return hands
}

// SortCards orders cards ascending by rank, then suit.
func SortCards(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		return cards[i].Less(cards[j])
	})
}

// Sorted returns a sorted copy of cards.
func Sorted(cards []Card) []Card {
	out := append([]Card(nil), cards...)
	SortCards(out)
	return out
}

// HasCards reports whether every card in play is held in hand, counting duplicates.
func HasCards(hand []Card, play []Card) bool {
	held := make(map[Card]int, len(hand))
	for _, c := range hand {
		held[c]++
	}
	for _, c := range play {
		if held[c] == 0 {
			return false
		}
		held[c]--
	}
	return true
}

// RemoveCards removes the specified cards from a hand and returns the updated hand.
func RemoveCards(hand []Card, toRemove []Card) []Card {
	if len(toRemove) == 0 || len(hand) == 0 {
		return hand
	}

	removeCounts := make(map[Card]int, len(toRemove))
	for _, card := range toRemove {
		removeCounts[card]++
	}

	updated := make([]Card, 0, len(hand))
	for _, card := range hand {
		if count := removeCounts[card]; count > 0 {
			removeCounts[card] = count - 1
			continue
		}
		updated = append(updated, card)
	}

	return updated
}

// Contains reports whether hand holds c.
func Contains(hand []Card, c Card) bool {
	for _, h := range hand {
		if h == c {
			return true
		}
	}
	return false
}

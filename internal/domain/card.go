package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Suit is a card suit. The numeric order is the tie-break order: Spades < Clubs < Diamonds < Hearts.
type Suit int

const (
	Spades Suit = iota
	Clubs
	Diamonds
	Hearts
)

// Rank is a card face value mapped to 3..15, where 15 is the "2" (the top card).
type Rank int

const (
	RankThree Rank = 3
	RankJack  Rank = 11
	RankQueen Rank = 12
	RankKing  Rank = 13
	RankAce   Rank = 14
	RankTwo   Rank = 15
)

var suitSymbols = [...]string{"♠", "♣", "♦", "♥"}

// String returns the suit symbol.
func (s Suit) String() string {
	if !s.Valid() {
		return "?"
	}
	return suitSymbols[s]
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s >= Spades && s <= Hearts
}

// ParseSuit accepts a suit symbol or its letter (S, C, D, H).
func ParseSuit(v string) (Suit, error) {
	switch v {
	case "♠", "S", "s":
		return Spades, nil
	case "♣", "C", "c":
		return Clubs, nil
	case "♦", "D", "d":
		return Diamonds, nil
	case "♥", "H", "h":
		return Hearts, nil
	}
	return 0, fmt.Errorf("unknown suit %q", v)
}

// MarshalJSON encodes the suit as its symbol.
func (s Suit) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid suit %d", int(s))
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts a symbol, a letter or the numeric suit index.
func (s *Suit) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		parsed, err := ParseSuit(str)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("suit must be a string or number: %w", err)
	}
	if !Suit(n).Valid() {
		return fmt.Errorf("invalid suit %d", n)
	}
	*s = Suit(n)
	return nil
}

// Valid reports whether r is within 3..15.
func (r Rank) Valid() bool {
	return r >= RankThree && r <= RankTwo
}

// String returns the face label of the rank.
func (r Rank) String() string {
	switch r {
	case RankJack:
		return "J"
	case RankQueen:
		return "Q"
	case RankKing:
		return "K"
	case RankAce:
		return "A"
	case RankTwo:
		return "2"
	}
	if r.Valid() {
		return strconv.Itoa(int(r))
	}
	return "?"
}

// Card is a single playing card. Cards compare equal by (Suit, Rank).
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// Valid reports whether the card exists in a standard deck.
func (c Card) Valid() bool {
	return c.Suit.Valid() && c.Rank.Valid()
}

// Less orders cards by rank, then suit.
func (c Card) Less(o Card) bool {
	if c.Rank != o.Rank {
		return c.Rank < o.Rank
	}
	return c.Suit < o.Suit
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// ThreeOfSpades opens the first match when no previous winner is seated.
var ThreeOfSpades = Card{Suit: Spades, Rank: RankThree}

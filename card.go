package main

import (
	"errors"
	"fmt"
)

// Suit is one of the four card suits. Suits have no ordering, only equality.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

var suitGlyphs = [...]string{"♤", "♡", "♢", "♧"}
var suitNames = [...]string{"Spades", "Hearts", "Diamonds", "Clubs"}

// Glyph returns the suit symbol used on rendered card faces.
func (s Suit) Glyph() string {
	return suitGlyphs[s]
}

// Name returns the English suit name.
func (s Suit) Name() string {
	return suitNames[s]
}

// Rank is a card rank between 1 and 10. Ace is 1; Jack, Queen and King are
// 8, 9 and 10, and keep those values when pairing.
type Rank int

// ErrInvalidRank reports a numeric rank outside [1,10].
var ErrInvalidRank = errors.New("rank must be between 1 and 10")

// NewRank validates n as a Rank.
func NewRank(n int) (Rank, error) {
	if n < MinRank || n > MaxRank {
		return 0, fmt.Errorf("%w, got %d", ErrInvalidRank, n)
	}
	return Rank(n), nil
}

const (
	MinRank = 1
	MaxRank = 10
	// PairSum is the rank total a pair must reach to be removed.
	PairSum = 10
)

var faceSymbols = [...]string{"J", "Q", "K"}
var faceNames = [...]string{"Jack", "Queen", "King"}

// Symbol returns the short rank label shown on a card face:
// "A" for the ace, the numeral for 2-7, "J"/"Q"/"K" for 8/9/10.
func (r Rank) Symbol() string {
	switch {
	case r == 1:
		return "A"
	case r < 8:
		return fmt.Sprintf("%d", int(r))
	default:
		return faceSymbols[r-8]
	}
}

// Name returns the full rank name used in messages.
func (r Rank) Name() string {
	switch {
	case r == 1:
		return "Ace"
	case r < 8:
		return fmt.Sprintf("%d", int(r))
	default:
		return faceNames[r-8]
	}
}

// Card is a single playing card. Identity is the pointer: every card is
// created once at game start and moves between collections by ownership
// transfer, so two *Card values are the same card iff they are equal.
type Card struct {
	suit    Suit
	rank    Rank
	covered bool
}

// NewCard is a constructor for the Card struct. Cards start covered.
func NewCard(suit Suit, rank Rank) *Card {
	return &Card{
		suit:    suit,
		rank:    rank,
		covered: true,
	}
}

// Suit returns the suit of the card.
func (c *Card) Suit() Suit {
	return c.suit
}

// Rank returns the rank of the card.
func (c *Card) Rank() Rank {
	return c.rank
}

// IsCovered reports whether the card is face down and unselectable.
func (c *Card) IsCovered() bool {
	return c.covered
}

func (c *Card) setCovered(covered bool) {
	c.covered = covered
}

// CanPair reports whether this card and other may be removed together:
// their ranks must sum to exactly ten and they must be distinct cards.
func (c *Card) CanPair(other *Card) bool {
	return c != other && c.rank+other.rank == PairSum
}

// Is reports whether the card has the given suit and rank. Suit and rank
// form a unique key across the whole deck.
func (c *Card) Is(suit Suit, rank Rank) bool {
	return c.suit == suit && c.rank == rank
}

// Name returns e.g. "Queen of Hearts".
func (c *Card) Name() string {
	return c.rank.Name() + " of " + c.suit.Name()
}

// String representation for debugging
func (c *Card) String() string {
	return c.rank.Symbol() + c.suit.Glyph()
}

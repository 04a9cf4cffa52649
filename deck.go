package main

import (
	"errors"
	"math/rand"
)

// DeckSize is the number of cards in play: 4 suits x ranks 1-10.
const DeckSize = 40

// ErrDrawEmpty reports a draw from an empty pile. It is the loss
// condition, not a recoverable input error.
var ErrDrawEmpty = errors.New("attempted to draw a card from an empty deck")

// Deck is a LIFO pile of cards. The tail of the slice is the top.
// It serves as the draw pile and the completed pile.
type Deck struct {
	cards []*Card
}

// NewDeck returns the full 40-card deck, shuffled with rng.
func NewDeck(rng *rand.Rand) *Deck {
	cards := make([]*Card, 0, DeckSize)
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Rank(MinRank); rank <= MaxRank; rank++ {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return &Deck{cards: cards}
}

// NewEmptyDeck returns a pile with no cards.
func NewEmptyDeck() *Deck {
	return &Deck{}
}

// Len returns the number of cards in the pile.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Top returns the top card without removing it, or nil when empty.
func (d *Deck) Top() *Card {
	if len(d.cards) == 0 {
		return nil
	}
	return d.cards[len(d.cards)-1]
}

// Put places card on top of the pile.
func (d *Deck) Put(card *Card) {
	d.cards = append(d.cards, card)
}

// Draw removes and returns the top card, turning it face up.
// It fails with ErrDrawEmpty when the pile has no cards.
func (d *Deck) Draw() (*Card, error) {
	card := d.pop()
	if card == nil {
		return nil, ErrDrawEmpty
	}
	card.setCovered(false)
	return card, nil
}

func (d *Deck) pop() *Card {
	if len(d.cards) == 0 {
		return nil
	}
	card := d.cards[len(d.cards)-1]
	d.cards[len(d.cards)-1] = nil
	d.cards = d.cards[:len(d.cards)-1]
	return card
}

// Remove takes card out of the pile only if it is the exact top card.
// It reports whether it did, leaving the pile untouched otherwise, so
// callers can try several piles without committing.
func (d *Deck) Remove(card *Card) bool {
	if d.Top() != card {
		return false
	}
	d.pop()
	return true
}

// Select returns the top card if it matches suit and rank, else nil.
// It does not mutate the pile.
func (d *Deck) Select(suit Suit, rank Rank) *Card {
	top := d.Top()
	if top == nil || !top.Is(suit, rank) {
		return nil
	}
	return top
}

// DiscardPile is a Deck whose two topmost cards are independently
// selectable and removable. Removing the second-from-top card is
// positional: the card above it stays on top.
type DiscardPile struct {
	Deck
}

// NewDiscardPile returns an empty discard pile.
func NewDiscardPile() *DiscardPile {
	return &DiscardPile{}
}

// SecondFromTop returns the card directly beneath the top card, or nil
// when the pile holds fewer than two cards.
func (p *DiscardPile) SecondFromTop() *Card {
	if len(p.cards) < 2 {
		return nil
	}
	return p.cards[len(p.cards)-2]
}

// Remove takes card out of the pile if it is the top or the
// second-from-top card, and reports whether it did.
func (p *DiscardPile) Remove(card *Card) bool {
	if p.Deck.Remove(card) {
		return true
	}
	if p.SecondFromTop() != card {
		return false
	}
	top := p.pop()
	p.pop()
	p.Put(top)
	return true
}

// Select checks the top card first, then the second-from-top. The top
// card shadows the one beneath it when both could match (they cannot:
// suit and rank are unique), and the order matters for the
// below-top-of-pile rule enforced by the engine.
func (p *DiscardPile) Select(suit Suit, rank Rank) *Card {
	if card := p.Deck.Select(suit, rank); card != nil {
		return card
	}
	if second := p.SecondFromTop(); second != nil && second.Is(suit, rank) {
		return second
	}
	return nil
}

package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stacked returns a draw pile whose cards come off the top in the given
// order: the first card is dealt or drawn first.
func stacked(cards ...*Card) *Deck {
	d := NewEmptyDeck()
	for i := len(cards) - 1; i >= 0; i-- {
		d.Put(cards[i])
	}
	return d
}

func TestNewDeck(t *testing.T) {
	deck := NewDeck(rand.New(rand.NewSource(1)))
	require.Equal(t, DeckSize, deck.Len())

	seen := make(map[cardKey]bool)
	for _, card := range deck.cards {
		key := cardKey{card.Suit(), card.Rank()}
		assert.False(t, seen[key], "duplicate %s", card.Name())
		seen[key] = true
		assert.True(t, card.IsCovered())
	}
	assert.Len(t, seen, DeckSize)
}

func TestDeckDraw(t *testing.T) {
	top := NewCard(Hearts, 5)
	under := NewCard(Spades, 2)
	deck := stacked(top, under)

	card, err := deck.Draw()
	require.NoError(t, err)
	assert.Same(t, top, card)
	assert.False(t, card.IsCovered(), "drawing turns the card face up")
	assert.Equal(t, 1, deck.Len())

	_, err = deck.Draw()
	require.NoError(t, err)
	_, err = deck.Draw()
	assert.ErrorIs(t, err, ErrDrawEmpty)
}

func TestDeckRemoveTopOnly(t *testing.T) {
	top := NewCard(Hearts, 5)
	under := NewCard(Spades, 2)
	deck := stacked(top, under)

	assert.False(t, deck.Remove(under), "only the top card is removable")
	assert.Equal(t, 2, deck.Len())
	assert.True(t, deck.Remove(top))
	assert.Equal(t, 1, deck.Len())
	assert.Same(t, under, deck.Top())
}

func TestDeckSelect(t *testing.T) {
	top := NewCard(Hearts, 5)
	under := NewCard(Spades, 2)
	deck := stacked(top, under)

	assert.Same(t, top, deck.Select(Hearts, 5))
	assert.Nil(t, deck.Select(Spades, 2), "only the top card is selectable")
	assert.Equal(t, 2, deck.Len(), "select does not mutate")
}

func TestDiscardPileSecondFromTop(t *testing.T) {
	bottom := NewCard(Clubs, 9)
	second := NewCard(Spades, 2)
	top := NewCard(Hearts, 5)
	pile := NewDiscardPile()
	pile.Put(bottom)
	pile.Put(second)
	pile.Put(top)

	assert.Same(t, top, pile.Top())
	assert.Same(t, second, pile.SecondFromTop())
	assert.Same(t, top, pile.Select(Hearts, 5))
	assert.Same(t, second, pile.Select(Spades, 2))
	assert.Nil(t, pile.Select(Clubs, 9), "cards below the top two are hidden")
}

func TestDiscardPileRemoveSecondKeepsTop(t *testing.T) {
	bottom := NewCard(Clubs, 9)
	second := NewCard(Spades, 2)
	top := NewCard(Hearts, 5)
	pile := NewDiscardPile()
	pile.Put(bottom)
	pile.Put(second)
	pile.Put(top)

	require.True(t, pile.Remove(second))
	assert.Same(t, top, pile.Top(), "the previous top stays on top")
	assert.Same(t, bottom, pile.SecondFromTop(), "the card below rises into reach")

	require.True(t, pile.Remove(top))
	assert.Same(t, bottom, pile.Top())
	assert.Nil(t, pile.SecondFromTop())
}

func TestDiscardPileRemoveEmpty(t *testing.T) {
	pile := NewDiscardPile()
	assert.False(t, pile.Remove(NewCard(Hearts, 5)))
}

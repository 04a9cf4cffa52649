package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRank(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantErr bool
	}{
		{name: "ace", n: 1},
		{name: "seven", n: 7},
		{name: "king", n: 10},
		{name: "zero", n: 0, wantErr: true},
		{name: "eleven", n: 11, wantErr: true},
		{name: "negative", n: -3, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rank, err := NewRank(tt.n)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidRank)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Rank(tt.n), rank)
		})
	}
}

func TestRankLabels(t *testing.T) {
	tests := []struct {
		rank   Rank
		symbol string
		name   string
	}{
		{rank: 1, symbol: "A", name: "Ace"},
		{rank: 2, symbol: "2", name: "2"},
		{rank: 7, symbol: "7", name: "7"},
		{rank: 8, symbol: "J", name: "Jack"},
		{rank: 9, symbol: "Q", name: "Queen"},
		{rank: 10, symbol: "K", name: "King"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.symbol, tt.rank.Symbol())
		assert.Equal(t, tt.name, tt.rank.Name())
	}
}

func TestCanPair(t *testing.T) {
	three := NewCard(Hearts, 3)
	seven := NewCard(Spades, 7)
	fiveH := NewCard(Hearts, 5)
	fiveS := NewCard(Spades, 5)
	four := NewCard(Clubs, 4)

	assert.True(t, three.CanPair(seven))
	assert.True(t, seven.CanPair(three))
	assert.True(t, fiveH.CanPair(fiveS))
	assert.False(t, fiveH.CanPair(fiveH), "a card never pairs with itself")
	assert.False(t, three.CanPair(four))
}

func TestCardIdentity(t *testing.T) {
	card := NewCard(Diamonds, 9)
	assert.True(t, card.Is(Diamonds, 9))
	assert.False(t, card.Is(Hearts, 9))
	assert.False(t, card.Is(Diamonds, 8))
	assert.Equal(t, "Queen of Diamonds", card.Name())
	assert.Equal(t, "Q♢", card.String())
	assert.True(t, card.IsCovered(), "cards start covered")
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseActionDraw(t *testing.T) {
	for _, line := range []string{"d", "draw"} {
		action, err := ParseAction(line)
		require.NoError(t, err, line)
		assert.Equal(t, ActionDraw, action.Type)
	}
}

func TestParseActionPair(t *testing.T) {
	action, err := ParseAction("5h 5s")
	require.NoError(t, err)
	assert.Equal(t, ActionPair, action.Type)
	require.Len(t, action.Specs, 2)
	assert.Equal(t, CardSpec{Suit: Hearts, Rank: 5}, action.Specs[0])
	assert.Equal(t, CardSpec{Suit: Spades, Rank: 5}, action.Specs[1])

	action, err = ParseAction("10h")
	require.NoError(t, err)
	require.Len(t, action.Specs, 1)
	assert.Equal(t, CardSpec{Suit: Hearts, Rank: 10}, action.Specs[0])
}

func TestParseCardSpec(t *testing.T) {
	tests := []struct {
		input string
		want  CardSpec
		err   error
	}{
		{input: "1s", want: CardSpec{Suit: Spades, Rank: 1}},
		{input: "as", want: CardSpec{Suit: Spades, Rank: 1}},
		{input: "7c", want: CardSpec{Suit: Clubs, Rank: 7}},
		{input: "jd", want: CardSpec{Suit: Diamonds, Rank: 8}},
		{input: "qh", want: CardSpec{Suit: Hearts, Rank: 9}},
		{input: "kh", want: CardSpec{Suit: Hearts, Rank: 10}},
		{input: "10d", want: CardSpec{Suit: Diamonds, Rank: 10}},
		{input: "11h", err: ErrInvalidRank},
		{input: "0s", err: ErrInvalidRank},
		{input: "5x", err: ErrMalformedSpecifier},
		{input: "x5", err: ErrMalformedSpecifier},
		{input: "5", err: ErrMalformedSpecifier},
		{input: "h", err: ErrMalformedSpecifier},
		{input: "five of hearts", err: ErrMalformedSpecifier},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			spec, err := ParseCardSpec(tt.input)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, spec)
		})
	}
}

func TestParseActionWrongCount(t *testing.T) {
	for _, line := range []string{"", "   ", "1h 2h 3h"} {
		_, err := ParseAction(line)
		assert.ErrorIs(t, err, ErrWrongSelectionCount, "%q", line)
	}
}

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "5h 5s", normalizeInput("  5H 5S\n"))
}

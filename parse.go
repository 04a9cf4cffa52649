package main

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformedSpecifier reports input that does not match the
// <rank><suit> grammar.
var ErrMalformedSpecifier = errors.New("could not identify a valid rank and suit")

// ActionType distinguishes the two things a turn can do.
type ActionType int

const (
	ActionDraw ActionType = iota
	ActionPair
)

// Action is one parsed line of player input.
type Action struct {
	Type  ActionType
	Specs []CardSpec
}

// CardSpec names a card by suit and rank.
type CardSpec struct {
	Suit Suit
	Rank Rank
}

// Name returns the would-be card's name, e.g. "Queen of Hearts".
func (s CardSpec) Name() string {
	return s.Rank.Name() + " of " + s.Suit.Name()
}

// A specifier is a rank (1-10, or a letter among a/j/q/k) directly
// followed by a suit letter, e.g. "5h", "10d", "qs".
var specifierPattern = regexp.MustCompile(`^(\d{1,2}|[ajqk])([shdc])$`)

var suitLetters = map[string]Suit{
	"s": Spades,
	"h": Hearts,
	"d": Diamonds,
	"c": Clubs,
}

var rankLetters = map[string]Rank{
	"a": 1,
	"j": 8,
	"q": 9,
	"k": 10,
}

// normalizeInput prepares a raw input line for ParseAction, which
// expects trimmed, lowercased text.
func normalizeInput(line string) string {
	return strings.ToLower(strings.TrimSpace(line))
}

// ParseAction parses one trimmed, lowercased line of input: the draw
// literal, or one or two whitespace-separated card specifiers.
func ParseAction(line string) (Action, error) {
	fields := strings.Fields(line)
	if len(fields) == 1 && (fields[0] == "d" || fields[0] == "draw") {
		return Action{Type: ActionDraw}, nil
	}
	if len(fields) == 0 || len(fields) > 2 {
		return Action{}, ErrWrongSelectionCount
	}
	specs := make([]CardSpec, 0, len(fields))
	for _, field := range fields {
		spec, err := ParseCardSpec(field)
		if err != nil {
			return Action{}, err
		}
		specs = append(specs, spec)
	}
	return Action{Type: ActionPair, Specs: specs}, nil
}

// ParseCardSpec parses a single <rank><suit> specifier.
func ParseCardSpec(input string) (CardSpec, error) {
	match := specifierPattern.FindStringSubmatch(input)
	if match == nil {
		return CardSpec{}, fmt.Errorf("%w in %q", ErrMalformedSpecifier, input)
	}
	rank, ok := rankLetters[match[1]]
	if !ok {
		n, _ := strconv.Atoi(match[1])
		var err error
		if rank, err = NewRank(n); err != nil {
			return CardSpec{}, err
		}
	}
	return CardSpec{Suit: suitLetters[match[2]], Rank: rank}, nil
}

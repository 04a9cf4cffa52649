package main

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// GameState defines the possible states of the game.
type GameState int

const (
	StateAwaitingAction GameState = iota
	StateDrawing
	StateSelectingFirst
	StateSelectingSecond
	StateResolving
	StateWon
	StateLost
)

// DefaultRows is the triangle height of a standard deal: 21 triangle
// cards plus a 6-card terminal row, leaving 13 cards in the draw pile.
const DefaultRows = 6

// Recoverable rule errors. They are reported to the player and the turn
// is re-prompted; no pile or tableau mutation happens before every
// validation for an action has passed.
var (
	ErrCardUnavailable     = errors.New("the selected card is not available")
	ErrWrongSelectionCount = errors.New("select one rank-ten card or exactly two cards")
	ErrInvalidPair         = errors.New("invalid pair attempt")
	ErrBelowTopOfPile      = errors.New("a card below the top of the discard pile can only be taken together with the card on top")
	ErrGameOver            = errors.New("the game is over")
)

// Game owns the four card collections and drives the turn state
// machine. Every card is in exactly one of the draw pile, discard pile,
// tableau or completed pile at all times.
type Game struct {
	draw      *Deck
	discard   *DiscardPile
	completed *Deck
	tableau   *Tableau
	state     GameState
	mu        sync.Mutex // Protects concurrent access from UI callbacks and timers.
}

// NewGame deals a fresh standard game. A nil rng gets a time-seeded one.
func NewGame(rng *rand.Rand) *Game {
	return NewGameWithRows(rng, DefaultRows)
}

// NewGameWithRows deals a game with a pyramid of the given height.
// Heights the 40-card deck cannot fill fall back to DefaultRows.
func NewGameWithRows(rng *rand.Rand, height int) *Game {
	if height < 1 || TableauCardCount(height) > DeckSize {
		height = DefaultRows
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return newGameFromDeck(NewDeck(rng), height)
}

// newGameFromDeck deals from an already-ordered draw pile, so tests can
// stack the deck instead of injecting a shuffle.
func newGameFromDeck(draw *Deck, height int) *Game {
	return &Game{
		draw:      draw,
		discard:   NewDiscardPile(),
		completed: NewEmptyDeck(),
		tableau:   NewTableau(draw, height),
		state:     StateAwaitingAction,
	}
}

// State returns the current game state.
func (g *Game) State() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Over reports whether the game has reached a terminal state.
func (g *Game) Over() bool {
	state := g.State()
	return state == StateWon || state == StateLost
}

// HandleInput resolves one line of player input: either a draw request
// or a pairing request, per the action grammar.
func (g *Game) HandleInput(line string) error {
	action, err := ParseAction(line)
	if err != nil {
		return err
	}
	if action.Type == ActionDraw {
		return g.Draw()
	}
	return g.Pair(action.Specs...)
}

// Draw pops the top card of the draw pile onto the discard pile.
// Drawing from an empty pile is the loss condition: the game moves to
// StateLost and ErrDrawEmpty propagates out of the turn.
func (g *Game) Draw() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == StateWon || g.state == StateLost {
		return ErrGameOver
	}
	g.state = StateDrawing
	card, err := g.draw.Draw()
	if err != nil {
		g.state = StateLost
		PlaySound(SoundLose)
		return err
	}
	g.discard.Put(card)
	g.state = StateAwaitingAction
	PlaySound(SoundDraw)
	return nil
}

// selection is a resolved card specifier: the card plus where it was
// found, which the pairing rules below depend on.
type selection struct {
	card     *Card
	belowTop bool // resolved to the discard pile's second-from-top card
}

// Pair removes the named cards: two exposed cards whose ranks sum to
// ten, or a lone rank-ten card. Every validation runs before the first
// removal, so a rejected attempt leaves the game untouched.
func (g *Game) Pair(specs ...CardSpec) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == StateWon || g.state == StateLost {
		return ErrGameOver
	}
	if len(specs) == 0 || len(specs) > 2 {
		g.state = StateAwaitingAction
		return ErrWrongSelectionCount
	}

	g.state = StateSelectingFirst
	first, err := g.resolve(specs[0])
	if err != nil {
		g.state = StateAwaitingAction
		return err
	}

	if len(specs) == 1 {
		// A lone selection is only valid for a rank that sums to ten by
		// itself, and only when the card is fully exposed at the true
		// top of whatever holds it, never the shadow second slot.
		if first.card.Rank() != PairSum {
			g.state = StateAwaitingAction
			return ErrWrongSelectionCount
		}
		if first.belowTop {
			g.state = StateAwaitingAction
			return ErrBelowTopOfPile
		}
		g.commit(first.card)
		return g.finishRemoval()
	}

	g.state = StateSelectingSecond
	second, err := g.resolve(specs[1])
	if err != nil {
		g.state = StateAwaitingAction
		return err
	}
	if first.card == second.card {
		g.state = StateAwaitingAction
		return fmt.Errorf("%w: cannot pair %s with itself", ErrInvalidPair, first.card.Name())
	}
	if !first.card.CanPair(second.card) {
		g.state = StateAwaitingAction
		return fmt.Errorf("%w between %s and %s: the ranks add up to %d, not %d",
			ErrInvalidPair, first.card.Name(), second.card.Name(),
			first.card.Rank()+second.card.Rank(), PairSum)
	}
	// Taking the second-from-top discard card must also take the card
	// resting on it; pulling from beneath the top alongside anything
	// else is rejected no matter which specifier named it.
	top := g.discard.Top()
	if (first.belowTop && second.card != top) || (second.belowTop && first.card != top) {
		g.state = StateAwaitingAction
		return ErrBelowTopOfPile
	}

	g.commit(first.card)
	g.commit(second.card)
	return g.finishRemoval()
}

// resolve finds the card a specifier names. The discard pile is checked
// first (top, then second-from-top), then the tableau; the first
// structural match wins.
func (g *Game) resolve(spec CardSpec) (selection, error) {
	if card := g.discard.Select(spec.Suit, spec.Rank); card != nil {
		return selection{card: card, belowTop: card == g.discard.SecondFromTop()}, nil
	}
	if card := g.tableau.Select(spec.Suit, spec.Rank); card != nil {
		return selection{card: card}, nil
	}
	return selection{}, fmt.Errorf("%w: %s", ErrCardUnavailable, spec.Name())
}

// commit moves a validated card to the completed pile. The discard pile
// gets the first try and declines cards it does not hold; the tableau
// removal then runs its uncovering logic.
func (g *Game) commit(card *Card) {
	g.state = StateResolving
	if !g.discard.Remove(card) {
		g.tableau.Remove(card)
	}
	card.setCovered(true)
	g.completed.Put(card)
}

func (g *Game) finishRemoval() error {
	if g.tableau.IsCleared() {
		g.state = StateWon
		PlaySound(SoundWin)
		return nil
	}
	g.state = StateAwaitingAction
	PlaySound(SoundPair)
	return nil
}

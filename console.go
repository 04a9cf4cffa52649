package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	cardTop        = "┌───┐"
	cardBottom     = "└───┘"
	emptyPileTop   = "┌   ┐"
	emptyPileBot   = "└   ┘"
	consoleRules   = `Piramide: clear the pyramid before the draw pile runs out.
Remove two exposed cards whose ranks sum to ten, or a King (rank ten) alone.
A card is exposed once every card resting on it is gone; the bottom row
starts exposed. You may also take the discard pile's top two cards.
Actions: "d" draws a card; "5h 5s" pairs the 5 of Hearts with the 5 of
Spades; "kd" removes the King of Diamonds alone.`
)

// cardLayers renders one slot as the four text lines of a card: a face
// for an exposed card, "?¿" for a covered back, blank space for an
// absent card.
func cardLayers(slot SlotView) [4]string {
	if !slot.Present {
		return [4]string{"     ", "     ", "     ", "     "}
	}
	rank, suit := slot.Rank.Symbol(), slot.Suit.Glyph()
	if slot.Covered {
		rank, suit = "?", "¿"
	}
	return [4]string{
		cardTop,
		fmt.Sprintf("│ %s │", rank),
		fmt.Sprintf("│ %s │", suit),
		cardBottom,
	}
}

// renderRow writes one tableau row, indented so the triangle stays
// centered over its widest row.
func renderRow(w io.Writer, row RowView, indent int) {
	layers := make([][4]string, len(row.Slots))
	for i, slot := range row.Slots {
		layers[i] = cardLayers(slot)
	}
	for line := 0; line < 4; line++ {
		parts := make([]string, len(layers))
		for i := range layers {
			parts[i] = layers[i][line]
		}
		fmt.Fprintln(w, strings.Repeat(" ", indent)+strings.Join(parts, " "))
	}
}

// renderSnapshot writes the whole table: pyramid, draw pile, discard
// pile (top two) and completed pile.
func renderSnapshot(w io.Writer, snap Snapshot) {
	height := 0
	for _, row := range snap.Rows {
		if !row.Terminal {
			height++
		}
	}
	for y, row := range snap.Rows {
		indent := 0
		if !row.Terminal {
			indent = 3 * (height - y - 1)
		}
		renderRow(w, row, indent)
	}

	fmt.Fprintf(w, "\nCards in deck: %d\n", snap.DrawCount)
	if snap.DrawTop.Present {
		renderRow(w, RowView{Slots: []SlotView{snap.DrawTop}}, 0)
	} else {
		fmt.Fprintf(w, "%s\n\n\n%s\n", emptyPileTop, emptyPileBot)
	}

	fmt.Fprintf(w, "\nDiscarded cards: %d\n", snap.DiscardCount)
	if len(snap.DiscardTop) > 0 {
		renderRow(w, RowView{Slots: snap.DiscardTop[:1]}, 0)
		if len(snap.DiscardTop) > 1 {
			second := snap.DiscardTop[1]
			fmt.Fprintf(w, "beneath the top: %s%s\n", second.Rank.Symbol(), second.Suit.Glyph())
		}
	} else {
		fmt.Fprintf(w, "%s\n\n\n%s\n", emptyPileTop, emptyPileBot)
	}

	fmt.Fprintf(w, "\nCompleted cards: %d\n", snap.CompletedCount)
}

// runConsole drives the game over stdin/stdout until it is won, lost or
// the input ends.
func runConsole(game *Game) {
	reader := bufio.NewReader(os.Stdin)
	fmt.Println(consoleRules)
	for {
		fmt.Println()
		renderSnapshot(os.Stdout, game.Snapshot())
		fmt.Print("\nWould you like to draw (d) or pair cards (e.g. \"5h 5s\")? ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				fmt.Println(err)
			}
			return
		}
		if err := game.HandleInput(normalizeInput(line)); err != nil {
			if errors.Is(err, ErrDrawEmpty) {
				fmt.Println("The deck is empty! You lose.")
				return
			}
			fmt.Println(err)
			continue
		}
		if game.State() == StateWon {
			fmt.Println()
			renderSnapshot(os.Stdout, game.Snapshot())
			fmt.Println("\nThe pyramid is cleared, you win!")
			return
		}
	}
}

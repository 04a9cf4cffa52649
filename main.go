package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// --- GUI Specific Code ---
// AppUI holds all the GUI widgets and the running game.
type AppUI struct {
	game   *Game
	height int // pyramid height of each deal
	window fyne.Window
	// Top bar.
	newGameButton  *widget.Button
	drawLabel      *widget.Label
	completedLabel *widget.Label
	// Tableau.
	pyramidRows [][]*cardWidget // triangle rows, then the terminal row
	// Piles.
	drawPile     *cardWidget
	discardTop   *cardWidget
	discardUnder *cardWidget
	discardLabel *widget.Label
	// Bottom bar.
	commandEntry *widget.Entry
	infoLabel    *widget.Label
	// Tap-to-pair selection.
	selected       *CardSpec
	selectedWidget *cardWidget
}

const welcomeText = "Pair exposed cards summing to ten (a King alone), or draw. Clear the pyramid to win."

func main() {
	consoleMode := flag.Bool("console", false, "play in the terminal instead of the GUI")
	height := flag.Int("rows", DefaultRows, "pyramid height in rows")
	seed := flag.Int64("seed", 0, "deal seed; 0 seeds from the clock")
	flag.Parse()
	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}
	if *consoleMode {
		runConsole(NewGameWithRows(rng, *height))
		return
	}

	myApp := app.New()
	myApp.Settings().SetTheme(newTableTheme(myApp.Settings().Theme()))
	myWindow := myApp.NewWindow("Piramide")
	initAudio()
	ui := &AppUI{
		game:   NewGameWithRows(rng, *height),
		window: myWindow,
	}
	ui.height = ui.game.tableau.Height()
	content := ui.buildLayout()
	ui.updateUI() // Initial UI state.
	myWindow.SetContent(content)
	myWindow.CenterOnScreen()
	// Confirm before the user closes the window mid-game.
	myWindow.SetCloseIntercept(func() {
		dialog.ShowConfirm("Exit", "Are you sure you want to quit?", func(confirmed bool) {
			if confirmed {
				myApp.Quit()
			}
		}, myWindow)
	})
	myWindow.ShowAndRun()
}

func (ui *AppUI) buildLayout() fyne.CanvasObject {
	ui.newGameButton = widget.NewButton("New Game", func() {
		if ui.game.Over() {
			ui.startNewGame()
			return
		}
		dialog.ShowConfirm("New Game", "Abandon the current deal?", func(confirmed bool) {
			if confirmed {
				ui.startNewGame()
			}
		}, ui.window)
	})
	ui.drawLabel = widget.NewLabel("Deck: 0")
	ui.discardLabel = widget.NewLabel("Discarded: 0")
	ui.completedLabel = widget.NewLabel("Completed: 0")
	ui.completedLabel.Alignment = fyne.TextAlignTrailing
	counters := container.New(layout.NewHBoxLayout(), ui.drawLabel, ui.discardLabel, ui.completedLabel)
	topBar := container.New(layout.NewBorderLayout(nil, nil, ui.newGameButton, counters),
		ui.newGameButton, counters)

	// The pyramid: one centered row of card widgets per tableau row, the
	// terminal row below the triangle.
	rowBoxes := make([]fyne.CanvasObject, 0, ui.height+2)
	ui.pyramidRows = make([][]*cardWidget, 0, ui.height+1)
	for y := 0; y <= ui.height; y++ {
		width := y + 1
		if y == ui.height {
			width = ui.height // terminal row
			rowBoxes = append(rowBoxes, container.New(&minSizeLayout{min: fyne.NewSize(0, 8)}, layout.NewSpacer()))
		}
		row := make([]*cardWidget, width)
		for x := 0; x < width; x++ {
			w := newCardWidget(nil)
			w.onTapped = func() { ui.tapCard(w) }
			row[x] = w
		}
		ui.pyramidRows = append(ui.pyramidRows, row)
		objects := make([]fyne.CanvasObject, len(row))
		for i, w := range row {
			objects[i] = w
		}
		rowBoxes = append(rowBoxes, container.New(layout.NewCenterLayout(),
			container.New(layout.NewHBoxLayout(), objects...)))
	}
	pyramid := container.New(layout.NewVBoxLayout(), rowBoxes...)

	// Draw pile: tap to draw.
	ui.drawPile = newCardWidget(func() { ui.resolve(ui.game.Draw()) })
	// Discard pile: the second-from-top card peeks out beneath the top
	// one, offset a few pixels down and right.
	ui.discardTop = newCardWidget(nil)
	ui.discardTop.onTapped = func() { ui.tapCard(ui.discardTop) }
	ui.discardUnder = newCardWidget(nil)
	ui.discardUnder.onTapped = func() { ui.tapCard(ui.discardUnder) }
	discardStack := container.NewWithoutLayout(ui.discardUnder, ui.discardTop)
	cardSize := fyne.NewSize(46, 64)
	discardStack.Resize(fyne.NewSize(cardSize.Width+6, cardSize.Height+6))
	ui.discardTop.Resize(cardSize)
	ui.discardTop.Move(fyne.NewPos(0, 0))
	ui.discardUnder.Resize(cardSize)
	ui.discardUnder.Move(fyne.NewPos(6, 6))
	sizedDiscard := container.New(&minSizeLayout{min: discardStack.Size()}, discardStack)
	pileGap := container.New(&minSizeLayout{min: fyne.NewSize(30, 0)}, layout.NewSpacer())
	piles := container.New(layout.NewCenterLayout(),
		container.New(layout.NewHBoxLayout(), ui.drawPile, pileGap, sizedDiscard))

	ui.commandEntry = widget.NewEntry()
	ui.commandEntry.PlaceHolder = `Type "d" to draw or cards to pair, e.g. "5h 5s"`
	ui.commandEntry.OnSubmitted = func(text string) {
		ui.commandEntry.SetText("")
		ui.clearSelection()
		ui.resolve(ui.game.HandleInput(normalizeInput(text)))
	}
	ui.infoLabel = widget.NewLabel(welcomeText)
	ui.infoLabel.Alignment = fyne.TextAlignCenter
	ui.infoLabel.Wrapping = fyne.TextWrapWord
	bottomArea := container.New(layout.NewVBoxLayout(), ui.commandEntry, ui.infoLabel)

	center := container.NewVBox(
		container.New(&minSizeLayout{min: fyne.NewSize(0, 12)}, layout.NewSpacer()),
		pyramid,
		container.New(&minSizeLayout{min: fyne.NewSize(0, 16)}, layout.NewSpacer()),
		piles,
	)
	return container.New(layout.NewBorderLayout(topBar, bottomArea, nil, nil),
		topBar, bottomArea, container.New(layout.NewCenterLayout(), center))
}

// tapCard handles a tap on any tableau or discard card: first tap
// selects (a lone King is removed immediately), second tap attempts the
// pair, tapping the selected card again deselects it.
func (ui *AppUI) tapCard(w *cardWidget) {
	if ui.game.Over() {
		return
	}
	slot := w.slot
	if !slot.Present || slot.Covered {
		return
	}
	if ui.selectedWidget == w {
		ui.clearSelection()
		return
	}
	spec := CardSpec{Suit: slot.Suit, Rank: slot.Rank}
	if ui.selected == nil {
		if spec.Rank == PairSum {
			ui.resolve(ui.game.Pair(spec))
			return
		}
		ui.selected = &spec
		ui.selectedWidget = w
		w.SetSelected(true)
		ui.infoLabel.SetText("Selected " + spec.Name() + ". Tap its pair.")
		return
	}
	first := *ui.selected
	ui.clearSelection()
	ui.resolve(ui.game.Pair(first, spec))
}

func (ui *AppUI) clearSelection() {
	if ui.selectedWidget != nil {
		ui.selectedWidget.SetSelected(false)
	}
	ui.selected = nil
	ui.selectedWidget = nil
}

// resolve reports the outcome of an action and refreshes every view.
func (ui *AppUI) resolve(err error) {
	switch {
	case err == nil:
		ui.infoLabel.SetText("")
	case errors.Is(err, ErrDrawEmpty):
		ui.infoLabel.SetText("The deck is empty! You lose.")
	default:
		ui.infoLabel.SetText(err.Error())
	}
	ui.updateUI()
}

func (ui *AppUI) startNewGame() {
	ui.clearSelection()
	ui.game = NewGameWithRows(nil, ui.height)
	ui.infoLabel.SetText(welcomeText)
	PlaySound(SoundDeal)
	ui.updateUI()
}

// updateUI redraws every widget from a fresh snapshot.
func (ui *AppUI) updateUI() {
	snap := ui.game.Snapshot()

	// Split the snapshot rows into triangle rows and the terminal row.
	triangle := snap.Rows
	var terminal []SlotView
	if n := len(snap.Rows); n > 0 && snap.Rows[n-1].Terminal {
		triangle = snap.Rows[:n-1]
		terminal = snap.Rows[n-1].Slots
	}
	for y, row := range ui.pyramidRows {
		var slots []SlotView
		switch {
		case y == ui.height:
			slots = terminal
		case y < len(triangle):
			slots = triangle[y].Slots
		}
		for x, w := range row {
			if slots != nil && x < len(slots) {
				w.SetSlot(slots[x])
			} else {
				w.SetSlot(SlotView{}) // folded rows show as empty slots
			}
		}
	}

	ui.drawPile.SetSlot(snap.DrawTop)
	var top, under SlotView
	if len(snap.DiscardTop) > 0 {
		top = snap.DiscardTop[0]
	}
	if len(snap.DiscardTop) > 1 {
		under = snap.DiscardTop[1]
	}
	ui.discardTop.SetSlot(top)
	ui.discardUnder.SetSlot(under)

	ui.drawLabel.SetText(labelCount("Deck", snap.DrawCount))
	ui.discardLabel.SetText(labelCount("Discarded", snap.DiscardCount))
	ui.completedLabel.SetText(labelCount("Completed", snap.CompletedCount))

	switch snap.State {
	case StateWon:
		ui.infoLabel.SetText("The pyramid is cleared, you win!")
	case StateLost:
		ui.infoLabel.SetText("The deck is empty! You lose.")
	}
}

func labelCount(name string, n int) string {
	return fmt.Sprintf("%s: %d", name, n)
}

package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// cardWidget is a tappable card drawn entirely with canvas primitives:
// a face with rank and suit for an exposed card, a patterned back for a
// covered one, nothing for an empty slot.
type cardWidget struct {
	widget.BaseWidget
	slot     SlotView
	selected bool
	minSize  fyne.Size
	onTapped func()
}

var (
	cardFaceColor     = color.NRGBA{R: 245, G: 245, B: 240, A: 255}
	cardBackColor     = color.NRGBA{R: 30, G: 60, B: 130, A: 255}
	cardBackInset     = color.NRGBA{R: 60, G: 95, B: 175, A: 255}
	cardEdgeColor     = color.NRGBA{R: 70, G: 70, B: 70, A: 255}
	cardSelectedColor = color.NRGBA{R: 235, G: 185, B: 30, A: 255}
	redSuitColor      = color.NRGBA{R: 185, G: 30, B: 40, A: 255}
	blackSuitColor    = color.NRGBA{R: 25, G: 25, B: 30, A: 255}
)

// newCardWidget creates an empty card slot with a tap handler.
func newCardWidget(onTapped func()) *cardWidget {
	c := &cardWidget{
		minSize:  fyne.NewSize(46, 64),
		onTapped: onTapped,
	}
	c.ExtendBaseWidget(c) // This is crucial for it to be treated as a widget.
	return c
}

// SetSlot updates what the widget shows.
func (c *cardWidget) SetSlot(slot SlotView) {
	c.slot = slot
	c.Refresh()
}

// SetSelected toggles the selection highlight.
func (c *cardWidget) SetSelected(selected bool) {
	c.selected = selected
	c.Refresh()
}

// Tapped is called when the user taps the widget.
func (c *cardWidget) Tapped(_ *fyne.PointEvent) {
	if c.onTapped != nil {
		c.onTapped()
	}
}

// CreateRenderer is a mandatory part of the Widget interface.
func (c *cardWidget) CreateRenderer() fyne.WidgetRenderer {
	base := canvas.NewRectangle(cardFaceColor)
	base.CornerRadius = 4
	base.StrokeWidth = 1
	base.StrokeColor = cardEdgeColor
	inset := canvas.NewRectangle(cardBackInset)
	inset.CornerRadius = 3
	rank := canvas.NewText("", blackSuitColor)
	rank.TextStyle = fyne.TextStyle{Bold: true}
	rank.Alignment = fyne.TextAlignCenter
	suit := canvas.NewText("", blackSuitColor)
	suit.Alignment = fyne.TextAlignCenter
	return &cardWidgetRenderer{
		base:   base,
		inset:  inset,
		rank:   rank,
		suit:   suit,
		widget: c,
	}
}

// --- Renderer for the custom widget ---

type cardWidgetRenderer struct {
	base   *canvas.Rectangle
	inset  *canvas.Rectangle
	rank   *canvas.Text
	suit   *canvas.Text
	widget *cardWidget
}

func (r *cardWidgetRenderer) Layout(size fyne.Size) {
	r.base.Resize(size)
	r.base.Move(fyne.NewPos(0, 0))
	r.inset.Resize(fyne.NewSize(size.Width-10, size.Height-10))
	r.inset.Move(fyne.NewPos(5, 5))
	half := size.Height / 2
	r.rank.Resize(fyne.NewSize(size.Width, half))
	r.rank.Move(fyne.NewPos(0, half-r.rank.MinSize().Height))
	r.suit.Resize(fyne.NewSize(size.Width, half))
	r.suit.Move(fyne.NewPos(0, half))
}

func (r *cardWidgetRenderer) MinSize() fyne.Size {
	return r.widget.minSize
}

func (r *cardWidgetRenderer) Refresh() {
	slot := r.widget.slot
	switch {
	case !slot.Present:
		// Empty slot: everything transparent.
		r.base.FillColor = color.Transparent
		r.base.StrokeColor = color.Transparent
		r.inset.FillColor = color.Transparent
		r.rank.Text = ""
		r.suit.Text = ""
	case slot.Covered:
		r.base.FillColor = cardBackColor
		r.base.StrokeColor = cardEdgeColor
		r.inset.FillColor = cardBackInset
		r.rank.Text = ""
		r.suit.Text = ""
	default:
		r.base.FillColor = cardFaceColor
		r.base.StrokeColor = cardEdgeColor
		r.inset.FillColor = color.Transparent
		r.rank.Text = slot.Rank.Symbol()
		r.suit.Text = slot.Suit.Glyph()
		tint := blackSuitColor
		if slot.Suit == Hearts || slot.Suit == Diamonds {
			tint = redSuitColor
		}
		r.rank.Color = tint
		r.suit.Color = tint
	}
	if r.widget.selected {
		r.base.StrokeColor = cardSelectedColor
		r.base.StrokeWidth = 3
	} else {
		r.base.StrokeWidth = 1
	}
	r.base.Refresh()
	r.inset.Refresh()
	r.rank.Refresh()
	r.suit.Refresh()
	canvas.Refresh(r.widget)
}

func (r *cardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.base, r.inset, r.rank, r.suit}
}

func (r *cardWidgetRenderer) Destroy() {}

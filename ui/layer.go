package ui

import "sort"

// Layer is the root layer of a window. Text layers attached to it are
// composited in frame order, top to bottom then left to right.
type Layer struct {
	window   *Window
	frame    Rect
	children []*TextLayer
}

func (l *Layer) Frame() Rect {
	return l.frame
}

// Children returns the attached text layers in compositing order.
func (l *Layer) Children() []*TextLayer {
	return l.ordered()
}

func (l *Layer) AddChild(child *TextLayer) {
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = l
	l.children = append(l.children, child)
	l.markDirty()
}

func (l *Layer) removeChild(child *TextLayer) {
	for idx, c := range l.children {
		if c == child {
			l.children = append(l.children[:idx], l.children[idx+1:]...)
			break
		}
	}
	child.parent = nil
	l.markDirty()
}

func (l *Layer) markDirty() {
	if l.window != nil {
		l.window.dirty = true
	}
}

// ordered returns the children sorted by frame origin, keeping insertion
// order for equal origins.
func (l *Layer) ordered() []*TextLayer {
	children := make([]*TextLayer, len(l.children))
	copy(children, l.children)

	sort.SliceStable(children, func(i, j int) bool {
		a, b := children[i].frame.Origin, children[j].frame.Origin
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return children
}

// TextLayer is a rectangular region displaying a single string.
type TextLayer struct {
	name       string
	frame      Rect
	text       string
	textColor  Color
	background Color
	font       *Font
	align      TextAlignment
	parent     *Layer
}

// NewTextLayer creates a layer with black text on a white background.
func NewTextLayer(frame Rect) *TextLayer {
	return &TextLayer{
		frame:      frame,
		textColor:  ColorBlack,
		background: ColorWhite,
		align:      AlignLeft,
	}
}

func (t *TextLayer) changed() {
	if t.parent != nil {
		t.parent.markDirty()
	}
}

func (t *TextLayer) SetName(name string) {
	t.name = name
}

func (t *TextLayer) Name() string {
	return t.name
}

func (t *TextLayer) Frame() Rect {
	return t.frame
}

func (t *TextLayer) Text() string {
	return t.text
}

func (t *TextLayer) SetText(text string) {
	if t.text == text {
		return
	}
	t.text = text
	t.changed()
}

func (t *TextLayer) TextColor() Color {
	return t.textColor
}

func (t *TextLayer) SetTextColor(c Color) {
	t.textColor = c
	t.changed()
}

func (t *TextLayer) SetBackgroundColor(c Color) {
	t.background = c
	t.changed()
}

func (t *TextLayer) Font() *Font {
	return t.font
}

func (t *TextLayer) SetFont(font *Font) {
	t.font = font
	t.changed()
}

func (t *TextLayer) SetTextAlignment(align TextAlignment) {
	t.align = align
	t.changed()
}

// Destroy detaches the layer from its window.
func (t *TextLayer) Destroy() {
	if t.parent != nil {
		t.parent.removeChild(t)
	}
	t.font = nil
}

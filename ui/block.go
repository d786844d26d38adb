package ui

import (
	"fmt"
	"html"
)

// block is one entry of the i3bar/swaybar status line protocol
type block struct {
	Name           string `json:"name,omitempty"`
	FullText       string `json:"full_text"`
	ShortText      string `json:"short_text,omitempty"`
	Color          string `json:"color,omitempty"`
	Background     string `json:"background,omitempty"`
	Border         string `json:"border,omitempty"`
	BorderTop      int    `json:"border_top,omitempty"`
	BorderBottom   int    `json:"border_bottom,omitempty"`
	BorderLeft     int    `json:"border_left,omitempty"`
	BorderRight    int    `json:"border_right,omitempty"`
	MinWidth       int    `json:"min_width,omitempty"`
	Align          string `json:"align,omitempty"`
	Markup         string `json:"markup,omitempty"`
	Urgent         bool   `json:"urgent,omitempty"`
	Separator      bool   `json:"separator"`
	SeparatorWidth int    `json:"separator_block_width"`
}

// header is written once before the infinite array of status lines
type header struct {
	Version     int  `json:"version"`
	ClickEvents bool `json:"click_events"`
}

// newBlock converts a text layer into a block. A clear layer background
// shows the window background through it.
func newBlock(layer *TextLayer, windowBackground Color) *block {
	b := &block{
		Name:     layer.name,
		FullText: html.EscapeString(layer.text),
		Color:    layer.textColor.Hex(),
		MinWidth: layer.frame.Size.W,
		Align:    layer.align.String(),
		Markup:   "pango",
	}

	if layer.font != nil {
		b.FullText = fmt.Sprintf(`<span font_desc="%s">%s</span>`, html.EscapeString(layer.font.desc), b.FullText)
	}

	background := layer.background
	if background.IsClear() {
		background = windowBackground
	}
	if !background.IsClear() {
		b.Background = background.Hex()
	}

	return b
}

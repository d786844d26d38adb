// Package resources holds the font resources bundled with the watch face.
package resources

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
)

type ID string

const (
	FontOpenSansBold48  ID = "FONT_OPEN_SANS_BOLD_48"
	FontOpenSansLight48 ID = "FONT_OPEN_SANS_LIGHT_48"
)

var ErrNotFound = errors.New("resource not found")

//go:embed fonts.json
var fontTable []byte

type FontResource struct {
	Family string `json:"family"`
	Style  string `json:"style"`
	Size   int    `json:"size"`
}

// Description returns the pango font description, e.g. "Open Sans Bold 48".
func (f FontResource) Description() string {
	if f.Style == "" {
		return fmt.Sprintf("%s %d", f.Family, f.Size)
	}
	return fmt.Sprintf("%s %s %d", f.Family, f.Style, f.Size)
}

var (
	fonts     map[ID]FontResource
	fontsErr  error
	fontsOnce sync.Once
)

func Font(id ID) (FontResource, error) {
	fontsOnce.Do(func() {
		fontsErr = json.Unmarshal(fontTable, &fonts)
	})
	if fontsErr != nil {
		return FontResource{}, fmt.Errorf("decode font table: %w", fontsErr)
	}

	font, ok := fonts[id]
	if !ok {
		return FontResource{}, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return font, nil
}

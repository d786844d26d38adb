package ui

import (
	"sync"

	"github.com/haakonleg/watchface-sway/internal/logger"
	"github.com/haakonleg/watchface-sway/resources"
)

type FontKey string

const FontKeyGothic18 FontKey = "gothic-18"

var systemFonts = map[FontKey]*Font{
	FontKeyGothic18: {desc: "Sans 18"},
}

// Font is a pango font description. Custom fonts are owned by whoever
// loaded them and must be unloaded; system fonts are shared.
type Font struct {
	id     resources.ID
	desc   string
	custom bool
}

func (f *Font) Description() string {
	return f.desc
}

// SystemFont returns a shared font, or nil for an unknown key.
func SystemFont(key FontKey) *Font {
	return systemFonts[key]
}

// FontRegistry tracks the custom fonts currently loaded.
type FontRegistry struct {
	mu     sync.Mutex
	loaded map[*Font]struct{}
	log    *logger.Logger
}

func NewFontRegistry(log *logger.Logger) *FontRegistry {
	return &FontRegistry{
		loaded: make(map[*Font]struct{}),
		log:    log,
	}
}

func (r *FontRegistry) LoadCustom(id resources.ID) (*Font, error) {
	res, err := resources.Font(id)
	if err != nil {
		return nil, err
	}

	font := &Font{id: id, desc: res.Description(), custom: true}

	r.mu.Lock()
	r.loaded[font] = struct{}{}
	r.mu.Unlock()

	r.log.Debugw("loaded font", "id", id, "desc", font.desc)
	return font, nil
}

// Unload releases a custom font. Nil and system fonts are ignored.
func (r *FontRegistry) Unload(font *Font) {
	if font == nil || !font.custom {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.loaded[font]; !ok {
		r.log.Warnw("unloading font that is not loaded", "id", font.id)
		return
	}
	delete(r.loaded, font)
	r.log.Debugw("unloaded font", "id", font.id)
}

// Loaded returns the number of custom fonts still loaded.
func (r *FontRegistry) Loaded() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.loaded)
}

package ui

type WindowHandlers struct {
	// Load is called when the window is pushed on the stack
	Load func(*Window)

	// Unload is called when the window is popped
	Unload func(*Window)
}

type Window struct {
	background Color
	handlers   WindowHandlers
	root       *Layer

	loaded bool
	dirty  bool
}

func NewWindow() *Window {
	w := &Window{background: ColorWhite}
	w.root = &Layer{window: w}
	return w
}

func (w *Window) SetBackgroundColor(c Color) {
	w.background = c
	w.dirty = true
}

func (w *Window) SetHandlers(handlers WindowHandlers) {
	w.handlers = handlers
}

func (w *Window) RootLayer() *Layer {
	return w.root
}

func (w *Window) Bounds() Rect {
	return w.root.frame
}

func (w *Window) IsLoaded() bool {
	return w.loaded
}

func (w *Window) load(bounds Rect) {
	w.root.frame = bounds
	w.loaded = true
	if w.handlers.Load != nil {
		w.handlers.Load(w)
	}
	w.dirty = true
}

func (w *Window) unload() {
	if !w.loaded {
		return
	}
	if w.handlers.Unload != nil {
		w.handlers.Unload(w)
	}
	w.loaded = false
	w.dirty = true
}

// Destroy unloads the window if needed and drops its children.
func (w *Window) Destroy() {
	w.unload()
	for _, child := range w.root.children {
		child.parent = nil
	}
	w.root.children = nil
}

// blocks renders the non-empty children in compositing order
func (w *Window) blocks() []*block {
	children := w.root.ordered()
	blocks := make([]*block, 0, len(children))
	for _, child := range children {
		if child.text == "" {
			continue
		}
		blocks = append(blocks, newBlock(child, w.background))
	}
	return blocks
}

package ui

import (
	"bufio"
	"context"
	"io"
	"sync"

	"github.com/goccy/go-json"

	"github.com/haakonleg/watchface-sway/internal/logger"
)

const queueSize = 100

// App owns the window stack and the event queue. Events posted from any
// goroutine are run one at a time on the goroutine calling Run, and the top
// window is written to out as a swaybar status line after each one.
type App struct {
	out    *bufio.Writer
	bounds Rect
	stack  []*Window
	fonts  *FontRegistry
	log    *logger.Logger

	queue    chan func()
	quit     chan struct{}
	quitOnce sync.Once
	done     chan struct{}
}

func NewApp(out io.Writer, bounds Rect, log *logger.Logger) *App {
	return &App{
		out:    bufio.NewWriter(out),
		bounds: bounds,
		fonts:  NewFontRegistry(log),
		log:    log,
		queue:  make(chan func(), queueSize),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

func (a *App) Fonts() *FontRegistry {
	return a.fonts
}

func (a *App) Bounds() Rect {
	return a.bounds
}

// Push loads w and makes it the visible window. Must be called before Run
// or from an event.
func (a *App) Push(w *Window) {
	a.stack = append(a.stack, w)
	w.load(a.bounds)
}

// Pop unloads the top window and returns it.
func (a *App) Pop() *Window {
	if len(a.stack) == 0 {
		return nil
	}

	w := a.stack[len(a.stack)-1]
	a.stack = a.stack[:len(a.stack)-1]
	w.unload()

	if top := a.Top(); top != nil {
		top.dirty = true
	}
	return w
}

func (a *App) Top() *Window {
	if len(a.stack) == 0 {
		return nil
	}
	return a.stack[len(a.stack)-1]
}

// Post queues fn to run on the event loop. Events posted after the loop
// has exited are dropped.
func (a *App) Post(fn func()) {
	select {
	case a.queue <- fn:
	case <-a.done:
	}
}

// Quit makes Run return after the current event.
func (a *App) Quit() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// Run is the event loop. It returns when ctx is cancelled or Quit is
// called, after popping every window.
func (a *App) Run(ctx context.Context) error {
	defer close(a.done)

	hdr, err := json.Marshal(&header{Version: 1})
	if err != nil {
		return err
	}
	a.out.Write(hdr)
	a.out.WriteString("\n[\n")
	a.render(true)

	for {
		select {
		case <-ctx.Done():
			return a.shutdown()

		case <-a.quit:
			return a.shutdown()

		case fn := <-a.queue:
			fn()
			a.render(false)
		}
	}
}

func (a *App) shutdown() error {
	for len(a.stack) > 0 {
		a.Pop()
	}

	if n := a.fonts.Loaded(); n > 0 {
		a.log.Warnw("fonts still loaded at exit", "count", n)
	}

	a.out.WriteString("[]\n]\n")
	return a.out.Flush()
}

// render writes the top window as one status line if it changed
func (a *App) render(force bool) {
	top := a.Top()
	if top == nil || (!top.dirty && !force) {
		return
	}

	// keep the pango markup readable
	data, err := json.MarshalNoEscape(top.blocks())
	if err != nil {
		a.log.Errorw("failed to encode status line", "err", err)
		return
	}

	a.out.Write(data)
	a.out.WriteString(",\n")
	if err := a.out.Flush(); err != nil {
		a.log.Errorw("failed to write status line", "err", err)
		return
	}
	top.dirty = false
}

// Command ptdemo is a small full-screen typing demo built on the
// piece-table engine. Printable keys stream through a micro-insert
// session so a typed word undoes as one unit; Backspace removes the
// byte before the cursor, Ctrl-Z/Ctrl-Y drive undo/redo, and arrow
// keys move the cursor. Esc or Ctrl-C quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/piecetable/internal/config"
	"github.com/dshills/piecetable/internal/engine"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "piecetable.json", "settings file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	content := "Type here. Ctrl-Z undo, Ctrl-Y redo, Esc quit.\n\n"
	if cfg.InitialFile != "" {
		data, err := os.ReadFile(cfg.InitialFile)
		if err != nil {
			return fmt.Errorf("read %s: %w", cfg.InitialFile, err)
		}
		content = string(data)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	d := &demo{
		screen: screen,
		buf: engine.NewFromString(content,
			engine.WithMaxUndoEntries(cfg.MaxUndoEntries),
			engine.WithMaxAddBytes(cfg.MaxAddBytes)),
	}
	d.cursor = d.buf.Len()
	return d.loop()
}

type demo struct {
	screen tcell.Screen
	buf    *engine.TextBuffer
	cursor int
	status string
}

func (d *demo) loop() error {
	for {
		d.draw()

		ev := d.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			d.screen.Sync()
		case *tcell.EventKey:
			if done := d.handleKey(ev); done {
				return nil
			}
		}
	}
}

func (d *demo) handleKey(ev *tcell.EventKey) bool {
	d.status = ""

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		d.closeSession()
		return true

	case tcell.KeyRune:
		d.typeRune(ev.Rune())

	case tcell.KeyEnter:
		d.typeRune('\n')

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		d.closeSession()
		if d.cursor > 0 {
			if err := d.buf.Remove(d.cursor-1, 1); err != nil {
				d.status = err.Error()
			} else {
				d.cursor--
			}
		}

	case tcell.KeyCtrlZ:
		d.closeSession()
		if err := d.buf.Undo(); err != nil {
			d.status = err.Error()
		}
		d.clampCursor()

	case tcell.KeyCtrlY:
		d.closeSession()
		if err := d.buf.Redo(); err != nil {
			d.status = err.Error()
		}
		d.clampCursor()

	case tcell.KeyLeft:
		d.closeSession()
		if d.cursor > 0 {
			d.cursor--
		}

	case tcell.KeyRight:
		d.closeSession()
		if d.cursor < d.buf.Len() {
			d.cursor++
		}

	case tcell.KeyHome:
		d.closeSession()
		d.cursor = 0

	case tcell.KeyEnd:
		d.closeSession()
		d.cursor = d.buf.Len()
	}
	return false
}

// typeRune appends one keystroke to the open micro-insert session,
// opening it at the cursor first if needed.
func (d *demo) typeRune(r rune) {
	if err := d.buf.StartMicroInserts(d.cursor); err != nil &&
		!errors.Is(err, engine.ErrSessionOpen) {
		d.status = err.Error()
		return
	}
	text := string(r)
	if err := d.buf.MicroInsert(text); err != nil {
		d.status = err.Error()
		return
	}
	d.cursor += len(text)
}

// closeSession finalizes any open micro-insert session so the typed
// run becomes a single history entry before an unrelated edit.
func (d *demo) closeSession() {
	if err := d.buf.StopMicroInserts(); err != nil &&
		!errors.Is(err, engine.ErrNoSession) {
		d.status = err.Error()
	}
}

func (d *demo) clampCursor() {
	if n := d.buf.Len(); d.cursor > n {
		d.cursor = n
	}
}

func (d *demo) draw() {
	d.screen.Clear()
	width, height := d.screen.Size()

	style := tcell.StyleDefault
	lines := strings.Split(d.buf.String(), "\n")

	cx, cy := 0, 0
	pos := 0
	for y, line := range lines {
		if y >= height-1 {
			break
		}
		for x, r := range []rune(line) {
			if x >= width {
				break
			}
			d.screen.SetContent(x, y, r, nil, style)
		}
		// Cursor lands on this row when its offset falls inside the
		// line or on the trailing newline position.
		if d.cursor >= pos && d.cursor <= pos+len(line) {
			cx, cy = d.cursor-pos, y
		}
		pos += len(line) + 1
	}

	bar := fmt.Sprintf(" pos %d/%d  pieces %d  undo %d  redo %d  %s",
		d.cursor, d.buf.Len(), d.buf.PieceCount(),
		d.buf.UndoCount(), d.buf.RedoCount(), d.status)
	barStyle := style.Reverse(true)
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(bar) {
			r = rune(bar[x])
		}
		d.screen.SetContent(x, height-1, r, nil, barStyle)
	}

	d.screen.ShowCursor(cx, cy)
	d.screen.Show()
}

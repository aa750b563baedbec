// Package tui is the interactive terminal front end. It maps one scene
// unit to one character cell and turns mouse gestures on that grid into
// editing sessions on the wire under the cursor.
package tui

import (
	"fmt"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"

	"elbow/editor"
	"elbow/logging"
	"elbow/op"
	"elbow/scene"
)

// App owns the screen and the editing state behind it. Scene coordinates
// and screen cells differ only by the pan offset.
type App struct {
	screen tcell.Screen
	scene  *scene.Scene
	path   string

	history *op.History
	session *editor.Session
	active  *scene.Wire

	mouseDown    bool
	downX, downY int

	panX, panY int

	dirty     bool
	quitArmed bool
	message   string
}

// New wires an App to an existing screen. The caller keeps ownership of
// the screen's lifecycle; tests pass a tcell simulation screen here.
func New(screen tcell.Screen, sc *scene.Scene, path string) *App {
	return &App{
		screen:  screen,
		scene:   sc,
		path:    path,
		history: op.NewHistory(op.DefaultHistoryLimit),
	}
}

// Run loads the scene at path and drives the terminal UI until the user
// quits.
func Run(path string) error {
	sc, err := scene.Load(path)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	screen.EnableMouse()
	defer screen.Fini()

	New(screen, sc, path).loop()
	return nil
}

func (a *App) loop() {
	for {
		a.draw()
		a.screen.Show()

		ev := a.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			if a.handleKey(ev) {
				return
			}
		case *tcell.EventMouse:
			a.handleMouse(ev)
		}
	}
}

// handleKey handles one key event. A true return exits the loop.
func (a *App) handleKey(ev *tcell.EventKey) bool {
	// Any key but a second q disarms the quit confirmation.
	armed := a.quitArmed
	a.quitArmed = false
	a.message = ""

	switch ev.Key() {
	case tcell.KeyEscape:
		a.cancelGesture()
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		a.panY--
	case tcell.KeyDown:
		a.panY++
	case tcell.KeyLeft:
		a.panX--
	case tcell.KeyRight:
		a.panX++
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			if a.dirty && !armed {
				a.quitArmed = true
				a.message = "unsaved changes, press q again to quit"
				return false
			}
			return true
		case 's':
			a.save()
		case 'u':
			a.undoOne()
		case 'r':
			a.redoOne()
		case 'g':
			a.toggleSnap()
		case 'c':
			a.yankWire()
		}
	}
	return false
}

func (a *App) save() {
	if err := scene.Save(a.path, a.scene); err != nil {
		logging.Errorf("saving %s: %v", a.path, err)
		a.message = "save failed: " + err.Error()
		return
	}
	a.dirty = false
	a.message = "saved " + filepath.Base(a.path)
}

func (a *App) undoOne() {
	if !a.history.CanUndo() {
		a.message = "nothing to undo"
		return
	}
	label := a.history.UndoLabel()
	if err := a.history.Undo(); err != nil {
		logging.Errorf("undo %s: %v", label, err)
		a.message = "undo failed: " + err.Error()
		return
	}
	a.dirty = true
	a.message = "undid " + label
}

func (a *App) redoOne() {
	if !a.history.CanRedo() {
		a.message = "nothing to redo"
		return
	}
	label := a.history.RedoLabel()
	if err := a.history.Redo(); err != nil {
		logging.Errorf("redo %s: %v", label, err)
		a.message = "redo failed: " + err.Error()
		return
	}
	a.dirty = true
	a.message = "redid " + label
}

func (a *App) toggleSnap() {
	grid := a.scene.Grid()
	grid.Snap = !grid.Snap
	if grid.Snap {
		a.message = "grid snap on"
	} else {
		a.message = "grid snap off"
	}
}

// yankWire copies the most recently selected wire to the system clipboard
// as JSON.
func (a *App) yankWire() {
	w := a.selectedWire()
	if w == nil {
		a.message = "no wire selected"
		return
	}
	data, err := scene.MarshalWire(w)
	if err != nil {
		logging.Errorf("marshalling %s: %v", w.ID(), err)
		a.message = "copy failed: " + err.Error()
		return
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		logging.Warnf("clipboard write: %v", err)
		a.message = "clipboard unavailable"
		return
	}
	a.message = "copied " + w.ID()
}

// selectedWire returns the most recently selected wire, or nil.
func (a *App) selectedWire() *scene.Wire {
	sel := a.scene.Selection()
	for i := len(sel) - 1; i >= 0; i-- {
		if w, ok := a.scene.WireByID(sel[i]); ok {
			return w
		}
	}
	return nil
}

// cancelGesture abandons the in-flight session, restoring the wire to its
// pre-gesture geometry.
func (a *App) cancelGesture() {
	if a.session == nil {
		return
	}
	if err := a.session.Cancel(); err != nil {
		logging.Warnf("cancelling session on %s: %v", a.active.ID(), err)
	}
	a.session = nil
	a.active = nil
	a.mouseDown = false
	a.message = "cancelled"
}

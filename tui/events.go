package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/astarviz/controller"
)

// Translate converts a tcell event into a controller event.
//
//   - mouse with Button1 held: left press at the pointer (also while dragging)
//   - mouse with Button2 held: right press at the pointer
//   - Ctrl-C or Esc: quit
//   - any rune key: key press
//   - resize: resize
//
// A nil event, which tcell returns once the screen is finalised, is a quit.
// Everything else translates to EventNone.
func Translate(ev tcell.Event) controller.Event {
	switch ev := ev.(type) {
	case nil:
		return controller.Event{Kind: controller.EventQuit}
	case *tcell.EventMouse:
		x, y := ev.Position()
		switch b := ev.Buttons(); {
		case b&tcell.Button1 != 0:
			return controller.Event{Kind: controller.EventLeftPress, X: x, Y: y}
		case b&tcell.Button2 != 0:
			return controller.Event{Kind: controller.EventRightPress, X: x, Y: y}
		}
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC, tcell.KeyEscape:
			return controller.Event{Kind: controller.EventQuit}
		case tcell.KeyRune:
			return controller.Event{Kind: controller.EventKey, Key: ev.Rune()}
		}
	case *tcell.EventResize:
		return controller.Event{Kind: controller.EventResize}
	}
	return controller.Event{Kind: controller.EventNone}
}

package terminal

import "github.com/gdamore/tcell/v2"

// Action is a user command read from the keyboard.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionPause
	ActionResize
)

// Actions starts reading terminal events on a new goroutine and returns the
// resulting commands. The channel is closed once the screen is finalized.
func (t *Terminal) Actions() <-chan Action {
	out := make(chan Action, 16)
	go func() {
		defer close(out)
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			if a := translate(ev); a != ActionNone {
				out <- a
			}
		}
	}()
	return out
}

// translate maps a tcell event to an action.
func translate(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return ActionQuit
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return ActionQuit
			case ' ', 'p':
				return ActionPause
			}
		}
	case *tcell.EventResize:
		return ActionResize
	}
	return ActionNone
}

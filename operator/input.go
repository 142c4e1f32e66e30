// Package operator polls a terminal for the operator keybindings
// spec.md §6 lists as external inputs: toggle enemy color, force-fire
// the last history entry, tune detection thresholds, and quit. It is
// built on tcell the way the retrieved lixenwraith-vi-fighter example
// drives its own terminal input loop, in place of the teacher's OpenCV
// window keyboard polling (this process has no video window of its own).
package operator

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Action is one operator command decoded from a keypress.
type Action int

const (
	NoAction Action = iota
	ToggleColor
	ForceFire
	IncreaseAreaThreshold
	DecreaseAreaThreshold
	IncreaseAspectRatio
	DecreaseAspectRatio
	Quit
)

// keymap mirrors the teacher's own single-key command scheme.
var keymap = map[rune]Action{
	't': ToggleColor,
	'f': ForceFire,
	'+': IncreaseAreaThreshold,
	'-': DecreaseAreaThreshold,
	'a': IncreaseAspectRatio,
	'z': DecreaseAspectRatio,
	'q': Quit,
}

// Input polls a tcell screen for operator keystrokes without blocking
// the main frame loop.
type Input struct {
	screen tcell.Screen
}

// Open initializes a tcell screen for raw keypress polling.
func Open() (*Input, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create tcell screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init tcell screen: %w", err)
	}
	screen.HideCursor()
	return &Input{screen: screen}, nil
}

// Poll returns the next decoded operator action, or NoAction if no
// mapped key is waiting. It never blocks: callers should call this once
// per frame tick.
func (i *Input) Poll() Action {
	if i.screen.HasPendingEvent() {
		switch ev := i.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return Quit
			}
			if act, ok := keymap[ev.Rune()]; ok {
				return act
			}
		}
	}
	return NoAction
}

// Close restores the terminal.
func (i *Input) Close() {
	i.screen.Fini()
}

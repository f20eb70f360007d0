package screen

import "fmt"

// Key classifies a keyboard input.
type Key int

const (
	KeyRune Key = iota
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyUp
	KeyDown
)

// Input is a single key event handed to the controller.
type Input struct {
	Key  Key
	Rune rune
}

var (
	Enter     = Input{Key: KeyEnter}
	Escape    = Input{Key: KeyEscape}
	Backspace = Input{Key: KeyBackspace}
	Up        = Input{Key: KeyUp}
	Down      = Input{Key: KeyDown}
)

// Rune wraps a printable character.
func Rune(r rune) Input {
	return Input{Key: KeyRune, Rune: r}
}

// Is reports whether the input is the printable character r.
func (in Input) Is(r rune) bool {
	return in.Key == KeyRune && in.Rune == r
}

func (in Input) String() string {
	switch in.Key {
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "esc"
	case KeyBackspace:
		return "backspace"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	default:
		return fmt.Sprintf("%c", in.Rune)
	}
}

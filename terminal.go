package pixel2ascii

import (
	"io"
)

type Terminal interface {
	Clear()
	ShowCursor(show bool)
}

type Xterm struct {
	Writer io.Writer
}

// Clear erases the screen and moves the cursor to the top left corner.
func (term *Xterm) Clear() {
	term.Writer.Write([]byte(ESC + "[2J" + ESC + "[H"))
}

func (term *Xterm) ShowCursor(show bool) {
	if show {
		term.Writer.Write([]byte(ESC + "[?12l" + ESC + "[?25h"))
	} else {
		term.Writer.Write([]byte(ESC + "[?25l"))
	}
}

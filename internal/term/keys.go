// Package term is the terminal presentation layer: raw-mode input decoding
// and text frames.
package term

import (
	"grid-snake/internal/loop"
	"grid-snake/pkg/snake"
)

const esc = 0x1b

// Decode turns one complete chunk of raw-mode input into commands. Arrow keys
// arrive as ESC [ A..D; unknown bytes are skipped.
func Decode(buf []byte) []loop.Command {
	var d Decoder
	return d.Decode(buf)
}

// Decoder decodes a stream of raw-mode input split across reads. An escape
// sequence cut off at the end of one read is completed by the next.
type Decoder struct {
	pending []byte
}

// Decode returns the commands completed by buf.
func (d *Decoder) Decode(buf []byte) []loop.Command {
	data := buf
	if len(d.pending) > 0 {
		data = append(append([]byte(nil), d.pending...), buf...)
		d.pending = nil
	}

	var cmds []loop.Command
	for i := 0; i < len(data); i++ {
		b := data[i]
		if b == esc {
			if i+1 == len(data) || (data[i+1] == '[' && i+2 == len(data)) {
				d.pending = append(d.pending, data[i:]...)
				break
			}
			if data[i+1] == '[' {
				if dir, ok := arrow(data[i+2]); ok {
					cmds = append(cmds, loop.Command{Dir: dir})
				}
				i += 2
			}
			continue
		}
		if cmd, ok := key(b); ok {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

func arrow(b byte) (snake.Direction, bool) {
	switch b {
	case 'A':
		return snake.Up, true
	case 'B':
		return snake.Down, true
	case 'C':
		return snake.Right, true
	case 'D':
		return snake.Left, true
	}
	return snake.None, false
}

func key(b byte) (loop.Command, bool) {
	switch b {
	case 'w', 'W':
		return loop.Command{Dir: snake.Up}, true
	case 's', 'S':
		return loop.Command{Dir: snake.Down}, true
	case 'a', 'A':
		return loop.Command{Dir: snake.Left}, true
	case 'd', 'D':
		return loop.Command{Dir: snake.Right}, true
	case 'q', 'Q', 0x03:
		return loop.Command{Action: loop.ActionQuit}, true
	case 'p', 'P', ' ':
		return loop.Command{Action: loop.ActionPause}, true
	case 'r', 'R':
		return loop.Command{Action: loop.ActionRestart}, true
	}
	return loop.Command{}, false
}

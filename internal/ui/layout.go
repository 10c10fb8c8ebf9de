package ui

// StatusHeight is the height in pixels of the status bar under the board.
const StatusHeight = statusHeight

const statusHeight = 30

// Values of the "state" status parameter.
const (
	StateRunning = "running"
	StatePaused  = "paused"
	StateOver    = "game over"
)

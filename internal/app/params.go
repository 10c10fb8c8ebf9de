package app

import (
	"strconv"

	"grid-snake/internal/core"
	"grid-snake/internal/ui"
	"grid-snake/pkg/snake"
)

// Parameters builds the status bar contents for a snapshot.
func Parameters(st snake.State, paused bool) core.ParameterSnapshot {
	state := ui.StateRunning
	switch {
	case !st.Alive:
		state = ui.StateOver
	case paused:
		state = ui.StatePaused
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "game",
		Params: []core.Parameter{
			{Key: "length", Label: "length", Value: strconv.Itoa(st.Len())},
			{Key: "tick", Label: "tick", Value: strconv.FormatUint(st.Tick, 10)},
			{Key: "heading", Label: "heading", Value: st.Heading.String()},
			{Key: "state", Label: "", Value: state},
		},
	}}}
}

package tui

// resultMsg carries the outcome of a store call back to the model.
type resultMsg struct {
	err    error
	output string
	notice bool
}

package tui

// actionDoneMsg carries the log lines an action produced. At most one
// action runs at a time; its output lands in the terminal tab as one batch.
type actionDoneMsg struct {
	lines []string
}

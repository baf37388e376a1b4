package tui

type writeDoneMsg struct {
	err error
}

type clearStatusMsg struct{}

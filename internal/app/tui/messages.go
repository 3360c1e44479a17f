package tui

import "github.com/vburojevic/towezterm/internal/app/tui/state"

// LoadedMsg is sent when the scheme file has been (re)read
type LoadedMsg struct {
	Entries []state.Entry
	Err     error
}

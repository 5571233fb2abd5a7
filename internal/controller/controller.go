// Package controller holds the per-screen view state machines. Controllers
// are UI-free: the terminal views own one controller each, run its fetch and
// mutate functions off the UI goroutine, and feed the returned result values
// back into Apply on the UI goroutine. All state mutation happens in Begin
// and Apply, never in the fetch/mutate functions themselves.
package controller

// ViewState tags the current projection of a screen
type ViewState int

const (
	StateLoading ViewState = iota
	StateLoaded
	StateFailed
)

// sequencer numbers requests per controller. begin is only called from the
// UI goroutine, so no synchronization is needed; results carrying an older
// number than the latest issued are discarded on Apply. This covers both
// rapid double-submits and responses arriving after the screen moved on.
type sequencer struct {
	last uint64
}

func (s *sequencer) begin() uint64 {
	s.last++
	return s.last
}

func (s *sequencer) stale(seq uint64) bool {
	return seq != s.last
}

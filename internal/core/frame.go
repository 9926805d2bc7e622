package core

// Frame is the token carried by a scheduled tick. A tick whose token is no
// longer current must be dropped without touching game state.
type Frame uint64

// FrameScheduler hands out tick tokens while a game is running and
// invalidates them all on Stop. It is used from the single goroutine that
// drives the game loop.
type FrameScheduler struct {
	epoch   uint64
	running bool
}

// Start begins a new tick chain and returns its token.
// Tokens from earlier chains become stale.
func (s *FrameScheduler) Start() Frame {
	s.epoch++
	s.running = true
	return Frame(s.epoch)
}

// Stop cancels the current chain. Any tick already in flight will fail Valid.
func (s *FrameScheduler) Stop() {
	if !s.running {
		return
	}
	s.running = false
	s.epoch++
}

// Running reports whether ticks should be scheduled.
func (s *FrameScheduler) Running() bool {
	return s.running
}

// Current returns the live token and whether a chain is running.
func (s *FrameScheduler) Current() (Frame, bool) {
	return Frame(s.epoch), s.running
}

// Valid reports whether a tick carrying f may run.
func (s *FrameScheduler) Valid(f Frame) bool {
	return s.running && uint64(f) == s.epoch
}

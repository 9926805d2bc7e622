// Package audio describes the sound cues a game can request and renders them
// to sample buffers. It never touches an output device; playback lives in
// audio/device so the simulation builds without cgo.
// Cue requests are fire-and-forget: when the output device is missing or the
// player is muted they are dropped without error.
package audio

// Cue identifies a sound effect requested by the game.
type Cue int

const (
	CueCatch Cue = iota
	CueBad
	CueStart
	CueGameOver
)

// Cues lists every cue with a rendered sound.
func Cues() []Cue {
	return []Cue{CueCatch, CueBad, CueStart, CueGameOver}
}

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueCatch:
		return "catch"
	case CueBad:
		return "bad"
	case CueStart:
		return "start"
	case CueGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// Player receives cue requests. Implementations must never block the caller
// for longer than it takes to enqueue the sound, and must never panic.
type Player interface {
	Play(c Cue)
}

// Nop discards every cue.
type Nop struct{}

// Play implements Player.
func (Nop) Play(Cue) {}

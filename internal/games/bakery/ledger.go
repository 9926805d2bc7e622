package bakery

// Ledger owns score and lives. It is the only writer of either value.
type Ledger struct {
	score int
	lives int
}

// NewLedger returns a ledger with zero score and the given lives.
func NewLedger(lives int) Ledger {
	return Ledger{lives: lives}
}

// ApplyScoreDelta adds delta and floors the score at zero.
func (l *Ledger) ApplyScoreDelta(delta int) {
	l.score += delta
	if l.score < 0 {
		l.score = 0
	}
}

// LoseLife removes one life and reports whether the round is over, which is
// the case when the count before the decrement was 1 or less. Lives never go
// below zero.
func (l *Ledger) LoseLife() (depleted bool) {
	before := l.lives
	if l.lives > 0 {
		l.lives--
	}
	return before <= 1
}

// Score returns the current score.
func (l Ledger) Score() int {
	return l.score
}

// Lives returns the remaining lives.
func (l Ledger) Lives() int {
	return l.lives
}

package app

import "time"

// Pacer holds the loop to a target frame rate with a synchronous sleep to
// the next deadline. Deadlines advance by whole frames; a late frame resets
// the schedule instead of bursting to catch up.
type Pacer struct {
	delay time.Duration
	next  time.Time
}

func NewPacer(fps int) *Pacer {
	if fps <= 0 {
		fps = 60
	}
	return &Pacer{delay: time.Second / time.Duration(fps)}
}

func (p *Pacer) Wait() {
	now := time.Now()
	if p.next.IsZero() {
		p.next = now.Add(p.delay)
		return
	}
	if wait := p.next.Sub(now); wait > 0 {
		time.Sleep(wait)
		p.next = p.next.Add(p.delay)
		return
	}
	p.next = now.Add(p.delay)
}

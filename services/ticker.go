package services

import (
	"fmt"
	"sync"
	"time"
)

// SessionTick is the once-per-second elapsed-time payload pushed while a
// session is in progress or awaiting its rating.
type SessionTick struct {
	SessionID      string `json:"sessionId"`
	ElapsedSeconds int    `json:"elapsedSeconds"`
	Display        string `json:"display"`
}

func formatElapsed(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// startTicker runs the session's elapsed-time broadcast. The returned stop is
// stored on the session and must be called on every way out of the session
// (finish, abandon, replacement) so no timer is left dangling.
func (s *WorkoutService) startTicker(sess *workoutSession) {
	done := make(chan struct{})
	var once sync.Once
	sess.stopTick = func() {
		once.Do(func() { close(done) })
	}

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				s.mu.Lock()
				elapsed := int(s.now().Sub(sess.startedAt).Seconds())
				s.mu.Unlock()
				s.hub.Broadcast(sess.userID, SessionTick{
					SessionID:      sess.id,
					ElapsedSeconds: elapsed,
					Display:        formatElapsed(elapsed),
				})
			}
		}
	}()
}

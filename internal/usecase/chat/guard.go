package chat

import "sync"

// turnGuard serializes turns per session. Acquisition is scoped: callers
// defer release so every exit path, including failure, frees the session.
type turnGuard struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func (g *turnGuard) acquire(sessionID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inFlight[sessionID]; busy {
		return false
	}
	g.inFlight[sessionID] = struct{}{}
	return true
}

func (g *turnGuard) release(sessionID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inFlight, sessionID)
}

package main

import (
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/GO-2016/libgoboard/game"
)

// session wraps one in-progress board for the REST/WS handlers. The
// board itself enforces all Go rules; session only tracks whose turn it
// is, since Board.Place takes an explicit player argument and leaves
// alternation up to the caller.
type session struct {
	mu     sync.Mutex
	board  *game.Board
	toMove game.Player
}

func newSession(size int) *session {
	return &session{board: game.NewSquareBoard(size)}
}

// sessionStore is a process-local, in-memory registry of sessions —
// nothing survives a restart. It is only bookkeeping for the demo server
// to find the right board per request; the board engine itself carries
// no persistence of its own.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	nextID   int64
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*session)}
}

func (s *sessionStore) create(size int) (string, *session) {
	id := strconv.FormatInt(atomic.AddInt64(&s.nextID, 1), 10)
	sess := newSession(size)
	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()
	return id, sess
}

func (s *sessionStore) get(id string) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

package game

// EventSink reacts to the events of a frame, e.g. by playing sounds.
type EventSink interface {
	PlayEvents(events Events)
}

// SnapshotSink receives every rendered frame, e.g. to stream it to spectators.
type SnapshotSink interface {
	Publish(snapshot Snapshot)
}

// Session ties a GameState to its per-frame collaborators. Hosts call Tick
// once per frame from a single goroutine.
type Session struct {
	State  *GameState
	Sounds EventSink
	Feed   SnapshotSink
	frame  uint64
}

func NewSession(state *GameState, sounds EventSink, feed SnapshotSink) *Session {
	return &Session{
		State:  state,
		Sounds: sounds,
		Feed:   feed,
	}
}

// Tick updates the game with in and returns the resulting frame.
func (s *Session) Tick(in Input) Snapshot {
	s.State.Update(in)
	s.frame++

	snapshot := s.State.Snapshot()
	snapshot.Frame = s.frame

	if s.Sounds != nil && s.State.Events != 0 {
		s.Sounds.PlayEvents(s.State.Events)
	}
	if s.Feed != nil {
		s.Feed.Publish(snapshot)
	}
	return snapshot
}

func (s *Session) Frame() uint64 { return s.frame }

package auth

import "context"

// Subscribe returns a channel that receives the state after every change.
// Sends never block: a subscriber that has not drained its previous update
// misses the new one and should call State for the latest value. The
// channel is closed when ctx is done or the Service is closed.
func (s *Service) Subscribe(ctx context.Context) <-chan State {
	ch := make(chan State, 1)

	s.subsMu.Lock()
	if s.closed {
		s.subsMu.Unlock()
		close(ch)
		return ch
	}
	s.subs[ch] = struct{}{}
	s.subWG.Add(1)
	s.subsMu.Unlock()

	go func() {
		defer s.subWG.Done()
		select {
		case <-ctx.Done():
			s.unsubscribe(ch)
		case <-s.done:
		}
	}()
	return ch
}

// Close closes every subscription and waits for their watchers to exit.
// Later Subscribe calls get a closed channel.
func (s *Service) Close() {
	s.subsMu.Lock()
	if s.closed {
		s.subsMu.Unlock()
		return
	}
	s.closed = true
	close(s.done)
	for ch := range s.subs {
		delete(s.subs, ch)
		drainAndClose(ch)
	}
	s.subsMu.Unlock()

	s.subWG.Wait()
}

func (s *Service) unsubscribe(ch chan State) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	if _, ok := s.subs[ch]; !ok {
		return
	}
	delete(s.subs, ch)
	drainAndClose(ch)
}

func (s *Service) publish() {
	st := s.State()

	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for ch := range s.subs {
		select {
		case ch <- st:
		default:
		}
	}
}

func drainAndClose(ch chan State) {
	for {
		select {
		case <-ch:
		default:
			close(ch)
			return
		}
	}
}

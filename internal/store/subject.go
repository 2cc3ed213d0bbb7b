// internal/store/subject.go
package store

import "github.com/sirupsen/logrus"

// Attach subscribes o. Attaching the same observer twice delivers every
// notification to it twice.
func (s *Store) Attach(o Observer) {
	if o == nil {
		panic("store: nil observer")
	}

	s.mu.Lock()
	s.observers = append(s.observers, o)
	count := len(s.observers)
	s.mu.Unlock()

	logrus.WithField("observers", count).Debug("Observer attached")
}

// Detach removes the earliest registration of o. Unknown observers are ignored.
func (s *Store) Detach(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, registered := range s.observers {
		if registered == o {
			s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
			logrus.WithField("observers", len(s.observers)).Debug("Observer detached")
			return
		}
	}
}

// NotifyObservers delivers message to every attached observer in attachment
// order before returning. Observers run outside the store lock.
func (s *Store) NotifyObservers(message string) {
	s.mu.RLock()
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.RUnlock()

	for _, o := range observers {
		o.Update(message)
	}
}

func (s *Store) Observers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.observers)
}

// internal/services/observer_service.go
package services

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/imi-catalog/internal/store"
	"github.com/javajoker/imi-catalog/internal/utils"
)

var (
	ErrObserverNotFound = errors.New("observer not found")
	ErrObserverExists   = errors.New("observer already registered")
)

// ObserverService keeps the named feeds remote clients subscribe to. Each
// name maps to one RecordingObserver attached to the store.
type ObserverService struct {
	store *store.Store

	mu        sync.Mutex
	observers map[string]*store.RecordingObserver
}

type SubscribeRequest struct {
	Name string `json:"name" validate:"required,max=64"`
}

func NewObserverService(s *store.Store) *ObserverService {
	return &ObserverService{
		store:     s,
		observers: make(map[string]*store.RecordingObserver),
	}
}

func (s *ObserverService) Subscribe(req *SubscribeRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.observers[req.Name]; exists {
		return ErrObserverExists
	}

	o := store.NewRecordingObserver(req.Name)
	s.observers[req.Name] = o
	s.store.Attach(o)

	logrus.WithField("observer", req.Name).Info("Observer subscribed")
	return nil
}

func (s *ObserverService) Unsubscribe(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, exists := s.observers[name]
	if !exists {
		return ErrObserverNotFound
	}

	s.store.Detach(o)
	delete(s.observers, name)

	logrus.WithField("observer", name).Info("Observer unsubscribed")
	return nil
}

func (s *ObserverService) Messages(name string) ([]string, error) {
	s.mu.Lock()
	o, exists := s.observers[name]
	s.mu.Unlock()

	if !exists {
		return nil, ErrObserverNotFound
	}
	return o.Messages(), nil
}

package search

import (
	"sync"

	"classy-weather/internal/domain/usecase/lookup"
	"classy-weather/pkg/log"
	"classy-weather/pkg/msg"

	"github.com/google/uuid"
)

type searchUseCase struct {
	lookupUseCase lookup.UseCase
	options       Options

	mu       sync.RWMutex
	sessions map[string]*SearchController
}

func NewSearchUseCase(lookupUseCase lookup.UseCase, options Options) UseCase {
	return &searchUseCase{
		lookupUseCase: lookupUseCase,
		options:       options,
		sessions:      make(map[string]*SearchController),
	}
}

// CreateSession starts a new search widget session with an empty state
func (uc *searchUseCase) CreateSession() *SearchController {
	controller := NewSearchController(uuid.New().String(), uc.lookupUseCase, uc.options)

	uc.mu.Lock()
	uc.sessions[controller.ID()] = controller
	uc.mu.Unlock()

	log.Info(msg.GetMessage("search.created", controller.ID()))
	return controller
}

// FindSession returns the session with the given id
func (uc *searchUseCase) FindSession(id string) (*SearchController, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	controller, ok := uc.sessions[id]
	return controller, ok
}

// CloseSession stops the session's lookups and forgets it
func (uc *searchUseCase) CloseSession(id string) bool {
	uc.mu.Lock()
	controller, ok := uc.sessions[id]
	delete(uc.sessions, id)
	uc.mu.Unlock()

	if !ok {
		return false
	}

	controller.Close()
	log.Info(msg.GetMessage("search.closed", id))
	return true
}

// CloseAll closes every open session
func (uc *searchUseCase) CloseAll() {
	uc.mu.Lock()
	sessions := uc.sessions
	uc.sessions = make(map[string]*SearchController)
	uc.mu.Unlock()

	for id, controller := range sessions {
		controller.Close()
		log.Info(msg.GetMessage("search.closed", id))
	}
}

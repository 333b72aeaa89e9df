package search

type UseCase interface {
	// CreateSession starts a new search widget session with an empty state
	CreateSession() *SearchController

	// FindSession returns the session with the given id
	FindSession(id string) (*SearchController, bool)

	// CloseSession stops the session's lookups and forgets it
	CloseSession(id string) bool

	// CloseAll closes every open session
	CloseAll()
}

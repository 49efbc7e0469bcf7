package database

// DataStore defines the unified interface for all data operations needed by
// the services. Consumers that only touch tasks can depend on TaskRepository.
type DataStore interface {
	TaskRepository
}

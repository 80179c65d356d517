package fxmonitor

// Storage persists a payload under the given file name and returns where it ended up.
type Storage interface {
	Store(name string, payload interface{}) (string, error)
	GetStorageProviderName() string
}

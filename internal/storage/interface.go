package storage

// Provider is the durable-store collaborator: a flat key-value contract
// over string payloads. The tracker mirrors the whole habit collection
// under a single fixed key and treats reads and writes as fail-soft.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Get returns the stored value for key. The second return is false
	// when the key is absent, which is not an error.
	Get(key string) (string, bool, error)

	// Set replaces the value for key. Implementations must not leave a
	// previously valid value corrupted by a partial write.
	Set(key, value string) error

	// Utils
	ConfigPath() string
}

package driven

// ConfigStore is a flat key/value view over persisted settings. Keys use dot
// notation ("gateway.base_url"); nesting is an encoding detail of the store.
//
// Typed getters return the zero value when a key is missing or holds a value
// of another type.
type ConfigStore interface {
	Get(key string) (any, bool)
	GetString(key string) string
	GetInt(key string) int
	GetStringSlice(key string) []string

	// Set and Delete persist on every call.
	Set(key string, value any) error
	Delete(key string) error

	// Save and Load sync the whole key set with the backing storage.
	Save() error
	Load() error

	// Path identifies the backing storage for diagnostics.
	Path() string
}

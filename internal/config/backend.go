package config

// Backend stores small string values, such as user preferences, by key.
// Getting a key that was never set returns an empty string and no error.
type Backend interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Unset(key string) error
}

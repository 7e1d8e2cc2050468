package demoserver

// Config holds demo server settings.
type Config struct {
	// Port to listen on.
	Port int
}

// DefaultConfig returns the default demo server configuration.
func DefaultConfig() Config {
	return Config{
		Port: 8099,
	}
}

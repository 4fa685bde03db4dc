// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Layer file and env on top via Load.
// - External errors are wrapped with this package's sentinel kinds.
package config

// Default roster. The game is three friends guessing when the rat goes
// home; names are configuration, not code, but these are the originals.
var defaultParticipants = []string{"Gaurav", "Upanshu", "Yatin"}

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataFile is the path of the persisted JSON document.
	DataFile string `koanf:"data_file"`

	// Participants is the fixed roster, exactly three unique names.
	Participants []string `koanf:"participants"`

	// PublicURL is the externally reachable base URL, used by the QR share
	// endpoint. Defaults to http://localhost<addr> when empty.
	PublicURL string `koanf:"public_url"`

	// WSSendBuffer bounds each websocket client's outbound queue.
	WSSendBuffer int `koanf:"ws_send_buffer"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:     "info",
		Addr:         ":8080",
		DataFile:     "data/data.json",
		Participants: append([]string(nil), defaultParticipants...),
		PublicURL:    "",
		WSSendBuffer: 8,
	}
}

package shared

type ServerConfig struct {
	Sqlite   SqliteConfig   `mapstructure:"sqlite"`
	Listener ListenerConfig `mapstructure:"listener" validate:"required"`
	Session  SessionConfig  `mapstructure:"session" validate:"required"`
}

// SqliteConfig controls the db file. An empty passphrase produces a plain,
// unencrypted database.
type SqliteConfig struct {
	PassPhrase string `mapstructure:"passPhrase"`
}

type ListenerConfig struct {
	Port int `mapstructure:"port" validate:"required"`
}

type SessionConfig struct {
	Secret string `mapstructure:"secret" validate:"required"`
}

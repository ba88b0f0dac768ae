package config

// Config holds all configuration for the application
type Config struct {
	Engine EngineConfig
	Log    LogConfig
}

// EngineConfig holds inference engine limits
type EngineConfig struct {
	// MaxStates caps the joint state space a single query may enumerate.
	MaxStates uint64 `mapstructure:"max_states" validate:"gte=1"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

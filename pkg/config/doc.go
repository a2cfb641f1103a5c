// Package config loads configuration structs from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - Reads values from one or more `.env` files (the default `.env` in the
//     working directory is optional).
//   - Overlays the process environment, so exported variables win over file
//     values.
//   - Parses the merged set into any Go struct using `env` field tags, with an
//     optional prefix applied to every tag.
//
// The process environment is never modified and nothing is cached: every Load
// call parses again. This keeps the package free of global state and makes it
// safe to call from tests running in parallel with WithEnvironment.
//
// # Usage
//
//	type MessagesConfig struct {
//	    IsTrue  string `env:"IS_TRUE"`
//	    NotNull string `env:"NOT_NULL"`
//	}
//
//	var cfg MessagesConfig
//	if err := config.Load(&cfg,
//	    config.WithPrefix("VALIDATE_"),
//	    config.WithEnvFiles(".env", ".env.local"),
//	); err != nil {
//	    return err
//	}
//
// # Error handling
//
// Load returns ErrNilPointer for a nil target, ErrLoadingEnvFile when an
// explicitly named file cannot be read, and ErrParsingConfig (joined with the
// underlying env error) when parsing fails. MustLoad panics instead.
package config

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// defaultEnvFile is read when no WithEnvFiles option is given. Its absence is not an error.
const defaultEnvFile = ".env"

// Option configures a single Load call.
type Option func(*options)

type options struct {
	files       []string
	prefix      string
	environment map[string]string
}

// WithEnvFiles reads variables from the given .env files instead of the
// default one. Files that cannot be read produce ErrLoadingEnvFile.
func WithEnvFiles(files ...string) Option {
	return func(o *options) {
		o.files = append(o.files, files...)
	}
}

// WithPrefix prepends prefix to every env tag of the target struct.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithEnvironment replaces the process environment as the variable source.
// Values from .env files are still merged underneath it.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) {
		o.environment = vars
	}
}

// Load parses environment variables into the provided configuration struct.
//
// Variables are collected from .env files first (the default .env in the
// working directory when no WithEnvFiles option is given) and then overlaid
// with the process environment, so real variables win over file values.
// Nothing is cached and the process environment is never modified.
//
// Example:
//
//	type MessagesConfig struct {
//		IsTrue  string `env:"IS_TRUE"`
//		NotNull string `env:"NOT_NULL" envDefault:"value is required"`
//	}
//
//	var cfg MessagesConfig
//	err := config.Load(&cfg, config.WithPrefix("VALIDATE_"))
//	if err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	vars, err := readEnvFiles(o.files)
	if err != nil {
		return err
	}

	source := o.environment
	if source == nil {
		source = env.ToMap(os.Environ())
	}
	maps.Copy(vars, source)

	if err := env.ParseWithOptions(v, env.Options{
		Environment: vars,
		Prefix:      o.prefix,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
//
// Example:
//
//	var cfg MessagesConfig
//	config.MustLoad(&cfg)
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// readEnvFiles merges the given .env files, later files overriding earlier ones.
func readEnvFiles(files []string) (map[string]string, error) {
	vars := make(map[string]string)

	if len(files) == 0 {
		fileVars, err := godotenv.Read(defaultEnvFile)
		if err != nil {
			// The default file is optional
			if errors.Is(err, fs.ErrNotExist) {
				return vars, nil
			}
			return nil, errors.Join(ErrLoadingEnvFile, err)
		}
		return fileVars, nil
	}

	for _, file := range files {
		fileVars, err := godotenv.Read(file)
		if err != nil {
			return nil, errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", file, err))
		}
		maps.Copy(vars, fileVars)
	}

	return vars, nil
}

// Package config loads typed configuration from environment variables and
// optional .env files.
//
//	type Config struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil { ... }
//
// Each configuration type is parsed once per process and served from a cache
// afterwards. Use Parse for one-off loads, e.g. in tests or CLIs.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	cache          sync.Map // reflect.Type -> value
	defaultEnvOnce sync.Once
)

// Option adjusts a single Parse call.
type Option func(*options)

type options struct {
	files  []string
	prefix string
	lookup map[string]string
}

// WithEnvFiles reads variables from the given .env files. Variables already
// set in the process environment take precedence.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.files = append(o.files, paths...)
	}
}

// WithPrefix prepends prefix to every variable name.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithEnvironment parses from vars instead of the process environment.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) {
		o.lookup = vars
	}
}

// Load parses v once per type, reading ./.env first if it exists, and
// returns the cached value on later calls.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvOnce.Do(func() {
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()
	if cached, ok := cache.Load(key); ok {
		*v = cached.(T)
		return nil
	}

	if err := Parse(v); err != nil {
		return err
	}
	actual, _ := cache.LoadOrStore(key, *v)
	*v = actual.(T)
	return nil
}

// MustLoad is Load for program start-up.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
}

// Parse fills v from the environment without touching the cache.
func Parse[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	envOpts := env.Options{Prefix: o.prefix}
	if o.lookup != nil || len(o.files) > 0 {
		vars, err := environ(o)
		if err != nil {
			return err
		}
		envOpts.Environment = vars
	}

	if err := env.ParseWithOptions(v, envOpts); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// environ merges .env files, then the process (or supplied) environment on top.
func environ(o options) (map[string]string, error) {
	vars := make(map[string]string)
	for _, path := range o.files {
		fileVars, err := godotenv.Read(path)
		if err != nil {
			return nil, errors.Join(ErrReadingEnvFile, fmt.Errorf("%s: %w", path, err))
		}
		for k, val := range fileVars {
			vars[k] = val
		}
	}

	base := o.lookup
	if base == nil {
		base = env.ToMap(os.Environ())
	}
	for k, val := range base {
		vars[k] = val
	}
	return vars, nil
}

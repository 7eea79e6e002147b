package config_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/garagekit/pkg/config"
)

type serverConfig struct {
	Addr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	DefaultLang string        `env:"DEFAULT_LOCALE" envDefault:"en"`
	MetricsFlag bool          `env:"METRICS_ENABLED" envDefault:"true"`
}

type requiredConfig struct {
	Secret string `env:"GARAGEKIT_TEST_SECRET,required"`
}

type cachedConfig struct {
	Value string `env:"GARAGEKIT_TEST_CACHED" envDefault:"first"`
}

func TestParse(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cfg serverConfig
		require.NoError(t, config.Parse(&cfg, config.WithEnvironment(map[string]string{})))
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
		assert.True(t, cfg.MetricsFlag)
	})

	t.Run("explicit environment", func(t *testing.T) {
		var cfg serverConfig
		err := config.Parse(&cfg, config.WithEnvironment(map[string]string{
			"HTTP_ADDR":      ":9000",
			"DEFAULT_LOCALE": "vi",
		}))
		require.NoError(t, err)
		assert.Equal(t, ":9000", cfg.Addr)
		assert.Equal(t, "vi", cfg.DefaultLang)
	})

	t.Run("prefix", func(t *testing.T) {
		var cfg serverConfig
		err := config.Parse(&cfg,
			config.WithPrefix("GK_"),
			config.WithEnvironment(map[string]string{"GK_HTTP_ADDR": ":7000", "HTTP_ADDR": ":1"}))
		require.NoError(t, err)
		assert.Equal(t, ":7000", cfg.Addr)
	})

	t.Run("env file under environment", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("HTTP_ADDR=:6000\nDEFAULT_LOCALE=vi\n"), 0o600))

		var cfg serverConfig
		err := config.Parse(&cfg,
			config.WithEnvFiles(path),
			config.WithEnvironment(map[string]string{"DEFAULT_LOCALE": "en"}))
		require.NoError(t, err)
		assert.Equal(t, ":6000", cfg.Addr)
		assert.Equal(t, "en", cfg.DefaultLang)
	})

	t.Run("missing env file", func(t *testing.T) {
		var cfg serverConfig
		err := config.Parse(&cfg, config.WithEnvFiles(filepath.Join(t.TempDir(), "nope.env")))
		assert.ErrorIs(t, err, config.ErrReadingEnvFile)
	})

	t.Run("required variable", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Parse(&cfg, config.WithEnvironment(map[string]string{}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("bad duration", func(t *testing.T) {
		var cfg serverConfig
		err := config.Parse(&cfg, config.WithEnvironment(map[string]string{"HTTP_READ_TIMEOUT": "soon"}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Parse[serverConfig](nil), config.ErrNilPointer)
	})
}

func TestLoad_CachesPerType(t *testing.T) {
	t.Setenv("GARAGEKIT_TEST_CACHED", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	t.Setenv("GARAGEKIT_TEST_CACHED", "second")

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var again cachedConfig
			assert.NoError(t, config.Load(&again))
			assert.Equal(t, "first", again.Value)
		}()
	}
	wg.Wait()
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}

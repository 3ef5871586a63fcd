package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tempJSON сериализует v во временный файл и возвращает его путь.
func tempJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	path := t.TempDir() + "/config.json"
	require.NoError(t, os.WriteFile(path, data, 0600))
	return path
}

func builderWith(cfgs ...*StructuredConfig) *configBuilder {
	b := newConfigBuilder()
	b.configs = append(b.configs, cfgs...)
	return b
}

func TestNewConfigBuilder(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild(t *testing.T) {
	t.Run("empty builder yields zero config", func(t *testing.T) {
		cfg, err := newConfigBuilder().build()
		require.NoError(t, err)
		assert.Equal(t, &StructuredConfig{}, cfg)
	})

	t.Run("builder error is wrapped", func(t *testing.T) {
		b := newConfigBuilder()
		b.err = assert.AnError

		cfg, err := b.build()
		assert.Nil(t, cfg)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("sources merge field by field", func(t *testing.T) {
		cfg, err := builderWith(
			&StructuredConfig{App: App{Version: "1.0.0"}},
			&StructuredConfig{App: App{TokenIssuer: "issuer"}},
		).build()
		require.NoError(t, err)
		assert.Equal(t, "1.0.0", cfg.App.Version)
		assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	})

	t.Run("first source wins", func(t *testing.T) {
		// mergo без WithOverride заполняет только нулевые поля:
		// поздний источник не перетирает уже установленное значение
		cfg, err := builderWith(
			&StructuredConfig{App: App{CodeHashKey: "from-env"}},
			&StructuredConfig{App: App{CodeHashKey: "from-json", TokenIssuer: "from-json"}},
		).build()
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.App.CodeHashKey)
		assert.Equal(t, "from-json", cfg.App.TokenIssuer)
	})

	t.Run("single source passes through", func(t *testing.T) {
		cfg, err := builderWith(
			&StructuredConfig{App: App{Version: "2.0.0", TokenIssuer: "single"}},
		).build()
		require.NoError(t, err)
		assert.Equal(t, "2.0.0", cfg.App.Version)
		assert.Equal(t, "single", cfg.App.TokenIssuer)
	})
}

func TestWithEnv(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv()) // fluent-интерфейс

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
}

func TestWithEnv_EmptyEnvironment(t *testing.T) {
	b := newConfigBuilder().withEnv()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithFlags_Fluent(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags())
}

func TestWithJSON(t *testing.T) {
	t.Run("fluent", func(t *testing.T) {
		b := newConfigBuilder()
		assert.Same(t, b, b.withJSON())
	})

	t.Run("no path set is a no-op", func(t *testing.T) {
		b := builderWith(&StructuredConfig{}).withJSON()
		assert.Len(t, b.configs, 1)
		assert.NoError(t, b.err)
	})

	t.Run("valid file is parsed and appended", func(t *testing.T) {
		payload := StructuredJSONConfig{}
		payload.App.Version = "json-version"
		payload.App.TokenIssuer = "json-issuer"

		b := builderWith(&StructuredConfig{JSONFilePath: tempJSON(t, payload)}).withJSON()

		require.NoError(t, b.err)
		require.Len(t, b.configs, 2)
		assert.Equal(t, "json-version", b.configs[1].App.Version)
		assert.Equal(t, "json-issuer", b.configs[1].App.TokenIssuer)
	})

	t.Run("missing file sets error", func(t *testing.T) {
		b := builderWith(&StructuredConfig{JSONFilePath: "/nonexistent/config.json"}).withJSON()
		assert.Error(t, b.err)
	})

	t.Run("malformed JSON sets error", func(t *testing.T) {
		path := t.TempDir() + "/bad.json"
		require.NoError(t, os.WriteFile(path, []byte("{not valid json"), 0600))

		b := builderWith(&StructuredConfig{JSONFilePath: path}).withJSON()
		assert.Error(t, b.err)
	})

	t.Run("last non-empty path wins", func(t *testing.T) {
		payload := StructuredJSONConfig{}
		payload.App.Version = "last-wins"

		b := builderWith(
			&StructuredConfig{JSONFilePath: ""},
			&StructuredConfig{JSONFilePath: tempJSON(t, payload)},
		).withJSON()

		require.NoError(t, b.err)
		require.Len(t, b.configs, 3)
		assert.Equal(t, "last-wins", b.configs[2].App.Version)
	})

	t.Run("pre-existing error survives a valid file", func(t *testing.T) {
		payload := StructuredJSONConfig{}
		payload.App.Version = "should-not-appear"

		b := builderWith(&StructuredConfig{JSONFilePath: tempJSON(t, payload)})
		b.err = assert.AnError
		b.withJSON()

		assert.ErrorIs(t, b.err, assert.AnError)
	})
}

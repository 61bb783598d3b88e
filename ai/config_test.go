package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "http://localhost:11434/v1", cfg.GeneratorHost)
	assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	assert.Equal(t, "llama4", cfg.GeneratorModel)
	assert.Equal(t, "embeddinggemma", cfg.EmbeddingModel)
	assert.Equal(t, 0.5, cfg.Temperature)
	assert.Equal(t, 350, cfg.ObjectLimit)
}

func TestNewConfig(t *testing.T) {
	t.Run("with no options", func(t *testing.T) {
		cfg := NewConfig()
		assert.Equal(t, "http://localhost:11434/v1", cfg.GeneratorHost)
		assert.Equal(t, 0.5, cfg.Temperature)
	})

	t.Run("with custom host", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://custom:8080/v1"))
		assert.Equal(t, "http://custom:8080/v1", cfg.GeneratorHost)
		assert.Equal(t, "http://custom:8080/v1", cfg.EmbeddingHost)
	})

	t.Run("with separate hosts", func(t *testing.T) {
		cfg := NewConfig(
			WithGeneratorHost("http://gen:8080/v1"),
			WithEmbeddingHost("http://embed:9090/v1"),
		)
		assert.Equal(t, "http://gen:8080/v1", cfg.GeneratorHost)
		assert.Equal(t, "http://embed:9090/v1", cfg.EmbeddingHost)
	})

	t.Run("with custom models", func(t *testing.T) {
		cfg := NewConfig(
			WithGeneratorModel("qwen2.5:3b"),
			WithEmbeddingModel("text-embedding-3-small"),
		)
		assert.Equal(t, "qwen2.5:3b", cfg.GeneratorModel)
		assert.Equal(t, "text-embedding-3-small", cfg.EmbeddingModel)
	})

	t.Run("with generation tuning", func(t *testing.T) {
		cfg := NewConfig(WithTemperature(0.2), WithObjectLimit(200))
		assert.Equal(t, 0.2, cfg.Temperature)
		assert.Equal(t, 200, cfg.ObjectLimit)
	})
}

func TestConfigNormalize(t *testing.T) {
	cfg := NewConfig(
		WithGeneratorHost("http://localhost:11434"),
		WithEmbeddingHost("http://localhost:9100/"),
	)
	cfg.Normalize()

	assert.Equal(t, "http://localhost:11434/v1", cfg.GeneratorHost)
	assert.Equal(t, "http://localhost:9100/v1", cfg.EmbeddingHost)
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid default", func(t *testing.T) {
		require.NoError(t, DefaultConfig().Validate())
	})

	t.Run("missing generator model", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.GeneratorModel = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing hosts", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.GeneratorHost = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("temperature out of range", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Temperature = 3.0
		assert.Error(t, cfg.Validate())
	})

	t.Run("zero object limit", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ObjectLimit = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("validate normalizes hosts", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://localhost:11434"))
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "http://localhost:11434/v1", cfg.GeneratorHost)
	})
}

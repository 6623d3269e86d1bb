// Package builder contains unit tests for builderConfig and BuilderOption.
package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuilderConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Equal(t, defaultAmplitude, cfg.amplitude)
	assert.Equal(t, defaultOffset, cfg.offset)
	assert.False(t, cfg.seeded)
	assert.Equal(t, defaultOctaves, cfg.octaves)
	assert.Equal(t, defaultFrequency, cfg.frequency)
	assert.Equal(t, defaultPersistence, cfg.persistence)
}

func TestNewBuilderConfig_LastWins(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithAmplitude(2), WithOffset(1), WithAmplitude(3), WithSeed(7))
	assert.Equal(t, 3.0, cfg.amplitude)
	assert.Equal(t, 1.0, cfg.offset)
	require.True(t, cfg.seeded)
	assert.Equal(t, int64(7), cfg.seed)
	assert.Equal(t, 3.0*4+1, cfg.emit(4))
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { WithOctaves(0) })
	assert.Panics(t, func() { WithFrequency(0) })
	assert.Panics(t, func() { WithPersistence(1.5) })
	assert.Panics(t, func() { WithPersistence(0) })
	assert.NotPanics(t, func() { WithPersistence(1) })
}

package migrate

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounter struct {
	pattern string
	count   int
	err     error
}

func (c *fakeCounter) CountKeys(ctx context.Context, pattern string) (int, error) {
	c.pattern = pattern
	return c.count, c.err
}

func TestValidate_Match(t *testing.T) {
	t.Parallel()

	counter := &fakeCounter{count: 250}
	ok, err := Validate(context.Background(), counter, "gabs-migrator-table", 250, zerolog.Nop())

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "gabs-migrator-table:*", counter.pattern)
}

func TestValidate_Mismatch(t *testing.T) {
	t.Parallel()

	// Mismatch é warning, nunca erro: a contagem por prefixo é aproximada.
	counter := &fakeCounter{count: 251}
	ok, err := Validate(context.Background(), counter, "gabs-migrator-table", 250, zerolog.Nop())

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValidate_CountError(t *testing.T) {
	t.Parallel()

	counter := &fakeCounter{err: errors.New("connection lost")}
	ok, err := Validate(context.Background(), counter, "t", 1, zerolog.Nop())

	require.Error(t, err)
	assert.False(t, ok)
}

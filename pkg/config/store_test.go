package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreConfigure(t *testing.T) {
	s, err := NewStore(UI{ColumnWidth: Int(80)})
	require.NoError(t, err)
	assert.Equal(t, 80, s.Current().ColumnWidth)

	require.NoError(t, s.Configure(UI{Dotted: Bool(true)}))
	assert.True(t, s.Current().Dotted)
	assert.Equal(t, 80, s.Current().ColumnWidth, "prior override survives later merges")

	// a failed merge leaves the current configuration untouched
	require.Error(t, s.Configure(UI{IndentWidth: Int(-1)}))
	assert.Equal(t, 80, s.Current().ColumnWidth)
	assert.Equal(t, 4, s.Current().IndentWidth)
}

func TestStoreScopedRestores(t *testing.T) {
	s, err := NewStore()
	require.NoError(t, err)

	err = s.Scoped(func(c Config) error {
		assert.False(t, c.Legend)
		assert.Equal(t, 40, c.ColumnWidth)
		return nil
	}, UI{Legend: Bool(false), ColumnWidth: Int(40)})
	require.NoError(t, err)

	assert.True(t, s.Current().Legend, "prior configuration restored after scope")
	assert.Equal(t, 100, s.Current().ColumnWidth)
}

func TestStoreScopedRestoresOnError(t *testing.T) {
	s, err := NewStore()
	require.NoError(t, err)

	boom := errors.New("render failed")
	err = s.Scoped(func(Config) error { return boom }, TTY{UsePager: Bool(true)})
	require.ErrorIs(t, err, boom)

	assert.False(t, s.Current().UsePager, "prior configuration restored on error exit")
}

func TestStoreScopedRestoresOnBadFragment(t *testing.T) {
	s, err := NewStore()
	require.NoError(t, err)

	called := false
	err = s.Scoped(func(Config) error { called = true; return nil }, UI{ColumnWidth: Int(-5)})
	require.Error(t, err)
	assert.False(t, called, "callback must not run under an invalid configuration")
	assert.Equal(t, 100, s.Current().ColumnWidth)
}

package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type marker struct{}

func TestRegisterCreatesEmptyStorage(t *testing.T) {
	r := newKindRegistry()
	require.NoError(t, register[position](&r))
	s, ok := lookup[position](&r)
	require.True(t, ok)
	assert.True(t, s.IsEmpty())
}

func TestDuplicateRegisterKeepsFirstStorage(t *testing.T) {
	r := newKindRegistry()
	require.NoError(t, register[position](&r))
	s, _ := lookup[position](&r)
	s.Insert(1, position{1, 1})

	err := register[position](&r)
	require.ErrorIs(t, err, ErrDuplicateRegistration)
	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, ce.Kind, "position")

	again, _ := lookup[position](&r)
	assert.Same(t, s, again)
	assert.Equal(t, 1, again.Len())
}

func TestLookupUnregistered(t *testing.T) {
	r := newKindRegistry()
	_, ok := lookup[velocity](&r)
	assert.False(t, ok)
	assert.Panics(t, func() { mustLookup[velocity](&r) })
}

func TestRemoveAllVisitsEveryKind(t *testing.T) {
	r := newKindRegistry()
	require.NoError(t, register[position](&r))
	require.NoError(t, register[velocity](&r))
	require.NoError(t, register[marker](&r))

	pos, _ := lookup[position](&r)
	vel, _ := lookup[velocity](&r)
	pos.Insert(1, position{})
	vel.Insert(1, velocity{})
	pos.Insert(2, position{})

	assert.Equal(t, 2, r.removeAll(1))
	assert.False(t, pos.Has(1))
	assert.False(t, vel.Has(1))
	assert.True(t, pos.Has(2))
	assert.Equal(t, 0, r.removeAll(99))
}

func TestNarrowMismatchPanics(t *testing.T) {
	assert.Panics(t, func() { narrow[position](NewStorage[velocity]()) })
}

func TestDistinctNamedTypesAreDistinctKinds(t *testing.T) {
	type meters float64
	type seconds float64
	r := newKindRegistry()
	require.NoError(t, register[meters](&r))
	require.NoError(t, register[seconds](&r))
	assert.Len(t, r.names(), 2)
}

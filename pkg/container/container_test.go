package container_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericjank/hyperf/pkg/container"
)

func TestContainer_lazy_singleton(t *testing.T) {
	t.Parallel()

	c := container.New()
	built := 0
	require.NoError(t, c.Register("Service", func(*container.Container) (any, error) {
		built++
		return &struct{ N int }{N: 7}, nil
	}))

	assert.True(t, c.Has("Service"))
	assert.Equal(t, 0, built, "construction must be lazy")

	a, err := c.Get("Service")
	require.NoError(t, err)
	b, err := c.Get("Service")
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Equal(t, 1, built)
}

func TestContainer_not_registered(t *testing.T) {
	t.Parallel()

	c := container.New()
	assert.False(t, c.Has("Ghost"))

	_, err := c.Get("Ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, container.ErrNotRegistered)
}

func TestContainer_duplicate_registration(t *testing.T) {
	t.Parallel()

	c := container.New()
	require.NoError(t, c.Register("Dup", func(*container.Container) (any, error) { return 1, nil }))
	assert.Error(t, c.Register("Dup", func(*container.Container) (any, error) { return 2, nil }))
	assert.Error(t, c.RegisterInstance("Dup", 3))
}

func TestContainer_construction_failure_not_cached(t *testing.T) {
	t.Parallel()

	c := container.New()
	calls := 0
	boom := errors.New("boom")
	require.NoError(t, c.Register("Flaky", func(*container.Container) (any, error) {
		calls++
		if calls == 1 {
			return nil, boom
		}
		return "ok", nil
	}))

	_, err := c.Get("Flaky")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	v, err := c.Get("Flaky")
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}

func TestContainer_constructor_resolves_dependencies(t *testing.T) {
	t.Parallel()

	c := container.New()
	require.NoError(t, c.RegisterInstance("Config", "cfg-value"))
	require.NoError(t, c.Register("Repo", func(c *container.Container) (any, error) {
		cfg, err := c.Get("Config")
		if err != nil {
			return nil, err
		}
		return "repo:" + cfg.(string), nil
	}))

	v, err := c.Get("Repo")
	require.NoError(t, err)
	assert.Equal(t, "repo:cfg-value", v)
}

func TestContainer_concurrent_get(t *testing.T) {
	t.Parallel()

	c := container.New()
	require.NoError(t, c.Register("Shared", func(*container.Container) (any, error) {
		return &struct{}{}, nil
	}))

	var wg sync.WaitGroup
	results := make([]any, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := c.Get("Shared")
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}
	wg.Wait()

	for _, v := range results[1:] {
		assert.Same(t, results[0], v)
	}
}

func TestConvert_primitives(t *testing.T) {
	t.Parallel()

	c := container.New()

	tests := []struct {
		raw      string
		typeName string
		want     any
	}{
		{"42", "int", 42},
		{"42", "int64", int64(42)},
		{"7", "uint", uint(7)},
		{"3.5", "float64", 3.5},
		{"true", "bool", true},
		{"plain", "string", "plain"},
		{"", "string", ""},
	}
	for _, tt := range tests {
		v, err := c.Convert(tt.raw, tt.typeName)
		require.NoError(t, err, "%s -> %s", tt.raw, tt.typeName)
		assert.Equal(t, tt.want, v)
	}
}

func TestConvert_failure(t *testing.T) {
	t.Parallel()

	c := container.New()

	_, err := c.Convert("not-a-number", "int")
	assert.Error(t, err)

	_, err = c.Convert("anything", "UnknownType")
	require.Error(t, err)
	assert.ErrorIs(t, err, container.ErrNoConverter)
}

type userID struct{ V int }

func TestConvert_registered_converter_wins(t *testing.T) {
	t.Parallel()

	c := container.New()
	require.NoError(t, c.RegisterConverter("UserID", func(raw string) (any, error) {
		if raw == "" {
			return nil, errors.New("empty id")
		}
		return userID{V: len(raw)}, nil
	}))
	// Override a primitive name too: registered converters take precedence.
	require.NoError(t, c.RegisterConverter("int", func(raw string) (any, error) {
		return -1, nil
	}))

	v, err := c.Convert("abc", "UserID")
	require.NoError(t, err)
	assert.Equal(t, userID{V: 3}, v)

	v, err = c.Convert("42", "int")
	require.NoError(t, err)
	assert.Equal(t, -1, v)

	_, err = c.Convert("", "UserID")
	assert.Error(t, err)
}

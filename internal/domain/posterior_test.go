package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosteriorSet(t *testing.T) {
	dom, err := NewDomain("A", "B")
	require.NoError(t, err)
	uniform, err := NewUniform(dom)
	require.NoError(t, err)
	degenerate, err := NewDegenerate(dom, "A")
	require.NoError(t, err)

	t.Run("keeps insertion order", func(t *testing.T) {
		set := NewPosteriorSet()
		set.Add("guest", uniform)
		set.Add("price", uniform)
		set.Add("monty", uniform)

		assert.Equal(t, []string{"guest", "price", "monty"}, set.Names())
		assert.Equal(t, 3, set.Len())
	})

	t.Run("re-adding replaces without reordering", func(t *testing.T) {
		set := NewPosteriorSet()
		set.Add("guest", uniform)
		set.Add("price", uniform)
		set.Add("guest", degenerate)

		assert.Equal(t, []string{"guest", "price"}, set.Names())

		dist, ok := set.Get("guest")
		require.True(t, ok)
		assert.Equal(t, 1.0, dist.Probability("A"))
	})

	t.Run("missing node reports absence", func(t *testing.T) {
		set := NewPosteriorSet()

		dist, ok := set.Get("ghost")
		assert.False(t, ok)
		assert.Nil(t, dist)
	})
}

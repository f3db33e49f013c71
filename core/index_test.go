package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_RanksFollowNameOrder(t *testing.T) {
	g := triangle(t) // inserted C, A, D, B
	ix := g.Index()

	require.Equal(t, 4, ix.Len())
	assert.Equal(t, []string{VertexA, VertexB, VertexC, VertexD}, ix.Names())

	for want, name := range ix.Names() {
		r, ok := ix.Lookup(name)
		require.True(t, ok)
		assert.Equal(t, want, r)
		assert.Equal(t, name, ix.Name(r))
		assert.Equal(t, r, ix.Rank(ix.Handle(r)))
		assert.Equal(t, name, g.Name(ix.Handle(r)))
	}

	_, ok := ix.Lookup("AA")
	assert.False(t, ok)
	_, ok = ix.Lookup("")
	assert.False(t, ok)
}

func TestIndex_IsSnapshot(t *testing.T) {
	g := triangle(t)
	ix := g.Index()
	require.NoError(t, g.AddVertex("0first"))

	assert.Equal(t, 4, ix.Len(), "snapshot does not track later mutations")
	assert.Equal(t, 5, g.Index().Len())
	r, ok := g.Index().Lookup("0first")
	require.True(t, ok)
	assert.Zero(t, r)
}

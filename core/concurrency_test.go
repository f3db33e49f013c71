// Package core_test verifies core.Graph is safe for concurrent readers
// interleaved with serialized writers.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/core"
)

// TestConcurrentReaders runs many readers while one writer grows the graph.
// Readers only check invariants that hold at every instant.
func TestConcurrentReaders(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("Base"))

	var wg sync.WaitGroup
	errs := make(chan error, NReaders+1)

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < NRounds; i++ {
			name := fmt.Sprintf("V%03d", i)
			if err := g.AddVertex(name); err != nil {
				errs <- err
				return
			}
			if err := g.AddEdge("Base", name, int64(i%100+1)); err != nil {
				errs <- err
				return
			}
		}
	}()

	for r := 0; r < NReaders; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < NRounds; i++ {
				ns, err := g.Neighbors("Base")
				if err != nil {
					errs <- err
					return
				}
				for _, nb := range ns {
					if !g.HasVertex(nb.Name) {
						errs <- fmt.Errorf("neighbor %s not a vertex", nb.Name)
						return
					}
				}
				_ = g.Edges()
				_ = g.Index()
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	d, err := g.Degree("Base")
	require.NoError(t, err)
	assert.Equal(t, NRounds, d)
	assert.Equal(t, NRounds, g.EdgeCount())
}

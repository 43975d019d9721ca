// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/graphmat/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls
// on a multigraph are safe and all neighbors appear.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	var wg sync.WaitGroup
	errCh := make(chan error, NConcurrentAdds)
	wg.Add(NConcurrentAdds)

	// Launch goroutines to add edges from X to V{i}
	for i := 0; i < NConcurrentAdds; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge(VertexX, fmt.Sprintf("V%d", id))
			errCh <- err
		}(i)
	}
	wg.Wait()
	close(errCh)
	MustNoErrorsFromChan(t, errCh, "concurrent AddEdge")

	nbs, err := g.Neighbors(VertexX)
	require.NoError(t, err)
	require.Len(t, nbs, NConcurrentAdds)
	require.Len(t, g.EdgeIDs(), NConcurrentAdds, "generated IDs must be unique")
}

// TestConcurrentAddRemoveEdge mixes AddEdge and RemoveEdge calls
// to verify no races or panics occur under concurrent modification.
func TestConcurrentAddRemoveEdge(t *testing.T) {
	g := core.NewMultigraph()
	require.NoError(t, g.AddVertex(VertexBase))

	var wg sync.WaitGroup
	wg.Add(2 * NConcurrentRounds)

	for i := 0; i < NConcurrentRounds; i++ {
		go func(id int) {
			defer wg.Done()
			_, _ = g.AddEdge(VertexBase, fmt.Sprintf("V%d", id))
		}(i)

		go func() {
			defer wg.Done()
			for _, e := range g.Edges() {
				_ = g.RemoveEdge(e.ID)
			}
		}()
	}
	wg.Wait()
}

// TestConcurrentNeighborsAndClone validates concurrent reads
// (Neighbors) and clones do not race with each other.
func TestConcurrentNeighborsAndClone(t *testing.T) {
	g := core.NewMultigraph()
	for i := 0; i < NLoops; i++ {
		_, _ = g.AddEdge(VertexA, VertexA)
	}

	var wg sync.WaitGroup
	counts := make(chan int, NReaders)
	wg.Add(NReaders + NCloners)

	for i := 0; i < NReaders; i++ {
		go func() {
			defer wg.Done()
			nbs, _ := g.Neighbors(VertexA)
			counts <- len(nbs)
		}()
	}
	for i := 0; i < NCloners; i++ {
		go func() {
			defer wg.Done()
			_ = g.Clone()
		}()
	}
	wg.Wait()
	close(counts)

	for n := range counts {
		require.Equal(t, NLoops, n)
	}
}

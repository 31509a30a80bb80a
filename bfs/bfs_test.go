package bfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshseg/bfs"
)

// adjacency is a minimal bfs.Graph backed by neighbour lists.
type adjacency [][]int

func (a adjacency) Order() int { return len(a) }

func (a adjacency) Neighbors(u int, fn func(v int) bool) {
	for _, v := range a[u] {
		if !fn(v) {
			return
		}
	}
}

// undirected builds an adjacency from an edge list over n vertices.
func undirected(n int, edges [][2]int) adjacency {
	a := make(adjacency, n)
	for _, e := range edges {
		a[e[0]] = append(a[e[0]], e[1])
		a[e[1]] = append(a[e[1]], e[0])
	}
	return a
}

// TestSearch_Errors verifies that invalid inputs and options are rejected.
func TestSearch_Errors(t *testing.T) {
	_, err := bfs.Search(nil, 0)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := adjacency{{}}
	_, err = bfs.Search(g, 3)
	require.ErrorIs(t, err, bfs.ErrStartOutOfRange)
	_, err = bfs.Search(g, -1)
	require.ErrorIs(t, err, bfs.ErrStartOutOfRange)

	_, err = bfs.Search(g, 0, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
	_, err = bfs.Search(g, 0, bfs.WithTarget(-4))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestSearch_CycleDepths covers a 4-cycle 0–1–2–3–0.
func TestSearch_CycleDepths(t *testing.T) {
	g := undirected(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	res, err := bfs.Search(g, 0)
	require.NoError(t, err)

	require.Equal(t, []int{0, 1, 3, 2}, res.Order)
	require.Equal(t, []int{0, 1, 2, 1}, res.Depth)
	require.Equal(t, bfs.Self, res.Parent[0])
	require.Equal(t, 1, res.Parent[2], "first discovery wins")
}

// TestSearch_Unreached checks markers for a disconnected vertex.
func TestSearch_Unreached(t *testing.T) {
	g := undirected(3, [][2]int{{0, 1}})
	res, err := bfs.Search(g, 0)
	require.NoError(t, err)
	require.False(t, res.Reached(2))
	require.Equal(t, bfs.Unvisited, res.Parent[2])
	require.Equal(t, -1, res.Depth[2])
	_, ok := res.PathTo(2)
	require.False(t, ok)
}

// TestSearch_TargetStopsEarly checks augmenting-path mode.
func TestSearch_TargetStopsEarly(t *testing.T) {
	// Chain 0–1–2–3–4 with a branch 1–5.
	g := undirected(6, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {1, 5}})
	res, err := bfs.Search(g, 0, bfs.WithTarget(2))
	require.NoError(t, err)

	path, ok := res.PathTo(2)
	require.True(t, ok)
	require.Equal(t, []int{0, 1, 2}, path)
	require.False(t, res.Reached(3), "search must stop once the target is found")
	require.NotContains(t, res.Order, 2, "the target is discovered, not visited")
}

// TestSearch_TargetIsSource returns immediately.
func TestSearch_TargetIsSource(t *testing.T) {
	g := undirected(2, [][2]int{{0, 1}})
	res, err := bfs.Search(g, 1, bfs.WithTarget(1))
	require.NoError(t, err)
	path, ok := res.PathTo(1)
	require.True(t, ok)
	require.Equal(t, []int{1}, path)
	require.Empty(t, res.Order)
}

// TestSearch_FilterAndDepth restricts arcs and depth.
func TestSearch_FilterAndDepth(t *testing.T) {
	g := undirected(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {0, 4}})

	res, err := bfs.Search(g, 0, bfs.WithFilter(func(u, v int) bool { return v != 4 }))
	require.NoError(t, err)
	require.False(t, res.Reached(4))
	require.True(t, res.Reached(3))

	res, err = bfs.Search(g, 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	require.ElementsMatch(t, []int{0, 1, 4}, res.Order)
}

// TestSearch_OnVisitError aborts and wraps the hook error.
func TestSearch_OnVisitError(t *testing.T) {
	stop := errors.New("stop")
	g := undirected(3, [][2]int{{0, 1}, {1, 2}})
	_, err := bfs.Search(g, 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 1 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
}

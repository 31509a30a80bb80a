package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/meshseg/bfs"
)

// ExampleSearch_grid demonstrates BFS layering on a 3×3 grid, vertex i·3+j.
func ExampleSearch_grid() {
	g := make(adjacency, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			u := i*3 + j
			if j+1 < 3 {
				g[u] = append(g[u], u+1)
				g[u+1] = append(g[u+1], u)
			}
			if i+1 < 3 {
				g[u] = append(g[u], u+3)
				g[u+3] = append(g[u+3], u)
			}
		}
	}

	res, err := bfs.Search(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	path, _ := res.PathTo(8)
	fmt.Println(path)
	// Output:
	// [0 1 3 2 4 6 5 7 8]
	// [0 1 2 5 8]
}

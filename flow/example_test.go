package flow_test

import (
	"fmt"

	"github.com/katalvlaran/meshseg/flow"
)

// ExampleMinCut separates a six-vertex network with a cut of value 10.
//
//	0→1(7)  0→4(4)  1→2(5)  1→3(3)  2→5(8)
//	3→2(3)  3→5(5)  4→1(3)  4→3(2)
func ExampleMinCut() {
	g := flow.NewGraph(6)
	for _, e := range [][3]int{
		{0, 1, 7}, {0, 4, 4}, {1, 2, 5}, {1, 3, 3}, {2, 5, 8},
		{3, 2, 3}, {3, 5, 5}, {4, 1, 3}, {4, 3, 2},
	} {
		_ = g.AddEdge(e[0], e[1], int64(e[2]))
	}

	cut, err := flow.MinCut(g, 0, 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(cut.Source, cut.MaxFlow)
	// Output:
	// [0 1 4] 10
}

// ExampleDinic_simple demonstrates Dinic on a single-edge network.
func ExampleDinic_simple() {
	g := flow.NewGraph(2)
	_ = g.AddEdge(0, 1, 7)

	maxFlow, _, _ := flow.Dinic(g, 0, 1)
	fmt.Println(maxFlow)
	// Output:
	// 7
}

// ExampleFordFulkerson_medium shows Ford–Fulkerson on a two-path network.
//
//	s(0)→a(1) 3, a→t(3) 2, s→b(2) 2, b→t 3  ⇒  4
func ExampleFordFulkerson_medium() {
	g := flow.NewGraph(4)
	_ = g.AddEdge(0, 1, 3)
	_ = g.AddEdge(1, 3, 2)
	_ = g.AddEdge(0, 2, 2)
	_ = g.AddEdge(2, 3, 3)

	maxFlow, _, _ := flow.FordFulkerson(g, 0, 3)
	fmt.Println(maxFlow)
	// Output:
	// 4
}

// Package routing_test provides runnable examples of plain and accessible route queries.
package routing_test

import (
	"fmt"

	"github.com/katalvlaran/magicmap/core"
	"github.com/katalvlaran/magicmap/routing"
)

func examplePark() *core.Graph {
	g, _ := core.Construct(
		[]core.Record{
			{"id": "1", "name": "Entrance", "type": "E"},
			{"id": "2", "name": "Coaster", "type": "E"},
			{"id": "3", "name": "Shop", "type": "S"},
		},
		[]core.Record{
			{"u_node": "1", "v_node": "2", "weight": "100", "if_accessible": "Y", "if_directed": "Y"},
			{"u_node": "2", "v_node": "3", "weight": "50", "if_accessible": "N", "if_directed": "N"},
		},
	)

	return g
}

// ExampleFindShortestPath prints a turn-by-turn route.
func ExampleFindShortestPath() {
	route, err := routing.FindShortestPath(examplePark(), 1, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("distance:", route.Distance)
	for _, h := range route.Hops {
		fmt.Printf("%d(%s) ----> %d(%s)\n", h.From.ID, h.From.Name, h.To.ID, h.To.Name)
	}

	// Output:
	// distance: 150
	// 1(Entrance) ----> 2(Coaster)
	// 2(Coaster) ----> 3(Shop)
}

// ExampleFindShortestPathAccessible shows the no-path outcome.
func ExampleFindShortestPathAccessible() {
	route, err := routing.FindShortestPathAccessible(examplePark(), 1, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(route.Found)
	fmt.Println(route.Err())

	// Output:
	// false
	// routing: no path (accessible) from 1(Entrance) to 3(Shop)
}

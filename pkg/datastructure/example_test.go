package datastructure_test

import (
	"fmt"
	"lintang/minpq/pkg/datastructure"
	"math"
)

func ExampleIndexedMinHeap() {
	h := datastructure.NewIndexedMinHeap[string]()
	_ = h.Insert("A", 5)
	_ = h.Insert("B", 3)
	_ = h.Insert("C", 8)

	minItem, _ := h.PeekMin()
	fmt.Println("min:", minItem)

	_ = h.ChangePriority("C", 1)
	minItem, _ = h.PeekMin()
	fmt.Println("min after change:", minItem)

	for !h.IsEmpty() {
		item, _ := h.RemoveMin()
		fmt.Println("removed:", item)
	}
	fmt.Println("empty:", h.IsEmpty())

	// Output:
	// min: B
	// min after change: C
	// removed: C
	// removed: B
	// removed: A
	// empty: true
}

type edge struct {
	to     int32
	weight float64
}

// ExampleIndexedMinHeap_dijkstra decrease-key ketika ketemu path yang lebih murah ke node yang masih di queue.
func ExampleIndexedMinHeap_dijkstra() {
	graph := map[int32][]edge{
		0: {{1, 4}, {2, 1}},
		2: {{1, 2}, {3, 5}},
		1: {{3, 1}},
	}

	dist := map[int32]float64{0: 0}
	pq := datastructure.NewIndexedMinHeap[int32]()
	_ = pq.Insert(0, 0)

	for !pq.IsEmpty() {
		curr, _ := pq.RemoveMinRecord()
		for _, e := range graph[curr.Item] {
			newDist := curr.Priority + e.weight
			old, ok := dist[e.to]
			if !ok {
				old = math.MaxFloat64
			}
			if newDist >= old {
				continue
			}
			dist[e.to] = newDist
			if pq.Contains(e.to) {
				_ = pq.ChangePriority(e.to, newDist)
			} else {
				_ = pq.Insert(e.to, newDist)
			}
		}
	}

	for node := int32(0); node < 4; node++ {
		fmt.Printf("%d: %.0f\n", node, dist[node])
	}

	// Output:
	// 0: 0
	// 1: 3
	// 2: 1
	// 3: 4
}

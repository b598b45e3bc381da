package degrees

import (
	"container/heap"
	"math"

	wpinq "github.com/joeycumines/go-wpinq"
)

// gridPoint is a node in the monotone staircase grid FitCDFSeq searches.
type gridPoint struct {
	x, y int64
}

type heapItem struct {
	dist float64
	pt   gridPoint
}

// priorityQueue is a container/heap.Interface min-heap on cumulative
// distance, in the same shape as the event-loop's own timer heap.
type priorityQueue []heapItem

func (q priorityQueue) Len() int            { return len(q) }
func (q priorityQueue) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q priorityQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *priorityQueue) Push(x interface{}) { *q = append(*q, x.(heapItem)) }
func (q *priorityQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// FitCDFSeq finds the minimum-cost monotone staircase path on the
// integer grid from (0, max_y) to (max_x, 0), using only unit moves
// right (x+1) and down (y-1), where the cost of a right move from
// (x,y) is cost(horizontal[x], y) and the cost of a down move from
// (x,y) is cost(vertical[y-1], x). max_x and max_y are the rounded,
// non-negative maxima of vertical and horizontal respectively.
//
// It reconciles a cumulative-distribution measurement (horizontal) with
// a ranked-sequence measurement (vertical): traversing an edge commits
// to that edge's measurement, so the minimum-cost path is the joint fit
// that best explains both measurements at once.
//
// Panics with a *wpinq.ContractViolation wrapping wpinq.ErrEmptyGrid if
// either input is empty.
func FitCDFSeq(horizontal, vertical []float64, cost func(expected, actual float64) float64) (resultH, resultV []int64) {
	if len(horizontal) == 0 || len(vertical) == 0 {
		wpinq.Violate(`degrees.FitCDFSeq`, wpinq.ErrEmptyGrid)
	}

	maxX := roundedNonNegativeMax(vertical)
	maxY := roundedNonNegativeMax(horizontal)

	dists := make(map[gridPoint]float64)
	queue := &priorityQueue{{dist: 0, pt: gridPoint{x: 0, y: maxY}}}
	heap.Init(queue)

	target := gridPoint{x: maxX, y: 0}
	for {
		if _, ok := dists[target]; ok {
			break
		}
		if queue.Len() == 0 {
			panic(`degrees: ran out of reachable grid states`)
		}
		item := heap.Pop(queue).(heapItem)
		if _, seen := dists[item.pt]; seen {
			continue
		}
		dists[item.pt] = item.dist

		x, y := item.pt.x, item.pt.y
		if x+1 <= maxX {
			heap.Push(queue, heapItem{dist: item.dist + cost(horizontal[x], float64(y)), pt: gridPoint{x: x + 1, y: y}})
		}
		if y > 0 {
			heap.Push(queue, heapItem{dist: item.dist + cost(vertical[y-1], float64(x)), pt: gridPoint{x: x, y: y - 1}})
		}
	}

	resultH = make([]int64, maxX)
	resultV = make([]int64, maxY)

	current := target
	origin := gridPoint{x: 0, y: maxY}
	for current != origin {
		x, y := current.x, current.y
		d1, ok1 := dists[gridPoint{x: x - 1, y: y}]
		d2, ok2 := dists[gridPoint{x: x, y: y + 1}]

		switch {
		case !ok1 && !ok2:
			panic(`degrees: backward trace failed`)
		case ok1 && !ok2:
			current = gridPoint{x: x - 1, y: y}
			resultH[x-1] = y
		case !ok1 && ok2:
			current = gridPoint{x: x, y: y + 1}
			resultV[y] = x
		default:
			c1 := d1 + cost(horizontal[x-1], float64(y))
			c2 := d2 + cost(vertical[y], float64(x))
			if c1 <= c2 {
				current = gridPoint{x: x - 1, y: y}
				resultH[x-1] = y
			} else {
				current = gridPoint{x: x, y: y + 1}
				resultV[y] = x
			}
		}
	}

	return resultH, resultV
}

func roundedNonNegativeMax(values []float64) int64 {
	var m int64
	for i, v := range values {
		r := int64(math.Round(v))
		if i == 0 || r > m {
			m = r
		}
	}
	if m < 0 {
		m = 0
	}
	return m
}

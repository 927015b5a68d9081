package pathfinder

import "roomfinder/models"

type queueItem struct {
	Node         models.Coordinate
	GScore       int
	HScore       int
	Seq          uint64
	IndexInQueue int
}

func (it *queueItem) fCost() int { return it.GScore + it.HScore }

// priorityQueue orders by f, then lower h, then insertion order.
type priorityQueue []*queueItem

func (queue priorityQueue) Len() int { return len(queue) }

func (queue priorityQueue) Less(i, j int) bool {
	a, b := queue[i], queue[j]
	if fa, fb := a.fCost(), b.fCost(); fa != fb {
		return fa < fb
	}
	if a.HScore != b.HScore {
		return a.HScore < b.HScore
	}
	return a.Seq < b.Seq
}

func (queue priorityQueue) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].IndexInQueue = i
	queue[j].IndexInQueue = j
}

func (queue *priorityQueue) Push(x any) {
	item := x.(*queueItem)
	item.IndexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *priorityQueue) Pop() any {
	old := *queue
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.IndexInQueue = -1
	*queue = old[:n-1]
	return item
}

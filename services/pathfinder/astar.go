package pathfinder

import (
	"container/heap"
	"context"

	"roomfinder/models"
)

// cancelCheckInterval is how many expansions run between context checks.
const cancelCheckInterval = 256

// Result contains the outcome of a search.
type Result struct {
	Path     models.Path
	Cost     int
	Expanded int
	Found    bool
}

// Search returns the shortest walk from start to goal, or an empty path when
// goal cannot be reached.
func (g Grid) Search(start, goal models.Coordinate) models.Path {
	res, _ := g.SearchContext(context.Background(), start, goal)
	return res.Path
}

// SearchContext runs A* and stops early with ctx.Err() when ctx is done.
//
// start == goal yields [start] whatever the bounds. Otherwise a start or goal
// outside the grid yields an empty path.
func (g Grid) SearchContext(ctx context.Context, start, goal models.Coordinate) (Result, error) {
	if start == goal {
		return Result{Path: models.Path{start}, Expanded: 1, Found: true}, nil
	}
	if !g.InBounds(start) || !g.InBounds(goal) {
		return Result{Path: models.Path{}}, nil
	}

	openSet := make(priorityQueue, 0, 4*g.Size)
	heap.Init(&openSet)

	var seq uint64
	startItem := &queueItem{Node: start, GScore: 0, HScore: Manhattan(start, goal), Seq: seq}
	heap.Push(&openSet, startItem)

	openSetMap := map[models.Coordinate]*queueItem{start: startItem}
	closedSet := make(map[models.Coordinate]struct{})
	cameFrom := make(map[models.Coordinate]models.Coordinate)

	expanded := 0
	for openSet.Len() > 0 {
		if expanded%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Result{Path: models.Path{}, Expanded: expanded}, err
			}
		}

		current := heap.Pop(&openSet).(*queueItem)
		delete(openSetMap, current.Node)
		// Final once expanded: unit costs and a consistent heuristic.
		closedSet[current.Node] = struct{}{}
		expanded++

		if current.Node == goal {
			return Result{
				Path:     reconstructPath(cameFrom, goal, start),
				Cost:     current.GScore,
				Expanded: expanded,
				Found:    true,
			}, nil
		}

		tentativeG := current.GScore + 1
		for _, next := range g.Neighbors(current.Node) {
			if _, closed := closedSet[next]; closed {
				continue
			}
			if item, inOpen := openSetMap[next]; inOpen {
				if tentativeG < item.GScore {
					item.GScore = tentativeG
					cameFrom[next] = current.Node
					heap.Fix(&openSet, item.IndexInQueue)
				}
				continue
			}
			seq++
			item := &queueItem{Node: next, GScore: tentativeG, HScore: Manhattan(next, goal), Seq: seq}
			cameFrom[next] = current.Node
			heap.Push(&openSet, item)
			openSetMap[next] = item
		}
	}

	return Result{Path: models.Path{}, Expanded: expanded}, nil
}

// reconstructPath follows back-pointers from goal and returns the walk in start-to-goal order.
func reconstructPath(cameFrom map[models.Coordinate]models.Coordinate, goal, start models.Coordinate) models.Path {
	path := models.Path{goal}
	current := goal
	for current != start {
		previous, ok := cameFrom[current]
		if !ok {
			break
		}
		path = append(path, previous)
		current = previous
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

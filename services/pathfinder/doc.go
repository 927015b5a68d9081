// Package pathfinder computes shortest walks on the building grid.
//
// The grid is square, obstacle-free and moves are the four axis-aligned steps,
// each costing 1. Search runs A* with the Manhattan heuristic, which is
// consistent under that cost model, so a node is final once expanded and the
// closed set is never reopened.
//
// That closed set is coupled to the cost model. Introducing obstacles, variable
// step costs or a different heuristic requires revisiting it and adding
// reopening of closed nodes whose cost improves.
package pathfinder

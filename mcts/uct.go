package mcts

import (
	"fmt"
	"math"

	"hexmcts/hexerr"
)

// uctScore computes the Upper Confidence Bound for Trees value of child
// under a parent with parentVisits visits. An unvisited child scores
// +Inf, forcing every child to be tried once before any is revisited.
func uctScore(child *Node, parentVisits int, explorationFactor float64) float64 {
	child.mu.Lock()
	visits := child.visitCount
	wins := child.winCount
	child.mu.Unlock()

	if visits == 0 {
		return math.Inf(1)
	}

	exploitation := float64(wins) / float64(visits)
	exploration := explorationFactor * math.Sqrt(math.Log(float64(parentVisits))/float64(visits))
	return exploitation + exploration
}

// SelectChild scans parent's children in stored order and returns the one
// with the highest UCT score, along with that score. An unvisited child
// scores +Inf and is returned immediately on the first encounter; among
// finite scores, ties keep the earlier child. parent must already have
// been expanded.
func SelectChild(parent *Node, explorationFactor float64) (*Node, float64, error) {
	parent.mu.Lock()
	children := parent.children
	parentVisits := parent.visitCount
	parent.mu.Unlock()

	if len(children) == 0 {
		return nil, 0, fmt.Errorf("select child: parent has no children: %w", hexerr.InvalidArgument)
	}

	best := children[0]
	bestScore := uctScore(best, parentVisits, explorationFactor)
	if bestScore == math.Inf(1) {
		return best, bestScore, nil
	}

	for _, child := range children[1:] {
		score := uctScore(child, parentVisits, explorationFactor)
		if score == math.Inf(1) {
			return child, score, nil
		}
		if score > bestScore {
			best = child
			bestScore = score
		}
	}

	return best, bestScore, nil
}

// SelectBestChild chooses the final move among root's children by win
// ratio, skipping children that were never visited. Ties keep the
// earlier child in stored order. It fails with InsufficientBudget if no
// child was ever visited.
func SelectBestChild(root *Node) (*Node, float64, error) {
	root.mu.Lock()
	children := root.children
	root.mu.Unlock()

	var best *Node
	bestRatio := -1.0

	for _, child := range children {
		ratio, visited := child.WinRatio()
		if !visited {
			continue
		}
		if best == nil || ratio > bestRatio {
			best = child
			bestRatio = ratio
		}
	}

	if best == nil {
		return nil, 0, fmt.Errorf("no child of the root was visited before the deadline: %w", hexerr.InsufficientBudget)
	}

	return best, bestRatio, nil
}

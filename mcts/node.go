package mcts

import (
	"sync"

	"hexmcts/hex"
)

// Node is a single position in the depth-1 search tree: "the position
// reached by applying move from parent, with player being the side that
// just moved." The root is a sentinel with move = hex.SentinelMove and
// player set to the side to move at the real position.
//
// Nodes are created once during expansion and mutated only through
// Backpropagate; the tree is discarded wholesale at the end of one
// ChooseMove call, so there is no detachment or pruning to implement.
type Node struct {
	mu sync.Mutex

	move   hex.Move
	player hex.CellState

	winCount   int
	visitCount int

	parent   *Node
	children []*Node
}

// newRoot builds the sentinel root for a decision. player is the side to
// move at the real position; it seeds the player field of every child
// created during expansion, per the root/child player convention in the
// package's node statistics (see Backpropagate).
func newRoot(sideToMove hex.CellState) *Node {
	return &Node{
		move:   hex.SentinelMove,
		player: sideToMove,
	}
}

// expandRoot populates root's children, one per legal move on board, in
// board.LegalMoves order. Every child's player is root's player (the
// side to move at the real position), not the mover of the leaf's own
// move — this is what makes a child's win ratio directly measure "how
// often the root's side wins after playing this move."
func expandRoot(root *Node, board *hex.Board) {
	moves := board.LegalMoves()
	root.children = make([]*Node, 0, len(moves))
	for _, move := range moves {
		root.children = append(root.children, &Node{
			move:   move,
			player: root.player,
			parent: root,
		})
	}
}

// Move returns the move that led to this node.
func (n *Node) Move() hex.Move {
	return n.move
}

// Visits returns the node's visit count.
func (n *Node) Visits() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.visitCount
}

// Wins returns the node's win count.
func (n *Node) Wins() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.winCount
}

// WinRatio returns winCount/visitCount, or (0, false) if the node has
// never been visited.
func (n *Node) WinRatio() (float64, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.visitCount == 0 {
		return 0, false
	}
	return float64(n.winCount) / float64(n.visitCount), true
}

// Backpropagate walks from node up through parent links to the sentinel
// root, incrementing each visited node's visit count and, where the
// playout's winner matches the node's player, its win count. The root is
// included in the walk; its win count is informational only and is never
// consulted for final move selection.
func Backpropagate(node *Node, winner hex.CellState) {
	for n := node; n != nil; n = n.parent {
		n.mu.Lock()
		n.visitCount++
		if winner == n.player {
			n.winCount++
		}
		n.mu.Unlock()
	}
}

package search

import "math"

// thanks Wikipedia:
/*
function minimax(node, depth, maximizingPlayer) is
    if depth = 0 or node is a terminal node then
        return the heuristic value of node
    if maximizingPlayer then
        value := −∞
        for each child of node do
            value := max(value, minimax(child, depth − 1, FALSE))
        return value
    else (* minimizing player *)
        value := +∞
        for each child of node do
            value := min(value, minimax(child, depth − 1, TRUE))
        return value
**/

// minimax returns the value of node. A won node is not scored: it is
// handed back to the caller and every ancestor returns it unchanged.
func (s *Solver) minimax(node *GameNode, depth int, maximizing bool, pv *PVLine) (float64, *leafHit) {
	s.stats.Nodes++
	if node.phase.Terminal() {
		return 0, &leafHit{node: node, depthLeft: depth}
	}
	if depth == 0 {
		return s.evaluate(node), nil
	}
	s.expand(node)

	var childPV PVLine
	if maximizing {
		value := math.Inf(-1)
		for _, child := range node.children {
			childPV.Clear()
			v, leaf := s.minimax(child, depth-1, false, &childPV)
			if leaf != nil {
				return 0, leaf
			}
			if v > value {
				value = v
				pv.Update(child.move, childPV)
			}
		}
		return value, nil
	}
	value := math.Inf(1)
	for _, child := range node.children {
		childPV.Clear()
		v, leaf := s.minimax(child, depth-1, true, &childPV)
		if leaf != nil {
			return 0, leaf
		}
		if v < value {
			value = v
			pv.Update(child.move, childPV)
		}
	}
	return value, nil
}

package search

import "math"

// thanks Wikipedia:
/**function alphabeta(node, depth, α, β, maximizingPlayer) is
    if depth = 0 or node is a terminal node then
        return the heuristic value of node
    if maximizingPlayer then
        value := −∞
        for each child of node do
            value := max(value, alphabeta(child, depth − 1, α, β, FALSE))
            α := max(α, value)
            if α ≥ β then
                break (* β cut-off *)
        return value
    else
        value := +∞
        for each child of node do
            value := min(value, alphabeta(child, depth − 1, α, β, TRUE))
            β := min(β, value)
            if α ≥ β then
                break (* α cut-off *)
        return value
**/

// alphabeta is minimax with pruning. The value it returns for a node is
// exact when it falls strictly inside (alpha, beta); otherwise it is only
// a bound, which never beats an earlier sibling under strict comparison.
func (s *Solver) alphabeta(node *GameNode, depth int, alpha, beta float64,
	maximizing bool, pv *PVLine) (float64, *leafHit) {

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
			v, leaf := s.alphabeta(child, depth-1, alpha, beta, false, &childPV)
			if leaf != nil {
				return 0, leaf
			}
			if v > value {
				value = v
				pv.Update(child.move, childPV)
			}
			alpha = math.Max(alpha, value)
			if beta <= alpha {
				s.stats.Cutoffs++
				break
			}
		}
		return value, nil
	}
	value := math.Inf(1)
	for _, child := range node.children {
		childPV.Clear()
		v, leaf := s.alphabeta(child, depth-1, alpha, beta, true, &childPV)
		if leaf != nil {
			return 0, leaf
		}
		if v < value {
			value = v
			pv.Update(child.move, childPV)
		}
		beta = math.Min(beta, value)
		if beta <= alpha {
			s.stats.Cutoffs++
			break
		}
	}
	return value, nil
}

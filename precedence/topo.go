package precedence

const (
	white = iota
	gray
	black
)

// TopoSort computes a topological ordering of every step in g: for every
// edge p -> s, p appears before s in the result. If g is nil, returns
// ErrGraphNil. If g contains a cycle, returns a *CycleError naming the
// cycle.
func TopoSort(g *Graph) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	state := make(map[string]int, len(g.StepIDs))
	order := make([]string, 0, len(g.StepIDs))
	var path []string

	var visit func(id string) error
	visit = func(id string) error {
		switch state[id] {
		case black:
			return nil
		case gray:
			return &CycleError{Cycle: closeCycle(path, id)}
		}

		state[id] = gray
		path = append(path, id)

		for _, e := range g.Forward[id] {
			if err := visit(e.To); err != nil {
				return err
			}
		}

		path = path[:len(path)-1]
		state[id] = black
		order = append(order, id)
		return nil
	}

	for _, id := range g.StepIDs {
		if state[id] == white {
			if err := visit(id); err != nil {
				return nil, err
			}
		}
	}

	// Reverse post-order to obtain topological order.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order, nil
}

// closeCycle extracts the cycle segment of path starting at the first
// occurrence of start and closes it by repeating start as the last element.
func closeCycle(path []string, start string) []string {
	idx := 0
	for i, id := range path {
		if id == start {
			idx = i
			break
		}
	}
	seq := append([]string(nil), path[idx:]...)
	seq = append(seq, start)
	return seq
}

package scheduling

import "sort"

// TaskGraph is a directed acyclic graph of task ids. It is built once from
// an edge list and a platform and exposes predecessor/successor lookups and
// a deterministic topological order; it never mutates after construction.
type TaskGraph struct {
	nodes []int
	preds map[int][]int
	succs map[int][]int
	topo  []int
}

// NewTaskGraph validates edges against platform's execution-time table and
// builds the DAG. It rejects self-loops and cycles with ErrCycle, and edge
// endpoints with no execution-time row with ErrMissingExecTime.
func NewTaskGraph(edges [][2]int, platform *Platform) (*TaskGraph, error) {
	nodeSet := make(map[int]bool)
	preds := make(map[int][]int)
	succs := make(map[int][]int)

	for _, e := range edges {
		u, v := e[0], e[1]
		if u == v {
			return nil, &GraphError{Err: ErrCycle, TaskID: u}
		}
		if !platform.HasTask(u) {
			return nil, &GraphError{Err: ErrMissingExecTime, TaskID: u}
		}
		if !platform.HasTask(v) {
			return nil, &GraphError{Err: ErrMissingExecTime, TaskID: v}
		}
		nodeSet[u] = true
		nodeSet[v] = true
		succs[u] = append(succs[u], v)
		preds[v] = append(preds[v], u)
	}

	for _, id := range platform.AllTaskIDs() {
		nodeSet[id] = true
	}

	nodes := make([]int, 0, len(nodeSet))
	for id := range nodeSet {
		nodes = append(nodes, id)
	}
	sort.Ints(nodes)

	for _, id := range nodes {
		sort.Ints(preds[id])
		sort.Ints(succs[id])
	}

	topo, err := kahnTopoSort(nodes, preds, succs)
	if err != nil {
		return nil, err
	}

	return &TaskGraph{nodes: nodes, preds: preds, succs: succs, topo: topo}, nil
}

// kahnTopoSort computes a deterministic topological order (ties broken by
// ascending id) and detects cycles via Kahn's algorithm.
func kahnTopoSort(nodes []int, preds, succs map[int][]int) ([]int, error) {
	inDegree := make(map[int]int, len(nodes))
	for _, n := range nodes {
		inDegree[n] = len(preds[n])
	}

	ready := make([]int, 0, len(nodes))
	for _, n := range nodes {
		if inDegree[n] == 0 {
			ready = append(ready, n)
		}
	}
	sort.Ints(ready)

	order := make([]int, 0, len(nodes))
	for len(ready) > 0 {
		cur := ready[0]
		ready = ready[1:]
		order = append(order, cur)

		for _, s := range succs[cur] {
			inDegree[s]--
			if inDegree[s] == 0 {
				idx := sort.SearchInts(ready, s)
				ready = append(ready, 0)
				copy(ready[idx+1:], ready[idx:len(ready)-1])
				ready[idx] = s
			}
		}
	}

	if len(order) != len(nodes) {
		for _, n := range nodes {
			if inDegree[n] > 0 {
				return nil, &GraphError{Err: ErrCycle, TaskID: n}
			}
		}
		return nil, &GraphError{Err: ErrCycle}
	}

	return order, nil
}

func (g *TaskGraph) Predecessors(task int) []int {
	return append([]int(nil), g.preds[task]...)
}

func (g *TaskGraph) Successors(task int) []int {
	return append([]int(nil), g.succs[task]...)
}

func (g *TaskGraph) AllNodes() []int {
	return append([]int(nil), g.nodes...)
}

func (g *TaskGraph) TopoOrder() []int {
	return append([]int(nil), g.topo...)
}

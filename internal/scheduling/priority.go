package scheduling

// Rank computes each task's scheduling priority: the length of the longest
// path from the task to an exit node, measured in MaxExecTime per hop.
// Exit nodes (no successors) get priority equal to their own MaxExecTime.
// Ties in the resulting order are broken later by ascending task id, not
// here; Rank only computes the numeric priority.
func Rank(graph *TaskGraph, platform *Platform) map[int]int {
	priority := make(map[int]int, len(graph.nodes))

	topo := graph.TopoOrder()
	for i := len(topo) - 1; i >= 0; i-- {
		task := topo[i]
		succs := graph.Successors(task)

		best := 0
		for _, s := range succs {
			if priority[s] > best {
				best = priority[s]
			}
		}
		priority[task] = platform.MaxExecTime(task) + best
	}

	return priority
}

// PriorityOrder returns every task id sorted by descending priority, ties
// broken by ascending task id. This is the order the initial scheduler (C5)
// assigns tasks in.
func PriorityOrder(graph *TaskGraph, priority map[int]int) []int {
	nodes := graph.AllNodes()
	order := append([]int(nil), nodes...)

	insertionSortByPriority(order, priority)
	return order
}

func insertionSortByPriority(order []int, priority map[int]int) {
	for i := 1; i < len(order); i++ {
		j := i
		for j > 0 && lessPriority(order[j], order[j-1], priority) {
			order[j], order[j-1] = order[j-1], order[j]
			j--
		}
	}
}

// lessPriority reports whether a should sort before b: higher priority
// first, ascending task id on ties.
func lessPriority(a, b int, priority map[int]int) bool {
	if priority[a] != priority[b] {
		return priority[a] > priority[b]
	}
	return a < b
}

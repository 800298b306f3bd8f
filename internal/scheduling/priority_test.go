package scheduling

import "testing"

func TestRankExitNodeEqualsMaxExecTime(t *testing.T) {
	platform := testPlatform(t, tenTaskExecTable(), 100)
	graph, err := NewTaskGraph(tenTaskEdges(), platform)
	if err != nil {
		t.Fatalf("NewTaskGraph: %v", err)
	}

	priority := Rank(graph, platform)

	if got, want := priority[10], platform.MaxExecTime(10); got != want {
		t.Errorf("exit node priority = %d, want %d", got, want)
	}
}

func TestRankMonotoneAlongEdges(t *testing.T) {
	platform := testPlatform(t, tenTaskExecTable(), 100)
	graph, err := NewTaskGraph(tenTaskEdges(), platform)
	if err != nil {
		t.Fatalf("NewTaskGraph: %v", err)
	}

	priority := Rank(graph, platform)

	for _, e := range tenTaskEdges() {
		u, v := e[0], e[1]
		if priority[u] <= priority[v] {
			t.Errorf("priority(%d)=%d should exceed priority(%d)=%d", u, priority[u], v, priority[v])
		}
	}
}

func TestPriorityOrderIsDeterministicAndTopological(t *testing.T) {
	platform := testPlatform(t, tenTaskExecTable(), 100)
	graph, err := NewTaskGraph(tenTaskEdges(), platform)
	if err != nil {
		t.Fatalf("NewTaskGraph: %v", err)
	}
	priority := Rank(graph, platform)

	o1 := PriorityOrder(graph, priority)
	o2 := PriorityOrder(graph, priority)
	for i := range o1 {
		if o1[i] != o2[i] {
			t.Fatalf("PriorityOrder not deterministic: %v vs %v", o1, o2)
		}
	}

	pos := make(map[int]int)
	for i, id := range o1 {
		pos[id] = i
	}
	for _, e := range tenTaskEdges() {
		if pos[e[0]] >= pos[e[1]] {
			t.Errorf("priority order violates edge %d->%d", e[0], e[1])
		}
	}
}

func TestPriorityOrderTiesBreakByAscendingID(t *testing.T) {
	execTable := map[int][3]int{1: {5, 5, 5}, 2: {5, 5, 5}, 3: {5, 5, 5}}
	platform := testPlatform(t, execTable, 100)
	graph, err := NewTaskGraph(nil, platform)
	if err != nil {
		t.Fatalf("NewTaskGraph: %v", err)
	}
	priority := Rank(graph, platform)
	order := PriorityOrder(graph, priority)

	want := []int{1, 2, 3}
	for i, id := range order {
		if id != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

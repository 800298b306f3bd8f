package scheduling

import "testing"

func TestNewTaskGraphTopoOrderRespectsPrecedence(t *testing.T) {
	platform := testPlatform(t, tenTaskExecTable(), 100)
	graph, err := NewTaskGraph(tenTaskEdges(), platform)
	if err != nil {
		t.Fatalf("NewTaskGraph: %v", err)
	}

	pos := make(map[int]int)
	for i, id := range graph.TopoOrder() {
		pos[id] = i
	}

	for _, e := range tenTaskEdges() {
		if pos[e[0]] >= pos[e[1]] {
			t.Errorf("edge %d->%d not respected in topo order", e[0], e[1])
		}
	}
}

func TestNewTaskGraphDeterministicOrder(t *testing.T) {
	platform := testPlatform(t, tenTaskExecTable(), 100)

	g1, err := NewTaskGraph(tenTaskEdges(), platform)
	if err != nil {
		t.Fatalf("NewTaskGraph: %v", err)
	}
	g2, err := NewTaskGraph(tenTaskEdges(), platform)
	if err != nil {
		t.Fatalf("NewTaskGraph: %v", err)
	}

	o1, o2 := g1.TopoOrder(), g2.TopoOrder()
	if len(o1) != len(o2) {
		t.Fatalf("length mismatch: %d vs %d", len(o1), len(o2))
	}
	for i := range o1 {
		if o1[i] != o2[i] {
			t.Fatalf("order diverged at %d: %d vs %d", i, o1[i], o2[i])
		}
	}
}

func TestNewTaskGraphRejectsCycle(t *testing.T) {
	execTable := map[int][3]int{1: {1, 1, 1}, 2: {1, 1, 1}, 3: {1, 1, 1}}
	platform := testPlatform(t, execTable, 100)

	edges := [][2]int{{1, 2}, {2, 3}, {3, 1}}
	if _, err := NewTaskGraph(edges, platform); err == nil {
		t.Fatal("expected cycle error, got nil")
	}
}

func TestNewTaskGraphRejectsSelfLoop(t *testing.T) {
	execTable := map[int][3]int{1: {1, 1, 1}}
	platform := testPlatform(t, execTable, 100)

	if _, err := NewTaskGraph([][2]int{{1, 1}}, platform); err == nil {
		t.Fatal("expected error for self-loop, got nil")
	}
}

func TestNewTaskGraphRejectsMissingExecTimeRow(t *testing.T) {
	execTable := map[int][3]int{1: {1, 1, 1}}
	platform := testPlatform(t, execTable, 100)

	if _, err := NewTaskGraph([][2]int{{1, 2}}, platform); err == nil {
		t.Fatal("expected error for edge referencing unknown task, got nil")
	}
}

func TestNewTaskGraphKeepsIsolatedTasks(t *testing.T) {
	execTable := map[int][3]int{1: {1, 1, 1}, 2: {2, 2, 2}}
	platform := testPlatform(t, execTable, 100)

	graph, err := NewTaskGraph(nil, platform)
	if err != nil {
		t.Fatalf("NewTaskGraph: %v", err)
	}

	nodes := graph.AllNodes()
	if len(nodes) != 2 {
		t.Fatalf("expected 2 isolated nodes, got %d: %v", len(nodes), nodes)
	}
}

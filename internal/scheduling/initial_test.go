package scheduling

import "testing"

func TestBuildInitialAssignsEveryTask(t *testing.T) {
	platform := testPlatform(t, tenTaskExecTable(), 100)
	graph, err := NewTaskGraph(tenTaskEdges(), platform)
	if err != nil {
		t.Fatalf("NewTaskGraph: %v", err)
	}
	priority := Rank(graph, platform)
	order := PriorityOrder(graph, priority)

	sched, assignment, err := BuildInitial(graph, platform, order)
	if err != nil {
		t.Fatalf("BuildInitial: %v", err)
	}

	for _, id := range graph.AllNodes() {
		if _, ok := sched.Get(id); !ok {
			t.Errorf("task %d missing from initial schedule", id)
		}
		if _, ok := assignment[id]; !ok {
			t.Errorf("task %d missing from initial assignment", id)
		}
	}
}

func TestBuildInitialSingleCoreTaskChoosesFastestCore(t *testing.T) {
	execTable := map[int][3]int{1: {9, 5, 2}}
	platform := testPlatform(t, execTable, 100)
	graph, err := NewTaskGraph(nil, platform)
	if err != nil {
		t.Fatalf("NewTaskGraph: %v", err)
	}
	priority := Rank(graph, platform)
	order := PriorityOrder(graph, priority)

	sched, assignment, err := BuildInitial(graph, platform, order)
	if err != nil {
		t.Fatalf("BuildInitial: %v", err)
	}

	loc := assignment[1]
	if loc.Kind != LocationCore || loc.Core != 2 {
		t.Fatalf("expected task to land on fastest core (2), got %v", loc)
	}
	ts, _ := sched.Get(1)
	if ts.FinishTime != 2 {
		t.Errorf("finish time = %d, want 2", ts.FinishTime)
	}
}

func TestBuildInitialSingleCloudTask(t *testing.T) {
	execTable := map[int][3]int{1: {100, 100, 100}}
	platform := testPlatform(t, execTable, 100)
	graph, err := NewTaskGraph(nil, platform)
	if err != nil {
		t.Fatalf("NewTaskGraph: %v", err)
	}
	priority := Rank(graph, platform)
	order := PriorityOrder(graph, priority)

	_, assignment, err := BuildInitial(graph, platform, order)
	if err != nil {
		t.Fatalf("BuildInitial: %v", err)
	}

	if assignment[1].Kind != LocationCloud {
		t.Fatalf("expected task offloaded to cloud, got %v", assignment[1])
	}
}

func TestBuildInitialDeterministic(t *testing.T) {
	platform := testPlatform(t, twentyTaskExecTable(), 200)
	graph, err := NewTaskGraph(twentyTaskEdges(), platform)
	if err != nil {
		t.Fatalf("NewTaskGraph: %v", err)
	}
	priority := Rank(graph, platform)
	order := PriorityOrder(graph, priority)

	_, a1, err := BuildInitial(graph, platform, order)
	if err != nil {
		t.Fatalf("BuildInitial: %v", err)
	}
	_, a2, err := BuildInitial(graph, platform, order)
	if err != nil {
		t.Fatalf("BuildInitial: %v", err)
	}

	for id, loc := range a1 {
		if a2[id] != loc {
			t.Fatalf("task %d diverged: %v vs %v", id, loc, a2[id])
		}
	}
}

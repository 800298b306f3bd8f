package scheduling

import "testing"

func TestMigrateNeverIncreasesEnergy(t *testing.T) {
	platform := testPlatform(t, tenTaskExecTable(), 60)
	graph, err := NewTaskGraph(tenTaskEdges(), platform)
	if err != nil {
		t.Fatalf("NewTaskGraph: %v", err)
	}
	priority := Rank(graph, platform)
	order := PriorityOrder(graph, priority)

	initial, _, err := BuildInitial(graph, platform, order)
	if err != nil {
		t.Fatalf("BuildInitial: %v", err)
	}
	initialEnergy := Energy(platform, initial).Total

	final, _, _, err := Migrate(graph, platform, initial, order, platform.Deadline())
	if err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	finalEnergy := Energy(platform, final).Total

	if finalEnergy > initialEnergy {
		t.Errorf("migration increased energy: %v -> %v", initialEnergy, finalEnergy)
	}
}

func TestMigrateNeverViolatesDeadline(t *testing.T) {
	deadline := 40
	platform := testPlatform(t, tenTaskExecTable(), deadline)
	graph, err := NewTaskGraph(tenTaskEdges(), platform)
	if err != nil {
		t.Fatalf("NewTaskGraph: %v", err)
	}
	priority := Rank(graph, platform)
	order := PriorityOrder(graph, priority)

	initial, _, err := BuildInitial(graph, platform, order)
	if err != nil {
		t.Fatalf("BuildInitial: %v", err)
	}
	if initial.Makespan() > deadline {
		t.Skip("initial schedule already exceeds the deadline in this fixture")
	}

	final, _, _, err := Migrate(graph, platform, initial, order, deadline)
	if err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if final.Makespan() > deadline {
		t.Errorf("migrated schedule makespan %d exceeds deadline %d", final.Makespan(), deadline)
	}
}

func TestMigrateRecordsADecisionPerTask(t *testing.T) {
	platform := testPlatform(t, tenTaskExecTable(), 60)
	graph, err := NewTaskGraph(tenTaskEdges(), platform)
	if err != nil {
		t.Fatalf("NewTaskGraph: %v", err)
	}
	priority := Rank(graph, platform)
	order := PriorityOrder(graph, priority)

	initial, _, err := BuildInitial(graph, platform, order)
	if err != nil {
		t.Fatalf("BuildInitial: %v", err)
	}

	_, _, decisions, err := Migrate(graph, platform, initial, order, platform.Deadline())
	if err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if len(decisions) != len(order) {
		t.Fatalf("got %d decisions, want %d (one per task)", len(decisions), len(order))
	}
}

func TestMigratePinnedByTightDeadlineRejectsWorseningMoves(t *testing.T) {
	execTable := map[int][3]int{1: {20, 20, 2}}
	platform := testPlatform(t, execTable, 2)
	graph, err := NewTaskGraph(nil, platform)
	if err != nil {
		t.Fatalf("NewTaskGraph: %v", err)
	}

	order := []int{1}
	initial := Assignment{1: CoreLocation(2)}
	sched, err := Build(graph, platform, initial, order)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	final, assignment, _, err := Migrate(graph, platform, sched, order, platform.Deadline())
	if err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if assignment[1].Kind != LocationCore || assignment[1].Core != 2 {
		t.Fatalf("deadline-pinned task migrated away from its only feasible core: %v", assignment[1])
	}
	if final.Makespan() > platform.Deadline() {
		t.Errorf("final makespan %d exceeds deadline %d", final.Makespan(), platform.Deadline())
	}
}

package scheduling

import "testing"

func TestRunProducesFeasibleSchedule(t *testing.T) {
	platform := testPlatform(t, tenTaskExecTable(), 60)
	result, err := Run(tenTaskEdges(), platform)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !result.DeadlineMet() {
		t.Errorf("final makespan %d exceeds deadline %d", result.FinalSchedule.Makespan(), result.Deadline())
	}
	if result.FinalEnergy.Total > result.InitialEnergy.Total {
		t.Errorf("final energy %v exceeds initial energy %v", result.FinalEnergy.Total, result.InitialEnergy.Total)
	}
}

func TestRunDeterministic(t *testing.T) {
	platform := testPlatform(t, twentyTaskExecTable(), 39)

	r1, err := Run(twentyTaskEdges(), platform)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	r2, err := Run(twentyTaskEdges(), platform)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if r1.FinalSchedule.Makespan() != r2.FinalSchedule.Makespan() {
		t.Fatalf("makespan diverged across runs: %d vs %d", r1.FinalSchedule.Makespan(), r2.FinalSchedule.Makespan())
	}
	if r1.FinalEnergy.Total != r2.FinalEnergy.Total {
		t.Fatalf("energy diverged across runs: %v vs %v", r1.FinalEnergy.Total, r2.FinalEnergy.Total)
	}
	for id, loc := range r1.FinalAssignment {
		if r2.FinalAssignment[id] != loc {
			t.Fatalf("assignment for task %d diverged: %v vs %v", id, loc, r2.FinalAssignment[id])
		}
	}
}

func TestRunStillMigratesOnUnreachableDeadline(t *testing.T) {
	platform := testPlatform(t, tenTaskExecTable(), 1)
	result, err := Run(tenTaskEdges(), platform)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.DeadlineMet() {
		t.Fatalf("expected deadline 1 to be unreachable, final makespan %d", result.FinalSchedule.Makespan())
	}
	if len(result.Decisions) != len(result.Order) {
		t.Fatalf("expected one decision per task even on infeasible input, got %d for %d tasks", len(result.Decisions), len(result.Order))
	}
}

package scheduling

// RunResult is the complete output of one scheduling run: the graph's
// priority order, the greedy initial schedule and its energy, the
// migration-optimized final schedule and its energy, and the per-task
// decisions the optimizer made along the way.
type RunResult struct {
	Graph *TaskGraph

	Priority      map[int]int
	Order         []int
	InitialSchedule *Schedule
	InitialEnergy   EnergyBreakdown
	InitialAssignment Assignment

	FinalSchedule   *Schedule
	FinalEnergy     EnergyBreakdown
	FinalAssignment Assignment

	Decisions []Decision

	deadline int
}

func (r *RunResult) DeadlineMet() bool {
	return r.FinalSchedule.Makespan() <= r.Deadline()
}

func (r *RunResult) Deadline() int {
	return r.deadline
}

// Run executes the full two-phase scheduling pipeline (C2-C7) for the
// given task edges and platform: priority ranking, greedy initial
// placement, then one pass of energy-minimizing migration. It is pure —
// no I/O, no blocking — and deterministic for a given edges/platform pair.
// Migration always runs, even when the initial schedule already exceeds
// the deadline; callers check RunResult.DeadlineMet rather than relying
// on Run to fail for an unreachable deadline.
func Run(edges [][2]int, platform *Platform) (*RunResult, error) {
	graph, err := NewTaskGraph(edges, platform)
	if err != nil {
		return nil, err
	}

	priority := Rank(graph, platform)
	order := PriorityOrder(graph, priority)

	initialSched, initialAssignment, err := BuildInitial(graph, platform, order)
	if err != nil {
		return nil, err
	}
	initialEnergy := Energy(platform, initialSched)

	finalSched, finalAssignment, decisions, err := Migrate(graph, platform, initialSched, order, platform.Deadline())
	if err != nil {
		return nil, err
	}
	finalEnergy := Energy(platform, finalSched)

	return &RunResult{
		Graph:             graph,
		Priority:          priority,
		Order:             order,
		InitialSchedule:   initialSched,
		InitialEnergy:     initialEnergy,
		InitialAssignment: initialAssignment,
		FinalSchedule:     finalSched,
		FinalEnergy:       finalEnergy,
		FinalAssignment:   finalAssignment,
		Decisions:         decisions,
		deadline:          platform.Deadline(),
	}, nil
}

package scheduling

// BuildInitial greedily constructs the initial schedule: it walks
// tasks in priority order (a valid topological order, since every task's
// priority exceeds each successor's) and, for each one, places it on
// whichever of the three cores or the cloud finishes it earliest given the
// resource cursors committed by already-placed tasks. Ties are broken by
// trying core 0, core 1, core 2, then cloud in that fixed order and keeping
// the first candidate that is not strictly beaten by a later one. The
// deadline is not consulted, so the result may exceed it.
func BuildInitial(graph *TaskGraph, platform *Platform, priorityOrder []int) (*Schedule, Assignment, error) {
	var coreCursor [3]int
	wirelessCursor := 0

	tasks := make(map[int]*TaskSchedule, len(priorityOrder))
	assignment := make(Assignment, len(priorityOrder))

	for _, id := range priorityOrder {
		ready := 0
		for _, p := range graph.Predecessors(id) {
			pred, ok := tasks[p]
			if !ok {
				return nil, nil, &ScheduleError{Err: ErrInvalidAssignment, TaskID: p}
			}
			if avail := pred.EffectiveAvailable(); avail > ready {
				ready = avail
			}
		}

		best, err := bestInitialPlacement(platform, id, ready, coreCursor, wirelessCursor)
		if err != nil {
			return nil, nil, err
		}

		tasks[id] = best
		assignment[id] = best.Location

		switch best.Location.Kind {
		case LocationCore:
			coreCursor[best.Location.Core] = best.FinishTime
		case LocationCloud:
			wirelessCursor = best.CloudStart
		}
	}

	sched := &Schedule{Tasks: tasks, order: append([]int(nil), priorityOrder...)}
	checkInvariants(graph, sched)
	return sched, assignment, nil
}

// bestInitialPlacement evaluates all three cores and the cloud for task id
// at the given ready time and resource cursors, returning the candidate
// with the smallest finish time. Core 0 is tried first, then core 1, core
// 2, then cloud; a later candidate only replaces the current best on a
// strict improvement, so earlier candidates win ties.
func bestInitialPlacement(platform *Platform, id, ready int, coreCursor [3]int, wirelessCursor int) (*TaskSchedule, error) {
	var best *TaskSchedule

	for core := 0; core < 3; core++ {
		exec, err := platform.ExecTime(id, core)
		if err != nil {
			return nil, err
		}
		start := ready
		if coreCursor[core] > start {
			start = coreCursor[core]
		}
		candidate := &TaskSchedule{
			TaskID:     id,
			Location:   CoreLocation(core),
			ReadyTime:  ready,
			StartTime:  start,
			FinishTime: start + exec,
		}
		if best == nil || candidate.FinishTime < best.FinishTime {
			best = candidate
		}
	}

	sendStart := ready
	if wirelessCursor > sendStart {
		sendStart = wirelessCursor
	}
	sendFinish := sendStart + platform.SendTime()
	cloudStart := sendFinish
	cloudFinish := cloudStart + platform.CloudTime()
	receiveFinish := cloudFinish + platform.ReceiveTime()

	cloudCandidate := &TaskSchedule{
		TaskID:        id,
		Location:      CloudLocation(),
		ReadyTime:     ready,
		StartTime:     sendStart,
		SendStart:     sendStart,
		CloudStart:    cloudStart,
		CloudFinish:   cloudFinish,
		ReceiveFinish: receiveFinish,
		FinishTime:    receiveFinish,
	}
	if cloudCandidate.FinishTime < best.FinishTime {
		best = cloudCandidate
	}

	return best, nil
}

package scheduling

// Build computes a full Schedule for assignment, processing tasks in the
// given order. order must be a valid topological order for the tasks it
// contains (the initial scheduler and migration optimizer both pass a
// priority order, which satisfies this); Build does not re-derive one.
//
// Four resource cursors drive the timeline: one next-free time per core,
// and a single next-free time for the shared wireless uplink. A cloud
// task's downstream successors become ready at CloudStart, the moment its
// upload reaches the cloud, not at ReceiveFinish — see the design notes for
// why this matters for overlap between concurrent cloud tasks.
func Build(graph *TaskGraph, platform *Platform, assignment Assignment, order []int) (*Schedule, error) {
	var coreCursor [3]int
	wirelessCursor := 0

	tasks := make(map[int]*TaskSchedule, len(order))

	for _, id := range order {
		loc, ok := assignment[id]
		if !ok {
			return nil, &ScheduleError{Err: ErrInvalidAssignment, TaskID: id}
		}

		ready := 0
		for _, p := range graph.Predecessors(id) {
			pred, ok := tasks[p]
			if !ok {
				return nil, &ScheduleError{Err: ErrInvalidAssignment, TaskID: p}
			}
			if avail := pred.EffectiveAvailable(); avail > ready {
				ready = avail
			}
		}

		ts := &TaskSchedule{TaskID: id, Location: loc, ReadyTime: ready}

		switch loc.Kind {
		case LocationCore:
			exec, err := platform.ExecTime(id, loc.Core)
			if err != nil {
				return nil, err
			}
			start := ready
			if coreCursor[loc.Core] > start {
				start = coreCursor[loc.Core]
			}
			ts.StartTime = start
			ts.FinishTime = start + exec
			coreCursor[loc.Core] = ts.FinishTime

		case LocationCloud:
			sendStart := ready
			if wirelessCursor > sendStart {
				sendStart = wirelessCursor
			}
			ts.SendStart = sendStart
			ts.StartTime = sendStart
			sendFinish := sendStart + platform.SendTime()
			wirelessCursor = sendFinish

			ts.CloudStart = sendFinish
			ts.CloudFinish = ts.CloudStart + platform.CloudTime()
			ts.ReceiveFinish = ts.CloudFinish + platform.ReceiveTime()
			ts.FinishTime = ts.ReceiveFinish
		}

		tasks[id] = ts
	}

	sched := &Schedule{Tasks: tasks, order: append([]int(nil), order...)}
	checkInvariants(graph, sched)
	return sched, nil
}

// checkInvariants panics with an InvariantViolation if the schedule just
// built breaks precedence, core serialization, or wireless serialization.
// These are implementation-bug guards, not feasibility checks: a correct
// Build call should never trip them.
func checkInvariants(graph *TaskGraph, sched *Schedule) {
	for id, ts := range sched.Tasks {
		for _, p := range graph.Predecessors(id) {
			pred, ok := sched.Tasks[p]
			if !ok {
				continue
			}
			if ts.StartTime < pred.EffectiveAvailable() {
				panic(&InvariantViolation{Detail: "task start precedes predecessor availability"})
			}
		}
	}

	var coreIntervals [3][][2]int
	var wirelessIntervals [][2]int
	for _, ts := range sched.Tasks {
		switch ts.Location.Kind {
		case LocationCore:
			coreIntervals[ts.Location.Core] = append(coreIntervals[ts.Location.Core], [2]int{ts.StartTime, ts.FinishTime})
		case LocationCloud:
			wirelessIntervals = append(wirelessIntervals, [2]int{ts.SendStart, ts.CloudStart})
		}
	}

	for _, ivs := range coreIntervals {
		if overlaps(ivs) {
			panic(&InvariantViolation{Detail: "overlapping core execution intervals"})
		}
	}
	if overlaps(wirelessIntervals) {
		panic(&InvariantViolation{Detail: "overlapping wireless upload intervals"})
	}
}

func overlaps(intervals [][2]int) bool {
	for i := 0; i < len(intervals); i++ {
		for j := i + 1; j < len(intervals); j++ {
			a, b := intervals[i], intervals[j]
			if a[0] < b[1] && b[0] < a[1] {
				return true
			}
		}
	}
	return false
}

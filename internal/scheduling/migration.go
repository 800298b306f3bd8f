package scheduling

import "sort"

// Migrate runs a single pass of the energy-minimizing migration optimizer
// over the tasks in order, visiting them in ascending task id. order itself
// (typically the priority order used to build sched) is the topological
// order every trial rebuild uses. For each task it tries every other
// location, rebuilding the full timeline from scratch for each trial rather
// than reusing stale resource cursors, and keeps the move only if it
// strictly reduces total energy while keeping the makespan at or under
// deadline; among equal-energy improvements the lower makespan wins. This
// is deliberately a single pass, not a fixed-point loop to convergence; see
// the design notes for why.
//
// Because every trial rebuilds the complete schedule, Migrate never
// inherits the reference implementation's cursor-reset bug where a later
// core candidate is measured against a just-cleared cursor instead of the
// cursor left behind by earlier tasks.
func Migrate(graph *TaskGraph, platform *Platform, sched *Schedule, order []int, deadline int) (*Schedule, Assignment, []Decision, error) {
	current := sched.ToAssignment()
	decisions := make([]Decision, 0, len(order))

	ids := append([]int(nil), order...)
	sort.Ints(ids)

	for _, id := range ids {
		currentSched, err := Build(graph, platform, current, order)
		if err != nil {
			return nil, nil, nil, err
		}
		currentEnergy := Energy(platform, currentSched).Total
		currentLoc := current[id]

		bestLoc := currentLoc
		bestEnergy := currentEnergy
		bestMakespan := 0
		improved := false

		for _, cand := range candidateLocations(currentLoc) {
			trial := CopyAssignment(current)
			trial[id] = cand

			trialSched, err := Build(graph, platform, trial, order)
			if err != nil {
				return nil, nil, nil, err
			}
			if trialSched.Makespan() > deadline {
				continue
			}

			trialEnergy := Energy(platform, trialSched).Total
			trialMakespan := trialSched.Makespan()
			if trialEnergy < bestEnergy || (improved && trialEnergy == bestEnergy && trialMakespan < bestMakespan) {
				bestEnergy = trialEnergy
				bestMakespan = trialMakespan
				bestLoc = cand
				improved = true
			}
		}

		decisions = append(decisions, Decision{
			TaskID:       id,
			Before:       currentLoc,
			After:        bestLoc,
			Improved:     improved,
			BeforeEnergy: currentEnergy,
			AfterEnergy:  bestEnergy,
		})

		if improved {
			current[id] = bestLoc
		}
	}

	final, err := Build(graph, platform, current, order)
	if err != nil {
		return nil, nil, nil, err
	}
	return final, current, decisions, nil
}

// candidateLocations returns core 0, core 1, core 2 and the cloud, in that
// fixed order, skipping whichever one equals current. The fixed order
// combined with the strict-improvement checks in Migrate means the first
// candidate in this list wins any tie in both energy and makespan.
func candidateLocations(current Location) []Location {
	all := []Location{CoreLocation(0), CoreLocation(1), CoreLocation(2), CloudLocation()}
	out := make([]Location, 0, 3)
	for _, l := range all {
		if l == current {
			continue
		}
		out = append(out, l)
	}
	return out
}

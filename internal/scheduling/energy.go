package scheduling

// Energy computes the total energy consumed by a schedule. Core tasks
// charge CorePower[k] for the duration of their execution interval; cloud
// tasks charge RFPower for both the send and receive legs of the radio,
// not just the send leg — see the design notes for the discrepancy this
// resolves between two copies of the reference source.
func Energy(platform *Platform, sched *Schedule) EnergyBreakdown {
	var b EnergyBreakdown

	for _, ts := range sched.Tasks {
		switch ts.Location.Kind {
		case LocationCore:
			dur := ts.FinishTime - ts.StartTime
			e := platform.CorePower(ts.Location.Core) * float64(dur)
			b.PerCore[ts.Location.Core] += e
			b.Total += e
		case LocationCloud:
			rfTime := platform.SendTime() + platform.ReceiveTime()
			e := platform.RFPower() * float64(rfTime)
			b.Cloud += e
			b.Total += e
		}
	}

	return b
}

package scheduling

import "testing"

func TestEnergyCoreTaskChargesCorePower(t *testing.T) {
	execTable := map[int][3]int{1: {10, 10, 10}}
	platform := testPlatform(t, execTable, 100)
	graph, err := NewTaskGraph(nil, platform)
	if err != nil {
		t.Fatalf("NewTaskGraph: %v", err)
	}

	assignment := Assignment{1: CoreLocation(1)}
	sched, err := Build(graph, platform, assignment, []int{1})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	breakdown := Energy(platform, sched)
	want := platform.CorePower(1) * 10
	if breakdown.PerCore[1] != want {
		t.Errorf("PerCore[1] = %v, want %v", breakdown.PerCore[1], want)
	}
	if breakdown.Total != want {
		t.Errorf("Total = %v, want %v", breakdown.Total, want)
	}
}

func TestEnergyCloudTaskChargesBothSendAndReceive(t *testing.T) {
	execTable := map[int][3]int{1: {10, 10, 10}}
	platform := testPlatform(t, execTable, 100)
	graph, err := NewTaskGraph(nil, platform)
	if err != nil {
		t.Fatalf("NewTaskGraph: %v", err)
	}

	assignment := Assignment{1: CloudLocation()}
	sched, err := Build(graph, platform, assignment, []int{1})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	breakdown := Energy(platform, sched)
	want := platform.RFPower() * float64(platform.SendTime()+platform.ReceiveTime())
	if breakdown.Cloud != want {
		t.Errorf("Cloud energy = %v, want %v (both legs)", breakdown.Cloud, want)
	}

	sendOnly := platform.RFPower() * float64(platform.SendTime())
	if breakdown.Cloud == sendOnly {
		t.Errorf("Cloud energy only charged the send leg: %v", breakdown.Cloud)
	}
}

func TestEnergyTotalIsSumOfComponents(t *testing.T) {
	_, platform, sched := buildTenTaskInitial(t, 100)

	breakdown := Energy(platform, sched)
	sum := breakdown.Cloud
	for _, e := range breakdown.PerCore {
		sum += e
	}
	if sum != breakdown.Total {
		t.Errorf("components sum to %v, Total is %v", sum, breakdown.Total)
	}
}

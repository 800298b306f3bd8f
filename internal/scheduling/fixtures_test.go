package scheduling

// tenTaskExecTable and tenTaskEdges reproduce the canonical 10-task MCC
// example graph: three heterogeneous cores plus cloud offloading, used
// throughout the reference literature for walking through priority
// computation and the two scheduling phases by hand.
func tenTaskExecTable() map[int][3]int {
	return map[int][3]int{
		1:  {9, 7, 5},
		2:  {8, 6, 5},
		3:  {6, 5, 4},
		4:  {7, 5, 3},
		5:  {5, 4, 2},
		6:  {7, 6, 4},
		7:  {8, 5, 3},
		8:  {6, 4, 2},
		9:  {5, 3, 2},
		10: {7, 4, 2},
	}
}

func tenTaskEdges() [][2]int {
	return [][2]int{
		{1, 2}, {1, 3}, {1, 4}, {1, 5}, {1, 6},
		{2, 7}, {2, 8},
		{3, 7},
		{4, 7}, {4, 9},
		{5, 8},
		{6, 10},
		{7, 10},
		{8, 10},
		{9, 10},
	}
}

// twentyTaskExecTable and twentyTaskEdges reproduce the canonical 20-task
// MCC example graph. Tasks 13 and 14 are the true roots, feeding task 1
// alongside its original 10-task-graph role as an internal node.
func twentyTaskExecTable() map[int][3]int {
	return map[int][3]int{
		1:  {9, 7, 5}, 2: {8, 6, 5}, 3: {6, 5, 4}, 4: {7, 5, 3}, 5: {5, 4, 2},
		6:  {7, 6, 4}, 7: {8, 5, 3}, 8: {6, 4, 2}, 9: {5, 3, 2}, 10: {7, 4, 2},
		11: {8, 3, 2}, 12: {5, 3, 2}, 13: {6, 5, 4}, 14: {4, 4, 3}, 15: {6, 6, 5},
		16: {6, 6, 5}, 17: {4, 3, 2}, 18: {4, 3, 2}, 19: {5, 4, 2}, 20: {8, 4, 2},
	}
}

func twentyTaskEdges() [][2]int {
	return [][2]int{
		{1, 2}, {1, 3}, {1, 4}, {1, 5}, {1, 6},
		{2, 8}, {2, 9},
		{3, 7},
		{4, 8}, {4, 9},
		{5, 9},
		{6, 8},
		{7, 10},
		{8, 10},
		{9, 10},
		{14, 1}, {13, 1},
		{14, 15},
		{15, 12}, {15, 8},
		{6, 12},
		{3, 11},
		{12, 20}, {12, 16},
		{11, 17},
		{7, 18},
		{20, 16},
		{9, 19},
	}
}

func testPlatform(t interface{ Fatalf(string, ...interface{}) }, execTable map[int][3]int, deadline int) *Platform {
	p, err := NewPlatform(
		execTable,
		[3]float64{1, 2, 4},
		0.5,
		3, 1, 1,
		deadline,
	)
	if err != nil {
		t.Fatalf("testPlatform: %v", err)
	}
	return p
}

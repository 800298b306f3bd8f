package scheduling

// Platform holds the per-core execution-time table and the power/transfer
// constants that drive the energy and timeline models. It is read-only once
// built: callers construct a new Platform rather than mutating one in place.
type Platform struct {
	execTable   map[int][3]int
	corePower   [3]float64
	rfPower     float64
	sendTime    int
	cloudTime   int
	receiveTime int
	deadline    int
}

// NewPlatform validates the supplied constants and returns an immutable
// Platform. Negative power or transfer-duration values are rejected since
// they have no physical meaning for this model.
func NewPlatform(execTable map[int][3]int, corePower [3]float64, rfPower float64, sendTime, cloudTime, receiveTime, deadline int) (*Platform, error) {
	for k, p := range corePower {
		if p < 0 {
			return nil, &GraphError{Err: ErrInvalidCore, TaskID: k}
		}
	}
	if rfPower < 0 || sendTime < 0 || cloudTime < 0 || receiveTime < 0 {
		return nil, &ScheduleError{Err: ErrInvalidAssignment}
	}

	table := make(map[int][3]int, len(execTable))
	for id, e := range execTable {
		table[id] = e
	}

	return &Platform{
		execTable:   table,
		corePower:   corePower,
		rfPower:     rfPower,
		sendTime:    sendTime,
		cloudTime:   cloudTime,
		receiveTime: receiveTime,
		deadline:    deadline,
	}, nil
}

// ExecTime returns task's execution time on core (0..2). It fails with
// ErrInvalidCore for an out-of-range core and ErrUnknownTask if task has no
// row in the platform's execution-time table.
func (p *Platform) ExecTime(task, core int) (int, error) {
	if core < 0 || core > 2 {
		return 0, &GraphError{Err: ErrInvalidCore, TaskID: task}
	}
	row, ok := p.execTable[task]
	if !ok {
		return 0, &GraphError{Err: ErrUnknownTask, TaskID: task}
	}
	return row[core], nil
}

// MaxExecTime returns the largest of task's three per-core execution times,
// used by the priority ranking (C3). Unknown tasks report 0.
func (p *Platform) MaxExecTime(task int) int {
	row, ok := p.execTable[task]
	if !ok {
		return 0
	}
	max := row[0]
	if row[1] > max {
		max = row[1]
	}
	if row[2] > max {
		max = row[2]
	}
	return max
}

func (p *Platform) CorePower(core int) float64 {
	if core < 0 || core > 2 {
		return 0
	}
	return p.corePower[core]
}

func (p *Platform) RFPower() float64   { return p.rfPower }
func (p *Platform) SendTime() int      { return p.sendTime }
func (p *Platform) CloudTime() int     { return p.cloudTime }
func (p *Platform) ReceiveTime() int   { return p.receiveTime }
func (p *Platform) Deadline() int      { return p.deadline }

// HasTask reports whether the platform's execution-time table has a row
// for task. Used by graph construction to validate edge endpoints.
func (p *Platform) HasTask(task int) bool {
	_, ok := p.execTable[task]
	return ok
}

// AllTaskIDs returns every task id the platform has an execution-time row
// for, in no particular order. Used by graph construction to seed nodes
// that have no edges at all.
func (p *Platform) AllTaskIDs() []int {
	ids := make([]int, 0, len(p.execTable))
	for id := range p.execTable {
		ids = append(ids, id)
	}
	return ids
}

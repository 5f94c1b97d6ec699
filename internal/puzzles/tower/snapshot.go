package tower

// Snapshot captures the simulator counters for determinism checks.
type Snapshot struct {
	Steps     uint64
	Settled   int
	Simulated int
	Height    int
	Columns   [Width]int
	NextShape int
	NextJet   int
	Cycle     *Cycle
}

// Snapshot returns a value copy of the current state.
func (s *Simulator) Snapshot() Snapshot {
	snap := Snapshot{
		Steps:     s.steps,
		Settled:   s.settled,
		Simulated: s.simulated,
		Height:    s.Height(),
		Columns:   s.tower.heights,
		NextShape: s.nextShape,
		NextJet:   s.nextJet,
	}
	if s.cycle != nil {
		c := *s.cycle
		snap.Cycle = &c
	}
	return snap
}

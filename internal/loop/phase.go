package loop

// Phase is the global game phase.
type Phase uint8

const (
	PhasePlay Phase = iota
	PhaseFinalWave
	PhaseRescue
	PhaseRide
	PhaseVictory
	PhaseGameOver

	phaseCount
)

var phaseNames = [phaseCount]string{
	PhasePlay:      "PLAY",
	PhaseFinalWave: "FINAL_WAVE",
	PhaseRescue:    "RESCUE",
	PhaseRide:      "RIDE",
	PhaseVictory:   "VICTORY",
	PhaseGameOver:  "GAME_OVER",
}

func (p Phase) String() string {
	if p >= phaseCount {
		return "UNKNOWN"
	}
	return phaseNames[p]
}

// gates lists which pipeline stages run during a phase.
type gates struct {
	Input       bool // Player movement and attacks
	NormalSpawn bool // Accumulator-driven spawning
	FinalSpawn  bool // Scripted final-wave spawning
	Enemies     bool // Enemy AI, bolt firing and fire cooldowns
	Projectiles bool
	Combat      bool
	StageTimer  bool
}

var phaseGates = [phaseCount]gates{
	PhasePlay: {
		Input:       true,
		NormalSpawn: true,
		Enemies:     true,
		Projectiles: true,
		Combat:      true,
		StageTimer:  true,
	},
	PhaseFinalWave: {
		Input:       true,
		FinalSpawn:  true,
		Enemies:     true,
		Projectiles: true,
		Combat:      true,
	},
	PhaseRescue:   {},
	PhaseRide:     {},
	PhaseVictory:  {},
	PhaseGameOver: {},
}

func (p Phase) gates() gates {
	if p >= phaseCount {
		return gates{}
	}
	return phaseGates[p]
}

// Interactive reports whether the phase accepts player input.
func (p Phase) Interactive() bool {
	return p.gates().Input
}

// transitions lists the legal predecessors of each phase.
// PLAY has none: it is only reached through a session reset.
var transitions = [phaseCount][]Phase{
	PhasePlay:      nil,
	PhaseFinalWave: {PhasePlay},
	PhaseRescue:    {PhaseFinalWave},
	PhaseRide:      {PhaseRescue},
	PhaseVictory:   {PhaseRide},
	PhaseGameOver:  {PhasePlay, PhaseFinalWave},
}

func canTransition(from, to Phase) bool {
	if to >= phaseCount {
		return false
	}
	for _, p := range transitions[to] {
		if p == from {
			return true
		}
	}
	return false
}

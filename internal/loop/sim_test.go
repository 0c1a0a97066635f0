package loop

import (
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/unicorns/internal/loop/config"
	"github.com/tomz197/unicorns/internal/object"
)

const frame = 1.0 / 60

func newTestSim(t *testing.T, stage time.Duration) *Sim {
	t.Helper()
	return New(Options{
		StageLength: stage,
		Seed:        12345,
		Logger:      log.New(io.Discard),
	})
}

// addEnemy places an enemy of the given kind at (x, y).
func addEnemy(s *Sim, kind object.EnemyKind, final bool, x, y float64) *object.Enemy {
	var e *object.Enemy
	if kind == object.Special {
		e = object.NewSpecial(s.reg.NextID(), x, y, final, s.rng)
	} else {
		e = object.NewNormal(s.reg.NextID(), x, y, s.rng)
	}
	s.reg.AddEnemy(e)
	return e
}

func countEvents(evs []Event, kind EventKind) int {
	n := 0
	for _, ev := range evs {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func TestNewStartsInPlay(t *testing.T) {
	s := newTestSim(t, 0)
	p := s.Player()

	assert.Equal(t, PhasePlay, s.Phase())
	assert.Equal(t, config.DefaultStageLength.Seconds(), s.StageRemaining())
	assert.Equal(t, config.HPMax, p.HP)
	assert.Equal(t, config.InitialLives, p.Lives)
	assert.Empty(t, s.Registry().Enemies)
	assert.Nil(t, s.Rescuer())
}

func TestRandomRunKeepsBounds(t *testing.T) {
	s := newTestSim(t, 3*time.Second)
	rng := rand.New(rand.NewSource(12345))

	session := s.Sessions()
	finals := map[int]bool{}

	for i := 0; i < 20000; i++ {
		in := Intent{
			DX:     rng.Float64()*2.4 - 1.2,
			DY:     rng.Float64()*2.4 - 1.2,
			Attack: rng.Intn(3) == 0,
			Sprint: rng.Intn(4) == 0,
		}
		s.Step(frame, in)
		s.DrainEvents()

		p := s.Player()
		if p.HP < 0 || p.HP > config.HPMax {
			t.Fatalf("tick %d: hp %d out of range", i, p.HP)
		}
		if p.Lives < 0 || p.Lives > config.InitialLives {
			t.Fatalf("tick %d: lives %d out of range", i, p.Lives)
		}
		if s.Phase() == PhasePlay && s.reg.CountSpecials() > config.SpecialCap {
			t.Fatalf("tick %d: %d specials during play", i, s.reg.CountSpecials())
		}

		if s.Sessions() != session {
			session = s.Sessions()
			finals = map[int]bool{}
		}
		for _, e := range s.reg.Enemies {
			if e.IsFinal() {
				finals[e.ID] = true
			}
		}
		if len(finals) > config.FinalWaveCount {
			t.Fatalf("tick %d: %d final enemies in one session", i, len(finals))
		}
	}
}

func TestKillWhilePoweredDoesNotAdvanceMega(t *testing.T) {
	tests := []struct {
		name     string
		ray      float64
		mega     float64
		wantKill int
	}{
		{"unpowered", 0, 0, 1},
		{"ray active", 5, 0, 0},
		{"mega active", 0, 5, 0},
		{"both active", 5, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSim(t, 0)
			p := s.Player()
			p.RayRemaining = tt.ray
			p.MegaRemaining = tt.mega

			s.killEnemy(addEnemy(s, object.Normal, false, 100, 200))

			assert.Equal(t, tt.wantKill, p.KillsTowardMega)
			assert.Equal(t, config.ScoreNormal, p.Score, "score is awarded regardless of power")
		})
	}
}

func TestSpecialKillWhileMegaGrantsNoRay(t *testing.T) {
	s := newTestSim(t, 0)
	p := s.Player()
	p.MegaRemaining = 3

	s.killEnemy(addEnemy(s, object.Special, false, 100, 200))

	assert.Zero(t, p.RayRemaining)
	assert.Equal(t, config.ScoreSpecial, p.Score)
}

func TestMegaAfterThresholdKills(t *testing.T) {
	s := newTestSim(t, 0)
	p := s.Player()

	for i := 0; i < config.MegaKillThreshold-1; i++ {
		s.killEnemy(addEnemy(s, object.Normal, false, 100, 200))
	}
	assert.False(t, p.IsMega())
	assert.Equal(t, config.MegaKillThreshold-1, p.KillsTowardMega)

	s.killEnemy(addEnemy(s, object.Normal, false, 100, 200))
	assert.Equal(t, config.MegaDuration, p.MegaRemaining)
	assert.Zero(t, p.KillsTowardMega)
	assert.Equal(t, 1, countEvents(s.DrainEvents(), EventMegaGained))
}

func TestSpecialKillGrantsRay(t *testing.T) {
	s := newTestSim(t, 0)
	p := s.Player()

	e := addEnemy(s, object.Special, false, 100, 200)
	s.killEnemy(e)

	assert.Equal(t, config.RayDuration, p.RayRemaining)
	assert.Equal(t, config.ScoreSpecial, p.Score)
	assert.Equal(t, 1, p.KillsTowardMega)
	assert.True(t, e.Dead())

	s.reg.CompactEnemies()
	assert.Empty(t, s.reg.Enemies)
}

func TestKillEnemyIsIdempotent(t *testing.T) {
	s := newTestSim(t, 0)
	p := s.Player()
	e := addEnemy(s, object.Normal, false, 100, 200)

	s.killEnemy(e)
	s.killEnemy(e)

	assert.Equal(t, config.ScoreNormal, p.Score)
	assert.Equal(t, 1, p.KillsTowardMega)
	assert.Equal(t, 1, countEvents(s.DrainEvents(), EventKill))
}

func TestLastFinalKillEntersRescueOnce(t *testing.T) {
	s := newTestSim(t, 0)
	require.True(t, s.enterPhase(PhaseFinalWave))

	s.stepFinalWave()
	s.finalTimer = 0
	s.stepFinalWave()
	require.Equal(t, config.FinalWaveCount, s.FinalSpawned())
	require.Len(t, s.reg.Enemies, 2)

	first, last := s.reg.Enemies[0], s.reg.Enemies[1]
	assert.Equal(t, -config.SpawnEdgeOffset, first.X)
	assert.Equal(t, config.FieldWidth+config.SpawnEdgeOffset, last.X)
	s.DrainEvents()

	s.killEnemy(first)
	assert.Equal(t, PhaseFinalWave, s.Phase())

	s.killEnemy(last)
	s.killEnemy(last)
	s.checkFinalWaveCleared()

	assert.Equal(t, PhaseRescue, s.Phase())
	evs := s.DrainEvents()
	entered := 0
	for _, ev := range evs {
		if ev.Kind == EventPhaseEnter && ev.Phase == PhaseRescue {
			entered++
		}
	}
	assert.Equal(t, 1, entered)
	assert.Empty(t, s.reg.Enemies, "rescue clears the field")
	assert.NotNil(t, s.Rescuer())
}

func TestFinalWaveNeedsBothFinalsSpawned(t *testing.T) {
	s := newTestSim(t, 0)
	require.True(t, s.enterPhase(PhaseFinalWave))

	s.stepFinalWave()
	s.killEnemy(s.reg.Enemies[0])

	assert.Equal(t, PhaseFinalWave, s.Phase(), "second final has not appeared yet")
}

func TestInvulnerabilityBlocksSecondContact(t *testing.T) {
	s := newTestSim(t, 0)
	p := s.Player()
	addEnemy(s, object.Normal, false, p.X+10, p.Y)

	s.resolveContact()
	require.Equal(t, config.HPMax-config.DamageContact, p.HP)
	assert.Equal(t, config.HitInvuln, p.Invuln)

	s.reg.Enemies[0].X = p.X
	s.Step(frame, Intent{})
	s.resolveContact()
	assert.Equal(t, config.HPMax-config.DamageContact, p.HP)
}

func TestContactPushesPlayerAway(t *testing.T) {
	s := newTestSim(t, 0)
	p := s.Player()
	x := p.X
	addEnemy(s, object.Normal, false, p.X+10, p.Y)

	s.resolveContact()
	assert.Equal(t, x-config.ContactPushback, p.X)
}

func TestDashingPlayerTakesNoContactDamage(t *testing.T) {
	s := newTestSim(t, 0)
	p := s.Player()
	p.DashRemaining = config.DashActive
	addEnemy(s, object.Normal, false, p.X, p.Y)

	s.resolveContact()
	assert.Equal(t, config.HPMax, p.HP)
}

func TestLifeLossScenario(t *testing.T) {
	s := newTestSim(t, 0)
	p := s.Player()
	p.HP = 20
	p.RayRemaining = 4
	p.MegaRemaining = 4
	addEnemy(s, object.Normal, false, p.X+5, p.Y)

	s.resolveContact()

	assert.Equal(t, config.HPMax, p.HP)
	assert.Equal(t, 2, p.Lives)
	assert.Greater(t, p.Invuln, 0.0)
	assert.Equal(t, config.RespawnInvuln, p.Invuln)
	assert.False(t, p.Powered(), "powers do not survive a life loss")

	evs := s.DrainEvents()
	assert.Equal(t, 1, countEvents(evs, EventLifeLost))
	assert.Equal(t, 1, countEvents(evs, EventPowerLost))
}

func TestLastLifeEndsInGameOverThenReset(t *testing.T) {
	s := newTestSim(t, 0)
	p := s.Player()
	p.Lives = 1
	p.HP = 10
	p.Score = 1200
	addEnemy(s, object.Normal, false, p.X, p.Y)

	s.resolveContact()
	require.Equal(t, PhaseGameOver, s.Phase())
	assert.Zero(t, p.Lives)
	assert.Zero(t, p.HP)

	for i := 0; i < int(config.GameOverSeconds/frame)+2; i++ {
		s.Step(frame, Intent{Attack: true})
	}
	assert.Equal(t, PhasePlay, s.Phase())
	assert.Equal(t, config.InitialLives, s.Player().Lives)
	assert.Zero(t, s.Player().Score)
	assert.Equal(t, 1, s.Sessions())
}

func TestBoltRemovedOnInvulnerablePlayer(t *testing.T) {
	s := newTestSim(t, 0)
	p := s.Player()
	p.Invuln = 5
	s.reg.AddProjectile(&object.Projectile{
		Owner: object.Hostile, X: p.X, Y: p.Y, Lifetime: 1, Radius: config.BoltRadius, Damage: config.DamageLaser,
	})

	s.resolveBolts()
	s.reg.CompactProjectiles()

	assert.Empty(t, s.reg.Hostile)
	assert.Equal(t, config.HPMax, p.HP)
}

func TestBoltDamagesPlayer(t *testing.T) {
	s := newTestSim(t, 0)
	p := s.Player()
	s.reg.AddProjectile(&object.Projectile{
		Owner: object.Hostile, X: p.X + 10, Y: p.Y, Lifetime: 1, Radius: config.BoltRadius, Damage: config.DamageLaser,
	})

	s.resolveBolts()
	assert.Equal(t, config.HPMax-config.DamageLaser, p.HP)
}

func TestRayHitsOnlyOneEnemy(t *testing.T) {
	s := newTestSim(t, 0)
	a := addEnemy(s, object.Normal, false, 300, 200)
	b := addEnemy(s, object.Normal, false, 302, 200)
	s.reg.AddProjectile(&object.Projectile{
		Owner: object.Friendly, X: 301, Y: 200, Lifetime: 1, Radius: config.RayRadius, Damage: config.RayDamage,
	})

	s.resolveRays()

	dead := 0
	for _, e := range []*object.Enemy{a, b} {
		if e.Dead() {
			dead++
		}
	}
	assert.Equal(t, 1, dead)
	assert.True(t, s.reg.Friendly[0].IsDestroyed())
}

func TestDashKillsEnemyInFront(t *testing.T) {
	s := newTestSim(t, 0)
	p := s.Player()
	x := p.X
	front := addEnemy(s, object.Normal, false, p.X+config.DashDistance+40, p.Y)
	behind := addEnemy(s, object.Normal, false, p.X-150, p.Y)

	s.playerAttack(Intent{})

	assert.Equal(t, x+config.DashDistance, p.X)
	assert.True(t, front.Dead())
	assert.False(t, behind.Dead())
	assert.Equal(t, config.DashCooldown, p.DashCooldown)
	assert.GreaterOrEqual(t, p.Invuln, config.DashInvuln)
	assert.Equal(t, config.ScoreNormal, p.Score)

	// Cooldown blocks an immediate second dash.
	s.playerAttack(Intent{})
	assert.Equal(t, x+config.DashDistance, p.X)
}

func TestDashFollowsInputDirection(t *testing.T) {
	s := newTestSim(t, 0)
	p := s.Player()
	x, y := p.X, p.Y

	s.playerAttack(Intent{DX: -1})
	assert.Equal(t, x-config.DashDistance, p.X)
	assert.Equal(t, y, p.Y)
	assert.Equal(t, -1.0, p.Facing)
}

func TestSpecialTakesSeveralHits(t *testing.T) {
	s := newTestSim(t, 0)
	e := addEnemy(s, object.Special, false, 100, 200)

	s.damageEnemy(e, 1)
	assert.False(t, e.Dead())
	assert.Equal(t, config.SpecialHP-1, e.HP)
	assert.Equal(t, 1, countEvents(s.DrainEvents(), EventEnemyHit))
}

func TestRayFiresWithCooldown(t *testing.T) {
	s := newTestSim(t, 0)
	p := s.Player()
	p.RayRemaining = 5
	x := p.X

	s.Step(frame, Intent{Attack: true})
	require.Len(t, s.reg.Friendly, 1)
	assert.Equal(t, x, p.X, "ray replaces the dash")
	assert.Greater(t, s.reg.Friendly[0].VX, 0.0)

	s.Step(frame, Intent{Attack: true})
	assert.Len(t, s.reg.Friendly, 1)

	for i := 0; i < int(config.RayCooldown/frame)+1; i++ {
		s.Step(frame, Intent{Attack: true})
	}
	assert.Len(t, s.reg.Friendly, 2)
}

func TestRayExpiryEmitsPowerLost(t *testing.T) {
	s := newTestSim(t, 0)
	s.Player().RayRemaining = frame / 2

	s.Step(frame, Intent{})
	assert.False(t, s.Player().HasRay())
	assert.Equal(t, 1, countEvents(s.DrainEvents(), EventPowerLost))
}

func TestStageTimerStartsFinalWave(t *testing.T) {
	s := newTestSim(t, 0)
	p := s.Player()
	p.Invuln = 100

	var normals []*object.Enemy
	for i := 0; i < 3; i++ {
		normals = append(normals, addEnemy(s, object.Normal, false, 30+float64(i)*60, config.BandTop+float64(i)*80))
	}
	s.stageRemaining = frame / 2

	s.Step(frame, Intent{})
	require.Equal(t, PhaseFinalWave, s.Phase())

	for i := 0; i < int((config.FinalSpawnInterval*2)/frame); i++ {
		s.Step(frame, Intent{})
	}

	finals, others := 0, 0
	for _, e := range s.reg.Enemies {
		if e.IsFinal() {
			finals++
		} else {
			others++
		}
	}
	assert.Equal(t, config.FinalWaveCount, finals)
	assert.Equal(t, 3, others, "no normal spawns during the final wave")
	for _, e := range normals {
		assert.False(t, e.Dead())
		assert.Equal(t, config.NormalHP, e.HP)
	}
	assert.Equal(t, config.FinalWaveCount, s.FinalSpawned())
}

func TestSpawnDowngradesSpecialAtCap(t *testing.T) {
	s := newTestSim(t, 0)
	addEnemy(s, object.Special, false, 100, 200)

	for i := 0; i < 50; i++ {
		s.trySpawn()
		assert.LessOrEqual(t, s.reg.CountSpecials(), config.SpecialCap)
	}
	assert.Equal(t, config.MaxEnemies, s.reg.LiveEnemies())
	assert.Nil(t, s.trySpawn(), "population cap reached")
}

func TestSpawnPositionsAreOffScreen(t *testing.T) {
	s := newTestSim(t, 0)
	for i := 0; i < 8; i++ {
		e := s.trySpawn()
		require.NotNil(t, e)
		assert.Contains(t, []float64{-config.SpawnEdgeOffset, config.FieldWidth + config.SpawnEdgeOffset}, e.X)
		assert.GreaterOrEqual(t, e.Y, config.BandTop)
		assert.LessOrEqual(t, e.Y, config.BandBottom)
	}
}

func TestEnemiesCulledFarOutside(t *testing.T) {
	s := newTestSim(t, 0)
	normal := addEnemy(s, object.Normal, false, -500, 200)
	final := addEnemy(s, object.Special, true, -500, 200)

	s.stepEnemies(frame)

	assert.True(t, normal.Dead())
	assert.False(t, final.Dead())
	assert.Equal(t, -config.CullMargin, final.X)
	assert.Zero(t, s.Player().Score, "culling is not a kill")
}

func TestSpecialFiresAtPlayer(t *testing.T) {
	s := newTestSim(t, 0)
	p := s.Player()
	e := addEnemy(s, object.Special, false, p.X-200, p.Y)
	e.Special.FireCooldown = 0

	s.stepEnemies(frame)

	require.Len(t, s.reg.Hostile, 1)
	b := s.reg.Hostile[0]
	assert.Greater(t, b.VX, 0.0)
	assert.InDelta(t, 0, b.VY, 1e-9)
	assert.GreaterOrEqual(t, e.Special.FireCooldown, config.SpecialFireMin)
}

func TestMovementClampsToBand(t *testing.T) {
	s := newTestSim(t, 0)
	p := s.Player()

	for i := 0; i < 600; i++ {
		s.movePlayer(frame, Intent{DX: 1, DY: -1, Sprint: true})
	}
	assert.Equal(t, config.FieldWidth-config.PlayerMarginX, p.X)
	assert.Equal(t, config.BandTop, p.Y)
	assert.Equal(t, 1.0, p.Facing)
}

func TestSprintAndMegaSpeed(t *testing.T) {
	s := newTestSim(t, 0)
	p := s.Player()
	x := p.X

	s.movePlayer(0.1, Intent{DX: 1})
	walk := p.X - x

	x = p.X
	s.movePlayer(0.1, Intent{DX: 1, Sprint: true})
	assert.InDelta(t, walk*config.SprintMultiplier, p.X-x, 1e-9)

	p.MegaRemaining = 1
	x = p.X
	s.movePlayer(0.1, Intent{DX: 1})
	assert.InDelta(t, walk*config.MegaSpeedBonus, p.X-x, 1e-9)
}

func TestInvariantsDemoteSurplusSpecials(t *testing.T) {
	s := newTestSim(t, 0)
	for i := 0; i < 3; i++ {
		addEnemy(s, object.Special, false, 100, 100+float64(i)*50)
	}
	for i := 0; i < 3; i++ {
		addEnemy(s, object.Special, true, 700, 100+float64(i)*50)
	}
	s.Player().HP = -40

	s.enforceInvariants()

	assert.Equal(t, config.SpecialCap, s.reg.CountSpecials())
	assert.Equal(t, config.FinalWaveCount, s.reg.CountFinalAlive())
	assert.Zero(t, s.Player().HP)
}

func TestIllegalTransitionsRefused(t *testing.T) {
	s := newTestSim(t, 0)

	assert.False(t, s.enterPhase(PhaseRide))
	assert.False(t, s.enterPhase(PhaseVictory))
	assert.Equal(t, PhasePlay, s.Phase())

	assert.True(t, s.enterPhase(PhaseFinalWave))
	assert.False(t, s.enterPhase(PhaseFinalWave), "transitions are one-shot")
	assert.False(t, s.enterPhase(PhasePlay), "play is only reached by reset")
}

func TestEndingSequenceResetsToFreshSession(t *testing.T) {
	s := newTestSim(t, 30*time.Second)
	p := s.Player()
	p.Score = 4200
	p.KillsTowardMega = 7
	addEnemy(s, object.Normal, false, 100, 200)

	s.stageRemaining = 0
	s.Step(frame, Intent{})
	require.Equal(t, PhaseFinalWave, s.Phase())

	for s.FinalSpawned() < config.FinalWaveCount {
		s.finalTimer = 0
		s.Step(frame, Intent{})
	}
	for _, e := range s.reg.Enemies {
		if e.IsFinal() {
			s.killEnemy(e)
		}
	}
	require.Equal(t, PhaseRescue, s.Phase())

	seen := map[Phase]bool{}
	dialogue := map[string]bool{}
	for i := 0; i < 5000 && s.Sessions() == 0; i++ {
		seen[s.Phase()] = true
		if line := s.DialogueLine(); line != "" {
			dialogue[line] = true
		}
		s.Step(frame, Intent{DX: 1, Attack: true})
	}

	require.Equal(t, 1, s.Sessions(), "victory must reset the session")
	assert.True(t, seen[PhaseRescue])
	assert.True(t, seen[PhaseRide])
	assert.True(t, seen[PhaseVictory])
	assert.Len(t, dialogue, len(config.DialogueLines))

	fresh := newTestSim(t, 30*time.Second)
	assert.Equal(t, fresh.Snapshot(), s.Snapshot())

	p = s.Player()
	assert.Equal(t, PhasePlay, s.Phase())
	assert.Empty(t, s.reg.Enemies)
	assert.Empty(t, s.reg.Friendly)
	assert.Empty(t, s.reg.Hostile)
	assert.Empty(t, s.reg.Particles)
	assert.Nil(t, s.Rescuer())
	assert.Empty(t, s.Fireworks())
	assert.Zero(t, p.Invuln)
	assert.Zero(t, p.DashCooldown)
	assert.Zero(t, p.RayCooldown)
	assert.Zero(t, p.RayRemaining)
	assert.Zero(t, p.MegaRemaining)
	assert.Zero(t, p.KillsTowardMega)
	assert.Zero(t, s.finalSpawned)
	assert.Zero(t, s.dialogueRemaining)
	assert.Zero(t, s.victoryRemaining)
	assert.Zero(t, s.spawnAccum)
}

func TestRideLeavesOppositeEntryEdge(t *testing.T) {
	s := newTestSim(t, 0)
	require.True(t, s.enterPhase(PhaseFinalWave))
	s.finalSpawned = config.FinalWaveCount
	s.Player().X = 600

	s.checkFinalWaveCleared()
	require.Equal(t, PhaseRescue, s.Phase())
	assert.Equal(t, -1.0, s.Rescuer().EntrySide, "rescuer enters from the edge farther from the player")

	for i := 0; i < 5000 && s.Phase() != PhaseVictory; i++ {
		s.Step(frame, Intent{})
	}
	require.Equal(t, PhaseVictory, s.Phase())
	assert.Greater(t, s.Player().X, config.FieldWidth)
	assert.True(t, s.Player().Carrying)
}

func TestFinalWaveLeavesOnlyFinalsSpecial(t *testing.T) {
	s := newTestSim(t, 0)
	s.Player().Invuln = 1000
	leftover := addEnemy(s, object.Special, false, 60, 200)
	s.stageRemaining = 0

	for i := 0; i < 200; i++ {
		s.Step(frame, Intent{})
		if s.Phase() != PhaseFinalWave {
			continue
		}
		specials := 0
		for _, e := range s.reg.Enemies {
			if !e.Dead() && e.IsSpecial() {
				specials++
			}
		}
		require.LessOrEqual(t, specials, config.FinalWaveCount, "tick %d", i)
	}

	require.Equal(t, PhaseFinalWave, s.Phase())
	assert.Equal(t, config.FinalWaveCount, s.reg.CountFinalAlive())
	assert.Zero(t, s.reg.CountSpecials(), "no non-final special survives into the final wave")
	assert.False(t, leftover.IsSpecial())
	assert.False(t, leftover.Dead())
}

func TestPowerLostOnlyWhenLastPowerEnds(t *testing.T) {
	s := newTestSim(t, 0)
	p := s.Player()
	p.RayRemaining = frame / 2
	p.MegaRemaining = 1

	s.Step(frame, Intent{})
	require.False(t, p.HasRay())
	require.True(t, p.IsMega())
	assert.Zero(t, countEvents(s.DrainEvents(), EventPowerLost), "mega still running")

	for i := 0; i < 70 && p.IsMega(); i++ {
		s.Step(frame, Intent{})
	}
	require.False(t, p.IsMega())
	assert.Equal(t, 1, countEvents(s.DrainEvents(), EventPowerLost))
}

func TestTimerPassExpiresProjectiles(t *testing.T) {
	s := newTestSim(t, 0)
	bolt := object.NewBolt(400, config.BandTop, 1, 0)
	bolt.Lifetime = frame / 2
	s.reg.AddProjectile(bolt)

	s.Step(frame, Intent{})
	assert.Empty(t, s.reg.Hostile)

	s.reg.AddParticles(object.NewParticle(10, 10, 0, 0, frame/2, object.HueGold))
	s.Step(frame, Intent{})
	assert.Empty(t, s.reg.Particles)
}

// Package config centralizes all tunable game parameters.
// Distances are playfield pixels, durations are seconds.
package config

import "time"

// Playfield - the logical arena every entity lives in.
// Renderers scale this to their own resolution.
const (
	FieldWidth  = 800.0
	FieldHeight = 450.0

	// Vertical movement band shared by the player and enemy spawns.
	BandTop    = 60.0
	BandBottom = FieldHeight - 40.0

	// Horizontal margin keeping the player inside the field.
	PlayerMarginX = 24.0
)

// Frame driver
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
	MaxStep         = 33 * time.Millisecond // Longest simulated step per tick
)

// Player
const (
	InitialLives     = 3
	HPMax            = 100
	PlayerSize       = 48.0
	PlayerSpeed      = 150.0 // px/s
	SprintMultiplier = 1.7
	InputDeadzone    = 0.05
	PlayerHitRadius  = 16.0 // Tolerance radius for hostile bolts
)

// Damage and invulnerability
const (
	DamageContact   = 35
	DamageLaser     = 20
	ContactPushback = 30.0
	HitInvuln       = 1.0
	RespawnInvuln   = 2.5
)

// Dash (melee headbutt)
const (
	DashDistance = 40.0
	DashCooldown = 0.35
	DashInvuln   = 0.25
	DashActive   = 0.12 // Window during which the player counts as mid-dash
	MeleeReach   = 44.0 // Hitbox depth in front of the player
	MeleeHeight  = 44.0
	MeleeDamage  = 1
)

// Ray (ranged power)
const (
	RayDuration = 10.0
	RayCooldown = 0.2
	RaySpeed    = 480.0
	RayLifetime = 0.8
	RayRadius   = 6.0
	RayDamage   = 1
	RayMuzzle   = 26.0 // Spawn offset from player center
)

// Mega mode
const (
	MegaDuration      = 12.0
	MegaKillThreshold = 20
	MegaScale         = 1.5
	MegaSpeedBonus    = 1.2
)

// Enemies
const (
	EnemySize         = 48.0
	EnemyHitRadius    = 20.0
	NormalHP          = 1
	SpecialHP         = 3
	FinalHP           = 5
	NormalSpeedMin    = 60.0
	NormalSpeedMax    = 100.0
	SpecialSpeed      = 80.0
	FinalSpeed        = 90.0
	SpecialFireMin    = 0.9
	SpecialFireMax    = 1.8
	CullMargin        = 100.0 // Enemies farther than this outside the field are dropped
	SpawnEdgeOffset   = 50.0  // Off-screen spawn distance from the field edge
	EnemyFacingOffset = 24.0  // Bolt muzzle offset from enemy center
)

// Hostile bolts
const (
	BoltSpeed    = 240.0
	BoltLifetime = 2.0
	BoltRadius   = 4.0
)

// Scoring
const (
	ScoreNormal  = 100
	ScoreSpecial = 500
)

// Spawning
const (
	SpawnInterval      = 1.2
	MaxEnemies         = 8
	SpecialChance      = 0.25
	SpecialCap         = 1
	SpawnRetries       = 8
	MinSpawnFromPlayer = 140.0
	MinSpawnFromEnemy  = 60.0
)

// Final wave
const (
	FinalWaveCount     = 2
	FinalSpawnInterval = 1.5
)

// Stage
const (
	DefaultStageLength = 120 * time.Second
)

// Ending sequence
const (
	RescuerSpeed      = 120.0
	RescuerReach      = 40.0 // Arrival distance from the player
	DialogueSeconds   = 4.0
	RideSpeed         = 200.0
	RideExitMargin    = 60.0
	VictorySeconds    = 6.0
	FireworkInterval  = 0.6
	FireworkParticles = 24
	GameOverSeconds   = 3.0
)

// Particles
const (
	MaxParticles  = 600
	KillParticles = 16
	HitParticles  = 6
	ParticleDrag  = 0.95 // Velocity multiplier per 1/60 s
)

// Dialogue shown once the rescuer reaches the player.
var DialogueLines = []string{
	"You killed all of the zombies here!",
	"Thank you! I was so scared.",
}

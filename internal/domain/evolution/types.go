package evolution

type Phase string

const (
	PhaseDeploy     Phase = "deploy"
	PhaseFeeding    Phase = "feeding"
	PhaseExtinction Phase = "extinction"
	PhaseFinal      Phase = "final"
)

type FoodSourceType string

const (
	// SourceGame moves food out of the shared pool.
	SourceGame FoodSourceType = "GAME"
	// SourceAnimal moves food off another animal's board.
	SourceAnimal FoodSourceType = "ANIMAL"
	// SourceKill mints food from a fresh kill; no pool or animal is debited.
	SourceKill FoodSourceType = "KILL"
)

type TargetType string

const (
	TargetNone   TargetType = "NONE"
	TargetAnimal TargetType = "ANIMAL"
	// TargetPlayer is reserved; the engine rejects traits declaring it.
	TargetPlayer TargetType = "PLAYER"
)

type CooldownLink string

// LinkEating gates any food intake for a player within one round.
const LinkEating CooldownLink = "EATING"

type CooldownPlace string

const (
	PlacePlayer CooldownPlace = "PLAYER"
	PlaceAnimal CooldownPlace = "ANIMAL"
)

// Cooldown durations count remaining round advances.
const (
	DurationRound     = 1
	DurationTwoRounds = 2
)

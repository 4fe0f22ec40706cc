package evolution

import (
	"errors"
	"fmt"
)

// Effect type tags double as wire action types: an effect record crosses the
// trust boundary verbatim and is replayed on every client.
const (
	EffectMoveFood      = "traitMoveFood"
	EffectKillAnimal    = "traitKillAnimal"
	EffectStartCooldown = "startCooldown"
	EffectFeeding       = "executeFeeding"
)

var (
	ErrUnknownEffect = errors.New("unknown effect")
	ErrEffectTarget  = errors.New("effect target not in game")
)

// Effect is one serializable, replayable state mutation.
type Effect interface {
	EffectType() string
}

type MoveFood struct {
	GameID   string
	AnimalID string
	Amount   int
	Source   FoodSourceType
	SourceID string
}

func (MoveFood) EffectType() string { return EffectMoveFood }

type KillAnimal struct {
	GameID         string
	SourcePlayerID string
	SourceAnimalID string
	TargetPlayerID string
	TargetAnimalID string
}

func (KillAnimal) EffectType() string { return EffectKillAnimal }

type StartCooldown struct {
	GameID   string
	Link     CooldownLink
	Duration int
	Place    CooldownPlace
	PlaceID  string
}

func (StartCooldown) EffectType() string { return EffectStartCooldown }

// Feeding is a composite batch. Nested effects apply in list order and are
// not isolated from each other: a later effect observes the state the
// earlier ones produced.
type Feeding struct {
	GameID  string
	Actions []Effect
}

func (Feeding) EffectType() string { return EffectFeeding }

// StartFeeding builds the feeding batch for one transfer. The amount is
// clamped to what the animal can still hold; availability at the source is
// the caller's concern. The clamp is per call: two sources feeding the same
// near-full animal are each clamped against the state they saw.
func StartFeeding(c Catalog, g Game, animal Animal, amount int, source FoodSourceType, sourceID string) Feeding {
	deficit := animal.FoodDeficit(c)
	if amount > deficit {
		amount = deficit
	}
	return Feeding{
		GameID: g.ID,
		Actions: []Effect{
			MoveFood{GameID: g.ID, AnimalID: animal.ID, Amount: amount, Source: source, SourceID: sourceID},
		},
	}
}

// Apply applies one effect to the game and returns the updated snapshot.
// Batches apply nested effects in submission order.
func Apply(c Catalog, g Game, eff Effect) (Game, error) {
	switch e := eff.(type) {
	case MoveFood:
		return applyMoveFood(c, g, e)
	case KillAnimal:
		return g.WithoutAnimal(e.TargetPlayerID, e.TargetAnimalID), nil
	case StartCooldown:
		return g.WithCooldowns(g.Cooldowns.Start(e.Link, e.Duration, e.Place, e.PlaceID)), nil
	case Feeding:
		var err error
		for _, nested := range e.Actions {
			g, err = Apply(c, g, nested)
			if err != nil {
				return g, err
			}
		}
		return g, nil
	default:
		return g, fmt.Errorf("%w: %T", ErrUnknownEffect, eff)
	}
}

func applyMoveFood(c Catalog, g Game, e MoveFood) (Game, error) {
	dest, ok := g.AnimalByID(e.AnimalID)
	if !ok {
		return g, fmt.Errorf("%w: animal %s", ErrEffectTarget, e.AnimalID)
	}
	amount := e.Amount

	switch e.Source {
	case SourceGame:
		if amount > g.Food {
			amount = g.Food
		}
		g = g.WithFood(g.Food - amount)
	case SourceAnimal:
		src, ok := g.AnimalByID(e.SourceID)
		if !ok {
			return g, fmt.Errorf("%w: source animal %s", ErrEffectTarget, e.SourceID)
		}
		if amount > src.Food {
			amount = src.Food
		}
		g = g.WithAnimal(src.LoseFood(amount))
	case SourceKill:
		// food materializes from the kill, nothing is debited
	default:
		return g, fmt.Errorf("%w: food source %q", ErrUnknownEffect, e.Source)
	}

	return g.WithAnimal(dest.ReceiveFood(c, amount)), nil
}

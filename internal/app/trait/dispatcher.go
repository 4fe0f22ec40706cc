package trait

import (
	"primordia/internal/app/shared/wire"
	"primordia/internal/domain/evolution"
)

// dispatch applies one effect to the working snapshot, in submission order,
// and queues its replication. Primitive effects go out individually tagged
// with the recipient set; a feeding batch applies its nested effects here and
// goes out as a single clientOnly composite so recipients apply without
// re-validating.
func (u UseCase) dispatch(rc *requestContext, eff evolution.Effect) error {
	game, err := evolution.Apply(u.Catalog, rc.View.Game, eff)
	if err != nil {
		return err
	}
	rc.View.Game = game

	switch e := eff.(type) {
	case evolution.Feeding:
		nested := make([]wire.Action, 0, len(e.Actions))
		for _, inner := range e.Actions {
			action, err := EncodeEffect(inner, nil)
			if err != nil {
				return err
			}
			nested = append(nested, action)
		}
		action, err := wire.NewAction(evolution.EffectFeeding,
			wire.ExecuteFeedingData{GameID: e.GameID, ActionsList: nested},
			&wire.Meta{Users: rc.View.Recipients, ClientOnly: true})
		if err != nil {
			return err
		}
		rc.Plan.Broadcasts = append(rc.Plan.Broadcasts, action)
	default:
		action, err := EncodeEffect(eff, &wire.Meta{Users: rc.View.Recipients})
		if err != nil {
			return err
		}
		rc.Plan.Broadcasts = append(rc.Plan.Broadcasts, action)
	}
	return nil
}

func (u UseCase) dispatchAll(rc *requestContext, effects []evolution.Effect) error {
	for _, eff := range effects {
		if err := u.dispatch(rc, eff); err != nil {
			return err
		}
	}
	return nil
}

func (u UseCase) startCooldown(rc *requestContext, link evolution.CooldownLink, duration int, place evolution.CooldownPlace, placeID string) error {
	return u.dispatch(rc, evolution.StartCooldown{
		GameID:   rc.View.Game.ID,
		Link:     link,
		Duration: duration,
		Place:    place,
		PlaceID:  placeID,
	})
}

func (u UseCase) startFeeding(rc *requestContext, animal evolution.Animal, amount int, source evolution.FoodSourceType, sourceID string) error {
	return u.dispatch(rc, evolution.StartFeeding(u.Catalog, rc.View.Game, animal, amount, source, sourceID))
}

// EncodeEffect renders an effect record into its wire action. The payload
// carries the gameId and everything needed to replay the effect verbatim.
func EncodeEffect(eff evolution.Effect, meta *wire.Meta) (wire.Action, error) {
	switch e := eff.(type) {
	case evolution.MoveFood:
		return wire.NewAction(evolution.EffectMoveFood, wire.MoveFoodData{
			GameID:     e.GameID,
			AnimalID:   e.AnimalID,
			Amount:     e.Amount,
			SourceType: string(e.Source),
			SourceID:   e.SourceID,
		}, meta)
	case evolution.KillAnimal:
		return wire.NewAction(evolution.EffectKillAnimal, wire.KillAnimalData{
			GameID:         e.GameID,
			SourcePlayerID: e.SourcePlayerID,
			SourceAnimalID: e.SourceAnimalID,
			TargetPlayerID: e.TargetPlayerID,
			TargetAnimalID: e.TargetAnimalID,
		}, meta)
	case evolution.StartCooldown:
		return wire.NewAction(evolution.EffectStartCooldown, wire.StartCooldownData{
			GameID:   e.GameID,
			Link:     string(e.Link),
			Duration: e.Duration,
			Place:    string(e.Place),
			PlaceID:  e.PlaceID,
		}, meta)
	case evolution.Feeding:
		nested := make([]wire.Action, 0, len(e.Actions))
		for _, inner := range e.Actions {
			action, err := EncodeEffect(inner, nil)
			if err != nil {
				return wire.Action{}, err
			}
			nested = append(nested, action)
		}
		return wire.NewAction(evolution.EffectFeeding, wire.ExecuteFeedingData{
			GameID:      e.GameID,
			ActionsList: nested,
		}, meta)
	default:
		return wire.Action{}, evolution.ErrUnknownEffect
	}
}

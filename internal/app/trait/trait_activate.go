package trait

import (
	"context"
	"encoding/json"
	"fmt"

	"primordia/internal/app/shared/wire"
	"primordia/internal/domain/evolution"
)

func traitActivate(ctx context.Context, u UseCase, rc *requestContext) error {
	var data wire.ActivateRequestData
	if err := json.Unmarshal(rc.In.Action.Data, &data); err != nil {
		return ErrInvalidRequest
	}
	origin := fmt.Sprintf("traitActivateRequest@Game(%s)", data.GameID)
	userID := rc.In.UserID

	if err := u.loadGame(ctx, rc, data.GameID, origin); err != nil {
		return err
	}
	game := rc.View.Game
	if err := CheckGameHasUser(origin, game, userID); err != nil {
		return err
	}
	if err := CheckPlayerTurnAndPhase(origin, game, userID, evolution.PhaseFeeding); err != nil {
		return err
	}
	sourceAnimal, err := CheckPlayerHasAnimal(origin, game, userID, data.AnimalID)
	if err != nil {
		return err
	}
	if _, ok := sourceAnimal.Trait(data.TraitType); !ok {
		return checkError(ErrNotFound, origin, "Animal(%s) doesnt have Trait(%s)", data.AnimalID, data.TraitType)
	}
	spec, ok := u.Catalog.Spec(data.TraitType)
	if !ok {
		return checkError(ErrNotFound, origin, "Trait(%s) has no data model", data.TraitType)
	}

	for _, cd := range spec.Cooldowns {
		if game.Cooldowns.ActiveFor(cd.Link, userID, sourceAnimal.ID) {
			return checkError(ErrCooldownActive, origin, "Animal(%s):Trait(%s) has cooldown active", data.AnimalID, data.TraitType)
		}
	}
	if spec.Action == nil {
		return checkError(ErrInvalidRequest, origin, "Animal(%s):Trait(%s) is not active", data.AnimalID, data.TraitType)
	}
	if spec.CheckAction != nil && !spec.CheckAction(u.Catalog, game, sourceAnimal) {
		return checkError(ErrInvalidRequest, origin, "Animal(%s):Trait(%s) checkAction failed", data.AnimalID, data.TraitType)
	}

	traitCtx := evolution.TraitContext{
		Game:           game,
		SourcePlayerID: userID,
		SourceAnimal:   sourceAnimal,
	}

	switch spec.TargetType {
	case evolution.TargetAnimal:
		if data.TargetID == data.AnimalID {
			return checkError(ErrInvalidTarget, origin, "Animal(%s):Trait(%s) cant target self", data.AnimalID, data.TraitType)
		}
		targetPlayerID, _, ok := game.LocateAnimal(data.TargetID)
		if !ok {
			return checkError(ErrNotFound, origin, "Animal(%s):Trait(%s) cant locate Animal(%s)", data.AnimalID, data.TraitType, data.TargetID)
		}
		targetAnimal, _ := game.AnimalByID(data.TargetID)
		if spec.CheckTarget != nil && !spec.CheckTarget(u.Catalog, game, sourceAnimal, targetAnimal) {
			return checkError(ErrInvalidTarget, origin, "Animal(%s):Trait(%s) checkTarget failed", data.AnimalID, data.TraitType)
		}
		traitCtx.TargetPlayerID = targetPlayerID
		traitCtx.TargetAnimal = targetAnimal
	case evolution.TargetNone:
		// untargeted active trait, proceed
	default:
		return checkError(ErrNotImplemented, origin, "Trait(%s) target type %s is not implemented", data.TraitType, spec.TargetType)
	}

	// Declared cooldowns always start, before the effects run.
	for _, cd := range spec.Cooldowns {
		placeID := userID
		if cd.Place == evolution.PlaceAnimal {
			placeID = sourceAnimal.ID
		}
		if err := u.startCooldown(rc, cd.Link, cd.Duration, cd.Place, placeID); err != nil {
			return err
		}
	}

	return u.dispatchAll(rc, spec.Action(u.Catalog, traitCtx))
}

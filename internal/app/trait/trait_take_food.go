package trait

import (
	"context"
	"encoding/json"
	"fmt"

	"primordia/internal/app/shared/wire"
	"primordia/internal/domain/evolution"
)

func traitTakeFood(ctx context.Context, u UseCase, rc *requestContext) error {
	var data wire.TakeFoodRequestData
	if err := json.Unmarshal(rc.In.Action.Data, &data); err != nil {
		return ErrInvalidRequest
	}
	origin := fmt.Sprintf("traitTakeFoodRequest@Game(%s)", data.GameID)
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
	animal, err := CheckPlayerHasAnimal(origin, game, userID, data.AnimalID)
	if err != nil {
		return err
	}
	if game.Food < 1 {
		return checkError(ErrResourceExhausted, origin, "not enough food (%d)", game.Food)
	}
	if game.Cooldowns.ActiveFor(evolution.LinkEating, userID, animal.ID) {
		return checkError(ErrCooldownActive, origin, "cooldown active")
	}
	if !animal.CanEat(u.Catalog) {
		return checkError(ErrResourceExhausted, origin, "Animal(%s) full", animal.ID)
	}

	// Taking food spends the player's feeding action and blocks a carnivorous
	// attack for the rest of the round.
	if err := u.startCooldown(rc, evolution.LinkEating, evolution.DurationRound, evolution.PlacePlayer, userID); err != nil {
		return err
	}
	if err := u.startCooldown(rc, evolution.CooldownLink(evolution.TraitCarnivorous), evolution.DurationRound, evolution.PlacePlayer, userID); err != nil {
		return err
	}
	return u.startFeeding(rc, animal, 1, evolution.SourceGame, "")
}

package trait

import (
	"primordia/internal/domain/evolution"
)

// Precondition checkers. Each is pure: it reads the game snapshot, returns
// the resolved entity where there is one, and rejects with a typed
// ActionCheckError otherwise. Checkers never mutate state.

func CheckGameDefined(origin string, game *evolution.Game) error {
	if game == nil || game.ID == "" {
		return checkError(ErrNotFound, origin, "game not found")
	}
	return nil
}

func CheckGameHasUser(origin string, game evolution.Game, userID string) error {
	if !game.HasUser(userID) {
		return checkError(ErrForbidden, origin, "user %s is not in game", userID)
	}
	return nil
}

func CheckPlayerTurnAndPhase(origin string, game evolution.Game, userID string, phase evolution.Phase) error {
	if game.CurrentPlayer != userID {
		return checkError(ErrOutOfTurn, origin, "not the turn of %s", userID)
	}
	if game.Phase != phase {
		return checkError(ErrWrongPhase, origin, "wrong phase %s, expected %s", game.Phase, phase)
	}
	return nil
}

func CheckPlayerHasCard(origin string, game evolution.Game, userID, cardID string) (evolution.Card, error) {
	player, ok := game.Player(userID)
	if !ok {
		return evolution.Card{}, checkError(ErrForbidden, origin, "user %s is not in game", userID)
	}
	card, ok := player.Card(cardID)
	if !ok {
		return evolution.Card{}, checkError(ErrNotFound, origin, "player %s has no Card(%s)", userID, cardID)
	}
	return card, nil
}

func CheckPlayerHasAnimal(origin string, game evolution.Game, userID, animalID string) (evolution.Animal, error) {
	player, ok := game.Player(userID)
	if !ok {
		return evolution.Animal{}, checkError(ErrForbidden, origin, "user %s is not in game", userID)
	}
	animal, ok := player.Animal(animalID)
	if !ok {
		return evolution.Animal{}, checkError(ErrNotFound, origin, "player %s has no Animal(%s)", userID, animalID)
	}
	return animal, nil
}

func CheckValidAnimalPosition(origin string, game evolution.Game, userID string, position int) error {
	player, ok := game.Player(userID)
	if !ok {
		return checkError(ErrForbidden, origin, "user %s is not in game", userID)
	}
	if position < 0 || position > len(player.Animals) {
		return checkError(ErrInvalidTarget, origin, "invalid animal position %d", position)
	}
	return nil
}

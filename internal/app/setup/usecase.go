// Package setup creates rooms and seats them into games. Games start in the
// feeding phase with a configurable shared pool and starter boards; card
// dealing and deploy-phase play are handled elsewhere.
package setup

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"primordia/internal/app/ports"
	"primordia/internal/domain/evolution"
)

var (
	ErrInvalidRequest = errors.New("invalid setup request")
	ErrEmptyRoom      = errors.New("room has no seated users")
)

type Config struct {
	StartFood      int
	StarterAnimals int
}

func DefaultConfig() Config {
	return Config{StartFood: 10, StarterAnimals: 2}
}

type UseCase struct {
	TxManager ports.TxManager
	Games     ports.GameRepository
	Rooms     ports.RoomRepository
	Config    Config
	Now       func() time.Time
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}

func (u UseCase) CreateRoom(ctx context.Context) (ports.RoomRecord, error) {
	room := ports.RoomRecord{RoomID: uuid.NewString(), CreatedAt: u.now()}
	if err := u.Rooms.Create(ctx, room); err != nil {
		return ports.RoomRecord{}, err
	}
	return room, nil
}

// JoinRoom seats a user, or registers a spectator. Joining twice is a no-op.
func (u UseCase) JoinRoom(ctx context.Context, roomID, userID string, spectator bool) (ports.RoomRecord, error) {
	if strings.TrimSpace(roomID) == "" || strings.TrimSpace(userID) == "" {
		return ports.RoomRecord{}, ErrInvalidRequest
	}
	var out ports.RoomRecord
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		room, err := u.Rooms.GetByID(txCtx, roomID)
		if err != nil {
			return err
		}
		for _, existing := range room.Recipients() {
			if existing == userID {
				out = room
				return nil
			}
		}
		if spectator {
			room.Spectators = append(room.Spectators, userID)
		} else {
			room.Users = append(room.Users, userID)
		}
		if err := u.Rooms.Save(txCtx, room); err != nil {
			return err
		}
		out = room
		return nil
	})
	return out, err
}

// CreateGame seats every room user as a player with starter animals, the
// first user current, and the game in the feeding phase.
func (u UseCase) CreateGame(ctx context.Context, roomID string) (evolution.Game, error) {
	if strings.TrimSpace(roomID) == "" {
		return evolution.Game{}, ErrInvalidRequest
	}
	var out evolution.Game
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		room, err := u.Rooms.GetByID(txCtx, roomID)
		if err != nil {
			return err
		}
		if len(room.Users) == 0 {
			return ErrEmptyRoom
		}

		players := make([]evolution.Player, 0, len(room.Users))
		for _, userID := range room.Users {
			animals := make([]evolution.Animal, 0, u.Config.StarterAnimals)
			for i := 0; i < u.Config.StarterAnimals; i++ {
				animals = append(animals, evolution.Animal{ID: uuid.NewString(), OwnerID: userID})
			}
			players = append(players, evolution.Player{UserID: userID, Animals: animals})
		}

		game := evolution.Game{
			ID:            uuid.NewString(),
			RoomID:        roomID,
			Players:       players,
			Food:          u.Config.StartFood,
			Phase:         evolution.PhaseFeeding,
			CurrentPlayer: room.Users[0],
			Round:         1,
			Version:       1,
			UpdatedAt:     u.now(),
		}
		if err := u.Games.SaveWithVersion(txCtx, game, 0); err != nil {
			return err
		}
		out = game
		return nil
	})
	return out, err
}

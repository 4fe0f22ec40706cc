package trait

import (
	"context"
	"encoding/json"
	"fmt"

	"primordia/internal/app/shared/wire"
	"primordia/internal/domain/evolution"
)

type requestHandler func(ctx context.Context, u UseCase, rc *requestContext) error

// clientToServer binds request action types to their authoritative handlers:
// validate, mutate, rebroadcast. Types absent from the map are not routed.
func clientToServer() map[string]requestHandler {
	return map[string]requestHandler{
		wire.TypeTraitTakeFoodRequest: traitTakeFood,
		wire.TypeTraitActivateRequest: traitActivate,
	}
}

// Routes lists the request action types this engine serves.
func Routes() []string {
	return []string{
		wire.TypeTraitTakeFoodRequest,
		wire.TypeTraitActivateRequest,
	}
}

type effectDecoder func(data json.RawMessage) (evolution.Effect, error)

// serverToClient reconstructs dispatchable effect records from wire payloads.
// No validation happens here: the records were validated by the server that
// produced them.
func serverToClient() map[string]effectDecoder {
	return map[string]effectDecoder{
		evolution.EffectMoveFood: func(data json.RawMessage) (evolution.Effect, error) {
			var d wire.MoveFoodData
			if err := json.Unmarshal(data, &d); err != nil {
				return nil, err
			}
			return evolution.MoveFood{
				GameID:   d.GameID,
				AnimalID: d.AnimalID,
				Amount:   d.Amount,
				Source:   evolution.FoodSourceType(d.SourceType),
				SourceID: d.SourceID,
			}, nil
		},
		evolution.EffectKillAnimal: func(data json.RawMessage) (evolution.Effect, error) {
			var d wire.KillAnimalData
			if err := json.Unmarshal(data, &d); err != nil {
				return nil, err
			}
			return evolution.KillAnimal{
				GameID:         d.GameID,
				SourcePlayerID: d.SourcePlayerID,
				SourceAnimalID: d.SourceAnimalID,
				TargetPlayerID: d.TargetPlayerID,
				TargetAnimalID: d.TargetAnimalID,
			}, nil
		},
		evolution.EffectStartCooldown: func(data json.RawMessage) (evolution.Effect, error) {
			var d wire.StartCooldownData
			if err := json.Unmarshal(data, &d); err != nil {
				return nil, err
			}
			return evolution.StartCooldown{
				GameID:   d.GameID,
				Link:     evolution.CooldownLink(d.Link),
				Duration: d.Duration,
				Place:    evolution.CooldownPlace(d.Place),
				PlaceID:  d.PlaceID,
			}, nil
		},
		evolution.EffectFeeding: func(data json.RawMessage) (evolution.Effect, error) {
			var d wire.ExecuteFeedingData
			if err := json.Unmarshal(data, &d); err != nil {
				return nil, err
			}
			batch := evolution.Feeding{GameID: d.GameID, Actions: make([]evolution.Effect, 0, len(d.ActionsList))}
			for _, nested := range d.ActionsList {
				eff, err := DecodeServerAction(nested)
				if err != nil {
					return nil, err
				}
				batch.Actions = append(batch.Actions, eff)
			}
			return batch, nil
		},
	}
}

// DecodeServerAction turns a confirmed wire action back into its effect
// record. Unknown types fall through as ErrNotRouted.
func DecodeServerAction(action wire.Action) (evolution.Effect, error) {
	decode, ok := serverToClient()[action.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotRouted, action.Type)
	}
	return decode(action.Data)
}

// ApplyServerAction is the client-side reconciler: apply a broadcast action
// to the local mirror without validation, trusting the server's ordering.
func ApplyServerAction(c evolution.Catalog, g evolution.Game, action wire.Action) (evolution.Game, error) {
	eff, err := DecodeServerAction(action)
	if err != nil {
		return g, err
	}
	return evolution.Apply(c, g, eff)
}

package evolution

import "time"

type Card struct {
	ID     string   `json:"id"`
	Traits []string `json:"traits,omitempty"`
}

type Player struct {
	UserID  string   `json:"user_id"`
	Hand    []Card   `json:"hand,omitempty"`
	Animals []Animal `json:"animals,omitempty"`
}

func (p Player) Card(cardID string) (Card, bool) {
	for _, c := range p.Hand {
		if c.ID == cardID {
			return c, true
		}
	}
	return Card{}, false
}

func (p Player) Animal(animalID string) (Animal, bool) {
	for _, a := range p.Animals {
		if a.ID == animalID {
			return a, true
		}
	}
	return Animal{}, false
}

// Question is a pending multi-step player decision (e.g. a defense choice).
type Question struct {
	ID             string `json:"id"`
	Type           string `json:"type"`
	SourceAnimalID string `json:"source_animal_id,omitempty"`
	TargetAnimalID string `json:"target_animal_id,omitempty"`
}

// Game is the authoritative snapshot of one match. It is a value type:
// every update helper returns a new Game with the touched slices copied,
// so checkers can never alias-mutate shared state.
type Game struct {
	ID            string       `json:"id"`
	RoomID        string       `json:"room_id"`
	Players       []Player     `json:"players"`
	Food          int          `json:"food"`
	Phase         Phase        `json:"phase"`
	CurrentPlayer string       `json:"current_player"`
	Round         int          `json:"round"`
	Cooldowns     CooldownList `json:"cooldowns"`
	Question      *Question    `json:"question,omitempty"`
	Version       int64        `json:"version"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

func (g Game) Player(userID string) (Player, bool) {
	for _, p := range g.Players {
		if p.UserID == userID {
			return p, true
		}
	}
	return Player{}, false
}

func (g Game) HasUser(userID string) bool {
	_, ok := g.Player(userID)
	return ok
}

// LocateAnimal finds an animal by id across every player's board and returns
// its owner and board index.
func (g Game) LocateAnimal(animalID string) (playerID string, index int, ok bool) {
	for _, p := range g.Players {
		for i, a := range p.Animals {
			if a.ID == animalID {
				return p.UserID, i, true
			}
		}
	}
	return "", -1, false
}

func (g Game) AnimalByID(animalID string) (Animal, bool) {
	playerID, index, ok := g.LocateAnimal(animalID)
	if !ok {
		return Animal{}, false
	}
	player, _ := g.Player(playerID)
	return player.Animals[index], true
}

// WithAnimal replaces the whole animal owned by updated.OwnerID. The owner's
// board and the player list are copied, not patched in place.
func (g Game) WithAnimal(updated Animal) Game {
	out := g
	out.Players = make([]Player, len(g.Players))
	copy(out.Players, g.Players)
	for pi, p := range out.Players {
		if p.UserID != updated.OwnerID {
			continue
		}
		animals := make([]Animal, len(p.Animals))
		copy(animals, p.Animals)
		for ai, a := range animals {
			if a.ID == updated.ID {
				animals[ai] = updated
			}
		}
		out.Players[pi].Animals = animals
	}
	return out
}

// WithoutAnimal removes the animal from its owner's board, preserving the
// order of the remaining positions.
func (g Game) WithoutAnimal(ownerID, animalID string) Game {
	out := g
	out.Players = make([]Player, len(g.Players))
	copy(out.Players, g.Players)
	for pi, p := range out.Players {
		if p.UserID != ownerID {
			continue
		}
		animals := make([]Animal, 0, len(p.Animals))
		for _, a := range p.Animals {
			if a.ID != animalID {
				animals = append(animals, a)
			}
		}
		out.Players[pi].Animals = animals
	}
	return out
}

func (g Game) WithFood(food int) Game {
	out := g
	if food < 0 {
		food = 0
	}
	out.Food = food
	return out
}

func (g Game) WithCooldowns(cooldowns CooldownList) Game {
	out := g
	out.Cooldowns = cooldowns
	return out
}

// NextPlayer rotates the turn to the next seated player. wrapped is true when
// the rotation returned to the first seat, which ends the round.
func (g Game) NextPlayer() (out Game, wrapped bool) {
	out = g
	if len(g.Players) == 0 {
		return out, false
	}
	current := 0
	for i, p := range g.Players {
		if p.UserID == g.CurrentPlayer {
			current = i
			break
		}
	}
	next := (current + 1) % len(g.Players)
	out.CurrentPlayer = g.Players[next].UserID
	return out, next == 0
}

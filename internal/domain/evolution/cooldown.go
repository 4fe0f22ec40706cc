package evolution

// CooldownEntry is one active restriction. Remaining counts round advances;
// entries at zero or below are inert.
type CooldownEntry struct {
	Link      CooldownLink  `json:"link"`
	Place     CooldownPlace `json:"place"`
	PlaceID   string        `json:"place_id"`
	Remaining int           `json:"remaining"`
}

// CooldownList is a value type; Start and Tick return updated copies and
// never mutate the receiver's backing array in place.
type CooldownList struct {
	Entries []CooldownEntry `json:"entries,omitempty"`
}

// CheckFor reports whether an active entry exists for exactly this
// (link, place, placeID) triple.
func (l CooldownList) CheckFor(link CooldownLink, place CooldownPlace, placeID string) bool {
	for _, e := range l.Entries {
		if e.Link == link && e.Place == place && e.PlaceID == placeID && e.Remaining >= 1 {
			return true
		}
	}
	return false
}

// ActiveFor reports whether the link is restricted for either the player
// scope or the animal scope. Trait validation checks both.
func (l CooldownList) ActiveFor(link CooldownLink, playerID, animalID string) bool {
	return l.CheckFor(link, PlacePlayer, playerID) || l.CheckFor(link, PlaceAnimal, animalID)
}

// Start inserts or overwrites the entry for the triple. Durations do not
// stack: restarting an active cooldown resets it to duration.
func (l CooldownList) Start(link CooldownLink, duration int, place CooldownPlace, placeID string) CooldownList {
	out := CooldownList{Entries: make([]CooldownEntry, 0, len(l.Entries)+1)}
	for _, e := range l.Entries {
		if e.Link == link && e.Place == place && e.PlaceID == placeID {
			continue
		}
		out.Entries = append(out.Entries, e)
	}
	out.Entries = append(out.Entries, CooldownEntry{Link: link, Place: place, PlaceID: placeID, Remaining: duration})
	return out
}

// Tick decrements every entry by one round and drops the expired ones.
// The list performs no time-based eviction on its own; the round-advance
// driver calls this once per round.
func (l CooldownList) Tick() CooldownList {
	out := CooldownList{}
	for _, e := range l.Entries {
		e.Remaining--
		if e.Remaining >= 1 {
			out.Entries = append(out.Entries, e)
		}
	}
	return out
}

package evolution

// Trait is one capability instance attached to an animal. Behavior lives in
// the catalog entry for Type; the instance itself is immutable once attached.
type Trait struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

type Animal struct {
	ID      string  `json:"id"`
	OwnerID string  `json:"owner_id"`
	Traits  []Trait `json:"traits,omitempty"`
	Food    int     `json:"food"`
	Fat     int     `json:"fat"`
}

func (a Animal) HasTrait(traitType string) bool {
	for _, t := range a.Traits {
		if t.Type == traitType {
			return true
		}
	}
	return false
}

func (a Animal) Trait(traitType string) (Trait, bool) {
	for _, t := range a.Traits {
		if t.Type == traitType {
			return t, true
		}
	}
	return Trait{}, false
}

// MaxFood is the animal's food requirement: a base of one plus whatever the
// attached traits demand.
func (a Animal) MaxFood(c Catalog) int {
	max := 1
	for _, t := range a.Traits {
		if spec, ok := c.Spec(t.Type); ok {
			max += spec.FoodDemand
		}
	}
	return max
}

func (a Animal) MaxFat(c Catalog) int {
	max := 0
	for _, t := range a.Traits {
		if spec, ok := c.Spec(t.Type); ok {
			max += spec.FatCapacity
		}
	}
	return max
}

func (a Animal) CanEat(c Catalog) bool {
	return a.Food+a.Fat < a.MaxFood(c)+a.MaxFat(c)
}

// FoodDeficit is how much the animal can still take before it is full.
func (a Animal) FoodDeficit(c Catalog) int {
	deficit := (a.MaxFood(c) + a.MaxFat(c)) - (a.Food + a.Fat)
	if deficit < 0 {
		return 0
	}
	return deficit
}

// ReceiveFood fills food first, overflow goes to fat. Never exceeds capacity.
func (a Animal) ReceiveFood(c Catalog, amount int) Animal {
	out := a
	for amount > 0 {
		switch {
		case out.Food < out.MaxFood(c):
			out.Food++
		case out.Fat < out.MaxFat(c):
			out.Fat++
		default:
			return out
		}
		amount--
	}
	return out
}

// LoseFood removes food, never below zero. Fat is untouched.
func (a Animal) LoseFood(amount int) Animal {
	out := a
	out.Food -= amount
	if out.Food < 0 {
		out.Food = 0
	}
	return out
}

func (a Animal) WithTrait(t Trait) Animal {
	out := a
	out.Traits = append(append([]Trait(nil), a.Traits...), t)
	return out
}

package evolution

// CooldownSpec declares one restriction a trait starts on activation.
// Place selects the scope id at activation time: PLAYER binds to the acting
// user, ANIMAL binds to the source animal.
type CooldownSpec struct {
	Link     CooldownLink
	Place    CooldownPlace
	Duration int
}

// TraitContext carries everything a trait action producer may read. Target
// fields are zero for NONE-target traits.
type TraitContext struct {
	Game           Game
	SourcePlayerID string
	SourceAnimal   Animal
	TargetPlayerID string
	TargetAnimal   Animal
}

// TraitSpec is the static behavior descriptor for one trait type. A nil
// Action marks the trait passive; nil predicates always pass.
type TraitSpec struct {
	Type        string
	TargetType  TargetType
	FoodDemand  int
	FatCapacity int
	Cooldowns   []CooldownSpec
	CheckAction func(c Catalog, g Game, source Animal) bool
	CheckTarget func(c Catalog, g Game, source, target Animal) bool
	Action      func(c Catalog, ctx TraitContext) []Effect
}

// Catalog maps trait type keys to their descriptors. It is configuration
// data, not engine state; tests and deployments supply their own.
type Catalog map[string]TraitSpec

func (c Catalog) Spec(traitType string) (TraitSpec, bool) {
	spec, ok := c[traitType]
	return spec, ok
}

// With returns a copy of the catalog extended with the given specs.
func (c Catalog) With(specs ...TraitSpec) Catalog {
	out := make(Catalog, len(c)+len(specs))
	for k, v := range c {
		out[k] = v
	}
	for _, spec := range specs {
		out[spec.Type] = spec
	}
	return out
}

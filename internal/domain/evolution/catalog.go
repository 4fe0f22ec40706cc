package evolution

// Built-in trait types. The catalog below is a sample of the full game's
// content; the engine treats it as pluggable data.
const (
	TraitCarnivorous = "TraitCarnivorous"
	TraitPiracy      = "TraitPiracy"
	TraitSwimming    = "TraitSwimming"
	TraitCamouflage  = "TraitCamouflage"
	TraitSharpVision = "TraitSharpVision"
	TraitFatTissue   = "TraitFatTissue"
)

func DefaultCatalog() Catalog {
	return Catalog{
		TraitCarnivorous: {
			Type:       TraitCarnivorous,
			TargetType: TargetAnimal,
			FoodDemand: 1,
			Cooldowns: []CooldownSpec{
				{Link: CooldownLink(TraitCarnivorous), Place: PlacePlayer, Duration: DurationRound},
				{Link: LinkEating, Place: PlacePlayer, Duration: DurationRound},
			},
			CheckAction: func(c Catalog, g Game, source Animal) bool {
				return source.CanEat(c)
			},
			CheckTarget: canHunt,
			Action: func(c Catalog, ctx TraitContext) []Effect {
				return []Effect{
					KillAnimal{
						GameID:         ctx.Game.ID,
						SourcePlayerID: ctx.SourcePlayerID,
						SourceAnimalID: ctx.SourceAnimal.ID,
						TargetPlayerID: ctx.TargetPlayerID,
						TargetAnimalID: ctx.TargetAnimal.ID,
					},
					StartFeeding(c, ctx.Game, ctx.SourceAnimal, 2, SourceKill, ctx.TargetAnimal.ID),
				}
			},
		},
		TraitPiracy: {
			Type:       TraitPiracy,
			TargetType: TargetAnimal,
			Cooldowns: []CooldownSpec{
				{Link: CooldownLink(TraitPiracy), Place: PlaceAnimal, Duration: DurationRound},
			},
			CheckAction: func(c Catalog, g Game, source Animal) bool {
				return source.CanEat(c)
			},
			CheckTarget: func(c Catalog, g Game, source, target Animal) bool {
				return target.Food >= 1
			},
			Action: func(c Catalog, ctx TraitContext) []Effect {
				return []Effect{
					StartFeeding(c, ctx.Game, ctx.SourceAnimal, 1, SourceAnimal, ctx.TargetAnimal.ID),
				}
			},
		},
		TraitSwimming: {
			Type:       TraitSwimming,
			TargetType: TargetNone,
		},
		TraitCamouflage: {
			Type:       TraitCamouflage,
			TargetType: TargetNone,
		},
		TraitSharpVision: {
			Type:       TraitSharpVision,
			TargetType: TargetNone,
		},
		TraitFatTissue: {
			Type:        TraitFatTissue,
			TargetType:  TargetNone,
			FatCapacity: 1,
		},
	}
}

func canHunt(c Catalog, g Game, source, target Animal) bool {
	if target.HasTrait(TraitSwimming) && !source.HasTrait(TraitSwimming) {
		return false
	}
	if target.HasTrait(TraitCamouflage) && !source.HasTrait(TraitSharpVision) {
		return false
	}
	return true
}

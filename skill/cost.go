package skill

import (
	"context"

	"github.com/arczone/channelengine/core"
	"github.com/arczone/channelengine/skillerr"
)

// CostEngine computes and applies a skill's HP, MP and item costs. Check
// validates the HP and MP costs only; item availability is not checked
// before Pay, and bullet costs (CostBulletCount) are not spent.
type CostEngine struct {
	Characters CharacterManager
}

// NewCostEngine creates a cost engine backed by the given character
// collaborator, used for item cost payment.
func NewCostEngine(characters CharacterManager) *CostEngine {
	return &CostEngine{Characters: characters}
}

// Check reports whether source can afford def's costs without mutating
// anything. Callers must call Check before Pay; Pay does not re-validate.
func (e *CostEngine) Check(source Combatant, def *SkillDefinition) error {
	hpCost := e.hpCost(source, def)
	if hpCost > 0 && !source.HP().CanAfford(hpCost) {
		return skillerr.New(skillerr.CodeGenericCost, "insufficient HP",
			skillerr.WithMeta("skill_id", def.ID.String()),
			skillerr.WithMeta("hp_cost", hpCost))
	}

	mpCost := e.mpCost(source, def)
	if mpCost > 0 && !source.MP().CanAfford(mpCost) {
		return skillerr.New(skillerr.CodeGenericCost, "insufficient MP",
			skillerr.WithMeta("skill_id", def.ID.String()),
			skillerr.WithMeta("mp_cost", mpCost))
	}

	return nil
}

// Pay deducts def's HP and MP costs from source, then removes the item cost
// through the CharacterManager collaborator. If item removal fails, the HP
// and MP already deducted are not restored. Callers must have already
// called Check.
func (e *CostEngine) Pay(ctx context.Context, source Combatant, def *SkillDefinition) (hpCost, mpCost int, err error) {
	hpCost = e.hpCost(source, def)
	mpCost = e.mpCost(source, def)

	source.HP().Deduct(hpCost)
	source.MP().Deduct(mpCost)

	if def.CostItemID != "" && def.CostItemCount > 0 && e.Characters != nil {
		itemRef := core.MustNewRef(core.RefInput{Module: "item", Type: "item", Value: def.CostItemID})
		if err := e.Characters.RemoveItem(ctx, source.GetID(), itemRef, def.CostItemCount); err != nil {
			return 0, 0, skillerr.Wrap(err, skillerr.CodeGenericCost, "item cost payment failed")
		}
	}

	return hpCost, mpCost, nil
}

// hpCost resolves a skill's HP cost, combining the flat and percent-of-max
// components (percent is always computed against max).
func (e *CostEngine) hpCost(source Combatant, def *SkillDefinition) int {
	cost := def.CostHPFlat
	if def.CostHPPercent > 0 {
		cost += source.HP().PercentOfMax(def.CostHPPercent)
	}
	return cost
}

// mpCost resolves a skill's MP cost the same way as hpCost.
func (e *CostEngine) mpCost(source Combatant, def *SkillDefinition) int {
	cost := def.CostMPFlat
	if def.CostMPPercent > 0 {
		cost += source.MP().PercentOfMax(def.CostMPPercent)
	}
	return cost
}

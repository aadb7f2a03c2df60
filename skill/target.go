package skill

import (
	"context"

	"github.com/arczone/channelengine/skillerr"
	"github.com/arczone/channelengine/spatial"
)

// DefaultHitboxRadius extends AoE ranges to account for the source/target's
// own collision footprint; the engine has no per-entity hitbox data, so a
// single flat value stands in for it everywhere a range check is made.
const DefaultHitboxRadius = 0.5

// TargetResolver validates a skill's primary target and, for area skills,
// gathers the secondary targets a hit against the primary fans out to.
type TargetResolver struct {
	World WorldRegistry
}

// NewTargetResolver creates a resolver backed by the given world registry.
func NewTargetResolver(world WorldRegistry) *TargetResolver {
	return &TargetResolver{World: world}
}

// ValidatePrimary checks that target satisfies def's target-type rules
// against source: alive/active, the target-type class (ally/enemy/etc), and
// range.
func (r *TargetResolver) ValidatePrimary(source, target Combatant, def *SkillDefinition) error {
	if def.TargetType != TargetSource && target == nil {
		return skillerr.New(skillerr.CodeTargetInvalid, "no target supplied")
	}

	if target != nil {
		if dist := source.Position().Distance(target.Position()); dist > def.TargetRange+DefaultHitboxRadius {
			return skillerr.New(skillerr.CodeTooFar, "target out of range",
				skillerr.WithMeta("range", def.TargetRange), skillerr.WithMeta("distance", dist))
		}
		if err := r.validTargetType(source, target, def.TargetType); err != nil {
			return err
		}
	}

	return nil
}

// validTargetType reports whether target satisfies def's target-type class
// relative to source, per the area's valid-type filter.
func (r *TargetResolver) validTargetType(source, target Combatant, tt TargetType) error {
	switch tt {
	case TargetEnemy:
		if target.Faction() == source.Faction() || !target.IsAlive() {
			return skillerr.New(skillerr.CodeTargetInvalid, "target is not a live enemy")
		}
	case TargetAlly, TargetParty:
		if target.Faction() != source.Faction() || !target.IsAlive() {
			return skillerr.New(skillerr.CodeTargetInvalid, "target is not a live ally")
		}
	case TargetDeadAlly, TargetDeadParty:
		if target.Faction() != source.Faction() || target.IsAlive() {
			return skillerr.New(skillerr.CodeTargetInvalid, "target is not a dead ally")
		}
	case TargetSource:
		if target.GetID() != source.GetID() {
			return skillerr.New(skillerr.CodeTargetInvalid, "target must be self")
		}
	}
	return nil
}

// GatherArea resolves the secondary target set for an area skill, given the
// already-validated primary target (which may be nil for source-centered
// areas). The primary target's own ID is never duplicated into the result.
func (r *TargetResolver) GatherArea(ctx context.Context, source, primary Combatant, def *SkillDefinition) ([]string, error) {
	if def.AreaType == AreaNone {
		return nil, nil
	}

	var candidates []Combatant
	var err error

	switch def.AreaType {
	case AreaZoneAll:
		candidates, err = r.World.GetActiveEntitiesInRadius(ctx, source.ZoneID(), source.Position(), 1e9)

	case AreaSource, AreaSourceRadius, AreaSourceRadius2:
		radius := def.AreaRadius + DefaultHitboxRadius
		candidates, err = r.World.GetActiveEntitiesInRadius(ctx, source.ZoneID(), source.Position(), radius)

	case AreaTargetRadius:
		if primary == nil {
			return nil, nil
		}
		radius := def.AreaRadius + DefaultHitboxRadius
		candidates, err = r.World.GetActiveEntitiesInRadius(ctx, source.ZoneID(), primary.Position(), radius)

	case AreaFront1, AreaFront2, AreaFront3:
		var all []Combatant
		all, err = r.World.GetEntitiesInFoV(ctx, source.ZoneID(), source.Position(), source.Facing())
		if err != nil {
			return nil, err
		}
		arc := spatial.NewFrontArc(source.Position(), source.Facing(), def.TargetRange+DefaultHitboxRadius, def.AoEPercent)
		for _, c := range all {
			if arc.Contains(c.Position()) {
				candidates = append(candidates, c)
			}
		}

	case AreaStraightLine:
		if primary == nil {
			return nil, nil
		}
		line := spatial.NewLine(source.Position(), primary.Position(), def.AreaWidth+2*DefaultHitboxRadius)
		var all []Combatant
		all, err = r.World.GetActiveEntitiesInRadius(ctx, source.ZoneID(), source.Position(), line.Length+DefaultHitboxRadius)
		if err != nil {
			return nil, err
		}
		for _, c := range all {
			if line.Contains(c.Position()) {
				candidates = append(candidates, c)
			}
		}
	}

	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c.GetID() == source.GetID() && def.TargetType != TargetSource {
			continue
		}
		if primary != nil && c.GetID() == primary.GetID() {
			continue
		}
		if err := r.validTargetType(source, c, def.TargetType); err != nil {
			continue
		}
		ids = append(ids, c.GetID())
	}

	return ids, nil
}

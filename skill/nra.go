package skill

import (
	"context"

	"github.com/arczone/channelengine/dice"
	"github.com/arczone/channelengine/resources"
)

// nraKindOrder is the precedence absorb > reflect > null.
var nraKindOrder = []NRAOutcome{NRAAbsorb, NRAReflect, NRANull}

// NRAResolver decides whether a hit is nulled, reflected, or absorbed before
// DamageMath ever runs, checking shields before a natural roll against the
// target's correct-table.
type NRAResolver struct {
	Roller dice.Roller
}

// NewNRAResolver creates a resolver using roller for natural NRA chance
// checks.
func NewNRAResolver(roller dice.Roller) *NRAResolver {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &NRAResolver{Roller: roller}
}

// physicalOrMagical maps a dependency type to its NRA affinity class.
func physicalOrMagical(dep DependencyType) string {
	switch dep {
	case DependencyCLSR, DependencyLNGR, DependencyWEAPON:
		return "physical"
	default:
		return "magical"
	}
}

// affinitiesToCheck builds the prioritized affinity list for an NRA check:
// the physical/magical class derived from dependency, then the skill's base
// affinity if it differs.
func affinitiesToCheck(dep DependencyType, baseAffinity string) []string {
	class := physicalOrMagical(dep)
	if baseAffinity == "" || baseAffinity == class {
		return []string{class}
	}
	return []string{class, baseAffinity}
}

// Resolve determines the NRA outcome of a hit against target for a skill
// with the given dependency and affinity. almighty skills bypass NRA
// entirely, matching the spec's "unless almighty" carve-out.
func (r *NRAResolver) Resolve(ctx context.Context, target Combatant, dep DependencyType, affinity string, almighty bool) (NRAOutcome, error) {
	if almighty {
		return NRANone, nil
	}

	affinities := affinitiesToCheck(dep, affinity)
	correct := target.CorrectTable()

	for _, kind := range nraKindOrder {
		for _, aff := range affinities {
			shieldKey := string(kind) + ":" + aff
			if shield, ok := target.NRAShields().Counter(shieldKey); ok && !shield.IsZero() {
				shield.Decrement()
				return kind, nil
			}

			chance := correct["nra."+string(kind)+"."+aff]
			if chance <= 0 {
				continue
			}
			roll, err := r.Roller.Roll(ctx, 100)
			if err != nil {
				return NRANone, err
			}
			if float64(roll) <= chance {
				return kind, nil
			}
		}
	}

	return NRANone, nil
}

// ApplyFlags records the outcome-specific flags onto a result: null sets a
// barrier or block flag depending on whether the target carries a barrier
// aspect, reflect sets a physical/magical reflect flag, and absorb sets the
// absorb flag (DamageMath inverts the actual damage to healing separately).
// physical, which of the physical/magical pair applies, is derived from dep.
func ApplyFlags(result *SkillTargetResult, outcome NRAOutcome, dep DependencyType, hasBarrierAspect bool) {
	result.NRA = outcome

	physical := physicalOrMagical(dep) == "physical"
	switch outcome {
	case NRANull:
		switch {
		case hasBarrierAspect:
			result.Flags |= FlagBarrier
		case physical:
			result.Flags |= FlagBlockPhysical
		default:
			result.Flags |= FlagBlockMagical
		}
	case NRAReflect:
		if physical {
			result.Flags |= FlagReflectPhysical
		} else {
			result.Flags |= FlagReflectMagical
		}
	case NRAAbsorb:
		result.Flags |= FlagAbsorb
	}
}

// ConsumeShield looks up and decrements an NRA shield counter directly,
// used by script hooks that grant or spend shields outside the normal
// resolve path.
func ConsumeShield(pool *resources.Pool, kind NRAOutcome, affinity string) bool {
	key := string(kind) + ":" + affinity
	c, ok := pool.Counter(key)
	if !ok || c.IsZero() {
		return false
	}
	c.Decrement()
	return true
}

package skill

import (
	"context"
	"math"

	"github.com/arczone/channelengine/dice"
)

// Damage channel markers used for a SkillTargetResult's Damage1Type/
// Damage2Type: which gauge a channel moved, or why it moved none.
const (
	ChannelGeneric = "GENERIC"
	ChannelHP      = "HP"
	ChannelMP      = "MP"
	ChannelNone    = "NONE"
	ChannelMiss    = "MISS"
	ChannelHealing = "HEALING"
)

// Damage caps.
const (
	CapNormal           = 9999
	CapNormalLB         = 30000
	CapIntensiveLBExtra = 0 // added to CapNormalLB via LimitBreakMax; engines without an LB extra leave this at 0
)

// scaleDie is the variance roll behind Scale's non-crit, non-LB damage
// range: 1d20, mapped linearly onto [0.80, 0.99].
var scaleDie = dice.MustParseNotation("1d20")

// DamageMath implements the pure combat-math formulas of the damage model:
// offense, boost, defense, scale, crit level, pursuit, and technical damage.
// All randomness flows through Roller so call sites stay deterministic in
// tests.
type DamageMath struct {
	Roller dice.Roller
}

// NewDamageMath creates a DamageMath using roller for scale/crit/pursuit/
// technical rolls. A nil roller falls back to dice.DefaultRoller.
func NewDamageMath(roller dice.Roller) *DamageMath {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &DamageMath{Roller: roller}
}

// Offense resolves the attacker's offense stat for dep, summing the main
// stat with half of the secondary stat for combined variants. For
// DMG_COUNTER, add 2x the countered skill's reversed offense.
func (m *DamageMath) Offense(source Combatant, dep DependencyType, counteredOffenseReversed float64) float64 {
	correct := source.CorrectTable()

	var base float64
	switch dep {
	case DependencyCLSR_SPELL:
		base = correct["offense.CLSR"] + correct["offense.SPELL"]*0.5
	case DependencyLNGR_SPELL:
		base = correct["offense.LNGR"] + correct["offense.SPELL"]*0.5
	default:
		base = correct["offense."+string(dep)]
	}

	return base + 2*counteredOffenseReversed
}

// Boost sums the boost-table entries for affinity (and weapon boost, when
// the affinity was derived from the equipped weapon), capped by a
// per-affinity tokusei cap that defaults to 100%.
func (m *DamageMath) Boost(source Combatant, affinity string, weaponDerived bool) float64 {
	correct := source.CorrectTable()

	boost := correct["boost."+affinity]
	if weaponDerived {
		boost += correct["boost.weapon"]
	}

	cap := correct["cap.boost."+affinity]
	if cap <= 0 {
		cap = 1.0
	}
	if boost > cap {
		boost = cap
	}
	return boost
}

// Defense resolves the target's PDEF or MDEF per dep, reduced by the
// guard modifier and, on a crit, by the target's crit-defense reduction.
func (m *DamageMath) Defense(target Combatant, dep DependencyType, guardModifier float64, isCrit bool, critDefenseReductionPercent float64) float64 {
	correct := target.CorrectTable()

	var defense float64
	if physicalOrMagical(dep) == "physical" {
		defense = correct["defense.PDEF"]
	} else {
		defense = correct["defense.MDEF"]
	}

	defense *= 1 - guardModifier
	if isCrit {
		defense *= 1 - critDefenseReductionPercent/100
	}
	if defense < 0 {
		defense = 0
	}
	return defense
}

// Scale computes the damage-scale multiplier: a fixed 1.2 on crit, LB scale
// for limit breaks, otherwise a random draw in [0.80, 0.99].
func (m *DamageMath) Scale(ctx context.Context, isCrit, isLimitBreak bool, lbDamagePercent float64) (float64, error) {
	switch {
	case isLimitBreak:
		return 1.5 * lbDamagePercent / 100, nil
	case isCrit:
		return 1.2, nil
	default:
		result := scaleDie.RollContext(ctx, m.Roller)
		if result.Error() != nil {
			return 0, result.Error()
		}
		// Total is 1..20; map linearly onto [0.80, 0.99].
		return 0.80 + float64(result.Total()-1)*(0.19/19), nil
	}
}

// NormalDamageInput bundles the per-hit parameters CalculateNormal needs,
// keeping the function signature manageable.
type NormalDamageInput struct {
	Dependency              DependencyType
	Affinity                string
	WeaponDerivedAffinity   bool
	ModifierPercent         float64 // def.Modifier1 or Modifier2, as a percent
	ExpRankBoost            float64
	GuardModifier           float64
	IsCrit                  bool
	IsLimitBreak            bool
	LBDamagePercent         float64
	CritDefenseReductionPct float64
	CounteredOffenseReversed float64
	IsPrimary               bool
	AoEReductionPercent     int
}

// CalculateNormal runs the offense/boost/defense/scale damage pipeline and
// returns the floored, capped damage for one target.
func (m *DamageMath) CalculateNormal(ctx context.Context, source, target Combatant, in NormalDamageInput) (int, error) {
	offense := m.Offense(source, in.Dependency, in.CounteredOffenseReversed)
	boost := m.Boost(source, in.Affinity, in.WeaponDerivedAffinity)
	defense := m.Defense(target, in.Dependency, in.GuardModifier, in.IsCrit, in.CritDefenseReductionPct)

	scale, err := m.Scale(ctx, in.IsCrit, in.IsLimitBreak, in.LBDamagePercent)
	if err != nil {
		return 0, err
	}

	raw := offense*in.ModifierPercent/100 + in.ExpRankBoost*0.5 - defense

	targetCorrect := target.CorrectTable()
	resist := targetCorrect["resist."+in.Affinity]

	sourceCorrect := source.CorrectTable()
	rateDealt := 1 + sourceCorrect["rate.dealt"] + sourceCorrect["rate."+string(in.Dependency)+".dealt"] + sourceCorrect["damage.dealt"]
	rateTaken := 1 + targetCorrect["rate.taken"] + targetCorrect["rate."+string(in.Dependency)+".taken"] + targetCorrect["damage.taken"]

	damage := raw * scale
	damage *= 1 - resist
	damage *= 1 + boost
	damage *= rateDealt
	damage *= rateTaken

	final := math.Floor(damage)
	if final < 1 && damage > 0 {
		final = 1
	}

	if minLevel := targetCorrect["minimum_damage.crit_level"]; minLevel > 0 && critLevelSatisfies(in.IsCrit, minLevel) {
		final = 1
	}

	if !in.IsPrimary && in.AoEReductionPercent > 0 {
		final *= 1 - float64(in.AoEReductionPercent)/100
		final = math.Floor(final)
	}

	final = capDamage(final, in.IsLimitBreak)
	return int(final), nil
}

// critLevelSatisfies reports whether the hit's crit state meets a target's
// minimum-damage-on-crit tokusei threshold. The engine only tracks a binary
// crit flag (not numeric crit levels), so any positive threshold is
// satisfied once a hit actually crit.
func critLevelSatisfies(isCrit bool, _ float64) bool {
	return isCrit
}

// capDamage clamps final damage to the normal or limit-break cap.
func capDamage(final float64, isLimitBreak bool) float64 {
	cap := float64(CapNormal)
	if isLimitBreak {
		cap = float64(CapNormalLB + CapIntensiveLBExtra)
	}
	if final > cap {
		return cap
	}
	return final
}

// StaticOrPercent resolves the DMG_STATIC / DMG_PERCENT / DMG_MAX_PERCENT /
// DMG_SOURCE_PERCENT formulas, which apply the skill's modifier directly to
// a literal or to current/max HP rather than running the offense/defense
// pipeline.
func StaticOrPercent(formula DamageFormula, modifier int, source, target Combatant) int {
	switch formula {
	case FormulaDmgStatic, FormulaHealStatic:
		return modifier
	case FormulaDmgPercent, FormulaHealPercent:
		return target.HP().PercentOfMax(modifier)
	case FormulaDmgMaxPercent:
		return target.HP().PercentOfMax(modifier)
	case FormulaDmgSourcePercent:
		return source.HP().PercentOfMax(modifier)
	default:
		return 0
	}
}

// CritLevel computes the crit rate and rolls against it,
// returning whether the hit crit and, on a crit, whether it also triggers a
// limit break.
func (m *DamageMath) CritLevel(ctx context.Context, source, target Combatant, lbChancePercent float64) (isCrit, isLimitBreak bool, err error) {
	sc := source.CorrectTable()
	tc := target.CorrectTable()

	crit := sc["critical"] + sc["luck"] + sc["knowledge_boost"]
	critDef1 := tc["crit_def1"]
	critDef2 := tc["crit_def2"]
	denom := critDef1 * critDef2
	if denom < 1 {
		denom = 1
	}

	rate := math.Floor(crit/5) * (1 + crit/100) / denom * 100
	rate += sc["crit_bonus_final"]

	roll, err := m.Roller.Roll(ctx, 100)
	if err != nil {
		return false, false, err
	}
	if float64(roll) > rate {
		return false, false, nil
	}

	isCrit = true
	if lbChancePercent > 0 {
		lbRoll, err := m.Roller.Roll(ctx, 100)
		if err != nil {
			return true, false, err
		}
		isLimitBreak = float64(lbRoll) <= lbChancePercent
	}
	return isCrit, isLimitBreak, nil
}

// Pursuit rolls PURSUIT_RATE and, on success, computes pursuit damage as
// baseDamage re-scaled by PURSUIT_POWER (floor 1%), capped at baseDamage.
// If prevented is true (the caller's NRA check nulled, reflected or absorbed
// the pursuit hit), pursuit damage is zero.
func (m *DamageMath) Pursuit(ctx context.Context, source Combatant, baseDamage int, pursuitRatePercent, pursuitPowerPercent float64, prevented bool) (int, error) {
	if pursuitRatePercent <= 0 || baseDamage <= 0 {
		return 0, nil
	}
	roll, err := m.Roller.Roll(ctx, 10000)
	if err != nil {
		return 0, err
	}
	if float64(roll) > pursuitRatePercent*100 {
		return 0, nil
	}
	if prevented {
		return 0, nil
	}

	power := pursuitPowerPercent
	if power < 1 {
		power = 1
	}
	dmg := int(math.Floor(float64(baseDamage) * power / 100))
	if dmg > baseDamage {
		dmg = baseDamage
	}
	return dmg, nil
}

// Technical rolls TECH_ATTACK_RATE and, on success, computes technical
// damage as baseDamage re-scaled by TECH_ATTACK_POWER, capped like base
// damage.
func (m *DamageMath) Technical(ctx context.Context, baseDamage int, techRatePercent, techPowerPercent float64, isLimitBreak bool) (int, error) {
	if techRatePercent <= 0 || baseDamage <= 0 {
		return 0, nil
	}
	roll, err := m.Roller.Roll(ctx, 10000)
	if err != nil {
		return 0, err
	}
	if float64(roll) > techRatePercent*100 {
		return 0, nil
	}

	dmg := math.Floor(float64(baseDamage) * techPowerPercent / 100)
	return int(capDamage(dmg, isLimitBreak)), nil
}

// HPDrain computes the self-heal applied to source from hpDrainPercent of
// the summed generic damage dealt, capped at ±9999.
func HPDrain(totalGenericDamage int, hpDrainPercent int, rateHealTakenPercent float64) int {
	if hpDrainPercent == 0 {
		return 0
	}
	drain := -int(math.Floor(float64(totalGenericDamage) * float64(hpDrainPercent) / 100 * rateHealTakenPercent / 100))
	if drain > 9999 {
		drain = 9999
	}
	if drain < -9999 {
		drain = -9999
	}
	return drain
}

// Package skill implements the skill execution engine: the state machine
// that turns an activation request into activation, charging, cost
// payment, execution, hit resolution, status application, and completion
// or cancellation, per the channel-server combat model.
package skill

import "github.com/arczone/channelengine/core"

// ActionType identifies the broad category of action a skill performs.
type ActionType string

// Action types named by the engine's data model.
const (
	ActionAttack      ActionType = "ATTACK"
	ActionRush        ActionType = "RUSH"
	ActionShot        ActionType = "SHOT"
	ActionGuard       ActionType = "GUARD"
	ActionDodge       ActionType = "DODGE"
	ActionCounter     ActionType = "COUNTER"
	ActionSpin        ActionType = "SPIN"
	ActionRapid       ActionType = "RAPID"
	ActionTaunt       ActionType = "TAUNT"
	ActionIntimidate  ActionType = "INTIMIDATE"
	ActionTalk        ActionType = "TALK"
	ActionSupport     ActionType = "SUPPORT"
)

// defendableActions is the set of actions a target may counter, guard, or
// dodge against. GUARD/DODGE/COUNTER are themselves the defensive reactions
// and TALK/SUPPORT/TAUNT/INTIMIDATE never trigger them.
var defendableActions = map[ActionType]bool{
	ActionAttack: true,
	ActionRush:   true,
	ActionShot:   true,
	ActionSpin:   true,
	ActionRapid:  true,
}

// ActivationType governs how a skill transitions from activate() to execute().
type ActivationType string

// Activation types.
const (
	ActivationCharged  ActivationType = "CHARGED"
	ActivationInstant  ActivationType = "INSTANT"
	ActivationSpecial  ActivationType = "SPECIAL"
	ActivationOnToggle ActivationType = "ON_TOGGLE"
)

// Category groups skills by how they're retired and dispatched on execute.
type Category string

// Skill categories.
const (
	CategoryActive  Category = "ACTIVE"
	CategorySwitch  Category = "SWITCH"
	CategoryPassive Category = "PASSIVE"
)

// DependencyType governs which offense/defense stat a skill's damage math uses.
type DependencyType string

// Dependency types. Combined variants (e.g. CLSR_SPELL) sum the main stat
// with half of the other.
const (
	DependencyCLSR    DependencyType = "CLSR"
	DependencyLNGR    DependencyType = "LNGR"
	DependencySPELL   DependencyType = "SPELL"
	DependencySUPPORT DependencyType = "SUPPORT"
	DependencyWEAPON  DependencyType = "WEAPON"
	// Combined variants: main stat is the first component.
	DependencyCLSR_SPELL DependencyType = "CLSR_SPELL"
	DependencyLNGR_SPELL DependencyType = "LNGR_SPELL"
)

// DamageFormula selects how a skill's HP1/HP2 modifiers are interpreted.
type DamageFormula string

// Damage formulas.
const (
	FormulaNone             DamageFormula = "NONE"
	FormulaDmgNormal        DamageFormula = "DMG_NORMAL"
	FormulaDmgNormalSimple  DamageFormula = "DMG_NORMAL_SIMPLE"
	FormulaDmgStatic        DamageFormula = "DMG_STATIC"
	FormulaDmgPercent       DamageFormula = "DMG_PERCENT"
	FormulaDmgMaxPercent    DamageFormula = "DMG_MAX_PERCENT"
	FormulaDmgSourcePercent DamageFormula = "DMG_SOURCE_PERCENT"
	FormulaDmgCounter       DamageFormula = "DMG_COUNTER"
	FormulaHealStatic       DamageFormula = "HEAL_STATIC"
	FormulaHealPercent      DamageFormula = "HEAL_PERCENT"
	FormulaDmgExplicitSet   DamageFormula = "DMG_EXPLICIT_SET"
)

// TargetType identifies who a skill may be aimed at.
type TargetType string

// Target types.
const (
	TargetEnemy     TargetType = "ENEMY"
	TargetAlly      TargetType = "ALLY"
	TargetDeadAlly  TargetType = "DEAD_ALLY"
	TargetParty     TargetType = "PARTY"
	TargetDeadParty TargetType = "DEAD_PARTY"
	TargetSource    TargetType = "SOURCE"
	TargetPartner   TargetType = "PARTNER"
	TargetPlayer    TargetType = "PLAYER"
	TargetDemon     TargetType = "DEMON"
	TargetObject    TargetType = "OBJECT"
)

// AreaType selects how AoE targets are gathered around a skill's use.
type AreaType string

// Area types.
const (
	AreaNone          AreaType = "NONE"
	AreaZoneAll       AreaType = "ZONE_TARGET_ALL"
	AreaSource        AreaType = "SOURCE"
	AreaSourceRadius  AreaType = "SOURCE_RADIUS"
	AreaSourceRadius2 AreaType = "SOURCE_RADIUS2"
	AreaTargetRadius  AreaType = "TARGET_RADIUS"
	AreaFront1        AreaType = "FRONT_1"
	AreaFront2        AreaType = "FRONT_2"
	AreaFront3        AreaType = "FRONT_3"
	AreaStraightLine  AreaType = "STRAIGHT_LINE"
)

// KnockbackType selects the positional-update rule applied on knockback.
type KnockbackType int

// Knockback types.
const (
	KnockbackAwayFromSource KnockbackType = 0
	KnockbackAwayFromTarget KnockbackType = 1
	KnockbackNone           KnockbackType = 2
	KnockbackAwayFromSource2 KnockbackType = 3
	KnockbackMatchTarget    KnockbackType = 4
	KnockbackAtSource       KnockbackType = 5
)

// AdjustRestriction is a bitset of which cost/charge/cooldown/stack
// adjustments are fixed (i.e. tokusei/script adjustments do not apply).
type AdjustRestriction uint8

// Adjust restriction bits.
const (
	FixedCharge AdjustRestriction = 1 << iota
	FixedCost
	FixedCooldown
	FixedStack
)

// Has reports whether the bit r is set.
func (a AdjustRestriction) Has(r AdjustRestriction) bool {
	return a&r != 0
}

// Restrictions gate who may use a skill at all, independent of cost/cooldown.
type Restrictions struct {
	WeaponType []string
	LNC        []string // law/neutral/chaos alignment tags
	Gender     string    // "" = unrestricted
	MinLevel   int
}

// AddStatusEntry describes one candidate status effect a skill may apply on
// hit.
type AddStatusEntry struct {
	StatusID       *core.Ref
	Min, Max       int  // stack range
	Rate           int  // base success rate, percent
	OnKnockback    bool // only rolled if a knockback occurred on this hit
	Replace        bool // replace an existing active instance rather than skip
	Affinity       string
	CategoryTwo    bool // ailment-damage style status (adds to ailment damage instead of stacking)
	CancelOnDeath  bool
}

// SkillDefinition is the read-only, authored definition of a skill.
type SkillDefinition struct {
	ID         *core.Ref
	FunctionID string // optional scripted hook key; "" = no script

	Action     ActionType
	Activation ActivationType
	Category   Category
	Family     string

	ChargeTimeMS   int64
	CooldownTimeMS int64
	Stiffness      int
	AutoCancelMS   int64

	Affinity     string
	Dependency   DependencyType
	TargetType   TargetType
	TargetRange  float64

	AreaType    AreaType
	AreaRadius  float64
	AreaWidth   float64
	AoEPercent  int // used for FRONT_* half-width
	AoEReductionPercent int

	Formula   DamageFormula
	Modifier1 int
	Modifier2 int

	HPDrainPercent int
	MPDrainPercent int

	KnockbackModifier int
	KnockbackType     KnockbackType
	KnockbackDistance float64

	HitDelayMS      int64
	CompleteDelayMS int64
	ProjectileSpeed float64 // units/sec *10; travel time derives from distance/this

	AddStatuses []AddStatusEntry

	AdjustRestrictions AdjustRestriction
	Restrictions       Restrictions

	// Cost fields, consumed by CostEngine.
	CostHPFlat      int
	CostHPPercent   int
	CostMPFlat      int
	CostMPPercent   int
	CostItemID      string
	CostItemCount   int
	CostBulletCount int

	MaxUseCount int // 0/1 both mean "once"; >1 means multi-use
}

// EffectiveMaxUse returns the skill's max-use count with a floor of 1.
func (d *SkillDefinition) EffectiveMaxUse() int {
	if d.MaxUseCount <= 0 {
		return 1
	}
	return d.MaxUseCount
}

// Defendable reports whether a target may react to this skill with a
// counter, guard, or dodge that was charged in advance of the hit.
func (d *SkillDefinition) Defendable() bool {
	return defendableActions[d.Action]
}

// IsProjectile reports whether this skill travels to its target rather than
// landing instantly, and so needs a distance-based hit schedule.
func (d *SkillDefinition) IsProjectile() bool {
	return d.ProjectileSpeed > 0
}

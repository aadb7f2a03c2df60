package skill

import (
	"sync"

	"github.com/arczone/channelengine/spatial"
)

// NRAOutcome records what an NRA resolver decided for one target/hit.
type NRAOutcome string

// NRA outcomes, precedence absorb > reflect > null.
const (
	NRANone    NRAOutcome = ""
	NRANull    NRAOutcome = "NULL"
	NRAReflect NRAOutcome = "REFLECT"
	NRAAbsorb  NRAOutcome = "ABSORB"
)

// ResultFlags is the bitset of per-hit outcome flags a target result may
// carry. The data model groups these into two registers (general outcome
// and NRA/guard variety); the engine keeps them in one Go bitset since
// nothing downstream needs the register split.
type ResultFlags uint32

// Result flag bits.
const (
	FlagLethal ResultFlags = 1 << iota
	FlagKnockback
	FlagCritical
	FlagWeakpoint
	FlagGuarded
	FlagDodged
	FlagReflectPhysical
	FlagReflectMagical
	FlagBlockPhysical
	FlagBlockMagical
	FlagAbsorb
	FlagRevival
	FlagClench
	FlagLimitBreak
	FlagIntensiveBreak
	FlagBarrier
	FlagImpossible
	FlagRushMovement
	FlagProtect
	FlagInstantDeath
)

// Has reports whether flag is set.
func (f ResultFlags) Has(flag ResultFlags) bool {
	return f&flag != 0
}

// TalkFlags records the outcome of a TALK-action skill against a demon
// target (negotiation accepted/refused/left angry); unset for every other
// action type.
type TalkFlags uint8

// Talk outcome bits.
const (
	TalkAccepted TalkFlags = 1 << iota
	TalkRefused
	TalkAngered
)

// SkillTargetResult is the per-target outcome of one hit.
type SkillTargetResult struct {
	TargetID  string
	IsPrimary bool

	NRA   NRAOutcome
	Flags ResultFlags
	Talk  TalkFlags

	// Damage1/Damage2 are the skill's two damage channels (typically HP and
	// MP); Damage1Type/Damage2Type name which gauge each moved, or NONE/MISS/
	// HEALING when the channel carried no ordinary damage.
	Damage1     int
	Damage1Type string
	Damage2     int
	Damage2Type string

	AilmentType     string
	AilmentDamage   int
	AilmentDuration int64 // microseconds

	// TechnicalDamage and PursuitDamage are the bonus-damage add-ons rolled
	// on top of a normal hit; PursuitAffinity records which affinity the
	// pursuit hit was re-resisted against (may differ from the base skill's
	// affinity).
	TechnicalDamage int
	PursuitDamage   int
	PursuitAffinity string

	StatusesApplied   []string // StatusID strings that actually landed
	StatusesCancelled []string

	// HitAvoided is set whenever the target took no damage because it was
	// dodged, nulled, reflected, or absorbed outright.
	HitAvoided bool
	CanHitstun bool

	// GuardModifierPercent is the guard reduction actually applied to this
	// hit's defense, 0 when no guard was in effect.
	GuardModifierPercent int

	EffectCancel   EffectCancelMask
	RecalcTriggers []string

	KnockbackApplied  bool
	KnockbackDistance float64
	HitStunAppliedUS  int64

	// RewiredFromID is set when this result exists only because a reflect on
	// RewiredFromID sent the hit back at its source.
	RewiredFromID string

	FailureCode string // skillerr.Code, empty on success
}

// ProcessingSkill is the per-hit derived state the engine builds when an
// ActivatedAbility actually executes: it resolves area targets, applies the
// damage math per target, and accumulates the results that become the
// outbound SkillExecuted/SkillCompleted reports.
type ProcessingSkill struct {
	Activation *ActivatedAbility

	// Targets is the resolved set of entity IDs this execution will hit,
	// gathered once per execute() call by the TargetResolver.
	Targets []string

	Results []SkillTargetResult

	// CalcCache memoizes the expensive offense/defense stat lookups for the
	// duration of this single execution, so that AoE hits against many
	// targets don't redundantly recompute the source's own correct-table.
	CalcCache *CalcStateCache

	ExecutedAtUS int64
}

// NewProcessingSkill starts a fresh per-hit record for an activation that
// has just reached its execute() transition.
func NewProcessingSkill(a *ActivatedAbility, nowUS int64) *ProcessingSkill {
	return &ProcessingSkill{
		Activation:   a,
		CalcCache:    NewCalcStateCache(),
		ExecutedAtUS: nowUS,
	}
}

// AddResult appends a target result.
func (p *ProcessingSkill) AddResult(r SkillTargetResult) {
	p.Results = append(p.Results, r)
}

// CalcStateCache memoizes per-entity calculated stat lookups (correct-table
// reads) within the scope of one execute() call, deduping repeat
// recomputation when an AoE skill evaluates the same source against many
// targets. Not safe to retain across executions: a new one is built per
// ProcessingSkill.
type CalcStateCache struct {
	mu     sync.Mutex
	values map[string]map[string]float64
}

// NewCalcStateCache creates an empty cache.
func NewCalcStateCache() *CalcStateCache {
	return &CalcStateCache{values: make(map[string]map[string]float64)}
}

// Get returns a cached correct-table snapshot for entityID, if present.
func (c *CalcStateCache) Get(entityID string) (map[string]float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.values[entityID]
	return v, ok
}

// Put stores a correct-table snapshot for entityID.
func (c *CalcStateCache) Put(entityID string, table map[string]float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[entityID] = table
}

// SkillExecutionContext tracks cross-cutting state for one activation as it
// moves through activate -> target -> execute -> complete/cancel: whether it
// fast-tracked past charging, whether it fizzled, and the chain of counter
// activations it triggered (a counter-attack is itself a new ActivatedAbility
// linked back to the hit that provoked it).
type SkillExecutionContext struct {
	Activation *ActivatedAbility

	FastTracked bool
	Fizzled     bool
	FizzleCode  string

	// CounterChain records counter-attacks spawned in response to this
	// activation's hits, most recent last. The engine refuses to chain past
	// a small fixed depth to avoid infinite counter/counter loops.
	CounterChain []*ActivatedAbility

	SourcePosition spatial.Position
}

// NewSkillExecutionContext starts a context for a freshly activated ability.
func NewSkillExecutionContext(a *ActivatedAbility, sourcePos spatial.Position) *SkillExecutionContext {
	return &SkillExecutionContext{Activation: a, SourcePosition: sourcePos}
}

// Fizzle marks the execution as having produced no effect, with the given
// failure code recorded for the outbound report.
func (c *SkillExecutionContext) Fizzle(code string) {
	c.Fizzled = true
	c.FizzleCode = code
}

// MaxCounterChainDepth bounds how many counter-attacks one activation's hits
// may chain into before the engine stops spawning new ones.
const MaxCounterChainDepth = 3

// CanChainCounter reports whether another counter-attack may be appended.
func (c *SkillExecutionContext) CanChainCounter() bool {
	return len(c.CounterChain) < MaxCounterChainDepth
}

// AddCounter appends a counter-attack activation to the chain.
func (c *SkillExecutionContext) AddCounter(a *ActivatedAbility) {
	c.CounterChain = append(c.CounterChain, a)
}

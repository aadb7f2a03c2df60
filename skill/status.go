package skill

import (
	"context"
	"math"

	"github.com/arczone/channelengine/core"
)

// StatusApplication describes the outcome of rolling one AddStatusEntry
// against a target, for SkillTargetResult bookkeeping.
type StatusApplication struct {
	StatusID      *core.Ref
	Stack         int
	AilmentDamage int // set instead of Stack for category-2 effects
	Applied       bool
}

// StatusEngine implements the on-hit status roll: immunity checks, NRA
// pre-roll for bad effects, effective success rate, stack count, and the
// category-2 ailment-damage accumulation path.
type StatusEngine struct {
	NRA *NRAResolver
}

// NewStatusEngine creates a status engine using nra for the bad-effect
// pre-roll.
func NewStatusEngine(nra *NRAResolver) *StatusEngine {
	return &StatusEngine{NRA: nra}
}

// RollOptions carries the per-hit context RollCandidates needs beyond the
// candidate list itself.
type RollOptions struct {
	Dependency      DependencyType
	ExpertiseBoost  float64 // 1% per CotW/M-bullet rank, pre-summed by the caller
	KnockbackOccurred bool
	NowUS           int64
}

// RollCandidates evaluates every candidate status from the skill's
// AddStatuses plus any tokusei-sourced STATUS_ADD/KNOCKBACK_STATUS_ADD
// entries the caller appends, in order, and returns the roll outcome for
// each.
func (e *StatusEngine) RollCandidates(ctx context.Context, source, target Combatant, candidates []AddStatusEntry, opts RollOptions) ([]StatusApplication, error) {
	results := make([]StatusApplication, 0, len(candidates))

	for _, c := range candidates {
		if c.OnKnockback && !opts.KnockbackOccurred {
			continue
		}

		app, err := e.rollOne(ctx, source, target, c, opts)
		if err != nil {
			return results, err
		}
		results = append(results, app)
	}

	return results, nil
}

func (e *StatusEngine) rollOne(ctx context.Context, source, target Combatant, c AddStatusEntry, opts RollOptions) (StatusApplication, error) {
	app := StatusApplication{StatusID: c.StatusID}

	if e.isImmune(target, c) {
		return app, nil
	}

	if c.Affinity != "" {
		outcome, err := e.NRA.Resolve(ctx, target, opts.Dependency, c.Affinity, false)
		if err != nil {
			return app, err
		}
		if outcome != NRANone {
			return app, nil
		}
	}

	rate := e.effectiveRate(source, target, c, opts)
	if c.StatusID != nil && c.StatusID.String() == instantDeathRef && rate > 50 {
		rate = 50
	}

	roll, err := e.NRA.Roller.Roll(ctx, 100)
	if err != nil {
		return app, err
	}
	if float64(roll) > rate {
		return app, nil
	}

	if c.CategoryTwo {
		stack := e.drawStack(c, target)
		app.AilmentDamage = stack
		app.Applied = true
		return app, nil
	}

	if e.applicationRuleOneBlocks(target, c) {
		return app, nil
	}

	app.Stack = e.drawStack(c, target)
	app.Applied = true
	return app, nil
}

// instantDeathRef is the conventional ref value used for the instant-death
// status, whose success rate is capped at 50%.
const instantDeathRef = "status:instant_death"

// isImmune reports whether target is immune to c, either by exact status ID
// or by the status's adjusted category.
func (e *StatusEngine) isImmune(target Combatant, c AddStatusEntry) bool {
	correct := target.CorrectTable()
	if c.StatusID != nil && correct["immune.status."+c.StatusID.String()] > 0 {
		return true
	}
	category := "1"
	if c.CategoryTwo {
		category = "2"
	}
	return correct["immune.category."+category] > 0
}

// effectiveRate combines base rate, expertise boost, affinity boost/resist,
// and direct/category STATUS_INFLICT_ADJUST sums.
func (e *StatusEngine) effectiveRate(source, target Combatant, c AddStatusEntry, opts RollOptions) float64 {
	sc := source.CorrectTable()
	tc := target.CorrectTable()

	rate := float64(c.Rate) + opts.ExpertiseBoost

	if c.Affinity != "" {
		rate += sc["boost."+c.Affinity] * 0.5
		rate *= 1 - tc["resist."+c.Affinity]
	}

	statusKey := ""
	if c.StatusID != nil {
		statusKey = c.StatusID.String()
	}
	rate += sc["status_inflict_adjust."+statusKey]
	category := "1"
	if c.CategoryTwo {
		category = "2"
	}
	rate += sc["status_inflict_adjust.category."+category]

	rate += (tc["res_status"] - 100) / 10

	return rate
}

// drawStack computes a stack count from the midpoint of [min,max]; no
// random draw is made. The midpoint is multiplied by the target's
// status_scale correct-table value (1 when unset or <= 0, 127 when above
// 100), rounded, raised to min, and lowered to max unless the scale was
// above 100.
func (e *StatusEngine) drawStack(c AddStatusEntry, target Combatant) int {
	lo, hi := c.Min, c.Max
	if hi < lo {
		hi = lo
	}
	base := float64(lo+hi) / 2

	scale := target.CorrectTable()["status_scale"]
	if scale <= 0 {
		scale = 1
	}
	if scale > 100 {
		scale = 127
	}

	stack := int(math.Round(base * scale))
	if stack < lo {
		stack = lo
	}
	if stack > hi && scale <= 100 {
		stack = hi
	}
	return stack
}

// applicationRuleOneBlocks reports whether a rule-1 status (one that must
// not be refreshed unless explicitly replacing) is already active on
// target.
func (e *StatusEngine) applicationRuleOneBlocks(target Combatant, c AddStatusEntry) bool {
	if c.Replace || c.StatusID == nil {
		return false
	}
	for _, active := range target.ActiveStatuses() {
		if active.StatusID != nil && active.StatusID.String() == c.StatusID.String() {
			return true
		}
	}
	return false
}

// ApplyResult commits a successful roll onto target's active-status map (or
// ailment damage accumulator), extending ailment timers.
func ApplyResult(target Combatant, app StatusApplication, durationMS int64, cancelMask EffectCancelMask, nowUS int64) {
	if !app.Applied {
		return
	}

	if app.AilmentDamage > 0 {
		return // ailment damage is carried on SkillTargetResult, not the active-status map
	}

	expires := nowUS + durationMS*1000
	target.AddActiveStatus(&ActiveStatus{
		StatusID:    app.StatusID,
		Stack:       app.Stack,
		ExpiresAtUS: expires,
		CancelMask:  cancelMask,
	})
}

// DropCancelOnDeath drops cancelAdditionOnDeath-flagged statuses from applied
// when target ends the hit dead.
func DropCancelOnDeath(applied []StatusApplication, candidates []AddStatusEntry, targetDied bool) []StatusApplication {
	if !targetDied {
		return applied
	}
	cancelByID := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if c.CancelOnDeath && c.StatusID != nil {
			cancelByID[c.StatusID.String()] = true
		}
	}

	kept := applied[:0]
	for _, a := range applied {
		if a.StatusID != nil && cancelByID[a.StatusID.String()] {
			continue
		}
		kept = append(kept, a)
	}
	return kept
}

package skill

import (
	"context"

	"github.com/arczone/channelengine/core"
	"github.com/arczone/channelengine/events"
	"github.com/arczone/channelengine/skillerr"
)

// Engine wires every component into the public activate/target/execute/
// cancel surface. It owns no entity state itself; all mutation happens
// through the Combatant and the external collaborator interfaces passed
// into NewEngine.
type Engine struct {
	World       WorldRegistry
	Characters  CharacterManager
	AI          AIManager
	Clients     ClientStateStore
	Definitions DefinitionStore

	Cost   *CostEngine
	Target *TargetResolver
	NRA    *NRAResolver
	Damage *DamageMath
	Status *StatusEngine
	Script *ScriptHooks

	Scheduler Scheduler
	Bus       events.EventBus

	// Now returns the engine's current time in microseconds. Production
	// wires this to the owning zone's tick clock; tests wire it to an
	// InMemoryScheduler's Now.
	Now func() int64

	// contexts tracks in-flight SkillExecutionContext by activation ID, so
	// scheduled callbacks (charge completion, hit delivery) can find their
	// way back to the right activation.
	contexts map[string]*SkillExecutionContext
}

// NewEngine assembles an Engine from its collaborators. World, Characters,
// AI, and Clients may be nil for tests that don't exercise the paths that
// need them.
func NewEngine(world WorldRegistry, characters CharacterManager, ai AIManager, clients ClientStateStore, definitions DefinitionStore, scheduler Scheduler, bus events.EventBus, now func() int64) *Engine {
	nra := NewNRAResolver(nil)
	return &Engine{
		World:       world,
		Characters:  characters,
		AI:          ai,
		Clients:     clients,
		Definitions: definitions,
		Cost:        NewCostEngine(characters),
		Target:      NewTargetResolver(world),
		NRA:         nra,
		Damage:      NewDamageMath(nil),
		Status:      NewStatusEngine(nra),
		Script:      NewScriptHooks(),
		Scheduler:   scheduler,
		Bus:         bus,
		Now:         now,
		contexts:    make(map[string]*SkillExecutionContext),
	}
}

func (e *Engine) publish(ctx context.Context, evt events.Event) {
	if e.Bus == nil {
		return
	}
	_ = e.Bus.PublishWithContext(ctx, evt)
}

// Activate implements the activate() operation.
func (e *Engine) Activate(ctx context.Context, source Combatant, def *SkillDefinition, activationObjectID, targetObjectID string, targetType TargetType) (*ActivatedAbility, error) {
	if def == nil {
		return nil, skillerr.New(skillerr.CodeGeneric, "skill not found")
	}

	now := e.Now()

	if source.CooldownUntil(def.ID.String()) > now {
		return nil, e.fail(ctx, source, def, "", skillerr.CodeCoolingDown, "skill is cooling down")
	}
	if source.StatusTime(StatusLockout) > now || source.StatusTime(StatusKnockback) > now {
		return nil, e.fail(ctx, source, def, "", skillerr.CodeConditionRestrict, "source locked out or knocked back")
	}

	if existing := source.ActivatedAbility(); existing != nil && existing.IsActive() {
		if existing.Phase == PhaseActivating || existing.Phase == PhaseTargeting {
			e.cancelActivation(ctx, source, existing, CompletedCancelledNoCooldown)
		} else {
			return nil, nil // fail silently: mid-execution activation cannot be replaced
		}
	}

	a := NewActivatedAbility(source.GetID(), def, now)
	a.SourcePosition = source.Position()
	a.SourceFacing = source.Facing()
	a.PrimaryTargetID = targetObjectID

	if ok, err := e.Script.RunValidateActivation(ctx, source, a); err != nil {
		return nil, err
	} else if !ok {
		return nil, e.fail(ctx, source, def, a.ActivationID, skillerr.CodeActivationFailure, "script rejected activation")
	}

	execCtx := NewSkillExecutionContext(a, a.SourcePosition)
	e.contexts[a.ActivationID] = execCtx

	source.SetActivatedAbility(a)

	immediate := def.Activation == ActivationInstant || (def.ChargeTimeMS == 0 && (def.Activation == ActivationSpecial || def.Activation == ActivationOnToggle))
	if immediate {
		a.FastTrack = true
		execCtx.FastTracked = true
	} else {
		e.publish(ctx, NewSkillActivated(source.GetID(), def.ID, a.ActivationID, def.ChargeTimeMS, def.EffectiveMaxUse(), def.Category, 1, 1))
	}

	if immediate {
		if _, err := e.Execute(ctx, source, a.ActivationID, targetObjectID); err != nil {
			return a, err
		}
		return a, nil
	}

	chargeEnds := a.ChargeEndsUS
	token := a.CancelToken
	if def.Activation == ActivationSpecial || def.Activation == ActivationOnToggle {
		e.Scheduler.ScheduleAt(chargeEnds, func() {
			if source.ActivatedAbility() == nil || source.ActivatedAbility().CancelToken != token {
				return
			}
			_, _ = e.Execute(ctx, source, a.ActivationID, a.PrimaryTargetID)
		})
	}
	if def.AutoCancelMS > 0 {
		e.Scheduler.ScheduleAt(chargeEnds+def.AutoCancelMS*1000, func() {
			cur := source.ActivatedAbility()
			if cur == nil || cur.CancelToken != token || cur.Phase != PhaseActivating && cur.Phase != PhaseTargeting {
				return
			}
			e.cancelActivation(ctx, source, cur, CompletedCancelledCooldown)
		})
	}

	return a, nil
}

// Retarget implements the target() operation.
func (e *Engine) Retarget(source Combatant, newTargetObjectID string) bool {
	a := source.ActivatedAbility()
	if a == nil || a.Phase == PhaseExecuting || a.Phase == PhaseCompleting {
		return false
	}
	a.PrimaryTargetID = newTargetObjectID
	return true
}

// Execute implements the execute() operation.
func (e *Engine) Execute(ctx context.Context, source Combatant, activationID, targetObjectID string) (*ProcessingSkill, error) {
	a := source.ActivatedAbility()
	if a == nil || a.ActivationID != activationID {
		if sp := e.findSpecial(source, activationID); sp != nil {
			a = sp
		} else {
			return nil, skillerr.New(skillerr.CodeGenericUse, "no such activation")
		}
	}
	if a.Phase == PhaseExecuting || a.Phase == PhaseCompleting || a.Phase == PhaseDone {
		return nil, skillerr.New(skillerr.CodeActionRetry, "already executing")
	}
	if !source.IsAlive() {
		return nil, e.fail(ctx, source, a.Definition, a.ActivationID, skillerr.CodeConditionRestrict, "source is dead")
	}

	def := a.Definition
	if targetObjectID != "" {
		a.PrimaryTargetID = targetObjectID
	}

	var primary Combatant
	var err error
	if a.PrimaryTargetID != "" && e.World != nil {
		primary, err = e.World.GetEntityByEntityID(ctx, a.PrimaryTargetID)
		if err != nil {
			primary = nil
		}
	}

	if def.TargetType != TargetSource && def.TargetType != "" {
		if err := e.Target.ValidatePrimary(source, primary, def); err != nil {
			return nil, e.failAndRetire(ctx, source, a, skillerr.CodeOf(err), err.Error())
		}
	}

	a.Phase = PhaseExecuting
	a.ExecutedAtUS = e.Now()

	proc := NewProcessingSkill(a, a.ExecutedAtUS)
	if ok, err := e.Script.RunValidateExecution(ctx, source, a, proc); err != nil {
		return nil, err
	} else if !ok {
		return nil, e.failAndRetire(ctx, source, a, skillerr.CodeActivationFailure, "script rejected execution")
	}

	if err := e.Cost.Check(source, def); err != nil {
		return nil, e.failAndRetire(ctx, source, a, skillerr.CodeOf(err), err.Error())
	}
	if ok, err := e.Script.RunAdjustCost(ctx, source, a, proc); err != nil {
		return nil, err
	} else if !ok {
		return nil, e.failAndRetire(ctx, source, a, skillerr.CodeGenericCost, "script rejected cost")
	}
	hpCost, mpCost, err := e.Cost.Pay(ctx, source, def)
	if err != nil {
		return nil, e.failAndRetire(ctx, source, a, skillerr.CodeOf(err), err.Error())
	}

	switch def.Category {
	case CategorySwitch:
		on := !source.SwitchSkills()[def.ID.String()]
		source.SetSwitchSkill(def.ID.String(), on)
		e.publish(ctx, NewSkillSwitch(source.GetID(), def.ID, on))
		e.finalize(ctx, source, a, CompletedDone)
		return proc, nil
	case CategoryPassive:
		return nil, e.failAndRetire(ctx, source, a, skillerr.CodeGenericUse, "passive skills cannot execute")
	}

	targets, err := e.Target.GatherArea(ctx, source, primary, def)
	if err != nil {
		targets = nil
	}
	if primary != nil {
		proc.Targets = append([]string{primary.GetID()}, targets...)
	} else {
		proc.Targets = targets
	}

	e.publish(ctx, NewSkillExecuted(source.GetID(), def.ID, a.ActivationID, a.PrimaryTargetID, def.CooldownTimeMS, 0, hpCost, mpCost))

	token := a.CancelToken

	if def.IsProjectile() && primary != nil {
		travelUS := projectileTravelTimeUS(a.SourcePosition.Distance(primary.Position()), def.ProjectileSpeed)
		a.CompletesAtUS = a.ExecutedAtUS + travelUS
		e.Scheduler.ScheduleAt(a.CompletesAtUS, func() {
			if source.ActivatedAbility() == nil || source.ActivatedAbility().CancelToken != token {
				return
			}
			e.projectileHit(ctx, source, proc)
		})
		return proc, nil
	}

	completeAt := a.ExecutedAtUS + def.HitDelayMS*1000 + def.CompleteDelayMS*1000
	if !a.FastTrack && def.CompleteDelayMS > 0 {
		completeAt += 500000 // 500ms processing stagger on non-fast-tracked complete-delay skills
	}
	a.CompletesAtUS = completeAt

	e.Scheduler.ScheduleAt(completeAt, func() {
		if source.ActivatedAbility() == nil || source.ActivatedAbility().CancelToken != token {
			return
		}
		e.completeExecution(ctx, source, proc)
	})

	return proc, nil
}

// projectileTravelTimeUS computes how long a projectile takes to cross
// distance world-units at projectileSpeed (units/sec *10), floored at 1us so
// a zero-distance or zero-speed projectile still resolves on its own tick
// rather than piggy-backing on the activation tick.
func projectileTravelTimeUS(distance, projectileSpeed float64) int64 {
	if projectileSpeed <= 0 {
		return 1
	}
	travelUS := distance / (projectileSpeed * 10) * 1e6
	if travelUS < 1 {
		travelUS = 1
	}
	return int64(travelUS)
}

// projectileHit is the travel-time-scheduled callback a projectile skill
// resolves on, distinct from completeExecution's hit-delay callback so that
// a target's counter/guard/dodge is checked against the projectile's actual
// arrival rather than against the moment it was launched.
func (e *Engine) projectileHit(ctx context.Context, source Combatant, proc *ProcessingSkill) {
	e.completeExecution(ctx, source, proc)
}

// completeExecution resolves per-target damage/status/knockback for every
// gathered target, then finalizes the activation (the
// ProcessSkillResult/ProcessSkillResultFinal/FinalizeSkillExecution chain).
func (e *Engine) completeExecution(ctx context.Context, source Combatant, proc *ProcessingSkill) {
	a := proc.Activation
	def := a.Definition
	execCtx := e.contexts[a.ActivationID]

	if execCtx != nil {
		if ok, err := e.Script.RunPreAction(ctx, source, proc, execCtx); err != nil || !ok {
			execCtx.Fizzle(string(skillerr.CodeGeneric))
		}
	}

	totalGeneric := 0
	addGeneric := func(r SkillTargetResult) {
		if r.Damage1Type == ChannelGeneric {
			totalGeneric += r.Damage1
		}
	}

	for i, targetID := range proc.Targets {
		isPrimary := i == 0
		target, err := e.World.GetEntityByEntityID(ctx, targetID)
		if err != nil || target == nil {
			continue
		}

		result := e.resolveHit(ctx, source, target, def, proc, isPrimary, execCtx)
		proc.AddResult(result)
		addGeneric(result)

		if e.AI != nil {
			_ = e.AI.CombatSkillHit(ctx, targetID, result)
		}

		// A reflect from a non-source (i.e. non-primary) AoE target sends one
		// additional hit back at the original source, each with its own
		// damage roll, on top of the rewired hit already recorded above.
		if !isPrimary && result.NRA == NRAReflect {
			extra := e.resolveHit(ctx, target, source, def, proc, false, execCtx)
			proc.AddResult(extra)
			addGeneric(extra)

			if e.AI != nil {
				_ = e.AI.CombatSkillHit(ctx, source.GetID(), extra)
			}
		}
	}

	if def.HPDrainPercent != 0 {
		drain := HPDrain(totalGeneric, def.HPDrainPercent, 1.0)
		if drain < 0 {
			source.HP().Deduct(-drain)
		} else {
			source.HP().Add(drain)
		}
	}

	e.publish(ctx, NewSkillReports(source.GetID(), def.ID, a.ActivationID, proc.Results))

	if execCtx != nil {
		e.Script.RunPostAction(ctx, source, proc, execCtx)
	}

	e.finalize(ctx, source, a, CompletedDone)
}

// resolveHit runs NRA, the defendable counter/guard/dodge check, damage
// math, pursuit/technical bonus damage, and status application for one
// target.
func (e *Engine) resolveHit(ctx context.Context, source, target Combatant, def *SkillDefinition, proc *ProcessingSkill, isPrimary bool, execCtx *SkillExecutionContext) SkillTargetResult {
	result := SkillTargetResult{TargetID: target.GetID(), IsPrimary: isPrimary}

	outcome, err := e.NRA.Resolve(ctx, target, def.Dependency, def.Affinity, false)
	if err != nil {
		result.HitAvoided = true
		result.Damage1Type = ChannelMiss
		result.FailureCode = string(skillerr.CodeGeneric)
		return result
	}
	ApplyFlags(&result, outcome, def.Dependency, target.CorrectTable()["aspect.barrier"] > 0)

	effectiveSource, effectiveTarget := source, target
	if outcome == NRAReflect {
		effectiveSource, effectiveTarget = target, source
		result.RewiredFromID = target.GetID()
	}

	// Tie-break: the primary NRA check runs first and rewires reflects above;
	// only once a hit survives NRA unscathed does the target get a chance to
	// counter, guard, or dodge it. Both the travel-delayed projectileHit path
	// and the instant completeExecution path call resolveHit at actual hit
	// time, so a projectile's counter/dodge window is checked on arrival, not
	// on launch.
	reaction := defensiveReaction{}
	if outcome == NRANone {
		reaction = e.resolveDefense(effectiveTarget, def)
	}

	if reaction.Dodged {
		result.HitAvoided = true
		result.Damage1Type = ChannelMiss
		result.Flags |= FlagDodged
		e.consumeDefensiveReaction(ctx, effectiveTarget, reaction.Ability)
		return result
	}

	guardModifierPercent := 0
	if reaction.Guarded {
		guardModifierPercent = reaction.GuardModifierPercent
		result.GuardModifierPercent = guardModifierPercent
		result.Flags |= FlagGuarded
		e.consumeDefensiveReaction(ctx, effectiveTarget, reaction.Ability)
	}
	if reaction.Countered {
		e.consumeDefensiveReaction(ctx, effectiveTarget, reaction.Ability)
		if execCtx != nil && execCtx.CanChainCounter() {
			e.spawnCounterAttack(ctx, effectiveTarget, effectiveSource, reaction.Ability, execCtx)
		}
	}

	isCrit, isLimit := false, false
	switch def.Formula {
	case FormulaNone:
		result.Damage1Type = ChannelNone
	case FormulaDmgStatic, FormulaDmgPercent, FormulaDmgMaxPercent, FormulaDmgSourcePercent:
		dmg := StaticOrPercent(def.Formula, def.Modifier1, effectiveSource, effectiveTarget)
		if outcome == NRAAbsorb {
			effectiveTarget.HP().Add(dmg)
			result.Damage1 = dmg
			result.Damage1Type = ChannelHealing
		} else if outcome != NRANull {
			effectiveTarget.HP().Deduct(dmg)
			result.Damage1 = dmg
			result.Damage1Type = ChannelGeneric
		} else {
			result.Damage1Type = ChannelNone
		}
	case FormulaHealStatic, FormulaHealPercent:
		heal := StaticOrPercent(def.Formula, def.Modifier1, effectiveSource, effectiveTarget)
		effectiveTarget.HP().Add(heal)
		result.Damage1 = heal
		result.Damage1Type = ChannelHealing
	default:
		lbChancePercent := effectiveSource.CorrectTable()["limit_break.chance"]
		var critErr error
		isCrit, isLimit, critErr = e.Damage.CritLevel(ctx, effectiveSource, effectiveTarget, lbChancePercent)
		if critErr != nil {
			isCrit, isLimit = false, false
		}
		dmg, dmgErr := e.Damage.CalculateNormal(ctx, effectiveSource, effectiveTarget, NormalDamageInput{
			Dependency:          def.Dependency,
			Affinity:            def.Affinity,
			ModifierPercent:     float64(def.Modifier1),
			GuardModifier:       float64(guardModifierPercent) / 100,
			IsCrit:              isCrit,
			IsLimitBreak:        isLimit,
			LBDamagePercent:     100,
			IsPrimary:           isPrimary,
			AoEReductionPercent: def.AoEReductionPercent,
		})
		if dmgErr != nil {
			dmg = 0
		}
		if isCrit {
			result.Flags |= FlagCritical
		}
		if isLimit {
			result.Flags |= FlagLimitBreak
		}

		if outcome == NRAAbsorb {
			effectiveTarget.HP().Add(dmg)
			result.Damage1 = dmg
			result.Damage1Type = ChannelHealing
		} else if outcome != NRANull {
			effectiveTarget.HP().Deduct(dmg)
			result.Damage1 = dmg
			result.Damage1Type = ChannelGeneric
		} else {
			result.Damage1Type = ChannelNone
		}

		if result.Damage1Type == ChannelGeneric && result.Damage1 > 0 {
			e.applyPursuitAndTechnical(ctx, effectiveSource, effectiveTarget, def, isLimit, &result)
		}
	}

	if def.KnockbackModifier != 0 && def.KnockbackType != KnockbackNone {
		e.applyKnockback(effectiveTarget, def, result.Damage1Type == ChannelGeneric && result.Damage1 > 0)
		result.KnockbackApplied = true
		result.KnockbackDistance = def.KnockbackDistance
		result.Flags |= FlagKnockback
	}

	opts := RollOptions{Dependency: def.Dependency, KnockbackOccurred: result.KnockbackApplied, NowUS: e.Now()}
	applications, err := e.Status.RollCandidates(ctx, effectiveSource, effectiveTarget, def.AddStatuses, opts)
	if err == nil {
		applications = DropCancelOnDeath(applications, def.AddStatuses, !effectiveTarget.IsAlive())
		for _, app := range applications {
			if !app.Applied {
				continue
			}
			durationMS, cancelMask := e.statusDurationAndMask(ctx, app.StatusID)
			ApplyResult(effectiveTarget, app, durationMS, cancelMask, opts.NowUS)
			result.EffectCancel |= cancelMask
			if app.AilmentDamage > 0 {
				result.AilmentType = app.StatusID.String()
				result.AilmentDamage = app.AilmentDamage
				result.AilmentDuration = durationMS * 1000
				continue
			}
			result.StatusesApplied = append(result.StatusesApplied, app.StatusID.String())
		}
	}

	return result
}

// applyPursuitAndTechnical rolls the pursuit and technical bonus-damage
// add-ons on top of a normal hit and applies whatever lands. Pursuit
// re-resists its own (possibly overridden) affinity through the NRA
// resolver before it is allowed to connect; technical damage always follows
// the base hit once it has landed.
func (e *Engine) applyPursuitAndTechnical(ctx context.Context, source, target Combatant, def *SkillDefinition, isLimitBreak bool, result *SkillTargetResult) {
	sourceCorrect := source.CorrectTable()

	pursuitAffinity := def.Affinity
	prevented := false
	if pursuitAffinity != "" {
		pursuitOutcome, err := e.NRA.Resolve(ctx, target, def.Dependency, pursuitAffinity, false)
		if err == nil && pursuitOutcome != NRANone {
			prevented = true
		}
	}
	pursuitDmg, err := e.Damage.Pursuit(ctx, source, result.Damage1, sourceCorrect["pursuit.rate"], sourceCorrect["pursuit.power"], prevented)
	if err == nil && pursuitDmg > 0 {
		target.HP().Deduct(pursuitDmg)
		result.PursuitDamage = pursuitDmg
		result.PursuitAffinity = pursuitAffinity
	}

	techDmg, err := e.Damage.Technical(ctx, result.Damage1, sourceCorrect["technical.rate"], sourceCorrect["technical.power"], isLimitBreak)
	if err == nil && techDmg > 0 {
		target.HP().Deduct(techDmg)
		result.TechnicalDamage = techDmg
	}
}

// defensiveReaction is the outcome of checking whether a target's already-
// charged counter, guard, or dodge response applies to an incoming
// defendable hit.
type defensiveReaction struct {
	Dodged               bool
	Guarded              bool
	Countered            bool
	GuardModifierPercent int
	Ability              *ActivatedAbility
}

// resolveDefense checks target's own in-progress activation: if it is a
// counter/guard/dodge skill that finished charging before now, it reacts to
// def rather than letting it land untouched. A target's reaction must have
// been charged (not just activated) before the hit to count, matching the
// rule that counters and dodges are charged ahead of the hit that provokes
// them.
func (e *Engine) resolveDefense(target Combatant, def *SkillDefinition) defensiveReaction {
	if !def.Defendable() {
		return defensiveReaction{}
	}
	reaction := target.ActivatedAbility()
	if reaction == nil || !reaction.IsActive() || reaction.ChargeEndsUS > e.Now() {
		return defensiveReaction{}
	}
	switch reaction.Definition.Action {
	case ActionCounter:
		return defensiveReaction{Countered: true, Ability: reaction}
	case ActionGuard:
		return defensiveReaction{Guarded: true, GuardModifierPercent: reaction.Definition.Modifier1, Ability: reaction}
	case ActionDodge:
		return defensiveReaction{Dodged: true, Ability: reaction}
	default:
		return defensiveReaction{}
	}
}

// consumeDefensiveReaction retires the activation that just reacted to a
// hit, the same way any other completed skill retires.
func (e *Engine) consumeDefensiveReaction(ctx context.Context, owner Combatant, a *ActivatedAbility) {
	if a == nil {
		return
	}
	e.finalize(ctx, owner, a, CompletedDone)
}

// spawnCounterAttack turns a successful counter reaction into a fresh,
// fast-tracked activation of the counterer's own counter-skill aimed back at
// the original attacker, chained onto execCtx so the engine can cap how deep
// counter-attacks may recurse.
func (e *Engine) spawnCounterAttack(ctx context.Context, counterer, target Combatant, counterSkill *ActivatedAbility, execCtx *SkillExecutionContext) {
	now := e.Now()
	counter := counterSkill.Clone(now)
	counter.FastTrack = true
	counter.SourcePosition = counterer.Position()
	counter.SourceFacing = counterer.Facing()
	counter.PrimaryTargetID = target.GetID()

	counterer.SetActivatedAbility(counter)
	e.contexts[counter.ActivationID] = NewSkillExecutionContext(counter, counter.SourcePosition)
	execCtx.AddCounter(counter)

	_, _ = e.Execute(ctx, counterer, counter.ActivationID, target.GetID())
}

// statusDurationAndMask resolves a status's authored duration and cancel
// mask through the definition store. Unresolvable statuses (no store wired,
// or a lookup miss) get a conservative default duration and CancelOnDeath,
// since the engine would otherwise leave them active forever.
func (e *Engine) statusDurationAndMask(ctx context.Context, statusID *core.Ref) (int64, EffectCancelMask) {
	const defaultDurationMS = 30_000
	if e.Definitions == nil {
		return defaultDurationMS, CancelOnDeath
	}
	data, err := e.Definitions.GetStatusData(ctx, statusID)
	if err != nil || data == nil {
		return defaultDurationMS, CancelOnDeath
	}
	mask := EffectCancelMask(0)
	if data.CancelOnDeath {
		mask |= CancelOnDeath
	}
	return data.DurationMS, mask
}

// applyKnockback sets the target's knockback status-time window.
// Positional displacement math is left to the world layer (it needs the
// zone's collision data); the engine only records that a knockback
// occurred and for how long the window lasts.
func (e *Engine) applyKnockback(target Combatant, def *SkillDefinition, damaged bool) {
	if target.StatusTime(StatusKnockback) > e.Now() {
		return // already in an active knockback window; don't shorten or restart it
	}
	windowEnd := e.Now() + 2_000_000 // 2s knockback window
	if target.StatusTime(StatusKnockback) < windowEnd {
		target.SetStatusTime(StatusKnockback, windowEnd)
	}
}

// Cancel implements the cancel() operation.
func (e *Engine) Cancel(ctx context.Context, source Combatant, activationID string, hitCancel bool) bool {
	a := source.ActivatedAbility()
	if a == nil || a.ActivationID != activationID {
		return false
	}

	if a.Definition.Activation == ActivationOnToggle {
		on := !source.SwitchSkills()[a.Definition.ID.String()]
		source.SetSwitchSkill(a.Definition.ID.String(), on)
		e.publish(ctx, NewSkillSwitch(source.GetID(), a.Definition.ID, on))
	}

	mode := CompletedCancelledNoCooldown
	if a.ExecutedAtUS > 0 {
		mode = CompletedCancelledCooldown
	}

	if hitCancel {
		e.publish(ctx, NewSkillReports(source.GetID(), a.Definition.ID, a.ActivationID, nil))
	}

	e.cancelActivation(ctx, source, a, mode)
	return true
}

// cancelActivation tears down an activation without running its execution
// pipeline, still honoring the cooldown-on-execute-count rule.
func (e *Engine) cancelActivation(ctx context.Context, source Combatant, a *ActivatedAbility, mode CompletionMode) {
	a.Phase = PhaseCancelled
	if mode == CompletedCancelledCooldown && a.Definition.CooldownTimeMS > 0 {
		source.SetCooldown(a.Definition.ID.String(), e.Now()+a.Definition.CooldownTimeMS*1000)
	}
	if source.ActivatedAbility() == a {
		source.SetActivatedAbility(nil)
	}
	delete(e.contexts, a.ActivationID)

	e.publish(ctx, NewSkillCompleted(source.GetID(), a.Definition.ID, a.ActivationID, a.Definition.CooldownTimeMS, 1, mode))
}

// finalize retires a completed activation, rotating into a fresh clone when
// uses remain, per the multi-use rotation rule.
func (e *Engine) finalize(ctx context.Context, source Combatant, a *ActivatedAbility, mode CompletionMode) {
	a.UsesRemaining--
	def := a.Definition

	if a.UsesRemaining > 0 {
		next := a.Clone(e.Now())
		source.SetActivatedAbility(next)
		e.contexts[next.ActivationID] = NewSkillExecutionContext(next, source.Position())
		e.publish(ctx, NewSkillCompleted(source.GetID(), def.ID, a.ActivationID, 0, 1, mode))
		return
	}

	a.Phase = PhaseDone
	if def.CooldownTimeMS > 0 {
		source.SetCooldown(def.ID.String(), e.Now()+def.CooldownTimeMS*1000)
	}
	if source.ActivatedAbility() == a {
		source.SetActivatedAbility(nil)
	}
	delete(e.contexts, a.ActivationID)

	if e.AI != nil {
		_ = e.AI.CombatSkillComplete(ctx, source.GetID(), a.ActivationID)
	}
	e.publish(ctx, NewSkillCompleted(source.GetID(), def.ID, a.ActivationID, def.CooldownTimeMS, 1, mode))
}

// failAndRetire fails and unlinks an activation after activation but before
// or during execution, per the cancel-on-execute rule: INSTANT skills
// unlink silently, charged skills send a COMPLETE with mode=1.
func (e *Engine) failAndRetire(ctx context.Context, source Combatant, a *ActivatedAbility, code skillerr.Code, msg string) error {
	e.publish(ctx, NewSkillFailed(source.GetID(), a.Definition.ID, a.ActivationID, string(code)))

	if a.Definition.Activation == ActivationInstant {
		if source.ActivatedAbility() == a {
			source.SetActivatedAbility(nil)
		}
	} else {
		e.publish(ctx, NewSkillCompleted(source.GetID(), a.Definition.ID, a.ActivationID, 0, 1, CompletedCancelledCooldown))
		if source.ActivatedAbility() == a {
			source.SetActivatedAbility(nil)
		}
	}
	delete(e.contexts, a.ActivationID)
	return skillerr.New(code, msg)
}

// fail publishes a SkillFailed for a request that never reached activation
// (no ActivatedAbility exists yet to unlink).
func (e *Engine) fail(ctx context.Context, source Combatant, def *SkillDefinition, activationID string, code skillerr.Code, msg string) error {
	e.publish(ctx, NewSkillFailed(source.GetID(), def.ID, activationID, string(code)))
	return skillerr.New(code, msg)
}

// findSpecial always returns nil: special (non-primary-slot) activations,
// keyed by int64 on the Combatant, are not looked up by their string
// activation ID.
func (e *Engine) findSpecial(source Combatant, activationID string) *ActivatedAbility {
	return nil
}

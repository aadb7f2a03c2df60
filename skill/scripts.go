package skill

import (
	"context"
	"fmt"
	"sync"
)

// HookResult is the tri-state return value every script hook uses: success,
// expected (silent) failure, or an unexpected value that gets logged.
type HookResult int

// Hook results.
const (
	HookSuccess HookResult = 0
	HookExpectedFailure HookResult = 1
)

// HookSettings enumerates which of a script's hooks actually exist, as
// declared by its prepare() call. The engine only invokes hooks a script
// opted into.
type HookSettings struct {
	HasValidateActivation bool
	HasValidateExecution  bool
	HasAdjustCost         bool
	HasPreAction          bool
	HasPostAction         bool
}

// Script is one FunctionID-bound skill-logic implementation. Production
// scripts are loaded from a scripts directory at startup; tests register
// Go closures directly via RegisterScript.
type Script struct {
	FunctionID string
	Settings   HookSettings

	ValidateActivation func(ctx context.Context, source Combatant, a *ActivatedAbility) (HookResult, error)
	ValidateExecution  func(ctx context.Context, source Combatant, a *ActivatedAbility, proc *ProcessingSkill) (HookResult, error)
	AdjustCost         func(ctx context.Context, source Combatant, a *ActivatedAbility, proc *ProcessingSkill) (HookResult, error)
	PreAction          func(ctx context.Context, source Combatant, proc *ProcessingSkill, execCtx *SkillExecutionContext) (HookResult, error)
	PostAction         func(ctx context.Context, source Combatant, proc *ProcessingSkill, execCtx *SkillExecutionContext) (HookResult, error)
}

// ScriptHooks is the FunctionID-keyed registry of loaded scripts, invoked at
// each stage of skill processing that has a hook point.
type ScriptHooks struct {
	mu      sync.RWMutex
	scripts map[string]*Script

	// Log receives (functionID, hook, code) for any hook return that is
	// neither success nor an expected failure. Nil disables logging.
	Log func(functionID, hook string, code HookResult)
}

// NewScriptHooks creates an empty registry.
func NewScriptHooks() *ScriptHooks {
	return &ScriptHooks{scripts: make(map[string]*Script)}
}

// RegisterScript installs s under its FunctionID, replacing any prior
// registration. Production startup calls this once per discovered
// skillLogic file; tests call it directly with Go closures.
func (h *ScriptHooks) RegisterScript(s *Script) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.scripts[s.FunctionID] = s
}

// Get returns the script registered for functionID, or nil if none exists.
func (h *ScriptHooks) Get(functionID string) *Script {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.scripts[functionID]
}

// logUnexpected reports a hook return value to Log when it is neither
// success nor an expected failure.
func (h *ScriptHooks) logUnexpected(functionID, hook string, code HookResult) {
	if code == HookSuccess || code == HookExpectedFailure {
		return
	}
	if h.Log != nil {
		h.Log(functionID, hook, code)
	}
}

// RunValidateActivation invokes functionID's validateActivation hook, if the
// script declares one. ok is false only on an explicit non-success return
// (expected or otherwise); callers should fail the activation when ok is
// false.
func (h *ScriptHooks) RunValidateActivation(ctx context.Context, source Combatant, a *ActivatedAbility) (ok bool, err error) {
	s := h.Get(a.Definition.FunctionID)
	if s == nil || !s.Settings.HasValidateActivation || s.ValidateActivation == nil {
		return true, nil
	}
	code, err := s.ValidateActivation(ctx, source, a)
	if err != nil {
		return false, fmt.Errorf("skill: validateActivation(%s): %w", s.FunctionID, err)
	}
	h.logUnexpected(s.FunctionID, "validateActivation", code)
	return code == HookSuccess, nil
}

// RunValidateExecution invokes functionID's validateExecution hook.
func (h *ScriptHooks) RunValidateExecution(ctx context.Context, source Combatant, a *ActivatedAbility, proc *ProcessingSkill) (ok bool, err error) {
	s := h.Get(a.Definition.FunctionID)
	if s == nil || !s.Settings.HasValidateExecution || s.ValidateExecution == nil {
		return true, nil
	}
	code, err := s.ValidateExecution(ctx, source, a, proc)
	if err != nil {
		return false, fmt.Errorf("skill: validateExecution(%s): %w", s.FunctionID, err)
	}
	h.logUnexpected(s.FunctionID, "validateExecution", code)
	return code == HookSuccess, nil
}

// RunAdjustCost invokes functionID's adjustCost hook. proc is mutable during
// this call; a non-success return reports ok=false, and Execute then fails
// the skill before any cost is paid.
func (h *ScriptHooks) RunAdjustCost(ctx context.Context, source Combatant, a *ActivatedAbility, proc *ProcessingSkill) (ok bool, err error) {
	s := h.Get(a.Definition.FunctionID)
	if s == nil || !s.Settings.HasAdjustCost || s.AdjustCost == nil {
		return true, nil
	}
	code, err := s.AdjustCost(ctx, source, a, proc)
	if err != nil {
		return false, fmt.Errorf("skill: adjustCost(%s): %w", s.FunctionID, err)
	}
	h.logUnexpected(s.FunctionID, "adjustCost", code)
	return code == HookSuccess, nil
}

// RunPreAction invokes functionID's preAction hook. A hook may request
// fizzle by calling execCtx.Fizzle itself; RunPreAction only reports
// whether the hook executed without rejecting.
func (h *ScriptHooks) RunPreAction(ctx context.Context, source Combatant, proc *ProcessingSkill, execCtx *SkillExecutionContext) (ok bool, err error) {
	s := h.Get(proc.Activation.Definition.FunctionID)
	if s == nil || !s.Settings.HasPreAction || s.PreAction == nil {
		return true, nil
	}
	code, err := s.PreAction(ctx, source, proc, execCtx)
	if err != nil {
		return false, fmt.Errorf("skill: preAction(%s): %w", s.FunctionID, err)
	}
	h.logUnexpected(s.FunctionID, "preAction", code)
	return code == HookSuccess, nil
}

// RunPostAction invokes functionID's postAction hook. postAction cannot
// change the skill's outcome; errors are logged but never propagated.
func (h *ScriptHooks) RunPostAction(ctx context.Context, source Combatant, proc *ProcessingSkill, execCtx *SkillExecutionContext) {
	s := h.Get(proc.Activation.Definition.FunctionID)
	if s == nil || !s.Settings.HasPostAction || s.PostAction == nil {
		return
	}
	code, err := s.PostAction(ctx, source, proc, execCtx)
	if err != nil {
		h.logUnexpected(s.FunctionID, "postAction", HookResult(-1))
		return
	}
	h.logUnexpected(s.FunctionID, "postAction", code)
}

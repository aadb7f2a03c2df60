package skill

import (
	"github.com/google/uuid"

	"github.com/arczone/channelengine/core"
	"github.com/arczone/channelengine/spatial"
)

// ActivationPhase is where an ActivatedAbility currently sits in its
// lifecycle.
type ActivationPhase string

// Activation phases.
const (
	PhaseActivating ActivationPhase = "ACTIVATING" // charging, pre-target
	PhaseTargeting  ActivationPhase = "TARGETING"
	PhaseExecuting  ActivationPhase = "EXECUTING" // hit-delay / travel-time window
	PhaseCompleting ActivationPhase = "COMPLETING"
	PhaseDone       ActivationPhase = "DONE"
	PhaseCancelled  ActivationPhase = "CANCELLED"
)

// ActivatedAbility is the per-use mutable record tracking one activation of
// a skill from request through completion or cancellation.
type ActivatedAbility struct {
	ActivationID string // uuid, identifies this specific activation
	SourceID     string
	Definition   *SkillDefinition

	Phase ActivationPhase

	ActivatedAtUS int64
	ChargeEndsUS  int64
	ExecutedAtUS  int64
	CompletesAtUS int64

	SourcePosition spatial.Position
	SourceFacing   float64

	PrimaryTargetID string
	TargetPosition  spatial.Position

	UsesRemaining int // counts down from Definition.EffectiveMaxUse()

	// FastTrack is set when an instant-activation skill skips the charge
	// window entirely (the fast-track rule).
	FastTrack bool

	// CancelToken changes identity on every (re)activation slot reuse so a
	// previously scheduled callback can detect it now targets a stale
	// activation and no-op instead of acting on it.
	CancelToken string
}

// NewActivatedAbility creates a fresh activation record for def, starting in
// the ACTIVATING phase.
func NewActivatedAbility(sourceID string, def *SkillDefinition, nowUS int64) *ActivatedAbility {
	return &ActivatedAbility{
		ActivationID:  uuid.NewString(),
		SourceID:      sourceID,
		Definition:    def,
		Phase:         PhaseActivating,
		ActivatedAtUS: nowUS,
		ChargeEndsUS:  nowUS + def.ChargeTimeMS*1000,
		UsesRemaining: def.EffectiveMaxUse(),
		CancelToken:   uuid.NewString(),
	}
}

// Clone returns a new activation for a subsequent use of a multi-use skill,
// sharing the definition and source but getting a fresh activation identity
// and cancel token. The caller is responsible for decrementing
// UsesRemaining on the original before cloning.
func (a *ActivatedAbility) Clone(nowUS int64) *ActivatedAbility {
	clone := *a
	clone.ActivationID = uuid.NewString()
	clone.CancelToken = uuid.NewString()
	clone.Phase = PhaseActivating
	clone.ActivatedAtUS = nowUS
	clone.ChargeEndsUS = nowUS + a.Definition.ChargeTimeMS*1000
	clone.ExecutedAtUS = 0
	clone.CompletesAtUS = 0
	return &clone
}

// Ref returns a core.Ref identifying this activation's skill definition.
func (a *ActivatedAbility) Ref() *core.Ref {
	return a.Definition.ID
}

// IsActive reports whether the activation has not yet reached a terminal
// phase.
func (a *ActivatedAbility) IsActive() bool {
	return a.Phase != PhaseDone && a.Phase != PhaseCancelled
}

// HasUsesRemaining reports whether another use can be spent from this
// activation (multi-use skills only; single-use skills complete on first
// use).
func (a *ActivatedAbility) HasUsesRemaining() bool {
	return a.UsesRemaining > 0
}

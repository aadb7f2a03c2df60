package skill

import (
	"github.com/arczone/channelengine/core"
	"github.com/arczone/channelengine/events"
)

// Outbound topic refs, one per discriminated message type. Subscribers and
// publishers must share these exact ref instances: the bus matches handlers
// to events by ref identity, not by value.
var (
	RefSkillActivated       = core.MustNewRef(core.RefInput{Module: "skill", Type: "event", Value: "activated"})
	RefSkillExecuted        = core.MustNewRef(core.RefInput{Module: "skill", Type: "event", Value: "executed"})
	RefSkillExecutedInstant = core.MustNewRef(core.RefInput{Module: "skill", Type: "event", Value: "executed_instant"})
	RefSkillCompleted       = core.MustNewRef(core.RefInput{Module: "skill", Type: "event", Value: "completed"})
	RefSkillFailed          = core.MustNewRef(core.RefInput{Module: "skill", Type: "event", Value: "failed"})
	RefSkillReports         = core.MustNewRef(core.RefInput{Module: "skill", Type: "event", Value: "reports"})
	RefSkillSwitch          = core.MustNewRef(core.RefInput{Module: "skill", Type: "event", Value: "switch"})
)

// CompletionMode distinguishes why a SkillCompleted was emitted.
type CompletionMode int

// Completion modes, carried on SkillCompleted.mode.
const (
	CompletedDone                CompletionMode = 0
	CompletedCancelledCooldown   CompletionMode = 1
	CompletedCancelledNoCooldown CompletionMode = 2
)

// SkillActivated is published when a charged skill begins its charge
// window (or an instant/special skill begins execution immediately).
type SkillActivated struct {
	*events.BaseEvent

	Source                  string
	SkillID                 *core.Ref
	ActivationID            string
	ChargedTimeMS           int64
	MaxUseCount             int
	Category                Category
	ChargeMoveSpeed         float64
	ChargeCompleteMoveSpeed float64
}

// NewSkillActivated builds a SkillActivated event ready to publish.
func NewSkillActivated(source string, skillID *core.Ref, activationID string, chargedTimeMS int64, maxUseCount int, category Category, chargeSpeed, chargeCompleteSpeed float64) *SkillActivated {
	return &SkillActivated{
		BaseEvent:               events.NewBaseEvent(RefSkillActivated),
		Source:                  source,
		SkillID:                 skillID,
		ActivationID:            activationID,
		ChargedTimeMS:           chargedTimeMS,
		MaxUseCount:             maxUseCount,
		Category:                category,
		ChargeMoveSpeed:         chargeSpeed,
		ChargeCompleteMoveSpeed: chargeCompleteSpeed,
	}
}

// SkillExecuted is published when a charged skill transitions from charging
// into its hit/travel-time window.
type SkillExecuted struct {
	*events.BaseEvent

	Source         string
	SkillID        *core.Ref
	ActivationID   string
	Target         string
	CooldownTimeMS int64
	LockOutTimeMS  int64
	HPCost         int
	MPCost         int
	RushStart      *core.Ref // set only for RUSH actions with a dash destination marker
	HardStrike     bool
}

// NewSkillExecuted builds a SkillExecuted event ready to publish.
func NewSkillExecuted(source string, skillID *core.Ref, activationID, target string, cooldownMS, lockOutMS int64, hpCost, mpCost int) *SkillExecuted {
	return &SkillExecuted{
		BaseEvent:      events.NewBaseEvent(RefSkillExecuted),
		Source:         source,
		SkillID:        skillID,
		ActivationID:   activationID,
		Target:         target,
		CooldownTimeMS: cooldownMS,
		LockOutTimeMS:  lockOutMS,
		HPCost:         hpCost,
		MPCost:         mpCost,
	}
}

// SkillExecutedInstant is published instead of SkillActivated+SkillExecuted
// for INSTANT skills, which have no separate charge phase. ErrorCode is
// empty on success.
type SkillExecutedInstant struct {
	*events.BaseEvent

	ErrorCode      string
	Source         string
	SkillID        *core.Ref
	Target         string
	CooldownTimeMS int64
	HPCost         int
	MPCost         int
}

// NewSkillExecutedInstant builds a SkillExecutedInstant event ready to publish.
func NewSkillExecutedInstant(errorCode, source string, skillID *core.Ref, target string, cooldownMS int64, hpCost, mpCost int) *SkillExecutedInstant {
	return &SkillExecutedInstant{
		BaseEvent:      events.NewBaseEvent(RefSkillExecutedInstant),
		ErrorCode:      errorCode,
		Source:         source,
		SkillID:        skillID,
		Target:         target,
		CooldownTimeMS: cooldownMS,
		HPCost:         hpCost,
		MPCost:         mpCost,
	}
}

// SkillCompleted is published when an activation reaches its terminal state,
// whether by finishing normally or being cancelled.
type SkillCompleted struct {
	*events.BaseEvent

	Source         string
	SkillID        *core.Ref
	ActivationID   string
	CooldownTimeMS int64
	MovementSpeed  float64
	Mode           CompletionMode
}

// NewSkillCompleted builds a SkillCompleted event ready to publish.
func NewSkillCompleted(source string, skillID *core.Ref, activationID string, cooldownMS int64, movementSpeed float64, mode CompletionMode) *SkillCompleted {
	return &SkillCompleted{
		BaseEvent:      events.NewBaseEvent(RefSkillCompleted),
		Source:         source,
		SkillID:        skillID,
		ActivationID:   activationID,
		CooldownTimeMS: cooldownMS,
		MovementSpeed:  movementSpeed,
		Mode:           mode,
	}
}

// SkillFailed is published when a skill request is rejected before it could
// take effect.
type SkillFailed struct {
	*events.BaseEvent

	Source       string
	SkillID      *core.Ref
	ActivationID string
	ErrorCode    string
}

// NewSkillFailed builds a SkillFailed event ready to publish.
func NewSkillFailed(source string, skillID *core.Ref, activationID, errorCode string) *SkillFailed {
	return &SkillFailed{
		BaseEvent:    events.NewBaseEvent(RefSkillFailed),
		Source:       source,
		SkillID:      skillID,
		ActivationID: activationID,
		ErrorCode:    errorCode,
	}
}

// SkillReports carries the per-target hit results for one execution. The
// engine publishes a single SkillReports holding all results of the
// execution; it does not split them with BatchReports and does not re-send
// SkillExecuted before the report.
type SkillReports struct {
	*events.BaseEvent

	Source       string
	SkillID      *core.Ref
	ActivationID string
	Results      []SkillTargetResult
}

// NewSkillReports builds a SkillReports event ready to publish.
func NewSkillReports(source string, skillID *core.Ref, activationID string, results []SkillTargetResult) *SkillReports {
	return &SkillReports{
		BaseEvent:    events.NewBaseEvent(RefSkillReports),
		Source:       source,
		SkillID:      skillID,
		ActivationID: activationID,
		Results:      results,
	}
}

// MaxReportBatchBytes is the approximate per-packet size cap BatchReports
// keeps each chunk under.
const MaxReportBatchBytes = 60 * 1024

// EstimatedResultSize is a conservative fixed estimate of one
// SkillTargetResult's serialized size, used to decide batch boundaries
// without round-tripping through an actual codec.
const EstimatedResultSize = 160

// BatchReports splits results into chunks that fit under
// MaxReportBatchBytes given EstimatedResultSize per result.
func BatchReports(results []SkillTargetResult) [][]SkillTargetResult {
	perBatch := MaxReportBatchBytes / EstimatedResultSize
	if perBatch < 1 {
		perBatch = 1
	}
	var batches [][]SkillTargetResult
	for len(results) > 0 {
		n := perBatch
		if n > len(results) {
			n = len(results)
		}
		batches = append(batches, results[:n])
		results = results[n:]
	}
	return batches
}

// SkillSwitch is published when a switch-category skill is toggled on or
// off.
type SkillSwitch struct {
	*events.BaseEvent

	Source  string
	SkillID *core.Ref
	On      bool
}

// NewSkillSwitch builds a SkillSwitch event ready to publish.
func NewSkillSwitch(source string, skillID *core.Ref, on bool) *SkillSwitch {
	return &SkillSwitch{
		BaseEvent: events.NewBaseEvent(RefSkillSwitch),
		Source:    source,
		SkillID:   skillID,
		On:        on,
	}
}

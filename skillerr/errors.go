// Package skillerr provides structured error handling for the skill execution
// engine. It enables clear communication of why a skill activation, target,
// execution, or cancel request could not proceed, with full context about the
// ability and entities involved when the failure happened.
package skillerr

import (
	"errors"
	"fmt"
)

// Code enumerates the SkillFailed error codes from the engine's outbound
// protocol. These are the exact codes a SkillFailed or SkillExecutedInstant
// event carries back to the client.
type Code string

const (
	// CodeCoolingDown indicates the skill's cooldown has not yet elapsed.
	CodeCoolingDown Code = "cooling_down"
	// CodeSilentFail indicates the request should fail without client feedback.
	CodeSilentFail Code = "silent_fail"
	// CodeGeneric is a catch-all failure with no more specific code.
	CodeGeneric Code = "generic"
	// CodeGenericUse indicates the skill could not be used right now.
	CodeGenericUse Code = "generic_use"
	// CodeGenericCost indicates costs could not be paid.
	CodeGenericCost Code = "generic_cost"
	// CodeTargetInvalid indicates the target does not satisfy the skill's rules.
	CodeTargetInvalid Code = "target_invalid"
	// CodeTooFar indicates the target is outside the skill's range.
	CodeTooFar Code = "too_far"
	// CodeConditionRestrict indicates a status condition blocks the skill.
	CodeConditionRestrict Code = "condition_restrict"
	// CodeRestrictedUse indicates a restriction (weapon/LNC/gender/level) blocks use.
	CodeRestrictedUse Code = "restricted_use"
	// CodeLocationRestrict indicates the zone/spot disallows the skill.
	CodeLocationRestrict Code = "location_restrict"
	// CodeZoneInvalid indicates the source or target changed zones mid-flight.
	CodeZoneInvalid Code = "zone_invalid"
	// CodeMountOtherSkillRestrict indicates a mounted-state skill conflict.
	CodeMountOtherSkillRestrict Code = "mount_other_skill_restrict"
	// CodeMountItemMissing indicates a mount item is missing.
	CodeMountItemMissing Code = "mount_item_missing"
	// CodeMountItemDurability indicates a mount item lacks durability.
	CodeMountItemDurability Code = "mount_item_durability"
	// CodeMountDemonInvalid indicates the mount demon is invalid.
	CodeMountDemonInvalid Code = "mount_demon_invalid"
	// CodeMountDemonCondition indicates the mount demon fails a condition check.
	CodeMountDemonCondition Code = "mount_demon_condition"
	// CodeMountMoveRestrict indicates movement restriction while mounted.
	CodeMountMoveRestrict Code = "mount_move_restrict"
	// CodeMountTooFar indicates the mount is out of range.
	CodeMountTooFar Code = "mount_too_far"
	// CodeMountSummonRestrict indicates summon restriction while mounted.
	CodeMountSummonRestrict Code = "mount_summon_restrict"
	// CodeActivationFailure indicates script validateActivation rejected the skill.
	CodeActivationFailure Code = "activation_failure"
	// CodeSummonLevel indicates the summon target fails a level check.
	CodeSummonLevel Code = "summon_level"
	// CodeSummonInvalid indicates the summon target is invalid.
	CodeSummonInvalid Code = "summon_invalid"
	// CodePartnerMissing indicates the required partner is absent.
	CodePartnerMissing Code = "partner_missing"
	// CodePartnerDead indicates the required partner is dead.
	CodePartnerDead Code = "partner_dead"
	// CodePartnerIncompatible indicates the partner fails a compatibility check.
	CodePartnerIncompatible Code = "partner_incompatible"
	// CodeItemUse indicates the triggering item could not be used.
	CodeItemUse Code = "item_use"
	// CodeInventorySpace indicates no inventory space for a produced item.
	CodeInventorySpace Code = "inventory_space"
	// CodeMoochPartnerFamiliarity indicates insufficient familiarity for mooch.
	CodeMoochPartnerFamiliarity Code = "mooch_partner_familiarity"
	// CodeNothingHappenedHere indicates the skill has no effect at this location.
	CodeNothingHappenedHere Code = "nothing_happened_here"
	// CodeNothingHappenedNow indicates the skill has no effect at this time.
	CodeNothingHappenedNow Code = "nothing_happened_now"
	// CodeActionRetry indicates the client should reissue the request.
	CodeActionRetry Code = "action_retry"
	// CodeTimeRestrict indicates a time-of-day restriction blocks the skill.
	CodeTimeRestrict Code = "time_restrict"
	// CodeTalkInvalid indicates the talk target is invalid.
	CodeTalkInvalid Code = "talk_invalid"
	// CodeTalkInvalidState indicates the talk target is in the wrong state.
	CodeTalkInvalidState Code = "talk_invalid_state"
	// CodeTalkLevel indicates the talk target fails a level check.
	CodeTalkLevel Code = "talk_level"
)

// Error represents a skill-engine failure with code, message, and metadata.
type Error struct {
	// Code categorizes the error for the outbound protocol.
	Code Code

	// Message describes what happened.
	Message string

	// Cause is the wrapped error, if any.
	Cause error

	// Meta carries diagnostic context: activation id, skill id, entity id, etc.
	Meta map[string]any

	// CallStack tracks the execution path through nested phases.
	CallStack []string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "skillerr: nil error"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is supports errors.Is comparison by Code.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Code == other.Code
	}
	return false
}

// Option configures an Error.
type Option func(*Error)

// WithMeta adds metadata to the error.
func WithMeta(key string, value any) Option {
	return func(e *Error) {
		if e.Meta == nil {
			e.Meta = make(map[string]any)
		}
		e.Meta[key] = value
	}
}

// WithCallStack sets the call stack.
func WithCallStack(stack []string) Option {
	return func(e *Error) { e.CallStack = stack }
}

// AddToCallStack appends a frame to the call stack.
func AddToCallStack(frame string) Option {
	return func(e *Error) { e.CallStack = append(e.CallStack, frame) }
}

// New creates a new error with the given code and message.
func New(code Code, message string, opts ...Option) *Error {
	err := &Error{Code: code, Message: message}
	for _, opt := range opts {
		opt(err)
	}
	return err
}

// Newf creates a new error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps err with the given code and message.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Cause: err}
}

// CodeOf extracts the Code from err if it (or something it wraps) is a
// *Error; otherwise returns CodeGeneric.
func CodeOf(err error) Code {
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return CodeGeneric
}

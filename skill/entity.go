package skill

import (
	"sync"

	"github.com/arczone/channelengine/core"
	"github.com/arczone/channelengine/resources"
	"github.com/arczone/channelengine/spatial"
)

// StatusTimeKind names an absolute-deadline slot on an entity's status-times
// map.
type StatusTimeKind string

// Status time kinds.
const (
	StatusCharging StatusTimeKind = "CHARGING"
	StatusLockout  StatusTimeKind = "LOCKOUT"
	StatusHitStun  StatusTimeKind = "HIT_STUN"
	StatusKnockback StatusTimeKind = "KNOCKBACK"
	StatusWaiting  StatusTimeKind = "WAITING"
	StatusImmobile StatusTimeKind = "IMMOBILE"
	StatusHit      StatusTimeKind = "HIT"
	StatusRest     StatusTimeKind = "REST"
	StatusIgnore   StatusTimeKind = "IGNORE"
)

// ActiveStatus is one applied status effect instance.
type ActiveStatus struct {
	StatusID      *core.Ref
	Stack         int
	ExpiresAtUS   int64 // absolute deadline, microseconds
	CancelMask    EffectCancelMask
	AilmentDamage int // category-2 (ailment damage) accumulation
}

// EffectCancelMask is the bitset controlling which triggers cancel
// a status effect.
type EffectCancelMask uint8

// Effect cancel bits.
const (
	CancelOnHit EffectCancelMask = 1 << iota
	CancelOnDamage
	CancelOnKnockback
	CancelOnDeath
	CancelOnSkill
)

// Combatant is the read/write view the engine needs of live entity state.
// A concrete implementation (LiveEntity here) is normally owned by the zone
// that the engine itself does not manage; the external world (persistence,
// AI, packet layer) is only reachable through the interfaces in external.go.
type Combatant interface {
	core.Entity

	Position() spatial.Position
	SetPosition(p spatial.Position)
	Facing() float64
	SetFacing(radians float64)

	Faction() string
	IsAlive() bool
	SetAlive(alive bool)

	HP() *resources.Gauge
	MP() *resources.Gauge

	// CorrectTable is the calculated stat vector (base+equipment+status+tokusei).
	CorrectTable() map[string]float64
	SetCorrectValue(key string, value float64)

	ActiveStatuses() map[string]*ActiveStatus // keyed by StatusID.String()
	AddActiveStatus(s *ActiveStatus)
	RemoveActiveStatus(statusID string)

	StatusTime(kind StatusTimeKind) int64
	SetStatusTime(kind StatusTimeKind, deadlineUS int64)

	CooldownUntil(cooldownID string) int64
	SetCooldown(cooldownID string, deadlineUS int64)

	KnockbackResist() float64
	NRAShields() *resources.Pool

	SwitchSkills() map[string]bool
	SetSwitchSkill(skillID string, on bool)

	ActivatedAbility() *ActivatedAbility
	SetActivatedAbility(a *ActivatedAbility)

	SpecialActivation(activationID int64) *ActivatedAbility
	SetSpecialActivation(activationID int64, a *ActivatedAbility)
	ClearSpecialActivation(activationID int64)

	Opponents() map[string]bool
	ZoneID() string
}

// LiveEntity is the engine's in-memory Combatant implementation. Production
// deployments back this with whatever shared entity-handle arena the world
// server already maintains; the engine only depends on the Combatant
// interface.
type LiveEntity struct {
	mu sync.RWMutex

	id      string
	typ     string
	faction string
	zoneID  string
	alive   bool

	pos    spatial.Position
	facing float64

	hp *resources.Gauge
	mp *resources.Gauge

	correctTable map[string]float64
	statuses     map[string]*ActiveStatus
	statusTimes  map[StatusTimeKind]int64
	cooldowns    map[string]int64

	knockbackResist float64
	nraShields      *resources.Pool

	switchSkills map[string]bool
	activated    *ActivatedAbility
	special      map[int64]*ActivatedAbility
	opponents    map[string]bool
}

// NewLiveEntity creates a live entity with full HP/MP gauges and empty state.
func NewLiveEntity(id, typ, faction, zoneID string, maxHP, maxMP int) *LiveEntity {
	return &LiveEntity{
		id:           id,
		typ:          typ,
		faction:      faction,
		zoneID:       zoneID,
		alive:        true,
		hp:           resources.NewGauge("hp", maxHP),
		mp:           resources.NewGauge("mp", maxMP),
		correctTable: make(map[string]float64),
		statuses:     make(map[string]*ActiveStatus),
		statusTimes:  make(map[StatusTimeKind]int64),
		cooldowns:    make(map[string]int64),
		nraShields:   resources.NewPool(),
		switchSkills: make(map[string]bool),
		special:      make(map[int64]*ActivatedAbility),
		opponents:    make(map[string]bool),
	}
}

// GetID implements core.Entity.
func (e *LiveEntity) GetID() string { return e.id }

// GetType implements core.Entity.
func (e *LiveEntity) GetType() string { return e.typ }

// Position returns the entity's current position.
func (e *LiveEntity) Position() spatial.Position {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.pos
}

// SetPosition updates the entity's position.
func (e *LiveEntity) SetPosition(p spatial.Position) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pos = p
}

// Facing returns the entity's facing angle in radians.
func (e *LiveEntity) Facing() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.facing
}

// SetFacing updates the entity's facing angle.
func (e *LiveEntity) SetFacing(radians float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.facing = radians
}

// Faction returns the entity's faction tag, used for enemy/ally filtering.
func (e *LiveEntity) Faction() string { return e.faction }

// IsAlive reports whether the entity is alive.
func (e *LiveEntity) IsAlive() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.alive
}

// SetAlive sets the entity's alive state.
func (e *LiveEntity) SetAlive(alive bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.alive = alive
}

// HP returns the HP gauge.
func (e *LiveEntity) HP() *resources.Gauge { return e.hp }

// MP returns the MP gauge.
func (e *LiveEntity) MP() *resources.Gauge { return e.mp }

// CorrectTable returns the calculated stat vector.
func (e *LiveEntity) CorrectTable() map[string]float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.correctTable
}

// SetCorrectValue sets one entry of the calculated stat vector.
func (e *LiveEntity) SetCorrectValue(key string, value float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.correctTable[key] = value
}

// ActiveStatuses returns the live status-effect map.
func (e *LiveEntity) ActiveStatuses() map[string]*ActiveStatus {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.statuses
}

// AddActiveStatus installs or replaces a status effect instance.
func (e *LiveEntity) AddActiveStatus(s *ActiveStatus) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.statuses[s.StatusID.String()] = s
}

// RemoveActiveStatus removes a status effect instance by ID.
func (e *LiveEntity) RemoveActiveStatus(statusID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.statuses, statusID)
}

// StatusTime returns the absolute deadline for kind, or 0 if unset.
func (e *LiveEntity) StatusTime(kind StatusTimeKind) int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.statusTimes[kind]
}

// SetStatusTime sets the absolute deadline for kind. Knockback and hit-stun
// windows are monotonic: callers enforce that via StatusTime before calling.
func (e *LiveEntity) SetStatusTime(kind StatusTimeKind, deadlineUS int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.statusTimes[kind] = deadlineUS
}

// CooldownUntil returns the absolute deadline a cooldown ID is active until.
func (e *LiveEntity) CooldownUntil(cooldownID string) int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cooldowns[cooldownID]
}

// SetCooldown sets the absolute deadline a cooldown ID is active until.
func (e *LiveEntity) SetCooldown(cooldownID string, deadlineUS int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cooldowns[cooldownID] = deadlineUS
}

// KnockbackResist returns the entity's accumulated knockback resistance.
func (e *LiveEntity) KnockbackResist() float64 { return e.knockbackResist }

// NRAShields returns the entity's NRA shield counter pool.
func (e *LiveEntity) NRAShields() *resources.Pool { return e.nraShields }

// SwitchSkills returns the set of currently-active switch skill IDs.
func (e *LiveEntity) SwitchSkills() map[string]bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.switchSkills
}

// SetSwitchSkill toggles a switch skill on or off.
func (e *LiveEntity) SetSwitchSkill(skillID string, on bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if on {
		e.switchSkills[skillID] = true
	} else {
		delete(e.switchSkills, skillID)
	}
}

// ActivatedAbility returns the entity's single in-progress ability, or nil.
func (e *LiveEntity) ActivatedAbility() *ActivatedAbility {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.activated
}

// SetActivatedAbility sets or clears the entity's in-progress ability.
func (e *LiveEntity) SetActivatedAbility(a *ActivatedAbility) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.activated = a
}

// SpecialActivation returns a special (non-primary-slot) activation by ID.
func (e *LiveEntity) SpecialActivation(activationID int64) *ActivatedAbility {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.special[activationID]
}

// SetSpecialActivation registers a special activation.
func (e *LiveEntity) SetSpecialActivation(activationID int64, a *ActivatedAbility) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.special[activationID] = a
}

// ClearSpecialActivation removes a special activation.
func (e *LiveEntity) ClearSpecialActivation(activationID int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.special, activationID)
}

// Opponents returns the entity's current opponent set (for aggro/AI hooks).
func (e *LiveEntity) Opponents() map[string]bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.opponents
}

// ZoneID returns the zone this entity currently resides in.
func (e *LiveEntity) ZoneID() string { return e.zoneID }

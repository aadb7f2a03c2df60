package skill

import (
	"context"

	"github.com/arczone/channelengine/core"
	"github.com/arczone/channelengine/spatial"
)

// DefinitionStore resolves authored data by ref. The engine never mutates
// what it returns.
type DefinitionStore interface {
	GetSkillData(ctx context.Context, id *core.Ref) (*SkillDefinition, error)
	GetItemData(ctx context.Context, id *core.Ref) (*ItemData, error)
	GetStatusData(ctx context.Context, id *core.Ref) (*StatusData, error)
	GetDevilData(ctx context.Context, id *core.Ref) (*DevilData, error)
	GetTokuseiData(ctx context.Context, id *core.Ref) (*TokuseiData, error)
	GetExpertClassData(ctx context.Context, id *core.Ref) (*ExpertClassData, error)
	GetSpotData(ctx context.Context, dynMapID string) (*SpotData, error)
}

// ItemData is the authored shape of an item referenced by a skill's cost or
// on-use effects.
type ItemData struct {
	ID       *core.Ref
	StackMax int
	Consumed bool
}

// StatusData is the authored shape of a status effect a skill may apply.
type StatusData struct {
	ID            *core.Ref
	DurationMS    int64
	CategoryTwo   bool
	CancelOnDeath bool
}

// DevilData is the authored shape of a summonable demon/devil entity.
type DevilData struct {
	ID    *core.Ref
	Level int
}

// TokuseiData is the authored shape of a passive trait (tokusei).
type TokuseiData struct {
	ID         *core.Ref
	AspectType string
}

// ExpertClassData is the authored shape of an expertise/class gate.
type ExpertClassData struct {
	ID       *core.Ref
	MinLevel int
}

// SpotData describes a location restriction zone.
type SpotData struct {
	DynMapID string
	Allowed  bool
}

// TokuseiManager recomputes and exposes an entity's passive trait (tokusei)
// contributions, which feed the correct-table and damage math as modifiers.
type TokuseiManager interface {
	Recalculate(ctx context.Context, entityID string, triggers []string) error
	GetAspectSum(ctx context.Context, entityID string, aspectType string, calcState map[string]float64) (float64, error)
	GetAspectMap(ctx context.Context, entityID string, aspectType string, calcState map[string]float64) (map[string]float64, error)
	GetAspectValueList(ctx context.Context, entityID string, aspectType string, calcState map[string]float64) ([]float64, error)
	AspectValueExists(ctx context.Context, entityID string, aspectType string, value float64) (bool, error)
	IsDeadTokuseiDisabled(ctx context.Context, entityID string) (bool, error)
}

// WorldRegistry resolves entities and broadcasts packets within a zone.
type WorldRegistry interface {
	GetEntityByEntityID(ctx context.Context, entityID string) (Combatant, error)
	GetActiveEntitiesInRadius(ctx context.Context, zoneID string, center spatial.Position, radius float64) ([]Combatant, error)
	GetEntitiesInFoV(ctx context.Context, zoneID string, apex spatial.Position, facing float64) ([]Combatant, error)
	Broadcast(ctx context.Context, zoneID string, packet any) error
}

// CharacterManager performs persisted character-state mutations the engine
// triggers but never applies directly: item movement, durability,
// familiarity, XP, expertise, PvP points, and loot creation.
type CharacterManager interface {
	AddItem(ctx context.Context, characterID string, itemID *core.Ref, count int) error
	RemoveItem(ctx context.Context, characterID string, itemID *core.Ref, count int) error
	ReduceDurability(ctx context.Context, characterID string, itemID *core.Ref, amount int) error
	AddFamiliarity(ctx context.Context, characterID string, devilID *core.Ref, amount int) error
	AddXP(ctx context.Context, characterID string, amount int) error
	AddExpertise(ctx context.Context, characterID string, classID *core.Ref, amount int) error
	AddPvPPoints(ctx context.Context, characterID string, amount int) error
	CreateLoot(ctx context.Context, zoneID string, at spatial.Position, itemID *core.Ref, count int) error
}

// AIManager notifies AI-controlled entities' aggro/combat state of skill
// events the engine does not otherwise broadcast.
type AIManager interface {
	UpdateAggro(ctx context.Context, entityID, sourceID string, amount int) error
	CombatSkillHit(ctx context.Context, entityID string, result SkillTargetResult) error
	CombatSkillComplete(ctx context.Context, entityID, activationID string) error
}

// Scheduler runs a closure once at or after a deadline, expressed in
// microseconds on the same clock as the rest of the engine.
type Scheduler interface {
	ScheduleAt(deadlineUS int64, fn func()) (cancel func())
}

// ClientStateStore looks up a connected client's transient state by entity
// ID, and resolves object UUIDs (items, devils) back to their owning
// entities.
type ClientStateStore interface {
	GetClientState(ctx context.Context, entityID string) (*ClientState, error)
	ResolveUUID(ctx context.Context, uuid string) (entityID string, ok bool)
}

// ClientState is the minimal per-connection state the engine reads: current
// move-speed modifiers and whether the client is still attached to the
// activation it last heard about.
type ClientState struct {
	EntityID       string
	MoveSpeed      float64
	LastActivation string
}

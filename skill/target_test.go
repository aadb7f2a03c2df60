package skill

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arczone/channelengine/spatial"
)

type stubWorldRegistry struct {
	radiusResult []Combatant
	fovResult    []Combatant
}

func (s *stubWorldRegistry) GetEntityByEntityID(_ context.Context, entityID string) (Combatant, error) {
	return nil, nil
}

func (s *stubWorldRegistry) GetActiveEntitiesInRadius(_ context.Context, _ string, _ spatial.Position, _ float64) ([]Combatant, error) {
	return s.radiusResult, nil
}

func (s *stubWorldRegistry) GetEntitiesInFoV(_ context.Context, _ string, _ spatial.Position, _ float64) ([]Combatant, error) {
	return s.fovResult, nil
}

func (s *stubWorldRegistry) Broadcast(_ context.Context, _ string, _ any) error {
	return nil
}

func TestValidatePrimaryRejectsOutOfRange(t *testing.T) {
	r := NewTargetResolver(nil)
	source := NewLiveEntity("src", "player", "red", "zone", 100, 50)
	target := NewLiveEntity("tgt", "monster", "blue", "zone", 100, 50)
	target.SetPosition(spatial.Position{X: 1000, Y: 0})

	def := &SkillDefinition{TargetType: TargetEnemy, TargetRange: 5}
	err := r.ValidatePrimary(source, target, def)
	require.Error(t, err)
}

func TestValidatePrimaryRejectsSameFactionForEnemyTarget(t *testing.T) {
	r := NewTargetResolver(nil)
	source := NewLiveEntity("src", "player", "red", "zone", 100, 50)
	target := NewLiveEntity("tgt", "player", "red", "zone", 100, 50)

	def := &SkillDefinition{TargetType: TargetEnemy, TargetRange: 50}
	err := r.ValidatePrimary(source, target, def)
	require.Error(t, err)
}

func TestValidatePrimaryAcceptsLiveEnemyInRange(t *testing.T) {
	r := NewTargetResolver(nil)
	source := NewLiveEntity("src", "player", "red", "zone", 100, 50)
	target := NewLiveEntity("tgt", "monster", "blue", "zone", 100, 50)

	def := &SkillDefinition{TargetType: TargetEnemy, TargetRange: 50}
	require.NoError(t, r.ValidatePrimary(source, target, def))
}

func TestValidatePrimaryRejectsDeadAllyWhenAllyRequested(t *testing.T) {
	r := NewTargetResolver(nil)
	source := NewLiveEntity("src", "player", "red", "zone", 100, 50)
	target := NewLiveEntity("tgt", "player", "red", "zone", 100, 50)
	target.SetAlive(false)

	def := &SkillDefinition{TargetType: TargetAlly, TargetRange: 50}
	require.Error(t, r.ValidatePrimary(source, target, def))
}

func TestGatherAreaNoneReturnsNothing(t *testing.T) {
	r := NewTargetResolver(&stubWorldRegistry{})
	source := NewLiveEntity("src", "player", "red", "zone", 100, 50)

	ids, err := r.GatherArea(context.Background(), source, nil, &SkillDefinition{AreaType: AreaNone})
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestGatherAreaExcludesSourceAndPrimary(t *testing.T) {
	source := NewLiveEntity("src", "player", "red", "zone", 100, 50)
	primary := NewLiveEntity("primary", "monster", "blue", "zone", 100, 50)
	other := NewLiveEntity("other", "monster", "blue", "zone", 100, 50)

	world := &stubWorldRegistry{radiusResult: []Combatant{source, primary, other}}
	r := NewTargetResolver(world)

	def := &SkillDefinition{AreaType: AreaSourceRadius, AreaRadius: 10, TargetType: TargetEnemy}
	ids, err := r.GatherArea(context.Background(), source, primary, def)
	require.NoError(t, err)
	require.Equal(t, []string{"other"}, ids)
}

func TestGatherAreaFiltersByTargetType(t *testing.T) {
	source := NewLiveEntity("src", "player", "red", "zone", 100, 50)
	ally := NewLiveEntity("ally", "player", "red", "zone", 100, 50)
	enemy := NewLiveEntity("enemy", "monster", "blue", "zone", 100, 50)

	world := &stubWorldRegistry{radiusResult: []Combatant{ally, enemy}}
	r := NewTargetResolver(world)

	def := &SkillDefinition{AreaType: AreaSourceRadius, AreaRadius: 10, TargetType: TargetEnemy}
	ids, err := r.GatherArea(context.Background(), source, nil, def)
	require.NoError(t, err)
	require.Equal(t, []string{"enemy"}, ids)
}

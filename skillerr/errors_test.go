package skillerr_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arczone/channelengine/skillerr"
)

func TestNewCarriesCodeAndMessage(t *testing.T) {
	err := skillerr.New(skillerr.CodeCoolingDown, "skill on cooldown")
	assert.Equal(t, skillerr.CodeCoolingDown, err.Code)
	assert.Equal(t, "skill on cooldown", err.Error())
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := skillerr.Wrap(cause, skillerr.CodeGenericCost, "cost payment failed")
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "boom")
}

func TestIsComparesByCode(t *testing.T) {
	a := skillerr.New(skillerr.CodeTooFar, "too far")
	b := skillerr.New(skillerr.CodeTooFar, "different message, same code")
	c := skillerr.New(skillerr.CodeCoolingDown, "cooldown")

	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, c))
}

func TestCodeOfDefaultsToGeneric(t *testing.T) {
	assert.Equal(t, skillerr.CodeGeneric, skillerr.CodeOf(errors.New("unstructured")))
	assert.Equal(t, skillerr.CodeTooFar, skillerr.CodeOf(skillerr.New(skillerr.CodeTooFar, "x")))
}

func TestWithMetadataAttachesToDescendantErrors(t *testing.T) {
	ctx := context.Background()
	ctx = skillerr.WithMetadata(ctx, skillerr.Meta("activation_id", int64(42)), skillerr.Meta("skill_id", "fireball"))

	err := skillerr.NewCtx(ctx, skillerr.CodeTargetInvalid, "target died before hit")
	require.NotNil(t, err.Meta)
	assert.Equal(t, int64(42), err.Meta["activation_id"])
	assert.Equal(t, "fireball", err.Meta["skill_id"])
}

func TestWithMetadataInheritsAndOverrides(t *testing.T) {
	ctx := skillerr.WithMetadata(context.Background(), skillerr.Meta("zone", "forest"))
	ctx = skillerr.WithMetadata(ctx, skillerr.Meta("zone", "cave"), skillerr.Meta("skill_id", "dash"))

	err := skillerr.NewCtx(ctx, skillerr.CodeZoneInvalid, "zone changed")
	assert.Equal(t, "cave", err.Meta["zone"])
	assert.Equal(t, "dash", err.Meta["skill_id"])
}

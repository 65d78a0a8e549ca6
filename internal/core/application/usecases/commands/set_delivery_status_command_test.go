package commands_test

import (
	"testing"

	"orderdelivery/internal/core/application/usecases/commands"
	"orderdelivery/internal/core/domain/model/delivery"
	"orderdelivery/internal/core/domain/model/kernel"
	"orderdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSetDeliveryStatusCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewSetDeliveryStatusCommand(id, "shipped")

	require.NoError(t, err)
	assert.Equal(t, id, cmd.DeliveryID())
	assert.Equal(t, delivery.Shipped, cmd.Status())
}

func TestNewSetDeliveryStatusCommand_KeepsStatusVerbatim(t *testing.T) {
	cmd, err := commands.NewSetDeliveryStatusCommand(kernel.NewUUID(), "  In Transit  ")

	require.NoError(t, err)
	assert.Equal(t, delivery.Status("  In Transit  "), cmd.Status())
}

func TestNewSetDeliveryStatusCommand_EmptyStatus(t *testing.T) {
	_, err := commands.NewSetDeliveryStatusCommand(kernel.NewUUID(), "")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
}

func TestNewSetDeliveryStatusCommand_InvalidID(t *testing.T) {
	_, err := commands.NewSetDeliveryStatusCommand(kernel.UUID{}, "shipped")

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

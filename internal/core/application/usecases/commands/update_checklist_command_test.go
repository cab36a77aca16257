package commands_test

import (
	"testing"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/application/usecases/commands"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/serviceorder"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateChecklistCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	items := []commands.ChecklistItemUpdate{
		{Label: "protect furniture", Done: true},
		{Label: "label boxes", Done: false},
	}

	cmd, err := commands.NewUpdateChecklistCommand(orderID, serviceorder.PreService, items)

	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, serviceorder.PreService, cmd.Kind())
	assert.Equal(t, items, cmd.Items())
}

func TestNewUpdateChecklistCommand_InvalidKind(t *testing.T) {
	_, err := commands.NewUpdateChecklistCommand(kernel.NewUUID(), serviceorder.ChecklistKind("during"),
		[]commands.ChecklistItemUpdate{{Label: "x", Done: true}})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewUpdateChecklistCommand_NoItems(t *testing.T) {
	_, err := commands.NewUpdateChecklistCommand(kernel.NewUUID(), serviceorder.PostService, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNoChecklistItems)
}

func TestNewUpdateChecklistCommand_EmptyLabel(t *testing.T) {
	_, err := commands.NewUpdateChecklistCommand(kernel.NewUUID(), serviceorder.PostService,
		[]commands.ChecklistItemUpdate{{Label: "", Done: true}})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestUpdateChecklistCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.UpdateChecklistCommand
	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUpdateChecklistCommandIsNotConstructed)
}

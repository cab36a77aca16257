package commands

import (
	"errors"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/serviceorder"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/errs"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/guard"
)

var (
	ErrUpdateChecklistCommandIsNotConstructed = errors.New(
		"UpdateChecklistCommand must be created via NewUpdateChecklistCommand constructor")
	ErrNoChecklistItems = errors.New("at least one checklist item update is required")
)

// ChecklistItemUpdate flips the done flag of one labeled item.
type ChecklistItemUpdate struct {
	Label string
	Done  bool
}

// UpdateChecklistCommand updates one named checklist (pre or post) of an
// order item-by-item. Conflicting concurrent updates resolve last-writer-
// wins inside the surrounding transaction; terminal orders reject the
// update entirely.
type UpdateChecklistCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	kind    serviceorder.ChecklistKind
	items   []ChecklistItemUpdate

	guard guard.ConstructorGuard
}

// NewUpdateChecklistCommand validates and assembles a checklist update.
func NewUpdateChecklistCommand(
	orderID kernel.UUID,
	kind serviceorder.ChecklistKind,
	items []ChecklistItemUpdate,
) (UpdateChecklistCommand, error) {
	cmd := UpdateChecklistCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setKind(kind),
		cmd.setItems(items),
	); err != nil {
		return UpdateChecklistCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateChecklistCommand) Validate() error {
	return c.guard.Validate(ErrUpdateChecklistCommandIsNotConstructed)
}

// OrderID returns the order whose checklist is updated.
func (c UpdateChecklistCommand) OrderID() kernel.UUID { return c.orderID }

// Kind returns which checklist (pre or post) is updated.
func (c UpdateChecklistCommand) Kind() serviceorder.ChecklistKind { return c.kind }

// Items returns the item updates in request order.
func (c UpdateChecklistCommand) Items() []ChecklistItemUpdate {
	items := make([]ChecklistItemUpdate, len(c.items))
	copy(items, c.items)
	return items
}

func (c *UpdateChecklistCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateChecklistCommand) setKind(kind serviceorder.ChecklistKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	c.kind = kind
	return nil
}

func (c *UpdateChecklistCommand) setItems(items []ChecklistItemUpdate) error {
	if len(items) == 0 {
		return ErrNoChecklistItems
	}
	for _, item := range items {
		if item.Label == "" {
			return errs.NewValueIsRequiredError("checklist item label")
		}
	}

	c.items = make([]ChecklistItemUpdate, len(items))
	copy(c.items, items)
	return nil
}

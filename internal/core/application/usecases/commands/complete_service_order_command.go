package commands

import (
	"errors"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/errs"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/guard"
)

var ErrCompleteServiceOrderCommandIsNotConstructed = errors.New(
	"CompleteServiceOrderCommand must be created via NewCompleteServiceOrderCommand constructor")

// CompleteServiceOrderCommand requests the InProgress -> Completed
// transition. Completion is gated by the post-service checklist.
type CompleteServiceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteServiceOrderCommand creates a complete command for one order.
func NewCompleteServiceOrderCommand(orderID kernel.UUID) (CompleteServiceOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CompleteServiceOrderCommand{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}

	return CompleteServiceOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteServiceOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteServiceOrderCommandIsNotConstructed)
}

// OrderID returns the order to complete.
func (c CompleteServiceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

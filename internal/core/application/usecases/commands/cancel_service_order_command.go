package commands

import (
	"errors"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/errs"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/guard"
)

var ErrCancelServiceOrderCommandIsNotConstructed = errors.New(
	"CancelServiceOrderCommand must be created via NewCancelServiceOrderCommand constructor")

// CancelServiceOrderCommand requests the transition to Cancelled from
// Scheduled or InProgress.
type CancelServiceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelServiceOrderCommand creates a cancel command for one order.
func NewCancelServiceOrderCommand(orderID kernel.UUID) (CancelServiceOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CancelServiceOrderCommand{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}

	return CancelServiceOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelServiceOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelServiceOrderCommandIsNotConstructed)
}

// OrderID returns the order to cancel.
func (c CancelServiceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

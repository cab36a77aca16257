package commands

import (
	"errors"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/errs"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/guard"
)

var ErrStartServiceOrderCommandIsNotConstructed = errors.New(
	"StartServiceOrderCommand must be created via NewStartServiceOrderCommand constructor")

// StartServiceOrderCommand requests the Scheduled -> InProgress transition.
type StartServiceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartServiceOrderCommand creates a start command for one order.
func NewStartServiceOrderCommand(orderID kernel.UUID) (StartServiceOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return StartServiceOrderCommand{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}

	return StartServiceOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartServiceOrderCommand) Validate() error {
	return c.guard.Validate(ErrStartServiceOrderCommandIsNotConstructed)
}

// OrderID returns the order to start.
func (c StartServiceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

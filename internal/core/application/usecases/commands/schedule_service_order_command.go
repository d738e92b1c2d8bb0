package commands

import (
	"errors"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrScheduleServiceOrderCommandIsNotConstructed = errors.New(
	"ScheduleServiceOrderCommand must be created via NewScheduleServiceOrderCommand constructor",
)

// ScheduleServiceOrderCommand represents an agreed work window for a
// confirmed service order. Window ordering is validated by the aggregate so
// the rejection carries the domain's schedule window error.
type ScheduleServiceOrderCommand struct { //nolint:recvcheck //using for validation
	serviceOrderID kernel.UUID
	startDate      time.Time
	endDate        time.Time

	guard guard.ConstructorGuard
}

// NewScheduleServiceOrderCommand creates a command to schedule a service order.
func NewScheduleServiceOrderCommand(serviceOrderID kernel.UUID, startDate, endDate time.Time) (ScheduleServiceOrderCommand, error) {
	cmd := ScheduleServiceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setServiceOrderID(serviceOrderID),
		cmd.setWindow(startDate, endDate),
	); err != nil {
		return ScheduleServiceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ScheduleServiceOrderCommand) Validate() error {
	return c.guard.Validate(ErrScheduleServiceOrderCommandIsNotConstructed)
}

// ServiceOrderID returns the target service order's identifier.
func (c ScheduleServiceOrderCommand) ServiceOrderID() kernel.UUID {
	return c.serviceOrderID
}

// StartDate returns the start of the work window.
func (c ScheduleServiceOrderCommand) StartDate() time.Time {
	return c.startDate
}

// EndDate returns the end of the work window.
func (c ScheduleServiceOrderCommand) EndDate() time.Time {
	return c.endDate
}

func (c *ScheduleServiceOrderCommand) setServiceOrderID(serviceOrderID kernel.UUID) error {
	if err := serviceOrderID.Validate(); err != nil {
		return err
	}
	c.serviceOrderID = serviceOrderID
	return nil
}

func (c *ScheduleServiceOrderCommand) setWindow(startDate, endDate time.Time) error {
	if startDate.IsZero() {
		return errs.NewValueIsRequiredError("startDate")
	}
	if endDate.IsZero() {
		return errs.NewValueIsRequiredError("endDate")
	}
	c.startDate = startDate
	c.endDate = endDate
	return nil
}

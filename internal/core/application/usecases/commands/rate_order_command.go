package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/rating"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrRateOrderCommandIsNotConstructed = errors.New(
	"RateOrderCommand must be created via NewRateOrderCommand constructor",
)

// RateOrderCommand represents a customer's request to attach a score to one
// of their completed orders.
type RateOrderCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Actor
	orderID kernel.UUID
	score   int

	guard guard.ConstructorGuard
}

// NewRateOrderCommand creates a command to rate an order. The score must be
// within the rating scale.
func NewRateOrderCommand(actor kernel.Actor, orderID kernel.UUID, score int) (RateOrderCommand, error) {
	cmd := RateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setScore(score),
	); err != nil {
		return RateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RateOrderCommand) Validate() error {
	return c.guard.Validate(ErrRateOrderCommandIsNotConstructed)
}

// Actor returns the party submitting the rating.
func (c RateOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// OrderID returns the identifier of the order being rated.
func (c RateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Score returns the requested score.
func (c RateOrderCommand) Score() int {
	return c.score
}

func (c *RateOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *RateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *RateOrderCommand) setScore(score int) error {
	if score < rating.ScoreMin || score > rating.ScoreMax {
		return errs.NewValueIsOutOfRangeError("score", score, rating.ScoreMin, rating.ScoreMax)
	}
	c.score = score
	return nil
}

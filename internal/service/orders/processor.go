// Package orders turns order lifecycle events into dispatch actions.
package orders

import (
	"context"
	"errors"

	"github.com/devkyoshi/easy-bites-sub000/internal/apperr"
)

// Processor processes order events
type Processor struct {
	dispatch  DispatchPort
	announced AnnouncedSet
	factory   *actionFactory
}

// NewProcessor creates a new orders.Processor
func NewProcessor(dispatchSvc DispatchPort, announced AnnouncedSet) *Processor {
	p := &Processor{
		dispatch:  dispatchSvc,
		announced: announced,
	}
	p.factory = newActionFactory(p.onAccepted, p.onCancelled)
	return p
}

// Handle processes a single orders.Event. Statuses with no dispatch action
// are acknowledged and dropped.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	if p.factory == nil {
		return nil
	}
	fn, ok := p.factory.get(e.Status)
	if !ok {
		return nil
	}
	return fn(ctx, e)
}

func (p *Processor) onAccepted(ctx context.Context, e Event) error {
	err := p.dispatch.NotifyNewOrder(ctx, e.OrderID)
	// a malformed or deleted order will never get better, don't make Kafka
	// redeliver
	if errors.Is(err, apperr.ErrInvalid) || errors.Is(err, apperr.ErrNotFound) {
		return nil
	}
	return err
}

// onCancelled marks the order as announced so a late restaurant_accepted
// replay cannot page couriers for a dead order.
func (p *Processor) onCancelled(ctx context.Context, e Event) error {
	return p.announced.Add(ctx, e.OrderID)
}

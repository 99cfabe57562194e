package order

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents a consumer's order against a restaurant's catalog. It is
// the aggregate root managing the order lifecycle from creation through the
// delivery workflow to a terminal status.
//
// Order maintains these invariants:
//   - total == subtotal + deliveryTax at all times
//   - subtotal == sum of item subtotals
//   - deliveryAddress and item unit prices are immutable snapshots
//   - orderDate is set once and never changes
//   - status transitions follow the table in Status
//
// The version field supports optimistic concurrency in the persistence
// layer: two concurrent status updates on the same order are serialized,
// and the losing writer re-reads and re-validates instead of overwriting.
type Order struct {
	id              kernel.UUID
	consumerID      kernel.UUID
	restaurantID    kernel.UUID
	deliveryAddress string
	orderDate       time.Time
	status          Status
	subtotal        kernel.Money
	deliveryTax     kernel.Money
	total           kernel.Money
	items           []Item
	version         int

	events        []DomainEvent
	isConstructed bool
}

// NewOrder creates an order in PENDING status from already priced items.
//
// The delivery address is the consumer's address snapshot taken by the
// caller at creation time. Monetary fields are derived here so the
// invariants hold by construction: subtotal is the sum of the item
// subtotals, and total is subtotal plus the rounded delivery tax.
func NewOrder(
	id kernel.UUID,
	consumerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddress string,
	orderDate time.Time,
	items []Item,
	deliveryTax kernel.Money,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setConsumerID(consumerID),
		o.setRestaurantID(restaurantID),
		o.setDeliveryAddress(deliveryAddress),
		o.setOrderDate(orderDate),
		o.setItems(items),
		o.setDeliveryTax(deliveryTax),
	); err != nil {
		return nil, err
	}

	subtotal := kernel.ZeroMoney()
	for _, item := range o.items {
		subtotal = subtotal.Add(item.Subtotal())
	}
	o.subtotal = subtotal.Round2()
	o.total = o.subtotal.Add(o.deliveryTax)

	o.events = append(o.events, CreatedEvent{
		OrderID:      o.id,
		ConsumerID:   o.consumerID,
		RestaurantID: o.restaurantID,
		Total:        o.total,
	})

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, trusting the stored
// monetary fields and status. The stored status must be a valid one and the
// monetary invariant must still hold.
func RestoreOrder(
	id kernel.UUID,
	consumerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddress string,
	orderDate time.Time,
	status Status,
	subtotal kernel.Money,
	deliveryTax kernel.Money,
	total kernel.Money,
	items []Item,
	version int,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setConsumerID(consumerID),
		o.setRestaurantID(restaurantID),
		o.setDeliveryAddress(deliveryAddress),
		o.setOrderDate(orderDate),
		o.setItems(items),
		o.setDeliveryTax(deliveryTax),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if !total.IsEqual(subtotal.Add(deliveryTax)) {
		return nil, errs.NewValueIsInvalidErrorWithCause("total",
			errors.New("total does not equal subtotal plus delivery tax"))
	}

	o.status = status
	o.subtotal = subtotal
	o.total = total
	o.version = version
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Call it when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ConsumerID returns the owning consumer's identifier.
func (o *Order) ConsumerID() kernel.UUID {
	return o.consumerID
}

// RestaurantID returns the identifier of the restaurant the order targets.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// DeliveryAddress returns the address snapshot taken at creation time.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// OrderDate returns the creation timestamp. Set once, immutable.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Subtotal returns the sum of the item subtotals.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// DeliveryTax returns the delivery tax applied to the order.
func (o *Order) DeliveryTax() kernel.Money {
	return o.deliveryTax
}

// Total returns subtotal plus delivery tax.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Version returns the optimistic concurrency version.
func (o *Order) Version() int {
	return o.version
}

// ChangeStatus applies a lifecycle transition. The change is validated
// against the transition table; requesting the current status again is
// rejected as an invalid transition, not treated as a no-op.
// A successful change records a StatusChangedEvent.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	from := o.status
	o.status = newStatus
	o.events = append(o.events, StatusChangedEvent{
		OrderID: o.id,
		From:    from,
		To:      newStatus,
	})
	return nil
}

// Cancel moves the order to CANCELED through the ordinary transition
// table, so delivered orders can never be canceled.
func (o *Order) Cancel() error {
	return o.ChangeStatus(Canceled)
}

// Events returns the domain events recorded since the last drain.
func (o *Order) Events() []DomainEvent {
	events := make([]DomainEvent, len(o.events))
	copy(events, o.events)
	return events
}

// ClearEvents drops recorded events after they have been published.
func (o *Order) ClearEvents() {
	o.events = nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setConsumerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.consumerID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("orderDate")
	}
	o.orderDate = orderDate
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setDeliveryTax(tax kernel.Money) error {
	if err := tax.Validate(); err != nil {
		return err
	}
	o.deliveryTax = tax.Round2()
	return nil
}

package order_test

import (
	"testing"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, price string, quantity int) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), quantity, kernel.MustNewMoney(price))
	require.NoError(t, err)
	return item
}

func newTestOrder(t *testing.T, items []order.Item, tax string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Av. Paulista 1000, Sao Paulo",
		time.Now(),
		items,
		kernel.MustNewMoney(tax),
	)
	require.NoError(t, err)
	return o
}

func TestNewItem(t *testing.T) {
	t.Run("should compute subtotal as unit price times quantity", func(t *testing.T) {
		item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 3, kernel.MustNewMoney("19.90"))

		require.NoError(t, err)
		assert.Equal(t, "59.70", item.Subtotal().String())
		assert.Equal(t, 3, item.Quantity())
	})

	t.Run("should reject zero and negative quantities", func(t *testing.T) {
		for _, quantity := range []int{0, -1, -100} {
			_, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), quantity, kernel.MustNewMoney("10.00"))
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject non-positive unit prices", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 1, kernel.ZeroMoney())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value item is not constructed", func(t *testing.T) {
		var item order.Item
		require.Error(t, item.Validate())
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("should create a PENDING order with derived totals", func(t *testing.T) {
		// restaurant tax 10.00, items 20.00 x1 and 50.00 x1:
		// subtotal 70.00, total 80.00
		items := []order.Item{
			mustItem(t, "20.00", 1),
			mustItem(t, "50.00", 1),
		}

		o := newTestOrder(t, items, "10.00")

		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "70.00", o.Subtotal().String())
		assert.Equal(t, "10.00", o.DeliveryTax().String())
		assert.Equal(t, "80.00", o.Total().String())
		assert.Equal(t, 0, o.Version())
	})

	t.Run("total always equals subtotal plus delivery tax", func(t *testing.T) {
		items := []order.Item{
			mustItem(t, "7.35", 3),
			mustItem(t, "12.49", 2),
		}

		o := newTestOrder(t, items, "4.75")

		assert.True(t, o.Total().IsEqual(o.Subtotal().Add(o.DeliveryTax())))
	})

	t.Run("subtotal equals the sum of item subtotals", func(t *testing.T) {
		items := []order.Item{
			mustItem(t, "9.99", 2),
			mustItem(t, "4.50", 4),
		}

		o := newTestOrder(t, items, "0")

		sum := kernel.ZeroMoney()
		for _, item := range o.Items() {
			sum = sum.Add(item.Subtotal())
		}
		assert.True(t, o.Subtotal().IsEqual(sum))
	})

	t.Run("should reject an order without items", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Av. Paulista 1000", time.Now(), nil, kernel.ZeroMoney(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject an empty delivery address", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"", time.Now(), []order.Item{mustItem(t, "10.00", 1)}, kernel.ZeroMoney(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject a zero order date", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Av. Paulista 1000", time.Time{}, []order.Item{mustItem(t, "10.00", 1)}, kernel.ZeroMoney(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should record a created event", func(t *testing.T) {
		o := newTestOrder(t, []order.Item{mustItem(t, "10.00", 1)}, "5.00")

		events := o.Events()
		require.Len(t, events, 1)
		created, ok := events[0].(order.CreatedEvent)
		require.True(t, ok)
		assert.True(t, created.OrderID.IsEqual(o.ID()))
		assert.Equal(t, "15.00", created.Total.String())
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should walk the full delivery workflow", func(t *testing.T) {
		o := newTestOrder(t, []order.Item{mustItem(t, "10.00", 1)}, "0")

		require.NoError(t, o.ChangeStatus(order.Confirmed))
		require.NoError(t, o.ChangeStatus(order.Preparing))
		require.NoError(t, o.ChangeStatus(order.OutForDelivery))
		require.NoError(t, o.ChangeStatus(order.Delivered))

		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should reject skipping straight to DELIVERED", func(t *testing.T) {
		o := newTestOrder(t, []order.Item{mustItem(t, "10.00", 1)}, "0")

		err := o.ChangeStatus(order.Delivered)

		var transitionErr *errs.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, "PENDING", transitionErr.From)
		assert.Equal(t, "DELIVERED", transitionErr.To)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should reject re-applying the current status", func(t *testing.T) {
		o := newTestOrder(t, []order.Item{mustItem(t, "10.00", 1)}, "0")

		require.NoError(t, o.ChangeStatus(order.Confirmed))
		err := o.ChangeStatus(order.Confirmed)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("should record a status changed event per transition", func(t *testing.T) {
		o := newTestOrder(t, []order.Item{mustItem(t, "10.00", 1)}, "0")
		o.ClearEvents()

		require.NoError(t, o.ChangeStatus(order.Confirmed))

		events := o.Events()
		require.Len(t, events, 1)
		changed, ok := events[0].(order.StatusChangedEvent)
		require.True(t, ok)
		assert.Equal(t, order.Pending, changed.From)
		assert.Equal(t, order.Confirmed, changed.To)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel a pending order", func(t *testing.T) {
		o := newTestOrder(t, []order.Item{mustItem(t, "10.00", 1)}, "0")

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Canceled, o.Status())
	})

	t.Run("should never cancel a delivered order", func(t *testing.T) {
		o := newTestOrder(t, []order.Item{mustItem(t, "10.00", 1)}, "0")
		require.NoError(t, o.ChangeStatus(order.Preparing))
		require.NoError(t, o.ChangeStatus(order.OutForDelivery))
		require.NoError(t, o.ChangeStatus(order.Delivered))

		err := o.Cancel()

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should reject canceling out for delivery orders", func(t *testing.T) {
		o := newTestOrder(t, []order.Item{mustItem(t, "10.00", 1)}, "0")
		require.NoError(t, o.ChangeStatus(order.Preparing))
		require.NoError(t, o.ChangeStatus(order.OutForDelivery))

		require.ErrorIs(t, o.Cancel(), errs.ErrInvalidTransition)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should round-trip an order through restore", func(t *testing.T) {
		original := newTestOrder(t, []order.Item{mustItem(t, "20.00", 1), mustItem(t, "50.00", 1)}, "10.00")

		restored, err := order.RestoreOrder(
			original.ID(),
			original.ConsumerID(),
			original.RestaurantID(),
			original.DeliveryAddress(),
			original.OrderDate(),
			original.Status(),
			original.Subtotal(),
			original.DeliveryTax(),
			original.Total(),
			original.Items(),
			3,
		)

		require.NoError(t, err)
		assert.True(t, restored.IsEqual(original))
		assert.True(t, restored.Total().IsEqual(restored.Subtotal().Add(restored.DeliveryTax())))
		assert.Equal(t, 3, restored.Version())
		assert.Empty(t, restored.Events())
	})

	t.Run("should reject stored values breaking the total invariant", func(t *testing.T) {
		o := newTestOrder(t, []order.Item{mustItem(t, "20.00", 1)}, "10.00")

		_, err := order.RestoreOrder(
			o.ID(), o.ConsumerID(), o.RestaurantID(), o.DeliveryAddress(), o.OrderDate(),
			o.Status(), o.Subtotal(), o.DeliveryTax(), kernel.MustNewMoney("99.99"),
			o.Items(), 0,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject an invalid stored status", func(t *testing.T) {
		o := newTestOrder(t, []order.Item{mustItem(t, "20.00", 1)}, "0")

		_, err := order.RestoreOrder(
			o.ID(), o.ConsumerID(), o.RestaurantID(), o.DeliveryAddress(), o.OrderDate(),
			order.Unknown, o.Subtotal(), o.DeliveryTax(), o.Total(), o.Items(), 0,
		)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("nil and zero-value orders are not constructed", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
		require.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
	})
}

package consumer_test

import (
	"testing"

	"foodorder/internal/core/domain/model/consumer"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConsumer(t *testing.T) {
	t.Run("should create an active consumer", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := consumer.NewConsumer(id, "Ana Souza", "ana@example.com", "+55 11 99999-0000", "Rua Augusta 500")

		require.NoError(t, err)
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "Ana Souza", c.Name())
		assert.Equal(t, "ana@example.com", c.Email())
		assert.Equal(t, "Rua Augusta 500", c.Address())
		assert.True(t, c.IsActive())
		require.NoError(t, c.Validate())
	})

	t.Run("should allow an empty phone", func(t *testing.T) {
		c, err := consumer.NewConsumer(kernel.NewUUID(), "Ana", "ana@example.com", "", "Rua Augusta 500")

		require.NoError(t, err)
		assert.Empty(t, c.Phone())
	})

	t.Run("should reject missing required fields", func(t *testing.T) {
		testCases := []struct {
			name    string
			cName   string
			email   string
			address string
		}{
			{"empty name", "", "ana@example.com", "Rua Augusta 500"},
			{"blank name", "   ", "ana@example.com", "Rua Augusta 500"},
			{"empty email", "Ana", "", "Rua Augusta 500"},
			{"empty address", "Ana", "ana@example.com", ""},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := consumer.NewConsumer(kernel.NewUUID(), tc.cName, tc.email, "", tc.address)
				require.ErrorIs(t, err, errs.ErrValueIsRequired)
			})
		}
	})

	t.Run("should reject malformed emails", func(t *testing.T) {
		for _, email := range []string{"not-an-email", "@example.com", "ana@"} {
			_, err := consumer.NewConsumer(kernel.NewUUID(), "Ana", email, "", "Rua Augusta 500")
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestConsumer_SoftDisable(t *testing.T) {
	t.Run("disable and enable toggle the active flag", func(t *testing.T) {
		c, err := consumer.NewConsumer(kernel.NewUUID(), "Ana", "ana@example.com", "", "Rua Augusta 500")
		require.NoError(t, err)

		c.Disable()
		assert.False(t, c.IsActive())

		c.Enable()
		assert.True(t, c.IsActive())
	})
}

func TestConsumer_ChangeAddress(t *testing.T) {
	t.Run("updates the address for future orders", func(t *testing.T) {
		c, err := consumer.NewConsumer(kernel.NewUUID(), "Ana", "ana@example.com", "", "Rua Augusta 500")
		require.NoError(t, err)

		require.NoError(t, c.ChangeAddress("Alameda Santos 200"))
		assert.Equal(t, "Alameda Santos 200", c.Address())
	})

	t.Run("rejects a blank address", func(t *testing.T) {
		c, err := consumer.NewConsumer(kernel.NewUUID(), "Ana", "ana@example.com", "", "Rua Augusta 500")
		require.NoError(t, err)

		require.Error(t, c.ChangeAddress(" "))
		assert.Equal(t, "Rua Augusta 500", c.Address())
	})
}

func TestRestoreConsumer(t *testing.T) {
	t.Run("restores the stored active flag", func(t *testing.T) {
		c, err := consumer.RestoreConsumer(kernel.NewUUID(), "Ana", "ana@example.com", "", "Rua Augusta 500", false)

		require.NoError(t, err)
		assert.False(t, c.IsActive())
	})
}

func TestConsumer_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var c *consumer.Consumer
		require.ErrorIs(t, c.Validate(), consumer.ErrConsumerIsNotConstructed)
		require.ErrorIs(t, (&consumer.Consumer{}).Validate(), consumer.ErrConsumerIsNotConstructed)
	})
}

package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/pointward/gateway/internal/errors"
)

type balance struct {
	ShopID string
	Points int64
}

type namedBalance struct {
	ShopName string
	Points   int64
}

func TestZip(t *testing.T) {
	t.Run("PairsPositionally", func(t *testing.T) {
		balances := []balance{
			{ShopID: "shop1", Points: 100},
			{ShopID: "shop2", Points: 50},
		}
		names := []string{"Acme", "Beta"}

		enriched, err := Zip(balances, names, func(b balance, name string) namedBalance {
			return namedBalance{ShopName: name, Points: b.Points}
		})

		require.NoError(t, err)
		assert.Equal(t, []namedBalance{
			{ShopName: "Acme", Points: 100},
			{ShopName: "Beta", Points: 50},
		}, enriched)
	})

	t.Run("LengthMismatchIsInconsistent", func(t *testing.T) {
		balances := []balance{
			{ShopID: "shop1", Points: 100},
			{ShopID: "shop2", Points: 50},
		}
		names := []string{"Acme"}

		enriched, err := Zip(balances, names, func(b balance, name string) namedBalance {
			return namedBalance{ShopName: name, Points: b.Points}
		})

		assert.Nil(t, enriched)
		assert.True(t, apperrors.Is(err, apperrors.ErrInconsistent))
	})

	t.Run("EmptyListsStayEmpty", func(t *testing.T) {
		enriched, err := Zip([]balance{}, []string{}, func(b balance, name string) namedBalance {
			return namedBalance{ShopName: name, Points: b.Points}
		})

		require.NoError(t, err)
		assert.Empty(t, enriched)
	})
}

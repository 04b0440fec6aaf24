package application

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerator_Deterministic(t *testing.T) {
	opts := DefaultGeneratorOptions()
	opts.Orders = 200

	g1, err := NewGenerator(opts)
	require.NoError(t, err)
	g2, err := NewGenerator(opts)
	require.NoError(t, err)

	a, err := g1.Generate()
	require.NoError(t, err)
	b, err := g2.Generate()
	require.NoError(t, err)

	require.Equal(t, a.RowCounts(), b.RowCounts())
	require.Equal(t, a.Orders[0].ID(), b.Orders[0].ID())
	require.Equal(t, a.OrderItems[10].Price(), b.OrderItems[10].Price())
	require.Len(t, string(a.Orders[0].ID()), 32)
}

func TestGenerator_Shape(t *testing.T) {
	opts := DefaultGeneratorOptions()
	opts.Orders = 500

	g, err := NewGenerator(opts)
	require.NoError(t, err)
	ds, err := g.Generate()
	require.NoError(t, err)

	require.Len(t, ds.Orders, 500)
	require.GreaterOrEqual(t, len(ds.OrderItems), 500)
	require.LessOrEqual(t, len(ds.OrderItems), 1500)

	for _, o := range ds.Orders {
		if o.Status().IsDelivered() {
			require.NotEmpty(t, o.DeliveredCustomerDate())
		} else {
			require.Empty(t, o.DeliveredCustomerDate())
		}
	}
	for _, r := range ds.Reviews {
		if s, ok := r.Score(); ok {
			require.GreaterOrEqual(t, s, 1)
			require.LessOrEqual(t, s, 5)
		}
	}
}

func TestNewGenerator_Invalid(t *testing.T) {
	opts := DefaultGeneratorOptions()
	opts.Orders = 0
	_, err := NewGenerator(opts)
	require.Error(t, err)

	opts = DefaultGeneratorOptions()
	opts.Years = 0
	_, err = NewGenerator(opts)
	require.Error(t, err)
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMonthWindow_Contains(t *testing.T) {
	tests := []struct {
		name   string
		window MonthWindow
		year   int
		month  int
		want   bool
	}{
		{"unbounded", Unbounded(), 1999, 7, true},
		{"start inclusive", MonthWindow{StartYear: 2023, StartMonth: 3}, 2023, 3, true},
		{"before start month", MonthWindow{StartYear: 2023, StartMonth: 3}, 2023, 2, false},
		{"later year ignores start month", MonthWindow{StartYear: 2022, StartMonth: 11}, 2023, 1, true},
		{"end inclusive", MonthWindow{EndYear: 2023, EndMonth: 6}, 2023, 6, true},
		{"after end month", MonthWindow{EndYear: 2023, EndMonth: 6}, 2023, 7, false},
		{"earlier year ignores end month", MonthWindow{EndYear: 2023, EndMonth: 2}, 2022, 12, true},
		{"start month defaults to january", MonthWindow{StartYear: 2023}, 2023, 1, true},
		{"end month defaults to december", MonthWindow{EndYear: 2023}, 2023, 12, true},
		{"year after end", MonthWindow{EndYear: 2023}, 2024, 1, false},
		{"both bounds", MonthWindow{StartYear: 2022, StartMonth: 6, EndYear: 2023, EndMonth: 3}, 2022, 12, true},
		{"both bounds outside", MonthWindow{StartYear: 2022, StartMonth: 6, EndYear: 2023, EndMonth: 3}, 2023, 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.window.Contains(tt.year, tt.month))
		})
	}
}

func TestNewMonthWindow_Validation(t *testing.T) {
	_, err := NewMonthWindow(2023, 13, 0, 0)
	require.Error(t, err)

	_, err = NewMonthWindow(-1, 1, 0, 0)
	require.Error(t, err)

	w, err := NewMonthWindow(2022, 0, 2023, 12)
	require.NoError(t, err)
	require.Equal(t, 1, w.EffectiveStartMonth())
	require.Equal(t, 12, w.EffectiveEndMonth())
}

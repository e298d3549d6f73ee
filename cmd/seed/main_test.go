package main

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDemandRows_Valid(t *testing.T) {
	rows := [][]string{
		{"1", "1", "10"},
		{"1", "2", "12.5"},
		{"2", "1", "0"},
	}

	parsed, err := parseDemandRows(rows, 12)
	require.NoError(t, err)
	require.Len(t, parsed, 3)
	assert.Equal(t, demandRow{itemID: 1, week: 2, quantity: 12.5}, parsed[1])
}

func TestParseDemandRows_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]string
		cap     int
		wantErr string
	}{
		{
			"week beyond the cap",
			[][]string{{"1", "13", "10"}},
			12,
			"exceeds the 12-week history cap",
		},
		{
			"negative quantity",
			[][]string{{"1", "1", "-3"}},
			12,
			"must not be negative",
		},
		{
			"week zero",
			[][]string{{"1", "0", "10"}},
			12,
			"must be at least 1",
		},
		{
			"gap in weeks",
			[][]string{{"1", "1", "10"}, {"1", "3", "10"}},
			12,
			"contiguous from 1",
		},
		{
			"not starting at week 1",
			[][]string{{"1", "2", "10"}},
			12,
			"contiguous from 1",
		},
		{
			"duplicate week",
			[][]string{{"1", "1", "10"}, {"1", "1", "11"}},
			12,
			"contiguous from 1",
		},
		{
			"malformed quantity",
			[][]string{{"1", "1", "ten"}},
			12,
			"invalid quantity",
		},
		{
			"nonsense cap",
			[][]string{{"1", "1", "10"}},
			0,
			"history cap must be at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseDemandRows(tt.rows, tt.cap)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseDemandRows_CapBoundsEveryItem(t *testing.T) {
	// A full 12-week history is the densest legal seed per item.
	rows := make([][]string, 0, 12)
	for week := 1; week <= 12; week++ {
		rows = append(rows, []string{"7", strconv.Itoa(week), "5"})
	}

	parsed, err := parseDemandRows(rows, 12)
	require.NoError(t, err)
	assert.Len(t, parsed, 12)
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	day, ok := ParseDay("2024-06-15")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), day)

	// older exports stored full timestamps
	day, ok = ParseDay("2024-06-15T18:30:00Z")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), day)

	_, ok = ParseDay("15/06/2024")
	assert.False(t, ok)
	_, ok = ParseDay("")
	assert.False(t, ok)
}

func TestRecordTotals(t *testing.T) {
	record := ServiceRecord{
		LaborHours: 2.5,
		LaborRate:  400000,
		Parts: []ServicePart{
			{PartName: "Oil Filter", Quantity: 1, UnitPrice: 249000, TotalPrice: 249000},
			{PartName: "Coolant", Quantity: 2, UnitPrice: 289000, TotalPrice: 578000},
		},
	}

	assert.Equal(t, 1000000.0, record.LaborTotal())
	assert.Equal(t, 827000.0, record.PartsTotal())
}

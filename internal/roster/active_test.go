package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveDutyDate(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"night shift after midnight", time.Date(2026, 1, 5, 3, 0, 0, 0, time.UTC), "2026-01-04"},
		{"just before cutoff", time.Date(2026, 1, 5, 5, 59, 59, 0, time.UTC), "2026-01-04"},
		{"at cutoff", time.Date(2026, 1, 5, 6, 0, 0, 0, time.UTC), "2026-01-05"},
		{"late evening", time.Date(2026, 1, 5, 23, 0, 0, 0, time.UTC), "2026-01-05"},
		{"new year night", time.Date(2026, 1, 1, 1, 0, 0, 0, time.UTC), "2025-12-31"},
		{"local wall clock", time.Date(2026, 1, 5, 2, 0, 0, 0, time.FixedZone("UTC+8", 8*3600)), "2026-01-04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveDutyDate(tt.now).Format("2006-01-02"))
		})
	}
}

func TestMarkActiveDuty(t *testing.T) {
	now := time.Date(2026, 1, 5, 3, 0, 0, 0, time.UTC)
	rows := MarkActiveDuty(International(2026), now)

	marked := []int{}
	for i, row := range rows {
		if row.IsActiveDuty {
			marked = append(marked, i)
		}
	}
	require.Len(t, marked, 1)
	assert.Equal(t, rowOf(rows, "2026-01-04"), marked[0])
	assert.Equal(t, 10, marked[0])
}

func TestMarkActiveDuty_OtherYear(t *testing.T) {
	now := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	rows := MarkActiveDuty(International(2024), now)

	for _, row := range rows {
		assert.False(t, row.IsActiveDuty)
	}
}

func TestMarkActiveDuty_ResetsPreviousMark(t *testing.T) {
	rows := MarkActiveDuty(International(2026), time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	rows = MarkActiveDuty(rows, time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC))

	count := 0
	for _, row := range rows {
		if row.IsActiveDuty {
			count++
			assert.Equal(t, rowOf(rows, "2026-03-02"), row.Index)
		}
	}
	assert.Equal(t, 1, count)
}

func TestYearsWindow(t *testing.T) {
	years := YearsWindow(2026)

	require.Len(t, years, 101)
	assert.Equal(t, 1976, years[0])
	assert.Equal(t, 2026, years[50])
	assert.Equal(t, 2076, years[100])
}

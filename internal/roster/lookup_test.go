package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/domain"
)

func TestInternationalOn_AgreesWithYearTable(t *testing.T) {
	rows := International(2026)
	for _, d := range []time.Time{
		date(2026, time.January, 1),
		date(2026, time.February, 28),
		date(2026, time.July, 15),
		date(2026, time.December, 31),
	} {
		duty := InternationalOn(d)
		idx := rowOf(rows, d.Format("2006-01-02"))
		require.NotEqual(t, -1, idx)

		assert.Equal(t, idx, duty.RowIndex)
		assert.Equal(t, rows[idx].Morning, duty.Morning)
		assert.Equal(t, rows[idx].Evening, duty.Evening)
		assert.Equal(t, rows[idx].Night, duty.Night)
		assert.Equal(t, rows[idx].Off, duty.Off)
	}
}

func TestDomesticOn_AgreesWithYearTable(t *testing.T) {
	rows := Domestic(2027)
	for _, d := range []time.Time{
		date(2027, time.January, 31),
		date(2027, time.March, 3),
		date(2027, time.October, 20),
	} {
		duty := DomesticOn(d)
		cell := rows[d.Day()-1].Months[int(d.Month())]
		require.NotNil(t, cell)

		assert.Equal(t, cell.FullDate, duty.Date)
		assert.Equal(t, cell.DayName, duty.DayName)
		assert.Equal(t, cell.Morning, duty.Morning)
		assert.Equal(t, cell.Evening, duty.Evening)
	}
}

func TestCurrentDuty_UsesEffectiveDateForInternational(t *testing.T) {
	now := time.Date(2026, 1, 5, 3, 0, 0, 0, time.UTC)
	duty := CurrentDuty(now)

	assert.Equal(t, "2026-01-04", duty.International.Date)
	assert.Equal(t, "2026-01-05", duty.Domestic.Date)
	assert.Equal(t, domain.CrewB, duty.Domestic.Morning)
}

func TestDutyOn_AnchorDate(t *testing.T) {
	duty := DutyOn(AnchorDate)

	assert.Equal(t, "2025-12-31", duty.International.Date)
	assert.Equal(t, 6, duty.International.RowIndex)
	assert.Equal(t, domain.CrewB, duty.International.Morning)
	assert.Equal(t, domain.CrewB, duty.Domestic.Morning)
	assert.Equal(t, domain.CrewA, duty.Domestic.Evening)
}

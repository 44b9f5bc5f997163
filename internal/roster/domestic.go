package roster

import (
	"time"

	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/domain"
)

const (
	domesticCycle = 6
	domesticBlock = 3
	maxMonthDays  = 31
)

// calendarDate 在日期不存在（例如 2 月 30 日）时返回 false
func calendarDate(year int, month time.Month, day int) (time.Time, bool) {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if d.Month() != month {
		return time.Time{}, false
	}
	return d, true
}

// domesticPair 返回某天的早班和中班班组。
// 2025-12-31 是旧周期的最后一天，2026-01-01 开始新的 6 天周期
func domesticPair(d time.Time) (morning, evening domain.Crew) {
	if floorMod(daysFromAnchor(d)-1, domesticCycle) < domesticBlock {
		return domain.CrewA, domain.CrewB
	}
	return domain.CrewB, domain.CrewA
}

// Domestic 生成 year 年的国内排班表，共 31 行，每行对应每月的同一天
func Domestic(year int) []domain.DomesticRow {
	rows := make([]domain.DomesticRow, 0, maxMonthDays)
	for day := 1; day <= maxMonthDays; day++ {
		row := domain.DomesticRow{
			DayNum: day,
			Months: make(map[int]*domain.DomesticCell, 12),
		}
		for m := time.January; m <= time.December; m++ {
			d, ok := calendarDate(year, m, day)
			if !ok {
				row.Months[int(m)] = nil
				continue
			}
			morning, evening := domesticPair(d)
			row.Months[int(m)] = &domain.DomesticCell{
				Date:     d,
				FullDate: d.Format(dateLayout),
				DayName:  d.Format("Mon"),
				Morning:  morning,
				Evening:  evening,
			}
		}
		rows = append(rows, row)
	}
	return rows
}

package roster

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/domain"
	"github.com/teambition/rrule-go"
)

const (
	backboneRows = 32
	cycleLength  = 8

	// 2025-12-31 B 班早班第一天，对应骨架第 6 行
	anchorRow = 6

	// rrule 只支持到 9999 年，并且会把零值 Dtstart（公元 1 年 1 月 1 日）当成当前时间
	minRRuleYear = 2
	maxRRuleYear = 9999
)

// 每个班组在骨架第 0 行所处的周期位置：0/1 早班，2/3 中班，4/5 夜班，6/7 休息
var crewOffsets = []struct {
	crew   domain.Crew
	offset int
}{
	{domain.CrewA, 0},
	{domain.CrewB, 2},
	{domain.CrewC, 4},
	{domain.CrewD, 6},
}

func slotForState(state int) domain.ShiftSlot {
	switch state / 2 {
	case 0:
		return domain.SlotMorning
	case 1:
		return domain.SlotEvening
	case 2:
		return domain.SlotNight
	default:
		return domain.SlotOff
	}
}

// Backbone 生成 32 行的班次骨架，不含任何日期
func Backbone() []domain.BackboneRow {
	rows := make([]domain.BackboneRow, backboneRows)
	for r := range rows {
		row := domain.BackboneRow{
			Index:  r,
			Months: make(map[int]*domain.DateCell, 12),
		}
		for m := 1; m <= 12; m++ {
			row.Months[m] = nil
		}

		state := r % cycleLength
		for _, co := range crewOffsets {
			switch slotForState((co.offset + state) % cycleLength) {
			case domain.SlotMorning:
				row.Morning = co.crew
			case domain.SlotEvening:
				row.Evening = co.crew
			case domain.SlotNight:
				row.Night = co.crew
			case domain.SlotOff:
				row.Off = co.crew
			}
		}
		rows[r] = row
	}
	return rows
}

// rowIndex 返回某个日期所在的骨架行
func rowIndex(d time.Time) int {
	return floorMod(anchorRow+daysFromAnchor(d), backboneRows)
}

// International 生成 year 年的国际排班表：先生成骨架，再把当年的每一天填到对应的行中
func International(year int) []domain.BackboneRow {
	rows := Backbone()
	for _, d := range daysOfYear(year) {
		rows[rowIndex(d)].Months[int(d.Month())] = &domain.DateCell{
			Text:     d.Format("02 Mon-06"),
			FullDate: d.Format(dateLayout),
			Day:      d.Day(),
		}
	}
	return rows
}

// daysOfYear 按顺序返回 year 年的每一天
func daysOfYear(year int) []time.Time {
	first := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	if year >= minRRuleYear && year <= maxRRuleYear {
		days, err := dailyRule(first, last)
		if err == nil {
			return days
		}
		slog.Warn("无法生成每日规则，改为逐日遍历", "year", year, "error", err)
	}

	days := make([]time.Time, 0, 366)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// dailyRule 用 rrule 生成 [first, last] 之间的每一天
func dailyRule(first, last time.Time) ([]time.Time, error) {
	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: first,
		Until:   last,
	})
	if err != nil {
		return nil, fmt.Errorf("无法创建每日规则 %s ~ %s: %w", first.Format(dateLayout), last.Format(dateLayout), err)
	}
	return rule.All(), nil
}

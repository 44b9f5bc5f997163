package roster

import (
	"time"

	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/domain"
)

// 夜班 22:00 ~ 06:00，跨过零点的部分仍算作开始那天的值班
const nightShiftEndHour = 6

// EffectiveDutyDate 返回 now 所属的值班日期
func EffectiveDutyDate(now time.Time) time.Time {
	d := civilDate(now)
	if now.Hour() < nightShiftEndHour {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

// MarkActiveDuty 标记包含当前值班日期的那一行。
// 表中没有这一天（例如查看的是别的年份）时不标记任何行
func MarkActiveDuty(rows []domain.BackboneRow, now time.Time) []domain.BackboneRow {
	active := EffectiveDutyDate(now).Format(dateLayout)
	for i := range rows {
		rows[i].IsActiveDuty = false
		for _, cell := range rows[i].Months {
			if cell != nil && cell.FullDate == active {
				rows[i].IsActiveDuty = true
				break
			}
		}
	}
	return rows
}

package roster

import (
	"time"

	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/domain"
)

var backbone = Backbone()

// InternationalOn 返回 d 这一天的国际排班，不需要生成整年的表
func InternationalOn(d time.Time) domain.InternationalDuty {
	idx := rowIndex(d)
	row := backbone[idx]
	return domain.InternationalDuty{
		Date:     civilDate(d).Format(dateLayout),
		RowIndex: idx,
		Morning:  row.Morning,
		Evening:  row.Evening,
		Night:    row.Night,
		Off:      row.Off,
	}
}

func DomesticOn(d time.Time) domain.DomesticDuty {
	morning, evening := domesticPair(d)
	return domain.DomesticDuty{
		Date:    civilDate(d).Format(dateLayout),
		DayName: d.Format("Mon"),
		Morning: morning,
		Evening: evening,
	}
}

// DutyOn 返回某个日历日期的两种排班
func DutyOn(d time.Time) domain.DutySummary {
	return domain.DutySummary{
		International: InternationalOn(d),
		Domestic:      DomesticOn(d),
	}
}

// CurrentDuty 返回 now 时刻正在值班的排班，国际排班按夜班归属折算日期
func CurrentDuty(now time.Time) domain.DutySummary {
	return domain.DutySummary{
		International: InternationalOn(EffectiveDutyDate(now)),
		Domestic:      DomesticOn(now),
	}
}

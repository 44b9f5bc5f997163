package roster

import "time"

const (
	dateLayout    = "2006-01-02"
	secondsPerDay = 24 * 60 * 60
)

// AnchorDate 固定了轮换的相位，所有排班都由与它相差的天数推出，不能改成"今天"
var AnchorDate = time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)

// civilDate 只保留墙上时间的年月日
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysFromAnchor 返回 d 与 AnchorDate 相差的天数，d 在基准之前时为负数。
// 用 Unix 秒而不是 time.Duration，后者超过约 292 年会饱和
func daysFromAnchor(d time.Time) int {
	return int((civilDate(d).Unix() - AnchorDate.Unix()) / secondsPerDay)
}

// floorMod 的结果总是落在 [0, n)
func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

package roster

const yearsAround = 50

// YearsWindow 返回 currentYear 前后各 50 年，用于年份选择
func YearsWindow(currentYear int) []int {
	years := make([]int, 0, 2*yearsAround+1)
	for y := currentYear - yearsAround; y <= currentYear+yearsAround; y++ {
		years = append(years, y)
	}
	return years
}

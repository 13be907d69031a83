package services

// DistributeTrainingDays spreads the requested number of sessions across the
// week, Monday=1 through Sunday=7, keeping rest days between sessions where
// possible. Counts outside 1..7 fall back to the first N weekdays.
func DistributeTrainingDays(daysPerWeek int) []int {
	switch daysPerWeek {
	case 1:
		return []int{1}
	case 2:
		return []int{1, 4}
	case 3:
		return []int{1, 3, 5}
	case 4:
		return []int{1, 3, 5, 7}
	case 5:
		return []int{1, 2, 4, 5, 7}
	case 6:
		return []int{1, 2, 3, 5, 6, 7}
	}

	if daysPerWeek >= 7 {
		return []int{1, 2, 3, 4, 5, 6, 7}
	}

	days := make([]int, 0)
	for day := 1; day <= daysPerWeek; day++ {
		days = append(days, day)
	}
	return days
}

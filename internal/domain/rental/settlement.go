package rental

import "time"

// BilledHours converts elapsed rental time into billable hours. Any started
// hour counts as a full hour; a non-positive duration bills zero hours.
func BilledHours(start, actualReturn time.Time) int64 {
	elapsed := actualReturn.Sub(start)
	if elapsed <= 0 {
		return 0
	}

	hours := int64(elapsed / time.Hour)
	if elapsed%time.Hour != 0 {
		hours++
	}
	return hours
}

// SettleCost computes the final rental cost from the car's hourly rate at
// completion time.
func SettleCost(rateCents int64, start, actualReturn time.Time) int64 {
	return rateCents * BilledHours(start, actualReturn)
}

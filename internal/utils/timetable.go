package utils

import "fmt"

// timetableBaseMinutes anchors offset-based timetables at 08:00.
const timetableBaseMinutes = 8 * 60

// ClockFromOffset renders a minutes-from-departure offset as a wall
// clock string ("HH:MM"), anchored at the 08:00 base departure and
// wrapping past midnight.
func ClockFromOffset(offsetMinutes int32) string {
	total := (timetableBaseMinutes + int(offsetMinutes)) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

package calendar

// Full-day closures per venue, 2024–2026, from the exchanges' published
// holiday calendars. Half-days are treated as regular sessions.

var xetrHolidays = holidaySet(
	// 2024
	"2024-01-01", // New Year's Day
	"2024-03-29", // Good Friday
	"2024-04-01", // Easter Monday
	"2024-05-01", // Labour Day
	"2024-12-24", // Christmas Eve
	"2024-12-25", // Christmas Day
	"2024-12-26", // Boxing Day
	"2024-12-31", // New Year's Eve
	// 2025
	"2025-01-01",
	"2025-04-18",
	"2025-04-21",
	"2025-05-01",
	"2025-12-24",
	"2025-12-25",
	"2025-12-26",
	"2025-12-31",
	// 2026
	"2026-01-01",
	"2026-04-03",
	"2026-04-06",
	"2026-05-01",
	"2026-12-24",
	"2026-12-25",
	"2026-12-31",
)

var usHolidays = holidaySet(
	// 2024
	"2024-01-01", // New Year's Day
	"2024-01-15", // Martin Luther King Jr. Day
	"2024-02-19", // Washington's Birthday
	"2024-03-29", // Good Friday
	"2024-05-27", // Memorial Day
	"2024-06-19", // Juneteenth
	"2024-07-04", // Independence Day
	"2024-09-02", // Labor Day
	"2024-11-28", // Thanksgiving Day
	"2024-12-25", // Christmas Day
	// 2025
	"2025-01-01",
	"2025-01-20",
	"2025-02-17",
	"2025-04-18",
	"2025-05-26",
	"2025-06-19",
	"2025-07-04",
	"2025-09-01",
	"2025-11-27",
	"2025-12-25",
	// 2026
	"2026-01-01",
	"2026-01-19",
	"2026-02-16",
	"2026-04-03",
	"2026-05-25",
	"2026-06-19",
	"2026-07-03", // Independence Day observed
	"2026-09-07",
	"2026-11-26",
	"2026-12-25",
)

var lseHolidays = holidaySet(
	// 2024
	"2024-01-01", // New Year's Day
	"2024-03-29", // Good Friday
	"2024-04-01", // Easter Monday
	"2024-05-06", // Early May bank holiday
	"2024-05-27", // Spring bank holiday
	"2024-08-26", // Summer bank holiday
	"2024-12-25", // Christmas Day
	"2024-12-26", // Boxing Day
	// 2025
	"2025-01-01",
	"2025-04-18",
	"2025-04-21",
	"2025-05-05",
	"2025-05-26",
	"2025-08-25",
	"2025-12-25",
	"2025-12-26",
	// 2026
	"2026-01-01",
	"2026-04-03",
	"2026-04-06",
	"2026-05-04",
	"2026-05-25",
	"2026-08-31",
	"2026-12-25",
	"2026-12-28", // Boxing Day observed
)

var tseHolidays = holidaySet(
	// 2024
	"2024-01-01", "2024-01-02", "2024-01-03", // New Year closure
	"2024-01-08", // Coming of Age Day
	"2024-02-12", // National Foundation Day observed
	"2024-02-23", // Emperor's Birthday
	"2024-03-20", // Vernal Equinox
	"2024-04-29", // Showa Day
	"2024-05-03", "2024-05-06", // Golden Week
	"2024-07-15", // Marine Day
	"2024-08-12", // Mountain Day observed
	"2024-09-16", // Respect for the Aged Day
	"2024-09-23", // Autumnal Equinox observed
	"2024-10-14", // Sports Day
	"2024-11-04", // Culture Day observed
	"2024-12-31", // Year-end closure
	// 2025
	"2025-01-01", "2025-01-02", "2025-01-03",
	"2025-01-13",
	"2025-02-11",
	"2025-02-24",
	"2025-03-20",
	"2025-04-29",
	"2025-05-05", "2025-05-06",
	"2025-07-21",
	"2025-08-11",
	"2025-09-15",
	"2025-09-23",
	"2025-10-13",
	"2025-11-03",
	"2025-11-24",
	"2025-12-31",
	// 2026
	"2026-01-01", "2026-01-02",
	"2026-01-12",
	"2026-02-11",
	"2026-02-23",
	"2026-03-20",
	"2026-04-29",
	"2026-05-04", "2026-05-05", "2026-05-06",
	"2026-07-20",
	"2026-08-11",
	"2026-09-21", "2026-09-22", "2026-09-23",
	"2026-10-12",
	"2026-11-03",
	"2026-11-23",
	"2026-12-31",
)

func holidaySet(dates ...string) map[string]bool {
	set := make(map[string]bool, len(dates))
	for _, d := range dates {
		set[d] = true
	}
	return set
}

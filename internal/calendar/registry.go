package calendar

import "sort"

// exchangeSpec defines one venue's regular session in its local zone.
type exchangeSpec struct {
	name        string
	tz          string
	openHour    int
	openMinute  int
	closeHour   int
	closeMinute int
	holidays    map[string]bool // "2006-01-02" keys, local dates
}

var exchanges = map[string]exchangeSpec{
	"XETR": {
		name: "Xetra", tz: "Europe/Berlin",
		openHour: 9, openMinute: 0, closeHour: 17, closeMinute: 30,
		holidays: xetrHolidays,
	},
	"NYSE": {
		name: "New York Stock Exchange", tz: "America/New_York",
		openHour: 9, openMinute: 30, closeHour: 16, closeMinute: 0,
		holidays: usHolidays,
	},
	"NASDAQ": {
		name: "NASDAQ", tz: "America/New_York",
		openHour: 9, openMinute: 30, closeHour: 16, closeMinute: 0,
		holidays: usHolidays,
	},
	"LSE": {
		name: "London Stock Exchange", tz: "Europe/London",
		openHour: 8, openMinute: 0, closeHour: 16, closeMinute: 30,
		holidays: lseHolidays,
	},
	"TSE": {
		name: "Tokyo Stock Exchange", tz: "Asia/Tokyo",
		openHour: 9, openMinute: 0, closeHour: 15, closeMinute: 0,
		holidays: tseHolidays,
	},
}

// SupportedExchanges returns the registry's exchange codes, sorted.
func SupportedExchanges() []string {
	codes := make([]string, 0, len(exchanges))
	for code := range exchanges {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

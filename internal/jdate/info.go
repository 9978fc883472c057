package jdate

// Info describes a date for the info command.
type Info struct {
	Date         string
	Time         string // empty when the input had no time
	Weekday      string
	DayOfYear    int
	DaysInMonth  int
	IsLeapYear   bool
	Gregorian    string
	FirstOfMonth string
	LastOfMonth  string
	FirstOfYear  string
	LastOfYear   string
}

// Describe gathers Info for dt.
func Describe(dt DateTime, withTime bool) Info {
	info := Info{
		Date:         dt.DateString(),
		Weekday:      WeekdayName(dt.Weekday()),
		DayOfYear:    dt.YearDay(),
		DaysInMonth:  DaysInMonth(dt.Year, dt.Month),
		IsLeapYear:   IsLeap(dt.Year),
		FirstOfMonth: DateTime{Year: dt.Year, Month: dt.Month, Day: 1}.DateString(),
		LastOfMonth:  DateTime{Year: dt.Year, Month: dt.Month, Day: DaysInMonth(dt.Year, dt.Month)}.DateString(),
		FirstOfYear:  DateTime{Year: dt.Year, Month: 1, Day: 1}.DateString(),
		LastOfYear:   DateTime{Year: dt.Year, Month: 12, Day: DaysInMonth(dt.Year, 12)}.DateString(),
	}
	g := dt.Gregorian()
	if withTime {
		info.Time = Format(dt, "%T")
		info.Gregorian = g.Format("2006-01-02 15:04:05")
	} else {
		info.Gregorian = g.Format("2006-01-02")
	}
	return info
}

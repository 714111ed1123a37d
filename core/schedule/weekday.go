package schedule

// Weekday labels as stored on class entries.
const (
	Monday    = "Mon"
	Tuesday   = "Tue"
	Wednesday = "Wed"
	Thursday  = "Thu"
	Friday    = "Fri"
	Saturday  = "Sat"
	Sunday    = "Sun"

	// UnknownDayOrdinal is given to labels outside the week; it sorts after Sunday.
	UnknownDayOrdinal = 7
)

// Weekdays lists the labels in canonical order.
var Weekdays = []string{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var dayOrdinals = map[string]int{
	Monday:    0,
	Tuesday:   1,
	Wednesday: 2,
	Thursday:  3,
	Friday:    4,
	Saturday:  5,
	Sunday:    6,
}

// DayOrdinal returns the position of label in the week (Mon=0 ... Sun=6).
// Any other label, including the empty one, yields UnknownDayOrdinal.
func DayOrdinal(label string) int {
	if ord, ok := dayOrdinals[label]; ok {
		return ord
	}
	return UnknownDayOrdinal
}

// DayOrdinals returns a copy of the label -> ordinal table, for stores that compute the ordinal themselves.
func DayOrdinals() map[string]int {
	ords := make(map[string]int, len(dayOrdinals))
	for day, ord := range dayOrdinals {
		ords[day] = ord
	}
	return ords
}

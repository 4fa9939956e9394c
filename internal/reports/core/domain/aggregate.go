package domain

// Snapshot is the read-only aggregate view over one log. It is recomputed
// from scratch on every Aggregate call and never cached, so consumers
// always see the data they were handed, not process-start state.
type Snapshot struct {
	Total        int
	Users        *Counter
	Documents    *Counter
	Tabs         *Counter
	Descriptions *Counter
	Categories   *Counter
	Days         *Counter

	// HourOfWeek counts actions per weekday name per 0-23 hour.
	HourOfWeek map[string]map[int]int

	// CategoryByDay and CategoryByUser back the stacked distribution
	// charts (activity type over time, activities per user).
	CategoryByDay  map[string]map[Category]int
	CategoryByUser map[string]map[Category]int
}

// DayLayout is the date key format of the per-day groupings.
const DayLayout = "2006-01-02"

// Aggregate computes a fresh snapshot over the given log. Records whose
// Time field is absent or unparseable are dropped from the time-based
// groupings only; every record still counts toward the rest.
func Aggregate(log []Record) *Snapshot {
	s := &Snapshot{
		Users:          NewCounter(),
		Documents:      NewCounter(),
		Tabs:           NewCounter(),
		Descriptions:   NewCounter(),
		Categories:     NewCounter(),
		Days:           NewCounter(),
		HourOfWeek:     make(map[string]map[int]int),
		CategoryByDay:  make(map[string]map[Category]int),
		CategoryByUser: make(map[string]map[Category]int),
	}

	for _, rec := range log {
		s.Total++

		user := rec.User()
		s.Users.Add(user)
		s.Documents.Add(rec.Document())
		s.Tabs.Add(rec.Tab())
		s.Descriptions.Add(rec.Description())

		cat := Classify(rec.Description())
		s.Categories.Add(string(cat))

		if s.CategoryByUser[user] == nil {
			s.CategoryByUser[user] = make(map[Category]int)
		}
		s.CategoryByUser[user][cat]++

		ts, ok := rec.Timestamp()
		if !ok {
			continue
		}

		day := ts.Format(DayLayout)
		s.Days.Add(day)

		weekday := ts.Weekday().String()
		if s.HourOfWeek[weekday] == nil {
			s.HourOfWeek[weekday] = make(map[int]int)
		}
		s.HourOfWeek[weekday][ts.Hour()]++

		if s.CategoryByDay[day] == nil {
			s.CategoryByDay[day] = make(map[Category]int)
		}
		s.CategoryByDay[day][cat]++
	}

	return s
}

package manseryeok

import (
	"log/slog"
	"time"
)

// Supported date range. The original lookup table starts in 1841; 2110 is
// the documented upper bound of the supported range.
const (
	MinYear = 1841
	MaxYear = 2110
)

// Record is one calendar lookup result.
type Record struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`

	YearGanji  string `json:"yearGanji"`
	MonthGanji string `json:"monthGanji"`
	DayGanji   string `json:"dayGanji"`

	YearStem    string `json:"yearStem"`
	YearBranch  string `json:"yearBranch"`
	MonthStem   string `json:"monthStem"`
	MonthBranch string `json:"monthBranch"`
	DayStem     string `json:"dayStem"`
	DayBranch   string `json:"dayBranch"`

	LunarMonth  int  `json:"lunarMonth"`
	LunarDay    int  `json:"lunarDay"`
	IsLeapMonth bool `json:"isLeapMonth"`

	Hour       *int   `json:"hour,omitempty"`
	HourStem   string `json:"hourStem,omitempty"`
	HourBranch string `json:"hourBranch,omitempty"`
	HourGanji  string `json:"hourGanji,omitempty"`
}

// LookupCounter records lookup outcomes. Satisfied by metrics.Metrics.
type LookupCounter interface {
	IncrementManseryeokLookups(status string)
}

type Service struct {
	store   *FileStore
	logger  *slog.Logger
	metrics LookupCounter
}

func NewService(store *FileStore, logger *slog.Logger, metrics LookupCounter) *Service {
	return &Service{store: store, logger: logger, metrics: metrics}
}

// ValidDate reports whether the civil date exists on the calendar.
func ValidDate(year, month, day int) bool {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

// Lookup computes the ganji record for a validated date. When the data file
// covers the date, its ganji strings and lunar fields take precedence over
// the computed values.
func (s *Service) Lookup(year, month, day int, hour *int) Record {
	yearStemIdx, yearBranchIdx := yearGanji(year)
	dayStemIdx, dayBranchIdx := dayGanji(year, month, day)

	rec := Record{
		Year:       year,
		Month:      month,
		Day:        day,
		YearStem:   stems[yearStemIdx],
		YearBranch: branches[yearBranchIdx],
		DayStem:    stems[dayStemIdx],
		DayBranch:  branches[dayBranchIdx],
	}
	rec.YearGanji = rec.YearStem + rec.YearBranch
	rec.DayGanji = rec.DayStem + rec.DayBranch

	status := "computed"
	if fd, ok := s.store.lookup(year, month, day); ok {
		status = "file"
		if fd.YearGanji != "" {
			rec.YearGanji, rec.YearStem, rec.YearBranch = fd.YearGanji, fd.YearStem, fd.YearBranch
			yearStemIdx = stemIndex(fd.YearStem, yearStemIdx)
		}
		if fd.DayGanji != "" {
			rec.DayGanji, rec.DayStem, rec.DayBranch = fd.DayGanji, fd.DayStem, fd.DayBranch
			dayStemIdx = stemIndex(fd.DayStem, dayStemIdx)
		}
		rec.LunarMonth = fd.LunarMonth
		rec.LunarDay = fd.LunarDay
		rec.IsLeapMonth = fd.IsLeapMonth
	}

	rec.MonthStem, rec.MonthBranch = monthGanji(month, yearStemIdx)
	rec.MonthGanji = rec.MonthStem + rec.MonthBranch

	if hour != nil {
		stem, branch := hourGanji(*hour, dayStemIdx)
		rec.Hour = hour
		rec.HourStem = stem
		rec.HourBranch = branch
		rec.HourGanji = stem + branch
	}

	if s.metrics != nil {
		s.metrics.IncrementManseryeokLookups(status)
	}
	return rec
}

func stemIndex(stem string, fallback int) int {
	for i, s := range stems {
		if s == stem {
			return i
		}
	}
	return fallback
}

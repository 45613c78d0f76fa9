package manseryeok

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// fileDay is one day entry in the compact data file. Field names match the
// file format: ganji strings plus lunar calendar fields.
type fileDay struct {
	YearGanji   string `json:"yg"`
	YearStem    string `json:"ys"`
	YearBranch  string `json:"yb"`
	DayGanji    string `json:"dg"`
	DayStem     string `json:"ds"`
	DayBranch   string `json:"db"`
	LunarMonth  int    `json:"lm"`
	LunarDay    int    `json:"ld"`
	IsLeapMonth bool   `json:"lp"`
}

// FileStore holds the optional authoritative day table, keyed
// year → month → day. When a date is present here its ganji strings win
// over the computed values, and the lunar fields become available.
type FileStore struct {
	days map[string]map[string]map[string]fileDay
}

// LoadFileStore reads the compact JSON data file. An empty path returns a
// nil store, which every lookup treats as a miss.
func LoadFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manseryeok data: %w", err)
	}

	var days map[string]map[string]map[string]fileDay
	if err := json.Unmarshal(raw, &days); err != nil {
		return nil, fmt.Errorf("parse manseryeok data: %w", err)
	}
	return &FileStore{days: days}, nil
}

func (s *FileStore) lookup(year, month, day int) (fileDay, bool) {
	if s == nil {
		return fileDay{}, false
	}
	months, ok := s.days[strconv.Itoa(year)]
	if !ok {
		return fileDay{}, false
	}
	ds, ok := months[strconv.Itoa(month)]
	if !ok {
		return fileDay{}, false
	}
	d, ok := ds[strconv.Itoa(day)]
	return d, ok
}

// Len reports the number of years in the table. Used for health reporting.
func (s *FileStore) Len() int {
	if s == nil {
		return 0
	}
	return len(s.days)
}

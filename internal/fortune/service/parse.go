package service

import (
	"regexp"
	"strconv"
	"strings"

	"fortune-api/internal/fortune/models"
)

// scoreLineRE pulls "85점 설명..." shaped fragments out of one reading line.
// The 점 suffix and surrounding brackets are optional because the model does
// not always follow the requested format exactly.
var (
	scoreLineRE = regexp.MustCompile(`(\d+)점?\]?\s*(.+)`)
	numberRE    = regexp.MustCompile(`\d+`)
)

// parseDailyResponse turns the line-oriented Korean reading returned by the
// model into the structured daily payload. Lines that fail to parse are
// skipped; a partially parsed reading is still a valid response.
func parseDailyResponse(text string) models.DailyFortune {
	result := models.DailyFortune{
		Scores:       make(map[string]int),
		Descriptions: make(map[string]string),
		AIGenerated:  true,
	}

	sections := map[string]string{
		"종합운:": "overall",
		"애정운:": "love",
		"금전운:": "money",
		"건강운:": "health",
		"직장운:": "work",
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		matched := false
		for marker, key := range sections {
			if !strings.Contains(line, marker) {
				continue
			}
			if m := scoreLineRE.FindStringSubmatch(line); m != nil {
				if score, err := strconv.Atoi(m[1]); err == nil {
					result.Scores[key] = score
					result.Descriptions[key] = strings.TrimSpace(m[2])
				}
			}
			matched = true
			break
		}
		if matched {
			continue
		}

		switch {
		case strings.Contains(line, "오늘의 조언:"):
			result.Advice = trimMarker(line, "오늘의 조언:")
		case strings.Contains(line, "행운의 시간:"):
			result.Luck.Time = trimMarker(line, "행운의 시간:")
		case strings.Contains(line, "행운의 방향:"):
			result.Luck.Direction = trimMarker(line, "행운의 방향:")
		case strings.Contains(line, "행운의 색상:"):
			result.Luck.Color = trimMarker(line, "행운의 색상:")
		case strings.Contains(line, "행운의 숫자:"):
			for _, num := range numberRE.FindAllString(trimMarker(line, "행운의 숫자:"), -1) {
				if n, err := strconv.Atoi(num); err == nil {
					result.Luck.Numbers = append(result.Luck.Numbers, n)
				}
			}
		}
	}

	return result
}

func trimMarker(line, marker string) string {
	if idx := strings.Index(line, marker); idx >= 0 {
		line = line[idx+len(marker):]
	}
	return strings.TrimSpace(line)
}

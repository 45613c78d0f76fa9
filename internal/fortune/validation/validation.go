// Package validation holds the pure input checks guarding the fortune API.
// Checks accumulate errors instead of short-circuiting, and the order of the
// returned errors is a contract consumers assert on.
package validation

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"fortune-api/internal/fortune/models"
)

// Supported birth years match the manseryeok lookup-table range.
const (
	MinYear = 1841
	MaxYear = 2110
)

// MaxInputLength bounds any user string before it reaches a prompt.
const MaxInputLength = 100

// FieldError describes a single failed rule. Message strings are stable;
// clients and tests match on them.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Result is the outcome of validating one request payload.
type Result struct {
	Errors []FieldError `json:"errors"`
}

// Valid reports whether the payload passed every check.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Messages returns the error messages in check order.
func (r Result) Messages() []string {
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Message
	}
	return msgs
}

var zodiacSigns = map[string]bool{
	"aries": true, "taurus": true, "gemini": true, "cancer": true,
	"leo": true, "virgo": true, "libra": true, "scorpio": true,
	"sagittarius": true, "capricorn": true, "aquarius": true, "pisces": true,
}

var zodiacAnimals = map[string]bool{
	"rat": true, "ox": true, "tiger": true, "rabbit": true,
	"dragon": true, "snake": true, "horse": true, "goat": true,
	"monkey": true, "rooster": true, "dog": true, "pig": true,
}

var dateLayouts = []string{"2006-01-02", "2006-1-2", time.RFC3339}

// sanitizeReplacer strips characters usable for HTML injection or for
// breaking out of a prompt template.
var sanitizeReplacer = strings.NewReplacer(
	"<", "",
	">", "",
	"\\", "",
	"{", "",
	"}", "",
	"\n", " ",
	"\r", " ",
)

// Sanitize neutralizes a user string before it is concatenated into an LLM
// prompt or rendered: angle brackets, backslashes and braces are removed,
// newlines collapse to spaces, and the result is truncated to MaxInputLength.
func Sanitize(input string) string {
	cleaned := sanitizeReplacer.Replace(input)
	// Truncate by runes, not bytes; names and prompts are mostly Hangul.
	if utf8.RuneCountInString(cleaned) > MaxInputLength {
		cleaned = string([]rune(cleaned)[:MaxInputLength])
	}
	return cleaned
}

// ValidGender reports whether the value is exactly "male" or "female".
func ValidGender(gender string) bool {
	return gender == "male" || gender == "female"
}

// ValidZodiac reports whether the value is one of the 12 canonical western
// sign identifiers. Matching is case-sensitive: "Aries" is rejected.
func ValidZodiac(zodiac string) bool {
	return zodiacSigns[zodiac]
}

// ValidAnimalZodiac reports whether the value is one of the 12 East Asian
// zodiac animal identifiers.
func ValidAnimalZodiac(animal string) bool {
	return zodiacAnimals[animal]
}

// ValidHour reports whether the value coerces to an hour of day (0..23).
func ValidHour(hour string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(hour))
	return err == nil && n >= 0 && n <= 23
}

// CheckDate validates a birth date string. A parse failure and an
// out-of-range year are distinct errors.
func CheckDate(dateStr string) *FieldError {
	var parsed time.Time
	var err error
	for _, layout := range dateLayouts {
		if parsed, err = time.Parse(layout, dateStr); err == nil {
			break
		}
	}
	if err != nil {
		return &FieldError{Field: "birthDate", Rule: "format", Message: "Invalid date format"}
	}
	if year := parsed.Year(); year < MinYear || year > MaxYear {
		return &FieldError{Field: "birthDate", Rule: "range", Message: "Date must be between 1841 and 2110"}
	}
	return nil
}

// ValidateRequest checks (type, data) and returns every violated rule in the
// order the checks ran. It never panics and never short-circuits.
func ValidateRequest(fortuneType models.FortuneType, data models.FortuneData) Result {
	var errs []FieldError

	switch fortuneType {
	case models.TypeDaily:
		if strings.TrimSpace(data.Name) == "" {
			errs = append(errs, FieldError{Field: "name", Rule: "required", Message: "Name is required"})
		}
		if data.BirthDate == "" {
			errs = append(errs, FieldError{Field: "birthDate", Rule: "required", Message: "Birth date is required"})
		} else if fe := CheckDate(data.BirthDate); fe != nil {
			errs = append(errs, *fe)
		}
		if data.Gender == "" || !ValidGender(data.Gender) {
			errs = append(errs, FieldError{Field: "gender", Rule: "enum", Message: "Valid gender is required (male/female)"})
		}

	case models.TypeZodiac:
		if data.Zodiac == "" || !ValidZodiac(data.Zodiac) {
			errs = append(errs, FieldError{Field: "zodiac", Rule: "enum", Message: "Valid zodiac sign is required"})
		}

	case models.TypeZodiacAnimal:
		if data.Animal == "" || !ValidAnimalZodiac(data.Animal) {
			errs = append(errs, FieldError{Field: "animal", Rule: "enum", Message: "Valid animal zodiac is required"})
		}

	case models.TypeSaju:
		if data.YearPillar == "" || data.MonthPillar == "" || data.DayPillar == "" || data.HourPillar == "" {
			errs = append(errs, FieldError{Field: "pillars", Rule: "required", Message: "All four pillars are required"})
		}

	case models.TypeGeneral, models.TypeTarot:
		if data.Prompt == "" && data.CardNumber == nil {
			errs = append(errs, FieldError{Field: "prompt", Rule: "required", Message: "Prompt or card selection is required"})
		}

	default:
		errs = append(errs, FieldError{Field: "type", Rule: "enum", Message: "Invalid fortune type"})
	}

	return Result{Errors: errs}
}

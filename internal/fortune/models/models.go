package models

// FortuneType selects which validation and generation path a request takes.
type FortuneType string

const (
	TypeDaily        FortuneType = "daily"
	TypeZodiac       FortuneType = "zodiac"
	TypeZodiacAnimal FortuneType = "zodiac-animal"
	TypeSaju         FortuneType = "saju"
	TypeGeneral      FortuneType = "general"
	TypeTarot        FortuneType = "tarot"
)

func (t FortuneType) IsValid() bool {
	switch t {
	case TypeDaily, TypeZodiac, TypeZodiacAnimal, TypeSaju, TypeGeneral, TypeTarot:
		return true
	}
	return false
}

// UsesLLM reports whether generation for this type goes through the upstream
// generative-text provider. Zodiac types are served from local tables.
func (t FortuneType) UsesLLM() bool {
	switch t {
	case TypeDaily, TypeSaju, TypeGeneral, TypeTarot:
		return true
	}
	return false
}

func (t FortuneType) String() string {
	return string(t)
}

// FortuneRequest is the body of POST /api/fortune. It exists only for the
// duration of one request; nothing is persisted.
type FortuneRequest struct {
	Type FortuneType `json:"type"`
	Data FortuneData `json:"data"`
}

// FortuneData carries the union of per-type payload fields. Which fields are
// required depends on Type; the validator enforces that.
type FortuneData struct {
	// daily
	Name      string `json:"name,omitempty"`
	BirthDate string `json:"birthDate,omitempty"`
	BirthTime string `json:"birthTime,omitempty"`
	Gender    string `json:"gender,omitempty"`

	// zodiac / zodiac-animal
	Zodiac string `json:"zodiac,omitempty"`
	Animal string `json:"animal,omitempty"`

	// saju
	YearPillar  string `json:"yearPillar,omitempty"`
	MonthPillar string `json:"monthPillar,omitempty"`
	DayPillar   string `json:"dayPillar,omitempty"`
	HourPillar  string `json:"hourPillar,omitempty"`

	// general / tarot
	Prompt     string `json:"prompt,omitempty"`
	CardNumber *int   `json:"cardNumber,omitempty"`
}

// DailyFortune is the parsed shape of an LLM daily reading.
type DailyFortune struct {
	Scores       map[string]int    `json:"scores"`
	Descriptions map[string]string `json:"descriptions"`
	Advice       string            `json:"advice,omitempty"`
	Luck         Luck              `json:"luck"`
	AIGenerated  bool              `json:"aiGenerated"`
}

// Luck collects the "lucky" lines of a daily reading.
type Luck struct {
	Time      string `json:"time,omitempty"`
	Direction string `json:"direction,omitempty"`
	Color     string `json:"color,omitempty"`
	Numbers   []int  `json:"numbers,omitempty"`
}

// TextFortune wraps free-form generated text (saju, tarot, general).
type TextFortune struct {
	Text        string `json:"text"`
	AIGenerated bool   `json:"aiGenerated"`
}

// ZodiacProfile identifies a western zodiac sign in responses.
type ZodiacProfile struct {
	Sign         string `json:"sign"`
	Name         string `json:"name"`
	Symbol       string `json:"symbol"`
	Element      string `json:"element"`
	RulingPlanet string `json:"rulingPlanet"`
	Dates        string `json:"dates"`
}

// ZodiacLucky carries the lucky attributes of a zodiac reading.
type ZodiacLucky struct {
	Numbers []int    `json:"numbers"`
	Colors  []string `json:"colors"`
}

// ZodiacFortune is the deterministic zodiac reading served without any
// upstream call. The same sign and date always produce the same reading.
type ZodiacFortune struct {
	Zodiac      ZodiacProfile  `json:"zodiac"`
	Overall     string         `json:"overall"`
	Scores      map[string]int `json:"scores"`
	Traits      []string       `json:"traits"`
	Advice      string         `json:"advice"`
	Lucky       ZodiacLucky    `json:"lucky"`
	Date        string         `json:"date"`
	AIGenerated bool           `json:"aiGenerated"`
}

// AnimalProfile identifies an East Asian zodiac animal in responses.
type AnimalProfile struct {
	Sign      string `json:"sign"`
	Name      string `json:"name"`
	Hanja     string `json:"hanja"`
	Element   string `json:"element"`
	Direction string `json:"direction"`
	Hours     string `json:"hours"`
	Season    string `json:"season"`
}

// AnimalLucky carries the lucky attributes of an animal zodiac reading.
type AnimalLucky struct {
	Numbers    []int    `json:"numbers"`
	Colors     []string `json:"colors"`
	Directions []string `json:"directions"`
}

// AnimalCompatibility lists the traditionally favorable and unfavorable
// pairings for an animal sign.
type AnimalCompatibility struct {
	Best  []string `json:"best"`
	Worst []string `json:"worst"`
}

// AnimalFortune is the deterministic animal zodiac reading.
type AnimalFortune struct {
	Animal        AnimalProfile       `json:"animal"`
	Personality   string              `json:"personality"`
	Traits        []string            `json:"traits"`
	Overall       string              `json:"overall"`
	Scores        map[string]int      `json:"scores"`
	Advice        string              `json:"advice"`
	Lucky         AnimalLucky         `json:"lucky"`
	Compatibility AnimalCompatibility `json:"compatibility"`
	Date          string              `json:"date"`
	AIGenerated   bool                `json:"aiGenerated"`
}

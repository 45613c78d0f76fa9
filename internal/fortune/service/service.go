// Package service generates fortune readings. Zodiac and animal readings
// are produced locally from fixed trait tables keyed by sign and date; the
// remaining types build a sanitized Korean prompt and go through the
// upstream completion client.
package service

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"fortune-api/internal/fortune/models"
	"fortune-api/internal/llm"
	dErrors "fortune-api/pkg/domain-errors"
)

// Metrics records per-request outcome and latency. Satisfied by
// metrics.Metrics.
type Metrics interface {
	IncrementFortuneRequests(fortuneType, status string)
	ObserveFortuneLatency(fortuneType string, seconds float64)
}

type Service struct {
	llm     llm.Client
	logger  *slog.Logger
	metrics Metrics
	tracer  trace.Tracer
	now     func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source. Used by tests to pin the date that
// deterministic readings are keyed on.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(client llm.Client, logger *slog.Logger, m Metrics, opts ...Option) *Service {
	s := &Service{
		llm:     client,
		logger:  logger,
		metrics: m,
		tracer:  otel.Tracer("fortune/service"),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate produces the reading for one validated request. The returned
// payload shape depends on the fortune type.
func (s *Service) Generate(ctx context.Context, req models.FortuneRequest) (any, error) {
	ctx, span := s.tracer.Start(ctx, "fortune.generate",
		trace.WithAttributes(attribute.String("fortune.type", req.Type.String())))
	defer span.End()

	start := time.Now()
	payload, err := s.dispatch(ctx, req)
	elapsed := time.Since(start)

	status := "ok"
	if err != nil {
		status = "error"
		span.RecordError(err)
	}
	if s.metrics != nil {
		s.metrics.IncrementFortuneRequests(req.Type.String(), status)
		s.metrics.ObserveFortuneLatency(req.Type.String(), elapsed.Seconds())
	}
	s.logger.InfoContext(ctx, "fortune generated",
		slog.String("type", req.Type.String()),
		slog.String("status", status),
		slog.Duration("elapsed", elapsed))

	return payload, err
}

func (s *Service) dispatch(ctx context.Context, req models.FortuneRequest) (any, error) {
	switch req.Type {
	case models.TypeZodiac:
		return s.zodiacFortune(req.Data.Zodiac)
	case models.TypeZodiacAnimal:
		return s.animalFortune(req.Data.Animal)
	case models.TypeDaily:
		return s.dailyFortune(ctx, req.Data)
	case models.TypeSaju:
		return s.textFortune(ctx, buildSajuPrompt(req.Data))
	case models.TypeTarot:
		return s.textFortune(ctx, buildTarotPrompt(req.Data))
	case models.TypeGeneral:
		return s.textFortune(ctx, buildGeneralPrompt(req.Data))
	default:
		return nil, dErrors.New(dErrors.CodeInvalidInput, "Invalid fortune type")
	}
}

func (s *Service) dailyFortune(ctx context.Context, data models.FortuneData) (models.DailyFortune, error) {
	today := s.now().Format("2006년 1월 2일")
	text, err := s.llm.Complete(ctx, buildDailyPrompt(data, today))
	if err != nil {
		return models.DailyFortune{}, err
	}
	return parseDailyResponse(text), nil
}

func (s *Service) textFortune(ctx context.Context, prompt string) (models.TextFortune, error) {
	text, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		return models.TextFortune{}, err
	}
	return models.TextFortune{Text: text, AIGenerated: true}, nil
}

// zodiacFortune serves a reading from the sign table. The same sign and
// date always produce the same scores and phrasing.
func (s *Service) zodiacFortune(sign string) (models.ZodiacFortune, error) {
	info, ok := zodiacTable[sign]
	if !ok {
		return models.ZodiacFortune{}, dErrors.New(dErrors.CodeInvalidInput, "Valid zodiac sign is required")
	}

	date := s.now().Format("2006-01-02")
	seed := daySeed(sign, date)
	trait := info.Traits[int(seed%uint64(len(info.Traits)))]

	return models.ZodiacFortune{
		Zodiac: models.ZodiacProfile{
			Sign:         sign,
			Name:         info.Name,
			Symbol:       info.Symbol,
			Element:      info.Element,
			RulingPlanet: info.RulingPlanet,
			Dates:        info.Dates,
		},
		Overall: fmt.Sprintf("오늘 %s에게는 %s의 기운이 강하게 흐르는 하루입니다. 타고난 %s 면모를 살리면 막혔던 흐름이 풀립니다.",
			info.Name, info.Element, trait),
		Scores: map[string]int{
			"overall": dayScore(seed, 0),
			"love":    dayScore(seed, 1),
			"money":   dayScore(seed, 2),
			"work":    dayScore(seed, 3),
			"health":  dayScore(seed, 4),
		},
		Traits: info.Traits,
		Advice: advicePool[int(seed%uint64(len(advicePool)))],
		Lucky: models.ZodiacLucky{
			Numbers: info.LuckyNumbers,
			Colors:  info.LuckyColors,
		},
		Date:        date,
		AIGenerated: false,
	}, nil
}

// animalFortune serves a reading from the animal table, same scheme as
// zodiacFortune.
func (s *Service) animalFortune(animal string) (models.AnimalFortune, error) {
	info, ok := animalTable[animal]
	if !ok {
		return models.AnimalFortune{}, dErrors.New(dErrors.CodeInvalidInput, "Valid animal zodiac is required")
	}

	date := s.now().Format("2006-01-02")
	seed := daySeed(animal, date)
	trait := info.Traits[int(seed%uint64(len(info.Traits)))]

	return models.AnimalFortune{
		Animal: models.AnimalProfile{
			Sign:      animal,
			Name:      info.Name,
			Hanja:     info.Hanja,
			Element:   info.Element,
			Direction: info.Direction,
			Hours:     info.Hours,
			Season:    info.Season,
		},
		Personality: info.Personality,
		Traits:      info.Traits,
		Overall: fmt.Sprintf("%s띠인 당신에게 오늘은 %s 기운이 도는 날입니다. %s을(를) 앞세우면 주변의 도움이 따릅니다.",
			info.Name, info.Element, trait),
		Scores: map[string]int{
			"overall": dayScore(seed, 0),
			"love":    dayScore(seed, 1),
			"money":   dayScore(seed, 2),
			"work":    dayScore(seed, 3),
			"health":  dayScore(seed, 4),
		},
		Advice: advicePool[int(seed%uint64(len(advicePool)))],
		Lucky: models.AnimalLucky{
			Numbers:    info.LuckyNumbers,
			Colors:     info.LuckyColors,
			Directions: info.LuckyDirections,
		},
		Compatibility: models.AnimalCompatibility{
			Best:  info.BestMatch,
			Worst: info.WorstMatch,
		},
		Date:        date,
		AIGenerated: false,
	}, nil
}

var advicePool = []string{
	"서두르지 말고 오전에 중요한 결정을 내려보세요.",
	"가까운 사람에게 먼저 연락하면 좋은 소식이 따릅니다.",
	"지출 계획을 한 번 더 점검하면 손실을 막을 수 있습니다.",
	"미뤄둔 일 하나를 끝내면 나머지가 술술 풀립니다.",
	"몸이 보내는 신호에 귀를 기울이고 충분히 쉬어주세요.",
	"새로운 제안에는 하루 정도 시간을 두고 답하는 편이 좋습니다.",
}

// daySeed keys deterministic readings on (sign, date) so repeated calls on
// the same day return identical payloads.
func daySeed(sign, date string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(sign))
	_, _ = h.Write([]byte{'|'})
	_, _ = h.Write([]byte(date))
	return h.Sum64()
}

// dayScore maps the seed to a 60..99 score per category.
func dayScore(seed uint64, category int) int {
	return 60 + int((seed>>(uint(category)*7))%40)
}

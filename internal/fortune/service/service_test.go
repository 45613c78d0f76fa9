package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fortune-api/internal/fortune/models"
	dErrors "fortune-api/pkg/domain-errors"
)

type fakeLLM struct {
	calls    int
	response string
	err      error
	prompts  []string
}

func (f *fakeLLM) Complete(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)
	}
}

func newTestService(client *fakeLLM) *Service {
	return New(client, slog.New(slog.NewTextHandler(io.Discard, nil)), nil, WithClock(fixedClock()))
}

func TestGenerate_ZodiacIsDeterministicAndSkipsLLM(t *testing.T) {
	client := &fakeLLM{}
	svc := newTestService(client)
	req := models.FortuneRequest{
		Type: models.TypeZodiac,
		Data: models.FortuneData{Zodiac: "aries"},
	}

	first, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 0, client.calls, "zodiac readings never call the upstream")
	assert.Equal(t, first, second, "same sign and date produce the same reading")

	fortune, ok := first.(models.ZodiacFortune)
	require.True(t, ok)
	assert.Equal(t, "양자리", fortune.Zodiac.Name)
	assert.Equal(t, "♈", fortune.Zodiac.Symbol)
	assert.Equal(t, "2025-06-15", fortune.Date)
	assert.False(t, fortune.AIGenerated)
	assert.NotEmpty(t, fortune.Overall)
	assert.NotEmpty(t, fortune.Advice)
	for _, key := range []string{"overall", "love", "money", "work", "health"} {
		score := fortune.Scores[key]
		assert.GreaterOrEqual(t, score, 60, "score %s", key)
		assert.LessOrEqual(t, score, 99, "score %s", key)
	}
}

func TestGenerate_AnimalReadingFromTable(t *testing.T) {
	client := &fakeLLM{}
	svc := newTestService(client)

	got, err := svc.Generate(context.Background(), models.FortuneRequest{
		Type: models.TypeZodiacAnimal,
		Data: models.FortuneData{Animal: "dragon"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, client.calls)

	fortune, ok := got.(models.AnimalFortune)
	require.True(t, ok)
	assert.Equal(t, "용", fortune.Animal.Name)
	assert.Equal(t, "辰", fortune.Animal.Hanja)
	assert.Equal(t, []string{"rat", "monkey", "rooster"}, fortune.Compatibility.Best)
	assert.NotEmpty(t, fortune.Personality)
}

func TestGenerate_DailyParsesStructuredReading(t *testing.T) {
	client := &fakeLLM{response: `종합운: 85점 전반적으로 순조로운 하루입니다. 오전에 좋은 소식이 있습니다.
애정운: 70점 진솔한 대화가 관계를 깊게 만듭니다.
금전운: 65점 충동구매를 조심하세요.
건강운: 90점 컨디션이 좋은 날입니다.
직장운: 75점 동료의 협조가 따릅니다.

오늘의 조언: 중요한 결정은 오전에 내리세요.
행운의 시간: 오전 10시
행운의 방향: 동쪽
행운의 색상: 파랑
행운의 숫자: 7, 23`}
	svc := newTestService(client)

	got, err := svc.Generate(context.Background(), models.FortuneRequest{
		Type: models.TypeDaily,
		Data: models.FortuneData{Name: "홍길동", BirthDate: "1990-05-15", Gender: "male"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, client.calls)

	fortune, ok := got.(models.DailyFortune)
	require.True(t, ok)
	assert.Equal(t, 85, fortune.Scores["overall"])
	assert.Equal(t, 70, fortune.Scores["love"])
	assert.Equal(t, 65, fortune.Scores["money"])
	assert.Equal(t, 90, fortune.Scores["health"])
	assert.Equal(t, 75, fortune.Scores["work"])
	assert.Contains(t, fortune.Descriptions["overall"], "순조로운")
	assert.Equal(t, "중요한 결정은 오전에 내리세요.", fortune.Advice)
	assert.Equal(t, "오전 10시", fortune.Luck.Time)
	assert.Equal(t, "동쪽", fortune.Luck.Direction)
	assert.Equal(t, "파랑", fortune.Luck.Color)
	assert.Equal(t, []int{7, 23}, fortune.Luck.Numbers)
	assert.True(t, fortune.AIGenerated)
}

func TestGenerate_DailyPromptIsSanitized(t *testing.T) {
	client := &fakeLLM{response: "종합운: 80점 무난한 하루"}
	svc := newTestService(client)

	_, err := svc.Generate(context.Background(), models.FortuneRequest{
		Type: models.TypeDaily,
		Data: models.FortuneData{
			Name:      "<script>alert(1)</script>",
			BirthDate: "1990-05-15",
			Gender:    "male",
		},
	})
	require.NoError(t, err)
	require.Len(t, client.prompts, 1)
	assert.NotContains(t, client.prompts[0], "<")
	assert.NotContains(t, client.prompts[0], ">")
}

func TestGenerate_TarotIncludesCardInfo(t *testing.T) {
	client := &fakeLLM{response: "카드 해석입니다."}
	svc := newTestService(client)
	card := 10

	got, err := svc.Generate(context.Background(), models.FortuneRequest{
		Type: models.TypeTarot,
		Data: models.FortuneData{CardNumber: &card},
	})
	require.NoError(t, err)
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "운명의 수레바퀴")
	assert.Contains(t, client.prompts[0], "Wheel of Fortune")

	fortune, ok := got.(models.TextFortune)
	require.True(t, ok)
	assert.Equal(t, "카드 해석입니다.", fortune.Text)
	assert.True(t, fortune.AIGenerated)
}

func TestGenerate_UpstreamErrorPropagatesTyped(t *testing.T) {
	client := &fakeLLM{err: dErrors.New(dErrors.CodeUpstreamTimeout, "completion request failed")}
	svc := newTestService(client)

	_, err := svc.Generate(context.Background(), models.FortuneRequest{
		Type: models.TypeSaju,
		Data: models.FortuneData{YearPillar: "갑자", MonthPillar: "을축", DayPillar: "병인", HourPillar: "정묘"},
	})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUpstreamTimeout))
}

func TestGenerate_EveryTableEntryProducesReading(t *testing.T) {
	svc := newTestService(&fakeLLM{})

	for sign := range zodiacTable {
		_, err := svc.Generate(context.Background(), models.FortuneRequest{
			Type: models.TypeZodiac,
			Data: models.FortuneData{Zodiac: sign},
		})
		require.NoError(t, err, "zodiac %s", sign)
	}
	for animal := range animalTable {
		_, err := svc.Generate(context.Background(), models.FortuneRequest{
			Type: models.TypeZodiacAnimal,
			Data: models.FortuneData{Animal: animal},
		})
		require.NoError(t, err, "animal %s", animal)
	}
}

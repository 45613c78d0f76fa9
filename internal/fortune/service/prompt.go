package service

import (
	"fmt"
	"strings"

	"fortune-api/internal/fortune/models"
	"fortune-api/internal/fortune/validation"
)

// tarotCard is one major arcana card used to anchor tarot prompts.
type tarotCard struct {
	Name     string
	NameEn   string
	Element  string
	Keywords []string
}

var majorArcana = [22]tarotCard{
	{Name: "바보", NameEn: "The Fool", Element: "바람", Keywords: []string{"새로운 시작", "모험", "순수"}},
	{Name: "마법사", NameEn: "The Magician", Element: "불", Keywords: []string{"의지력", "창조", "행동"}},
	{Name: "여교황", NameEn: "The High Priestess", Element: "물", Keywords: []string{"직관", "신비", "내적 지혜"}},
	{Name: "여황제", NameEn: "The Empress", Element: "흙", Keywords: []string{"풍요", "모성", "창조력"}},
	{Name: "황제", NameEn: "The Emperor", Element: "불", Keywords: []string{"권위", "안정", "리더십"}},
	{Name: "교황", NameEn: "The Hierophant", Element: "흙", Keywords: []string{"전통", "가르침", "영적 지도"}},
	{Name: "연인", NameEn: "The Lovers", Element: "바람", Keywords: []string{"사랑", "선택", "조화"}},
	{Name: "전차", NameEn: "The Chariot", Element: "물", Keywords: []string{"승리", "의지력", "진보"}},
	{Name: "힘", NameEn: "Strength", Element: "불", Keywords: []string{"용기", "인내", "내적 힘"}},
	{Name: "은둔자", NameEn: "The Hermit", Element: "흙", Keywords: []string{"성찰", "지혜", "고독"}},
	{Name: "운명의 수레바퀴", NameEn: "Wheel of Fortune", Element: "불", Keywords: []string{"운명", "변화", "순환"}},
	{Name: "정의", NameEn: "Justice", Element: "바람", Keywords: []string{"공정", "균형", "진실"}},
	{Name: "매달린 사람", NameEn: "The Hanged Man", Element: "물", Keywords: []string{"희생", "기다림", "새로운 관점"}},
	{Name: "죽음", NameEn: "Death", Element: "물", Keywords: []string{"변화", "끝과 시작", "변환"}},
	{Name: "절제", NameEn: "Temperance", Element: "불", Keywords: []string{"조화", "균형", "치유"}},
	{Name: "악마", NameEn: "The Devil", Element: "흙", Keywords: []string{"유혹", "속박", "물질주의"}},
	{Name: "탑", NameEn: "The Tower", Element: "불", Keywords: []string{"파괴", "각성", "급격한 변화"}},
	{Name: "별", NameEn: "The Star", Element: "바람", Keywords: []string{"희망", "영감", "치유"}},
	{Name: "달", NameEn: "The Moon", Element: "물", Keywords: []string{"환상", "무의식", "두려움"}},
	{Name: "태양", NameEn: "The Sun", Element: "불", Keywords: []string{"성공", "기쁨", "활력"}},
	{Name: "심판", NameEn: "Judgement", Element: "불", Keywords: []string{"부활", "각성", "용서"}},
	{Name: "세계", NameEn: "The World", Element: "흙", Keywords: []string{"완성", "성취", "통합"}},
}

// Prompt builders. Every caller-supplied string goes through the sanitizer
// before it is concatenated into a prompt.

func buildDailyPrompt(data models.FortuneData, today string) string {
	name := validation.Sanitize(data.Name)
	birthDate := validation.Sanitize(data.BirthDate)
	gender := validation.Sanitize(data.Gender)

	var b strings.Builder
	b.WriteString("당신은 한국 최고의 사주 전문가입니다. 다음 정보를 바탕으로 오늘의 운세를 전문적으로 분석해주세요.\n\n")
	fmt.Fprintf(&b, "이름: %s\n", name)
	fmt.Fprintf(&b, "생년월일: %s\n", birthDate)
	fmt.Fprintf(&b, "성별: %s\n", gender)
	if data.BirthTime != "" {
		fmt.Fprintf(&b, "출생시간: %s\n", validation.Sanitize(data.BirthTime))
	}
	fmt.Fprintf(&b, "오늘 날짜: %s\n", today)
	b.WriteString(`
다음 형식으로 상세하게 답변해주세요:

종합운: [0-100점] [오늘의 전반적인 운세를 사주 관점에서 3-4문장으로 상세히 설명]
애정운: [0-100점] [연애운과 인간관계를 2-3문장으로 설명]
금전운: [0-100점] [재물운과 투자운을 2-3문장으로 설명]
건강운: [0-100점] [건강 상태와 주의사항을 2-3문장으로 설명]
직장운: [0-100점] [업무운과 승진운을 2-3문장으로 설명]

오늘의 조언: [오늘 하루를 위한 구체적인 행동 지침 2-3문장]
행운의 시간: [가장 운이 좋은 시간대]
행운의 방향: [길한 방향]
행운의 색상: [오늘의 행운색]
행운의 숫자: [1-45 사이 숫자 2개]
`)
	return b.String()
}

func buildSajuPrompt(data models.FortuneData) string {
	pillars := fmt.Sprintf("%s %s %s %s",
		validation.Sanitize(data.YearPillar),
		validation.Sanitize(data.MonthPillar),
		validation.Sanitize(data.DayPillar),
		validation.Sanitize(data.HourPillar))

	return fmt.Sprintf(`당신은 한국의 사주명리학 전문가입니다. 다음 사주팔자를 분석해주세요.

%s

다음 내용을 포함하여 전문적으로 분석해주세요:
1. 사주의 전체적인 특징과 기질
2. 오행의 균형과 용신
3. 재물운과 직업운
4. 연애운과 결혼운
5. 건강운과 주의사항
6. 대운의 흐름
7. 올해와 내년 운세
8. 인생 전반의 조언

각 항목을 2-3문장으로 상세히 설명해주세요.
`, pillars)
}

func buildTarotPrompt(data models.FortuneData) string {
	var b strings.Builder
	b.WriteString("당신은 경험 많은 타로 마스터입니다.\n\n")

	if data.CardNumber != nil {
		n := *data.CardNumber
		if n >= 0 && n < len(majorArcana) {
			card := majorArcana[n]
			fmt.Fprintf(&b, "뽑힌 카드: %s (%s)\n", card.Name, card.NameEn)
			fmt.Fprintf(&b, "원소: %s\n", card.Element)
			fmt.Fprintf(&b, "핵심 키워드: %s\n\n", strings.Join(card.Keywords, ", "))
		} else {
			fmt.Fprintf(&b, "뽑힌 카드 번호: %d\n\n", n)
		}
	}
	if data.Prompt != "" {
		fmt.Fprintf(&b, "질문: %s\n\n", validation.Sanitize(data.Prompt))
	}

	b.WriteString(`다음 내용을 포함하여 따뜻하고 진솔하게 해석해주세요:
1. 카드의 기본 의미
2. 현재 상황에 대한 해석
3. 앞으로의 조언

각 항목을 2-3문장으로 설명해주세요.`)
	return b.String()
}

func buildGeneralPrompt(data models.FortuneData) string {
	return validation.Sanitize(data.Prompt)
}

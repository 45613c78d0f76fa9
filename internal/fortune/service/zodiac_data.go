package service

// zodiacInfo holds the fixed astrological attributes of one western sign.
// The Korean names and trait lists mirror the tables the front-end pages
// render, so generated readings stay consistent with the static content.
type zodiacInfo struct {
	Name         string
	NameEn       string
	Symbol       string
	Element      string
	Quality      string
	RulingPlanet string
	Dates        string
	Traits       []string
	LuckyNumbers []int
	LuckyColors  []string
}

var zodiacTable = map[string]zodiacInfo{
	"aries": {
		Name: "양자리", NameEn: "Aries", Symbol: "♈",
		Element: "불", Quality: "활동궁", RulingPlanet: "화성", Dates: "3.21 - 4.19",
		Traits:       []string{"적극적", "열정적", "리더십", "충동적", "용감한"},
		LuckyNumbers: []int{1, 8, 17},
		LuckyColors:  []string{"빨강", "주황"},
	},
	"taurus": {
		Name: "황소자리", NameEn: "Taurus", Symbol: "♉",
		Element: "흙", Quality: "고정궁", RulingPlanet: "금성", Dates: "4.20 - 5.20",
		Traits:       []string{"안정적", "실용적", "끈기있는", "고집스러운", "감각적"},
		LuckyNumbers: []int{2, 6, 9, 12, 24},
		LuckyColors:  []string{"초록", "분홍"},
	},
	"gemini": {
		Name: "쌍둥이자리", NameEn: "Gemini", Symbol: "♊",
		Element: "바람", Quality: "변동궁", RulingPlanet: "수성", Dates: "5.21 - 6.21",
		Traits:       []string{"호기심많은", "적응력있는", "소통능력", "다재다능", "변덕스러운"},
		LuckyNumbers: []int{5, 7, 14, 23},
		LuckyColors:  []string{"노랑", "연두"},
	},
	"cancer": {
		Name: "게자리", NameEn: "Cancer", Symbol: "♋",
		Element: "물", Quality: "활동궁", RulingPlanet: "달", Dates: "6.22 - 7.22",
		Traits:       []string{"감정적", "배려심", "가족중심", "직관적", "보호본능"},
		LuckyNumbers: []int{2, 7, 11, 16, 20, 25},
		LuckyColors:  []string{"은색", "흰색", "바다색"},
	},
	"leo": {
		Name: "사자자리", NameEn: "Leo", Symbol: "♌",
		Element: "불", Quality: "고정궁", RulingPlanet: "태양", Dates: "7.23 - 8.22",
		Traits:       []string{"자신감", "관대함", "창조적", "드라마틱", "자존심"},
		LuckyNumbers: []int{1, 3, 10, 19},
		LuckyColors:  []string{"금색", "주황", "빨강"},
	},
	"virgo": {
		Name: "처녀자리", NameEn: "Virgo", Symbol: "♍",
		Element: "흙", Quality: "변동궁", RulingPlanet: "수성", Dates: "8.23 - 9.22",
		Traits:       []string{"완벽주의", "분석적", "실용적", "신중한", "봉사정신"},
		LuckyNumbers: []int{3, 15, 6, 27},
		LuckyColors:  []string{"네이비", "갈색", "회색"},
	},
	"libra": {
		Name: "천칭자리", NameEn: "Libra", Symbol: "♎",
		Element: "바람", Quality: "활동궁", RulingPlanet: "금성", Dates: "9.23 - 10.22",
		Traits:       []string{"균형감각", "공정함", "사교적", "우유부단", "예술적"},
		LuckyNumbers: []int{4, 6, 13, 15, 24},
		LuckyColors:  []string{"파스텔톤", "분홍", "하늘색"},
	},
	"scorpio": {
		Name: "전갈자리", NameEn: "Scorpio", Symbol: "♏",
		Element: "물", Quality: "고정궁", RulingPlanet: "명왕성", Dates: "10.23 - 11.21",
		Traits:       []string{"강렬함", "신비로운", "집중력", "질투심", "변화력"},
		LuckyNumbers: []int{8, 11, 18, 22},
		LuckyColors:  []string{"짙은빨강", "검정", "자주"},
	},
	"sagittarius": {
		Name: "사수자리", NameEn: "Sagittarius", Symbol: "♐",
		Element: "불", Quality: "변동궁", RulingPlanet: "목성", Dates: "11.22 - 12.21",
		Traits:       []string{"자유로운", "낙천적", "모험적", "솔직한", "철학적"},
		LuckyNumbers: []int{3, 9, 15, 21, 33},
		LuckyColors:  []string{"보라", "터키석", "진청"},
	},
	"capricorn": {
		Name: "염소자리", NameEn: "Capricorn", Symbol: "♑",
		Element: "흙", Quality: "활동궁", RulingPlanet: "토성", Dates: "12.22 - 1.19",
		Traits:       []string{"야심적", "책임감", "현실적", "인내심", "보수적"},
		LuckyNumbers: []int{6, 9, 8, 26},
		LuckyColors:  []string{"검정", "갈색", "회색"},
	},
	"aquarius": {
		Name: "물병자리", NameEn: "Aquarius", Symbol: "♒",
		Element: "바람", Quality: "고정궁", RulingPlanet: "천왕성", Dates: "1.20 - 2.18",
		Traits:       []string{"독창적", "진보적", "인도주의", "독립적", "예측불가"},
		LuckyNumbers: []int{4, 7, 11, 22, 29},
		LuckyColors:  []string{"전기색", "터키석", "은색"},
	},
	"pisces": {
		Name: "물고기자리", NameEn: "Pisces", Symbol: "♓",
		Element: "물", Quality: "변동궁", RulingPlanet: "해왕성", Dates: "2.19 - 3.20",
		Traits:       []string{"감성적", "직관적", "예술적", "공감능력", "몽상적"},
		LuckyNumbers: []int{3, 9, 12, 15, 18, 24},
		LuckyColors:  []string{"바다색", "라벤더", "은색"},
	},
}

package service

// animalInfo holds the fixed attributes of one East Asian zodiac animal.
type animalInfo struct {
	Name            string
	Hanja           string
	NameEn          string
	Element         string
	Direction       string
	Hours           string
	Season          string
	Traits          []string
	LuckyNumbers    []int
	LuckyColors     []string
	LuckyDirections []string
	BestMatch       []string
	WorstMatch      []string
	Personality     string
}

var animalTable = map[string]animalInfo{
	"rat": {
		Name: "쥐", Hanja: "子", NameEn: "Rat",
		Element: "물", Direction: "북", Hours: "23:00-01:00", Season: "겨울",
		Traits:          []string{"영리함", "적응력", "근면함", "사교성", "기회주의"},
		LuckyNumbers:    []int{2, 3},
		LuckyColors:     []string{"파랑", "금색", "초록"},
		LuckyDirections: []string{"동남", "동북"},
		BestMatch:       []string{"dragon", "monkey", "ox"},
		WorstMatch:      []string{"horse", "goat", "rooster"},
		Personality:     "똑똑하고 재치있으며 적응력이 뛰어남. 기회를 잘 포착하고 사교적이지만 때로는 이기적일 수 있음.",
	},
	"ox": {
		Name: "소", Hanja: "丑", NameEn: "Ox",
		Element: "흙", Direction: "동북", Hours: "01:00-03:00", Season: "겨울",
		Traits:          []string{"성실함", "인내심", "신뢰성", "보수적", "고집"},
		LuckyNumbers:    []int{1, 9},
		LuckyColors:     []string{"빨강", "파랑", "보라"},
		LuckyDirections: []string{"북", "남"},
		BestMatch:       []string{"rat", "snake", "rooster"},
		WorstMatch:      []string{"tiger", "dragon", "goat", "dog"},
		Personality:     "근면하고 신뢰할 수 있으며 끈기가 있음. 전통을 중시하고 안정을 추구하지만 변화에 둔감할 수 있음.",
	},
	"tiger": {
		Name: "호랑이", Hanja: "寅", NameEn: "Tiger",
		Element: "목", Direction: "동남", Hours: "03:00-05:00", Season: "봄",
		Traits:          []string{"용맹함", "리더십", "정의감", "충동적", "자신감"},
		LuckyNumbers:    []int{1, 3, 4},
		LuckyColors:     []string{"파랑", "회색", "주황"},
		LuckyDirections: []string{"동", "남"},
		BestMatch:       []string{"horse", "dog", "pig"},
		WorstMatch:      []string{"ox", "tiger", "snake", "monkey"},
		Personality:     "용감하고 카리스마가 있으며 정의감이 강함. 리더십이 뛰어나지만 때로는 성급하고 고집스러울 수 있음.",
	},
	"rabbit": {
		Name: "토끼", Hanja: "卯", NameEn: "Rabbit",
		Element: "목", Direction: "동", Hours: "05:00-07:00", Season: "봄",
		Traits:          []string{"온화함", "세심함", "예술성", "소심함", "평화주의"},
		LuckyNumbers:    []int{3, 4, 6},
		LuckyColors:     []string{"빨강", "분홍", "보라", "파랑"},
		LuckyDirections: []string{"동", "남동", "남"},
		BestMatch:       []string{"goat", "pig", "dog"},
		WorstMatch:      []string{"rat", "ox", "dragon", "rooster"},
		Personality:     "온순하고 배려심이 깊으며 예술적 감각이 뛰어남. 평화를 사랑하지만 때로는 우유부단하고 소극적일 수 있음.",
	},
	"dragon": {
		Name: "용", Hanja: "辰", NameEn: "Dragon",
		Element: "흙", Direction: "동남", Hours: "07:00-09:00", Season: "봄",
		Traits:          []string{"카리스마", "야심", "창조력", "자존심", "완벽주의"},
		LuckyNumbers:    []int{1, 6, 7},
		LuckyColors:     []string{"금색", "은색", "회색"},
		LuckyDirections: []string{"동", "남", "서"},
		BestMatch:       []string{"rat", "monkey", "rooster"},
		WorstMatch:      []string{"ox", "rabbit", "dog", "dragon"},
		Personality:     "카리스마가 넘치고 야심만만하며 창조적임. 리더 기질이 있지만 때로는 거만하고 독선적일 수 있음.",
	},
	"snake": {
		Name: "뱀", Hanja: "巳", NameEn: "Snake",
		Element: "화", Direction: "남남동", Hours: "09:00-11:00", Season: "여름",
		Traits:          []string{"지혜", "직관력", "신비로움", "질투심", "집착"},
		LuckyNumbers:    []int{2, 8, 9},
		LuckyColors:     []string{"빨강", "연노랑", "검정"},
		LuckyDirections: []string{"동북", "남서", "남"},
		BestMatch:       []string{"ox", "rooster", "dragon"},
		WorstMatch:      []string{"tiger", "monkey", "pig"},
		Personality:     "지혜롭고 직관력이 뛰어나며 신비로운 매력이 있음. 깊이 있는 사고를 하지만 때로는 의심이 많고 질투심이 강할 수 있음.",
	},
	"horse": {
		Name: "말", Hanja: "午", NameEn: "Horse",
		Element: "화", Direction: "남", Hours: "11:00-13:00", Season: "여름",
		Traits:          []string{"활발함", "자유로움", "열정적", "변덕스러움", "모험심"},
		LuckyNumbers:    []int{2, 3, 7},
		LuckyColors:     []string{"노랑", "초록"},
		LuckyDirections: []string{"남서", "서북"},
		BestMatch:       []string{"tiger", "goat", "dog"},
		WorstMatch:      []string{"rat", "ox", "rabbit", "horse"},
		Personality:     "활발하고 자유분방하며 열정적임. 모험을 좋아하고 독립적이지만 때로는 변덕스럽고 조급할 수 있음.",
	},
	"goat": {
		Name: "양", Hanja: "未", NameEn: "Goat",
		Element: "흙", Direction: "남서", Hours: "13:00-15:00", Season: "여름",
		Traits:          []string{"온순함", "창조성", "감성적", "의존적", "비관적"},
		LuckyNumbers:    []int{3, 4, 5},
		LuckyColors:     []string{"초록", "빨강", "보라"},
		LuckyDirections: []string{"북", "서북"},
		BestMatch:       []string{"rabbit", "horse", "pig"},
		WorstMatch:      []string{"ox", "tiger", "dog"},
		Personality:     "온순하고 창조적이며 감성이 풍부함. 협조적이고 친화력이 있지만 때로는 의존적이고 우유부단할 수 있음.",
	},
	"monkey": {
		Name: "원숭이", Hanja: "申", NameEn: "Monkey",
		Element: "금", Direction: "서남", Hours: "15:00-17:00", Season: "가을",
		Traits:          []string{"영민함", "유머감각", "호기심", "교활함", "변덕"},
		LuckyNumbers:    []int{1, 7, 8},
		LuckyColors:     []string{"흰색", "금색", "파랑"},
		LuckyDirections: []string{"북", "서북", "서"},
		BestMatch:       []string{"rat", "dragon", "snake"},
		WorstMatch:      []string{"tiger", "snake", "pig"},
		Personality:     "영리하고 재치있으며 호기심이 많음. 적응력이 뛰어나고 유머러스하지만 때로는 교활하고 일관성이 부족할 수 있음.",
	},
	"rooster": {
		Name: "닭", Hanja: "酉", NameEn: "Rooster",
		Element: "금", Direction: "서", Hours: "17:00-19:00", Season: "가을",
		Traits:          []string{"정직함", "근면함", "완벽주의", "비판적", "자존심"},
		LuckyNumbers:    []int{5, 7, 8},
		LuckyColors:     []string{"금색", "갈색", "노랑"},
		LuckyDirections: []string{"서", "남서", "동북"},
		BestMatch:       []string{"ox", "dragon", "snake"},
		WorstMatch:      []string{"rat", "rabbit", "horse", "rooster"},
		Personality:     "정직하고 근면하며 완벽주의적임. 시간 관념이 뚜렷하고 책임감이 강하지만 때로는 비판적이고 까다로울 수 있음.",
	},
	"dog": {
		Name: "개", Hanja: "戌", NameEn: "Dog",
		Element: "흙", Direction: "서북", Hours: "19:00-21:00", Season: "가을",
		Traits:          []string{"충성심", "정의감", "책임감", "비관적", "걱정많음"},
		LuckyNumbers:    []int{3, 4, 9},
		LuckyColors:     []string{"빨강", "초록", "보라"},
		LuckyDirections: []string{"동", "남", "서북"},
		BestMatch:       []string{"tiger", "rabbit", "horse"},
		WorstMatch:      []string{"ox", "dragon", "goat", "rooster"},
		Personality:     "충성스럽고 정의감이 강하며 책임감이 있음. 신뢰할 수 있고 보호 본능이 있지만 때로는 비관적이고 걱정이 많을 수 있음.",
	},
	"pig": {
		Name: "돼지", Hanja: "亥", NameEn: "Pig",
		Element: "물", Direction: "북서", Hours: "21:00-23:00", Season: "겨울",
		Traits:          []string{"관대함", "성실함", "낙천적", "욕심많음", "게으름"},
		LuckyNumbers:    []int{2, 5, 8},
		LuckyColors:     []string{"노랑", "회색", "갈색", "금색"},
		LuckyDirections: []string{"남서", "동북"},
		BestMatch:       []string{"tiger", "rabbit", "goat"},
		WorstMatch:      []string{"snake", "monkey", "pig"},
		Personality:     "관대하고 성실하며 낙천적임. 인정이 많고 포용력이 있지만 때로는 욕심이 많고 게으를 수 있음.",
	},
}

package manseryeok

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYearGanji_KnownYears(t *testing.T) {
	tests := []struct {
		year   int
		stem   string
		branch string
	}{
		{1984, "갑", "자"}, // cycle start
		{2020, "경", "자"},
		{2024, "갑", "진"},
		{2025, "을", "사"},
		{1841, "신", "축"},
	}
	for _, tt := range tests {
		stemIdx, branchIdx := yearGanji(tt.year)
		assert.Equal(t, tt.stem, stems[stemIdx], "year %d stem", tt.year)
		assert.Equal(t, tt.branch, branches[branchIdx], "year %d branch", tt.year)
	}
}

func TestDayGanji_AnchorAndCycle(t *testing.T) {
	// 2000-01-01 is 무오일.
	stemIdx, branchIdx := dayGanji(2000, 1, 1)
	assert.Equal(t, "무", stems[stemIdx])
	assert.Equal(t, "오", branches[branchIdx])

	// Exactly 60 days later the same pillar repeats: 2000-03-01.
	stemIdx, branchIdx = dayGanji(2000, 3, 1)
	assert.Equal(t, "무", stems[stemIdx])
	assert.Equal(t, "오", branches[branchIdx])

	// The next day advances one step: 기미.
	stemIdx, branchIdx = dayGanji(2000, 1, 2)
	assert.Equal(t, "기", stems[stemIdx])
	assert.Equal(t, "미", branches[branchIdx])
}

func TestHourGanji_TraditionalBlocks(t *testing.T) {
	// On a 갑 day the 23:00-01:00 block is 갑자시.
	stem, branch := hourGanji(0, 0)
	assert.Equal(t, "갑", stem)
	assert.Equal(t, "자", branch)

	stem, branch = hourGanji(23, 0)
	assert.Equal(t, "자", branch)
	_ = stem

	// 11:00-13:00 is always the 오 block.
	_, branch = hourGanji(12, 3)
	assert.Equal(t, "오", branch)
}

func TestMonthGanji_BranchFollowsSolarCycle(t *testing.T) {
	// The third civil month opens the cycle at 인.
	_, branch := monthGanji(3, 0)
	assert.Equal(t, "인", branch)

	// January belongs to the tail of the preceding cycle.
	_, branch = monthGanji(1, 0)
	assert.Equal(t, "자", branch)

	_, branch = monthGanji(12, 0)
	assert.Equal(t, "해", branch)
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate(2024, 2, 29), "leap day in a leap year")
	assert.False(t, ValidDate(2023, 2, 29))
	assert.False(t, ValidDate(2023, 4, 31))
	assert.True(t, ValidDate(1841, 1, 1))
}

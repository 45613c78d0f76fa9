// Package manseryeok serves Korean sexagenary calendar (ganji) lookups for
// dates between 1841 and 2110. Year, month, day, and hour pillars are
// computed arithmetically; an optional data file supplies lunar calendar
// fields and authoritative overrides.
package manseryeok

// The ten heavenly stems and twelve earthly branches, Korean reading.
var (
	stems    = [10]string{"갑", "을", "병", "정", "무", "기", "경", "신", "임", "계"}
	branches = [12]string{"자", "축", "인", "묘", "진", "사", "오", "미", "신", "유", "술", "해"}

	// Month branches start at 인 (the tiger month) per the solar calendar.
	monthBranches = [12]string{"인", "묘", "진", "사", "오", "미", "신", "유", "술", "해", "자", "축"}
)

// yearGanji returns the stem and branch indices for a year. 1984 is 갑자,
// the start of a cycle, which anchors the offset of 4.
func yearGanji(year int) (stemIdx, branchIdx int) {
	stemIdx = (year - 4) % 10
	branchIdx = (year - 4) % 12
	if stemIdx < 0 {
		stemIdx += 10
	}
	if branchIdx < 0 {
		branchIdx += 12
	}
	return stemIdx, branchIdx
}

// monthGanji returns the month pillar for a civil month given the year stem.
// Months are mapped onto the solar-term cycle that begins in the third civil
// month, so January and February belong to the preceding cycle.
func monthGanji(month, yearStemIdx int) (string, string) {
	solarMonth := month - 2
	if month <= 2 {
		solarMonth = month + 10
	}
	stemIdx := (yearStemIdx*2 + (solarMonth-1)/2) % 10
	return stems[stemIdx], monthBranches[(solarMonth-1)%12]
}

// julianDayNumber converts a Gregorian calendar date to its Julian day
// number, the continuous day count the day pillar cycles over.
func julianDayNumber(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// dayGanji returns the stem and branch indices of the day pillar.
// 2000-01-01 is 무오일, which fixes the offset of 49.
func dayGanji(year, month, day int) (stemIdx, branchIdx int) {
	cycle := (julianDayNumber(year, month, day) + 49) % 60
	return cycle % 10, cycle % 12
}

// hourGanji returns the hour pillar. The branch follows the traditional
// two-hour 시진 blocks starting with 자시 at 23:00; the stem is derived from
// the day stem.
func hourGanji(hour, dayStemIdx int) (string, string) {
	hourIdx := ((hour + 1) / 2) % 12
	startIdx := (dayStemIdx % 5) * 2
	return stems[(startIdx+hourIdx)%10], branches[hourIdx]
}

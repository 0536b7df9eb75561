package resume

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Experience estimation reconciles two imprecise signals: month-year date
// ranges summed across the document, and an explicit "<N>+ years experience"
// mention. Both overstate in practice (overlapping roles, aspirational
// figures), so the estimate is the minimum of the positive signals.

var (
	dateRangePattern = regexp.MustCompile(
		`(?i)(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+(\d{4})\s*[-–—]\s*` +
			`(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+(\d{4})`)

	mentionPattern = regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s+(?:of\s+)?experience`)
)

var monthIndex = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4,
	"may": 5, "jun": 6, "jul": 7, "aug": 8,
	"sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// EstimateExperience returns the estimated total professional experience in
// months. Zero means neither signal was found.
func EstimateExperience(text string) int {
	fromDates := monthsFromDateRanges(text)
	fromMention := monthsFromMention(text)

	total := 0
	for _, signal := range []int{fromDates, fromMention} {
		if signal <= 0 {
			continue
		}
		if total == 0 || signal < total {
			total = signal
		}
	}

	return total
}

// FormatExperience renders a month total as "<Y> years <M> months".
func FormatExperience(months int) string {
	return fmt.Sprintf("%d years %d months", months/12, months%12)
}

// monthsFromDateRanges sums the inclusive month difference of every
// "<Month> <Year> - <Month> <Year>" occurrence. Inverted ranges count as zero.
func monthsFromDateRanges(text string) int {
	total := 0
	for _, m := range dateRangePattern.FindAllStringSubmatch(text, -1) {
		startMonth := monthIndex[strings.ToLower(m[1])]
		startYear, _ := strconv.Atoi(m[2])
		endMonth := monthIndex[strings.ToLower(m[3])]
		endYear, _ := strconv.Atoi(m[4])

		diff := (endYear-startYear)*12 + (endMonth - startMonth)
		if diff > 0 {
			total += diff
		}
	}
	return total
}

// monthsFromMention reads the first "<N>+ years [of] experience" phrase.
func monthsFromMention(text string) int {
	m := mentionPattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	years, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return years * 12
}

package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Transaction numbers look like MI-20260829-0001: prefix, date bucket, then a
// per-day sequence. Repositories find the last sequence inside the insert
// transaction so concurrent creates cannot mint duplicates.

// FormatNumber builds a transaction number for the given day and sequence.
func FormatNumber(prefix string, date time.Time, seq int) string {
	return fmt.Sprintf("%s-%s-%04d", strings.ToUpper(strings.TrimSpace(prefix)), date.Format("20060102"), seq)
}

// NumberPrefix returns the LIKE pattern matching all numbers of one day.
func NumberPrefix(prefix string, date time.Time) string {
	return fmt.Sprintf("%s-%s-%%", strings.ToUpper(strings.TrimSpace(prefix)), date.Format("20060102"))
}

// ParseSequence extracts the trailing sequence from a transaction number.
// Malformed numbers yield 0 so the next number starts at 1.
func ParseSequence(number string) int {
	idx := strings.LastIndex(number, "-")
	if idx < 0 || idx+1 >= len(number) {
		return 0
	}
	n, err := strconv.Atoi(number[idx+1:])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

package menu

import (
	"strconv"
	"strings"
)

// ParseInt reads the leading integer of input. Trailing characters after the
// digits are ignored, so "3 please" and "3x" both yield 3. It reports false
// when input does not start with an integer.
func ParseInt(input string) (int, bool) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return 0, false
	}
	token := fields[0]
	end := 0
	if end < len(token) && (token[end] == '-' || token[end] == '+') {
		end++
	}
	digits := end
	for end < len(token) && token[end] >= '0' && token[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	value, err := strconv.Atoi(token[:end])
	if err != nil {
		return 0, false
	}
	return value, true
}

// ParseInRange parses input and checks it lies in [min, max].
func ParseInRange(input string, min, max int) (int, bool) {
	value, ok := ParseInt(input)
	if !ok || value < min || value > max {
		return 0, false
	}
	return value, true
}

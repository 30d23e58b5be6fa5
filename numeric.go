// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package ini

import (
	"regexp"
	"strconv"
	"strings"
)

// Hand edited files contain values like "12.5 m", "-3,5" or "  7kg".
// When a strict parse fails the first number found in the value is used.
var (
	floatToken = regexp.MustCompile(`-?\s*\d+(?:[.,]\d*)?`)
	intToken   = regexp.MustCompile(`-?\s*\d+`)
)

func parseDouble(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, true
	}

	tok := floatToken.FindString(s)
	if len(tok) == 0 {
		return 0, false
	}
	tok = strings.Replace(stripSpaces(tok), ",", ".", 1)
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func parseLong(s string) (int64, bool) {
	return parseInteger(s, 64)
}

func parseInt(s string) (int, bool) {
	n, ok := parseInteger(s, strconv.IntSize)
	return int(n), ok
}

func parseInteger(s string, bitSize int) (int64, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, bitSize); err == nil {
		return n, true
	}

	tok := intToken.FindString(s)
	if len(tok) == 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(stripSpaces(tok), 10, bitSize)
	if err != nil {
		return 0, false
	}
	return n, true
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}

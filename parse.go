// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package ini

import "strings"

// Parse builds a Document from the full text of an INI file.
//
// Parse never fails. Lines which can not be understood are dropped,
// so a completely malformed input simply yields an empty Document.
func Parse(text string) *Document {
	d := New()

	var cur *Section
	for _, frag := range fragments(text) {
		line := strings.TrimSpace(stripComment(frag))
		if len(line) == 0 {
			continue
		}

		if name, ok := sectionHeader(line); ok {
			cur = d.replace(name)
			continue
		}
		if cur == nil {
			continue
		}

		k, v, ok := keyValue(line)
		if !ok {
			continue
		}
		cur.Set(k, v)
	}
	return d
}

// fragments splits text on any line terminator and additionally in front
// of every '[' which is directly followed by an upper case ASCII letter.
// The latter allows a section header to start without a preceding newline.
func fragments(text string) []string {
	var frags []string
	start := 0
	for i := 0; i < len(text); i++ {
		switch c := text[i]; {
		case c == '\n':
			frags = append(frags, text[start:i])
			start = i + 1
		case c == '\r':
			frags = append(frags, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		case c == '[' && i+1 < len(text) && isUpper(text[i+1]):
			if i > start {
				frags = append(frags, text[start:i])
			}
			start = i
		}
	}
	if start < len(text) {
		frags = append(frags, text[start:])
	}
	return frags
}

// stripComment cuts s at the first ';' or "//", whichever comes first.
func stripComment(s string) string {
	end := strings.IndexByte(s, ';')
	if i := strings.Index(s, "//"); i >= 0 && (end < 0 || i < end) {
		end = i
	}
	if end < 0 {
		return s
	}
	return s[:end]
}

func sectionHeader(line string) (string, bool) {
	if len(line) < 3 || line[0] != '[' || line[len(line)-1] != ']' {
		return "", false
	}
	return line[1 : len(line)-1], true
}

// keyValue splits line at its first '='. The key must be non-empty and
// consist only of identifier characters, otherwise the whole line is rejected.
func keyValue(line string) (string, string, bool) {
	i := strings.IndexByte(line, '=')
	if i <= 0 {
		return "", "", false
	}
	k := line[:i]
	if !isIdentifier(k) {
		return "", "", false
	}
	return k, line[i+1:], true
}

func isIdentifier(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isUpper(c) && !isDigit(c) && c != '_' {
			return false
		}
	}
	return len(s) > 0
}

func isUpper(c byte) bool { return 'A' <= c && c <= 'Z' }

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

package core

import (
	"strings"
	"unicode/utf8"
)

// MarkerState identifies the checkbox marker on a task line.
type MarkerState string

const (
	MarkerOpen      MarkerState = "open"      // [ ]
	MarkerDone      MarkerState = "done"      // [x]
	MarkerStarted   MarkerState = "started"   // [/]
	MarkerScheduled MarkerState = "scheduled" // [<] pushed forward
	MarkerMeeting   MarkerState = "meeting"   // [o]
	MarkerCustom    MarkerState = "custom"    // any other marker rune
)

// LineInfo is the structural classification of a single line.
// Depth counts indentation units: each leading tab is one unit, each maximal
// run of leading spaces is one unit.
type LineInfo struct {
	Blank bool
	Depth int

	Heading      bool
	HeadingLevel int
	HeadingTitle string

	ListItem bool
	Task     bool
	Marker   MarkerState
	// MarkerStart/MarkerEnd delimit the "[x]" token within the line as byte
	// indices; both are zero when Task is false.
	MarkerStart int
	MarkerEnd   int

	// Content is the text after the structural prefix (indentation, bullet,
	// marker token). For plain lines it is the text after the indentation.
	Content string
}

// Classify determines a line's structural role. It never fails: malformed
// input degrades to the nearest safe classification (a list item without a
// task marker, or a plain line).
func Classify(line string) LineInfo {
	var info LineInfo
	if strings.TrimSpace(line) == "" {
		info.Blank = true
		return info
	}

	i := 0
	for i < len(line) {
		if line[i] == '\t' {
			info.Depth++
			i++
			continue
		}
		if line[i] == ' ' {
			info.Depth++
			for i < len(line) && line[i] == ' ' {
				i++
			}
			continue
		}
		break
	}
	rest := line[i:]

	if info.Depth == 0 && rest[0] == '#' {
		level := 0
		for level < len(rest) && rest[level] == '#' {
			level++
		}
		if level < len(rest) && rest[level] == ' ' {
			info.Heading = true
			info.HeadingLevel = level
			info.HeadingTitle = strings.TrimSpace(rest[level:])
			info.Content = info.HeadingTitle
			return info
		}
	}

	if isBullet(rest[0]) && len(rest) > 1 && (rest[1] == ' ' || rest[1] == '\t') {
		info.ListItem = true
		body := rest[2:]
		info.Content = body
		if len(body) > 1 && body[0] == '[' {
			r, size := utf8.DecodeRuneInString(body[1:])
			closeIdx := 1 + size
			if r != utf8.RuneError && closeIdx < len(body) && body[closeIdx] == ']' {
				after := body[closeIdx+1:]
				if after == "" || after[0] == ' ' || after[0] == '\t' {
					info.Task = true
					info.Marker = markerState(r)
					info.MarkerStart = i + 2
					info.MarkerEnd = info.MarkerStart + closeIdx + 1
					if after != "" {
						after = after[1:]
					}
					info.Content = after
				}
			}
		}
		return info
	}

	info.Content = rest
	return info
}

func isBullet(b byte) bool {
	return b == '-' || b == '*' || b == '+'
}

func markerState(r rune) MarkerState {
	switch r {
	case ' ':
		return MarkerOpen
	case 'x', 'X':
		return MarkerDone
	case '/':
		return MarkerStarted
	case '<':
		return MarkerScheduled
	case 'o', 'O':
		return MarkerMeeting
	default:
		return MarkerCustom
	}
}

// reopenLine rewrites a scheduled marker back to open. Every other line
// passes through untouched.
func reopenLine(line string) string {
	info := Classify(line)
	if !info.Task || info.Marker != MarkerScheduled {
		return line
	}
	return line[:info.MarkerStart] + "[ ]" + line[info.MarkerEnd:]
}

// DisplayText reduces link syntax to its visible text for display purposes:
// [[Target|alias]] becomes alias, [[Target]] becomes Target, and
// [text](url) becomes text. Everything else is left as-is.
func DisplayText(s string) string {
	s = flattenWikiLinks(s)
	return flattenMarkdownLinks(s)
}

func flattenWikiLinks(s string) string {
	for {
		start := strings.Index(s, "[[")
		if start == -1 {
			return s
		}
		end := strings.Index(s[start+2:], "]]")
		if end == -1 {
			return s
		}
		inner := s[start+2 : start+2+end]
		if idx := strings.Index(inner, "|"); idx != -1 {
			inner = inner[idx+1:]
		}
		s = s[:start] + inner + s[start+2+end+2:]
	}
}

func flattenMarkdownLinks(s string) string {
	for {
		open := strings.Index(s, "[")
		if open == -1 {
			return s
		}
		mid := strings.Index(s[open:], "](")
		if mid == -1 {
			return s
		}
		mid = open + mid
		close := strings.Index(s[mid+2:], ")")
		if close == -1 {
			return s
		}
		close = mid + 2 + close
		s = s[:open] + s[open+1:mid] + s[close+1:]
	}
}

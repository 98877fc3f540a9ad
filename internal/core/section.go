package core

import "strings"

// Section is a half-open line range [Start, End): the heading line plus the
// body up to the next heading of equal or shallower level.
type Section struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// FindSection locates the first heading whose trimmed text equals
// headingText (markers included, e.g. "## Log"). Returns nil when absent.
func FindSection(lines []string, headingText string) *Section {
	want := strings.TrimSpace(headingText)
	if want == "" {
		return nil
	}
	for i, line := range lines {
		info := Classify(line)
		if !info.Heading || strings.TrimSpace(line) != want {
			continue
		}
		end := len(lines)
		for j := i + 1; j < len(lines); j++ {
			next := Classify(lines[j])
			if next.Heading && next.HeadingLevel <= info.HeadingLevel {
				end = j
				break
			}
		}
		return &Section{Start: i, End: end}
	}
	return nil
}

// FindInsertionLine picks where new content goes inside a section: before
// the first blank line when one exists (content after a blank is upcoming
// and stays last), otherwise after the last content line. An empty section
// yields the line directly under the heading.
func FindInsertionLine(lines []string, sectionStart, sectionEnd int) int {
	if sectionEnd > len(lines) {
		sectionEnd = len(lines)
	}
	for i := sectionStart + 1; i < sectionEnd; i++ {
		if i >= 0 && Classify(lines[i]).Blank {
			return i
		}
	}
	return sectionEnd
}

// EnclosingSection returns the section containing line: from the nearest
// heading at or above it down to that heading's end. When no heading exists
// above the line, Start is -1 and the range runs to the first heading after
// the line (or the end of the document).
func EnclosingSection(lines []string, line int) Section {
	if line < 0 {
		line = 0
	}
	if line >= len(lines) {
		line = len(lines) - 1
	}
	start := -1
	level := 0
	for i := line; i >= 0; i-- {
		info := Classify(lines[i])
		if info.Heading {
			start = i
			level = info.HeadingLevel
			break
		}
	}
	end := len(lines)
	for j := line + 1; j < len(lines); j++ {
		info := Classify(lines[j])
		if info.Heading && (start == -1 || info.HeadingLevel <= level) {
			end = j
			break
		}
	}
	return Section{Start: start, End: end}
}

package core

import (
	"testing"
)

func TestClassifyBlank(t *testing.T) {
	for _, line := range []string{"", "   ", "\t", " \t "} {
		if !Classify(line).Blank {
			t.Errorf("Classify(%q).Blank = false, want true", line)
		}
	}
}

func TestClassifyHeading(t *testing.T) {
	info := Classify("## Todo")
	if !info.Heading {
		t.Fatal("expected heading")
	}
	if info.HeadingLevel != 2 {
		t.Errorf("level = %d, want 2", info.HeadingLevel)
	}
	if info.HeadingTitle != "Todo" {
		t.Errorf("title = %q, want Todo", info.HeadingTitle)
	}
}

func TestClassifyHeadingNeedsSpace(t *testing.T) {
	info := Classify("##NoSpace")
	if info.Heading {
		t.Error("##NoSpace should not be a heading")
	}
}

func TestClassifyIndentedHashIsNotHeading(t *testing.T) {
	info := Classify("  ## nested")
	if info.Heading {
		t.Error("indented hash line should not be a heading")
	}
	if info.Depth != 1 {
		t.Errorf("depth = %d, want 1", info.Depth)
	}
}

func TestClassifyTaskMarkers(t *testing.T) {
	cases := []struct {
		line string
		want MarkerState
	}{
		{"- [ ] open item", MarkerOpen},
		{"- [x] finished", MarkerDone},
		{"- [X] finished upper", MarkerDone},
		{"- [/] in flight", MarkerStarted},
		{"- [<] pushed", MarkerScheduled},
		{"- [o] standup", MarkerMeeting},
		{"- [O] standup upper", MarkerMeeting},
		{"- [?] custom thing", MarkerCustom},
	}
	for _, c := range cases {
		info := Classify(c.line)
		if !info.Task {
			t.Errorf("Classify(%q).Task = false, want true", c.line)
			continue
		}
		if info.Marker != c.want {
			t.Errorf("Classify(%q).Marker = %q, want %q", c.line, info.Marker, c.want)
		}
	}
}

func TestClassifyTaskMarkerBounds(t *testing.T) {
	info := Classify("  - [x] done")
	if info.MarkerStart != 4 || info.MarkerEnd != 7 {
		t.Errorf("marker bounds = %d..%d, want 4..7", info.MarkerStart, info.MarkerEnd)
	}
	if got := "  - [x] done"[info.MarkerStart:info.MarkerEnd]; got != "[x]" {
		t.Errorf("marker token = %q, want [x]", got)
	}
	if info.Content != "done" {
		t.Errorf("content = %q, want done", info.Content)
	}
}

func TestClassifyDepthUnits(t *testing.T) {
	cases := []struct {
		line string
		want int
	}{
		{"- top", 0},
		{"\t- one tab", 1},
		{"\t\t- two tabs", 2},
		{"  - one space run", 1},
		{"    - still one space run", 1},
		{"\t  - tab then spaces", 2},
		{"  \t- spaces then tab", 2},
	}
	for _, c := range cases {
		if got := Classify(c.line).Depth; got != c.want {
			t.Errorf("Classify(%q).Depth = %d, want %d", c.line, got, c.want)
		}
	}
}

func TestClassifyBulletVariants(t *testing.T) {
	for _, line := range []string{"- item", "* item", "+ item"} {
		info := Classify(line)
		if !info.ListItem {
			t.Errorf("Classify(%q).ListItem = false, want true", line)
		}
		if info.Task {
			t.Errorf("Classify(%q).Task = true, want false", line)
		}
	}
}

func TestClassifyMalformedMarkerDegrades(t *testing.T) {
	// Unclosed or multi-rune brackets are list items, never tasks.
	for _, line := range []string{"- [x item", "- [xx] item", "- [] item"} {
		info := Classify(line)
		if !info.ListItem {
			t.Errorf("Classify(%q).ListItem = false, want true", line)
		}
		if info.Task {
			t.Errorf("Classify(%q).Task = true, want false", line)
		}
	}
}

func TestClassifyMarkerAtEndOfLine(t *testing.T) {
	info := Classify("- [x]")
	if !info.Task || info.Marker != MarkerDone {
		t.Errorf("bare marker line: task=%v marker=%q", info.Task, info.Marker)
	}
	if info.Content != "" {
		t.Errorf("content = %q, want empty", info.Content)
	}
}

func TestClassifyPlainText(t *testing.T) {
	info := Classify("just a paragraph")
	if info.Blank || info.Heading || info.ListItem || info.Task {
		t.Errorf("plain line misclassified: %+v", info)
	}
	if info.Content != "just a paragraph" {
		t.Errorf("content = %q", info.Content)
	}
}

func TestReopenLine(t *testing.T) {
	got := reopenLine("\t- [<] follow up")
	want := "\t- [ ] follow up"
	if got != want {
		t.Errorf("reopenLine = %q, want %q", got, want)
	}
}

func TestReopenLineLeavesOthersAlone(t *testing.T) {
	for _, line := range []string{"- [x] done", "- [ ] open", "plain", "## Todo", ""} {
		if got := reopenLine(line); got != line {
			t.Errorf("reopenLine(%q) = %q, want unchanged", line, got)
		}
	}
}

func TestDisplayText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"call [[Alice Smith|Alice]] about [[Project X]]", "call Alice about Project X"},
		{"read [the doc](https://example.com/doc)", "read the doc"},
		{"no links here", "no links here"},
		{"[[Unclosed", "[[Unclosed"},
	}
	for _, c := range cases {
		if got := DisplayText(c.in); got != c.want {
			t.Errorf("DisplayText(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

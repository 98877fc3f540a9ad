package core

import (
	"testing"
)

func TestFindSectionBasic(t *testing.T) {
	lines := docLines("# Note\n\n## Todo\n- [ ] a\n\n## Log\n- [x] b\n")
	got := FindSection(lines, "## Todo")
	if got == nil {
		t.Fatal("section not found")
	}
	if got.Start != 2 || got.End != 5 {
		t.Errorf("section = %+v, want {2 5}", *got)
	}
}

func TestFindSectionRunsToEOF(t *testing.T) {
	lines := docLines("## Log\n- [x] b\n- [x] c\n")
	got := FindSection(lines, "## Log")
	if got == nil {
		t.Fatal("section not found")
	}
	if got.Start != 0 || got.End != 3 {
		t.Errorf("section = %+v, want {0 3}", *got)
	}
}

func TestFindSectionDeeperHeadingStaysInside(t *testing.T) {
	lines := docLines("## Todo\n### Sub\n- [ ] a\n## Log\n")
	got := FindSection(lines, "## Todo")
	if got == nil {
		t.Fatal("section not found")
	}
	if got.End != 3 {
		t.Errorf("end = %d, want 3", got.End)
	}
}

func TestFindSectionExactMatchOnly(t *testing.T) {
	lines := docLines("## Todo items\n- [ ] a\n")
	if got := FindSection(lines, "## Todo"); got != nil {
		t.Errorf("expected nil for non-matching heading, got %+v", *got)
	}
}

func TestFindSectionTrimsWhitespace(t *testing.T) {
	lines := docLines("  \n## Todo\n- [ ] a\n")
	if got := FindSection(lines, "  ## Todo  "); got == nil {
		t.Error("trimmed heading should match")
	}
}

func TestFindSectionMissing(t *testing.T) {
	lines := docLines("## Todo\n- [ ] a\n")
	if got := FindSection(lines, "## Log"); got != nil {
		t.Errorf("expected nil, got %+v", *got)
	}
	if got := FindSection(lines, ""); got != nil {
		t.Errorf("expected nil for empty heading, got %+v", *got)
	}
}

func TestFindInsertionLineBeforeFirstBlank(t *testing.T) {
	lines := docLines("## Log\n- [x] old\n\n- [ ] upcoming\n")
	if got := FindInsertionLine(lines, 0, len(lines)); got != 2 {
		t.Errorf("insertion line = %d, want 2", got)
	}
}

func TestFindInsertionLineNoBlank(t *testing.T) {
	lines := docLines("## Log\n- [x] old\n- [x] older\n")
	if got := FindInsertionLine(lines, 0, len(lines)); got != 3 {
		t.Errorf("insertion line = %d, want 3", got)
	}
}

func TestFindInsertionLineEmptySection(t *testing.T) {
	lines := docLines("## Log\n## Next\n")
	if got := FindInsertionLine(lines, 0, 1); got != 1 {
		t.Errorf("insertion line = %d, want 1", got)
	}
}

func TestEnclosingSection(t *testing.T) {
	lines := docLines("# Note\nintro\n## Todo\n- [ ] a\n## Log\n")
	got := EnclosingSection(lines, 3)
	if got.Start != 2 || got.End != 4 {
		t.Errorf("section = %+v, want {2 4}", got)
	}
}

func TestEnclosingSectionNoHeadingAbove(t *testing.T) {
	lines := docLines("- [ ] stray\n- [ ] another\n## Todo\n")
	got := EnclosingSection(lines, 0)
	if got.Start != -1 || got.End != 2 {
		t.Errorf("section = %+v, want {-1 2}", got)
	}
}

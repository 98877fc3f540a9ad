package core

import "strings"

// EditScript is one move expressed as two operations against a single
// document snapshot: delete [DeleteFrom, DeleteTo) and insert InsertText at
// InsertAt. Offsets are byte offsets into the snapshot; both operations must
// be applied together against that snapshot (see Apply).
type EditScript struct {
	DeleteFrom int    `json:"delete_from"`
	DeleteTo   int    `json:"delete_to"`
	InsertAt   int    `json:"insert_at"`
	InsertText string `json:"insert_text"`
}

// Apply runs both operations against the snapshot the script was computed
// from, higher offset first so neither shifts the other.
func (e *EditScript) Apply(docText string) string {
	if e.InsertAt >= e.DeleteTo {
		out := docText[:e.InsertAt] + e.InsertText + docText[e.InsertAt:]
		return out[:e.DeleteFrom] + out[e.DeleteTo:]
	}
	out := docText[:e.DeleteFrom] + docText[e.DeleteTo:]
	return out[:e.InsertAt] + e.InsertText + out[e.InsertAt:]
}

// DefaultTriggerStates are the marker states that make a task eligible to
// move: completing a task and starting one both send it to the log.
var DefaultTriggerStates = []MarkerState{MarkerDone, MarkerStarted}

// PlanOptions controls Plan.
type PlanOptions struct {
	TriggerLine   int
	SourceHeading string
	DestHeading   string
	// TriggerStates are the marker states eligible to trigger a move.
	// nil means DefaultTriggerStates.
	TriggerStates []MarkerState
}

// PlanMove computes the edit script that relocates the block around
// triggerLine from sourceHeading to destHeading, using the default trigger
// states. See Plan.
func PlanMove(docText string, triggerLine int, sourceHeading, destHeading string) *EditScript {
	return Plan(docText, PlanOptions{
		TriggerLine:   triggerLine,
		SourceHeading: sourceHeading,
		DestHeading:   destHeading,
	})
}

// Plan validates the trigger line, resolves the full movable block, locates
// or synthesizes the destination section, and emits the edit script. A nil
// result signals structural rejection and has no partial effect: the source
// section is missing, the line is outside it or not a task in a trigger
// state, or the two operations would overlap. Plan never errors.
//
// Lines of the moved block whose marker is scheduled are rewritten to open:
// a returning task always reopens. When the destination heading is absent it
// is synthesized at document end, traveling inside the insert operation.
func Plan(docText string, opts PlanOptions) *EditScript {
	lines := SplitLines(docText)
	states := opts.TriggerStates
	if states == nil {
		states = DefaultTriggerStates
	}
	if strings.TrimSpace(opts.DestHeading) == "" {
		return nil
	}

	src := FindSection(lines, opts.SourceHeading)
	if src == nil {
		return nil
	}
	if opts.TriggerLine <= src.Start || opts.TriggerLine >= src.End {
		return nil
	}
	trigger := Classify(lines[opts.TriggerLine])
	if !trigger.Task || !containsState(states, trigger.Marker) {
		return nil
	}

	root := FindRootAncestor(lines, opts.TriggerLine, src.Start)
	if root < 0 {
		return nil
	}
	block := CollectBlock(lines, root, src.End)
	if block.End <= block.Start {
		return nil
	}

	moved := make([]string, 0, block.End-block.Start)
	for _, l := range lines[block.Start:block.End] {
		moved = append(moved, reopenLine(l))
	}
	movedText := strings.Join(moved, "\n") + "\n"

	// The deletion swallows exactly one trailing blank so removing the block
	// never leaves a doubled blank, unless that blank is the separator
	// before the next heading.
	delEnd := block.End
	if delEnd < len(lines) && Classify(lines[delEnd]).Blank {
		if delEnd+1 >= len(lines) || !Classify(lines[delEnd+1]).Heading {
			delEnd++
		}
	}
	deleteFrom := lineOffset(docText, lines, block.Start)
	deleteTo := lineOffset(docText, lines, delEnd)

	var insertAt int
	insertText := movedText
	if dst := FindSection(lines, opts.DestHeading); dst != nil {
		ins := FindInsertionLine(lines, dst.Start, dst.End)
		insertAt = lineOffset(docText, lines, ins)
		if needsLeadingNewline(docText, insertAt, deleteFrom, deleteTo) {
			insertText = "\n" + movedText
		}
	} else {
		insertAt = len(docText)
		var b strings.Builder
		if needsLeadingNewline(docText, insertAt, deleteFrom, deleteTo) {
			b.WriteByte('\n')
		}
		b.WriteString(strings.TrimSpace(opts.DestHeading))
		b.WriteByte('\n')
		b.WriteString(movedText)
		insertText = b.String()
	}

	if insertAt >= deleteFrom && insertAt < deleteTo {
		return nil
	}
	return &EditScript{
		DeleteFrom: deleteFrom,
		DeleteTo:   deleteTo,
		InsertAt:   insertAt,
		InsertText: insertText,
	}
}

// needsLeadingNewline reports whether inserted text at insertAt would run
// into an unterminated final line. When the insertion point coincides with
// the deletion end, the byte that will precede it after the delete is the
// one before deleteFrom.
func needsLeadingNewline(docText string, insertAt, deleteFrom, deleteTo int) bool {
	at := insertAt
	if at == deleteTo {
		at = deleteFrom
	}
	if at <= 0 {
		return false
	}
	return docText[at-1] != '\n'
}

func containsState(states []MarkerState, s MarkerState) bool {
	for _, st := range states {
		if st == s {
			return true
		}
	}
	return false
}

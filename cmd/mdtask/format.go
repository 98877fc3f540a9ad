package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"mdtask/internal/core"
)

// validateFormat checks that format is "json" or "text".
func validateFormat(format string) error {
	if format != "json" && format != "text" {
		return fmt.Errorf("invalid format: %q (must be json or text)", format)
	}
	return nil
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// --- Plan / Move output ---

func printMoveJSON(w io.Writer, r core.MoveTaskResult) error {
	return encodeJSON(w, r)
}

func printMoveText(w io.Writer, r core.MoveTaskResult) {
	if r.ID != "" {
		fmt.Fprintf(w, "id: %s\n", r.ID)
	}
	fmt.Fprintf(w, "file: %s\n", r.File)
	fmt.Fprintf(w, "delete_from: %d\n", r.Script.DeleteFrom)
	fmt.Fprintf(w, "delete_to: %d\n", r.Script.DeleteTo)
	fmt.Fprintf(w, "insert_at: %d\n", r.Script.InsertAt)
	fmt.Fprintf(w, "insert_text: %q\n", r.Script.InsertText)
}

// --- Undo output ---

func printUndoJSON(w io.Writer, r core.UndoResult) error {
	return encodeJSON(w, r)
}

func printUndoText(w io.Writer, r core.UndoResult) {
	fmt.Fprintf(w, "id: %s\n", r.ID)
	fmt.Fprintf(w, "path: %s\n", r.Path)
}

// --- History output ---

func printHistoryJSON(w io.Writer, recs []core.MoveRecord) error {
	if recs == nil {
		recs = []core.MoveRecord{}
	}
	return encodeJSON(w, recs)
}

func printHistoryText(w io.Writer, recs []core.MoveRecord) {
	for _, rec := range recs {
		fmt.Fprintf(w, "- id: %s\n", rec.ID)
		fmt.Fprintf(w, "  path: %s\n", rec.Path)
		fmt.Fprintf(w, "  applied_at: %s\n", rec.AppliedAt.Format(time.RFC3339))
		if rec.UndoneAt != nil {
			fmt.Fprintf(w, "  undone_at: %s\n", rec.UndoneAt.Format(time.RFC3339))
		}
		fmt.Fprintf(w, "  moved_text: %q\n", rec.MovedText)
	}
}

// --- Block output ---

type blockOutput struct {
	File  string     `json:"file"`
	Line  int        `json:"line"`
	Root  int        `json:"root"`
	Block core.Block `json:"block"`
	Lines []string   `json:"lines"`
}

func printBlockJSON(w io.Writer, r blockOutput) error {
	return encodeJSON(w, r)
}

func printBlockText(w io.Writer, r blockOutput) {
	fmt.Fprintf(w, "file: %s\n", r.File)
	fmt.Fprintf(w, "root: %d\n", r.Root)
	fmt.Fprintf(w, "block: %d-%d\n", r.Block.Start, r.Block.End)
	fmt.Fprintln(w, "lines:")
	for _, line := range r.Lines {
		fmt.Fprintf(w, "- %q\n", line)
	}
}

// --- Section output ---

type sectionOutput struct {
	File          string `json:"file"`
	Heading       string `json:"heading"`
	Start         int    `json:"start"`
	End           int    `json:"end"`
	InsertionLine int    `json:"insertion_line"`
}

func printSectionJSON(w io.Writer, r sectionOutput) error {
	return encodeJSON(w, r)
}

func printSectionText(w io.Writer, r sectionOutput) {
	fmt.Fprintf(w, "file: %s\n", r.File)
	fmt.Fprintf(w, "heading: %s\n", r.Heading)
	fmt.Fprintf(w, "start: %d\n", r.Start)
	fmt.Fprintf(w, "end: %d\n", r.End)
	fmt.Fprintf(w, "insertion_line: %d\n", r.InsertionLine)
}

// --- Lines output ---

type lineOutput struct {
	Index int    `json:"index"`
	Kind  string `json:"kind"`
	Depth int    `json:"depth"`
	State string `json:"state,omitempty"`
	Text  string `json:"text"`
}

func lineKind(info core.LineInfo) string {
	switch {
	case info.Blank:
		return "blank"
	case info.Heading:
		return "heading"
	case info.Task:
		return "task"
	case info.ListItem:
		return "list"
	default:
		return "text"
	}
}

func printLinesJSON(w io.Writer, lines []lineOutput) error {
	if lines == nil {
		lines = []lineOutput{}
	}
	return encodeJSON(w, lines)
}

func printLinesText(w io.Writer, lines []lineOutput) {
	for _, l := range lines {
		if l.State != "" {
			fmt.Fprintf(w, "%d: %s[%s] depth=%d %q\n", l.Index, l.Kind, l.State, l.Depth, l.Text)
			continue
		}
		fmt.Fprintf(w, "%d: %s depth=%d %q\n", l.Index, l.Kind, l.Depth, l.Text)
	}
}

package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoMove is returned when the requested line does not resolve to a
// movable task block. Callers distinguish it from I/O failures with
// errors.Is.
var ErrNoMove = errors.New("no eligible task to move")

// MoveTaskOptions identifies the task to move. File is relative to the
// vault root. Empty headings fall back to the vault configuration.
type MoveTaskOptions struct {
	File          string
	Line          int
	SourceHeading string
	DestHeading   string
}

// MoveTaskResult reports an applied (or planned) move.
type MoveTaskResult struct {
	ID     string      `json:"id,omitempty"`
	File   string      `json:"file"`
	Script *EditScript `json:"script"`
}

type plannedMove struct {
	file    string // normalized, vault-relative
	absPath string
	source  string
	dest    string
	docText string
	script  *EditScript
}

func planForFile(vaultPath string, opts MoveTaskOptions) (*plannedMove, error) {
	cfg, err := LoadConfig(vaultPath)
	if err != nil {
		return nil, err
	}
	cfg = cfg.WithDefaults()
	states, err := cfg.TriggerStates()
	if err != nil {
		return nil, err
	}

	source := opts.SourceHeading
	if source == "" {
		source = cfg.Move.SourceHeading
	}
	dest := opts.DestHeading
	if dest == "" {
		dest = cfg.Move.DestinationHeading
	}

	file := NormalizePath(opts.File)
	absPath := filepath.Join(vaultPath, filepath.FromSlash(file))
	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, err
	}
	docText := string(data)

	script := Plan(docText, PlanOptions{
		TriggerLine:   opts.Line,
		SourceHeading: source,
		DestHeading:   dest,
		TriggerStates: states,
	})
	if script == nil {
		return nil, fmt.Errorf("%w: %s line %d", ErrNoMove, file, opts.Line)
	}
	return &plannedMove{
		file:    file,
		absPath: absPath,
		source:  source,
		dest:    dest,
		docText: docText,
		script:  script,
	}, nil
}

// PlanTask computes the move without touching the file or the journal.
func PlanTask(vaultPath string, opts MoveTaskOptions) (MoveTaskResult, error) {
	p, err := planForFile(vaultPath, opts)
	if err != nil {
		return MoveTaskResult{}, err
	}
	return MoveTaskResult{File: p.file, Script: p.script}, nil
}

// MoveTask plans the move, rewrites the file, and journals the applied edit
// together with its inverse so the move can be undone later.
func MoveTask(vaultPath string, opts MoveTaskOptions) (MoveTaskResult, error) {
	p, err := planForFile(vaultPath, opts)
	if err != nil {
		return MoveTaskResult{}, err
	}

	info, err := os.Stat(p.absPath)
	if err != nil {
		return MoveTaskResult{}, err
	}
	updated := p.script.Apply(p.docText)
	if err := writeFilePreservePerm(p.absPath, []byte(updated), info.Mode().Perm()); err != nil {
		return MoveTaskResult{}, err
	}
	info, err = os.Stat(p.absPath)
	if err != nil {
		return MoveTaskResult{}, err
	}

	rec := MoveRecord{
		ID:            newULID(),
		Path:          p.file,
		SourceHeading: p.source,
		DestHeading:   p.dest,
		TriggerLine:   opts.Line,
		MovedText:     p.script.InsertText,
		Undo:          inverseScript(p.docText, p.script),
		FileMtime:     info.ModTime().Unix(),
		FileSize:      info.Size(),
		AppliedAt:     timeNow(),
	}
	db, err := openJournal(vaultPath)
	if err != nil {
		return MoveTaskResult{}, err
	}
	defer db.Close()
	if err := insertMoveRecord(db, rec); err != nil {
		return MoveTaskResult{}, err
	}
	return MoveTaskResult{ID: rec.ID, File: p.file, Script: p.script}, nil
}

// inverseScript builds the edit that, applied to the updated document,
// restores the original. The inverse deletes the inserted text at its
// post-edit position and reinserts the originally deleted text where it was.
func inverseScript(docText string, s *EditScript) EditScript {
	original := docText[s.DeleteFrom:s.DeleteTo]
	n := len(s.InsertText)
	if s.InsertAt >= s.DeleteTo {
		at := s.InsertAt - (s.DeleteTo - s.DeleteFrom)
		return EditScript{
			DeleteFrom: at,
			DeleteTo:   at + n,
			InsertAt:   s.DeleteFrom,
			InsertText: original,
		}
	}
	return EditScript{
		DeleteFrom: s.InsertAt,
		DeleteTo:   s.InsertAt + n,
		InsertAt:   s.DeleteFrom + n,
		InsertText: original,
	}
}

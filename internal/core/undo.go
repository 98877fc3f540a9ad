package core

import (
	"fmt"
	"os"
	"path/filepath"
)

// UndoResult reports a reverted move.
type UndoResult struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

// Undo reverts a journaled move. With an empty id the newest move not yet
// undone is chosen. The file must be unchanged since the move: both the
// journaled mtime and size must still match, and the journaled text must
// still sit at the recorded offsets.
func Undo(vaultPath, id string) (UndoResult, error) {
	db, err := openJournal(vaultPath)
	if err != nil {
		return UndoResult{}, err
	}
	defer db.Close()

	var rec MoveRecord
	if id == "" {
		rec, err = latestActiveMove(db, "")
	} else {
		rec, err = getMoveRecord(db, id)
	}
	if err != nil {
		return UndoResult{}, err
	}
	if rec.UndoneAt != nil {
		return UndoResult{}, fmt.Errorf("move already undone: %s", rec.ID)
	}

	absPath := filepath.Join(vaultPath, filepath.FromSlash(rec.Path))
	info, err := os.Stat(absPath)
	if err != nil {
		return UndoResult{}, err
	}
	if info.ModTime().Unix() != rec.FileMtime || info.Size() != rec.FileSize {
		return UndoResult{}, fmt.Errorf("%s changed since move %s, refusing to undo", rec.Path, rec.ID)
	}
	data, err := os.ReadFile(absPath)
	if err != nil {
		return UndoResult{}, err
	}
	doc := string(data)
	if rec.Undo.DeleteTo > len(doc) || doc[rec.Undo.DeleteFrom:rec.Undo.DeleteTo] != rec.MovedText {
		return UndoResult{}, fmt.Errorf("%s changed since move %s, refusing to undo", rec.Path, rec.ID)
	}

	restored := rec.Undo.Apply(doc)
	if err := writeFilePreservePerm(absPath, []byte(restored), info.Mode().Perm()); err != nil {
		return UndoResult{}, err
	}
	if err := markUndone(db, rec.ID, timeNow()); err != nil {
		return UndoResult{}, err
	}
	return UndoResult{ID: rec.ID, Path: rec.Path}, nil
}

// History lists journaled moves, newest first, optionally restricted to one
// file (vault-relative path).
func History(vaultPath, path string) ([]MoveRecord, error) {
	db, err := openJournal(vaultPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	if path != "" {
		path = NormalizePath(path)
	}
	return listMoves(db, path)
}

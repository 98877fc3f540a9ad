package core

import (
	"crypto/rand"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"
)

const (
	dataDirName     = ".mdtask"
	journalFileName = "journal.sqlite"
)

// timeNow is swapped in tests.
var timeNow = func() time.Time { return time.Now().UTC() }

func journalPath(vaultPath string) string {
	return filepath.Join(vaultPath, dataDirName, journalFileName)
}

func ensureDataDir(vaultPath string) (string, error) {
	dir := filepath.Join(vaultPath, dataDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

func openJournal(vaultPath string) (*sql.DB, error) {
	if _, err := ensureDataDir(vaultPath); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s", journalPath(vaultPath)))
	if err != nil {
		return nil, err
	}
	if err := initJournalSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func initJournalSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS moves (
			id               TEXT PRIMARY KEY,
			path             TEXT NOT NULL,
			source_heading   TEXT NOT NULL,
			dest_heading     TEXT NOT NULL,
			trigger_line     INTEGER NOT NULL,
			moved_text       TEXT NOT NULL,
			undo_delete_from INTEGER NOT NULL,
			undo_delete_to   INTEGER NOT NULL,
			undo_insert_at   INTEGER NOT NULL,
			undo_insert_text TEXT NOT NULL,
			file_mtime       INTEGER NOT NULL,
			file_size        INTEGER NOT NULL,
			applied_at       INTEGER NOT NULL,
			undone_at        INTEGER
		);`,
		`CREATE INDEX IF NOT EXISTS idx_moves_path ON moves(path);`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// MoveRecord is one applied move as journaled, carrying the inverse edit
// script needed to undo it.
type MoveRecord struct {
	ID            string     `json:"id"`
	Path          string     `json:"path"`
	SourceHeading string     `json:"source_heading"`
	DestHeading   string     `json:"dest_heading"`
	TriggerLine   int        `json:"trigger_line"`
	MovedText     string     `json:"moved_text"`
	Undo          EditScript `json:"undo"`
	FileMtime     int64      `json:"file_mtime"`
	FileSize      int64      `json:"file_size"`
	AppliedAt     time.Time  `json:"applied_at"`
	UndoneAt      *time.Time `json:"undone_at,omitempty"`
}

func insertMoveRecord(db *sql.DB, rec MoveRecord) error {
	_, err := db.Exec(
		`INSERT INTO moves (id, path, source_heading, dest_heading, trigger_line,
		   moved_text, undo_delete_from, undo_delete_to, undo_insert_at,
		   undo_insert_text, file_mtime, file_size, applied_at, undone_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NULL)`,
		rec.ID, rec.Path, rec.SourceHeading, rec.DestHeading, rec.TriggerLine,
		rec.MovedText, rec.Undo.DeleteFrom, rec.Undo.DeleteTo, rec.Undo.InsertAt,
		rec.Undo.InsertText, rec.FileMtime, rec.FileSize, rec.AppliedAt.Unix(),
	)
	return err
}

const moveColumns = `id, path, source_heading, dest_heading, trigger_line,
	moved_text, undo_delete_from, undo_delete_to, undo_insert_at,
	undo_insert_text, file_mtime, file_size, applied_at, undone_at`

func scanMoveRecord(row interface{ Scan(...any) error }) (MoveRecord, error) {
	var rec MoveRecord
	var appliedAt int64
	var undoneAt sql.NullInt64
	err := row.Scan(
		&rec.ID, &rec.Path, &rec.SourceHeading, &rec.DestHeading, &rec.TriggerLine,
		&rec.MovedText, &rec.Undo.DeleteFrom, &rec.Undo.DeleteTo, &rec.Undo.InsertAt,
		&rec.Undo.InsertText, &rec.FileMtime, &rec.FileSize, &appliedAt, &undoneAt,
	)
	if err != nil {
		return rec, err
	}
	rec.AppliedAt = time.Unix(appliedAt, 0).UTC()
	if undoneAt.Valid {
		t := time.Unix(undoneAt.Int64, 0).UTC()
		rec.UndoneAt = &t
	}
	return rec, nil
}

func getMoveRecord(db *sql.DB, id string) (MoveRecord, error) {
	row := db.QueryRow("SELECT "+moveColumns+" FROM moves WHERE id = ?", id)
	rec, err := scanMoveRecord(row)
	if err == sql.ErrNoRows {
		return rec, fmt.Errorf("move not found: %s", id)
	}
	return rec, err
}

// latestActiveMove returns the newest move not yet undone, optionally
// restricted to one file. ULIDs sort by creation time, so ordering by id
// yields chronological order.
func latestActiveMove(db *sql.DB, path string) (MoveRecord, error) {
	query := "SELECT " + moveColumns + " FROM moves WHERE undone_at IS NULL"
	args := []any{}
	if path != "" {
		query += " AND path = ?"
		args = append(args, path)
	}
	query += " ORDER BY id DESC LIMIT 1"
	rec, err := scanMoveRecord(db.QueryRow(query, args...))
	if err == sql.ErrNoRows {
		return rec, fmt.Errorf("no move to undo")
	}
	return rec, err
}

func markUndone(db *sql.DB, id string, at time.Time) error {
	_, err := db.Exec("UPDATE moves SET undone_at = ? WHERE id = ?", at.Unix(), id)
	return err
}

func listMoves(db *sql.DB, path string) ([]MoveRecord, error) {
	query := "SELECT " + moveColumns + " FROM moves"
	args := []any{}
	if path != "" {
		query += " WHERE path = ?"
		args = append(args, path)
	}
	query += " ORDER BY id DESC"
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var recs []MoveRecord
	for rows.Next() {
		rec, err := scanMoveRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

type randReader struct{}

func (randReader) Read(p []byte) (int, error) { return rand.Read(p) }

var ulidEntropy = ulid.Monotonic(randReader{}, 0)

func newULID() string {
	id, err := ulid.New(ulid.Timestamp(timeNow()), ulidEntropy)
	if err != nil {
		return fmt.Sprintf("%d", timeNow().UnixNano())
	}
	return strings.ToUpper(id.String())
}

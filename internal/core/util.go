package core

import (
	"os"
	"path/filepath"
	"strings"
)

// SplitLines splits a document into lines without their terminating
// newlines. A trailing newline does not produce a final empty line, so the
// line slice round-trips through lineOffset against the original text.
func SplitLines(docText string) []string {
	if docText == "" {
		return nil
	}
	lines := strings.Split(docText, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// lineOffset returns the byte offset of the start of lines[i] within
// docText. i == len(lines) addresses the position after the last line.
func lineOffset(docText string, lines []string, i int) int {
	off := 0
	for j := 0; j < i && j < len(lines); j++ {
		off += len(lines[j]) + 1
	}
	if off > len(docText) {
		off = len(docText)
	}
	return off
}

// NormalizePath converts a path to the canonical slash-separated form used
// in journal records.
func NormalizePath(path string) string {
	normalized := filepath.ToSlash(filepath.Clean(path))
	return strings.TrimPrefix(normalized, "./")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// writeFilePreservePerm writes content keeping the file's existing mode.
func writeFilePreservePerm(path string, content []byte, perm os.FileMode) error {
	if err := os.WriteFile(path, content, perm); err != nil {
		return err
	}
	return os.Chmod(path, perm)
}

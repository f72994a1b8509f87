// ============================================================================
// uwu - Interpreter fuer die UwU-Skriptsprache
// ============================================================================
//
// Package:     repl
// Description: Input history persistence for the REPL
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package repl

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// historyFile is the on-disk layout of the history
type historyFile struct {
	Inputs []string `json:"inputs"`
}

// History holds previous inputs, oldest first. An empty path keeps the
// history in memory only.
type History struct {
	path    string
	size    int
	entries []string
}

// LoadHistory reads the history from path. A missing or unreadable file
// yields an empty history.
func LoadHistory(path string, size int) *History {
	h := &History{path: path, size: size}
	if path == "" {
		return h
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return h
	}

	var file historyFile
	if err := json.Unmarshal(data, &file); err != nil {
		return h
	}
	h.entries = file.Inputs
	h.trim()
	return h
}

// Add appends an input unless it repeats the last one
func (h *History) Add(input string) {
	if input == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == input {
		return
	}
	h.entries = append(h.entries, input)
	h.trim()
}

// Len returns the number of stored inputs
func (h *History) Len() int {
	return len(h.entries)
}

// At returns the input at index i, oldest first
func (h *History) At(i int) string {
	return h.entries[i]
}

// Entries returns a copy of the stored inputs
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Save writes the history to its file
func (h *History) Save() error {
	if h.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(h.path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(historyFile{Inputs: h.entries}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(h.path, data, 0644)
}

func (h *History) trim() {
	if h.size > 0 && len(h.entries) > h.size {
		h.entries = h.entries[len(h.entries)-h.size:]
	}
}

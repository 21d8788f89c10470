// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package assets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AleutianAI/signosi/pkg/signlang"
)

// LocalStore serves media availability from a directory tree on disk.
//
// # Description
//
// Word and number media live under the media root at the paths the
// vocabulary records. Letter landmarks live under the landmark root as one
// JSON file per reduced unit ("ක.json", "ඊ.json", ...). The landmark set is
// scanned once at construction; media files are stat'ed per query so a
// volume remount is picked up without a restart.
type LocalStore struct {
	vocab        *signlang.Vocabulary
	mediaRoot    string
	landmarkRoot string
	units        map[string]string // unit text -> landmark label
}

// NewLocalStore scans the landmark directory and returns a store over the
// two roots. A missing landmark directory is not an error; the store then
// reports every unit as unavailable.
func NewLocalStore(vocab *signlang.Vocabulary, mediaRoot, landmarkRoot string) (*LocalStore, error) {
	s := &LocalStore{
		vocab:        vocab,
		mediaRoot:    mediaRoot,
		landmarkRoot: landmarkRoot,
		units:        make(map[string]string),
	}

	entries, err := os.ReadDir(landmarkRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("scan landmark directory: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		unit := strings.TrimSuffix(e.Name(), ".json")
		s.units[unit] = filepath.Join("landmarks", e.Name())
	}

	return s, nil
}

// Availability stats each label's recorded media under the media root.
func (s *LocalStore) Availability(ctx context.Context, labels []string) (map[string]bool, error) {
	out := make(map[string]bool, len(labels))
	for _, label := range labels {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entry, ok := s.vocab.Entry(label)
		if !ok || entry.MediaPath == "" {
			out[label] = false
			continue
		}
		_, err := os.Stat(filepath.Join(s.mediaRoot, filepath.FromSlash(entry.MediaPath)))
		out[label] = err == nil
	}
	return out, nil
}

// MediaURL returns the on-disk path of the label's media. No signing is
// involved for local volumes.
func (s *LocalStore) MediaURL(_ context.Context, label string) (string, error) {
	entry, ok := s.vocab.Entry(label)
	if !ok || entry.MediaPath == "" {
		return "", fmt.Errorf("%w: %s", ErrNotFound, label)
	}
	path := filepath.Join(s.mediaRoot, filepath.FromSlash(entry.MediaPath))
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, label)
	}
	return path, nil
}

// UnitLabel reports the landmark label for a reduced unit.
func (s *LocalStore) UnitLabel(unit string) (string, bool) {
	label, ok := s.units[unit]
	return label, ok
}

// Landmarks reads the unit's landmark JSON from the landmark root.
func (s *LocalStore) Landmarks(_ context.Context, unit string) ([]byte, error) {
	if _, ok := s.units[unit]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, unit)
	}
	payload, err := os.ReadFile(filepath.Join(s.landmarkRoot, unit+".json"))
	if err != nil {
		return nil, fmt.Errorf("read landmark %s: %w", unit, err)
	}
	return payload, nil
}

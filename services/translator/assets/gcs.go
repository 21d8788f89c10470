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
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"cloud.google.com/go/storage"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/AleutianAI/signosi/pkg/signlang"
)

// GCSStore serves media from a Google Cloud Storage bucket.
//
// # Description
//
// Media objects live in the bucket at the paths the vocabulary records.
// MediaURL returns V4 signed URLs so clients fetch directly from GCS
// without the translator proxying video bytes. Availability checks run
// concurrently, one attrs request per label.
//
// # Thread Safety
//
// Safe for concurrent use after construction.
type GCSStore struct {
	client     *storage.Client
	vocab      *signlang.Vocabulary
	bucketName string
	urlTTL     time.Duration

	mu    sync.RWMutex
	units map[string]string // unit text -> landmark object label
}

// GCSConfig configures a GCSStore.
type GCSConfig struct {
	// BucketName is the media bucket. Required.
	BucketName string

	// SAKeyPath is a service account key file. Empty uses application
	// default credentials.
	SAKeyPath string

	// URLTTL is the signed URL lifetime. Defaults to 15 minutes.
	URLTTL time.Duration

	// LandmarkPrefix is the object prefix the letter landmarks live under.
	// Defaults to "landmarks/".
	LandmarkPrefix string
}

// NewGCSStore builds the store and lists the landmark objects once so unit
// availability answers never hit the network.
func NewGCSStore(ctx context.Context, vocab *signlang.Vocabulary, cfg GCSConfig) (*GCSStore, error) {
	if cfg.BucketName == "" {
		return nil, errors.New("bucket name is required")
	}
	if cfg.URLTTL == 0 {
		cfg.URLTTL = 15 * time.Minute
	}
	if cfg.LandmarkPrefix == "" {
		cfg.LandmarkPrefix = "landmarks/"
	}

	var opts []option.ClientOption
	if cfg.SAKeyPath != "" {
		if _, err := os.Stat(cfg.SAKeyPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("service account key not found at path: %s", cfg.SAKeyPath)
		}
		opts = append(opts, option.WithCredentialsFile(cfg.SAKeyPath))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS storage client: %w", err)
	}

	s := &GCSStore{
		client:     client,
		vocab:      vocab,
		bucketName: cfg.BucketName,
		urlTTL:     cfg.URLTTL,
		units:      make(map[string]string),
	}
	if err := s.scanLandmarks(ctx, cfg.LandmarkPrefix); err != nil {
		return nil, err
	}
	return s, nil
}

// scanLandmarks lists the landmark prefix and indexes objects by unit text
// ("landmarks/ක.json" -> "ක").
func (s *GCSStore) scanLandmarks(ctx context.Context, prefix string) error {
	it := s.client.Bucket(s.bucketName).Objects(ctx, &storage.Query{Prefix: prefix})
	for {
		attrs, err := it.Next()
		if err != nil {
			if errors.Is(err, iterator.Done) {
				return nil
			}
			return fmt.Errorf("list landmark objects: %w", err)
		}
		unit := unitFromObjectName(attrs.Name, prefix)
		if unit == "" {
			continue
		}
		s.mu.Lock()
		s.units[unit] = attrs.Name
		s.mu.Unlock()
	}
}

// Availability checks object existence concurrently, one request per label.
func (s *GCSStore) Availability(ctx context.Context, labels []string) (map[string]bool, error) {
	out := make(map[string]bool, len(labels))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, label := range labels {
		g.Go(func() error {
			available := false
			if entry, ok := s.vocab.Entry(label); ok && entry.MediaPath != "" {
				_, err := s.client.Bucket(s.bucketName).Object(entry.MediaPath).Attrs(ctx)
				switch {
				case err == nil:
					available = true
				case errors.Is(err, storage.ErrObjectNotExist):
				default:
					return fmt.Errorf("check %s: %w", label, err)
				}
			}
			mu.Lock()
			out[label] = available
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// MediaURL returns a V4 signed GET URL for the label's media object.
func (s *GCSStore) MediaURL(_ context.Context, label string) (string, error) {
	entry, ok := s.vocab.Entry(label)
	if !ok || entry.MediaPath == "" {
		return "", fmt.Errorf("%w: %s", ErrNotFound, label)
	}
	url, err := s.client.Bucket(s.bucketName).SignedURL(entry.MediaPath, &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  "GET",
		Expires: time.Now().Add(s.urlTTL),
	})
	if err != nil {
		return "", fmt.Errorf("sign URL for %s: %w", label, err)
	}
	return url, nil
}

// UnitLabel reports the landmark object for a reduced unit.
func (s *GCSStore) UnitLabel(unit string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	label, ok := s.units[unit]
	return label, ok
}

// Landmarks downloads the unit's landmark JSON object.
func (s *GCSStore) Landmarks(ctx context.Context, unit string) ([]byte, error) {
	s.mu.RLock()
	object, ok := s.units[unit]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, unit)
	}

	r, err := s.client.Bucket(s.bucketName).Object(object).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("read landmark %s: %w", unit, err)
	}
	defer r.Close()
	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read landmark %s: %w", unit, err)
	}
	return payload, nil
}

// Close releases the underlying client.
func (s *GCSStore) Close() error {
	return s.client.Close()
}

// unitFromObjectName extracts the unit text from a landmark object name,
// returning "" for directory placeholders and non-JSON objects.
func unitFromObjectName(name, prefix string) string {
	rest := strings.TrimPrefix(name, prefix)
	if rest == name || rest == "" || strings.Contains(rest, "/") {
		return ""
	}
	if !strings.HasSuffix(rest, ".json") {
		return ""
	}
	return strings.TrimSuffix(rest, ".json")
}

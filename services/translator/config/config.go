// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package config loads the translator configuration from a YAML file with
// environment variable overrides, so containers can tweak single values
// without shipping a new file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/AleutianAI/signosi/pkg/signlang"
)

// Config is the full translator configuration.
type Config struct {
	// Port the HTTP server listens on.
	Port string `yaml:"port"`

	// VocabularyPath is the dictionary mapping JSON file.
	VocabularyPath string `yaml:"vocabulary_path"`

	// Store selects the media backend: "local" or "gcs".
	Store string `yaml:"store"`

	// MediaRoot is the local media directory (local store only).
	MediaRoot string `yaml:"media_root"`

	// LandmarkRoot is the local letter-landmark directory.
	LandmarkRoot string `yaml:"landmark_root"`

	// ExtraUnitThreshold is the default spelling-override threshold.
	ExtraUnitThreshold int `yaml:"extra_unit_threshold"`

	// GCS configures the remote media bucket (gcs store only).
	GCS GCSConfig `yaml:"gcs"`

	// Cache configures the landmark cache.
	Cache CacheConfig `yaml:"cache"`

	// Rules optionally replaces the default rule chain.
	Rules []RuleConfig `yaml:"rules"`
}

// GCSConfig configures the GCS media store.
type GCSConfig struct {
	Bucket    string        `yaml:"bucket"`
	SAKeyPath string        `yaml:"sa_key_path"`
	URLTTL    time.Duration `yaml:"url_ttl"`
}

// CacheConfig configures the BadgerDB landmark cache.
type CacheConfig struct {
	Path     string        `yaml:"path"`
	InMemory bool          `yaml:"in_memory"`
	TTL      time.Duration `yaml:"ttl"`
}

// RuleConfig is one rule chain entry in the config file.
type RuleConfig struct {
	Kind     string   `yaml:"kind"` // direct, number, spelling
	Priority int      `yaml:"priority"`
	Tags     []string `yaml:"tags"` // default, number, name, unknown
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Port:               "12310",
		VocabularyPath:     "/app/assets/vocabulary.json",
		Store:              "local",
		MediaRoot:          "/app/assets/media",
		LandmarkRoot:       "/app/assets/landmarks",
		ExtraUnitThreshold: signlang.DefaultExtraUnitThreshold,
	}
}

// Load reads the YAML file at path, falling back to defaults for absent
// fields, then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides single values from the environment, the way the
// container composition passes them.
func (c *Config) applyEnv() {
	if v := os.Getenv("TRANSLATOR_PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("TRANSLATOR_VOCABULARY_PATH"); v != "" {
		c.VocabularyPath = v
	}
	if v := os.Getenv("TRANSLATOR_STORE"); v != "" {
		c.Store = v
	}
	if v := os.Getenv("TRANSLATOR_MEDIA_ROOT"); v != "" {
		c.MediaRoot = v
	}
	if v := os.Getenv("TRANSLATOR_LANDMARK_ROOT"); v != "" {
		c.LandmarkRoot = v
	}
	if v := os.Getenv("TRANSLATOR_GCS_BUCKET"); v != "" {
		c.GCS.Bucket = v
	}
	if v := os.Getenv("TRANSLATOR_GCS_SA_KEY_PATH"); v != "" {
		c.GCS.SAKeyPath = v
	}
	if v := os.Getenv("TRANSLATOR_EXTRA_UNIT_THRESHOLD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.ExtraUnitThreshold = n
		}
	}
}

// RuleChain converts the configured rules to engine form. An empty config
// yields nil, which the engine replaces with its defaults.
func (c *Config) RuleChain() ([]signlang.Rule, error) {
	if len(c.Rules) == 0 {
		return nil, nil
	}

	rules := make([]signlang.Rule, 0, len(c.Rules))
	for _, rc := range c.Rules {
		kind, err := parseRuleKind(rc.Kind)
		if err != nil {
			return nil, err
		}
		tags := make([]signlang.Tag, 0, len(rc.Tags))
		for _, t := range rc.Tags {
			tag, err := parseTag(t)
			if err != nil {
				return nil, err
			}
			tags = append(tags, tag)
		}
		rules = append(rules, signlang.Rule{Kind: kind, Priority: rc.Priority, Tags: tags})
	}
	return rules, nil
}

func parseRuleKind(s string) (signlang.RuleKind, error) {
	switch s {
	case "direct":
		return signlang.RuleDirect, nil
	case "number":
		return signlang.RuleNumber, nil
	case "spelling":
		return signlang.RuleSpelling, nil
	default:
		return 0, fmt.Errorf("unknown rule kind %q", s)
	}
}

func parseTag(s string) (signlang.Tag, error) {
	switch s {
	case "default":
		return signlang.TagDefault, nil
	case "number":
		return signlang.TagNumber, nil
	case "name":
		return signlang.TagName, nil
	case "unknown":
		return signlang.TagUnknown, nil
	default:
		return 0, fmt.Errorf("unknown token tag %q", s)
	}
}

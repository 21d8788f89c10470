// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package sinhala

import (
	"reflect"
	"testing"
)

func TestReduce_InherentVowelDropped(t *testing.T) {
	// ක carries the implicit "a", which has no separate sign of its own.
	got := Reduce("ක")
	want := []string{"ක"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reduce(ක) = %v, want %v", got, want)
	}
}

func TestReduce_ExplicitVowelKept(t *testing.T) {
	got := Reduce("කී")
	want := []string{"ක", "ඊ"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reduce(කී) = %v, want %v", got, want)
	}
}

func TestReduce_PureConsonant(t *testing.T) {
	// Hal kirima cancels the vowel entirely; no vowel unit follows.
	got := Reduce("ක්")
	want := []string{"ක"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reduce(ක්) = %v, want %v", got, want)
	}
}

func TestReduce_Word(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"පොත", []string{"ප", "ඔ", "ත"}},
		{"අම්මා", []string{"අ", "ම", "ම", "ආ"}},
		{"ගෙදර", []string{"ග", "එ", "ද", "ර"}},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			if got := Reduce(c.in); !reflect.DeepEqual(got, c.want) {
				t.Errorf("Reduce(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestReduce_PassthroughSurvives(t *testing.T) {
	got := Reduce("ක7")
	want := []string{"ක", "7"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reduce(ක7) = %v, want %v", got, want)
	}
}

func TestReduce_Deterministic(t *testing.T) {
	in := "කොල්ලො"
	first := Reduce(in)
	second := Reduce(in)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Reduce not deterministic: %v vs %v", first, second)
	}
}

// TestNormalizeMarks covers the two storage-order artifacts: pre-base sign
// stored before its consonant, and split vowel pairs.
func TestNormalizeMarks(t *testing.T) {
	t.Run("pre-base sign swapped behind consonant", func(t *testing.T) {
		// kombuva typed before ක instead of after.
		in := string([]rune{'ෙ', 'ක'})
		want := string([]rune{'ක', 'ෙ'})
		if got := NormalizeMarks(in); got != want {
			t.Errorf("NormalizeMarks(%q) = %q, want %q", in, got, want)
		}
	})

	t.Run("split o folded to composed sign", func(t *testing.T) {
		// ප + kombuva + aela-pilla typed as two marks.
		in := string([]rune{'ප', 'ෙ', 'ා'})
		want := "පො"
		if got := NormalizeMarks(in); got != want {
			t.Errorf("NormalizeMarks(%q) = %q, want %q", in, got, want)
		}
	})

	t.Run("swap then fold in one pass", func(t *testing.T) {
		// kombuva before the consonant AND split from its second mark.
		in := string([]rune{'ෙ', 'ප', 'ා'})
		want := "පො"
		if got := NormalizeMarks(in); got != want {
			t.Errorf("NormalizeMarks(%q) = %q, want %q", in, got, want)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		in := "පොත ගෙදර"
		once := NormalizeMarks(in)
		twice := NormalizeMarks(once)
		if once != twice {
			t.Errorf("NormalizeMarks not idempotent: %q vs %q", once, twice)
		}
	})

	t.Run("well-formed text unchanged", func(t *testing.T) {
		in := "මෙය සිංහල වාක්‍යයකි."
		if got := NormalizeMarks(in); got != in {
			t.Errorf("NormalizeMarks(%q) = %q, want unchanged", in, got)
		}
	})
}

func TestExtraUnits(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"ක", 0},      // one base letter, one unit
		{"කී", 1},     // the vowel sign becomes its own unit
		{"පොත", 1},    // two bases, three units
		{"අම්මා", 1},  // hal kirima folds away, aela-pilla expands
		{"කොල්ලො", 2}, // two vowel signs expand
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			if got := ExtraUnits(c.in); got != c.want {
				t.Errorf("ExtraUnits(%q) = %d, want %d", c.in, got, c.want)
			}
		})
	}
}

func TestContainsCombiningMarks(t *testing.T) {
	if !ContainsCombiningMarks("පොත") {
		t.Error("පොත contains a vowel sign")
	}
	if !ContainsCombiningMarks("ක්") {
		t.Error("hal kirima is a combining mark")
	}
	if ContainsCombiningMarks("අත") {
		t.Error("අත has no combining marks")
	}
}

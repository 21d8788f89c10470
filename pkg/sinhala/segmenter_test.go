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

// TestSegment_ConsonantForms covers the three consonant branches of the
// scan: bare consonant, consonant + vowel sign, consonant + hal kirima.
func TestSegment_ConsonantForms(t *testing.T) {
	t.Run("bare consonant receives implicit vowel", func(t *testing.T) {
		units := Segment("ක")
		want := []Grapheme{
			{Kind: ConsonantWithVirama, Base: 'ක'},
			{Kind: IndependentVowel, Base: 'අ'},
		}
		if !reflect.DeepEqual(units, want) {
			t.Errorf("Segment(ක) = %v, want %v", units, want)
		}
	})

	t.Run("vowel sign maps to independent vowel letter", func(t *testing.T) {
		units := Segment("කී")
		want := []Grapheme{
			{Kind: ConsonantWithVirama, Base: 'ක'},
			{Kind: IndependentVowel, Base: 'ඊ'},
		}
		if !reflect.DeepEqual(units, want) {
			t.Errorf("Segment(කී) = %v, want %v", units, want)
		}
	})

	t.Run("hal kirima yields pure consonant with no vowel", func(t *testing.T) {
		units := Segment("ක්")
		want := []Grapheme{
			{Kind: ConsonantWithVirama, Base: 'ක'},
		}
		if !reflect.DeepEqual(units, want) {
			t.Errorf("Segment(ක්) = %v, want %v", units, want)
		}
	})

	t.Run("trailing consonant still gets implicit vowel", func(t *testing.T) {
		units := Segment("පොත")
		want := []Grapheme{
			{Kind: ConsonantWithVirama, Base: 'ප'},
			{Kind: IndependentVowel, Base: 'ඔ'},
			{Kind: ConsonantWithVirama, Base: 'ත'},
			{Kind: IndependentVowel, Base: 'අ'},
		}
		if !reflect.DeepEqual(units, want) {
			t.Errorf("Segment(පොත) = %v, want %v", units, want)
		}
	})
}

func TestSegment_IndependentVowel(t *testing.T) {
	units := Segment("අම්මා")
	want := []Grapheme{
		{Kind: IndependentVowel, Base: 'අ'},
		{Kind: ConsonantWithVirama, Base: 'ම'},
		{Kind: ConsonantWithVirama, Base: 'ම'},
		{Kind: IndependentVowel, Base: 'ආ'},
	}
	if !reflect.DeepEqual(units, want) {
		t.Errorf("Segment(අම්මා) = %v, want %v", units, want)
	}
}

// TestSegment_Totality checks the no-character-lost invariant: every input
// rune is either emitted as a unit or consumed as a recognized mark, for
// mixed-script and degenerate inputs alike.
func TestSegment_Totality(t *testing.T) {
	t.Run("empty input yields no units", func(t *testing.T) {
		if units := Segment(""); len(units) != 0 {
			t.Errorf("Segment(\"\") = %v, want empty", units)
		}
	})

	t.Run("non-Sinhala input is all passthrough", func(t *testing.T) {
		in := "abc 123!"
		units := Segment(in)
		runes := []rune(in)
		if len(units) != len(runes) {
			t.Fatalf("Segment(%q) = %d units, want %d", in, len(units), len(runes))
		}
		for i, u := range units {
			if u.Kind != Passthrough || u.Base != runes[i] {
				t.Errorf("unit %d = %v, want Passthrough(%q)", i, u, runes[i])
			}
		}
	})

	t.Run("mixed script loses no character", func(t *testing.T) {
		in := "ක.ම!7"
		units := Segment(in)
		want := []Grapheme{
			{Kind: ConsonantWithVirama, Base: 'ක'},
			{Kind: IndependentVowel, Base: 'අ'},
			{Kind: Passthrough, Base: '.'},
			{Kind: ConsonantWithVirama, Base: 'ම'},
			{Kind: IndependentVowel, Base: 'අ'},
			{Kind: Passthrough, Base: '!'},
			{Kind: Passthrough, Base: '7'},
		}
		if !reflect.DeepEqual(units, want) {
			t.Errorf("Segment(%q) = %v, want %v", in, units, want)
		}
	})
}

// TestSegment_IsolatedMark checks that a combining mark with no preceding
// consonant is emitted as Passthrough rather than raising or vanishing.
func TestSegment_IsolatedMark(t *testing.T) {
	units := Segment("ි")
	if len(units) != 1 || units[0].Kind != Passthrough || units[0].Base != 'ි' {
		t.Errorf("Segment(isolated mark) = %v, want single Passthrough", units)
	}
}

func TestSegment_Deterministic(t *testing.T) {
	in := "මෙය සිංහල වාක්‍යයකි."
	first := Segment(in)
	second := Segment(in)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Segment is not deterministic for %q", in)
	}
}

func TestGrapheme_Text(t *testing.T) {
	cases := []struct {
		g    Grapheme
		want string
	}{
		{Grapheme{Kind: ConsonantWithVirama, Base: 'ක'}, "ක්"},
		{Grapheme{Kind: IndependentVowel, Base: 'ඊ'}, "ඊ"},
		{Grapheme{Kind: Passthrough, Base: '7'}, "7"},
	}
	for _, c := range cases {
		if got := c.g.Text(); got != c.want {
			t.Errorf("Text(%v) = %q, want %q", c.g, got, c.want)
		}
	}
}

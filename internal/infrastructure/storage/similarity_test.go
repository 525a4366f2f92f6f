package storage

import "testing"

func TestLevenshteinDistance(t *testing.T) {
	cases := []struct {
		s1, s2   string
		expected int
	}{
		{"6205", "6205", 0},
		{"6205", "6206", 1},
		{"6205", "6305", 1},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
	}

	for _, tc := range cases {
		if got := levenshteinDistance(tc.s1, tc.s2); got != tc.expected {
			t.Errorf("levenshteinDistance(%q, %q): kutilgan %d, olingan %d", tc.s1, tc.s2, tc.expected, got)
		}
		// Simmetriya
		if got := levenshteinDistance(tc.s2, tc.s1); got != tc.expected {
			t.Errorf("levenshteinDistance(%q, %q): kutilgan %d, olingan %d", tc.s2, tc.s1, tc.expected, got)
		}
	}
}

func TestCalculateSimilarity(t *testing.T) {
	if got := calculateSimilarity("6205", "6205"); got != 1.0 {
		t.Errorf("bir xil nomlar uchun kutilgan 1.0, olingan %f", got)
	}

	// Katta-kichik harf va defis normalizatsiyadan keyin farq qilmaydi
	if got := calculateSimilarity("6205-2RS1", "62052rs1"); got != 1.0 {
		t.Errorf("normalizatsiyadan keyin teng nomlar uchun kutilgan 1.0, olingan %f", got)
	}

	// Containment
	if got := calculateSimilarity("6205-2RS1", "6205"); got != 0.8 {
		t.Errorf("containment uchun kutilgan 0.8, olingan %f", got)
	}

	// Edit distance 1, uzunlik 4: 1 - 1/4 = 0.75
	if got := calculateSimilarity("6205", "6206"); got != 0.75 {
		t.Errorf("kutilgan 0.75, olingan %f", got)
	}

	if got := calculateSimilarity("", "6205"); got != 0 {
		t.Errorf("bo'sh nom uchun kutilgan 0, olingan %f", got)
	}
}

func TestIsSimilarName(t *testing.T) {
	cases := []struct {
		name1, name2 string
		expected     bool
	}{
		{"6205-2RS1", "6205 2RS1", true}, // normalizatsiyadan keyin bir xil
		{"6205-2RS1", "6205", true},      // containment
		{"6205", "6206", true},           // edit distance 1
		{"6205", "NU 305", false},
		{"", "6205", false},
		{"6205", "", false},
	}

	for _, tc := range cases {
		if got := isSimilarName(tc.name1, tc.name2); got != tc.expected {
			t.Errorf("isSimilarName(%q, %q): kutilgan %v, olingan %v", tc.name1, tc.name2, tc.expected, got)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	if got := normalizeName("6205-2RS1 E"); got != "62052rs1e" {
		t.Errorf("kutilgan '62052rs1e', olingan '%s'", got)
	}
}

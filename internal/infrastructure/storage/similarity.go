package storage

import "strings"

// normalizeName nomni taqqoslash uchun normalizatsiya qilish:
// kichik harflarga o'tkazib, probel va defislarni olib tashlash
func normalizeName(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	return s
}

// isSimilarName to'g'ridan-to'g'ri qidiruv uchun bo'sh mezon:
// biri ikkinchisini o'z ichiga oladi yoki edit distance <= 2.
// Diqqat: bu FindSimilar dagi 0.7 chegarasidan yumshoqroq - ikkalasi
// ham turli chaqiruv joylarida ishlatiladi.
func isSimilarName(name1, name2 string) bool {
	if name1 == "" || name2 == "" {
		return false
	}

	n1 := normalizeName(name1)
	n2 := normalizeName(name2)

	return strings.Contains(n1, n2) || strings.Contains(n2, n1) ||
		levenshteinDistance(n1, n2) <= 2
}

// calculateSimilarity ikki nom o'rtasidagi o'xshashlik balli [0.0, 1.0]
func calculateSimilarity(name1, name2 string) float64 {
	if name1 == "" || name2 == "" {
		return 0
	}

	n1 := normalizeName(name1)
	n2 := normalizeName(name2)

	if n1 == n2 {
		return 1.0
	}
	if strings.Contains(n1, n2) || strings.Contains(n2, n1) {
		return 0.8
	}

	distance := levenshteinDistance(n1, n2)
	maxLength := len(n1)
	if len(n2) > maxLength {
		maxLength = len(n2)
	}

	if maxLength == 0 {
		return 0
	}
	return 1.0 - float64(distance)/float64(maxLength)
}

// levenshteinDistance klassik edit distance (qo'shish, o'chirish,
// almashtirish - har biri 1 ball)
func levenshteinDistance(s1, s2 string) int {
	matrix := make([][]int, len(s1)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(s2)+1)
	}

	for i := 0; i <= len(s1); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(s2); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}

			deletion := matrix[i-1][j] + 1
			insertion := matrix[i][j-1] + 1
			substitution := matrix[i-1][j-1] + cost

			min := deletion
			if insertion < min {
				min = insertion
			}
			if substitution < min {
				min = substitution
			}
			matrix[i][j] = min
		}
	}

	return matrix[len(s1)][len(s2)]
}

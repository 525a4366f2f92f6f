package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/yourusername/bearing-assistant-bot/internal/domain/entity"
)

// valueUnitPattern "25mm", "14000 N" kabi qiymatlarni ajratish uchun:
// boshida raqam (nuqta va vergul bilan), oxirida ixtiyoriy birlik harflari
var valueUnitPattern = regexp.MustCompile(`^([\d.,]+)\s*([a-zA-Z]*)$`)

// splitValueAndUnit qiymatni (qiymat, birlik) juftligiga ajratish.
// Pattern mos kelmasa butun string qiymat bo'ladi, birlik bo'sh.
func splitValueAndUnit(input string) (string, string) {
	match := valueUnitPattern.FindStringSubmatch(input)
	if match != nil {
		return match[1], match[2]
	}
	return input, ""
}

// classifyAttribute xususiyat turini nomidagi kalit so'zlar bo'yicha aniqlash
func classifyAttribute(name, value string) entity.AttributeType {
	lowerName := strings.ToLower(name)

	switch {
	case strings.Contains(lowerName, "diameter"),
		strings.Contains(lowerName, "width"),
		strings.Contains(lowerName, "height"):
		return entity.AttributeDimension
	case strings.Contains(lowerName, "load"),
		strings.Contains(lowerName, "capacity"):
		return entity.AttributeLoad
	case strings.Contains(lowerName, "speed"),
		strings.Contains(lowerName, "rpm"):
		return entity.AttributeSpeed
	case strings.Contains(lowerName, "mass"),
		strings.Contains(lowerName, "weight"):
		return entity.AttributeMass
	}

	if _, err := strconv.ParseFloat(value, 64); err == nil {
		return entity.AttributeNumeric
	}

	return entity.AttributeText
}

// isNameField maydon mahsulot nomini anglatishini tekshirish
func isNameField(key string) bool {
	return strings.EqualFold(key, "ProductName") ||
		strings.EqualFold(key, "Product") ||
		strings.EqualFold(key, "Name")
}

package parser

import (
	"testing"

	"github.com/yourusername/bearing-assistant-bot/internal/domain/entity"
)

func TestSplitValueAndUnit(t *testing.T) {
	cases := []struct {
		input         string
		expectedValue string
		expectedUnit  string
	}{
		{"25mm", "25", "mm"},
		{"14000 N", "14000", "N"},
		{"0.13kg", "0.13", "kg"},
		{"15", "15", ""},
		{"steel", "steel", ""},
		{"deep groove ball bearing", "deep groove ball bearing", ""},
	}

	for _, tc := range cases {
		value, unit := splitValueAndUnit(tc.input)
		if value != tc.expectedValue || unit != tc.expectedUnit {
			t.Errorf("splitValueAndUnit(%q): kutilgan (%q, %q), olingan (%q, %q)",
				tc.input, tc.expectedValue, tc.expectedUnit, value, unit)
		}
	}
}

func TestClassifyAttribute(t *testing.T) {
	cases := []struct {
		name     string
		value    string
		expected entity.AttributeType
	}{
		{"inner_diameter", "25", entity.AttributeDimension},
		{"Width", "15", entity.AttributeDimension},
		{"dynamic_load_rating", "14000", entity.AttributeLoad},
		{"basic capacity", "7800", entity.AttributeLoad},
		{"limiting_speed", "14000", entity.AttributeSpeed},
		{"max_rpm", "18000", entity.AttributeSpeed},
		{"mass", "0.13", entity.AttributeMass},
		{"net weight", "0.13", entity.AttributeMass},
		{"rows", "2", entity.AttributeNumeric},
		{"cage_material", "steel", entity.AttributeText},
	}

	for _, tc := range cases {
		if got := classifyAttribute(tc.name, tc.value); got != tc.expected {
			t.Errorf("classifyAttribute(%q, %q): kutilgan %s, olingan %s",
				tc.name, tc.value, tc.expected, got)
		}
	}
}

func TestIsNameField(t *testing.T) {
	for _, key := range []string{"ProductName", "productname", "Product", "Name", "NAME"} {
		if !isNameField(key) {
			t.Errorf("'%s' nom maydoni deb tanilishi kerak", key)
		}
	}
	for _, key := range []string{"width", "product_id", "names"} {
		if isNameField(key) {
			t.Errorf("'%s' nom maydoni emas", key)
		}
	}
}

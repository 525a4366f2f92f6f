package entity

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// AttributeType xususiyat turi
type AttributeType int

const (
	AttributeText AttributeType = iota
	AttributeNumeric
	AttributeDimension
	AttributeLoad
	AttributeSpeed
	AttributeMass
)

// String turni text ko'rinishda qaytarish
func (t AttributeType) String() string {
	switch t {
	case AttributeNumeric:
		return "numeric"
	case AttributeDimension:
		return "dimension"
	case AttributeLoad:
		return "load"
	case AttributeSpeed:
		return "speed"
	case AttributeMass:
		return "mass"
	default:
		return "text"
	}
}

// ProductName mahsulot belgilanishi (masalan "6205" yoki "6205-2RS1")
type ProductName struct {
	value string
}

// NewProductName yangi ProductName yaratish, bo'sh qiymat qabul qilinmaydi
func NewProductName(value string) (ProductName, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ProductName{}, fmt.Errorf("mahsulot nomi bo'sh bo'lmasligi kerak")
	}
	return ProductName{value: trimmed}, nil
}

// Value nom qiymatini olish
func (n ProductName) Value() string {
	return n.value
}

// IsZero nom bo'shligini tekshirish
func (n ProductName) IsZero() bool {
	return n.value == ""
}

// Equals nomlarni taqqoslash (katta-kichik harf farqsiz)
func (n ProductName) Equals(other ProductName) bool {
	return strings.EqualFold(n.value, other.value)
}

func (n ProductName) String() string {
	return n.value
}

// Attribute mahsulotning texnik xususiyati: qiymat + birlik + tur.
// Yaratilgandan keyin o'zgarmaydi.
type Attribute struct {
	name     string
	value    string
	unit     string
	attrType AttributeType
}

// NewAttribute yangi xususiyat yaratish
func NewAttribute(name, value, unit string, attrType AttributeType) Attribute {
	return Attribute{
		name:     name,
		value:    value,
		unit:     unit,
		attrType: attrType,
	}
}

// Name xususiyat nomini olish
func (a Attribute) Name() string {
	return a.name
}

// Value xususiyat qiymatini olish
func (a Attribute) Value() string {
	return a.value
}

// Unit o'lchov birligini olish
func (a Attribute) Unit() string {
	return a.unit
}

// Type xususiyat turini olish
func (a Attribute) Type() AttributeType {
	return a.attrType
}

// FormattedValue qiymatni birlik bilan birga qaytarish
func (a Attribute) FormattedValue() string {
	if a.unit == "" {
		return a.value
	}
	return a.value + " " + a.unit
}

// Equals xususiyatlarni maydonma-maydon taqqoslash
func (a Attribute) Equals(other Attribute) bool {
	return a.name == other.name &&
		a.value == other.value &&
		a.unit == other.unit &&
		a.attrType == other.attrType
}

// Product mahsulot entity. Katalogga tegishli, yuklangandan keyin
// faqat UpdateAttribute orqali o'zgartiriladi.
type Product struct {
	id         string
	name       ProductName
	attributes map[string]Attribute // key: lower-case xususiyat nomi
	createdAt  time.Time
	updatedAt  time.Time
}

// NewProduct yangi mahsulot yaratish, ID sifatida nom ishlatiladi
func NewProduct(name ProductName, attributes map[string]Attribute) *Product {
	if attributes == nil {
		attributes = make(map[string]Attribute)
	}
	return &Product{
		id:         name.Value(),
		name:       name,
		attributes: attributes,
		createdAt:  time.Now(),
	}
}

// ID mahsulot identifikatorini olish
func (p *Product) ID() string {
	return p.id
}

// Name mahsulot nomini olish
func (p *Product) Name() ProductName {
	return p.name
}

// Attribute nom bo'yicha xususiyatni olish (katta-kichik harf farqsiz)
func (p *Product) Attribute(name string) (Attribute, bool) {
	attr, ok := p.attributes[strings.ToLower(name)]
	return attr, ok
}

// HasAttribute xususiyat borligini tekshirish
func (p *Product) HasAttribute(name string) bool {
	_, ok := p.attributes[strings.ToLower(name)]
	return ok
}

// UpdateAttribute xususiyatni yangilash yoki qo'shish
func (p *Product) UpdateAttribute(name string, attr Attribute) {
	p.attributes[strings.ToLower(name)] = attr
	p.updatedAt = time.Now()
}

// AvailableAttributes mavjud xususiyat kalitlarini olish (alfavit tartibida)
func (p *Product) AvailableAttributes() []string {
	keys := make([]string, 0, len(p.attributes))
	for key := range p.attributes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// FormattedAttributes barcha xususiyatlarni formatlab olish
func (p *Product) FormattedAttributes() map[string]string {
	formatted := make(map[string]string, len(p.attributes))
	for key, attr := range p.attributes {
		formatted[key] = attr.FormattedValue()
	}
	return formatted
}

// CatalogInfo katalog haqida qisqa ma'lumot
type CatalogInfo struct {
	Count    int
	Source   string
	LoadedAt time.Time
}

package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/bearing-assistant-bot/internal/domain/entity"
	"github.com/yourusername/bearing-assistant-bot/internal/domain/repository"
)

type datasheetParser struct {
	log *logrus.Logger
}

// NewDatasheetParser JSON datasheet fayllar uchun parser yaratish.
// Har bir fayl tekis key/value obyektlar ro'yxati: bitta nom maydoni
// (ProductName/Product/Name) va ixtiyoriy xususiyat maydonlari.
func NewDatasheetParser(log *logrus.Logger) repository.CatalogParser {
	return &datasheetParser{log: log}
}

// ParseProducts fayldan mahsulotlarni o'qish
func (p *datasheetParser) ParseProducts(ctx context.Context, filePath string) ([]*entity.Product, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("datasheet o'qilmadi: %w", err)
	}
	return p.ParseProductsFromBytes(ctx, data, filePath)
}

// ParseProductsFromBytes byte array dan parse qilish
func (p *datasheetParser) ParseProductsFromBytes(ctx context.Context, data []byte, filename string) ([]*entity.Product, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var rawRecords []map[string]any
	if err := decoder.Decode(&rawRecords); err != nil {
		return nil, fmt.Errorf("datasheet parse qilinmadi %s: %w", filename, err)
	}

	var products []*entity.Product
	for i, record := range rawRecords {
		product := p.convertRecord(record)
		if product == nil {
			// Buzilgan yozuv tashlab ketiladi, yuklash davom etadi
			p.log.WithFields(logrus.Fields{
				"file":  filename,
				"index": i,
			}).Warn("mahsulot nomi yo'q, yozuv tashlab ketildi")
			continue
		}
		products = append(products, product)
	}

	return products, nil
}

// convertRecord bitta yozuvni mahsulotga aylantirish.
// Nom maydoni topilmasa yoki string bo'lmasa nil qaytaradi.
func (p *datasheetParser) convertRecord(record map[string]any) *entity.Product {
	keys := make([]string, 0, len(record))
	for key := range record {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	nameField := ""
	for _, key := range keys {
		if isNameField(key) {
			nameField = key
			break
		}
	}
	if nameField == "" {
		return nil
	}

	rawName, ok := record[nameField].(string)
	if !ok || rawName == "" {
		return nil
	}

	name, err := entity.NewProductName(rawName)
	if err != nil {
		return nil
	}

	attributes := make(map[string]entity.Attribute)
	for _, key := range keys {
		if key == nameField {
			continue
		}

		stringValue := stringifyValue(record[key])
		if stringValue == "" {
			continue
		}

		value, unit := splitValueAndUnit(stringValue)
		attrType := classifyAttribute(key, value)

		// Keyingi dublikat kalit oldingisini yozib yuboradi
		attributes[strings.ToLower(key)] = entity.NewAttribute(key, value, unit, attrType)
	}

	return entity.NewProduct(name, attributes)
}

// stringifyValue skalyar JSON qiymatni text ga aylantirish:
// string o'zgarishsiz, raqam kanonik ko'rinishda, bool "true"/"false",
// null bo'sh string (tashlab ketiladi), qolganlari raw fallback.
func stringifyValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		if v {
			return "true"
		}
		return "false"
	case nil:
		return ""
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(raw)
	}
}

package parser

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"github.com/yourusername/bearing-assistant-bot/internal/domain/entity"
	"github.com/yourusername/bearing-assistant-bot/internal/domain/repository"
)

type excelParser struct {
	log *logrus.Logger
}

// NewExcelParser Excel katalog fayllar uchun parser yaratish.
// Birinchi qator - header: birinchi ustun mahsulot nomi, qolganlari
// xususiyat nomlari. Qiymatlar datasheet bilan bir xil qoidada ajratiladi.
func NewExcelParser(log *logrus.Logger) repository.CatalogParser {
	return &excelParser{log: log}
}

// ParseProducts Excel fayldan mahsulotlarni o'qish
func (e *excelParser) ParseProducts(ctx context.Context, filePath string) ([]*entity.Product, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("excel fayl ochilmadi: %w", err)
	}
	defer f.Close()

	return e.parseExcelFile(f)
}

// ParseProductsFromBytes byte array dan parse qilish
func (e *excelParser) ParseProductsFromBytes(ctx context.Context, data []byte, filename string) ([]*entity.Product, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("excel fayl ochilmadi %s: %w", filename, err)
	}
	defer f.Close()

	return e.parseExcelFile(f)
}

// parseExcelFile Excel faylni parse qilish
func (e *excelParser) parseExcelFile(f *excelize.File) ([]*entity.Product, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel faylda sheet yo'q")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("qatorlarni o'qib bo'lmadi: %w", err)
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("excel faylda data yo'q")
	}

	header := rows[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("header da xususiyat ustunlari yo'q")
	}

	var products []*entity.Product

	for rowIdx, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}

		name, err := entity.NewProductName(row[0])
		if err != nil {
			// Nomsiz qator tashlab ketiladi
			e.log.WithField("row", rowIdx+2).Warn("mahsulot nomi bo'sh, qator tashlab ketildi")
			continue
		}

		attributes := make(map[string]entity.Attribute)
		for colIdx := 1; colIdx < len(header) && colIdx < len(row); colIdx++ {
			attrName := strings.TrimSpace(header[colIdx])
			cell := strings.TrimSpace(row[colIdx])
			if attrName == "" || cell == "" {
				continue
			}

			value, unit := splitValueAndUnit(cell)
			attrType := classifyAttribute(attrName, value)
			attributes[strings.ToLower(attrName)] = entity.NewAttribute(attrName, value, unit, attrType)
		}

		products = append(products, entity.NewProduct(name, attributes))
	}

	return products, nil
}

package parser

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestDatasheetParserParsesProducts(t *testing.T) {
	data := []byte(`[
		{"ProductName": "6205", "Inner_Diameter": "25mm", "width": "15mm", "mass": 0.13, "sealed": true},
		{"Name": "6206", "width": "16mm"}
	]`)

	products, err := NewDatasheetParser(testLogger()).ParseProductsFromBytes(context.Background(), data, "test.json")
	if err != nil {
		t.Fatalf("parse xato qaytardi: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("kutilgan 2 ta mahsulot, olingan %d", len(products))
	}

	product := products[0]
	if product.Name().Value() != "6205" {
		t.Errorf("kutilgan nom '6205', olingan '%s'", product.Name().Value())
	}

	// Xususiyat kalitlari kichik harflarda saqlanadi
	attr, ok := product.Attribute("inner_diameter")
	if !ok {
		t.Fatal("inner_diameter topilishi kerak")
	}
	if attr.Value() != "25" || attr.Unit() != "mm" {
		t.Errorf("kutilgan 25/mm, olingan %s/%s", attr.Value(), attr.Unit())
	}

	// JSON raqam kanonik ko'rinishda saqlanadi
	mass, ok := product.Attribute("mass")
	if !ok {
		t.Fatal("mass topilishi kerak")
	}
	if mass.Value() != "0.13" {
		t.Errorf("kutilgan '0.13', olingan '%s'", mass.Value())
	}

	// Bool qiymat text ga aylanadi
	sealed, ok := product.Attribute("sealed")
	if !ok {
		t.Fatal("sealed topilishi kerak")
	}
	if sealed.Value() != "true" {
		t.Errorf("kutilgan 'true', olingan '%s'", sealed.Value())
	}
}

func TestDatasheetParserSkipsRecordWithoutName(t *testing.T) {
	data := []byte(`[
		{"width": "15mm"},
		{"ProductName": "", "width": "15mm"},
		{"ProductName": "6205", "width": "15mm"}
	]`)

	products, err := NewDatasheetParser(testLogger()).ParseProductsFromBytes(context.Background(), data, "test.json")
	if err != nil {
		t.Fatalf("parse xato qaytardi: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("nomsiz yozuvlar tashlab ketilishi kerak, kutilgan 1, olingan %d", len(products))
	}
	if products[0].Name().Value() != "6205" {
		t.Errorf("kutilgan '6205', olingan '%s'", products[0].Name().Value())
	}
}

func TestDatasheetParserInvalidJSON(t *testing.T) {
	_, err := NewDatasheetParser(testLogger()).ParseProductsFromBytes(context.Background(), []byte("{broken"), "bad.json")
	if err == nil {
		t.Error("buzilgan JSON uchun xato kutilgan edi")
	}
}

func TestDatasheetParserNullValueSkipped(t *testing.T) {
	data := []byte(`[{"ProductName": "6205", "width": null, "mass": "0.13kg"}]`)

	products, err := NewDatasheetParser(testLogger()).ParseProductsFromBytes(context.Background(), data, "test.json")
	if err != nil {
		t.Fatalf("parse xato qaytardi: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("kutilgan 1 ta mahsulot, olingan %d", len(products))
	}

	if products[0].HasAttribute("width") {
		t.Error("null qiymatli xususiyat tashlab ketilishi kerak")
	}
	if !products[0].HasAttribute("mass") {
		t.Error("mass saqlanishi kerak")
	}
}

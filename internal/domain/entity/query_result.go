package entity

import "time"

// ResultType so'rov natijasining turi
type ResultType string

const (
	ResultSuccess           ResultType = "success"
	ResultProductNotFound   ResultType = "product_not_found"
	ResultAttributeNotFound ResultType = "attribute_not_found"
	ResultInvalidQuery      ResultType = "invalid_query"
	ResultSystemError       ResultType = "system_error"
)

// ProductDetails topilgan xususiyat haqida strukturali ma'lumot
type ProductDetails struct {
	ProductName   string            `json:"productName"`
	Attribute     string            `json:"attribute"`
	Value         string            `json:"value"`
	Unit          string            `json:"unit"`
	AllAttributes map[string]string `json:"allAttributes"`
}

// QueryResponse transport qatlamiga qaytariladigan to'liq natija.
// Har qanday xatolik yo'lida ham to'ldirilgan holda qaytadi.
type QueryResponse struct {
	Success        bool            `json:"success"`
	Message        string          `json:"message"`
	Answer         string          `json:"answer,omitempty"`
	ConversationID string          `json:"conversationId,omitempty"`
	Suggestions    []string        `json:"suggestions,omitempty"`
	ProductDetails *ProductDetails `json:"productDetails,omitempty"`
	ResultType     ResultType      `json:"resultType"`
}

// QueryLogEntry qayta ishlangan so'rov haqida audit yozuvi
type QueryLogEntry struct {
	ID             string
	ConversationID string
	Query          string
	Answer         string
	ResultType     ResultType
	Timestamp      time.Time
}

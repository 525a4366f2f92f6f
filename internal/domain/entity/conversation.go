package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxQueryHistory suhbatda saqlanadigan maksimal so'rovlar soni
const MaxQueryHistory = 10

// ConversationID suhbat identifikatori
type ConversationID struct {
	value string
}

// NewConversationID mavjud qiymatdan ConversationID yaratish
func NewConversationID(value string) (ConversationID, error) {
	if strings.TrimSpace(value) == "" {
		return ConversationID{}, fmt.Errorf("suhbat ID bo'sh bo'lmasligi kerak")
	}
	return ConversationID{value: value}, nil
}

// NewRandomConversationID yangi tasodifiy ConversationID yaratish
func NewRandomConversationID() ConversationID {
	return ConversationID{value: uuid.New().String()}
}

// Value ID qiymatini olish
func (id ConversationID) Value() string {
	return id.value
}

// IsZero ID bo'shligini tekshirish
func (id ConversationID) IsZero() bool {
	return id.value == ""
}

// Equals ID larni taqqoslash
func (id ConversationID) Equals(other ConversationID) bool {
	return id.value == other.value
}

func (id ConversationID) String() string {
	return id.value
}

// QueryEntry suhbat tarixidagi bitta so'rov-javob juftligi
type QueryEntry struct {
	query     string
	response  string
	timestamp time.Time
}

// NewQueryEntry yangi tarix yozuvi yaratish
func NewQueryEntry(query, response string, timestamp time.Time) QueryEntry {
	return QueryEntry{
		query:     query,
		response:  response,
		timestamp: timestamp,
	}
}

// Query so'rov matnini olish
func (e QueryEntry) Query() string {
	return e.query
}

// Response javob matnini olish
func (e QueryEntry) Response() string {
	return e.response
}

// Timestamp yozuv vaqtini olish
func (e QueryEntry) Timestamp() time.Time {
	return e.timestamp
}

// Equals yozuvlarni maydonma-maydon taqqoslash
func (e QueryEntry) Equals(other QueryEntry) bool {
	return e.query == other.query &&
		e.response == other.response &&
		e.timestamp.Equal(other.timestamp)
}

// Conversation foydalanuvchi suhbati: oxirgi so'rovlar tarixi va
// oxirgi muhokama qilingan mahsulot. Kesh TTL orqali o'z-o'zidan o'chadi.
type Conversation struct {
	id           ConversationID
	history      []QueryEntry
	lastProduct  ProductName
	sessionData  map[string]string
	createdAt    time.Time
	lastActivity time.Time
}

// NewConversation yangi bo'sh suhbat yaratish
func NewConversation(id ConversationID) *Conversation {
	now := time.Now().UTC()
	return &Conversation{
		id:           id,
		history:      []QueryEntry{},
		sessionData:  make(map[string]string),
		createdAt:    now,
		lastActivity: now,
	}
}

// RestoreConversation keshdan o'qilgan suhbatni tiklash
func RestoreConversation(
	id ConversationID,
	history []QueryEntry,
	lastProduct ProductName,
	sessionData map[string]string,
	createdAt, lastActivity time.Time,
) *Conversation {
	if sessionData == nil {
		sessionData = make(map[string]string)
	}
	return &Conversation{
		id:           id,
		history:      history,
		lastProduct:  lastProduct,
		sessionData:  sessionData,
		createdAt:    createdAt,
		lastActivity: lastActivity,
	}
}

// ID suhbat identifikatorini olish
func (c *Conversation) ID() ConversationID {
	return c.id
}

// History tarix nusxasini olish
func (c *Conversation) History() []QueryEntry {
	history := make([]QueryEntry, len(c.history))
	copy(history, c.history)
	return history
}

// AddQuery so'rov-javob juftligini tarixga qo'shish.
// Faqat oxirgi MaxQueryHistory ta yozuv saqlanadi, eskilari tushib qoladi.
func (c *Conversation) AddQuery(query, response string) {
	now := time.Now().UTC()
	c.history = append(c.history, NewQueryEntry(query, response, now))
	c.lastActivity = now

	if len(c.history) > MaxQueryHistory {
		c.history = c.history[len(c.history)-MaxQueryHistory:]
	}
}

// SetLastProductDiscussed oxirgi muhokama qilingan mahsulotni belgilash
func (c *Conversation) SetLastProductDiscussed(name ProductName) {
	c.lastProduct = name
	c.lastActivity = time.Now().UTC()
}

// LastProductDiscussed oxirgi muhokama qilingan mahsulotni olish
func (c *Conversation) LastProductDiscussed() (ProductName, bool) {
	return c.lastProduct, !c.lastProduct.IsZero()
}

// SetSessionValue sessiya ma'lumotini saqlash
func (c *Conversation) SetSessionValue(key, value string) {
	c.sessionData[key] = value
}

// SessionValue sessiya ma'lumotini olish
func (c *Conversation) SessionValue(key string) (string, bool) {
	value, ok := c.sessionData[key]
	return value, ok
}

// SessionData sessiya ma'lumotlari nusxasini olish
func (c *Conversation) SessionData() map[string]string {
	data := make(map[string]string, len(c.sessionData))
	for key, value := range c.sessionData {
		data[key] = value
	}
	return data
}

// CreatedAt suhbat yaratilgan vaqtni olish
func (c *Conversation) CreatedAt() time.Time {
	return c.createdAt
}

// LastActivity oxirgi faollik vaqtini olish
func (c *Conversation) LastActivity() time.Time {
	return c.lastActivity
}

// IsExpired suhbat muddati o'tganligini tekshirish.
// Faqat diagnostika uchun - asl muddat keshdagi TTL bilan boshqariladi.
func (c *Conversation) IsExpired(timeout time.Duration) bool {
	return time.Now().UTC().Sub(c.lastActivity) > timeout
}

// RecentQueries oxirgi so'rov matnlarini olish (AI kontekst uchun)
func (c *Conversation) RecentQueries(count int) []string {
	start := len(c.history) - count
	if start < 0 {
		start = 0
	}
	queries := make([]string, 0, len(c.history)-start)
	for _, entry := range c.history[start:] {
		queries = append(queries, entry.Query())
	}
	return queries
}

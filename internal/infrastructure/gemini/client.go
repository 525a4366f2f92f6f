package gemini

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/yourusername/bearing-assistant-bot/internal/domain/entity"
	"github.com/yourusername/bearing-assistant-bot/internal/domain/repository"
	"google.golang.org/api/option"
)

const noneSentinel = "NONE"

type geminiClient struct {
	client *genai.Client

	// Har bir vazifa uchun alohida temperature sozlangan modellar
	extractModel *genai.GenerativeModel
	answerModel  *genai.GenerativeModel
	chatModel    *genai.GenerativeModel

	sem   chan struct{}
	mu    sync.Mutex
	last  time.Time
	delay time.Duration
}

// NewGeminiClient yangi Gemini AI client yaratish
func NewGeminiClient(apiKey string) (repository.AIRepository, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	systemInstruction := &genai.Content{
		Parts: []genai.Part{
			genai.Text("You are a precise bearing information assistant. Be accurate and only provide information you're certain about."),
		},
	}

	// Extraction - past temperature, aniq javoblar uchun
	extractModel := client.GenerativeModel("gemini-2.0-flash-exp")
	extractModel.SetTemperature(0.1)
	extractModel.SetMaxOutputTokens(200)
	extractModel.SystemInstruction = systemInstruction

	answerModel := client.GenerativeModel("gemini-2.0-flash-exp")
	answerModel.SetTemperature(0.3)
	answerModel.SetMaxOutputTokens(200)
	answerModel.SystemInstruction = systemInstruction

	chatModel := client.GenerativeModel("gemini-2.0-flash-exp")
	chatModel.SetTemperature(0.4)
	chatModel.SetMaxOutputTokens(200)
	chatModel.SystemInstruction = systemInstruction

	return &geminiClient{
		client:       client,
		extractModel: extractModel,
		answerModel:  answerModel,
		chatModel:    chatModel,
		sem:          make(chan struct{}, 3), // bir vaqtda 3 ta so'rovdan oshirma
		delay:        350 * time.Millisecond, // minimal interval
	}, nil
}

// ExtractProductName so'rovdan mahsulot belgilanishini ajratib olish
func (g *geminiClient) ExtractProductName(ctx context.Context, query string, conversation *entity.Conversation) (*entity.ProductName, error) {
	prompt := fmt.Sprintf(`%s
Extract the bearing product designation from this query. Be very precise and only return product designations that follow standard bearing naming conventions.

Query: '%s'

Product designations typically follow patterns like:
- 6205, 6206, 6207 (deep groove ball bearings)
- 6205-2RS1, 6206-Z (with suffixes)
- NU 205, NU 206 (cylindrical roller bearings)
- 29320 E, 29322 E (spherical roller thrust bearings)

Rules:
- Return only the exact product designation
- If no valid product is mentioned, return 'NONE'
- Do not guess or suggest products
- Consider conversation context if provided

Examples:
- 'What is the width of 6205?' -> 6205
- 'Height of bearing 6206-2RS1?' -> 6206-2RS1
- 'Tell me about bearings' -> NONE`, contextPrompt(conversation), query)

	result, err := g.generate(ctx, g.extractModel, prompt)
	if err != nil {
		return nil, err
	}

	if result == noneSentinel {
		return nil, nil
	}

	name, err := entity.NewProductName(result)
	if err != nil {
		return nil, nil
	}
	return &name, nil
}

// ExtractAttribute so'rovdan xususiyat nomini ajratib olish
func (g *geminiClient) ExtractAttribute(ctx context.Context, query string, conversation *entity.Conversation) (string, error) {
	prompt := fmt.Sprintf(`%s
Extract the specific attribute being requested from this query. Only return standard bearing attributes.

Query: '%s'

Valid attributes (return exactly one):
- inner_diameter (or bore)
- outer_diameter
- width (or thickness)
- dynamic_load_rating
- static_load_rating
- limiting_speed
- mass (or weight)

Rules:
- Return only one attribute name from the list above
- Use the exact terms listed
- If unclear or not a valid attribute, return 'NONE'
- Consider conversation context

Examples:
- 'What is the width of 6205?' -> width
- 'Inner diameter?' -> inner_diameter
- 'How heavy is it?' -> mass
- 'Load capacity?' -> dynamic_load_rating`, contextPrompt(conversation), query)

	result, err := g.generate(ctx, g.extractModel, prompt)
	if err != nil {
		return "", err
	}

	if result == noneSentinel {
		return "", nil
	}
	return strings.ToLower(strings.TrimSpace(result)), nil
}

// GenerateAnswer topilgan qiymatdan tabiiy tildagi javob yaratish
func (g *geminiClient) GenerateAnswer(ctx context.Context, name entity.ProductName, attribute, value, unit string, conversation *entity.Conversation) (string, error) {
	prompt := fmt.Sprintf(`%s
Generate a natural, professional response about this bearing information:

Product: %s
Attribute: %s
Value: %s
Unit: %s

Requirements:
- Be conversational and helpful
- Include the specific product name
- Format numbers clearly
- Keep response concise (1-2 sentences)
- Consider conversation flow if context provided

Example: 'The inner diameter of the 6205 bearing is 25mm.'`,
		contextPrompt(conversation), name.Value(), attribute, value, unit)

	return g.generate(ctx, g.answerModel, prompt)
}

// GenerateConversationalAnswer mahsulot aniqlanmaganda suhbat javobini yaratish
func (g *geminiClient) GenerateConversationalAnswer(ctx context.Context, query string, conversation *entity.Conversation) (string, error) {
	var sb strings.Builder
	sb.WriteString("You are a bearing specialist assistant. Generate a helpful, conversational response.\n\n")
	sb.WriteString(fmt.Sprintf("Current query: '%s'\n", query))

	if conversation != nil {
		sb.WriteString("Recent queries:\n")
		for _, q := range conversation.RecentQueries(3) {
			sb.WriteString(fmt.Sprintf("- %s\n", q))
		}
		if lastProduct, ok := conversation.LastProductDiscussed(); ok {
			sb.WriteString(fmt.Sprintf("Last product discussed: %s\n", lastProduct.Value()))
		}
	}

	sb.WriteString(`
Requirements:
- Be helpful and professional
- Reference conversation context when relevant
- If no information found, offer alternatives or ask clarifying questions
- Keep responses concise but friendly`)

	return g.generate(ctx, g.chatModel, sb.String())
}

// contextPrompt suhbat kontekstidan prompt qismi yasash
func contextPrompt(conversation *entity.Conversation) string {
	if conversation == nil {
		return ""
	}

	lastProduct := "None"
	if name, ok := conversation.LastProductDiscussed(); ok {
		lastProduct = name.Value()
	}

	return fmt.Sprintf(`Conversation context:
- Last product discussed: %s
- Recent queries: %s
`, lastProduct, strings.Join(conversation.RecentQueries(3), ", "))
}

// generate prompt yuborib javob matnini olish
func (g *geminiClient) generate(ctx context.Context, model *genai.GenerativeModel, prompt string) (string, error) {
	release := g.acquire()
	defer release()

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no response candidates")
	}

	return strings.TrimSpace(extractText(resp)), nil
}

// extractText javobdan textni ajratib olish
func extractText(resp *genai.GenerateContentResponse) string {
	var result strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				result.WriteString(fmt.Sprintf("%v", part))
			}
		}
	}
	return result.String()
}

func (g *geminiClient) acquire() func() {
	g.sem <- struct{}{}
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now()
	if g.last.IsZero() {
		g.last = now
	} else {
		if sleep := g.delay - now.Sub(g.last); sleep > 0 {
			time.Sleep(sleep)
			now = time.Now()
		}
		g.last = now
	}

	return func() {
		<-g.sem
	}
}

// Close client ni yopish
func (g *geminiClient) Close() error {
	return g.client.Close()
}

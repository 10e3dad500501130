package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultChatDelay es la pausa antes de mostrar la respuesta del asistente.
const DefaultChatDelay = 1500 * time.Millisecond

var ErrEmptyMessage = errors.New("mensaje vacío")

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

type ChatMessage struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatRule responde Response si el mensaje contiene alguna de las Keywords.
type ChatRule struct {
	Keywords []string
	Response string
}

func (r ChatRule) Match(msg string) bool {
	for _, k := range r.Keywords {
		if strings.Contains(msg, k) {
			return true
		}
	}
	return false
}

const (
	greeting      = "Hello! I'm your RetailQ AI assistant. How can I help you today?"
	fallbackReply = "Thank you for your message! I'm here to help with product information, orders, pricing, shipping, and more. How can I assist you today?"
)

// DefaultChatRules en orden de prioridad; gana la primera que coincide.
var DefaultChatRules = []ChatRule{
	{Keywords: []string{"product", "item"}, Response: "I can help you find products! You can browse our catalog, filter by categories, or search for specific items. What type of product are you looking for?"},
	{Keywords: []string{"order", "purchase"}, Response: "For order assistance, I can help you track orders, process returns, or answer questions about your purchases. Do you have an order number?"},
	{Keywords: []string{"price", "cost"}, Response: "All our prices are displayed in Indian Rupees (INR). We offer competitive pricing and frequent discounts. Are you looking for something specific?"},
	{Keywords: []string{"shipping", "delivery"}, Response: "We offer free shipping on orders above ₹500 and express delivery options. Typical delivery time is 2-5 business days depending on your location."},
	{Keywords: []string{"return", "refund"}, Response: "We have a 30-day return policy for most items. Returns are free and refunds are processed within 5-7 business days. Would you like help with a return?"},
}

type ChatResponder struct {
	Rules    []ChatRule
	Fallback string
	Delay    time.Duration
	Now      func() time.Time
}

func NewChatResponder(delay time.Duration) *ChatResponder {
	return &ChatResponder{Rules: DefaultChatRules, Fallback: fallbackReply, Delay: delay, Now: time.Now}
}

func (c *ChatResponder) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *ChatResponder) Greeting() ChatMessage {
	return ChatMessage{ID: uuid.NewString(), Content: greeting, Sender: SenderBot, Timestamp: c.now()}
}

// Respond elige la respuesta sin demora.
func (c *ChatResponder) Respond(msg string) string {
	m := strings.ToLower(msg)
	for _, r := range c.Rules {
		if r.Match(m) {
			return r.Response
		}
	}
	if c.Fallback == "" {
		return fallbackReply
	}
	return c.Fallback
}

// Reply espera Delay y devuelve el mensaje del asistente. Si ctx se cancela antes
// se devuelve ctx.Err().
func (c *ChatResponder) Reply(ctx context.Context, msg string) (ChatMessage, error) {
	if strings.TrimSpace(msg) == "" {
		return ChatMessage{}, ErrEmptyMessage
	}
	content := c.Respond(msg)
	if c.Delay > 0 {
		t := time.NewTimer(c.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ChatMessage{}, ctx.Err()
		case <-t.C:
		}
	}
	return ChatMessage{ID: uuid.NewString(), Content: content, Sender: SenderBot, Timestamp: c.now()}, nil
}

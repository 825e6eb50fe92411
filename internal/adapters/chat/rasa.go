package chat

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pdfmanager/internal/adapters/httpjson"
	"pdfmanager/internal/domain"
)

// DefaultURL is the REST channel webhook of a locally running Rasa server.
const DefaultURL = "http://localhost:5005/webhooks/rest/webhook"

var _ domain.Chatbot = (*Rasa)(nil)

// Rasa talks to a Rasa assistant through its REST input channel.
// All messages share one sender ID so the conversation keeps its tracker.
type Rasa struct {
	url    string
	sender string
	http   *httpjson.Client
	logger *zap.Logger
}

// Config configures the Rasa client.
type Config struct {
	URL       string
	Sender    string
	Transport httpjson.Config
}

func NewRasa(cfg Config, logger *zap.Logger) *Rasa {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Sender == "" {
		cfg.Sender = uuid.NewString()
	}
	if cfg.Transport.Name == "" {
		cfg.Transport.Name = "chat"
	}
	return &Rasa{
		url:    cfg.URL,
		sender: cfg.Sender,
		http:   httpjson.New(cfg.Transport, logger),
		logger: logger,
	}
}

type message struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

type reply struct {
	RecipientID string `json:"recipient_id"`
	Text        string `json:"text"`
	Image       string `json:"image"`
}

// Respond returns the bot's text replies joined by newlines.
func (r *Rasa) Respond(ctx context.Context, msg string) (string, error) {
	var replies []reply
	if err := r.http.Post(ctx, r.url, message{Sender: r.sender, Message: msg}, &replies); err != nil {
		return "", err
	}
	var texts []string
	for _, rep := range replies {
		switch {
		case rep.Text != "":
			texts = append(texts, rep.Text)
		case rep.Image != "":
			texts = append(texts, rep.Image)
		}
	}
	r.logger.Debug("chat replies", zap.Int("count", len(replies)))
	return strings.Join(texts, "\n"), nil
}

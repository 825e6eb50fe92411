package translator

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"go.uber.org/zap"

	"pdfmanager/internal/adapters/httpjson"
	"pdfmanager/internal/domain"
)

// DefaultBaseURL is the public MyMemory endpoint.
const DefaultBaseURL = "https://api.mymemory.translated.net"

var _ domain.Translator = (*MyMemory)(nil)

// MyMemory is a client for the MyMemory translation API.
type MyMemory struct {
	baseURL string
	email   string
	http    *httpjson.Client
	logger  *zap.Logger
}

// Config configures the MyMemory client. EmailEnv names the environment
// variable holding the contact address that raises the daily quota.
type Config struct {
	BaseURL   string
	EmailEnv  string
	Transport httpjson.Config
}

func NewMyMemory(cfg Config, logger *zap.Logger) *MyMemory {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Transport.Name == "" {
		cfg.Transport.Name = "translator"
	}
	var email string
	if cfg.EmailEnv != "" {
		email = os.Getenv(cfg.EmailEnv)
	}
	return &MyMemory{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		email:   email,
		http:    httpjson.New(cfg.Transport, logger),
		logger:  logger,
	}
}

type response struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
	// MyMemory reports quota and language errors here with HTTP 200.
	ResponseStatus  any    `json:"responseStatus"`
	ResponseDetails string `json:"responseDetails"`
}

// Translate returns text translated from sourceLang to targetLang.
func (m *MyMemory) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	q := url.Values{}
	q.Set("q", text)
	q.Set("langpair", sourceLang+"|"+targetLang)
	if m.email != "" {
		q.Set("de", m.email)
	}
	var out response
	if err := m.http.Get(ctx, m.baseURL+"/get?"+q.Encode(), &out); err != nil {
		return "", err
	}
	if status := fmt.Sprint(out.ResponseStatus); status != "200" {
		return "", domain.NewAdapterError(m.http.Name(),
			fmt.Errorf("status %s: %s", status, out.ResponseDetails))
	}
	if out.ResponseData.TranslatedText == "" {
		return "", domain.NewAdapterError(m.http.Name(), errors.New("empty translation"))
	}
	return out.ResponseData.TranslatedText, nil
}

package dictionary

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"pdfmanager/internal/adapters/httpjson"
	"pdfmanager/internal/domain"
)

// DefaultBaseURL is the public Free Dictionary API endpoint for English.
const DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

var _ domain.Dictionary = (*Client)(nil)

// Client looks up noun senses in a Free Dictionary API compatible service.
type Client struct {
	baseURL string
	http    *httpjson.Client
	logger  *zap.Logger
}

// Config configures the dictionary client.
type Config struct {
	BaseURL   string
	Transport httpjson.Config
}

func NewClient(cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Transport.Name == "" {
		cfg.Transport.Name = "dictionary"
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    httpjson.New(cfg.Transport, logger),
		logger:  logger,
	}
}

type entry struct {
	Meanings []struct {
		PartOfSpeech string `json:"partOfSpeech"`
		Definitions  []struct {
			Definition string `json:"definition"`
		} `json:"definitions"`
	} `json:"meanings"`
}

// Define returns the comma-joined noun definitions of every term.
// Unknown terms map to domain.NoDefinition.
func (c *Client) Define(ctx context.Context, terms []string) (domain.Definitions, error) {
	defs := make(domain.Definitions, len(terms))
	for _, term := range terms {
		nouns, err := c.nouns(ctx, term)
		if err != nil {
			return nil, err
		}
		if len(nouns) == 0 {
			defs[term] = domain.NoDefinition
			continue
		}
		defs[term] = strings.Join(nouns, ", ")
	}
	return defs, nil
}

func (c *Client) nouns(ctx context.Context, term string) ([]string, error) {
	var entries []entry
	err := c.http.Get(ctx, c.baseURL+"/"+url.PathEscape(strings.TrimSpace(term)), &entries)
	if err != nil {
		var se *httpjson.StatusError
		if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
			c.logger.Debug("term not in dictionary", zap.String("term", term))
			return nil, nil
		}
		return nil, err
	}
	var nouns []string
	for _, e := range entries {
		for _, m := range e.Meanings {
			if m.PartOfSpeech != "noun" {
				continue
			}
			for _, d := range m.Definitions {
				if d.Definition != "" {
					nouns = append(nouns, d.Definition)
				}
			}
		}
	}
	return nouns, nil
}

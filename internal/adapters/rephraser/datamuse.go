package rephraser

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"pdfmanager/internal/adapters/httpjson"
)

// DefaultDatamuseURL is the public Datamuse API endpoint.
const DefaultDatamuseURL = "https://api.datamuse.com"

// Thesaurus returns synonyms of a word, best first.
type Thesaurus interface {
	Synonyms(ctx context.Context, word string) ([]string, error)
}

// Datamuse is a Thesaurus backed by the Datamuse "means like" synonym relation.
type Datamuse struct {
	baseURL string
	max     int
	http    *httpjson.Client
}

// DatamuseConfig configures the Datamuse client.
type DatamuseConfig struct {
	BaseURL     string
	MaxSynonyms int
	Transport   httpjson.Config
}

func NewDatamuse(cfg DatamuseConfig, logger *zap.Logger) *Datamuse {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultDatamuseURL
	}
	if cfg.MaxSynonyms <= 0 {
		cfg.MaxSynonyms = 10
	}
	if cfg.Transport.Name == "" {
		cfg.Transport.Name = "rephraser"
	}
	return &Datamuse{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		max:     cfg.MaxSynonyms,
		http:    httpjson.New(cfg.Transport, logger),
	}
}

func (d *Datamuse) Synonyms(ctx context.Context, word string) ([]string, error) {
	q := url.Values{}
	q.Set("rel_syn", word)
	q.Set("max", strconv.Itoa(d.max))
	var words []struct {
		Word  string `json:"word"`
		Score int    `json:"score"`
	}
	if err := d.http.Get(ctx, d.baseURL+"/words?"+q.Encode(), &words); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w.Word != "" {
			out = append(out, w.Word)
		}
	}
	return out, nil
}

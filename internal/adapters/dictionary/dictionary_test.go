package dictionary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdfmanager/internal/domain"
)

const catEntry = `[{"word":"cat","meanings":[
 {"partOfSpeech":"noun","definitions":[{"definition":"A small domesticated carnivorous mammal."},{"definition":"A person."}]},
 {"partOfSpeech":"verb","definitions":[{"definition":"To hoist the anchor."}]}
]}]`

const runEntry = `[{"word":"run","meanings":[
 {"partOfSpeech":"verb","definitions":[{"definition":"To move swiftly."}]}
]}]`

func newServer(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/cat":
			_, _ = w.Write([]byte(catEntry))
		case "/run":
			_, _ = w.Write([]byte(runEntry))
		case "/broken":
			_, _ = w.Write([]byte(`{"meanings":`))
		case "/down":
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"title":"No Definitions Found"}`))
		}
	}))
}

func TestClient_Define(t *testing.T) {
	srv := newServer(t)
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	defs, err := c.Define(context.Background(), []string{"cat", "run", "zzzz"})
	require.NoError(t, err)
	assert.Equal(t, domain.Definitions{
		"cat":  "A small domesticated carnivorous mammal., A person.",
		"run":  domain.NoDefinition,
		"zzzz": domain.NoDefinition,
	}, defs)
}

func TestClient_DefineFailures(t *testing.T) {
	srv := newServer(t)
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL + "/"}, nil)
	for _, term := range []string{"broken", "down"} {
		_, err := c.Define(context.Background(), []string{term})
		assert.ErrorIs(t, err, domain.ErrAdapterFailure, term)
	}
}

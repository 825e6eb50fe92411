package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdfmanager/internal/domain"
)

func TestRasa_Respond(t *testing.T) {
	var senders []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in message
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		senders = append(senders, in.Sender)
		assert.Equal(t, "photosynthesis", in.Message)
		_, _ = w.Write([]byte(`[
			{"recipient_id":"x","text":"Plants turn light into sugar."},
			{"recipient_id":"x","image":"https://example.com/leaf.png"},
			{"recipient_id":"x","text":"Want to know more?"}
		]`))
	}))
	defer srv.Close()

	r := NewRasa(Config{URL: srv.URL}, nil)
	for i := 0; i < 2; i++ {
		got, err := r.Respond(context.Background(), "photosynthesis")
		require.NoError(t, err)
		assert.Equal(t, "Plants turn light into sugar.\nhttps://example.com/leaf.png\nWant to know more?", got)
	}

	require.Len(t, senders, 2)
	assert.Equal(t, senders[0], senders[1])
	_, err := uuid.Parse(senders[0])
	assert.NoError(t, err)
}

func TestRasa_NoReplies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	got, err := NewRasa(Config{URL: srv.URL, Sender: "me"}, nil).Respond(context.Background(), "hi")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRasa_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewRasa(Config{URL: url}, nil).Respond(context.Background(), "hi")
	assert.ErrorIs(t, err, domain.ErrAdapterFailure)
}

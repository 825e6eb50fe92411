package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdapterError_Is(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewAdapterError("translator", cause)

	assert.ErrorIs(t, err, ErrAdapterFailure)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "translator: connection refused", err.Error())

	var ae *AdapterError
	if assert.ErrorAs(t, err, &ae) {
		assert.Equal(t, "translator", ae.Adapter)
	}
	assert.NoError(t, NewAdapterError("chat", nil))
}

func TestSearchResults_AsMap(t *testing.T) {
	res := SearchResults{{DocumentID: "a", Text: "x."}, {DocumentID: "b", Text: "y."}}
	assert.Equal(t, map[string]string{"a": "x.", "b": "y."}, res.AsMap())
	assert.Empty(t, SearchResults(nil).AsMap())
}

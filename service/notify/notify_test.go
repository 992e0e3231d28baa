package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"kitties/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendWebhook(t *testing.T) {
	var got []*core.Event
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Nil(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sink := New(Config{URL: server.URL})
	events := []*core.Event{
		{ID: 1, Kind: core.EventKittyCreated, KittyID: "deadbeef", To: "alice"},
		{ID: 2, Kind: core.EventKittyTransferred, KittyID: "deadbeef", From: "alice", To: "bob"},
	}

	require.Nil(t, sink.Send(context.Background(), events))
	require.Len(t, got, 2)
	assert.Equal(t, core.EventKittyCreated, got[0].Kind)
	assert.Equal(t, "bob", got[1].To)
}

func TestSendWebhookFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	sink := New(Config{URL: server.URL})
	assert.NotNil(t, sink.Send(context.Background(), []*core.Event{{ID: 1}}))
}

func TestSendLogOnly(t *testing.T) {
	sink := New(Config{})
	assert.Nil(t, sink.Send(context.Background(), []*core.Event{{ID: 1}}))
}

package notify_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/notify"

	"github.com/stretchr/testify/assert"
)

func TestWebhookNotifier_Send(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	n := notify.NewWebhookNotifier(srv.URL)
	err := n.Send(context.Background(), "🔔 シフト申請: **みか** (3件)")
	assert.NoError(t, err)
	assert.Equal(t, "🔔 シフト申請: **みか** (3件)", got["content"])
}

func TestWebhookNotifier_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	n := notify.NewWebhookNotifier(srv.URL)
	assert.Error(t, n.Send(context.Background(), "hello"))
}

func TestWebhookNotifier_UnconfiguredIsNoop(t *testing.T) {
	n := notify.NewWebhookNotifier("")
	assert.NoError(t, n.Send(context.Background(), "hello"))
}

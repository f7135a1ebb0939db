package notification

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushClient_Send(t *testing.T) {
	t.Run("splits tokens into gateway-sized batches", func(t *testing.T) {
		var batches [][]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)

			var msg pushMessage
			require.NoError(t, json.Unmarshal(body, &msg))
			batches = append(batches, msg.To)

			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		client := NewPushClient(srv.URL, 5*time.Second)

		tokens := make([]string, 250)
		for i := range tokens {
			tokens[i] = "tok"
		}

		err := client.Send(context.Background(), tokens, "title", "body", nil)

		require.NoError(t, err)
		require.Len(t, batches, 3)
		assert.Len(t, batches[0], 100)
		assert.Len(t, batches[1], 100)
		assert.Len(t, batches[2], 50)
	})

	t.Run("no tokens means no request", func(t *testing.T) {
		called := false
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer srv.Close()

		client := NewPushClient(srv.URL, 5*time.Second)

		require.NoError(t, client.Send(context.Background(), nil, "title", "body", nil))
		assert.False(t, called)
	})

	t.Run("gateway error surfaces", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client := NewPushClient(srv.URL, 5*time.Second)

		err := client.Send(context.Background(), []string{"tok"}, "title", "body", nil)

		assert.Error(t, err)
	})
}

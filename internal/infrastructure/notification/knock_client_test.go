package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokohub/internal/domain/service"
)

func TestNotifyProductLiked(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody triggerRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewKnockClient("sk_test", "like-unlike", time.Second)
	client.baseURL = server.URL

	err := client.NotifyProductLiked(context.Background(), "owner-1", service.LikeEvent{
		ProductName: "Batik Shirt",
		ActorName:   "Ani",
	})

	require.NoError(t, err)
	assert.Equal(t, "/workflows/like-unlike/trigger", gotPath)
	assert.Equal(t, "Bearer sk_test", gotAuth)
	require.Len(t, gotBody.Recipients, 1)
	assert.Equal(t, "owner-1", gotBody.Recipients[0].ID)
	assert.Equal(t, "Batik Shirt", gotBody.Data["productName"])
	assert.Equal(t, "Ani", gotBody.Data["userName"])
}

func TestNotifyProductLikedServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"workflow not found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := NewKnockClient("sk_test", "like-unlike", time.Second)
	client.baseURL = server.URL

	err := client.NotifyProductLiked(context.Background(), "owner-1", service.LikeEvent{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

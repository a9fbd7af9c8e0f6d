package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jane() PatientContext {
	return PatientContext{Name: "Jane Doe"}
}

func TestGenerateUsesResponseField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/generate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "hello", req["message"])

		patientCtx, ok := req["patient_context"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Jane Doe", patientCtx["name"])

		json.NewEncoder(w).Encode(map[string]string{"response": "reply text"})
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, true, time.Second)
	reply := client.Generate(context.Background(), "hello", jane())

	assert.Equal(t, "reply text", reply.Text)
	assert.False(t, reply.Fallback)
	assert.Empty(t, reply.Reason)
}

func TestGenerateFallsBackToMessageField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"message": "alt text"})
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, true, time.Second)
	reply := client.Generate(context.Background(), "hello", jane())

	assert.Equal(t, "alt text", reply.Text)
	assert.False(t, reply.Fallback)
}

func TestGenerateEmptyBodyGetsPlaceholder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, true, time.Second)
	reply := client.Generate(context.Background(), "hello", jane())

	assert.Equal(t, "No response from AI service", reply.Text)
	assert.False(t, reply.Fallback)
}

func TestGenerateNon200IsUnreachableFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, true, time.Second)
	reply := client.Generate(context.Background(), "hello", jane())

	assert.True(t, reply.Fallback)
	assert.Equal(t, FallbackReasonUnreachable, reply.Reason)
	assert.Contains(t, reply.Text, "Thank you for your message regarding Jane Doe.")
	assert.Contains(t, reply.Text, "technical difficulties")
}

func TestGenerateTimeoutIsUnreachableFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, true, 50*time.Millisecond)
	reply := client.Generate(context.Background(), "hello", jane())

	assert.True(t, reply.Fallback)
	assert.Equal(t, FallbackReasonUnreachable, reply.Reason)
}

func TestGenerateDisabledNeverCallsService(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, false, time.Second)
	reply := client.Generate(context.Background(), "hello", jane())

	assert.True(t, reply.Fallback)
	assert.Equal(t, FallbackReasonDisabled, reply.Reason)
	assert.Contains(t, reply.Text, "Hello! Thank you for your inquiry about patient Jane Doe.")
	assert.Equal(t, 0, calls)
}

func TestGenerateMalformedJSONIsUnreachableFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, true, time.Second)
	reply := client.Generate(context.Background(), "hello", jane())

	assert.True(t, reply.Fallback)
	assert.Equal(t, FallbackReasonUnreachable, reply.Reason)
}

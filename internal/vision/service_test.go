package vision

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = endpoint
	cfg.TimeoutMs = 2000
	cfg.MaxRetries = 0
	return cfg
}

func writeTestImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "checklist.png")
	require.NoError(t, os.WriteFile(path, []byte("not-a-real-png"), 0644))
	return path
}

func TestChecklistService_AnalyzeImage(t *testing.T) {
	var gotImages int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/generate", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		images, _ := req["images"].([]any)
		gotImages = len(images)

		resp := map[string]any{
			"model":    "llama3.2-vision",
			"response": `{"content": [{"label": "Joggen", "checkboxIsFilled": true}, {"label": "Yoga", "checkboxIsFilled": false}]}`,
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewOllamaClient(testConfig(server.URL), NoopObserver{})
	svc := NewChecklistService(client)

	doc, err := svc.AnalyzeImage(context.Background(), writeTestImage(t))
	require.NoError(t, err)
	assert.Equal(t, 1, gotImages, "image should travel in the images field")
	assert.Equal(t, []string{"Joggen"}, doc.CheckedLabels())
}

func TestChecklistService_MissingImageFile(t *testing.T) {
	client := NewOllamaClient(testConfig("http://localhost:0"), NoopObserver{})
	svc := NewChecklistService(client)

	_, err := svc.AnalyzeImage(context.Background(), "/does/not/exist.png")
	assert.Error(t, err)
}

func TestChecklistService_GarbageModelOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"model":    "llama3.2-vision",
			"response": "I see a lovely garden but no checklist.",
		})
	}))
	defer server.Close()

	client := NewOllamaClient(testConfig(server.URL), NoopObserver{})
	svc := NewChecklistService(client)

	_, err := svc.AnalyzeImage(context.Background(), writeTestImage(t))
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewOllamaClient(testConfig(server.URL), NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{UserPrompt: "hi"})
	assert.ErrorIs(t, err, ErrRetryExhausted)
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("LIFEGARDEN_VISION_ENABLED", "true")
	t.Setenv("LIFEGARDEN_VISION_MODEL", "llava")
	t.Setenv("LIFEGARDEN_VISION_TIMEOUT_MS", "1234")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "llava", cfg.Model)
	assert.Equal(t, 1234, cfg.TimeoutMs)
}

func TestConfig_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, "http://localhost:11434", cfg.Endpoint)
}

package renderer

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOpenAIRenderer(t *testing.T, baseURL string, store ObjectStore) *OpenAIRenderer {
	t.Helper()
	r := NewOpenAIRenderer(store, &Config{
		Generator:     GeneratorOpenAI,
		OpenAIAPIKey:  "test-key",
		OpenAIBaseURL: baseURL,
		ImageModel:    "dall-e-3",
		ImageSize:     "1024x1024",
		HTTPTimeoutS:  5,
	}, testLogger())
	r.now = func() time.Time { return time.Date(2026, 8, 31, 12, 30, 45, 0, time.UTC) }
	return r
}

func TestOpenAIRenderSuccess(t *testing.T) {
	var gotReq imageGenerationRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/images/generations", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		writeImageResponse(w, []byte("generated-png"))
	}))
	defer ts.Close()

	store := &fakeStore{}
	r := newTestOpenAIRenderer(t, ts.URL, store)

	url, ok := r.Render(context.Background(), "Acme", testConcept())
	require.True(t, ok)

	assert.Equal(t, "dall-e-3", gotReq.Model)
	assert.Equal(t, 1, gotReq.N)
	assert.Equal(t, "b64_json", gotReq.ResponseFormat)
	assert.Contains(t, gotReq.Prompt, "Acme")
	assert.Contains(t, gotReq.Prompt, "two-panel reaction")
	assert.Contains(t, gotReq.Prompt, "Text 1: writing docs")
	assert.Contains(t, gotReq.Prompt, "Hashtags: marketing")

	assert.Equal(t, "http://store.local/Acme_drake_20260831_123045.png", url)
	assert.Equal(t, []byte("generated-png"), store.objects["Acme_drake_20260831_123045.png"])
}

func TestOpenAIRenderAPIFailureIsAbsent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	r := newTestOpenAIRenderer(t, ts.URL, &fakeStore{})

	_, ok := r.Render(context.Background(), "Acme", testConcept())
	assert.False(t, ok)
}

func TestNewRendererSelection(t *testing.T) {
	log := testLogger()

	r, err := NewRenderer(&Config{Generator: GeneratorMemegen}, &fakeMatcher{}, &fakeStore{}, log)
	require.NoError(t, err)
	assert.Equal(t, GeneratorMemegen, r.Name())

	r, err = NewRenderer(&Config{Generator: GeneratorOpenAI, OpenAIAPIKey: "k"}, &fakeMatcher{}, &fakeStore{}, log)
	require.NoError(t, err)
	assert.Equal(t, GeneratorOpenAI, r.Name())

	_, err = NewRenderer(&Config{Generator: GeneratorOpenAI}, &fakeMatcher{}, &fakeStore{}, log)
	assert.Error(t, err)

	_, err = NewRenderer(&Config{Generator: "imagemagick"}, &fakeMatcher{}, &fakeStore{}, log)
	assert.Error(t, err)
}

func writeImageResponse(w http.ResponseWriter, img []byte) {
	resp := map[string]interface{}{
		"data": []map[string]string{
			{"b64_json": base64.StdEncoding.EncodeToString(img)},
		},
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

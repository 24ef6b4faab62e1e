package analyzer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musadiqpeerzada/memgen.ai/pkg/llm"
	"github.com/musadiqpeerzada/memgen.ai/pkg/logger"
)

const validProfileJSON = `{
	"name": "Acme Robotics",
	"industry": "Industrial Automation",
	"core_offerings": ["robotic arms", "conveyor systems"],
	"value_propositions": ["24h support", "modular design"],
	"target_audience": ["factory operators"],
	"brand_tone": "professional"
}`

type scriptedProvider struct {
	responses []string
	errs      []error
	calls     int32
}

func (p *scriptedProvider) Complete(_ context.Context, _ llm.CompletionRequest) (string, error) {
	i := int(atomic.AddInt32(&p.calls, 1)) - 1
	if i >= len(p.responses) {
		i = len(p.responses) - 1
	}
	var err error
	if i < len(p.errs) {
		err = p.errs[i]
	}
	return p.responses[i], err
}

func (p *scriptedProvider) Name() string { return "scripted" }

func testLogger() *logger.Logger {
	return logger.NewLoggerClient(logger.Config{Level: logger.Error, ServiceName: "test"})
}

func newTestAnalyzer(provider llm.Provider) *Analyzer {
	return NewAnalyzer(provider, &Config{
		CharacterLimit: 6000,
		MaxAttempts:    3,
		Temperature:    0.2,
		HTTPTimeoutS:   5,
	}, testLogger(), nil)
}

func pageServer(t *testing.T, fetches *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(fetches, 1)
		_, _ = w.Write([]byte(`<html><head><style>.x{}</style></head>
			<body><h1>Acme Robotics</h1><p>We build robotic arms.</p>
			<script>ignore()</script></body></html>`))
	}))
}

func TestExtractSuccess(t *testing.T) {
	var fetches int32
	ts := pageServer(t, &fetches)
	defer ts.Close()

	provider := &scriptedProvider{responses: []string{validProfileJSON}}
	a := newTestAnalyzer(provider)

	profile, err := a.Extract(context.Background(), ts.URL)
	require.NoError(t, err)

	assert.Equal(t, "Acme Robotics", profile.Name)
	assert.Equal(t, []string{"robotic arms", "conveyor systems"}, profile.CoreOfferings)
	assert.EqualValues(t, 1, fetches)
}

func TestExtractStripsMarkdownFences(t *testing.T) {
	var fetches int32
	ts := pageServer(t, &fetches)
	defer ts.Close()

	provider := &scriptedProvider{responses: []string{"```json\n" + validProfileJSON + "\n```"}}
	a := newTestAnalyzer(provider)

	profile, err := a.Extract(context.Background(), ts.URL)
	require.NoError(t, err)
	assert.Equal(t, "Acme Robotics", profile.Name)
}

func TestExtractFetchesPageOnceAcrossRetries(t *testing.T) {
	var fetches int32
	ts := pageServer(t, &fetches)
	defer ts.Close()

	provider := &scriptedProvider{responses: []string{"not json", "{}", validProfileJSON}}
	a := newTestAnalyzer(provider)

	profile, err := a.Extract(context.Background(), ts.URL)
	require.NoError(t, err)

	assert.Equal(t, "Acme Robotics", profile.Name)
	assert.EqualValues(t, 3, provider.calls)
	assert.EqualValues(t, 1, fetches, "retries must reuse the fetched page")
}

func TestExtractExhaustsRetries(t *testing.T) {
	var fetches int32
	ts := pageServer(t, &fetches)
	defer ts.Close()

	provider := &scriptedProvider{responses: []string{"still not json"}}
	a := newTestAnalyzer(provider)

	_, err := a.Extract(context.Background(), ts.URL)
	require.Error(t, err)

	var exErr *ExtractionError
	require.ErrorAs(t, err, &exErr)
	assert.Equal(t, 3, exErr.Attempts)
	assert.EqualValues(t, 3, provider.calls)
	assert.EqualValues(t, 1, fetches)
}

func TestExtractRejectsIncompleteProfile(t *testing.T) {
	var fetches int32
	ts := pageServer(t, &fetches)
	defer ts.Close()

	// Valid JSON but missing required fields: must retry, then fail.
	provider := &scriptedProvider{responses: []string{`{"name": "Acme"}`}}
	a := newTestAnalyzer(provider)

	_, err := a.Extract(context.Background(), ts.URL)
	var exErr *ExtractionError
	require.ErrorAs(t, err, &exErr)
}

// Fetch failures consume attempts like any other failure; the model is
// never called without content.
func TestExtractFetchFailureConsumesAttempts(t *testing.T) {
	var fetches int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&fetches, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	provider := &scriptedProvider{responses: []string{validProfileJSON}}
	a := newTestAnalyzer(provider)

	_, err := a.Extract(context.Background(), ts.URL)
	var exErr *ExtractionError
	require.ErrorAs(t, err, &exErr)
	assert.Equal(t, 3, exErr.Attempts)
	assert.EqualValues(t, 0, provider.calls)
	assert.EqualValues(t, 3, fetches)
}

func TestExtractProviderErrorRetries(t *testing.T) {
	var fetches int32
	ts := pageServer(t, &fetches)
	defer ts.Close()

	provider := &scriptedProvider{
		responses: []string{"", validProfileJSON},
		errs:      []error{errors.New("model overloaded"), nil},
	}
	a := newTestAnalyzer(provider)

	profile, err := a.Extract(context.Background(), ts.URL)
	require.NoError(t, err)
	assert.Equal(t, "Acme Robotics", profile.Name)
	assert.EqualValues(t, 2, provider.calls)
}

func TestExtractTextSkipsScriptAndStyle(t *testing.T) {
	var fetches int32
	ts := pageServer(t, &fetches)
	defer ts.Close()

	provider := &scriptedProvider{responses: []string{validProfileJSON}}
	a := newTestAnalyzer(provider)

	text, err := a.fetchPageText(context.Background(), ts.URL)
	require.NoError(t, err)

	assert.Contains(t, text, "Acme Robotics")
	assert.Contains(t, text, "We build robotic arms.")
	assert.NotContains(t, text, "ignore()")
	assert.NotContains(t, text, ".x{}")
}

func TestExtractTextRespectsCharacterLimit(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body><p>" + longText(10000) + "</p></body></html>"))
	}))
	defer ts.Close()

	a := newTestAnalyzer(&scriptedProvider{responses: []string{validProfileJSON}})

	text, err := a.fetchPageText(context.Background(), ts.URL)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(text), 6000)
}

func TestExtractTextTruncatesOnRuneBoundary(t *testing.T) {
	// 3 ASCII bytes followed by 2-byte runes puts every rune start at an odd
	// offset, so the 6000-byte limit lands mid-rune.
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body><p>abc" + strings.Repeat("é", 3500) + "</p></body></html>"))
	}))
	defer ts.Close()

	a := newTestAnalyzer(&scriptedProvider{responses: []string{validProfileJSON}})

	text, err := a.fetchPageText(context.Background(), ts.URL)
	require.NoError(t, err)
	assert.True(t, utf8.ValidString(text))
	assert.Equal(t, 5999, len(text))
}

func longText(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'a'
	}
	return string(b)
}

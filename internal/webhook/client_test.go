package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"brand-intake/internal/common/config"
	"brand-intake/internal/common/errors"
	"brand-intake/internal/common/logger"
	"brand-intake/internal/intake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `{
  "output": {
    "brandScore": "82%",
    "brandAwareness": "75%",
    "brandConsistency": "68%",
    "brandEngagement": "55.6%",
    "brandMission": "To make payments simple.",
    "brandVision": "A cashless main street.",
    "brandTagline": {"tagline": "Pay it forward"},
    "typography": {"fontName": "Inter"},
    "colorPalette": {"primary": "#111111", "secondary": "#222222", "accent": "#333333", "background": "#ffffff", "text": "#000000"},
    "actionableInsights": ["Post weekly", "Unify logos"],
    "insightSummaryAudit": "Strong recall.",
    "summaryOfFindingsAudit": "Engagement lags.",
    "taglineExplanation": "Short and warm.",
    "typographyExplanation": "Readable.",
    "colorPaletteExplanation": "High contrast."
  }
}`

var testForm = intake.IntakeForm{
	BrandName:        "Acme",
	Industry:         "FinTech",
	BrandDescription: "Payments for shops",
	TargetAudience:   "Retailers",
	WebsiteLink:      "https://acme.io",
}

func newTestClient(t *testing.T, url string) *Client {
	return NewClient(config.WebhookConfig{URL: url, Timeout: 2000}, logger.NewTestLogger(t))
}

func TestSubmit_Success(t *testing.T) {
	var received []map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &received))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleResponse))
	}))
	defer server.Close()

	result, err := newTestClient(t, server.URL).Submit(context.Background(), testForm)
	require.NoError(t, err)

	require.Len(t, received, 1)
	assert.Equal(t, map[string]string{
		"brandName":        "Acme",
		"industry":         "FinTech",
		"website":          "https://acme.io",
		"brandDescription": "Payments for shops",
		"targetAudience":   "Retailers",
	}, received[0])

	assert.Equal(t, intake.ScoreSet{Overall: 82, Awareness: 75, Consistency: 68, Engagement: 55}, result.Scores)
	assert.Equal(t, "Pay it forward", result.Kit.Tagline)
	assert.Equal(t, "Inter", result.Kit.Typography)
	assert.Equal(t, intake.ColorPalette{"#111111", "#222222", "#333333", "#ffffff", "#000000"}, result.Kit.ColorPalette)
	assert.Equal(t, []string{"Post weekly", "Unify logos"}, result.Kit.Insights)
	assert.Equal(t, "Strong recall.", result.Kit.InsightSummary)
	assert.Equal(t, "Engagement lags.", result.Kit.SummaryOfFindings)
	assert.Equal(t, "High contrast.", result.Kit.ColorPaletteExplanation)
}

func TestSubmit_Non2xx(t *testing.T) {
	tests := []struct {
		status    int
		retryable bool
	}{
		{http.StatusNotFound, false},
		{http.StatusInternalServerError, true},
		{http.StatusBadGateway, true},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(sampleResponse))
			}))
			defer server.Close()

			result, err := newTestClient(t, server.URL).Submit(context.Background(), testForm)
			assert.Nil(t, result)
			require.True(t, errors.HasCode(err, errors.ErrCodeWebhookStatus))
			assert.Equal(t, tt.retryable, errors.AsStandard(err).Retryable)
		})
	}
}

func TestSubmit_Malformed(t *testing.T) {
	bodies := map[string]string{
		"not json":            `<html>oops</html>`,
		"missing output":      `{"result": {}}`,
		"missing score":       `{"output": {"brandAwareness": "1%"}}`,
		"non numeric score":   replaceField(t, "brandScore", "great"),
		"numeric score":       replaceField(t, "brandScore", 82),
		"overflowing score":   replaceField(t, "brandScore", "99999999999999999999%"),
		"tagline not object":  replaceField(t, "brandTagline", "Pay it forward"),
		"insights not array":  replaceField(t, "actionableInsights", "Post weekly"),
		"palette missing key": replaceField(t, "colorPalette", map[string]string{"primary": "#fff"}),
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			}))
			defer server.Close()

			_, err := newTestClient(t, server.URL).Submit(context.Background(), testForm)
			assert.True(t, errors.HasCode(err, errors.ErrCodeWebhookMalformed), "got %v", err)
		})
	}
}

func TestSubmit_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := newTestClient(t, url).Submit(context.Background(), testForm)
	assert.True(t, errors.HasCode(err, errors.ErrCodeWebhookUnavailable))
}

func TestSubmit_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(config.WebhookConfig{URL: server.URL, Timeout: 50}, logger.NewNoOpLogger())
	start := time.Now()
	_, err := client.Submit(context.Background(), testForm)
	assert.True(t, errors.HasCode(err, errors.ErrCodeWebhookUnavailable))
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestParsePercentage(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"82%", 82, false},
		{"82", 82, false},
		{" 7 % ", 7, false},
		{"99.9%", 99, false},
		{"0%", 0, false},
		{"%", 0, true},
		{"", 0, true},
		{"abc%", 0, true},
		{"NaN", 0, true},
		{"100%", 100, false},
		{"100.5%", 0, true},
		{"-3%", 0, true},
		{"99999999999999999999%", 0, true},
		{"1e300", 0, true},
	}

	for _, tt := range tests {
		got, err := ParsePercentage(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseResponse_OptionalTextMayBeAbsent(t *testing.T) {
	body := `{"output": {
		"brandScore": "60%", "brandAwareness": "61%", "brandConsistency": "62%", "brandEngagement": "63%",
		"brandTagline": {"tagline": "t"}, "typography": {"fontName": "f"},
		"colorPalette": {"primary": "a", "secondary": "b", "accent": "c", "background": "d", "text": "e"},
		"actionableInsights": []
	}}`

	result, err := ParseResponse([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, 60, result.Scores.Overall)
	assert.Empty(t, result.Kit.Mission)
	assert.NotNil(t, result.Kit.Insights)
}

// replaceField returns sampleResponse with one output field swapped.
func replaceField(t *testing.T, field string, value interface{}) string {
	t.Helper()
	var doc map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(sampleResponse), &doc))
	doc["output"][field] = value
	out, err := json.Marshal(doc)
	require.NoError(t, err)
	return string(out)
}

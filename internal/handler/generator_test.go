package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strongpass/strongpass-go/internal/model"
	"github.com/strongpass/strongpass-go/internal/service"
	"github.com/strongpass/strongpass-go/internal/wordlist"
)

func testHandler() *GeneratorHandler {
	svc := service.NewGeneratorService(wordlist.New([]string{
		"stubbed", "congress", "tiptop", "playmate", "stagnate",
	}))
	return NewGeneratorHandler(svc)
}

func postJSON(t *testing.T, handlerFunc http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handlerFunc(rec, req)
	return rec
}

func TestHandleGenerate(t *testing.T) {
	h := testHandler()

	rec := postJSON(t, h.HandleGenerate, `{"strategy":"memorable","length":5}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, strings.Split(resp.Password, " "), 5)
	assert.Equal(t, "memorable", resp.Strategy)
	assert.Nil(t, resp.Strength)
}

func TestHandleGenerate_WithAnalysis(t *testing.T) {
	h := testHandler()

	rec := postJSON(t, h.HandleGenerate, `{"strategy":"random","length":16,"analyze":true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Password, 16)
	require.NotNil(t, resp.Strength)
	assert.Contains(t, resp.Strength.CrackTimesDisplay, "offline_slow_hashing_1e4_per_second")
}

func TestHandleGenerate_ValidationErrors(t *testing.T) {
	h := testHandler()

	tests := []struct {
		name string
		body string
	}{
		{name: "unknown strategy", body: `{"strategy":"pronounceable","length":8}`},
		{name: "negative length", body: `{"strategy":"random","length":-2}`},
		{name: "length too long", body: `{"strategy":"random","length":10000}`},
		{name: "missing strategy", body: `{"length":8}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, h.HandleGenerate, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["error"])
		})
	}
}

func TestHandleGenerate_MalformedBody(t *testing.T) {
	h := testHandler()

	rec := postJSON(t, h.HandleGenerate, `{"strategy":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGenerate_ShortRandomWarns(t *testing.T) {
	h := testHandler()

	rec := postJSON(t, h.HandleGenerate, `{"strategy":"random","length":2}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Password, 2)
	assert.NotEmpty(t, resp.Warning)
}

func TestHandleAnalyze(t *testing.T) {
	h := testHandler()

	rec := postJSON(t, h.HandleAnalyze, `{"password":"Stubbed Congress Tiptop Playmate Stagnate"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var report model.StrengthReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.GreaterOrEqual(t, report.Score, 0)
	assert.LessOrEqual(t, report.Score, 4)
	assert.Len(t, report.CrackTimesDisplay, 4)
}

func TestHandleAnalyze_EmptyPassword(t *testing.T) {
	h := testHandler()

	rec := postJSON(t, h.HandleAnalyze, `{"password":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

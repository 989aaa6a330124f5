package ui

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scenery/app"
	"scenery/domain/report"
	"scenery/engine"
	"scenery/internal"
	"scenery/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Server: config.ServerConfig{Port: "0", GinMode: gin.TestMode},
		Report: config.ReportConfig{BaseColor: "#2b6cb0", MaxCategories: 20},
		Upload: config.UploadConfig{MaxUploadMB: 8},
	}
	logger := internal.NewLogger(internal.LogLevelError)
	service := app.NewReportService(engine.New(cfg.Report.BaseColor), cfg.Report.MaxCategories, logger)
	return NewServer(cfg, service, logger)
}

func postJSON(t *testing.T, s *Server, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestHandleBuildReport(t *testing.T) {
	s := newTestServer(t)

	w := postJSON(t, s, "/api/reports", BuildReportRequest{
		Header: []string{"A", "B"},
		Rows:   [][]string{{"1", "x"}, {"2", "y"}, {"", "x"}},
		Choices: report.Choices{
			PrimaryNumeric: "A",
			CategoryVolume: "B",
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result report.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 3, result.Summary.Rows)
	assert.Equal(t, 1, result.Summary.MissingCells)
	require.NotNil(t, result.Summary.Mean)
	assert.InDelta(t, 1.5, *result.Summary.Mean, 1e-9)

	_, ok := result.Chart(report.ChartCategoryVolume)
	assert.True(t, ok)
}

func TestHandleBuildReportRejectsBadBody(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/reports", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleBuildReportRejectsWideRows(t *testing.T) {
	s := newTestServer(t)

	w := postJSON(t, s, "/api/reports", BuildReportRequest{
		Header: []string{"a"},
		Rows:   [][]string{{"1", "overflow"}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleDemoReport(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/reports/demo", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var result report.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.NotEmpty(t, result.Charts)
	assert.NotEmpty(t, result.Quality)
}

func TestHandlePalette(t *testing.T) {
	s := newTestServer(t)

	w := postJSON(t, s, "/api/palette", PaletteRequest{BaseColor: "#2b6cb0", Count: 4})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Shades []string `json:"shades"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Shades, 4)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

package app

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/guttosm/contractpulse/config"
)

// writeInput builds a minimal valid input file: header plus two data rows
// with 36 columns each.
func writeInput(t *testing.T) string {
	t.Helper()
	row := func(isin, payload string) string {
		cells := make([]string, 36)
		cells[0] = isin
		cells[2] = "XEUR"
		cells[5] = "FFICSX"
		cells[34] = payload
		return strings.Join(cells, ",") + "\n"
	}
	content := row("ISIN", "Header") + row("FIRST", "PriceMultiplier:1") + row("KEPT", "PriceMultiplier:20")

	p := filepath.Join(t.TempDir(), "input.csv")
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return p
}

// TestInitializeApp_MissingInput ensures InitializeApp returns an error when
// the configured input file cannot be read.
func TestInitializeApp_MissingInput(t *testing.T) {
	old := config.AppConfig
	t.Cleanup(func() { config.AppConfig = old })
	config.AppConfig = config.Config{
		Server:   config.ServerConfig{Port: "8080"},
		Pipeline: config.PipelineConfig{InputFile: filepath.Join(t.TempDir(), "nope.csv"), OutputFile: "out.csv"},
	}

	r, cleanup, err := InitializeApp()
	if err == nil || r != nil || cleanup != nil {
		if cleanup != nil {
			cleanup()
		}
		t.Fatalf("expected error from InitializeApp with missing input file")
	}
}

func TestInitializeApp_HappyPath(t *testing.T) {
	old := config.AppConfig
	t.Cleanup(func() { config.AppConfig = old })
	config.AppConfig = config.Config{
		Server:   config.ServerConfig{Port: "8080"},
		Pipeline: config.PipelineConfig{InputFile: writeInput(t), OutputFile: "out.csv"},
	}

	r, cleanup, err := InitializeApp()
	if err != nil {
		t.Fatalf("InitializeApp: %v", err)
	}
	t.Cleanup(cleanup)

	// Readiness must report loaded state
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("readyz: want 200 got %d", w.Code)
	}

	// The transactions route must serve the retained row
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("transactions: want 200 got %d (%s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "KEPT") {
		t.Fatalf("expected retained row in body: %s", w.Body.String())
	}
	if strings.Contains(w.Body.String(), "FIRST") {
		t.Fatalf("first data row must be excluded by default: %s", w.Body.String())
	}
}

package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read stdout: %v", err)
	}
	return buf.String()
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("expected short unchanged, got %q", got)
	}

	if got := truncate("longerstring", 6); got != "lon..." {
		t.Fatalf("expected lon..., got %q", got)
	}
}

func TestShowCompany(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/company/" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"Cooperativa de Fletes","rif":"J-12345678-9","cost_per_kg":"2","bcv_rate":"36.5"}`))
	}))
	defer srv.Close()

	baseURL = srv.URL
	timeout = 5 * time.Second

	out := captureOutput(t, showCompany)

	if !strings.Contains(out, "Cooperativa de Fletes") {
		t.Fatalf("expected company name in output, got:\n%s", out)
	}
	if !strings.Contains(out, "J-12345678-9") {
		t.Fatalf("expected RIF in output, got:\n%s", out)
	}
}

func TestPrintDiario(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/ledger/diario" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{
			"date": "2025-03-10T00:00:00Z",
			"description": "Factura 00001",
			"lines": [
				{"account_name": "Efectivo Bs", "debit": "20.60", "credit": "0"},
				{"account_name": "Ingresos por Fletes", "debit": "0", "credit": "10.00"}
			]
		}]`))
	}))
	defer srv.Close()

	baseURL = srv.URL
	timeout = 5 * time.Second

	out := captureOutput(t, printDiario)

	if !strings.Contains(out, "10/03/2025  Factura 00001") {
		t.Fatalf("expected entry header in output, got:\n%s", out)
	}
	if !strings.Contains(out, "Efectivo Bs") || !strings.Contains(out, "20.60") {
		t.Fatalf("expected debit line in output, got:\n%s", out)
	}
}

// Sociolens - Social Media Sentiment Analytics
// Copyright 2026 Aris V. (arisvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arisvel/sociolens

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCompression_WithGzipAccept(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		data := strings.Repeat(`{"token":"community","count":42},`, 200)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(data)); err != nil {
			t.Fatalf("Failed to write response: %v", err)
		}
	}

	compressedHandler := Compression(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/tokens", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	compressedHandler(rec, req)

	if rec.Header().Get("Content-Encoding") != "gzip" {
		t.Errorf("Expected Content-Encoding: gzip, got: %s", rec.Header().Get("Content-Encoding"))
	}

	if rec.Header().Get("Content-Length") != "" {
		t.Error("Expected Content-Length header to be removed")
	}

	reader, err := gzip.NewReader(rec.Body)
	if err != nil {
		t.Fatalf("Failed to create gzip reader: %v", err)
	}
	defer reader.Close()

	decompressed, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("Failed to read decompressed data: %v", err)
	}

	expected := strings.Repeat(`{"token":"community","count":42},`, 200)
	if string(decompressed) != expected {
		t.Error("Decompressed data doesn't match expected")
	}
}

func TestCompression_WithoutGzipAccept(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("uncompressed response")); err != nil {
			t.Fatalf("Failed to write response: %v", err)
		}
	}

	compressedHandler := Compression(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dataset/summary", nil)
	rec := httptest.NewRecorder()

	compressedHandler(rec, req)

	if rec.Header().Get("Content-Encoding") == "gzip" {
		t.Error("Expected Content-Encoding to not be gzip when client doesn't accept it")
	}

	if rec.Body.String() != "uncompressed response" {
		t.Errorf("Expected uncompressed response, got: %s", rec.Body.String())
	}
}

func TestCompression_NotModifiedStaysEmpty(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotModified)
	}

	compressedHandler := Compression(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/countries", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	compressedHandler(rec, req)

	if rec.Code != http.StatusNotModified {
		t.Errorf("Expected status 304, got %d", rec.Code)
	}

	// A conditional response must not grow a gzip envelope.
	if rec.Header().Get("Content-Encoding") == "gzip" {
		t.Error("Expected no Content-Encoding on 304 response")
	}

	if rec.Body.Len() != 0 {
		t.Errorf("Expected empty body on 304, got %d bytes", rec.Body.Len())
	}
}

func TestCompression_NoContentStaysEmpty(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}

	compressedHandler := Compression(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dataset/filters", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	compressedHandler(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", rec.Code)
	}

	if rec.Body.Len() != 0 {
		t.Errorf("Expected empty body on 204, got %d bytes", rec.Body.Len())
	}
}

func TestCompression_ImplicitWriteHeader(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		// Write without an explicit WriteHeader call.
		if _, err := w.Write([]byte(`{"status":"success"}`)); err != nil {
			t.Fatalf("Failed to write response: %v", err)
		}
	}

	compressedHandler := Compression(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats/cache", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	compressedHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	if rec.Header().Get("Content-Encoding") != "gzip" {
		t.Errorf("Expected Content-Encoding: gzip, got: %s", rec.Header().Get("Content-Encoding"))
	}

	reader, err := gzip.NewReader(rec.Body)
	if err != nil {
		t.Fatalf("Failed to create gzip reader: %v", err)
	}
	defer reader.Close()

	decompressed, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("Failed to read decompressed data: %v", err)
	}

	if string(decompressed) != `{"status":"success"}` {
		t.Errorf("Decompressed data doesn't match, got: %s", decompressed)
	}
}

func TestCompression_ErrorResponseCompressed(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		if _, err := w.Write([]byte(`{"status":"error","error":{"code":"EMPTY_RESULT"}}`)); err != nil {
			t.Fatalf("Failed to write response: %v", err)
		}
	}

	compressedHandler := Compression(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/top-posts/Friendster", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	compressedHandler(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}

	if rec.Header().Get("Content-Encoding") != "gzip" {
		t.Error("Expected error responses with bodies to be compressed too")
	}
}

func TestCompression_SequentialRequestsReusePool(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("payload")); err != nil {
			t.Fatalf("Failed to write response: %v", err)
		}
	}

	compressedHandler := Compression(handler)

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/platforms/counts", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rec := httptest.NewRecorder()

		compressedHandler(rec, req)

		reader, err := gzip.NewReader(rec.Body)
		if err != nil {
			t.Fatalf("Request %d: failed to create gzip reader: %v", i, err)
		}

		decompressed, err := io.ReadAll(reader)
		reader.Close()
		if err != nil {
			t.Fatalf("Request %d: failed to read decompressed data: %v", i, err)
		}

		if string(decompressed) != "payload" {
			t.Errorf("Request %d: decompressed data doesn't match", i)
		}
	}
}

func BenchmarkCompression(b *testing.B) {
	data := []byte(strings.Repeat(`{"token":"sentiment","count":7},`, 100))
	handler := Compression(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/tokens", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rec := httptest.NewRecorder()
		handler(rec, req)
	}
}

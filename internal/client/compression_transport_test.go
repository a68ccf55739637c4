package client

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, _ = w.Write(data)
	_ = w.Close()
	return buf.Bytes()
}

func brotliBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := brotli.NewWriter(&buf)
	_, _ = w.Write(data)
	_ = w.Close()
	return buf.Bytes()
}

func zstdBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatalf("zstd writer: %v", err)
	}
	_, _ = w.Write(data)
	_ = w.Close()
	return buf.Bytes()
}

func identityBytes(_ *testing.T, data []byte) []byte {
	return data
}

// roundTrip serves body with the given status and Content-Encoding and fetches it through the transport
func roundTrip(t *testing.T, req func(url string) *http.Request, status int, encoding string, body []byte) (*http.Response, []byte, http.Header) {
	t.Helper()
	seen := make(chan http.Header, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen <- r.Header.Clone()
		if encoding != "" {
			w.Header().Set("Content-Encoding", encoding)
		}
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}))
	t.Cleanup(server.Close)

	resp, err := (&http.Client{Transport: newCompressionTransport(nil)}).Do(req(server.URL))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	got, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, got, <-seen
}

func getRequest(url string) *http.Request {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	return req
}

func TestCompressionTransport_Decodes(t *testing.T) {
	payload := []byte(`[{"id":10,"name":"Pilot","season":1,"number":1}]`)

	tests := []struct {
		name         string
		status       int
		encoding     string
		encode       func(*testing.T, []byte) []byte
		wantBody     []byte
		wantEncoding string
	}{
		{name: "gzip", encoding: "gzip", encode: gzipBytes, wantBody: payload},
		{name: "brotli", encoding: "br", encode: brotliBytes, wantBody: payload},
		{name: "zstd", encoding: "zstd", encode: zstdBytes, wantBody: payload},
		{name: "comma list takes last", encoding: "identity, gzip", encode: gzipBytes, wantBody: payload},
		{name: "whitespace", encoding: " gzip ", encode: gzipBytes, wantBody: payload},
		{name: "uppercase", encoding: "GZIP", encode: gzipBytes, wantBody: payload},
		{name: "plain body", encode: identityBytes, wantBody: payload},
		{name: "unknown encoding passes through", encoding: "lzma", encode: identityBytes, wantBody: payload, wantEncoding: "lzma"},
		{name: "no content", status: http.StatusNoContent, encoding: "gzip", encode: func(*testing.T, []byte) []byte { return nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := tt.status
			if status == 0 {
				status = http.StatusOK
			}

			resp, body, seen := roundTrip(t, getRequest, status, tt.encoding, tt.encode(t, payload))

			if seen.Get("Accept-Encoding") != acceptedEncodings {
				t.Errorf("Expected Accept-Encoding %q, got %q", acceptedEncodings, seen.Get("Accept-Encoding"))
			}
			if resp.StatusCode != status {
				t.Errorf("Expected status %d, got %d", status, resp.StatusCode)
			}
			if !bytes.Equal(body, tt.wantBody) {
				t.Errorf("Expected body %q, got %q", tt.wantBody, body)
			}
			if got := resp.Header.Get("Content-Encoding"); status == http.StatusOK && got != tt.wantEncoding {
				t.Errorf("Expected Content-Encoding %q after decoding, got %q", tt.wantEncoding, got)
			}
		})
	}
}

func TestCompressionTransport_KeepsCallerAcceptEncoding(t *testing.T) {
	withIdentity := func(url string) *http.Request {
		req := getRequest(url)
		req.Header.Set("Accept-Encoding", "identity")
		return req
	}

	_, body, seen := roundTrip(t, withIdentity, http.StatusOK, "", []byte("[]"))

	if seen.Get("Accept-Encoding") != "identity" {
		t.Errorf("Expected caller's Accept-Encoding to be sent, got %q", seen.Get("Accept-Encoding"))
	}
	if string(body) != "[]" {
		t.Errorf("Unexpected body %q", body)
	}
}

func TestParseContentEncoding(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"simple gzip", "gzip", "gzip"},
		{"simple brotli", "br", "br"},
		{"simple zstd", "zstd", "zstd"},
		{"with both whitespace", " gzip ", "gzip"},
		{"comma list - identity, gzip", "identity, gzip", "gzip"},
		{"comma list - gzip, br", "gzip, br", "br"},
		{"mixed case", "GzIp", "gzip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := parseContentEncoding(tt.header); result != tt.expected {
				t.Errorf("parseContentEncoding(%q) = %q, expected %q", tt.header, result, tt.expected)
			}
		})
	}
}

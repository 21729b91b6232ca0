package mock

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func post(t *testing.T, srv *httptest.Server, body string) string {
	t.Helper()
	resp, err := http.Post(srv.URL, "text/xml", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestRawMethodCall(t *testing.T) {
	srv := httptest.NewServer(NewServer(Options{Frequency: 14070000}))
	defer srv.Close()

	body := `<?xml version="1.0"?>
<methodCall><methodName>main.get_frequency</methodName><params/></methodCall>`
	resp := post(t, srv, body)
	if !strings.Contains(resp, "<double>14070000</double>") {
		t.Errorf("Unexpected response: %s", resp)
	}
}

func TestRawSetFrequency(t *testing.T) {
	s := NewServer(Options{Frequency: 14070000})
	srv := httptest.NewServer(s)
	defer srv.Close()

	body := `<?xml version="1.0"?>
<methodCall><methodName>main.set_frequency</methodName>
<params><param><value><double>7070000</double></value></param></params></methodCall>`
	resp := post(t, srv, body)
	if !strings.Contains(resp, "<double>14070000</double>") {
		t.Errorf("Expected old frequency in response: %s", resp)
	}
	if got := s.Frequency(); got != 7070000 {
		t.Errorf("Frequency is %f", got)
	}
}

func TestUnknownMethodFault(t *testing.T) {
	srv := httptest.NewServer(NewServer(Options{}))
	defer srv.Close()

	body := `<?xml version="1.0"?>
<methodCall><methodName>bogus.method</methodName><params/></methodCall>`
	resp := post(t, srv, body)
	if !strings.Contains(resp, "<fault>") || !strings.Contains(resp, "faultCode") {
		t.Errorf("Expected fault response: %s", resp)
	}
}

func TestGetRequestRejected(t *testing.T) {
	srv := httptest.NewServer(NewServer(Options{}))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", resp.StatusCode)
	}
}

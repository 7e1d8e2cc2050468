package webclient_test

import (
	"testing"

	"github.com/kawa454/otoshi/internal/logging"
	"github.com/kawa454/otoshi/internal/webclient"
)

// TestNewWebClient_DefaultBackend verifies that empty backend defaults to nethttp
func TestNewWebClient_DefaultBackend(t *testing.T) {
	webclient.RegisterDefaultBackends()

	cfg := webclient.Config{}
	client, err := webclient.NewWebClient(cfg, &noopLogger{})
	if err != nil {
		t.Fatalf("Failed to create default client: %v", err)
	}
	if client == nil {
		t.Fatal("client is nil")
	}
	defer client.Close()

	if _, ok := client.(*webclient.NetHTTPClient); !ok {
		t.Errorf("expected *NetHTTPClient for empty backend, got %T", client)
	}
}

// TestNewWebClient_NetHTTP verifies that the factory can create a nethttp client
func TestNewWebClient_NetHTTP(t *testing.T) {
	webclient.RegisterDefaultBackends()

	cfg := webclient.Config{Backend: webclient.BackendNetHTTP}
	client, err := webclient.NewWebClient(cfg, &noopLogger{})
	if err != nil {
		t.Fatalf("Failed to create nethttp client: %v", err)
	}
	if client == nil {
		t.Fatal("client is nil")
	}
	defer client.Close()
}

// TestNewWebClient_UnknownBackend verifies that unregistered names are rejected
func TestNewWebClient_UnknownBackend(t *testing.T) {
	webclient.RegisterDefaultBackends()

	cfg := webclient.Config{Backend: "gopher"}
	if _, err := webclient.NewWebClient(cfg, &noopLogger{}); err == nil {
		t.Fatal("expected error for unknown backend, got nil")
	}
}

// TestRegisterBackend_CustomBackendIsConstructible verifies that a registered
// constructor is found and invoked by the factory.
func TestRegisterBackend_CustomBackendIsConstructible(t *testing.T) {
	webclient.RegisterDefaultBackends()

	called := false
	webclient.RegisterBackend("custom", func(cfg webclient.Config, logger logging.Logger) (webclient.WebClient, error) {
		called = true
		return webclient.NewNetHTTPClient(cfg, logger, nil)
	})

	client, err := webclient.NewWebClient(webclient.Config{Backend: "CUSTOM"}, &noopLogger{})
	if err != nil {
		t.Fatalf("NewWebClient: %v", err)
	}
	defer client.Close()

	if !called {
		t.Error("expected custom constructor to be called")
	}
}

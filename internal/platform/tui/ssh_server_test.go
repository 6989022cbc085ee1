package tui

import (
	"path/filepath"
	"testing"
	"time"
)

func TestSSHServerShutdownClosesStore(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "pearls.db")
	cfg.IdleTimeout = time.Minute

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer failed: %v", err)
	}
	if srv.store == nil {
		t.Fatal("expected the pearls database to be open")
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("unexpected address %q", srv.Addr())
	}

	if err := srv.Shutdown(); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}
	if srv.store != nil {
		t.Error("expected store to be released after shutdown")
	}
}

func TestSSHServerWithoutDatabase(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")
	cfg.DBPath = ""

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer failed: %v", err)
	}
	if srv.store != nil {
		t.Error("empty DBPath should disable persistence")
	}
	if err := srv.Shutdown(); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}
}

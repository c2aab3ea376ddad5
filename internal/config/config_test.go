package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Remote != "origin" {
		t.Errorf("expected Remote=origin, got %s", cfg.Remote)
	}
	if len(cfg.RefSpecs) != 0 {
		t.Errorf("expected no default refspecs, got %v", cfg.RefSpecs)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Remote != "origin" {
		t.Errorf("expected Remote=origin, got %s", cfg.Remote)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := strings.Join([]string{
		"remote: upstream",
		"refspecs:",
		"  - refs/heads/main:refs/heads/main",
		"ssh:",
		"  private_key: /keys/id_ed25519",
		"  public_key: /keys/id_ed25519.pub",
		"token_file: /secrets/token",
	}, "\n")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Remote != "upstream" {
		t.Errorf("expected Remote=upstream, got %s", cfg.Remote)
	}
	if len(cfg.RefSpecs) != 1 || cfg.RefSpecs[0] != "refs/heads/main:refs/heads/main" {
		t.Errorf("unexpected refspecs %v", cfg.RefSpecs)
	}
	if cfg.SSH.PrivateKey != "/keys/id_ed25519" {
		t.Errorf("unexpected private key %s", cfg.SSH.PrivateKey)
	}
	if cfg.TokenFile != "/secrets/token" {
		t.Errorf("unexpected token file %s", cfg.TokenFile)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("remote: [broken"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed yaml")
	}
}

func TestResolveSSHKeys(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Default()

	private, public, err := cfg.ResolveSSHKeys("", "")
	if err != nil {
		t.Fatalf("ResolveSSHKeys failed: %v", err)
	}
	if private != filepath.Join(home, ".ssh", "id_rsa") {
		t.Errorf("unexpected private key fallback %s", private)
	}
	if public != filepath.Join(home, ".ssh", "id_rsa.pub") {
		t.Errorf("unexpected public key fallback %s", public)
	}

	private, public, err = cfg.ResolveSSHKeys("/k/priv", "/k/pub")
	if err != nil {
		t.Fatal(err)
	}
	if private != "/k/priv" || public != "/k/pub" {
		t.Errorf("explicit paths must win, got %s %s", private, public)
	}

	cfg.SSH = SSHConfig{PrivateKey: "/cfg/priv", PublicKey: "/cfg/pub"}
	private, public, err = cfg.ResolveSSHKeys("", "")
	if err != nil {
		t.Fatal(err)
	}
	if private != "/cfg/priv" || public != "/cfg/pub" {
		t.Errorf("config paths must fill the gaps, got %s %s", private, public)
	}
}

func TestResolveToken(t *testing.T) {
	t.Setenv(TokenEnv, "")

	tokenFile := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(tokenFile, []byte("from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := Default()

	token, err := cfg.ResolveToken("explicit", tokenFile)
	if err != nil {
		t.Fatal(err)
	}
	if token != "explicit" {
		t.Errorf("explicit token must win, got %q", token)
	}

	token, err = cfg.ResolveToken("", tokenFile)
	if err != nil {
		t.Fatal(err)
	}
	if token != "from-file" {
		t.Errorf("expected token from file, got %q", token)
	}

	t.Setenv(TokenEnv, "from-env")
	token, err = cfg.ResolveToken("", "")
	if err != nil {
		t.Fatal(err)
	}
	if token != "from-env" {
		t.Errorf("expected token from environment, got %q", token)
	}

	t.Setenv(TokenEnv, "")
	cfg.TokenFile = tokenFile
	token, err = cfg.ResolveToken("", "")
	if err != nil {
		t.Fatal(err)
	}
	if token != "from-file" {
		t.Errorf("expected token from config token file, got %q", token)
	}

	cfg.TokenFile = ""
	token, err = cfg.ResolveToken("", "")
	if err != nil {
		t.Fatal(err)
	}
	if token != "" {
		t.Errorf("expected empty token, got %q", token)
	}
}

func TestResolveTokenMissingFile(t *testing.T) {
	cfg := Default()
	if _, err := cfg.ResolveToken("", filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("expected an error for a missing token file")
	}
}

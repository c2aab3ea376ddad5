// Package config holds forgehub's optional defaults file and the resolution
// of SSH key paths and API tokens from flags, environment, and disk.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// TokenEnv is the environment variable consulted for an API token when no
// flag provides one.
const TokenEnv = "FORGEHUB_TOKEN"

// SSHConfig locates the keypair used for SSH transport.
type SSHConfig struct {
	PrivateKey string `yaml:"private_key"`
	PublicKey  string `yaml:"public_key"`
}

// Config is the defaults file, conventionally at
// ~/.config/forgehub/config.yaml. Every field is optional; flags override
// anything set here.
type Config struct {
	Remote    string    `yaml:"remote"`
	RefSpecs  []string  `yaml:"refspecs"`
	SSH       SSHConfig `yaml:"ssh"`
	TokenFile string    `yaml:"token_file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Remote: "origin",
	}
}

// DefaultPath returns the conventional location of the defaults file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "forgehub", "config.yaml"), nil
}

// Load reads the defaults file at path over the built-in defaults. A
// missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}

// ResolveSSHKeys fills in the keypair paths, falling back to
// ~/.ssh/id_rsa and ~/.ssh/id_rsa.pub. Explicit arguments win over the
// config file.
func (c *Config) ResolveSSHKeys(private, public string) (string, string, error) {
	if private == "" {
		private = c.SSH.PrivateKey
	}
	if public == "" {
		public = c.SSH.PublicKey
	}

	if private != "" && public != "" {
		return private, public, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", "", fmt.Errorf("resolve home directory: %w", err)
	}
	if private == "" {
		private = filepath.Join(home, ".ssh", "id_rsa")
	}
	if public == "" {
		public = filepath.Join(home, ".ssh", "id_rsa.pub")
	}
	return private, public, nil
}

// ResolveToken returns the API token, trying in order: the explicit token,
// the token file passed on the command line, the environment, and the
// config file's token file. An empty result means unauthenticated access.
func (c *Config) ResolveToken(token, tokenFile string) (string, error) {
	if token != "" {
		return token, nil
	}

	if tokenFile != "" {
		return readTokenFile(tokenFile)
	}

	if env := os.Getenv(TokenEnv); env != "" {
		return env, nil
	}

	if c.TokenFile != "" {
		return readTokenFile(c.TokenFile)
	}

	return "", nil
}

func readTokenFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read token file %q: %w", path, err)
	}

	token, _, _ := strings.Cut(string(data), "\n")
	return strings.TrimSpace(token), nil
}

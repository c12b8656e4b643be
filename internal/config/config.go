// Package config holds the brain's runtime configuration.
//
// Values are resolved from built-in defaults, then an optional YAML file, then
// command-line flags and their BRAIN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/4rgon4ut/StakingBrain/internal/ledger"
)

// Config holds every setting the brain needs to run.
type Config struct {
	// ListenAddress is the host:port the HTTP API listens on.
	ListenAddress string `yaml:"listenAddress" validate:"required"`

	// Signer

	// SignerURL is the web3signer base URL as reached by the brain.
	SignerURL string `yaml:"signerUrl" validate:"required,url"`

	// SignerURLFromValidator is the web3signer URL registered as remote key
	// location in the validating client. Empty means SignerURL.
	SignerURLFromValidator string `yaml:"signerUrlFromValidator" validate:"omitempty,url"`

	// SignerHost overrides the Host header sent to the signer, for signers that
	// only accept a fixed allow-listed hostname.
	SignerHost string `yaml:"signerHost"`

	// Validating client

	// ValidatorURL is the keymanager API base URL of the validating client.
	ValidatorURL string `yaml:"validatorUrl" validate:"required,url"`

	// ValidatorTokenFile holds the keymanager bearer token. Empty disables auth.
	ValidatorTokenFile string `yaml:"validatorTokenFile"`

	// Beacon node

	// BeaconURL is the beacon node API base URL.
	BeaconURL string `yaml:"beaconUrl" validate:"required,url"`

	// SlotsPerEpoch converts slots into epochs. Zero selects the mainnet preset.
	SlotsPerEpoch uint64 `yaml:"slotsPerEpoch"`

	// GenesisValidatorsRoot, when set, is used for exit signing instead of the
	// beacon node's value.
	GenesisValidatorsRoot string `yaml:"genesisValidatorsRoot" validate:"omitempty,hexadecimal"`

	// Ledger

	// LedgerPath is the directory of the credential ledger database.
	LedgerPath string `yaml:"ledgerPath" validate:"required"`

	// LedgerBackend selects the storage engine.
	LedgerBackend string `yaml:"ledgerBackend" validate:"required,oneof=pebble leveldb"`

	// Orchestration

	// ReconcileInterval is the period of the read-repair task.
	ReconcileInterval time.Duration `yaml:"reconcileInterval" validate:"gt=0"`

	// HTTPTimeout bounds every request to the signer, validating client and beacon node.
	HTTPTimeout time.Duration `yaml:"httpTimeout" validate:"gt=0"`

	// Concurrency limits per-item fan-out within a pipeline.
	Concurrency int `yaml:"concurrency" validate:"gte=1"`

	// Logging

	LogLevel  string `yaml:"logLevel" validate:"required,oneof=trace debug info warn error"`
	LogPretty bool   `yaml:"logPretty"`
}

// Default returns the built-in configuration. Service URLs are left empty and
// must be supplied.
func Default() Config {
	return Config{
		ListenAddress:     "0.0.0.0:5000",
		LedgerPath:        "brain-ledger",
		LedgerBackend:     ledger.BackendPebble,
		ReconcileInterval: time.Minute,
		HTTPTimeout:       30 * time.Second,
		Concurrency:       8,
		LogLevel:          zerolog.LevelInfoValue,
	}
}

// LoadFile overlays the YAML file at path onto cfg. Fields absent from the file
// keep their current value; unknown fields are rejected.
func LoadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config file %s: %w", path, err)
	}
	return nil
}

// Validate checks every field constraint.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// RemoteSignerURL returns the signer URL the validating client should use.
func (c Config) RemoteSignerURL() string {
	if c.SignerURLFromValidator != "" {
		return c.SignerURLFromValidator
	}
	return c.SignerURL
}

// Level returns the configured log level.
func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse log level: %w", err)
	}
	return level, nil
}

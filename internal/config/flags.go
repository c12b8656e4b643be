package config

import (
	"strings"

	"github.com/urfave/cli/v2"
)

const (
	FlagConfig                 = "config"
	FlagListenAddress          = "listen-address"
	FlagSignerURL              = "signer-url"
	FlagSignerURLFromValidator = "signer-url-from-validator"
	FlagSignerHost             = "signer-host"
	FlagValidatorURL           = "validator-url"
	FlagValidatorTokenFile     = "validator-token-file"
	FlagBeaconURL              = "beacon-url"
	FlagSlotsPerEpoch          = "slots-per-epoch"
	FlagGenesisValidatorsRoot  = "genesis-validators-root"
	FlagLedgerPath             = "ledger-path"
	FlagLedgerBackend          = "ledger-backend"
	FlagReconcileInterval      = "reconcile-interval"
	FlagHTTPTimeout            = "http-timeout"
	FlagConcurrency            = "concurrency"
	FlagLogLevel               = "log-level"
	FlagLogPretty              = "log-pretty"
)

// envVar returns the environment variable bound to a flag, e.g. BRAIN_SIGNER_URL.
func envVar(flag string) []string {
	return []string{"BRAIN_" + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))}
}

// Flags returns the command-line flags of every configuration field. Displayed
// defaults come from Default.
func Flags() []cli.Flag {
	d := Default()
	return []cli.Flag{
		&cli.PathFlag{Name: FlagConfig, Usage: "YAML configuration file", EnvVars: envVar(FlagConfig)},
		&cli.StringFlag{Name: FlagListenAddress, Usage: "host:port of the HTTP API", Value: d.ListenAddress, EnvVars: envVar(FlagListenAddress)},
		&cli.StringFlag{Name: FlagSignerURL, Usage: "web3signer base URL", EnvVars: envVar(FlagSignerURL)},
		&cli.StringFlag{Name: FlagSignerURLFromValidator, Usage: "web3signer URL as reached by the validating client", EnvVars: envVar(FlagSignerURLFromValidator)},
		&cli.StringFlag{Name: FlagSignerHost, Usage: "Host header sent to the signer", EnvVars: envVar(FlagSignerHost)},
		&cli.StringFlag{Name: FlagValidatorURL, Usage: "validating client keymanager API base URL", EnvVars: envVar(FlagValidatorURL)},
		&cli.PathFlag{Name: FlagValidatorTokenFile, Usage: "file holding the keymanager bearer token", EnvVars: envVar(FlagValidatorTokenFile)},
		&cli.StringFlag{Name: FlagBeaconURL, Usage: "beacon node API base URL", EnvVars: envVar(FlagBeaconURL)},
		&cli.Uint64Flag{Name: FlagSlotsPerEpoch, Usage: "slots per epoch, 0 for the mainnet preset", EnvVars: envVar(FlagSlotsPerEpoch)},
		&cli.StringFlag{Name: FlagGenesisValidatorsRoot, Usage: "genesis validators root used for exit signing", EnvVars: envVar(FlagGenesisValidatorsRoot)},
		&cli.PathFlag{Name: FlagLedgerPath, Usage: "credential ledger directory", Value: d.LedgerPath, EnvVars: envVar(FlagLedgerPath)},
		&cli.StringFlag{Name: FlagLedgerBackend, Usage: "credential ledger storage engine (pebble, leveldb)", Value: d.LedgerBackend, EnvVars: envVar(FlagLedgerBackend)},
		&cli.DurationFlag{Name: FlagReconcileInterval, Usage: "period of the read-repair task", Value: d.ReconcileInterval, EnvVars: envVar(FlagReconcileInterval)},
		&cli.DurationFlag{Name: FlagHTTPTimeout, Usage: "timeout of every outgoing request", Value: d.HTTPTimeout, EnvVars: envVar(FlagHTTPTimeout)},
		&cli.IntFlag{Name: FlagConcurrency, Usage: "per-item fan-out limit", Value: d.Concurrency, EnvVars: envVar(FlagConcurrency)},
		&cli.StringFlag{Name: FlagLogLevel, Usage: "trace, debug, info, warn or error", Value: d.LogLevel, EnvVars: envVar(FlagLogLevel)},
		&cli.BoolFlag{Name: FlagLogPretty, Usage: "human readable console logs", EnvVars: envVar(FlagLogPretty)},
	}
}

// Load resolves the configuration of a command invocation: defaults, then the
// --config file, then explicitly set flags and environment variables.
func Load(c *cli.Context) (Config, error) {
	cfg := Default()
	if path := c.Path(FlagConfig); path != "" {
		if err := LoadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	applyFlags(c, &cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyFlags copies every flag the user set onto cfg.
func applyFlags(c *cli.Context, cfg *Config) {
	stringFlags := []struct {
		name  string
		value *string
	}{
		{FlagListenAddress, &cfg.ListenAddress},
		{FlagSignerURL, &cfg.SignerURL},
		{FlagSignerURLFromValidator, &cfg.SignerURLFromValidator},
		{FlagSignerHost, &cfg.SignerHost},
		{FlagValidatorURL, &cfg.ValidatorURL},
		{FlagBeaconURL, &cfg.BeaconURL},
		{FlagGenesisValidatorsRoot, &cfg.GenesisValidatorsRoot},
		{FlagLedgerBackend, &cfg.LedgerBackend},
		{FlagLogLevel, &cfg.LogLevel},
	}
	for _, f := range stringFlags {
		if c.IsSet(f.name) {
			*f.value = c.String(f.name)
		}
	}

	pathFlags := []struct {
		name  string
		value *string
	}{
		{FlagValidatorTokenFile, &cfg.ValidatorTokenFile},
		{FlagLedgerPath, &cfg.LedgerPath},
	}
	for _, f := range pathFlags {
		if c.IsSet(f.name) {
			*f.value = c.Path(f.name)
		}
	}

	if c.IsSet(FlagSlotsPerEpoch) {
		cfg.SlotsPerEpoch = c.Uint64(FlagSlotsPerEpoch)
	}
	if c.IsSet(FlagReconcileInterval) {
		cfg.ReconcileInterval = c.Duration(FlagReconcileInterval)
	}
	if c.IsSet(FlagHTTPTimeout) {
		cfg.HTTPTimeout = c.Duration(FlagHTTPTimeout)
	}
	if c.IsSet(FlagConcurrency) {
		cfg.Concurrency = c.Int(FlagConcurrency)
	}
	if c.IsSet(FlagLogPretty) {
		cfg.LogPretty = c.Bool(FlagLogPretty)
	}
}

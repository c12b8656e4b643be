package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/4rgon4ut/StakingBrain/internal/api"
	"github.com/4rgon4ut/StakingBrain/internal/apiclients"
	"github.com/4rgon4ut/StakingBrain/internal/brain"
	"github.com/4rgon4ut/StakingBrain/internal/config"
	"github.com/4rgon4ut/StakingBrain/internal/gate"
	"github.com/4rgon4ut/StakingBrain/internal/ledger"
)

const shutdownTimeout = 30 * time.Second

var (
	_ brain.SignerAPI    = (*apiclients.Signer)(nil)
	_ brain.ValidatorAPI = (*apiclients.Validator)(nil)
	_ brain.BeaconAPI    = (*apiclients.Beacon)(nil)
	_ brain.Ledger       = (*ledger.Ledger)(nil)
	_ brain.Gate         = (*gate.Gate)(nil)
	_ api.Brain          = (*brain.Brain)(nil)
)

func main() {
	app := &cli.App{
		Name:   "brain",
		Usage:  "keep validator credentials consistent across the signer, the validating client and the beacon node",
		Flags:  config.Flags(),
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("brain stopped")
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load(c)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	logger.Info().
		Str("listen_address", cfg.ListenAddress).
		Str("signer_url", cfg.SignerURL).
		Str("validator_url", cfg.ValidatorURL).
		Str("beacon_url", cfg.BeaconURL).
		Str("ledger_backend", cfg.LedgerBackend).
		Dur("reconcile_interval", cfg.ReconcileInterval).
		Msg("starting brain")

	l, err := ledger.Open(logger, ledger.DefaultRegistry, cfg.LedgerBackend, cfg.LedgerPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := l.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close ledger")
		}
	}()

	signer, validatorClient, beacon, err := newClients(logger, cfg)
	if err != nil {
		return err
	}

	// The gate task needs the brain and the brain needs the gate.
	var b *brain.Brain
	g, err := gate.New(logger, cfg.ReconcileInterval, func(ctx context.Context) error {
		return b.Reconcile(ctx)
	})
	if err != nil {
		return fmt.Errorf("create reconciliation gate: %w", err)
	}
	defer g.Close()

	b, err = brain.New(logger, cfg.RemoteSignerURL(), brain.Services{
		Signer:    signer,
		Validator: validatorClient,
		Beacon:    beacon,
		Ledger:    l,
		Gate:      g,
	}, brain.WithConcurrency(cfg.Concurrency), brain.WithGenesisValidatorsRoot(cfg.GenesisValidatorsRoot))
	if err != nil {
		return fmt.Errorf("create brain: %w", err)
	}

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := signer.Upcheck(ctx); err != nil {
		logger.Warn().Err(err).Msg("signer is not reachable yet")
	}
	if err := g.Start(); err != nil {
		return fmt.Errorf("start reconciliation gate: %w", err)
	}

	server := api.NewServer(logger, cfg.ListenAddress, b, g)
	served := make(chan error, 1)
	go func() {
		served <- server.ListenAndServe()
	}()

	select {
	case err := <-served:
		return err
	case <-ctx.Done():
		logger.Info().Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown api: %w", err)
	}
	return <-served
}

// newLogger builds the process logger: JSON on stderr, or a console writer when pretty.
func newLogger(cfg config.Config) (zerolog.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return zerolog.Nop(), err
	}
	zerolog.SetGlobalLevel(level)

	logger := zerolog.New(os.Stderr)
	if cfg.LogPretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	return logger.With().Timestamp().Logger(), nil
}

func newClients(logger zerolog.Logger, cfg config.Config) (*apiclients.Signer, *apiclients.Validator, *apiclients.Beacon, error) {
	signerOpts := []apiclients.Option{apiclients.WithTimeout(cfg.HTTPTimeout)}
	if cfg.SignerHost != "" {
		signerOpts = append(signerOpts, apiclients.WithHost(cfg.SignerHost))
	}
	signer, err := apiclients.NewSigner(logger, cfg.SignerURL, signerOpts...)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create signer client: %w", err)
	}

	validatorOpts := []apiclients.Option{apiclients.WithTimeout(cfg.HTTPTimeout)}
	if cfg.ValidatorTokenFile != "" {
		token, err := apiclients.ReadBearerToken(cfg.ValidatorTokenFile)
		if err != nil {
			return nil, nil, nil, err
		}
		validatorOpts = append(validatorOpts, apiclients.WithBearerToken(token))
	}
	validatorClient, err := apiclients.NewValidator(logger, cfg.ValidatorURL, validatorOpts...)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create validator client: %w", err)
	}

	beacon, err := apiclients.NewBeacon(logger, cfg.BeaconURL, cfg.SlotsPerEpoch, apiclients.WithTimeout(cfg.HTTPTimeout))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create beacon client: %w", err)
	}
	return signer, validatorClient, beacon, nil
}

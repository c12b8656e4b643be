// Package brain orchestrates the validator credential lifecycle across the
// signer, the validating client, the beacon node and the credential ledger.
//
// Every mutation pipeline stops the reconciliation gate before its first
// external call and leaves the gate running when it returns, whatever the
// outcome. Steps run in a fixed order per pipeline; completed steps are never
// rolled back when a later step fails.
package brain

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds per-item fan-out when no limit is configured.
const DefaultConcurrency = 8

// ErrInvalidRequest wraps every rejection of caller input.
var ErrInvalidRequest = errors.New("invalid request")

// Config holds the orchestrator settings.
type Config struct {
	// SignerURL is the signer endpoint as reachable from the validating client.
	// Remote keys are registered pointing at it.
	SignerURL string `validate:"required,url"`

	// GenesisValidatorsRoot scopes exit signatures to a chain. When empty it is
	// fetched from the beacon node.
	GenesisValidatorsRoot string `validate:"omitempty,hexadecimal"`

	// Concurrency bounds the number of concurrent per-item calls.
	Concurrency int `validate:"gte=1"`
}

// Option modifies the orchestrator configuration.
type Option func(*Config)

// WithConcurrency bounds per-item fan-out to n concurrent calls.
func WithConcurrency(n int) Option {
	return func(cfg *Config) {
		cfg.Concurrency = n
	}
}

// WithGenesisValidatorsRoot pins the genesis validators root used to sign exits.
func WithGenesisValidatorsRoot(root string) Option {
	return func(cfg *Config) {
		cfg.GenesisValidatorsRoot = root
	}
}

// Services are the collaborators the orchestrator keeps consistent.
type Services struct {
	Signer    SignerAPI
	Validator ValidatorAPI
	Beacon    BeaconAPI
	Ledger    Ledger
	Gate      Gate
}

// Brain runs the import, update, delete and exit pipelines and the
// consistency read.
type Brain struct {
	logger zerolog.Logger
	cfg    Config

	signer    SignerAPI
	validator ValidatorAPI
	beacon    BeaconAPI
	ledger    Ledger
	gate      Gate
}

// New creates an orchestrator. Pipelines register remote keys pointing at signerURL.
func New(logger zerolog.Logger, signerURL string, services Services, opts ...Option) (*Brain, error) {
	cfg := Config{
		SignerURL:   signerURL,
		Concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid brain config: %w", err)
	}
	if services.Signer == nil || services.Validator == nil || services.Beacon == nil ||
		services.Ledger == nil || services.Gate == nil {
		return nil, errors.New("signer, validator, beacon, ledger and gate are all required")
	}

	return &Brain{
		logger:    logger.With().Str("component", "brain").Logger(),
		cfg:       cfg,
		signer:    services.Signer,
		validator: services.Validator,
		beacon:    services.Beacon,
		ledger:    services.Ledger,
		gate:      services.Gate,
	}, nil
}

// withGate runs fn with the reconciliation gate stopped.
//
// On success the gate is started again. On error or panic it is restarted and
// the failure is passed on unchanged.
func (b *Brain) withGate(pipeline string, fn func(logger zerolog.Logger) error) error {
	logger := b.logger.With().Str("pipeline", pipeline).Logger()

	if err := b.gate.Stop(); err != nil {
		b.gate.Restart()
		return fmt.Errorf("stop reconciliation: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("pipeline panicked, restarting reconciliation")
			b.gate.Restart()
			panic(r)
		}
	}()

	logger.Info().Msg("pipeline started")
	if err := fn(logger); err != nil {
		logger.Error().Err(err).Msg("pipeline failed, restarting reconciliation")
		b.gate.Restart()
		return err
	}

	if err := b.gate.Start(); err != nil {
		logger.Warn().Err(err).Msg("could not start reconciliation, restarting")
		b.gate.Restart()
	}
	logger.Info().Msg("pipeline completed")
	return nil
}

// forEach calls fn for every item, at most limit at a time, and waits for all
// of them. It returns the first error; the remaining items still run.
func forEach[T any](limit int, items []T, fn func(item T) error) error {
	var g errgroup.Group
	g.SetLimit(limit)
	for _, item := range items {
		g.Go(func() error {
			return fn(item)
		})
	}
	return g.Wait()
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
}

// detach keeps pipelines running when the caller goes away.
func detach(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}

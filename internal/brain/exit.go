package brain

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/prysmaticlabs/prysm/v5/api/server/structs"
	"github.com/prysmaticlabs/prysm/v5/consensus-types/primitives"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/4rgon4ut/StakingBrain/internal/model"
	"github.com/4rgon4ut/StakingBrain/internal/utils"
)

// exitTarget is a validator to exit together with its beacon chain index.
type exitTarget struct {
	pubkey string
	index  primitives.ValidatorIndex
}

// exitDomain is the chain context every exit of a batch is signed in.
type exitDomain struct {
	epoch    primitives.Epoch
	forkInfo model.ForkInfo
}

// ExitValidators voluntarily exits validators and then removes them from
// management.
//
// Every exit is signed and submitted before anything is removed: remote keys
// are deregistered from the validating client (failures logged), keystores are
// deleted from the signer, and the ledger is cleared last. Any failure to
// resolve, sign or submit an exit aborts the pipeline with nothing removed.
func (b *Brain) ExitValidators(ctx context.Context, req model.ExitRequest) error {
	ctx = detach(ctx)

	return b.withGate("exit", func(logger zerolog.Logger) error {
		pubkeys, err := req.Validate()
		if err != nil {
			return invalid(err)
		}

		domain, targets, err := b.resolveExits(ctx, pubkeys)
		if err != nil {
			return fmt.Errorf("resolve exits: %w", err)
		}

		err = forEach(b.cfg.Concurrency, targets, func(target exitTarget) error {
			return b.submitExit(ctx, logger, domain, target)
		})
		if err != nil {
			return err
		}

		b.deleteRemoteKeys(ctx, logger, pubkeys)

		resp, err := b.signer.DeleteKeystores(ctx, model.DeleteKeystoresRequest{Pubkeys: pubkeys})
		if err != nil {
			return fmt.Errorf("delete keystores: %w", err)
		}
		if resp == nil {
			return errors.New("signer returned no delete results")
		}
		logStatuses(logger, "signer failed to delete keystore", pubkeys, resp.Data)

		if err := b.ledger.DeleteValidators(pubkeys); err != nil {
			return fmt.Errorf("delete validators from ledger: %w", err)
		}
		logger.Info().Int("exited", len(pubkeys)).Uint64("epoch", uint64(domain.epoch)).Msg("validators exited")
		return nil
	})
}

// resolveExits queries the current epoch, fork, genesis validators root and
// the index of every validator concurrently.
func (b *Brain) resolveExits(ctx context.Context, pubkeys []string) (exitDomain, []exitTarget, error) {
	var (
		domain  exitDomain
		targets = make([]exitTarget, len(pubkeys))
		g       errgroup.Group
	)
	g.SetLimit(b.cfg.Concurrency + 3)

	g.Go(func() error {
		epoch, err := b.beacon.GetCurrentEpoch(ctx)
		if err != nil {
			return fmt.Errorf("get current epoch: %w", err)
		}
		domain.epoch = epoch
		return nil
	})
	g.Go(func() error {
		fork, err := b.beacon.GetForkFromState(ctx, model.StateHead)
		if err != nil {
			return fmt.Errorf("get fork: %w", err)
		}
		domain.forkInfo.Fork = fork
		return nil
	})
	g.Go(func() error {
		root, err := b.genesisValidatorsRoot(ctx)
		if err != nil {
			return err
		}
		domain.forkInfo.GenesisValidatorsRoot = root
		return nil
	})
	for i, pubkey := range pubkeys {
		g.Go(func() error {
			container, err := b.beacon.GetValidatorFromState(ctx, model.StateHead, pubkey)
			if err != nil {
				return fmt.Errorf("get index of %s: %w", utils.ShortenPubkey(pubkey), err)
			}
			index, err := strconv.ParseUint(container.Index, 10, 64)
			if err != nil {
				return fmt.Errorf("parse index %q of %s: %w", container.Index, utils.ShortenPubkey(pubkey), err)
			}
			targets[i] = exitTarget{pubkey: pubkey, index: primitives.ValidatorIndex(index)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return exitDomain{}, nil, err
	}
	return domain, targets, nil
}

// genesisValidatorsRoot returns the configured root, or the beacon node's.
func (b *Brain) genesisValidatorsRoot(ctx context.Context) (string, error) {
	if b.cfg.GenesisValidatorsRoot != "" {
		return utils.Prefix0x(b.cfg.GenesisValidatorsRoot), nil
	}
	genesis, err := b.beacon.GetGenesis(ctx)
	if err != nil {
		return "", fmt.Errorf("get genesis: %w", err)
	}
	if genesis.GenesisValidatorsRoot == "" {
		return "", fmt.Errorf("beacon node reported an empty genesis validators root")
	}
	return genesis.GenesisValidatorsRoot, nil
}

// submitExit signs the voluntary exit of target and submits it to the beacon node.
func (b *Brain) submitExit(ctx context.Context, logger zerolog.Logger, domain exitDomain, target exitTarget) error {
	exit := &structs.VoluntaryExit{
		Epoch:          strconv.FormatUint(uint64(domain.epoch), 10),
		ValidatorIndex: strconv.FormatUint(uint64(target.index), 10),
	}

	signature, err := b.signer.SignVoluntaryExit(ctx, target.pubkey, model.VoluntaryExitSigningRequest{
		ForkInfo:      domain.forkInfo,
		VoluntaryExit: exit,
	})
	if err != nil {
		return fmt.Errorf("sign exit of %s: %w", utils.ShortenPubkey(target.pubkey), err)
	}

	if err := b.beacon.PostVoluntaryExits(ctx, &structs.SignedVoluntaryExit{
		Message:   exit,
		Signature: signature,
	}); err != nil {
		return fmt.Errorf("submit exit of %s: %w", utils.ShortenPubkey(target.pubkey), err)
	}

	logger.Info().
		Str("pubkey", utils.ShortenPubkey(target.pubkey)).
		Uint64("validator_index", uint64(target.index)).
		Msg("voluntary exit submitted")
	return nil
}

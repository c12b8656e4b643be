package apiclients

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/prysmaticlabs/prysm/v5/api/server/structs"
	"github.com/prysmaticlabs/prysm/v5/config/params"
	"github.com/prysmaticlabs/prysm/v5/consensus-types/primitives"
	"github.com/rs/zerolog"

	"github.com/4rgon4ut/StakingBrain/internal/model"
	"github.com/4rgon4ut/StakingBrain/internal/utils"
)

// Beacon is a client of the beacon node API.
type Beacon struct {
	*StandardAPI
	slotsPerEpoch primitives.Slot
}

// NewBeacon creates a beacon node client for baseURL.
//
// slotsPerEpoch converts the head slot into the current epoch; zero selects the
// mainnet preset.
func NewBeacon(logger zerolog.Logger, baseURL string, slotsPerEpoch uint64, opts ...Option) (*Beacon, error) {
	api, err := NewStandardAPI(logger, "beacon-api", baseURL, opts...)
	if err != nil {
		return nil, err
	}

	spe := primitives.Slot(slotsPerEpoch)
	if spe == 0 {
		spe = params.BeaconConfig().SlotsPerEpoch
	}
	return &Beacon{StandardAPI: api, slotsPerEpoch: spe}, nil
}

// GetCurrentEpoch returns the epoch of the head slot.
func (b *Beacon) GetCurrentEpoch(ctx context.Context) (primitives.Epoch, error) {
	var resp structs.GetBlockHeaderResponse
	if err := b.request(ctx, http.MethodGet, model.HeadHeaderPath, nil, &resp); err != nil {
		return 0, fmt.Errorf("get head header from %s: %w", b.Hostname(), err)
	}
	if resp.Data == nil || resp.Data.Header == nil || resp.Data.Header.Message == nil {
		return 0, fmt.Errorf("get head header from %s: empty response", b.Hostname())
	}

	slot, err := strconv.ParseUint(resp.Data.Header.Message.Slot, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse head slot %q: %w", resp.Data.Header.Message.Slot, err)
	}
	return primitives.Epoch(slot / uint64(b.slotsPerEpoch)), nil
}

// GetForkFromState returns the fork of the given state.
func (b *Beacon) GetForkFromState(ctx context.Context, stateID string) (*structs.Fork, error) {
	var resp structs.GetStateForkResponse
	path := fmt.Sprintf(model.StateForkPathFmt, stateID)
	if err := b.request(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get fork of state %s from %s: %w", stateID, b.Hostname(), err)
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("get fork of state %s from %s: empty response", stateID, b.Hostname())
	}
	return resp.Data, nil
}

// GetGenesis returns the chain genesis, including the genesis validators root.
func (b *Beacon) GetGenesis(ctx context.Context) (*structs.Genesis, error) {
	var resp structs.GetGenesisResponse
	if err := b.request(ctx, http.MethodGet, model.GenesisPath, nil, &resp); err != nil {
		return nil, fmt.Errorf("get genesis from %s: %w", b.Hostname(), err)
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("get genesis from %s: empty response", b.Hostname())
	}
	return resp.Data, nil
}

// GetValidatorFromState returns the validator with the given pubkey in the given state.
func (b *Beacon) GetValidatorFromState(ctx context.Context, stateID, pubkey string) (*structs.ValidatorContainer, error) {
	var resp structs.GetValidatorResponse
	path := fmt.Sprintf(model.StateValidatorPathFmt, stateID, utils.Prefix0x(pubkey))
	if err := b.request(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get validator %s from %s: %w", utils.ShortenPubkey(pubkey), b.Hostname(), err)
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("get validator %s from %s: empty response", utils.ShortenPubkey(pubkey), b.Hostname())
	}
	return resp.Data, nil
}

// PostVoluntaryExits submits a signed voluntary exit to the beacon node pool.
func (b *Beacon) PostVoluntaryExits(ctx context.Context, exit *structs.SignedVoluntaryExit) error {
	if err := b.request(ctx, http.MethodPost, model.VoluntaryExitsPath, exit, nil); err != nil {
		return fmt.Errorf("post voluntary exit to %s: %w", b.Hostname(), err)
	}
	return nil
}

package apiclients

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/4rgon4ut/StakingBrain/internal/model"
	"github.com/4rgon4ut/StakingBrain/internal/utils"
)

// Validator is a client of the validating client keymanager API.
type Validator struct {
	*StandardAPI
}

// NewValidator creates a keymanager client for the validating client at baseURL.
func NewValidator(logger zerolog.Logger, baseURL string, opts ...Option) (*Validator, error) {
	api, err := NewStandardAPI(logger, "validator-api", baseURL, opts...)
	if err != nil {
		return nil, err
	}
	return &Validator{StandardAPI: api}, nil
}

// GetRemoteKeys lists the remote keys registered on the validating client.
// https://ethereum.github.io/keymanager-APIs/#/Remote%20Key%20Manager/listRemoteKeys
func (v *Validator) GetRemoteKeys(ctx context.Context) ([]model.RemoteKey, error) {
	var resp model.RemoteKeysResponse
	if err := v.request(ctx, http.MethodGet, model.RemoteKeysPath, nil, &resp); err != nil {
		return nil, fmt.Errorf("get remote keys from %s: %w", v.Hostname(), err)
	}
	return resp.Data, nil
}

// PostRemoteKeys registers remote keys on the validating client.
// https://ethereum.github.io/keymanager-APIs/#/Remote%20Key%20Manager/importRemoteKeys
func (v *Validator) PostRemoteKeys(ctx context.Context, keys []model.RemoteKey) ([]model.KeystoreStatus, error) {
	req := model.PostRemoteKeysRequest{RemoteKeys: make([]model.RemoteKey, len(keys))}
	for i, key := range keys {
		key.Pubkey = utils.Prefix0x(key.Pubkey)
		req.RemoteKeys[i] = key
	}

	var resp model.StatusesResponse
	if err := v.request(ctx, http.MethodPost, model.RemoteKeysPath, req, &resp); err != nil {
		return nil, fmt.Errorf("post remote keys to %s: %w", v.Hostname(), err)
	}
	return resp.Data, nil
}

// DeleteRemoteKeys removes remote key registrations from the validating client.
// https://ethereum.github.io/keymanager-APIs/#/Remote%20Key%20Manager/deleteRemoteKeys
func (v *Validator) DeleteRemoteKeys(ctx context.Context, pubkeys []string) ([]model.KeystoreStatus, error) {
	req := model.DeleteRemoteKeysRequest{Pubkeys: make([]string, len(pubkeys))}
	for i, pubkey := range pubkeys {
		req.Pubkeys[i] = utils.Prefix0x(pubkey)
	}

	var resp model.StatusesResponse
	if err := v.request(ctx, http.MethodDelete, model.RemoteKeysPath, req, &resp); err != nil {
		return nil, fmt.Errorf("delete remote keys from %s: %w", v.Hostname(), err)
	}
	return resp.Data, nil
}

// GetFeeRecipient returns the fee recipient the validating client uses for pubkey.
// https://ethereum.github.io/keymanager-APIs/#/Fee%20Recipient/listFeeRecipient
func (v *Validator) GetFeeRecipient(ctx context.Context, pubkey string) (string, error) {
	var resp model.FeeRecipientResponse
	if err := v.request(ctx, http.MethodGet, feeRecipientPath(pubkey), nil, &resp); err != nil {
		return "", fmt.Errorf("get fee recipient of %s from %s: %w", utils.ShortenPubkey(pubkey), v.Hostname(), err)
	}
	return resp.Data.Ethaddress, nil
}

// SetFeeRecipient sets the fee recipient the validating client uses for pubkey.
// https://ethereum.github.io/keymanager-APIs/#/Fee%20Recipient/setFeeRecipient
func (v *Validator) SetFeeRecipient(ctx context.Context, pubkey, feeRecipient string) error {
	req := model.SetFeeRecipientRequest{Ethaddress: feeRecipient}
	if err := v.request(ctx, http.MethodPost, feeRecipientPath(pubkey), req, nil); err != nil {
		return fmt.Errorf("set fee recipient of %s to %s on %s: %w", utils.ShortenPubkey(pubkey), feeRecipient, v.Hostname(), err)
	}
	return nil
}

// DeleteFeeRecipient removes the fee recipient override of pubkey.
// https://ethereum.github.io/keymanager-APIs/#/Fee%20Recipient/deleteFeeRecipient
func (v *Validator) DeleteFeeRecipient(ctx context.Context, pubkey string) error {
	if err := v.request(ctx, http.MethodDelete, feeRecipientPath(pubkey), nil, nil); err != nil {
		return fmt.Errorf("delete fee recipient of %s on %s: %w", utils.ShortenPubkey(pubkey), v.Hostname(), err)
	}
	return nil
}

func feeRecipientPath(pubkey string) string {
	return fmt.Sprintf(model.FeeRecipientPathFmt, utils.Prefix0x(pubkey))
}

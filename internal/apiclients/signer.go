package apiclients

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/4rgon4ut/StakingBrain/internal/model"
	"github.com/4rgon4ut/StakingBrain/internal/utils"
)

// Signer is a client of the web3signer custody service.
type Signer struct {
	*StandardAPI
}

// NewSigner creates a web3signer client for baseURL.
func NewSigner(logger zerolog.Logger, baseURL string, opts ...Option) (*Signer, error) {
	api, err := NewStandardAPI(logger, "signer-api", baseURL, opts...)
	if err != nil {
		return nil, err
	}
	return &Signer{StandardAPI: api}, nil
}

// ImportKeystores imports keystores and their passwords, optionally with a
// slashing protection interchange document.
//
// The signer reports success per keystore: a nil error does not mean every
// keystore was imported.
// https://ethereum.github.io/keymanager-APIs/#/Local%20Key%20Manager/importKeystores
func (s *Signer) ImportKeystores(ctx context.Context, req model.ImportKeystoresRequest) (*model.ImportKeystoresResponse, error) {
	var resp model.ImportKeystoresResponse
	if err := s.request(ctx, http.MethodPost, model.KeystoresPath, req, &resp); err != nil {
		return nil, fmt.Errorf("import keystores on %s: %w", s.Hostname(), err)
	}
	return &resp, nil
}

// DeleteKeystores deletes the keystores of the given pubkeys and returns their
// slashing protection data.
// https://ethereum.github.io/keymanager-APIs/#/Local%20Key%20Manager/deleteKeys
func (s *Signer) DeleteKeystores(ctx context.Context, req model.DeleteKeystoresRequest) (*model.DeleteKeystoresResponse, error) {
	prefixed := model.DeleteKeystoresRequest{Pubkeys: make([]string, len(req.Pubkeys))}
	for i, pubkey := range req.Pubkeys {
		prefixed.Pubkeys[i] = utils.Prefix0x(pubkey)
	}

	var resp model.DeleteKeystoresResponse
	if err := s.request(ctx, http.MethodDelete, model.KeystoresPath, prefixed, &resp); err != nil {
		return nil, fmt.Errorf("delete keystores on %s: %w", s.Hostname(), err)
	}
	return &resp, nil
}

// ListKeystores lists the keystores held by the signer.
func (s *Signer) ListKeystores(ctx context.Context) ([]model.Keystore, error) {
	var resp model.ListKeystoresResponse
	if err := s.request(ctx, http.MethodGet, model.KeystoresPath, nil, &resp); err != nil {
		return nil, fmt.Errorf("list keystores on %s: %w", s.Hostname(), err)
	}
	return resp.Data, nil
}

// SignVoluntaryExit asks the signer for the voluntary exit signature of the
// validator identified by pubkey.
func (s *Signer) SignVoluntaryExit(ctx context.Context, pubkey string, req model.VoluntaryExitSigningRequest) (string, error) {
	req.Type = model.SigningTypeVoluntaryExit

	var resp model.SignatureResponse
	path := fmt.Sprintf(model.SignPathFmt, utils.Prefix0x(pubkey))
	if err := s.request(ctx, http.MethodPost, path, req, &resp); err != nil {
		return "", fmt.Errorf("sign voluntary exit for %s on %s: %w", utils.ShortenPubkey(pubkey), s.Hostname(), err)
	}
	if resp.Signature == "" {
		return "", fmt.Errorf("sign voluntary exit for %s: empty signature", utils.ShortenPubkey(pubkey))
	}
	return resp.Signature, nil
}

// Upcheck returns nil when the signer is up.
func (s *Signer) Upcheck(ctx context.Context) error {
	if err := s.request(ctx, http.MethodGet, model.UpcheckPath, nil, nil); err != nil {
		return fmt.Errorf("upcheck %s: %w", s.Hostname(), err)
	}
	return nil
}

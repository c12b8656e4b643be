package model

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-playground/validator/v10"

	"github.com/4rgon4ut/StakingBrain/internal/utils"
)

// PubkeyLength is the byte length of a BLS12-381 validator public key.
const PubkeyLength = 48

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("validator_tag", func(fl validator.FieldLevel) bool {
		return Tag(fl.Field().String()).Valid()
	}); err != nil {
		panic(fmt.Sprintf("register validator_tag: %v", err))
	}
	if err := v.RegisterValidation("bls_pubkey", func(fl validator.FieldLevel) bool {
		return ValidPubkey(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register bls_pubkey: %v", err))
	}
	return v
}

// ValidPubkey reports whether pubkey is a hex encoded BLS public key, with or without 0x prefix.
func ValidPubkey(pubkey string) bool {
	b, err := hexutil.Decode(utils.NormalizePubkey(pubkey))
	return err == nil && len(b) == PubkeyLength
}

// KeystorePubkey extracts the public key of an EIP-2335 keystore.
// The returned key is normalized.
func KeystorePubkey(keystore string) (string, error) {
	var ks struct {
		Pubkey string `json:"pubkey"`
	}
	if err := json.Unmarshal([]byte(keystore), &ks); err != nil {
		return "", fmt.Errorf("decode keystore: %w", err)
	}
	if !ValidPubkey(ks.Pubkey) {
		return "", fmt.Errorf("keystore pubkey %q is not a valid public key", ks.Pubkey)
	}
	return utils.NormalizePubkey(ks.Pubkey), nil
}

// ImportRequest is a batch of keystores to import together with the
// configuration each resulting credential is created with. Slices are
// index-aligned.
type ImportRequest struct {
	Keystores          []string     `json:"keystores" validate:"required,min=1"`
	Passwords          []string     `json:"passwords" validate:"required,min=1"`
	SlashingProtection string       `json:"slashing_protection,omitempty"`
	Tags               []Tag        `json:"tags" validate:"required,min=1,dive,validator_tag"`
	FeeRecipients      []string     `json:"feeRecipients" validate:"required,min=1,dive,eth_addr"`
	ImportFrom         ImportSource `json:"importFrom" validate:"required,oneof=ui api"`
}

// Validate checks the request and returns the public keys of its keystores in batch order.
func (r ImportRequest) Validate() ([]string, error) {
	if err := validate.Struct(r); err != nil {
		return nil, err
	}
	n := len(r.Keystores)
	if len(r.Passwords) != n || len(r.Tags) != n || len(r.FeeRecipients) != n {
		return nil, fmt.Errorf("keystores, passwords, tags and feeRecipients must have the same length, got %d, %d, %d, %d",
			n, len(r.Passwords), len(r.Tags), len(r.FeeRecipients))
	}

	pubkeys := make([]string, n)
	seen := make(map[string]struct{}, n)
	for i, keystore := range r.Keystores {
		pubkey, err := KeystorePubkey(keystore)
		if err != nil {
			return nil, fmt.Errorf("keystore %d: %w", i, err)
		}
		if _, dup := seen[pubkey]; dup {
			return nil, fmt.Errorf("keystore %d: pubkey %s appears more than once", i, utils.ShortenPubkey(pubkey))
		}
		seen[pubkey] = struct{}{}
		pubkeys[i] = pubkey
	}
	return pubkeys, nil
}

// UpdateRequest changes tags and fee recipients of existing credentials. Slices are index-aligned.
type UpdateRequest struct {
	Pubkeys       []string `json:"pubkeys" validate:"required,min=1,dive,bls_pubkey"`
	FeeRecipients []string `json:"feeRecipients" validate:"required,min=1,dive,eth_addr"`
	Tags          []Tag    `json:"tags" validate:"required,min=1,dive,validator_tag"`
}

// Validate checks the request and returns the updated records, automatic import left unset.
func (r UpdateRequest) Validate() ([]Validator, error) {
	if err := validate.Struct(r); err != nil {
		return nil, err
	}
	if len(r.FeeRecipients) != len(r.Pubkeys) || len(r.Tags) != len(r.Pubkeys) {
		return nil, fmt.Errorf("pubkeys, feeRecipients and tags must have the same length, got %d, %d, %d",
			len(r.Pubkeys), len(r.FeeRecipients), len(r.Tags))
	}

	validators := make([]Validator, len(r.Pubkeys))
	seen := make(map[string]struct{}, len(r.Pubkeys))
	for i, pubkey := range r.Pubkeys {
		pubkey = utils.NormalizePubkey(pubkey)
		if _, dup := seen[pubkey]; dup {
			return nil, fmt.Errorf("pubkey %d: %s appears more than once", i, utils.ShortenPubkey(pubkey))
		}
		seen[pubkey] = struct{}{}
		validators[i] = Validator{
			Pubkey:       pubkey,
			Tag:          r.Tags[i],
			FeeRecipient: r.FeeRecipients[i],
		}
	}
	return validators, nil
}

// PubkeysRequest identifies the credentials a delete or exit operates on.
type PubkeysRequest struct {
	Pubkeys []string `json:"pubkeys" validate:"required,min=1,dive,bls_pubkey"`
}

// DeleteRequest asks for credentials to be removed from every service.
type DeleteRequest = PubkeysRequest

// ExitRequest asks for validators to be voluntarily exited and then removed.
type ExitRequest = PubkeysRequest

// Validate checks the request and returns the normalized public keys.
func (r PubkeysRequest) Validate() ([]string, error) {
	if err := validate.Struct(r); err != nil {
		return nil, err
	}
	pubkeys := make([]string, len(r.Pubkeys))
	seen := make(map[string]struct{}, len(r.Pubkeys))
	for i, pubkey := range r.Pubkeys {
		pubkey = utils.NormalizePubkey(pubkey)
		if _, dup := seen[pubkey]; dup {
			return nil, fmt.Errorf("pubkey %d: %s appears more than once", i, utils.ShortenPubkey(pubkey))
		}
		seen[pubkey] = struct{}{}
		pubkeys[i] = pubkey
	}
	return pubkeys, nil
}

package brain

import (
	"context"

	"github.com/prysmaticlabs/prysm/v5/api/server/structs"
	"github.com/prysmaticlabs/prysm/v5/consensus-types/primitives"

	"github.com/4rgon4ut/StakingBrain/internal/model"
)

// SignerAPI is the key custody service.
type SignerAPI interface {
	// ImportKeystores imports a keystore batch. Success is reported per item in
	// the response; an error means the batch call itself failed.
	ImportKeystores(ctx context.Context, req model.ImportKeystoresRequest) (*model.ImportKeystoresResponse, error)
	DeleteKeystores(ctx context.Context, req model.DeleteKeystoresRequest) (*model.DeleteKeystoresResponse, error)
	SignVoluntaryExit(ctx context.Context, pubkey string, req model.VoluntaryExitSigningRequest) (string, error)
}

// ValidatorAPI is the keymanager API of the validating client.
type ValidatorAPI interface {
	GetRemoteKeys(ctx context.Context) ([]model.RemoteKey, error)
	PostRemoteKeys(ctx context.Context, keys []model.RemoteKey) ([]model.KeystoreStatus, error)
	DeleteRemoteKeys(ctx context.Context, pubkeys []string) ([]model.KeystoreStatus, error)
	GetFeeRecipient(ctx context.Context, pubkey string) (string, error)
	SetFeeRecipient(ctx context.Context, pubkey string, feeRecipient string) error
	DeleteFeeRecipient(ctx context.Context, pubkey string) error
}

// BeaconAPI is the beacon node API.
type BeaconAPI interface {
	GetCurrentEpoch(ctx context.Context) (primitives.Epoch, error)
	GetForkFromState(ctx context.Context, stateID string) (*structs.Fork, error)
	GetGenesis(ctx context.Context) (*structs.Genesis, error)
	GetValidatorFromState(ctx context.Context, stateID string, pubkey string) (*structs.ValidatorContainer, error)
	PostVoluntaryExits(ctx context.Context, exit *structs.SignedVoluntaryExit) error
}

// Ledger is the authoritative record of managed credentials. Implementations
// serialize their own writes.
type Ledger interface {
	AddValidators(validators []model.Validator) error
	UpdateValidators(validators []model.Validator) error
	DeleteValidators(pubkeys []string) error
	Data() (map[string]model.Validator, error)
}

// Gate is the reconciliation scheduler every pipeline claims while it runs.
type Gate interface {
	Stop() error
	Start() error
	// Restart must leave the gate running whatever its state.
	Restart()
}

package model

import "github.com/prysmaticlabs/prysm/v5/api/server/structs"

// Status is the per-item outcome reported by keymanager endpoints.
type Status string

const (
	StatusImported  Status = "imported"
	StatusDuplicate Status = "duplicate"
	StatusDeleted   Status = "deleted"
	StatusNotActive Status = "not_active"
	StatusNotFound  Status = "not_found"
	StatusError     Status = "error"
)

// Failed reports whether the item was rejected by the service.
func (s Status) Failed() bool {
	return s == StatusError
}

// KeystoreStatus is the outcome of one item of a keymanager batch call.
type KeystoreStatus struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// ImportKeystoresRequest is the body of POST /eth/v1/keystores.
type ImportKeystoresRequest struct {
	Keystores          []string `json:"keystores"`
	Passwords          []string `json:"passwords"`
	SlashingProtection string   `json:"slashing_protection,omitempty"`
}

// ImportKeystoresResponse holds one status per submitted keystore, in request order.
type ImportKeystoresResponse struct {
	Data []KeystoreStatus `json:"data"`
}

// DeleteKeystoresRequest is the body of DELETE /eth/v1/keystores.
type DeleteKeystoresRequest struct {
	Pubkeys []string `json:"pubkeys"`
}

// DeleteKeystoresResponse holds one status per requested pubkey and the
// slashing protection interchange data of the deleted keys.
type DeleteKeystoresResponse struct {
	Data               []KeystoreStatus `json:"data"`
	SlashingProtection string           `json:"slashing_protection,omitempty"`
}

// Keystore is a keystore held by the signer.
type Keystore struct {
	ValidatingPubkey string `json:"validating_pubkey"`
	DerivationPath   string `json:"derivation_path,omitempty"`
	Readonly         bool   `json:"readonly,omitempty"`
}

// ListKeystoresResponse is the body returned by GET /eth/v1/keystores.
type ListKeystoresResponse struct {
	Data []Keystore `json:"data"`
}

// RemoteKey points a validator public key at a signer endpoint.
type RemoteKey struct {
	Pubkey   string `json:"pubkey"`
	URL      string `json:"url"`
	Readonly bool   `json:"readonly,omitempty"`
}

// RemoteKeysResponse is the body returned by GET /eth/v1/remotekeys.
type RemoteKeysResponse struct {
	Data []RemoteKey `json:"data"`
}

// PostRemoteKeysRequest is the body of POST /eth/v1/remotekeys.
type PostRemoteKeysRequest struct {
	RemoteKeys []RemoteKey `json:"remote_keys"`
}

// DeleteRemoteKeysRequest is the body of DELETE /eth/v1/remotekeys.
type DeleteRemoteKeysRequest struct {
	Pubkeys []string `json:"pubkeys"`
}

// StatusesResponse is the body returned by batch remote key mutations.
type StatusesResponse struct {
	Data []KeystoreStatus `json:"data"`
}

// FeeRecipient maps a validator public key to its fee recipient address.
type FeeRecipient struct {
	Pubkey     string `json:"pubkey"`
	Ethaddress string `json:"ethaddress"`
}

// FeeRecipientResponse is the body returned by GET /eth/v1/validator/{pubkey}/feerecipient.
type FeeRecipientResponse struct {
	Data FeeRecipient `json:"data"`
}

// SetFeeRecipientRequest is the body of POST /eth/v1/validator/{pubkey}/feerecipient.
type SetFeeRecipientRequest struct {
	Ethaddress string `json:"ethaddress"`
}

// ErrorResponse is the error body returned by keymanager and beacon endpoints.
type ErrorResponse struct {
	Code    int    `json:"code,omitempty"`
	Message string `json:"message"`
}

// ForkInfo scopes a signing request to a fork of a specific chain.
type ForkInfo struct {
	Fork                  *structs.Fork `json:"fork"`
	GenesisValidatorsRoot string        `json:"genesis_validators_root"`
}

// VoluntaryExitSigningRequest is the web3signer body requesting a voluntary exit signature.
type VoluntaryExitSigningRequest struct {
	Type          string                 `json:"type"`
	ForkInfo      ForkInfo               `json:"fork_info"`
	VoluntaryExit *structs.VoluntaryExit `json:"voluntary_exit"`
}

// SignatureResponse is the web3signer signing result.
type SignatureResponse struct {
	Signature string `json:"signature"`
}

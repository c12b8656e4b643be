package model

const (
	// KeystoresPath is the keymanager route for listing, importing and deleting keystores.
	KeystoresPath = "/eth/v1/keystores"

	// RemoteKeysPath is the keymanager route for validator client remote key registrations.
	RemoteKeysPath = "/eth/v1/remotekeys"

	// FeeRecipientPathFmt is the keymanager route for a single validator's fee recipient.
	// The single verb is the 0x-prefixed public key.
	FeeRecipientPathFmt = "/eth/v1/validator/%s/feerecipient"

	// SignPathFmt is the web3signer route producing a signature for the given public key.
	SignPathFmt = "/api/v1/eth2/sign/%s"

	// UpcheckPath is the web3signer liveness route.
	UpcheckPath = "/upcheck"

	// GenesisPath returns the chain genesis, including the genesis validators root.
	GenesisPath = "/eth/v1/beacon/genesis"

	// HeadHeaderPath returns the block header at the head of the chain.
	HeadHeaderPath = "/eth/v1/beacon/headers/head"

	// StateForkPathFmt returns the fork of the given state id.
	StateForkPathFmt = "/eth/v1/beacon/states/%s/fork"

	// StateValidatorPathFmt returns a validator of the given state id by index or public key.
	StateValidatorPathFmt = "/eth/v1/beacon/states/%s/validators/%s"

	// VoluntaryExitsPath is the beacon pool route accepting signed voluntary exits.
	VoluntaryExitsPath = "/eth/v1/beacon/pool/voluntary_exits"

	// StateHead is the state identifier of the current chain head.
	StateHead = "head"

	// SigningTypeVoluntaryExit is the web3signer signing type for voluntary exits.
	SigningTypeVoluntaryExit = "VOLUNTARY_EXIT"
)

package model

// Validator is the ledger record of a managed validator credential.
//
// Pubkey is the sole identity of a record and never changes once written.
// Tag and FeeRecipient are always set together.
type Validator struct {
	Pubkey          string `json:"pubkey"`
	Tag             Tag    `json:"tag"`
	FeeRecipient    string `json:"feeRecipient"`
	AutomaticImport bool   `json:"automaticImport"`
}

// ValidatorStatus is a ledger record cross-referenced against the live state of
// the validating client.
type ValidatorStatus struct {
	Pubkey       string `json:"pubkey"`
	Tag          Tag    `json:"tag"`
	FeeRecipient string `json:"feeRecipient"`

	// ValidatorImported is true when the pubkey is registered as a remote key.
	ValidatorImported bool `json:"validatorImported"`

	// ValidatorFeeRecipientCorrect is true when the validating client reports the
	// same fee recipient for this pubkey as the ledger stores.
	ValidatorFeeRecipientCorrect bool `json:"validatorFeeRecipientCorrect"`
}

package unittest

import (
	"crypto/rand"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/require"

	"github.com/4rgon4ut/StakingBrain/internal/model"
)

// RandomAddress generates a random Ethereum address for testing.
//
// The function will fail the test if random byte generation fails.
func RandomAddress(t *testing.T) common.Address {
	t.Helper()

	b := make([]byte, common.AddressLength)
	_, err := rand.Read(b)
	require.NoError(t, err, "failed to generate random bytes for address")

	return common.BytesToAddress(b)
}

// RandomPubkey generates a random, normalized validator public key.
// The bytes are not a point on the curve; nothing in the brain checks that.
func RandomPubkey(t *testing.T) string {
	t.Helper()

	b := make([]byte, model.PubkeyLength)
	_, err := rand.Read(b)
	require.NoError(t, err, "failed to generate random bytes for pubkey")

	return hexutil.Encode(b)
}

// RandomPubkeys generates n random validator public keys.
func RandomPubkeys(t *testing.T, n int) []string {
	t.Helper()

	pubkeys := make([]string, n)
	for i := 0; i < n; i++ {
		pubkeys[i] = RandomPubkey(t)
	}
	return pubkeys
}

// KeystoreFixture returns an EIP-2335 keystore document for pubkey. The crypto
// section is a placeholder; only the services under test would decrypt it.
func KeystoreFixture(t *testing.T, pubkey string) string {
	t.Helper()

	ks := map[string]any{
		"version": 4,
		"uuid":    "1d85ae20-35c5-4611-98e8-aa14a633906f",
		"path":    "m/12381/3600/0/0/0",
		"pubkey":  strings.TrimPrefix(pubkey, "0x"),
		"crypto": map[string]any{
			"kdf":      map[string]any{"function": "scrypt", "params": map[string]any{}, "message": ""},
			"checksum": map[string]any{"function": "sha256", "params": map[string]any{}, "message": ""},
			"cipher":   map[string]any{"function": "aes-128-ctr", "params": map[string]any{}, "message": ""},
		},
	}
	raw, err := json.Marshal(ks)
	require.NoError(t, err, "failed to encode keystore fixture")
	return string(raw)
}

// ValidatorFixture returns a ledger record with a random pubkey and fee recipient.
func ValidatorFixture(t *testing.T, tag model.Tag) model.Validator {
	t.Helper()
	return model.Validator{
		Pubkey:       RandomPubkey(t),
		Tag:          tag,
		FeeRecipient: RandomAddress(t).Hex(),
	}
}

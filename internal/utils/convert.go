package utils

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ByteToHex converts a byte slice to a hexadecimal string prefixed with "0x".
func ByteToHex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// Prefix0x returns s with a leading "0x", adding it only when missing.
// Keymanager endpoints answer 4xx to pubkeys without the prefix.
func Prefix0x(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return "0x" + s[2:]
	}
	return "0x" + s
}

// NormalizePubkey returns the canonical form of a validator public key:
// lowercase hex with a "0x" prefix.
func NormalizePubkey(pubkey string) string {
	return strings.ToLower(Prefix0x(strings.TrimSpace(pubkey)))
}

// ShortenPubkey returns a short form of a public key for logging, e.g. "0x8f12..c0de".
func ShortenPubkey(pubkey string) string {
	p := Prefix0x(pubkey)
	if len(p) <= 14 {
		return p
	}
	return fmt.Sprintf("%s..%s", p[:6], p[len(p)-4:])
}

// SameAddress reports whether a and b are the same execution layer address,
// ignoring checksum casing. Malformed addresses never match.
func SameAddress(a, b string) bool {
	if !common.IsHexAddress(a) || !common.IsHexAddress(b) {
		return false
	}
	return common.HexToAddress(a) == common.HexToAddress(b)
}

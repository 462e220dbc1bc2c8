package digest

import (
	"crypto/md5" // #nosec G501 -- offered for checksums and learning, not security
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Algorithm is the closed set of supported hash algorithms. The switches
// below cover every value; there is no "unsupported" runtime path.
type Algorithm int

const (
	SHA256 Algorithm = iota
	Keccak256
	Blake2b
	MD5
)

// Algorithms returns all algorithms in menu order.
func Algorithms() []Algorithm {
	return []Algorithm{SHA256, Keccak256, Blake2b, MD5}
}

func (a Algorithm) String() string {
	switch a {
	case SHA256:
		return "SHA-256"
	case Keccak256:
		return "Keccak-256"
	case Blake2b:
		return "Blake2b"
	case MD5:
		return "MD5"
	}
	panic(fmt.Sprintf("digest: unknown algorithm %d", int(a)))
}

// Size returns the digest size in bytes.
func (a Algorithm) Size() int {
	switch a {
	case SHA256:
		return sha256.Size
	case Keccak256:
		return 32
	case Blake2b:
		return blake2b.Size
	case MD5:
		return md5.Size
	}
	panic(fmt.Sprintf("digest: unknown algorithm %d", int(a)))
}

// HexLen returns the length of the hex digest string.
func (a Algorithm) HexLen() int {
	return 2 * a.Size()
}

// Note returns the informational line printed after a digest.
func (a Algorithm) Note() string {
	switch a {
	case SHA256:
		return "SHA-256 is widely used in Bitcoin & general cryptography."
	case Keccak256:
		return "Keccak-256 is used in Ethereum smart contracts."
	case Blake2b:
		return "Blake2b is fast and secure. Used in modern protocols like Zcash."
	case MD5:
		return "MD5 is broken. Do NOT use it for security-critical tasks."
	}
	panic(fmt.Sprintf("digest: unknown algorithm %d", int(a)))
}

// Sum hashes payload and returns the lower-case hex digest. Keccak-256 is
// the original Keccak padding (pre-NIST), not SHA3-256.
func (a Algorithm) Sum(payload []byte) string {
	switch a {
	case SHA256:
		sum := sha256.Sum256(payload)
		return hex.EncodeToString(sum[:])
	case Keccak256:
		h := sha3.NewLegacyKeccak256()
		h.Write(payload)
		return hex.EncodeToString(h.Sum(nil))
	case Blake2b:
		sum := blake2b.Sum512(payload)
		return hex.EncodeToString(sum[:])
	case MD5:
		sum := md5.Sum(payload) // #nosec G401
		return hex.EncodeToString(sum[:])
	}
	panic(fmt.Sprintf("digest: unknown algorithm %d", int(a)))
}

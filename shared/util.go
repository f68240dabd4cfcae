package shared

import (
	"encoding/hex"
	"math/bits"
	"os"
)

// OwnerReadWrite is the file mode used for files created by this module.
const OwnerReadWrite os.FileMode = 0600

// HexString renders b as a lowercase hex string, for logging.
func HexString(b []byte) string {
	return hex.EncodeToString(b)
}

// NumBits returns the minimum number of bits required to represent v.
// NumBits(0) is 0.
func NumBits(v uint64) uint {
	return uint(bits.Len64(v))
}

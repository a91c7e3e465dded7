package generator

import (
	"crypto/rand"
	"math/big"
)

// Source yields uniform random integers for password generation.
//
// The CryptoSource used by New is safe for concurrent use. A Generator built
// over a caller-supplied Source inherits that source's concurrency contract
// and performs no locking of its own; callers injecting a seeded source must
// serialize access themselves.
type Source interface {
	// Intn returns a uniform random int in [0, n). n must be > 0.
	Intn(n int) (int, error)
}

// CryptoSource draws from crypto/rand.
type CryptoSource struct{}

// Intn picks a uniform random int in [0, n) using crypto/rand.
func (CryptoSource) Intn(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

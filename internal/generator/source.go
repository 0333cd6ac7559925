package generator

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
)

// Source draws uniform indices in [0, n). Implementations may panic when
// n <= 0, matching math/rand.
type Source interface {
	IntN(n int) int
}

// secureSource draws from crypto/rand.
type secureSource struct{}

// NewSecureSource returns a Source backed by the operating system CSPRNG.
func NewSecureSource() Source {
	return secureSource{}
}

func (secureSource) IntN(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand only fails when the kernel entropy source is broken.
		panic("generator: reading crypto/rand: " + err.Error())
	}
	return int(v.Int64())
}

// NewFastSource returns a non-cryptographic PCG source. Two sources built
// from the same seeds produce the same sequence.
func NewFastSource(seed1, seed2 uint64) Source {
	return mrand.New(mrand.NewPCG(seed1, seed2))
}

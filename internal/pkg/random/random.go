package random

import (
	"crypto/rand"
	"math/big"
	mathrand "math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Source is the single source of nondeterminism in a game.
type Source interface {
	// Intn returns a random int in [0, n).
	Intn(n int) int
}

type cryptoSource struct{}

// NewCrypto returns a Source backed by crypto/rand.
func NewCrypto() Source {
	return cryptoSource{}
}

func (cryptoSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}

	result, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}

	return int(result.Int64())
}

type seededSource struct {
	rnd *mathrand.Rand
}

// NewSeeded returns a deterministic Source. Equal seeds yield equal sequences.
func NewSeeded(seed uint64) Source {
	return &seededSource{rnd: mathrand.New(mathrand.NewPCG(seed, seed))}
}

func (that *seededSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return that.rnd.IntN(n)
}

// Mark picks the starting mark uniformly: X on 0, O on 1.
func Mark(src Source) entity.Mark {
	if src.Intn(2) == 0 {
		return entity.PlayerX
	}
	return entity.PlayerO
}

package maintenance

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// NumberPrefix is the fixed domain prefix of human-readable ticket numbers.
const NumberPrefix = "BX"

// NumberGenerator produces human-readable ticket numbers. The random suffix
// space is narrow (4 digits per day), so uniqueness is ultimately enforced by
// the ticket store's unique constraint; callers regenerate on collision.
type NumberGenerator interface {
	Generate(ctx context.Context) (string, error)
}

type DefaultNumberGenerator struct{}

func NewDefaultNumberGenerator() *DefaultNumberGenerator {
	return &DefaultNumberGenerator{}
}

// Generate returns a number of the form "BX" + yyyymmdd + 4 random digits,
// e.g. "BX202608310742".
func (g *DefaultNumberGenerator) Generate(ctx context.Context) (string, error) {
	suffix, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", fmt.Errorf("failed to generate number suffix: %w", err)
	}

	return fmt.Sprintf("%s%s%04d", NumberPrefix, time.Now().Format("20060102"), suffix.Int64()), nil
}

package random

import (
	"context"
	"crypto/rand"

	"kitties/core"
	"kitties/pkg/id"
)

type randomService struct{}

// New new randomness source backed by crypto/rand. Each draw carries a
// fresh trace marker so identical seeds never collapse to one dna.
func New() core.Randomness {
	return &randomService{}
}

func (s *randomService) Draw(ctx context.Context, seed []byte) ([]byte, string, error) {
	value := make([]byte, 32)
	if _, err := rand.Read(value); err != nil {
		return nil, "", err
	}

	value = append(value, seed...)
	return value, id.GenTraceID(), nil
}

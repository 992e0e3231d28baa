package core

import "context"

// Randomness randomness source consumed at mint time. The marker tags the
// draw context so two draws with the same seed still differ.
type Randomness interface {
	Draw(ctx context.Context, seed []byte) (value []byte, marker string, err error)
}

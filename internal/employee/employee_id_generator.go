package employee

import (
	"context"
	"fmt"
)

const (
	IDPrefix = "EMP"

	// maxIDAttempts bounds the optimistic insert loop in Create.
	maxIDAttempts = 5
)

// SequenceSource is the read side the generator derives candidates from.
type SequenceSource interface {
	MaxIDSequence(ctx context.Context, prefix string) (int64, bool, error)
	Count(ctx context.Context) (int64, error)
}

type IDGenerator interface {
	NextEmployeeID(ctx context.Context) (string, error)
}

type idGenerator struct {
	src SequenceSource
}

// NewIDGenerator reads from src, which may be bound to a transaction.
func NewIDGenerator(src SequenceSource) IDGenerator {
	return &idGenerator{src: src}
}

// NextEmployeeID returns EMP + zero-padded (highest numeric suffix + 1). With
// no EMP<digits> id present it falls back to count(employees) + 1. The
// candidate is not reserved; callers insert and retry on collision.
func (g *idGenerator) NextEmployeeID(ctx context.Context) (string, error) {
	max, ok, err := g.src.MaxIDSequence(ctx, IDPrefix)
	if err != nil {
		return "", fmt.Errorf("read highest employee id: %w", err)
	}

	next := max + 1
	if !ok {
		count, err := g.src.Count(ctx)
		if err != nil {
			return "", fmt.Errorf("count employees: %w", err)
		}
		next = count + 1
	}

	return FormatID(next), nil
}

func FormatID(n int64) string {
	return fmt.Sprintf("%s%03d", IDPrefix, n)
}

package game

import "context"

// ScoreStore is the persistence port the machine reads and writes the high
// score through. Implementations never fail upward: reads fall back to zero
// and writes are best effort, so gameplay is unaffected by storage trouble.
type ScoreStore interface {
	HighScore(ctx context.Context) int
	SetHighScore(ctx context.Context, score int)
}

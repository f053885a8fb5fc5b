package redis

const (
	// KeyRanking is the sorted set of bookmark IDs scored by visit count.
	KeyRanking = "marks:ranking"
)

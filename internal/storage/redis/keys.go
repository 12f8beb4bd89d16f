package redis

import "fmt"

// Default key prefix for all game-related data
const defaultKeyPrefix = "c4"

// eventLogKey returns the Redis key for the event LIST.
// List index i holds the event with Seq i+1.
func eventLogKey(prefix string) string {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return fmt.Sprintf("%s:events", prefix)
}

package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so repositories depend on this package
// rather than a concrete go-redis client type.
type Client interface {
	redis.UniversalClient
}

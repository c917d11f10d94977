package shared

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"profmeet/shared/cache"
	"profmeet/shared/constant"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins a prefix and an identifier into a cache key.
func BuildCacheKey(prefix, id string) string {
	if id == constant.Empty {
		return prefix
	}

	return prefix + cacheKeySeparator + id
}

// InvalidateCaches clears every cache entry under the given prefix.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, BuildCacheKey(prefix, constant.Asterix)); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// HasText reports whether the string contains non-whitespace content.
func HasText(value string) bool {
	return strings.TrimSpace(value) != constant.Empty
}

// FirstNonEmpty returns the first argument with text content, or "".
func FirstNonEmpty(values ...string) string {
	for _, value := range values {
		if HasText(value) {
			return value
		}
	}

	return constant.Empty
}

package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const signupTTL = 30 * 24 * time.Hour

// SignupDedup provides idempotency checks for newsletter signups backed by
// Redis. Repeat signups within the TTL window are skipped silently.
// Key format: newsletter:<email>
type SignupDedup struct {
	client *redis.Client
}

// NewSignupDedup creates a SignupDedup wrapping the given Redis client.
func NewSignupDedup(client *redis.Client) *SignupDedup {
	return &SignupDedup{client: client}
}

// IsDuplicate reports whether this email has already signed up recently.
func (d *SignupDedup) IsDuplicate(ctx context.Context, email string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(email)).Result()
	if err != nil {
		return false, fmt.Errorf("signup dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this email has signed up (expires after signupTTL).
func (d *SignupDedup) Mark(ctx context.Context, email string) error {
	return d.client.Set(ctx, d.key(email), "1", signupTTL).Err()
}

func (d *SignupDedup) key(email string) string {
	return "newsletter:" + strings.ToLower(email)
}

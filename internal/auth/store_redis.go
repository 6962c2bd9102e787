// Copyright (c) 2026 Anidex. All rights reserved.
// Author: dm.falves@outlook.com

package auth

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/dmfalves/anidex/internal/platform/constants"
)

// LoginThrottle tracks failed login attempts per username in Redis.
//
// # Failure policy
//
// The throttle fails OPEN: if Redis is unreachable, logins proceed without
// throttling. Availability of the auth path wins over brute-force
// bookkeeping, and every degradation is logged.
type LoginThrottle struct {
	client *redis.Client
	logger *slog.Logger
}

// NewLoginThrottle constructs a [LoginThrottle] backed by the given client.
func NewLoginThrottle(client *redis.Client, logger *slog.Logger) *LoginThrottle {
	return &LoginThrottle{client: client, logger: logger}
}

func throttleKey(username string) string {
	return constants.RedisPrefixLoginFail + username
}

// Fail records one failed attempt. The first failure in a window starts
// the expiry clock; the counter disappears on its own afterwards.
func (throttle *LoginThrottle) Fail(context context.Context, username string) {
	key := throttleKey(username)

	count, err := throttle.client.Incr(context, key).Result()
	if err != nil {
		throttle.logger.WarnContext(context, "login_throttle_incr_failed",
			slog.String("username", username), slog.String("error", err.Error()))
		return
	}

	if count == 1 {
		if err := throttle.client.Expire(context, key, constants.LoginFailureWindow).Err(); err != nil {
			throttle.logger.WarnContext(context, "login_throttle_expire_failed",
				slog.String("username", username), slog.String("error", err.Error()))
		}
	}
}

// TooMany reports whether the username has exhausted its attempt budget.
func (throttle *LoginThrottle) TooMany(context context.Context, username string) bool {
	count, err := throttle.client.Get(context, throttleKey(username)).Int()
	if err != nil {
		if err != redis.Nil {
			throttle.logger.WarnContext(context, "login_throttle_get_failed",
				slog.String("username", username), slog.String("error", err.Error()))
		}
		return false
	}

	return count >= constants.LoginMaxFailures
}

// Reset clears the counter after a successful login.
func (throttle *LoginThrottle) Reset(context context.Context, username string) {
	if err := throttle.client.Del(context, throttleKey(username)).Err(); err != nil {
		throttle.logger.WarnContext(context, "login_throttle_reset_failed",
			slog.String("username", username), slog.String("error", err.Error()))
	}
}

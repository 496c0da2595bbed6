package session

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"ajcc-portal/config"
	"ajcc-portal/internal/global/jwt"
	"ajcc-portal/internal/global/logger"

	"github.com/redis/go-redis/v9"
)

// Server-side session registry backed by Redis. Tokens are registered at
// login with a TTL matching their expiry and checked on every authenticated
// request, so a credential change can revoke sessions that are still
// cryptographically valid. When Redis is not configured the registry is
// disabled and the auth gate relies on token validation alone.

var (
	client *redis.Client
	log    *slog.Logger
)

func Init() {
	log = logger.New("Session")

	cfg := config.Get()
	if cfg.Redis.Host == "" {
		log.Info("redis not configured, session registry disabled")
		return
	}

	client = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Error("redis ping failed", "error", err)
		panic(err)
	}
}

func Enabled() bool {
	return client != nil
}

func sessionKey(tokenID string) string {
	return "session:" + tokenID
}

func adminKey(adminID uint) string {
	return fmt.Sprintf("admin_sessions:%d", adminID)
}

// Register records a freshly issued token until its expiry.
func Register(ctx context.Context, claims *jwt.Claims) error {
	if !Enabled() {
		return nil
	}
	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if ttl <= 0 {
		return nil
	}
	pipe := client.TxPipeline()
	pipe.Set(ctx, sessionKey(claims.Id), strconv.FormatUint(uint64(claims.AdminID), 10), ttl)
	pipe.SAdd(ctx, adminKey(claims.AdminID), claims.Id)
	pipe.Expire(ctx, adminKey(claims.AdminID), ttl)
	_, err := pipe.Exec(ctx)
	return err
}

// Valid reports whether the token is still registered. With the registry
// disabled every signature-valid token passes.
func Valid(ctx context.Context, claims *jwt.Claims) bool {
	if !Enabled() {
		return true
	}
	n, err := client.Exists(ctx, sessionKey(claims.Id)).Result()
	if err != nil {
		// Fail open on a registry outage; the token signature was already
		// verified by the caller.
		log.Warn("session lookup failed", "error", err)
		return true
	}
	return n > 0
}

// Revoke drops a single session.
func Revoke(ctx context.Context, claims *jwt.Claims) error {
	if !Enabled() {
		return nil
	}
	pipe := client.TxPipeline()
	pipe.Del(ctx, sessionKey(claims.Id))
	pipe.SRem(ctx, adminKey(claims.AdminID), claims.Id)
	_, err := pipe.Exec(ctx)
	return err
}

// RevokeAdminExcept drops every session of an admin except the given token,
// used after a credential change so stolen or stale cookies stop working.
func RevokeAdminExcept(ctx context.Context, adminID uint, keepTokenID string) error {
	if !Enabled() {
		return nil
	}
	ids, err := client.SMembers(ctx, adminKey(adminID)).Result()
	if err != nil {
		return err
	}
	pipe := client.TxPipeline()
	for _, id := range ids {
		if id == keepTokenID {
			continue
		}
		pipe.Del(ctx, sessionKey(id))
		pipe.SRem(ctx, adminKey(adminID), id)
	}
	_, err = pipe.Exec(ctx)
	return err
}

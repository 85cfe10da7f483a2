package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/sms4jawaly/sms4jawaly-go/internal/cache"
	"github.com/sms4jawaly/sms4jawaly-go/jawaly"
)

// Cache keys for account data. One balance snapshot and one sender list
// are kept at a time.
const (
	balanceKey = "current"
	sendersKey = "list"
)

type AccountService interface {
	// Balance returns the account balance, served from cache when a fresh
	// snapshot exists.
	Balance(ctx context.Context) (*jawaly.BalanceResponse, error)

	// Senders returns the approved sender names, served from cache when a
	// fresh snapshot exists.
	Senders(ctx context.Context) (*jawaly.SenderNamesResponse, error)

	// Refresh fetches the balance from the gateway, stores the snapshot in
	// the cache and logs a warning when it is below the configured
	// threshold. The refresher scheduler calls this on its interval.
	Refresh(ctx context.Context) error
}

type accountService struct {
	gateway Gateway
	cache   cache.Cache

	balanceTTL time.Duration
	sendersTTL time.Duration

	lowBalance float64
}

// NewAccountService creates an account service with the given dependencies.
// TTLs that are <= 0 fall back to sane defaults.
func NewAccountService(
	gateway Gateway,
	c cache.Cache,
	balanceTTL time.Duration,
	sendersTTL time.Duration,
	lowBalance float64,
) AccountService {
	if balanceTTL <= 0 {
		balanceTTL = 5 * time.Minute
	}
	if sendersTTL <= 0 {
		sendersTTL = time.Hour
	}

	return &accountService{
		gateway:    gateway,
		cache:      c,
		balanceTTL: balanceTTL,
		sendersTTL: sendersTTL,
		lowBalance: lowBalance,
	}
}

func (s *accountService) Balance(ctx context.Context) (*jawaly.BalanceResponse, error) {
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, cache.Balance.Key(balanceKey))
		if err == nil {
			var cached jawaly.BalanceResponse
			if uErr := json.Unmarshal([]byte(raw), &cached); uErr != nil {
				// A corrupt snapshot is dropped and refetched below.
				log.Printf("[Account] Ignoring corrupt cached balance: %v", uErr)
			} else {
				return &cached, nil
			}
		}
	}

	balance, err := s.gateway.GetBalance(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch balance: %w", err)
	}

	s.cacheJSON(ctx, cache.Balance.Key(balanceKey), balance, s.balanceTTL)

	return balance, nil
}

func (s *accountService) Senders(ctx context.Context) (*jawaly.SenderNamesResponse, error) {
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, cache.Senders.Key(sendersKey))
		if err == nil {
			var cached jawaly.SenderNamesResponse
			if uErr := json.Unmarshal([]byte(raw), &cached); uErr != nil {
				log.Printf("[Account] Ignoring corrupt cached senders: %v", uErr)
			} else {
				return &cached, nil
			}
		}
	}

	senders, err := s.gateway.GetSenders(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch senders: %w", err)
	}

	s.cacheJSON(ctx, cache.Senders.Key(sendersKey), senders, s.sendersTTL)

	return senders, nil
}

func (s *accountService) Refresh(ctx context.Context) error {
	balance, err := s.gateway.GetBalance(ctx)
	if err != nil {
		return fmt.Errorf("refresh balance: %w", err)
	}

	s.cacheJSON(ctx, cache.Balance.Key(balanceKey), balance, s.balanceTTL)

	if balance.Balance < s.lowBalance {
		log.Printf("[Account] Low balance warning: %.2f points left (threshold %.2f)",
			balance.Balance, s.lowBalance)
	}

	return nil
}

// cacheJSON stores v as a JSON snapshot. Caching is best-effort: failures
// are logged, never propagated.
func (s *accountService) cacheJSON(ctx context.Context, key string, v any, ttl time.Duration) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("[Account] Failed to marshal snapshot for %s: %v", key, err)
		return
	}

	if err := s.cache.Set(ctx, key, string(raw), ttl); err != nil {
		log.Printf("[Account] Failed to cache snapshot for %s: %v", key, err)
	}
}

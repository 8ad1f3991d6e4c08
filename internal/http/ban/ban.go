package ban

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/inventory-service/internal/redissvc"
	"go.uber.org/zap"
)

const (
	strikeKeyPrefix = "inventory:strikes:"
	banKeyPrefix    = "inventory:ban:"
	BanLogKey       = "inventory:banlog"
)

type Options struct {
	MaxStrikes   int
	StrikeWindow time.Duration
	Duration     time.Duration
}

// Service counts rate limit strikes per client and bans clients that collect
// MaxStrikes within StrikeWindow.
type Service struct {
	rdb  *redis.Client
	opts Options
	now  func() time.Time
}

func NewService(rs *redissvc.RedisService, opts Options) *Service {
	return &Service{
		rdb:  rs.Rdb(),
		opts: opts,
		now:  time.Now,
	}
}

type BanLogEntry struct {
	Target  string    `json:"target"`
	Route   string    `json:"route"`
	Strikes int       `json:"strikes"`
	Time    time.Time `json:"time"`
}

func (s *Service) IsBanned(ctx context.Context, target string) (bool, error) {
	n, err := s.rdb.Exists(ctx, banKeyPrefix+target).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check ban for %s: %w", target, err)
	}
	return n > 0, nil
}

// Strike records a violation by target on route and reports whether it
// resulted in a ban.
func (s *Service) Strike(ctx context.Context, target, route string) (bool, error) {
	key := strikeKeyPrefix + target

	pipe := s.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, s.opts.StrikeWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to record strike for %s: %w", target, err)
	}

	strikes := int(incr.Val())
	if strikes < s.opts.MaxStrikes {
		return false, nil
	}

	entry, _ := json.Marshal(BanLogEntry{
		Target:  target,
		Route:   route,
		Strikes: strikes,
		Time:    s.now(),
	})

	pipe = s.rdb.TxPipeline()
	pipe.Set(ctx, banKeyPrefix+target, strikes, s.opts.Duration)
	pipe.Del(ctx, key)
	pipe.RPush(ctx, BanLogKey, entry)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to ban %s: %w", target, err)
	}

	zap.L().Warn("client banned",
		zap.String("target", target),
		zap.String("route", route),
		zap.Int("strikes", strikes),
		zap.Duration("duration", s.opts.Duration),
	)
	return true, nil
}

// Unban lifts a ban and resets the strike counter for target.
func (s *Service) Unban(ctx context.Context, target string) error {
	return s.rdb.Del(ctx, banKeyPrefix+target, strikeKeyPrefix+target).Err()
}

type Summary struct {
	Total    int
	ByRoute  map[string]int
	ByTarget map[string]int
	Entries  []BanLogEntry
}

// DrainSummary reads and clears the ban log, aggregating its entries.
func (s *Service) DrainSummary(ctx context.Context) (Summary, error) {
	pipe := s.rdb.TxPipeline()
	lrange := pipe.LRange(ctx, BanLogKey, 0, -1)
	pipe.Del(ctx, BanLogKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return Summary{}, fmt.Errorf("failed to read ban log: %w", err)
	}

	summary := Summary{
		ByRoute:  make(map[string]int),
		ByTarget: make(map[string]int),
	}
	for _, item := range lrange.Val() {
		var entry BanLogEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			continue
		}
		summary.Entries = append(summary.Entries, entry)
		summary.ByRoute[entry.Route]++
		summary.ByTarget[entry.Target]++
	}
	summary.Total = len(summary.Entries)
	return summary, nil
}

// StartSummaryLoop logs a ban summary every interval until ctx is done.
func (s *Service) StartSummaryLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.logSummary(ctx)
		}
	}
}

func (s *Service) logSummary(ctx context.Context) {
	summary, err := s.DrainSummary(ctx)
	if err != nil {
		zap.L().Error("ban summary failed", zap.Error(err))
		return
	}
	if summary.Total == 0 {
		return
	}

	targets := make([]string, 0, len(summary.ByTarget))
	for target := range summary.ByTarget {
		targets = append(targets, target)
	}
	sort.Strings(targets)

	zap.L().Info("ban summary",
		zap.Int("total", summary.Total),
		zap.Any("by_route", summary.ByRoute),
		zap.Strings("targets", targets),
	)
}

// Package datacheck scans stored equipment data for records that no longer
// load and for index entries pointing at missing items.
package datacheck

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-equipment/internal/entities/character"
	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-equipment/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-equipment/internal/redis"
)

const (
	characterPattern = "character:*"
	itemPattern      = "item:*"
	prototypePattern = "item_prototype:*"

	itemKeyPrefix      = "item:"
	creatorKeyPrefix   = "item:creator:"
	prototypeKeyPrefix = "item_prototype:"
	prototypeIndexKey  = "item_prototype:index"

	scanCount = 100
)

// Config contains configuration for the Checker
type Config struct {
	Client redisclient.Client
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// DanglingEntry is a set member whose target key is gone
type DanglingEntry struct {
	IndexKey string
	Member   string
}

// Report lists everything a scan found
type Report struct {
	Checked   int
	Corrupted []string
	Dangling  []DanglingEntry
}

// Clean reports whether the scan found nothing to fix
func (r *Report) Clean() bool {
	return len(r.Corrupted) == 0 && len(r.Dangling) == 0
}

// Checker validates stored characters, items and item prototypes
type Checker struct {
	client redisclient.Client
}

// New creates a Checker
func New(cfg *Config) (*Checker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Checker{client: cfg.Client}, nil
}

// Scan walks every stored record and returns what failed to load. Index
// members pointing at a corrupted record are reported as dangling too, so
// Fix leaves no index entry behind for a deleted key.
func (c *Checker) Scan(ctx context.Context) (*Report, error) {
	report := &Report{}
	indexes := make(map[string]string)

	err := c.scan(ctx, characterPattern, func(key string) error {
		return c.checkValue(ctx, report, key, loadCharacter)
	})
	if err != nil {
		return nil, err
	}

	err = c.scan(ctx, itemPattern, func(key string) error {
		if strings.HasPrefix(key, creatorKeyPrefix) {
			indexes[key] = itemKeyPrefix
			return nil
		}
		return c.checkValue(ctx, report, key, loadItem)
	})
	if err != nil {
		return nil, err
	}

	err = c.scan(ctx, prototypePattern, func(key string) error {
		if key == prototypeIndexKey {
			indexes[key] = prototypeKeyPrefix
			return nil
		}
		return c.checkValue(ctx, report, key, loadPrototype)
	})
	if err != nil {
		return nil, err
	}

	corrupted := make(map[string]bool, len(report.Corrupted))
	for _, key := range report.Corrupted {
		corrupted[key] = true
	}

	indexKeys := make([]string, 0, len(indexes))
	for key := range indexes {
		indexKeys = append(indexKeys, key)
	}
	sort.Strings(indexKeys)

	for _, key := range indexKeys {
		if err := c.checkIndex(ctx, report, key, indexes[key], corrupted); err != nil {
			return nil, err
		}
	}

	return report, nil
}

// Fix deletes corrupted keys and removes dangling index members
func (c *Checker) Fix(ctx context.Context, report *Report) error {
	if report == nil || report.Clean() {
		return nil
	}

	pipe := c.client.TxPipeline()
	if len(report.Corrupted) > 0 {
		pipe.Del(ctx, report.Corrupted...)
	}
	for _, entry := range report.Dangling {
		pipe.SRem(ctx, entry.IndexKey, entry.Member)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "failed to fix stored data")
	}

	slog.InfoContext(ctx, "stored data fixed",
		"deleted", len(report.Corrupted),
		"unindexed", len(report.Dangling))
	return nil
}

func (c *Checker) scan(ctx context.Context, pattern string, fn func(key string) error) error {
	iter := c.client.Scan(ctx, 0, pattern, scanCount).Iterator()
	for iter.Next(ctx) {
		if err := fn(iter.Val()); err != nil {
			return err
		}
	}
	if err := iter.Err(); err != nil {
		return errors.Wrapf(err, "failed to scan %s", pattern)
	}
	return nil
}

func (c *Checker) checkValue(ctx context.Context, report *Report, key string, load func([]byte) error) error {
	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == redis.Nil:
		// deleted since the scan saw it
		return nil
	case isWrongType(err):
		report.Checked++
		slog.WarnContext(ctx, "record has the wrong redis type", "key", key)
		report.Corrupted = append(report.Corrupted, key)
		return nil
	case err != nil:
		return errors.Wrapf(err, "failed to read %s", key)
	}

	report.Checked++
	if err := load(raw); err != nil {
		slog.WarnContext(ctx, "corrupted record", "key", key, "error", err)
		report.Corrupted = append(report.Corrupted, key)
	}
	return nil
}

func (c *Checker) checkIndex(ctx context.Context, report *Report, indexKey, targetPrefix string, corrupted map[string]bool) error {
	members, err := c.client.SMembers(ctx, indexKey).Result()
	if isWrongType(err) {
		slog.WarnContext(ctx, "index has the wrong redis type", "key", indexKey)
		report.Corrupted = append(report.Corrupted, indexKey)
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "failed to read index %s", indexKey)
	}
	sort.Strings(members)

	for _, member := range members {
		target := targetPrefix + member
		if corrupted[target] {
			report.Dangling = append(report.Dangling, DanglingEntry{IndexKey: indexKey, Member: member})
			continue
		}
		n, err := c.client.Exists(ctx, target).Result()
		if err != nil {
			return errors.Wrapf(err, "failed to check %s", target)
		}
		if n == 0 {
			report.Dangling = append(report.Dangling, DanglingEntry{IndexKey: indexKey, Member: member})
		}
	}
	return nil
}

func isWrongType(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "WRONGTYPE")
}

func loadCharacter(raw []byte) error {
	var data character.Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return err
	}
	_, err := character.LoadFromData(&data)
	return err
}

func loadItem(raw []byte) error {
	var data equipment.ItemData
	if err := json.Unmarshal(raw, &data); err != nil {
		return err
	}
	_, err := equipment.NewItem(&data)
	return err
}

func loadPrototype(raw []byte) error {
	var data equipment.ItemPrototypeData
	if err := json.Unmarshal(raw, &data); err != nil {
		return err
	}
	_, err := equipment.NewItemPrototype(&data)
	return err
}

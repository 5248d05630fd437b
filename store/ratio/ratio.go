package ratio

import (
	"context"
	"encoding/json"
	"fmt"
	"lending/core"
	"time"

	"github.com/go-redis/redis"
)

const defaultExpiration = time.Hour

type ratioStore struct {
	Redis *redis.Client
	exp   time.Duration
}

// New new ratio snapshot store
func New(redis *redis.Client) core.IRatioStore {
	return &ratioStore{
		Redis: redis,
		exp:   defaultExpiration,
	}
}

func (s *ratioStore) Save(ctx context.Context, snapshots ...*core.RatioSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	pipe := s.Redis.TxPipeline()
	for _, snapshot := range snapshots {
		bs, err := json.Marshal(snapshot)
		if err != nil {
			return err
		}

		pipe.Set(s.snapshotKey(snapshot.Owner), bs, s.exp)
		if snapshot.Liquidatable {
			pipe.SAdd(s.liquidatableKey(), snapshot.Owner)
		} else {
			pipe.SRem(s.liquidatableKey(), snapshot.Owner)
		}
	}

	_, err := pipe.Exec()
	return err
}

func (s *ratioStore) Find(ctx context.Context, owner string) (*core.RatioSnapshot, bool, error) {
	bs, err := s.Redis.Get(s.snapshotKey(owner)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}

	var snapshot core.RatioSnapshot
	if err := json.Unmarshal(bs, &snapshot); err != nil {
		return nil, false, err
	}

	return &snapshot, true, nil
}

func (s *ratioStore) ListLiquidatable(ctx context.Context) ([]*core.RatioSnapshot, error) {
	owners, err := s.Redis.SMembers(s.liquidatableKey()).Result()
	if err != nil {
		return nil, err
	}

	snapshots := make([]*core.RatioSnapshot, 0, len(owners))
	for _, owner := range owners {
		snapshot, ok, err := s.Find(ctx, owner)
		if err != nil {
			return nil, err
		}

		// expired snapshots are dropped from the set
		if !ok || !snapshot.Liquidatable {
			s.Redis.SRem(s.liquidatableKey(), owner)
			continue
		}

		snapshots = append(snapshots, snapshot)
	}

	return snapshots, nil
}

func (s *ratioStore) snapshotKey(owner string) string {
	return fmt.Sprintf("lending:ratio:%s", owner)
}

func (s *ratioStore) liquidatableKey() string {
	return "lending:liquidatable"
}

package repositories

import (
	"MediDesk/database"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	lockExpiry    = 10 * time.Second
	lockRetries   = 3
	lockRetryWait = 2 * time.Second
)

// acquireLock takes a redis lock with retries and returns a release func.
// The unique lock value guards against releasing a lock another request
// re-acquired after expiry.
func acquireLock(ctx context.Context, key string) (func(), error) {
	value := uuid.New().String()
	var locked bool
	var err error
	for i := 0; i < lockRetries; i++ {
		locked, err = database.NewLock(ctx, key, value, lockExpiry)
		if err == nil && locked {
			break
		}
		if i < lockRetries-1 {
			time.Sleep(lockRetryWait)
		}
	}
	if !locked {
		return nil, fmt.Errorf("failed to acquire lock after retries: %w", err)
	}
	return func() {
		if err := database.ReleaseLock(ctx, key, value); err != nil {
			log.Printf("Failed to release lock %s: %v", key, err)
		}
	}, nil
}

// isDuplicateKey reports whether err is a unique-constraint violation
// translated by gorm.
func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

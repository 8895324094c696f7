package storefront

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/cofund-lab/backend/internal/client"
	"github.com/cofund-lab/backend/internal/model"
)

// RewardCatalog holds the reward options shown on a project page. Multiple
// widgets read it (the checkout wizard and the owner's admin panel), and any
// of them can invalidate it after a mutation. Invalidations bump a counter
// instead of refetching eagerly, so back-to-back mutations cost one reload.
type RewardCatalog struct {
	caller    client.StoreCaller
	projectID string

	version uint64

	mutex   sync.Mutex
	seen    uint64
	options []model.RewardOption
}

func NewRewardCatalog(caller client.StoreCaller, projectID string) *RewardCatalog {
	return &RewardCatalog{caller: caller, projectID: projectID, version: 1}
}

// Invalidate marks the cached options stale. It never blocks and is safe to
// call from any goroutine.
func (c *RewardCatalog) Invalidate() {
	atomic.AddUint64(&c.version, 1)
}

// Load returns the current options, refetching only if an invalidation
// happened since the last successful load. A failed fetch leaves the catalog
// stale, so the next Load retries.
func (c *RewardCatalog) Load(ctx context.Context) ([]model.RewardOption, error) {
	version := atomic.LoadUint64(&c.version)

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.seen == version {
		return c.options, nil
	}

	options, err := c.caller.ListRewardOptions(ctx, c.projectID)
	if err != nil {
		return nil, err
	}

	c.options = options
	c.seen = version
	return options, nil
}

// Option looks up a single cached option by id. The boolean is false when the
// id is unknown, which happens after the owner deletes an option another
// widget still references.
func (c *RewardCatalog) Option(id int64) (model.RewardOption, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for _, option := range c.options {
		if option.ID == id {
			return option, true
		}
	}

	return model.RewardOption{}, false
}

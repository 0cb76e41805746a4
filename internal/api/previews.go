package api

import (
	"sync"
	"time"

	"github.com/MichalMitros/supplier-feed-sync/internal/syncer"
)

// previews keeps the last prepared full sync of every supplier until it's confirmed or expired.
type previews struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]*syncer.Preview
	now   func() time.Time
}

func newPreviews(ttl time.Duration) *previews {
	return &previews{
		ttl:   ttl,
		items: make(map[string]*syncer.Preview),
		now:   time.Now,
	}
}

func (p *previews) put(preview *syncer.Preview) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.items[preview.Supplier.ID] = preview
}

// take removes and returns supplier's preview. Expired previews are dropped.
func (p *previews) take(supplierID string) (*syncer.Preview, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	preview, ok := p.items[supplierID]
	if !ok {
		return nil, syncer.ErrPreviewOutdated
	}
	delete(p.items, supplierID)

	if p.ttl > 0 && p.now().Sub(preview.CreatedAt) > p.ttl {
		return nil, syncer.ErrPreviewOutdated
	}

	return preview, nil
}

// restore puts taken preview back unless a newer one was prepared meanwhile.
func (p *previews) restore(preview *syncer.Preview) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.items[preview.Supplier.ID]; !ok {
		p.items[preview.Supplier.ID] = preview
	}
}

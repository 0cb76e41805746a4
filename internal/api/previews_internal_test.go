package api

import (
	"testing"
	"time"

	"github.com/MichalMitros/supplier-feed-sync/internal/platform/models"
	"github.com/MichalMitros/supplier-feed-sync/internal/syncer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitPreviews(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	p := newPreviews(10 * time.Minute)
	p.now = func() time.Time { return now }

	first := &syncer.Preview{Supplier: &models.Supplier{ID: "acme"}, CreatedAt: now.Add(-time.Minute)}
	second := &syncer.Preview{Supplier: &models.Supplier{ID: "acme"}, CreatedAt: now}
	stale := &syncer.Preview{Supplier: &models.Supplier{ID: "globex"}, CreatedAt: now.Add(-time.Hour)}
	p.put(first)
	p.put(second)
	p.put(stale)

	got, err := p.take("acme")
	require.NoError(t, err)
	assert.Same(t, second, got, "should keep only the latest preview of supplier")

	_, err = p.take("acme")
	assert.ErrorIs(t, err, syncer.ErrPreviewOutdated, "preview should be taken once")

	_, err = p.take("globex")
	assert.ErrorIs(t, err, syncer.ErrPreviewOutdated, "should drop expired preview")
}

func TestUnitPreviewsRestore(t *testing.T) {
	p := newPreviews(time.Hour)

	taken := &syncer.Preview{Supplier: &models.Supplier{ID: "acme"}, CreatedAt: time.Now()}
	p.restore(taken)

	got, err := p.take("acme")
	require.NoError(t, err)
	assert.Same(t, taken, got, "should put preview back")

	newer := &syncer.Preview{Supplier: &models.Supplier{ID: "acme"}, CreatedAt: time.Now()}
	p.put(newer)
	p.restore(taken)

	got, err = p.take("acme")
	require.NoError(t, err)
	assert.Same(t, newer, got, "shouldn't replace newer preview")
}

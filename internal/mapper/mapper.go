// Package mapper reconciles raw supplier categories with the store category tree.
package mapper

import (
	"sort"
	"strings"

	"github.com/MichalMitros/supplier-feed-sync/internal/categorytree"
	"github.com/MichalMitros/supplier-feed-sync/internal/platform/models"
	"github.com/samber/lo"
)

// Map maps raw supplier category onto the category tree snapshot.
// Categories are matched case-insensitively, the first match in pre-order wins.
// Unmatched and empty raw categories map to models.UncategorizedCategory. It never fails.
func Map(raw string, snapshot *categorytree.Snapshot) models.CategoryMapping {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.CategoryMapping{Category: models.UncategorizedCategory}
	}

	category, ok := snapshot.Lookup(raw)
	if !ok {
		return models.CategoryMapping{RawCategory: raw, Category: models.UncategorizedCategory}
	}

	path, _ := snapshot.Path(category.ID)
	return models.CategoryMapping{
		RawCategory: raw,
		Category:    path,
		CategoryID:  lo.ToPtr(category.ID),
	}
}

// MapBatch maps all records using the same snapshot.
func MapBatch(records []models.FeedRecord, snapshot *categorytree.Snapshot) []models.MappedRecord {
	cache := make(map[string]models.CategoryMapping)
	return lo.Map(records, func(record models.FeedRecord, _ int) models.MappedRecord {
		mapping, ok := cache[record.RawCategory]
		if !ok {
			mapping = Map(record.RawCategory, snapshot)
			cache[record.RawCategory] = mapping
		}
		return models.MappedRecord{
			FeedRecord: record,
			Category:   mapping.Category,
			CategoryID: cloneID(mapping.CategoryID),
		}
	})
}

// Categories returns distinct raw categories of mapped records with number of products,
// sorted by raw category.
func Categories(records []models.MappedRecord) []models.CategoryCount {
	counts := make(map[string]*models.CategoryCount)
	for _, record := range records {
		raw := strings.TrimSpace(record.RawCategory)
		count, ok := counts[raw]
		if !ok {
			count = &models.CategoryCount{
				RawCategory: raw,
				Category:    record.Category,
				CategoryID:  cloneID(record.CategoryID),
			}
			counts[raw] = count
		}
		count.Products++
	}

	categories := lo.MapToSlice(counts, func(_ string, count *models.CategoryCount) models.CategoryCount {
		return *count
	})
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].RawCategory < categories[j].RawCategory
	})
	return categories
}

func cloneID(id *string) *string {
	if id == nil {
		return nil
	}
	return lo.ToPtr(*id)
}

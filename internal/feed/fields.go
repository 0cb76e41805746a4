package feed

import (
	"fmt"
	"hash/fnv"
	"math"
	"strconv"
	"strings"

	"github.com/MichalMitros/supplier-feed-sync/internal/platform/models"
	"github.com/MichalMitros/supplier-feed-sync/internal/xmltree"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

const (
	noName    = "No Name"
	zeroPrice = "0"
)

// text returns text of the first of provided children that has non-empty text.
func text(product any, names ...string) string {
	for _, name := range names {
		if value := xmltree.Text(xmltree.Child(product, name)); value != "" {
			return value
		}
	}
	return ""
}

// optionalText returns text of the first non-empty child or nil.
func optionalText(product any, names ...string) *string {
	if value := text(product, names...); value != "" {
		return &value
	}
	return nil
}

// stock walks fallback chain of stock fields and returns the first value coercible to integer.
// Negative and missing stock is 0.
func stock(product any, names ...string) int {
	for _, name := range names {
		value := xmltree.Text(xmltree.Child(product, name))
		if value == "" {
			continue
		}
		if qty, ok := toInt(value); ok {
			return clampStock(qty)
		}
	}
	return 0
}

// clampStock keeps stock within the 32 bit range it is stored in.
func clampStock(qty int) int {
	return min(max(qty, 0), math.MaxInt32)
}

func toInt(value string) (int, bool) {
	if qty, err := strconv.Atoi(value); err == nil {
		return qty, true
	}
	qty, err := decimal.NewFromString(strings.ReplaceAll(value, ",", "."))
	if err != nil {
		return 0, false
	}
	switch {
	case qty.IsNegative():
		return 0, true
	case qty.GreaterThan(decimal.NewFromInt(math.MaxInt32)):
		return math.MaxInt32, true
	}
	return int(qty.IntPart()), true
}

// normalizePrice converts supplier price into dot-separated decimal string.
// Unparseable and negative prices are "0".
func normalizePrice(raw string) string {
	value := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
	lastComma := strings.LastIndex(value, ",")
	lastDot := strings.LastIndex(value, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0 && lastComma > lastDot:
		// 1.234,56
		value = strings.ReplaceAll(value, ".", "")
		value = strings.ReplaceAll(value, ",", ".")
	case lastComma >= 0 && lastDot >= 0:
		// 1,234.56
		value = strings.ReplaceAll(value, ",", "")
	default:
		value = strings.ReplaceAll(value, ",", ".")
	}

	price, err := decimal.NewFromString(value)
	if err != nil || price.IsNegative() {
		return zeroPrice
	}
	return price.String()
}

// offerPrice returns offer price, falling back to retail price when supplier doesn't set offer price.
func offerPrice(offer, retail string) string {
	if offer != zeroPrice {
		return offer
	}
	return retail
}

// joinCategory joins category levels with models.CategorySeparator, skipping empty levels.
func joinCategory(levels ...string) string {
	levels = lo.FilterMap(levels, func(level string, _ int) (string, bool) {
		level = strings.TrimSpace(level)
		return level, level != ""
	})
	return strings.Join(levels, models.CategorySeparator)
}

// splitCategoryPath normalizes ">"-separated category path.
func splitCategoryPath(path string) string {
	return joinCategory(strings.Split(path, ">")...)
}

// images returns main image and deduplicated images list with main image first.
// When main image is missing first gallery image becomes main image.
func images(main string, gallery []string) (*string, []string) {
	all := append([]string{strings.TrimSpace(main)}, gallery...)
	all = lo.Uniq(lo.FilterMap(all, func(url string, _ int) (string, bool) {
		url = strings.TrimSpace(url)
		return url, url != ""
	}))
	if len(all) == 0 {
		return nil, []string{}
	}
	return lo.ToPtr(all[0]), all
}

// finishRecord applies fallbacks shared by all dialects.
func finishRecord(record *models.FeedRecord, index int) {
	if record.Name == "" {
		record.Name = noName
	}
	if record.ID == "" {
		record.ID = syntheticID(record, index)
	}
	if record.RetailPrice == "" {
		record.RetailPrice = zeroPrice
	}
	if record.WebOfferPrice == "" {
		record.WebOfferPrice = zeroPrice
	}
	if record.Images == nil {
		record.Images = []string{}
	}
}

// syntheticID returns identifier for products without one, preferring stable product codes.
func syntheticID(record *models.FeedRecord, index int) string {
	for _, code := range []*string{record.SKU, record.EAN, record.Model} {
		if code != nil && *code != "" {
			return *code
		}
	}

	hash := fnv.New64a()
	_, _ = hash.Write([]byte(record.Name + "\x00" + record.RawCategory))
	return fmt.Sprintf("gen-%x-%d", hash.Sum64(), index)
}

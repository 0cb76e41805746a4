// Package markup computes store prices from supplier offer prices.
package markup

import (
	"sort"
	"strings"

	"github.com/MichalMitros/supplier-feed-sync/internal/platform/models"
	"github.com/shopspring/decimal"
)

// DefaultRuleTo marks the rule applied to prices no other rule covers.
const DefaultRuleTo = 99999

var (
	defaultMarkup = decimal.NewFromInt(30)
	hundred       = decimal.NewFromInt(100)
)

// Surcharge is flat amount added to price.
type Surcharge struct {
	Keyword string
	Amount  decimal.Decimal
}

// bracket adds Amount to prices in (Above, UpTo].
type bracket struct {
	Above  decimal.Decimal
	UpTo   decimal.Decimal
	Amount decimal.Decimal
}

var smallPriceBrackets = []bracket{
	{Above: decimal.Zero, UpTo: decimal.NewFromInt(2), Amount: decimal.RequireFromString("0.65")},
	{Above: decimal.NewFromInt(2), UpTo: decimal.NewFromInt(5), Amount: decimal.RequireFromString("1.30")},
	{Above: decimal.NewFromInt(5), UpTo: decimal.NewFromInt(14), Amount: decimal.RequireFromString("1.70")},
}

// NameSurcharges are added for every keyword found in product name, compared case-insensitively.
var NameSurcharges = []Surcharge{
	{Keyword: "desk", Amount: decimal.RequireFromString("4.00")},
	{Keyword: "cabinet", Amount: decimal.RequireFromString("6.00")},
	{Keyword: "wardrobe", Amount: decimal.RequireFromString("8.00")},
	{Keyword: "chair", Amount: decimal.RequireFromString("2.50")},
	{Keyword: "shelf", Amount: decimal.RequireFromString("1.50")},
}

// Apply computes store price of record from its web offer price:
//  1. offer price is parsed, unparseable price is 0,
//  2. the first rule containing the price (rules sorted by From, bounds inclusive) adds its markup percent,
//  3. without matching rule the rule with To == DefaultRuleTo is used, or 30% markup without it,
//  4. small price surcharge is added by bracket of the original price,
//  5. name keyword surcharges are added.
//
// The result is rounded to 2 decimal places.
func Apply(record models.FeedRecord, rules []models.MarkupRule) decimal.Decimal {
	original := parsePrice(record.WebOfferPrice)

	price := original.Mul(decimal.NewFromInt(1).Add(markupPercent(original, rules).Div(hundred)))
	price = price.Add(smallPriceSurcharge(original))
	price = price.Add(nameSurcharge(record.Name))

	return price.Round(2)
}

// Price computes store price of record offered by supplier, converted with supplier's conversion rate.
func Price(record models.FeedRecord, supplier *models.Supplier) decimal.Decimal {
	price := Apply(record, supplier.MarkupRules)
	if supplier.ConversionRate == 0 {
		return price
	}
	return price.Mul(decimal.NewFromFloat(supplier.ConversionRate)).Round(2)
}

func parsePrice(raw string) decimal.Decimal {
	price, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(raw), ",", "."))
	if err != nil {
		return decimal.Zero
	}
	return price
}

func markupPercent(price decimal.Decimal, rules []models.MarkupRule) decimal.Decimal {
	sorted := make([]models.MarkupRule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].From < sorted[j].From })

	for _, rule := range sorted {
		if price.GreaterThanOrEqual(decimal.NewFromFloat(rule.From)) &&
			price.LessThanOrEqual(decimal.NewFromFloat(rule.To)) {
			return decimal.NewFromFloat(rule.Markup)
		}
	}

	for _, rule := range sorted {
		if rule.To == DefaultRuleTo {
			return decimal.NewFromFloat(rule.Markup)
		}
	}
	return defaultMarkup
}

func smallPriceSurcharge(price decimal.Decimal) decimal.Decimal {
	for _, b := range smallPriceBrackets {
		if price.GreaterThan(b.Above) && price.LessThanOrEqual(b.UpTo) {
			return b.Amount
		}
	}
	return decimal.Zero
}

func nameSurcharge(name string) decimal.Decimal {
	name = strings.ToLower(name)
	total := decimal.Zero
	for _, surcharge := range NameSurcharges {
		if strings.Contains(name, surcharge.Keyword) {
			total = total.Add(surcharge.Amount)
		}
	}
	return total
}

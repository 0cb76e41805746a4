package modelstesting

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/MichalMitros/supplier-feed-sync/internal/platform/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// FakeFeedRecord returns models.FeedRecord with fake data and random number of fake images.
func FakeFeedRecord(ops ...func(r *models.FeedRecord)) models.FeedRecord {
	images := fakeImages()
	record := models.FeedRecord{
		ID:            faker.UUIDDigit(),
		Name:          faker.Word(),
		Description:   faker.Sentence(),
		RawCategory:   faker.Word() + models.CategorySeparator + faker.Word(),
		Stock:         rand.Intn(100),
		RetailPrice:   fakePrice(),
		WebOfferPrice: fakePrice(),
		Images:        images,
		SKU:           lo.ToPtr(faker.Word()),
		Model:         lo.ToPtr(faker.Word()),
		EAN:           lo.ToPtr(faker.CCNumber()),
		Manufacturer:  lo.ToPtr(faker.Word()),
		URL:           lo.ToPtr(faker.URL()),
	}

	if len(images) > 0 {
		record.MainImage = lo.ToPtr(images[0])
	}

	for _, op := range ops {
		op(&record)
	}

	return record
}

// FakePricedProduct returns models.PricedProduct with fake data.
func FakePricedProduct(ops ...func(p *models.PricedProduct)) models.PricedProduct {
	product := models.PricedProduct{
		MappedRecord: models.MappedRecord{
			FeedRecord: FakeFeedRecord(),
			Category:   faker.Word(),
			CategoryID: lo.ToPtr(uuid.NewString()),
		},
		Price:      decimal.RequireFromString(fakePrice()),
		SupplierID: uuid.NewString(),
	}

	for _, op := range ops {
		op(&product)
	}

	return product
}

// FakeSupplier returns models.Supplier with fake data.
func FakeSupplier(ops ...func(s *models.Supplier)) models.Supplier {
	supplier := models.Supplier{
		ID:      uuid.NewString(),
		Name:    faker.Word(),
		URL:     faker.URL(),
		Dialect: "standard",
		MarkupRules: []models.MarkupRule{
			{From: 0, To: 100, Markup: float64(rand.Intn(50))},
			{From: 100.01, To: 99999, Markup: float64(rand.Intn(50))},
		},
		ConversionRate: 1,
		Profitability:  float64(rand.Intn(40)),
		CreatedAt:      time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC),
	}

	for _, op := range ops {
		op(&supplier)
	}

	return supplier
}

// FakeStoreCategory returns root models.StoreCategory with fake data.
func FakeStoreCategory(ops ...func(c *models.StoreCategory)) models.StoreCategory {
	category := models.StoreCategory{
		ID:            uuid.NewString(),
		Name:          faker.Word(),
		RawCategories: []string{faker.Word()},
	}

	for _, op := range ops {
		op(&category)
	}

	return category
}

func fakePrice() string {
	return fmt.Sprintf("%d.%02d", rand.Intn(1000), rand.Intn(100))
}

func fakeImages() []string {
	imagesLen := rand.Intn(5)
	images := make([]string, 0, imagesLen)
	for ix := range imagesLen {
		images = append(images, fmt.Sprintf("%s/%d.jpg", faker.URL(), ix))
	}

	return images
}

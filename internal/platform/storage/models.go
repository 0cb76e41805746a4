package storage

import (
	"encoding/json"
	"math"

	"github.com/MichalMitros/supplier-feed-sync/internal/platform/models"
	"github.com/samber/lo"

	pgmodels "github.com/MichalMitros/supplier-feed-sync/internal/platform/storage/gen/postgres/public/model"
)

//go:generate make -C ../../../ generate-db

func toDBRun(run *models.Run) *pgmodels.Run {
	return &pgmodels.Run{
		ID:              int32(run.ID),
		SupplierID:      run.SupplierID,
		Mode:            string(run.Mode),
		CreatedAt:       run.CreatedAt,
		FinishedAt:      run.FinishedAt,
		Success:         run.IsSuccess,
		StatusMessage:   run.StatusMessage,
		CreatedProducts: run.CreatedProducts,
		UpdatedProducts: run.UpdatedProducts,
		SkippedProducts: run.SkippedProducts,
	}
}

// FromDBRun converts postgres run model into models.Run.
func FromDBRun(run *pgmodels.Run) *models.Run {
	return &models.Run{
		ID:              int(run.ID),
		SupplierID:      run.SupplierID,
		Mode:            models.SyncMode(run.Mode),
		CreatedAt:       run.CreatedAt,
		FinishedAt:      run.FinishedAt,
		IsSuccess:       run.Success,
		StatusMessage:   run.StatusMessage,
		CreatedProducts: run.CreatedProducts,
		UpdatedProducts: run.UpdatedProducts,
		SkippedProducts: run.SkippedProducts,
	}
}

// ToDBSupplier converts models.Supplier into postgres supplier model.
func ToDBSupplier(supplier *models.Supplier) (*pgmodels.Supplier, error) {
	rules, err := json.Marshal(lo.Ternary(supplier.MarkupRules == nil, []models.MarkupRule{}, supplier.MarkupRules))
	if err != nil {
		return nil, err
	}

	return &pgmodels.Supplier{
		ID:             supplier.ID,
		Name:           supplier.Name,
		URL:            supplier.URL,
		Dialect:        supplier.Dialect,
		MarkupRules:    string(rules),
		ConversionRate: supplier.ConversionRate,
		Profitability:  supplier.Profitability,
		CreatedAt:      supplier.CreatedAt,
	}, nil
}

func fromDBSupplier(supplier *pgmodels.Supplier) (*models.Supplier, error) {
	var rules []models.MarkupRule
	if err := json.Unmarshal([]byte(supplier.MarkupRules), &rules); err != nil {
		return nil, err
	}

	return &models.Supplier{
		ID:             supplier.ID,
		Name:           supplier.Name,
		URL:            supplier.URL,
		Dialect:        supplier.Dialect,
		MarkupRules:    rules,
		ConversionRate: supplier.ConversionRate,
		Profitability:  supplier.Profitability,
		CreatedAt:      supplier.CreatedAt.UTC(),
	}, nil
}

// ToDBProduct converts models.PricedProduct into postgres product model.
func ToDBProduct(product *models.PricedProduct) (*pgmodels.Product, error) {
	attributes, err := json.Marshal(lo.Ternary(product.Attributes == nil, map[string]string{}, product.Attributes))
	if err != nil {
		return nil, err
	}

	images, err := marshalList(product.Images)
	if err != nil {
		return nil, err
	}

	return &pgmodels.Product{
		Key:           product.Key(),
		SupplierID:    product.SupplierID,
		RecordID:      product.ID,
		Name:          product.Name,
		Description:   product.Description,
		RawCategory:   product.RawCategory,
		Category:      product.Category,
		CategoryID:    product.CategoryID,
		Stock:         int32(min(max(product.Stock, 0), math.MaxInt32)),
		RetailPrice:   product.RetailPrice,
		WebOfferPrice: product.WebOfferPrice,
		Price:         product.Price.InexactFloat64(),
		MainImage:     product.MainImage,
		Images:        images,
		Sku:           product.SKU,
		Model:         product.Model,
		Ean:           product.EAN,
		Manufacturer:  product.Manufacturer,
		URL:           product.URL,
		Attributes:    string(attributes),
	}, nil
}

// ToDBCategory converts models.StoreCategory into postgres category model.
func ToDBCategory(category *models.StoreCategory) (*pgmodels.Category, error) {
	rawCategories, err := marshalList(category.RawCategories)
	if err != nil {
		return nil, err
	}

	return &pgmodels.Category{
		ID:            category.ID,
		Name:          category.Name,
		ParentID:      category.ParentID,
		SortOrder:     int32(category.Order),
		RawCategories: rawCategories,
	}, nil
}

func fromDBCategory(category *pgmodels.Category) (models.StoreCategory, error) {
	rawCategories, err := unmarshalList(category.RawCategories)
	if err != nil {
		return models.StoreCategory{}, err
	}

	return models.StoreCategory{
		ID:            category.ID,
		Name:          category.Name,
		ParentID:      category.ParentID,
		Order:         int(category.SortOrder),
		RawCategories: rawCategories,
	}, nil
}

// marshalList stores list as JSON array, nil list is stored as empty array.
func marshalList(items []string) (string, error) {
	list, err := json.Marshal(lo.Ternary(items == nil, []string{}, items))
	if err != nil {
		return "", err
	}
	return string(list), nil
}

func unmarshalList(text string) ([]string, error) {
	items := []string{}
	if text == "" {
		return items, nil
	}
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, err
	}
	return items, nil
}

package feed

import (
	"context"
	"encoding/xml"
	"errors"
	"html"
	"io"
	"strings"

	"github.com/MichalMitros/supplier-feed-sync/internal/platform"
	"github.com/MichalMitros/supplier-feed-sync/internal/platform/models"
	"github.com/MichalMitros/supplier-feed-sync/internal/xmltree"
	"github.com/samber/lo"
)

const googleItemPath = "rss/channel/item"

// GoogleParser parses Google Merchant RSS feeds item by item.
type GoogleParser struct{}

// googleItem is model for product items in Google Merchant feeds.
type googleItem struct {
	ID                  string   `xml:"id"`
	Title               string   `xml:"title"`
	Description         string   `xml:"description"`
	URL                 string   `xml:"link"`
	ImageURL            string   `xml:"image_link"`
	AdditionalImageURLs []string `xml:"additional_image_link"`
	Condition           string   `xml:"condition"`
	Availability        string   `xml:"availability"`
	Quantity            string   `xml:"quantity"`
	Price               string   `xml:"price"`
	SalePrice           string   `xml:"sale_price"`
	Brand               string   `xml:"brand"`
	GTIN                string   `xml:"gtin"`
	MPN                 string   `xml:"mpn"`
	ProductCategory     string   `xml:"google_product_category"`
	ProductType         string   `xml:"product_type"`
	Color               string   `xml:"color"`
	Size                string   `xml:"size"`
	ItemGroupID         string   `xml:"item_group_id"`
}

// Parse decodes all <item> elements of the feed.
func (GoogleParser) Parse(ctx context.Context, supplier string, r io.Reader) ([]models.FeedRecord, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = true
	dec.Entity = xml.HTMLEntity
	dec.CharsetReader = xmltree.CharsetReader

	var records []models.FeedRecord
	for {
		token, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}

		element, ok := token.(xml.StartElement)
		if !ok || element.Name.Local != "item" {
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var item googleItem
		if err := dec.DecodeElement(&item, &element); err != nil {
			return nil, err
		}
		unescapeItemFields(&item)

		record := toFeedRecord(&item)
		finishRecord(&record, len(records))
		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, &platform.FeedFormatError{Supplier: supplier, Path: googleItemPath}
	}
	return records, nil
}

// unescapeItemFields unescapes html characters from item title, description, category and type.
func unescapeItemFields(item *googleItem) {
	item.Title = html.UnescapeString(item.Title)
	item.Description = html.UnescapeString(item.Description)
	item.ProductCategory = html.UnescapeString(item.ProductCategory)
	item.ProductType = html.UnescapeString(item.ProductType)
}

func toFeedRecord(item *googleItem) models.FeedRecord {
	retail := normalizePrice(googlePrice(item.Price))
	offer := normalizePrice(googlePrice(item.SalePrice))
	main, gallery := images(item.ImageURL, item.AdditionalImageURLs)

	category := item.ProductType
	if strings.TrimSpace(category) == "" {
		category = item.ProductCategory
	}

	qty, ok := toInt(strings.TrimSpace(item.Quantity))
	if !ok {
		qty = 0
	}

	return models.FeedRecord{
		ID:            strings.TrimSpace(item.ID),
		Name:          strings.TrimSpace(item.Title),
		Description:   strings.TrimSpace(item.Description),
		RawCategory:   splitCategoryPath(category),
		Stock:         clampStock(qty),
		RetailPrice:   retail,
		WebOfferPrice: offerPrice(offer, retail),
		MainImage:     main,
		Images:        gallery,
		EAN:           nonEmpty(item.GTIN),
		Model:         nonEmpty(item.MPN),
		Manufacturer:  nonEmpty(item.Brand),
		URL:           nonEmpty(item.URL),
		Attributes:    googleAttributes(item),
	}
}

// googlePrice strips currency from "159.00 USD" formatted price.
func googlePrice(price string) string {
	fields := strings.Fields(price)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func googleAttributes(item *googleItem) map[string]string {
	attributes := lo.PickBy(map[string]string{
		"condition":     strings.TrimSpace(item.Condition),
		"availability":  strings.TrimSpace(item.Availability),
		"color":         strings.TrimSpace(item.Color),
		"size":          strings.TrimSpace(item.Size),
		"item_group_id": strings.TrimSpace(item.ItemGroupID),
	}, func(_ string, value string) bool {
		return value != ""
	})
	if len(attributes) == 0 {
		return nil
	}
	return attributes
}

func nonEmpty(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

package feed

import (
	"github.com/MichalMitros/supplier-feed-sync/internal/platform/models"
	"github.com/MichalMitros/supplier-feed-sync/internal/xmltree"
)

var catalogParser = treeParser{
	dialect:     DialectCatalog,
	path:        "catalog/product",
	alwaysArray: []string{"product", "category", "img", "attribute"},
	mapProduct:  mapCatalogProduct,
}

func mapCatalogProduct(product any) models.FeedRecord {
	retail := normalizePrice(text(product, "price_retail"))
	offer := normalizePrice(text(product, "price_offer"))
	main, gallery := images(
		text(product, "image_main"),
		xmltree.Texts(xmltree.Child(xmltree.Child(product, "gallery"), "img")),
	)

	id := xmltree.Attr(product, "sku")
	if id == "" {
		id = text(product, "id")
	}

	return models.FeedRecord{
		ID:            id,
		Name:          text(product, "title", "name"),
		Description:   text(product, "body", "description"),
		RawCategory:   joinCategory(xmltree.Texts(xmltree.Child(xmltree.Child(product, "categories"), "category"))...),
		Stock:         stock(product, "stock_qty", "qty", "in_stock"),
		RetailPrice:   retail,
		WebOfferPrice: offerPrice(offer, retail),
		MainImage:     main,
		Images:        gallery,
		SKU:           optionalText(product, "@_sku"),
		Model:         optionalText(product, "model"),
		EAN:           optionalText(product, "ean"),
		Manufacturer:  optionalText(product, "manufacturer"),
		URL:           optionalText(product, "url"),
		Attributes:    catalogAttributes(product),
	}
}

// catalogAttributes reads <attributes><attribute name="...">value</attribute></attributes>.
func catalogAttributes(product any) map[string]string {
	list, ok := xmltree.Child(xmltree.Child(product, "attributes"), "attribute").([]any)
	if !ok || len(list) == 0 {
		return nil
	}

	attributes := make(map[string]string, len(list))
	for _, attribute := range list {
		name := xmltree.Attr(attribute, "name")
		if name == "" {
			continue
		}
		value := xmltree.Text(attribute)
		if value == "" {
			value = text(attribute, "value")
		}
		attributes[name] = value
	}

	if len(attributes) == 0 {
		return nil
	}
	return attributes
}

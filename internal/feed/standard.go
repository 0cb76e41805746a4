package feed

import (
	"github.com/MichalMitros/supplier-feed-sync/internal/platform/models"
	"github.com/MichalMitros/supplier-feed-sync/internal/xmltree"
)

var standardParser = treeParser{
	dialect:     DialectStandard,
	path:        "products/product",
	alwaysArray: []string{"product", "image"},
	mapProduct:  mapStandardProduct,
}

func mapStandardProduct(product any) models.FeedRecord {
	retail := normalizePrice(text(product, "price", "retail_price"))
	offer := normalizePrice(text(product, "offer_price", "wholesale_price", "web_price"))
	main, gallery := images(
		text(product, "image", "main_image"),
		xmltree.Texts(xmltree.Child(xmltree.Child(product, "images"), "image")),
	)

	return models.FeedRecord{
		ID:            text(product, "id", "code"),
		Name:          text(product, "name", "title"),
		Description:   text(product, "description"),
		RawCategory:   splitCategoryPath(text(product, "category", "category_path")),
		Stock:         stock(product, "quantity", "qty", "stock", "availability"),
		RetailPrice:   retail,
		WebOfferPrice: offerPrice(offer, retail),
		MainImage:     main,
		Images:        gallery,
		SKU:           optionalText(product, "sku"),
		Model:         optionalText(product, "model"),
		EAN:           optionalText(product, "ean", "barcode"),
		Manufacturer:  optionalText(product, "manufacturer", "brand"),
		URL:           optionalText(product, "url", "link"),
	}
}

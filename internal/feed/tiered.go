package feed

import (
	"github.com/MichalMitros/supplier-feed-sync/internal/platform/models"
	"github.com/MichalMitros/supplier-feed-sync/internal/xmltree"
)

var tieredParser = treeParser{
	dialect:     DialectTiered,
	path:        "Catalog/Products/Product",
	alwaysArray: []string{"Product", "Image"},
	mapProduct:  mapTieredProduct,
}

func mapTieredProduct(product any) models.FeedRecord {
	retail := normalizePrice(text(product, "RetailPrice"))
	wholesale := normalizePrice(text(product, "WholesalePrice"))
	main, gallery := images(
		text(product, "MainImage"),
		xmltree.Texts(xmltree.Child(xmltree.Child(product, "Gallery"), "Image")),
	)

	return models.FeedRecord{
		ID:          text(product, "Code", "Id"),
		Name:        text(product, "Name"),
		Description: text(product, "Description"),
		RawCategory: joinCategory(
			text(product, "Category1"),
			text(product, "Category2"),
			text(product, "Category3"),
		),
		Stock:         stock(product, "Stock", "Quantity", "Qty"),
		RetailPrice:   retail,
		WebOfferPrice: offerPrice(wholesale, retail),
		MainImage:     main,
		Images:        gallery,
		Model:         optionalText(product, "Model"),
		EAN:           optionalText(product, "EAN"),
		Manufacturer:  optionalText(product, "Manufacturer"),
		URL:           optionalText(product, "Url"),
	}
}

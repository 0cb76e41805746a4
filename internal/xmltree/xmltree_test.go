package xmltree_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/MichalMitros/supplier-feed-sync/internal/xmltree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitDecode(t *testing.T) {
	tests := map[string]struct {
		xml  string
		opts []xmltree.Option
		want map[string]any
	}{
		"single child collapses to scalar": {
			xml: `<products><product><name>Desk</name></product></products>`,
			want: map[string]any{
				"products": map[string]any{
					"product": map[string]any{"name": "Desk"},
				},
			},
		},
		"repeated children become list": {
			xml: `<products><product><name>Desk</name></product><product><name>Chair</name></product></products>`,
			want: map[string]any{
				"products": map[string]any{
					"product": []any{
						map[string]any{"name": "Desk"},
						map[string]any{"name": "Chair"},
					},
				},
			},
		},
		"always array keeps single child in list": {
			xml:  `<products><product><name>Desk</name><images><image>a.jpg</image></images></product></products>`,
			opts: []xmltree.Option{xmltree.WithAlwaysArray("product", "image")},
			want: map[string]any{
				"products": map[string]any{
					"product": []any{
						map[string]any{
							"name":   "Desk",
							"images": map[string]any{"image": []any{"a.jpg"}},
						},
					},
				},
			},
		},
		"attributes and text": {
			xml: `<catalog><product sku="A-1"><title> <![CDATA[Office <b>Desk</b>]]> </title><price currency="EUR">10,5</price></product></catalog>`,
			want: map[string]any{
				"catalog": map[string]any{
					"product": map[string]any{
						"@_sku": "A-1",
						"title": "Office <b>Desk</b>",
						"price": map[string]any{"@_currency": "EUR", "#text": "10,5"},
					},
				},
			},
		},
		"html entities": {
			xml: `<products><product><name>Office&nbsp;Desk &euro; &amp; Chair</name></product></products>`,
			want: map[string]any{
				"products": map[string]any{
					"product": map[string]any{"name": "Office\u00a0Desk € & Chair"},
				},
			},
		},
		"empty element": {
			xml: `<products><product><image/></product></products>`,
			want: map[string]any{
				"products": map[string]any{
					"product": map[string]any{"image": ""},
				},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := xmltree.Decode(strings.NewReader(tt.xml), tt.opts...)

			require.NoError(t, err, "shouldn't return any error")
			assert.Equal(t, tt.want, got, "should decode correct tree")
		})
	}
}

func TestUnitDecodeErrors(t *testing.T) {
	tests := map[string]string{
		"mismatched tags": "<products><product></products>",
		"not closed":      "<products><product>",
		"empty document":  "",
		"unknown entity":  "<products><product>&bogus;</product></products>",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := xmltree.Decode(strings.NewReader(doc))

			require.Error(t, err, "should return decoding error")
		})
	}
}

func TestUnitDecodeCharset(t *testing.T) {
	doc := bytes.Join([][]byte{
		[]byte(`<?xml version="1.0" encoding="windows-1250"?><products><product><name>`),
		{0x8A, 'e', 'f'},
		[]byte(`</name></product></products>`),
	}, nil)

	got, err := xmltree.Decode(bytes.NewReader(doc))

	require.NoError(t, err, "shouldn't return any error")
	products := xmltree.FindProductArray(got)
	require.Len(t, products, 1, "should find one product")
	assert.Equal(t, "Šef", xmltree.Text(xmltree.Child(products[0], "name")), "should decode windows-1250 text")
}

func TestUnitText(t *testing.T) {
	tests := map[string]struct {
		node any
		want string
	}{
		"nil":             {node: nil, want: ""},
		"string":          {node: "  Desk \n", want: "Desk"},
		"float":           {node: 10.5, want: "10.5"},
		"int":             {node: 7, want: "7"},
		"json number":     {node: json.Number("12"), want: "12"},
		"bool":            {node: true, want: "true"},
		"list":            {node: []any{" first ", "second"}, want: "first"},
		"empty list":      {node: []any{}, want: ""},
		"text node":       {node: map[string]any{"#text": " Desk "}, want: "Desk"},
		"cdata node":      {node: map[string]any{"__cdata": "<p>Desk</p>"}, want: "<p>Desk</p>"},
		"compact text":    {node: map[string]any{"_text": "Desk"}, want: "Desk"},
		"text precedence": {node: map[string]any{"_text": "b", "#text": "a"}, want: "a"},
		"nested list":     {node: []any{map[string]any{"#text": "x"}}, want: "x"},
		"object no text":  {node: map[string]any{"name": "Desk"}, want: ""},
		"unknown type":    {node: struct{}{}, want: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, xmltree.Text(tt.node), "should return correct text")
		})
	}
}

func TestUnitTexts(t *testing.T) {
	assert.Nil(t, xmltree.Texts(nil), "should return nil for missing node")
	assert.Equal(t, []string{"a"}, xmltree.Texts("a"), "should wrap single node")
	assert.Equal(t, []string{"a", "b"}, xmltree.Texts([]any{"a", "", map[string]any{"#text": "b"}}),
		"should skip empty texts",
	)
}

func TestUnitChild(t *testing.T) {
	node := map[string]any{"Qty": "3", "name": "Desk"}

	assert.Equal(t, "3", xmltree.Child(node, "quantity", "qty"), "should match names case-insensitively in order")
	assert.Equal(t, "Desk", xmltree.Child([]any{node}, "name"), "should use first list element")
	assert.Nil(t, xmltree.Child(node, "stock"), "should return nil for missing child")
	assert.Nil(t, xmltree.Child("Desk", "name"), "should return nil for scalar node")
	assert.Equal(t, "A-1", xmltree.Attr(map[string]any{"@_sku": "A-1"}, "sku"), "should return attribute")
}

func TestUnitFindProductArray(t *testing.T) {
	desk := map[string]any{"name": "Desk"}
	chair := map[string]any{"name": "Chair"}

	tests := map[string]struct {
		doc  any
		want []any
	}{
		"list under root": {
			doc:  map[string]any{"products": map[string]any{"product": []any{desk, chair}}},
			want: []any{desk, chair},
		},
		"single product is wrapped": {
			doc:  map[string]any{"products": map[string]any{"product": desk}},
			want: []any{desk},
		},
		"any casing and depth": {
			doc:  map[string]any{"Catalog": map[string]any{"Products": map[string]any{"PRODUCT": []any{desk}}}},
			want: []any{desk},
		},
		"scalar product key is skipped": {
			doc: map[string]any{
				"a": map[string]any{"product": "not a product"},
				"b": map[string]any{"product": []any{chair}},
			},
			want: []any{chair},
		},
		"no product key": {
			doc:  map[string]any{"Feed": map[string]any{"Items": map[string]any{"Item": []any{desk}}}},
			want: []any{},
		},
		"nil document": {
			doc:  nil,
			want: []any{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, xmltree.FindProductArray(tt.doc), "should find correct products")
		})
	}
}

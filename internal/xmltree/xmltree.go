// Package xmltree converts XML documents into generic trees and extracts values from them
// regardless of how a supplier shaped its feed.
package xmltree

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

const (
	// TextKey holds element text when element also has attributes or children.
	TextKey = "#text"
	// CDataKey holds CDATA content in trees produced by CDATA-aware converters.
	CDataKey = "__cdata"
	// AltTextKey holds element text in compact-style trees.
	AltTextKey = "_text"
	// AttributePrefix prefixes attribute keys.
	AttributePrefix = "@_"
)

// ErrEmptyDocument is returned when document has no root element.
var ErrEmptyDocument = errors.New("xml document has no root element")

// Option configures Decode.
type Option func(o *options)

type options struct {
	alwaysArray map[string]struct{}
}

// WithAlwaysArray makes listed elements always decode into []any, even when only one instance is present.
func WithAlwaysArray(names ...string) Option {
	return func(o *options) {
		for _, name := range names {
			o.alwaysArray[name] = struct{}{}
		}
	}
}

// Decode decodes XML document into a tree.
// Elements without attributes and children become strings, other elements become map[string]any
// with attributes under AttributePrefix keys and text under TextKey. Repeated elements become []any.
func Decode(r io.Reader, opts ...Option) (map[string]any, error) {
	o := options{alwaysArray: map[string]struct{}{}}
	for _, opt := range opts {
		opt(&o)
	}

	dec := xml.NewDecoder(r)
	dec.Strict = true
	dec.Entity = xml.HTMLEntity
	dec.CharsetReader = CharsetReader

	root := make(map[string]any)
	for {
		token, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}

		value, err := o.decodeElement(dec, start)
		if err != nil {
			return nil, err
		}
		o.add(root, start.Name.Local, value)
	}

	if len(root) == 0 {
		return nil, ErrEmptyDocument
	}

	return root, nil
}

func (o *options) decodeElement(dec *xml.Decoder, start xml.StartElement) (any, error) {
	node := make(map[string]any, len(start.Attr))
	for _, attr := range start.Attr {
		node[AttributePrefix+attr.Name.Local] = attr.Value
	}

	var text strings.Builder
	for {
		token, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("element <%s> not closed: %w", start.Name.Local, io.ErrUnexpectedEOF)
			}
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			child, err := o.decodeElement(dec, t)
			if err != nil {
				return nil, err
			}
			o.add(node, t.Name.Local, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			content := strings.TrimSpace(text.String())
			if len(node) == 0 {
				return content, nil
			}
			if content != "" {
				node[TextKey] = content
			}
			return node, nil
		}
	}
}

func (o *options) add(node map[string]any, name string, value any) {
	existing, exists := node[name]
	if !exists {
		if _, ok := o.alwaysArray[name]; ok {
			node[name] = []any{value}
			return
		}
		node[name] = value
		return
	}

	if list, ok := existing.([]any); ok {
		node[name] = append(list, value)
		return
	}
	node[name] = []any{existing, value}
}

// CharsetReader converts input in provided charset into UTF-8. It is meant for xml.Decoder.CharsetReader.
func CharsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", label, err)
	}
	return enc.NewDecoder().Reader(input), nil
}

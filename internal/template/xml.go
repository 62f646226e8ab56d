// internal/template/xml.go
package template

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/folioengine/folio/internal/errdefs"
)

// The XML vocabulary mirrors the declaration maps one to one: container
// tags (<grid>, <table>, <stack>) carry layout attributes, <row> and <cell>
// shape the structure, <label> and <field> are leaves, <line>, <header> and
// <footer> attach to their container. Attribute values stay strings except
// where the vocabulary pins an integer or boolean type.

// intAttrs are attributes always coerced to integers.
var intAttrs = map[string]bool{
	"x":        true,
	"y":        true,
	"col":      true,
	"row":      true,
	"colspan":  true,
	"rowspan":  true,
	"position": true,
	"start":    true,
	"end":      true,
	"level":    true,
	"digits":   true,
}

// boolAttrs are attributes coerced to booleans.
var boolAttrs = map[string]bool{
	"repeat": true,
}

// styleAttrs are leaf attributes gathered under the style map instead of
// the element itself.
var styleAttrs = map[string]bool{
	"color":       true,
	"font-weight": true,
	"font-family": true,
	"font-size":   true,
	"valign":      true,
}

// LoadXML parses an XML template into a kind-tagged declaration map.
func LoadXML(r io.Reader) (map[string]any, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("parsing XML template: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("XML template has no root element")
	}
	return containerFromElement(root)
}

// containerFromElement maps a container element onto a kind-tagged map. The
// tag becomes the kind; the pipeline decides whether it is a supported one.
func containerFromElement(el *etree.Element) (map[string]any, error) {
	m := map[string]any{"kind": strings.ToLower(el.Tag)}
	if err := applyAttrs(m, el); err != nil {
		return nil, err
	}

	var children, lines, headers, footers []any
	for _, child := range el.ChildElements() {
		switch strings.ToLower(child.Tag) {
		case "row":
			row, err := rowFromElement(child)
			if err != nil {
				return nil, err
			}
			children = append(children, row)
		case "cell":
			cell, err := cellFromElement(child)
			if err != nil {
				return nil, err
			}
			children = append(children, cell)
		case "label", "field":
			leaf, err := leafFromElement(child)
			if err != nil {
				return nil, err
			}
			children = append(children, leaf)
		case "grid", "table", "stack":
			nested, err := containerFromElement(child)
			if err != nil {
				return nil, err
			}
			children = append(children, nested)
		case "line":
			line := map[string]any{}
			if err := applyAttrs(line, child); err != nil {
				return nil, err
			}
			lines = append(lines, line)
		case "header":
			group, err := bandGroupFromElement(child)
			if err != nil {
				return nil, err
			}
			headers = append(headers, group)
		case "footer":
			group, err := bandGroupFromElement(child)
			if err != nil {
				return nil, err
			}
			footers = append(footers, group)
		default:
			return nil, fmt.Errorf("unknown template element <%s>", child.Tag)
		}
	}

	if children != nil {
		m["children"] = children
	}
	if lines != nil {
		m["lines"] = lines
	}
	if headers != nil {
		m["headers"] = headers
	}
	if footers != nil {
		m["footers"] = footers
	}
	return m, nil
}

// rowFromElement always sets the cells key, since its presence is what
// marks the map as a row.
func rowFromElement(el *etree.Element) (map[string]any, error) {
	m := map[string]any{}
	if err := applyAttrs(m, el); err != nil {
		return nil, err
	}

	cells := []any{}
	for _, child := range el.ChildElements() {
		switch strings.ToLower(child.Tag) {
		case "cell":
			cell, err := cellFromElement(child)
			if err != nil {
				return nil, err
			}
			cells = append(cells, cell)
		case "label", "field":
			leaf, err := leafFromElement(child)
			if err != nil {
				return nil, err
			}
			cells = append(cells, leaf)
		case "grid", "table", "stack":
			nested, err := containerFromElement(child)
			if err != nil {
				return nil, err
			}
			cells = append(cells, nested)
		default:
			return nil, fmt.Errorf("unknown template element <%s> in a row", child.Tag)
		}
	}
	m["cells"] = cells
	return m, nil
}

// cellFromElement always sets the content key, since an attribute-less
// empty cell would otherwise be indistinguishable from a leaf.
func cellFromElement(el *etree.Element) (map[string]any, error) {
	m := map[string]any{}
	if err := applyAttrs(m, el); err != nil {
		return nil, err
	}

	content := []any{}
	for _, child := range el.ChildElements() {
		switch strings.ToLower(child.Tag) {
		case "label", "field":
			leaf, err := leafFromElement(child)
			if err != nil {
				return nil, err
			}
			content = append(content, leaf)
		case "grid", "table", "stack":
			nested, err := containerFromElement(child)
			if err != nil {
				return nil, err
			}
			content = append(content, nested)
		default:
			return nil, fmt.Errorf("unknown template element <%s> in a cell", child.Tag)
		}
	}
	m["content"] = content
	return m, nil
}

// leafFromElement maps <label> and <field> elements. Label text is the
// element body; a field's source may come from the attribute or the body.
func leafFromElement(el *etree.Element) (map[string]any, error) {
	m := map[string]any{}
	style := map[string]any{}
	for _, attr := range el.Attr {
		if styleAttrs[attr.Key] {
			style[attr.Key] = attr.Value
			continue
		}
		value, err := attrValue(attr.Key, attr.Value)
		if err != nil {
			return nil, err
		}
		m[attr.Key] = value
	}
	if len(style) > 0 {
		m["style"] = style
	}

	switch strings.ToLower(el.Tag) {
	case "label":
		m["text"] = strings.TrimSpace(el.Text())
	case "field":
		if _, ok := m["source"]; !ok {
			m["source"] = strings.TrimSpace(el.Text())
		}
	}
	return m, nil
}

// bandGroupFromElement maps a <header> or <footer> element; only rows may
// appear inside.
func bandGroupFromElement(el *etree.Element) (map[string]any, error) {
	m := map[string]any{}
	if err := applyAttrs(m, el); err != nil {
		return nil, err
	}

	rows := []any{}
	for _, child := range el.ChildElements() {
		if strings.ToLower(child.Tag) != "row" {
			return nil, fmt.Errorf("unknown template element <%s> in a %s", child.Tag, strings.ToLower(el.Tag))
		}
		row, err := rowFromElement(child)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	m["rows"] = rows
	return m, nil
}

func applyAttrs(m map[string]any, el *etree.Element) error {
	for _, attr := range el.Attr {
		value, err := attrValue(attr.Key, attr.Value)
		if err != nil {
			return err
		}
		m[attr.Key] = value
	}
	return nil
}

// attrValue coerces an attribute per the vocabulary's typing. The columns
// and rows attributes accept a bare count as well as a track list, so a
// purely numeric value becomes an int.
func attrValue(key, raw string) (any, error) {
	switch {
	case intAttrs[key]:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errdefs.NewInvalidPropertyError(key, raw, "an integer")
		}
		return n, nil
	case boolAttrs[key]:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errdefs.NewInvalidPropertyError(key, raw, "a boolean")
		}
		return b, nil
	case key == "columns" || key == "rows":
		if n, err := strconv.Atoi(raw); err == nil {
			return n, nil
		}
		return raw, nil
	default:
		return raw, nil
	}
}

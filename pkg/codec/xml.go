package codec

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/menusys/pkg/domain"
)

const (
	tagMenu   = "menu"
	tagChoice = "choice"

	xmlHeader = `<?xml version="1.0" ?>` + "\n"
)

func encodeXML(w io.Writer, menu *domain.Menu) error {
	if _, err := io.WriteString(w, xmlHeader); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "\t")
	if err := encodeMenuXML(enc, menu); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func encodeMenuXML(enc *xml.Encoder, menu *domain.Menu) error {
	start := xml.StartElement{
		Name: xml.Name{Local: tagMenu},
		Attr: []xml.Attr{
			attr("title", menu.Title),
			attr("prompt", menu.Prompt),
		},
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}

	for _, c := range menu.Choices {
		if c == nil {
			continue
		}
		el := xml.StartElement{
			Name: xml.Name{Local: tagChoice},
			Attr: []xml.Attr{
				attr("selector", c.Selector),
				attr("description", c.Description),
				attr("value", c.Value),
				attr("handler", c.HandlerName()),
			},
		}
		if err := enc.EncodeToken(el); err != nil {
			return err
		}
		if c.SubMenu != nil {
			if err := encodeMenuXML(enc, c.SubMenu); err != nil {
				return err
			}
		}
		if err := enc.EncodeToken(el.End()); err != nil {
			return err
		}
	}

	return enc.EncodeToken(start.End())
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

// xmlDecoder walks the token stream so that tag matching stays
// case-insensitive and unknown content can be skipped.
type xmlDecoder struct {
	dec      *xml.Decoder
	resolver domain.Resolver
	strict   bool
}

func decodeXML(r io.Reader, resolver domain.Resolver, strict bool) (*domain.Menu, error) {
	d := &xmlDecoder{
		dec:      xml.NewDecoder(r),
		resolver: resolver,
		strict:   strict,
	}

	for {
		tok, err := d.dec.Token()
		if err == io.EOF {
			return nil, &DecodeError{Element: tagMenu, Err: errors.New("document has no root element")}
		}
		if err != nil {
			return nil, d.syntaxError(tagMenu, err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		// The root is treated as a menu whatever its tag.
		if d.strict && !isTag(start, tagMenu) {
			return nil, d.unknown(start)
		}
		return d.menu(start)
	}
}

func (d *xmlDecoder) menu(start xml.StartElement) (*domain.Menu, error) {
	menu := domain.NewMenu(attrValue(start, "title"), attrValue(start, "prompt"))

	for {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, d.syntaxError(tagMenu, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if !isTag(t, tagChoice) {
				if err := d.skipUnknown(t); err != nil {
					return nil, err
				}
				continue
			}
			choice, err := d.choice(t)
			if err != nil {
				return nil, err
			}
			menu.Add(choice)
		case xml.EndElement:
			return menu, nil
		}
	}
}

func (d *xmlDecoder) choice(start xml.StartElement) (*domain.Choice, error) {
	line, _ := d.dec.InputPos()

	raw := attrValue(start, "selector")
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil, &DecodeError{Element: tagChoice, Attr: "selector", Line: line, Err: fmt.Errorf("selector %q is not an integer", raw)}
	}
	selector := strconv.Itoa(n)

	value, ok := lookupAttr(start, "value")
	if !ok {
		value = selector
	}

	name, ok := lookupAttr(start, "handler")
	if !ok {
		return nil, &DecodeError{Element: tagChoice, Attr: "handler", Line: line, Err: ErrMissingHandler}
	}
	handler, err := resolveHandler(d.resolver, name)
	if err != nil {
		return nil, fmt.Errorf("choice %s (line %d): %w", selector, line, err)
	}

	choice := domain.NewChoice(selector, attrValue(start, "description"), value, handler)

	for {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, d.syntaxError(tagChoice, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case isTag(t, tagMenu) && choice.SubMenu == nil:
				sub, err := d.menu(t)
				if err != nil {
					return nil, err
				}
				choice.SubMenu = sub
			case isTag(t, tagMenu):
				// Only the first nested menu counts.
				if err := d.dec.Skip(); err != nil {
					return nil, d.syntaxError(tagChoice, err)
				}
			default:
				if err := d.skipUnknown(t); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			return choice, nil
		}
	}
}

func (d *xmlDecoder) skipUnknown(start xml.StartElement) error {
	if d.strict {
		return d.unknown(start)
	}
	if err := d.dec.Skip(); err != nil {
		return d.syntaxError(start.Name.Local, err)
	}
	return nil
}

func (d *xmlDecoder) unknown(start xml.StartElement) error {
	line, _ := d.dec.InputPos()
	return &DecodeError{Element: start.Name.Local, Line: line, Err: ErrUnknownElement}
}

func (d *xmlDecoder) syntaxError(element string, err error) error {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	line, _ := d.dec.InputPos()
	return &DecodeError{Element: element, Line: line, Err: err}
}

// resolveHandler binds name through resolver. Only the "None" token means no
// handler; every other name, the empty one included, must resolve.
func resolveHandler(resolver domain.Resolver, name string) (*domain.Handler, error) {
	if name == domain.NoHandlerName {
		return nil, nil
	}
	if resolver == nil {
		return nil, &domain.NameResolutionError{Name: name}
	}
	return resolver.Resolve(name)
}

func isTag(start xml.StartElement, tag string) bool {
	return strings.EqualFold(start.Name.Local, tag)
}

func lookupAttr(start xml.StartElement, name string) (string, bool) {
	for _, a := range start.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

func attrValue(start xml.StartElement, name string) string {
	v, _ := lookupAttr(start, name)
	return v
}

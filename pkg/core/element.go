package core

import (
	"fmt"

	"github.com/go-weft/weft/pkg/errors"
)

// Props maps attribute names to values. Keys beginning with "on"
// (onClick, onInput, ...) are event listeners; their values must be
// host.Listener. Child elements are carried on Element.Children, never
// inside Props.
type Props map[string]any

// NodeType identifies what an element describes. It is a sealed
// union: HostType, TextType, or CompositeType.
type NodeType interface {
	isNodeType()
}

// HostType is a host-node tag such as "div".
type HostType string

func (HostType) isNodeType() {}

// TextType marks a text leaf. The scalar lives in Props under "value".
type TextType struct{}

func (TextType) isNodeType() {}

// RenderFunc produces a component's output element for the given
// props and declared children. It must call hooks unconditionally and
// in the same order on every invocation.
type RenderFunc func(r *Renderer, props Props, children []Element) Element

// CompositeType is a function component. Two composite elements are
// considered the same type when they share the same render function.
type CompositeType struct {
	// Name labels the component in diagnostics.
	Name string
	// Render produces the component's single output element.
	Render RenderFunc
}

func (CompositeType) isNodeType() {}

// Composite wraps a render function as an element type.
func Composite(name string, render RenderFunc) CompositeType {
	return CompositeType{Name: name, Render: render}
}

// Element is an immutable description of one UI node. Elements are
// created fresh on every render pass and never mutated; reconciliation
// reads them and discards them.
type Element struct {
	Type     NodeType
	Props    Props
	Children []Element
}

// NewElement builds an element from a type, props, and children.
//
// Children may be Elements, strings, or numbers; strings and numbers
// become text leaves. Nil and boolean children are filtered out, which
// lets callers write conditional children inline. Any other child
// value is dropped with a diagnostic.
//
// NewElement is pure: equal arguments yield value-equal elements.
func NewElement(typ NodeType, props Props, children ...any) Element {
	el := Element{Type: typ, Props: props}
	if len(children) == 0 {
		return el
	}
	el.Children = make([]Element, 0, len(children))
	for _, child := range children {
		switch c := child.(type) {
		case nil:
			// Filtered: render-nothing placeholder.
		case bool:
			// Filtered: lets callers write cond && element idioms.
		case Element:
			el.Children = append(el.Children, c)
		case string:
			el.Children = append(el.Children, Text(c))
		case int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64,
			float32, float64:
			el.Children = append(el.Children, Text(c))
		default:
			errors.Report(&errors.WeftError{
				Op:   "core.NewElement",
				Kind: errors.KindElement,
				Err:  fmt.Errorf("unsupported child of type %T", child),
			})
		}
	}
	return el
}

// Host builds a host-node element.
func Host(tag string, props Props, children ...any) Element {
	return NewElement(HostType(tag), props, children...)
}

// Text builds a text leaf holding the given scalar.
func Text(value any) Element {
	return Element{Type: TextType{}, Props: Props{"value": value}}
}

// typeName labels a node type for diagnostics.
func typeName(t NodeType) string {
	switch tt := t.(type) {
	case HostType:
		return string(tt)
	case TextType:
		return "#text"
	case CompositeType:
		if tt.Name != "" {
			return tt.Name
		}
		return "composite"
	}
	return "#root"
}

// textValue renders the scalar carried by a text element's props.
func textValue(props Props) string {
	return fmt.Sprint(props["value"])
}

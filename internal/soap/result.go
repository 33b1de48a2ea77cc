package soap

import (
	"strings"

	"github.com/beevik/etree"
)

// Result is the parsed outcome of one operation: the full response document
// plus a handle on the <OperationResult> element inside it.
type Result struct {
	op     Operation
	doc    *etree.Document
	result *etree.Element
}

// Operation returns the operation this result belongs to.
func (r *Result) Operation() Operation { return r.op }

// Document returns the complete parsed response envelope.
func (r *Result) Document() *etree.Document { return r.doc }

// Element returns the result element, or nil when the response carried none.
func (r *Result) Element() *etree.Element { return r.result }

// Text returns the character data of the result element. Operations that
// answer with a plain token (Authenticate) deliver it here.
func (r *Result) Text() string {
	if r.result == nil {
		return ""
	}
	return r.result.Text()
}

// InnerXML serializes the child elements of the result element. Operations
// that answer with an XML fragment deliver it here.
func (r *Result) InnerXML() string {
	if r.result == nil {
		return ""
	}
	var sb strings.Builder
	for _, child := range r.result.ChildElements() {
		d := etree.NewDocument()
		d.SetRoot(child.Copy())
		s, err := d.WriteToString()
		if err != nil {
			continue
		}
		sb.WriteString(s)
	}
	return sb.String()
}

// PayloadXML returns the embedded XML payload of the result, whether the
// service delivered it as escaped text or as literal child elements.
func (r *Result) PayloadXML() string {
	if t := strings.TrimSpace(r.Text()); t != "" {
		return t
	}
	return r.InnerXML()
}

// First does a depth-first search below the result element for the first
// element with the given local tag name.
func (r *Result) First(tag string) *etree.Element {
	if r.result == nil {
		return nil
	}
	return firstLocal(r.result, tag)
}

func firstLocal(e *etree.Element, tag string) *etree.Element {
	for _, c := range e.ChildElements() {
		if c.Tag == tag {
			return c
		}
		if found := firstLocal(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func childLocal(e *etree.Element, tag string) *etree.Element {
	for _, c := range e.ChildElements() {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

package xmlrpc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/pkg/errors"
)

// Fault is a protocol-level error envelope returned by the gateway.
// It always aborts the current call.
type Fault struct {
	Code    int
	Message string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("gateway fault %d: %s", f.Code, f.Message)
}

// Response wraps the decoded param value of a successful methodResponse
type Response struct {
	value Value
}

// DecodeResponse parses raw gateway response text. A fault envelope is
// returned as *Fault; otherwise the response value tree is built in a
// single structural pass. The input is never mutated and decoding is
// safe for concurrent use.
func DecodeResponse(raw string) (*Response, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(raw); err != nil {
		return nil, errors.Wrap(err, "could not parse gateway response")
	}
	root := doc.Root()
	if root == nil || root.Tag != "methodResponse" {
		return nil, errors.New("gateway response is not a methodResponse")
	}

	if fault := root.SelectElement("fault"); fault != nil {
		return nil, decodeFault(fault)
	}

	params := root.SelectElement("params")
	if params == nil {
		return &Response{value: Value{Kind: KindNil}}, nil
	}
	param := params.SelectElement("param")
	if param == nil {
		return &Response{value: Value{Kind: KindNil}}, nil
	}
	value := param.SelectElement("value")
	if value == nil {
		return &Response{value: Value{Kind: KindNil}}, nil
	}
	return &Response{value: decodeValue(value)}, nil
}

func decodeFault(fault *etree.Element) *Fault {
	out := &Fault{Code: -1, Message: "unknown fault"}
	value := fault.SelectElement("value")
	if value == nil {
		return out
	}
	decoded := decodeValue(value)
	if decoded.Kind != KindStruct {
		return out
	}
	if code, ok := decoded.Struct["faultCode"]; ok && code.Kind == KindInt {
		out.Code = code.Int
	}
	if msg, ok := decoded.Struct["faultString"]; ok && msg.Kind == KindString {
		out.Message = msg.Str
	}
	return out
}

// decodeValue projects one <value> element to a tagged Value. Unknown
// or malformed scalars decode to their kind's zero value rather than
// aborting the pass.
func decodeValue(value *etree.Element) Value {
	typed := firstChildElement(value)
	if typed == nil {
		// bare <value>text</value> is a string per the protocol
		return Value{Kind: KindString, Str: value.Text()}
	}

	switch typed.Tag {
	case "int", "i4", "i8":
		n, _ := strconv.Atoi(strings.TrimSpace(typed.Text()))
		return Value{Kind: KindInt, Int: n}
	case "double":
		f, _ := strconv.ParseFloat(strings.TrimSpace(typed.Text()), 64)
		return Value{Kind: KindDouble, Double: f}
	case "string":
		return Value{Kind: KindString, Str: typed.Text()}
	case "boolean":
		text := strings.ToLower(strings.TrimSpace(typed.Text()))
		return Value{Kind: KindBoolean, Bool: text == "1" || text == "true"}
	case "nil":
		return Value{Kind: KindNil}
	case "array":
		out := Value{Kind: KindArray}
		if data := typed.SelectElement("data"); data != nil {
			for _, entry := range data.SelectElements("value") {
				out.Array = append(out.Array, decodeValue(entry))
			}
		}
		return out
	case "struct":
		out := Value{Kind: KindStruct, Struct: map[string]Value{}}
		for _, member := range typed.SelectElements("member") {
			name := member.SelectElement("name")
			memberValue := member.SelectElement("value")
			if name == nil || memberValue == nil {
				continue
			}
			out.Struct[strings.TrimSpace(name.Text())] = decodeValue(memberValue)
		}
		return out
	}
	return Value{Kind: KindString, Str: typed.Text()}
}

func firstChildElement(el *etree.Element) *etree.Element {
	children := el.ChildElements()
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

// Value returns the decoded response payload
func (r *Response) Value() Value {
	return r.value
}

// Fields projects a struct response to native name/value pairs.
// Non-struct responses yield an empty map.
func (r *Response) Fields() map[string]interface{} {
	if r.value.Kind != KindStruct {
		return map[string]interface{}{}
	}
	return r.value.Native().(map[string]interface{})
}

// Records locates the named array member of a struct response and
// projects each struct entry to native values. A missing array member
// yields an empty sequence, never an error. Source order is preserved.
func (r *Response) Records(member string) []map[string]interface{} {
	out := []map[string]interface{}{}
	if r.value.Kind != KindStruct {
		return out
	}
	arr, ok := r.value.Struct[member]
	if !ok || arr.Kind != KindArray {
		return out
	}
	for _, entry := range arr.Array {
		if entry.Kind != KindStruct {
			continue
		}
		out = append(out, entry.Native().(map[string]interface{}))
	}
	return out
}

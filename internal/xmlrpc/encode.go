package xmlrpc

import (
	"sort"
	"strconv"

	"github.com/beevik/etree"
)

// EncodeRequest builds an XML-RPC methodCall document for the given
// method and params. Supported param types: nil, int, int64, float64,
// string, bool, []interface{} and map[string]interface{}.
func EncodeRequest(method string, params ...interface{}) string {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0"`)
	call := doc.CreateElement("methodCall")
	call.CreateElement("methodName").SetText(method)
	list := call.CreateElement("params")
	for _, param := range params {
		encodeValue(list.CreateElement("param").CreateElement("value"), param)
	}
	out, _ := doc.WriteToString()
	return out
}

// EncodeResponse builds a methodResponse wrapping the given value
func EncodeResponse(result interface{}) string {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0"`)
	resp := doc.CreateElement("methodResponse")
	value := resp.CreateElement("params").CreateElement("param").CreateElement("value")
	encodeValue(value, result)
	out, _ := doc.WriteToString()
	return out
}

// EncodeFault builds a fault envelope, used by tests to synthesize
// gateway error responses
func EncodeFault(code int, message string) string {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0"`)
	resp := doc.CreateElement("methodResponse")
	value := resp.CreateElement("fault").CreateElement("value")
	encodeValue(value, map[string]interface{}{
		"faultCode":   code,
		"faultString": message,
	})
	out, _ := doc.WriteToString()
	return out
}

func encodeValue(value *etree.Element, data interface{}) {
	switch v := data.(type) {
	case nil:
		value.CreateElement("nil")
	case int:
		value.CreateElement("int").SetText(strconv.Itoa(v))
	case int64:
		value.CreateElement("int").SetText(strconv.FormatInt(v, 10))
	case float64:
		value.CreateElement("double").SetText(strconv.FormatFloat(v, 'f', -1, 64))
	case bool:
		text := "0"
		if v {
			text = "1"
		}
		value.CreateElement("boolean").SetText(text)
	case string:
		value.CreateElement("string").SetText(v)
	case []interface{}:
		data := value.CreateElement("array").CreateElement("data")
		for _, entry := range v {
			encodeValue(data.CreateElement("value"), entry)
		}
	case map[string]interface{}:
		st := value.CreateElement("struct")
		// stable member order for reproducible request bodies
		names := make([]string, 0, len(v))
		for name := range v {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			member := st.CreateElement("member")
			member.CreateElement("name").SetText(name)
			encodeValue(member.CreateElement("value"), v[name])
		}
	default:
		value.CreateElement("string").SetText("")
	}
}

package xmlrpc

// Kind tags a decoded XML-RPC value
type Kind int

const (
	KindNil Kind = iota
	KindInt
	KindDouble
	KindString
	KindBoolean
	KindArray
	KindStruct
)

// Value is one node of the tagged value tree produced by a decode pass.
// Exactly one payload field is meaningful for a given Kind.
type Value struct {
	Kind   Kind
	Int    int
	Double float64
	Str    string
	Bool   bool
	Array  []Value
	Struct map[string]Value
}

// Native converts the value tree to plain Go types: int, float64,
// string, bool, nil, []interface{} and map[string]interface{}.
func (v Value) Native() interface{} {
	switch v.Kind {
	case KindInt:
		return v.Int
	case KindDouble:
		return v.Double
	case KindString:
		return v.Str
	case KindBoolean:
		return v.Bool
	case KindArray:
		out := make([]interface{}, 0, len(v.Array))
		for _, entry := range v.Array {
			out = append(out, entry.Native())
		}
		return out
	case KindStruct:
		out := make(map[string]interface{}, len(v.Struct))
		for name, member := range v.Struct {
			out[name] = member.Native()
		}
		return out
	}
	return nil
}

package value

import (
	"fmt"
	"sort"
	"strings"
)

// List is an ordered sequence of values.
type List []Value

func NewList(values ...Value) List {
	ret := make(List, 0, len(values))
	return append(ret, values...)
}

func (l List) isValue() {}
func (l List) Equal(v Value) bool {
	other, ok := v.(List)
	if !ok || len(other) != len(l) {
		return false
	}
	for i, lv := range l {
		if !lv.Equal(other[i]) {
			return false
		}
	}
	return true
}
func (l List) String() string {
	sb := strings.Builder{}
	sb.WriteString("[")
	for i, v := range l {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.String())
	}
	sb.WriteString("]")
	return sb.String()
}
func (l List) Clone() Value {
	clone := make(List, 0, len(l))
	for _, v := range l {
		clone = append(clone, v.Clone())
	}
	return clone
}

// Dict is a name-keyed mapping, the runtime shape of struct and map values.
type Dict map[string]Value

func NewDict(values map[string]Value) Dict {
	ret := make(Dict, len(values))
	for k, v := range values {
		ret[k] = v
	}
	return ret
}

func (d Dict) isValue() {}
func (d Dict) Equal(v Value) bool {
	other, ok := v.(Dict)
	if !ok || len(other) != len(d) {
		return false
	}
	for k, dv := range d {
		ov, ok := other[k]
		if !ok || !dv.Equal(ov) {
			return false
		}
	}
	return true
}
func (d Dict) String() string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	sb := strings.Builder{}
	sb.WriteString("{")
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%s: %s", k, d[k].String()))
	}
	sb.WriteString("}")
	return sb.String()
}
func (d Dict) Clone() Value {
	clone := make(Dict, len(d))
	for k, v := range d {
		clone[k] = v.Clone()
	}
	return clone
}

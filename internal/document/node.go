// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package document

import (
	"encoding/json"
	"strconv"
)

// NodeKind identifies the JSON type of a Node.
type NodeKind int

const (
	KindNull NodeKind = iota
	KindObject
	KindArray
	KindNumber
	KindString
	KindBool
)

// Node is a read-only view of one value in the document. Accessors never
// fail: a missing key, a wrong type or an out-of-range index yields the
// zero Node, whose scalar accessors return zero values.
type Node struct {
	v any
}

// Kind returns the JSON type of the node.
func (n Node) Kind() NodeKind {
	switch n.v.(type) {
	case *object:
		return KindObject
	case []any:
		return KindArray
	case json.Number:
		return KindNumber
	case string:
		return KindString
	case bool:
		return KindBool
	default:
		return KindNull
	}
}

// Exists reports whether the node holds a value.
func (n Node) Exists() bool {
	return n.v != nil
}

// Get returns the value stored under key in a record.
func (n Node) Get(key string) Node {
	if o, ok := n.v.(*object); ok {
		return Node{v: o.vals[key]}
	}
	return Node{}
}

// Has reports whether a record contains key.
func (n Node) Has(key string) bool {
	if o, ok := n.v.(*object); ok {
		_, found := o.vals[key]
		return found
	}
	return false
}

// Keys returns the keys of a record in document order.
func (n Node) Keys() []string {
	if o, ok := n.v.(*object); ok {
		keys := make([]string, len(o.keys))
		copy(keys, o.keys)
		return keys
	}
	return nil
}

// Len returns the number of elements of a sequence or keys of a record.
func (n Node) Len() int {
	switch t := n.v.(type) {
	case []any:
		return len(t)
	case *object:
		return len(t.keys)
	default:
		return 0
	}
}

// Index returns element i of a sequence.
func (n Node) Index(i int) Node {
	if a, ok := n.v.([]any); ok && i >= 0 && i < len(a) {
		return Node{v: a[i]}
	}
	return Node{}
}

// Items returns the elements of a sequence.
func (n Node) Items() []Node {
	a, ok := n.v.([]any)
	if !ok {
		return nil
	}
	items := make([]Node, len(a))
	for i, v := range a {
		items[i] = Node{v: v}
	}
	return items
}

// Data returns the "Data" sequence most sections wrap their rows in.
func (n Node) Data() []Node {
	return n.Get("Data").Items()
}

// IntOK returns the node as an integer. Numeric strings are accepted
// because a few fields are stored quoted.
func (n Node) IntOK() (int64, bool) {
	switch t := n.v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, true
		}
		if f, err := t.Float64(); err == nil {
			return int64(f), true
		}
	case string:
		if i, err := strconv.ParseInt(t, 10, 64); err == nil {
			return i, true
		}
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// Int returns the node as an integer, or 0.
func (n Node) Int() int64 {
	i, _ := n.IntOK()
	return i
}

// IsInt reports whether the node is a JSON integer (not a string).
func (n Node) IsInt() bool {
	num, ok := n.v.(json.Number)
	if !ok {
		return false
	}
	_, err := num.Int64()
	return err == nil
}

// Str returns the node as text. Numbers and booleans are rendered the way
// they appear in the file.
func (n Node) Str() string {
	switch t := n.v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// Ints returns a sequence of integers.
func (n Node) Ints() []int64 {
	items := n.Items()
	out := make([]int64, len(items))
	for i, it := range items {
		out[i] = it.Int()
	}
	return out
}

// IntAt returns element i of a sequence as an integer, or 0.
func (n Node) IntAt(i int) int64 {
	return n.Index(i).Int()
}

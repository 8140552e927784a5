// Package jsonpatch diffs JSON documents into RFC 6902 patches.
package jsonpatch

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Operation is one RFC 6902 step. Delta is set on a replace of one number
// by another and holds new minus old.
type Operation struct {
	Op    string   `json:"op"`
	Path  string   `json:"path"`
	Value any      `json:"value,omitempty"`
	Delta *float64 `json:"delta,omitempty"`
}

// DiffValues marshals a and b to JSON and diffs the documents.
func DiffValues(a, b any) ([]Operation, error) {
	da, err := toDocument(a)
	if err != nil {
		return nil, err
	}
	db, err := toDocument(b)
	if err != nil {
		return nil, err
	}
	return Diff(da, db, ""), nil
}

// DiffValuesBoth is DiffValues returning the backward patch as well.
func DiffValuesBoth(a, b any) (fwd, bwd []Operation, err error) {
	da, err := toDocument(a)
	if err != nil {
		return nil, nil, err
	}
	db, err := toDocument(b)
	if err != nil {
		return nil, nil, err
	}
	fwd, bwd = DiffBoth(da, db, "")
	return fwd, bwd, nil
}

func toDocument(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return doc, nil
}

// Diff computes the patch that transforms a into b. Both must be the
// result of unmarshaling JSON into any; path is "" for the root.
// Object keys are visited in sorted order so patches are stable.
func Diff(a, b any, path string) []Operation {
	if a == nil && b == nil {
		return nil
	}
	if a == nil || b == nil {
		return []Operation{replaceOp(path, a, b)}
	}

	aMap, aIsMap := a.(map[string]any)
	bMap, bIsMap := b.(map[string]any)
	if aIsMap && bIsMap {
		return diffObjects(aMap, bMap, path)
	}

	aArr, aIsArr := a.([]any)
	bArr, bIsArr := b.([]any)
	if aIsArr && bIsArr {
		return diffArrays(aArr, bArr, path)
	}

	if aIsMap || bIsMap || aIsArr || bIsArr || a != b {
		return []Operation{replaceOp(path, a, b)}
	}
	return nil
}

func diffObjects(a, b map[string]any, path string) []Operation {
	var ops []Operation

	for _, k := range sortedKeys(a) {
		if _, ok := b[k]; !ok {
			ops = append(ops, removeOp(path+"/"+escapeKey(k)))
		}
	}

	for _, k := range sortedKeys(b) {
		childPath := path + "/" + escapeKey(k)
		av, inA := a[k]
		if !inA {
			ops = append(ops, addOp(childPath, b[k]))
			continue
		}
		ops = append(ops, Diff(av, b[k], childPath)...)
	}
	return ops
}

func diffArrays(a, b []any, path string) []Operation {
	var ops []Operation

	minLen := min(len(a), len(b))
	for i := 0; i < minLen; i++ {
		ops = append(ops, Diff(a[i], b[i], path+"/"+strconv.Itoa(i))...)
	}

	// Remove from the end so earlier indexes stay valid.
	for i := len(a) - 1; i >= minLen; i-- {
		ops = append(ops, removeOp(path+"/"+strconv.Itoa(i)))
	}
	for i := minLen; i < len(b); i++ {
		ops = append(ops, addOp(path+"/"+strconv.Itoa(i), b[i]))
	}
	return ops
}

// DiffBoth returns the forward patch a→b and the backward patch b→a.
func DiffBoth(a, b any, path string) (fwd, bwd []Operation) {
	return Diff(a, b, path), Diff(b, a, path)
}

func replaceOp(path string, old, value any) Operation {
	op := Operation{Op: "replace", Path: path, Value: value}
	if o, ok := old.(float64); ok {
		if n, ok := value.(float64); ok {
			d := n - o
			op.Delta = &d
		}
	}
	return op
}

func addOp(path string, value any) Operation {
	return Operation{Op: "add", Path: path, Value: value}
}

func removeOp(path string) Operation {
	return Operation{Op: "remove", Path: path}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// escapeKey escapes a JSON Pointer token per RFC 6901.
func escapeKey(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	s = strings.ReplaceAll(s, "/", "~1")
	return s
}

package model

import (
	"bytes"
	"encoding/json"
)

// Tags is a last-write-wins map that remembers the order keys were first set in.
// The zero value is ready to use.
type Tags struct {
	keys   []string
	values map[string]string
}

func (t *Tags) Set(key, value string) {
	if t.values == nil {
		t.values = make(map[string]string)
	}
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
}

func (t *Tags) Get(key string) (string, bool) {
	v, ok := t.values[key]
	return v, ok
}

func (t *Tags) Has(key string) bool {
	_, ok := t.values[key]
	return ok
}

func (t *Tags) Delete(key string) {
	if _, ok := t.values[key]; !ok {
		return
	}
	delete(t.values, key)
	for i, k := range t.keys {
		if k == key {
			t.keys = append(t.keys[:i], t.keys[i+1:]...)
			break
		}
	}
}

// Keys returns keys in discovery order.
func (t *Tags) Keys() []string {
	res := make([]string, len(t.keys))
	copy(res, t.keys)
	return res
}

func (t *Tags) Len() int {
	return len(t.keys)
}

// MarshalJSON writes an object whose members stay in discovery order.
func (t Tags) MarshalJSON() ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteByte('{')
	for i, k := range t.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(t.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

package clist

import "encoding/json"

// MarshalJSON encodes the list as a JSON array.
func (c *Cons[A]) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Slice())
}

// MarshalYAML encodes the list as a YAML sequence.
func (c *Cons[A]) MarshalYAML() (any, error) {
	return c.Slice(), nil
}

func (n Nil[A]) MarshalJSON() ([]byte, error) {
	return []byte("[]"), nil
}

func (n Nil[A]) MarshalYAML() (any, error) {
	return []A{}, nil
}

// FromJSON decodes a JSON array into a list.
func FromJSON[A any](data []byte) (List[A], error) {
	var xs []A
	if err := json.Unmarshal(data, &xs); err != nil {
		return Nil[A]{}, err
	}
	return FromSlice(xs), nil
}

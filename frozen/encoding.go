package frozen

import "encoding/json"

// MarshalJSON encodes fm as a JSON object.
func (fm *Map[K, V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(fm.Raw())
}

// MarshalYAML encodes fm as a YAML mapping.
func (fm *Map[K, V]) MarshalYAML() (any, error) {
	return fm.Raw(), nil
}

// FromJSON decodes a JSON object into a Map.
func FromJSON[K comparable, V any](data []byte) (*Map[K, V], error) {
	var m map[K]V
	if err := json.Unmarshal(data, &m); err != nil {
		return Empty[K, V](), err
	}
	return &Map[K, V]{m: m}, nil
}

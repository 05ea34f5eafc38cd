// internal/service/convert.go
package service

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
)

// mapToStruct converts a stored JSON map to its wire representation.
// The JSON round trip flattens Go-only types (time.Time, []string) to
// their textual/generic JSON forms, which is the persisted contract.
func mapToStruct(m map[string]interface{}) (*structpb.Struct, error) {
	if m == nil {
		return nil, nil
	}

	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal map: %w", err)
	}

	var plain map[string]interface{}
	if err := json.Unmarshal(data, &plain); err != nil {
		return nil, fmt.Errorf("unmarshal map: %w", err)
	}

	return structpb.NewStruct(plain)
}

// structToMap converts wire input to the map shape stored in JSON
// columns. A nil struct becomes an empty map, not nil.
func structToMap(s *structpb.Struct) map[string]interface{} {
	if s == nil {
		return map[string]interface{}{}
	}
	return s.AsMap()
}

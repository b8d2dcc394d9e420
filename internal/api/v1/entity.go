package v1

// Entity is a (field name, field value) pair narrowing results to one series,
// e.g. {region, eu-west}. Also used for criteria fields such as detector_index.
type Entity struct {
	FieldName  string `json:"field_name"`
	FieldValue string `json:"field_value"`
}

// CriteriaDetectorIndex is the criteria field name selecting a detector.
const CriteriaDetectorIndex = "detector_index"

// NonBlank returns the entities that carry a value.
func NonBlank(entities []Entity) []Entity {
	out := make([]Entity, 0, len(entities))
	for _, e := range entities {
		if e.FieldName != "" && e.FieldValue != "" {
			out = append(out, e)
		}
	}
	return out
}

package v1

import (
	"fmt"
	"strings"
	"time"
)

// Annotation types.
const (
	AnnotationTypeAnnotation = "annotation"
	AnnotationTypeComment    = "comment"
)

// Annotation is a user or system authored note on a time range of a job's results.
type Annotation struct {
	ID                  string     `json:"id"`
	JobID               string     `json:"job_id"`
	Type                string     `json:"type"`
	Text                string     `json:"annotation"`
	Timestamp           time.Time  `json:"timestamp"`
	EndTimestamp        *time.Time `json:"end_timestamp,omitempty"`
	DetectorIndex       *int       `json:"detector_index,omitempty"`
	PartitionFieldName  string     `json:"partition_field_name,omitempty"`
	PartitionFieldValue string     `json:"partition_field_value,omitempty"`
	OverFieldName       string     `json:"over_field_name,omitempty"`
	OverFieldValue      string     `json:"over_field_value,omitempty"`
	ByFieldName         string     `json:"by_field_name,omitempty"`
	ByFieldValue        string     `json:"by_field_value,omitempty"`
	Event               string     `json:"event,omitempty"` // user, delayed_data, model_snapshot_stored, ...
	CreateTime          time.Time  `json:"create_time"`
	CreateUsername      string     `json:"create_username"`
	ModifiedTime        time.Time  `json:"modified_time"`
	ModifiedUsername    string     `json:"modified_username"`

	// Key is the 1-based position of the annotation on the focus chart.
	// Assigned when focus data is assembled, never stored.
	Key string `json:"key,omitempty"`
}

// Validate ensures the annotation has all required attributes.
func (a *Annotation) Validate() error {
	if strings.TrimSpace(a.JobID) == "" {
		return fmt.Errorf("job_id is required")
	}

	if strings.TrimSpace(a.Text) == "" {
		return fmt.Errorf("annotation is required")
	}

	if a.Timestamp.IsZero() {
		return fmt.Errorf("timestamp is required")
	}

	if a.EndTimestamp != nil && a.EndTimestamp.Before(a.Timestamp) {
		return fmt.Errorf("end_timestamp must not be before timestamp")
	}

	if a.DetectorIndex != nil && *a.DetectorIndex < 0 {
		return fmt.Errorf("detector_index must be >= 0")
	}

	switch a.Type {
	case "":
		a.Type = AnnotationTypeAnnotation
	case AnnotationTypeAnnotation, AnnotationTypeComment:
	default:
		return fmt.Errorf("invalid type %q (must be annotation or comment)", a.Type)
	}

	return nil
}

// AnnotationsResponse is the annotation query result. On failure Success is
// false, Error carries the message and no annotations are returned.
type AnnotationsResponse struct {
	Success     bool                    `json:"success"`
	Annotations map[string][]Annotation `json:"annotations"`
	TotalCount  int                     `json:"totalCount"`
	Error       string                  `json:"error,omitempty"`
}

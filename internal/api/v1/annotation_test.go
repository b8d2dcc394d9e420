package v1

import (
	"testing"
	"time"
)

func TestAnnotation_Validation(t *testing.T) {
	now := time.Now()
	before := now.Add(-time.Hour)
	negative := -1

	tests := []struct {
		name    string
		ann     Annotation
		wantErr bool
		checkFn func(*testing.T, *Annotation) // Optional validation after Validate()
	}{
		{
			name:    "valid annotation",
			ann:     Annotation{JobID: "web-latency", Text: "deploy", Timestamp: now, Type: AnnotationTypeComment},
			wantErr: false,
		},
		{
			name:    "type defaults to annotation",
			ann:     Annotation{JobID: "web-latency", Text: "deploy", Timestamp: now},
			wantErr: false,
			checkFn: func(t *testing.T, a *Annotation) {
				if a.Type != AnnotationTypeAnnotation {
					t.Errorf("Type should default to %q, got %q", AnnotationTypeAnnotation, a.Type)
				}
			},
		},
		{
			name:    "missing job_id",
			ann:     Annotation{Text: "deploy", Timestamp: now},
			wantErr: true,
		},
		{
			name:    "blank text",
			ann:     Annotation{JobID: "web-latency", Text: "  ", Timestamp: now},
			wantErr: true,
		},
		{
			name:    "missing timestamp",
			ann:     Annotation{JobID: "web-latency", Text: "deploy"},
			wantErr: true,
		},
		{
			name:    "end before start",
			ann:     Annotation{JobID: "web-latency", Text: "deploy", Timestamp: now, EndTimestamp: &before},
			wantErr: true,
		},
		{
			name:    "negative detector index",
			ann:     Annotation{JobID: "web-latency", Text: "deploy", Timestamp: now, DetectorIndex: &negative},
			wantErr: true,
		},
		{
			name:    "unknown type",
			ann:     Annotation{JobID: "web-latency", Text: "deploy", Timestamp: now, Type: "note"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ann := tt.ann
			err := ann.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.checkFn != nil && err == nil {
				tt.checkFn(t, &ann)
			}
		})
	}
}

func TestNonBlank(t *testing.T) {
	got := NonBlank([]Entity{
		{FieldName: "region", FieldValue: "eu-west"},
		{FieldName: "status", FieldValue: ""},
		{FieldName: "", FieldValue: "x"},
	})
	if len(got) != 1 || got[0].FieldValue != "eu-west" {
		t.Errorf("NonBlank() = %+v", got)
	}
}

package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	v1 "github.com/aevon-lab/anomaly-explorer/internal/api/v1"
	"github.com/aevon-lab/anomaly-explorer/internal/core/storage"
	"github.com/lib/pq"
)

const resultTypeRecord = "record"

// entitiesJSON renders entity filters as a JSON object for containment matching.
// No filters produce "{}", which every row contains.
func entitiesJSON(entities []v1.Entity) ([]byte, error) {
	m := make(map[string]string, len(entities))
	for _, e := range entities {
		m[e.FieldName] = e.FieldValue
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entities: %w", err)
	}
	return b, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanRecordRow scans one anomaly_records row.
func scanRecordRow(row scanner) (v1.AnomalyRecord, error) {
	var rec v1.AnomalyRecord
	var multiBucketImpact sql.NullFloat64
	var actualJSON, typicalJSON []byte

	err := row.Scan(
		&rec.JobID,
		&rec.DetectorIndex,
		&rec.Timestamp,
		&rec.BucketSpan,
		&rec.RecordScore,
		&rec.InitialRecordScore,
		&rec.Probability,
		&multiBucketImpact,
		&rec.Function,
		&rec.FunctionDescription,
		&rec.FieldName,
		&rec.ByFieldName,
		&rec.ByFieldValue,
		&rec.OverFieldName,
		&rec.OverFieldValue,
		&rec.PartitionFieldName,
		&rec.PartitionFieldValue,
		&actualJSON,
		&typicalJSON,
		&rec.IsInterim,
	)
	if err != nil {
		return v1.AnomalyRecord{}, fmt.Errorf("failed to scan anomaly record row: %w", err)
	}

	rec.ResultType = resultTypeRecord
	if multiBucketImpact.Valid {
		v := multiBucketImpact.Float64
		rec.MultiBucketImpact = &v
	}
	if len(actualJSON) > 0 {
		if err := json.Unmarshal(actualJSON, &rec.Actual); err != nil {
			return v1.AnomalyRecord{}, fmt.Errorf("failed to unmarshal actual: %w", err)
		}
	}
	if len(typicalJSON) > 0 {
		if err := json.Unmarshal(typicalJSON, &rec.Typical); err != nil {
			return v1.AnomalyRecord{}, fmt.Errorf("failed to unmarshal typical: %w", err)
		}
	}
	return rec, nil
}

// scanAnnotationRow scans one annotations row.
func scanAnnotationRow(row scanner) (v1.Annotation, error) {
	var a v1.Annotation
	var endTimestamp sql.NullTime
	var detectorIndex sql.NullInt64

	err := row.Scan(
		&a.ID,
		&a.JobID,
		&a.Type,
		&a.Text,
		&a.Timestamp,
		&endTimestamp,
		&detectorIndex,
		&a.PartitionFieldName,
		&a.PartitionFieldValue,
		&a.OverFieldName,
		&a.OverFieldValue,
		&a.ByFieldName,
		&a.ByFieldValue,
		&a.Event,
		&a.CreateTime,
		&a.CreateUsername,
		&a.ModifiedTime,
		&a.ModifiedUsername,
	)
	if err != nil {
		return v1.Annotation{}, fmt.Errorf("failed to scan annotation row: %w", err)
	}

	if endTimestamp.Valid {
		t := endTimestamp.Time
		a.EndTimestamp = &t
	}
	if detectorIndex.Valid {
		i := int(detectorIndex.Int64)
		a.DetectorIndex = &i
	}
	return a, nil
}

// classify marks connection loss, serialization failures and server shutdown
// as storage.ErrTransient so callers can retry them.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("%s: %w: %w", op, storage.ErrTransient, err)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "08", // connection exception
			"40", // transaction rollback (serialization failure, deadlock)
			"53", // insufficient resources
			"57": // operator intervention (admin shutdown, cannot connect now)
			return fmt.Errorf("%s: %w: %w", op, storage.ErrTransient, err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

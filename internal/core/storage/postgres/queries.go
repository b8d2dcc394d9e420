package postgres

// SQL for the explorer tables. Entity filters are JSON objects matched with
// JSONB containment; an empty object matches every row.

const (
	// querySaveAnnotation inserts an annotation. ON CONFLICT DO NOTHING
	// returns no rows (sql.ErrNoRows) for a duplicate id.
	querySaveAnnotation = `
		INSERT INTO annotations (
			id, job_id, type, annotation, timestamp, end_timestamp, detector_index,
			partition_field_name, partition_field_value,
			over_field_name, over_field_value,
			by_field_name, by_field_value,
			event, create_time, create_username, modified_time, modified_username
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (id) DO NOTHING
		RETURNING id
	`

	queryMetricSamples = `
		SELECT timestamp, entities, data
		FROM metric_samples
		WHERE source = $1
		  AND entities @> $2::jsonb
		  AND timestamp >= $3
		  AND timestamp < $4
		ORDER BY timestamp ASC
	`

	queryModelPlot = `
		SELECT timestamp, actual, model_upper, model_lower, model_median
		FROM model_plots
		WHERE job_id = $1
		  AND detector_index = $2
		  AND entities @> $3::jsonb
		  AND timestamp >= $4
		  AND timestamp < $5
		ORDER BY timestamp ASC
	`

	// queryAnomalyRecords filters on the detector index only when $2 is not NULL
	// and on the function description only when $7 is not empty.
	queryAnomalyRecords = `
		SELECT
			job_id, detector_index, timestamp, bucket_span,
			record_score, initial_record_score, probability, multi_bucket_impact,
			function, function_description, field_name,
			by_field_name, by_field_value,
			over_field_name, over_field_value,
			partition_field_name, partition_field_value,
			actual, typical, is_interim
		FROM anomaly_records
		WHERE job_id = ANY($1)
		  AND ($2::integer IS NULL OR detector_index = $2::integer)
		  AND entities @> $3::jsonb
		  AND timestamp >= $4
		  AND timestamp < $5
		  AND record_score >= $6
		  AND ($7::text = '' OR function_description = $7::text)
		ORDER BY timestamp ASC
	`

	queryScheduledEvents = `
		SELECT job_id, description, start_time, end_time
		FROM scheduled_events
		WHERE job_id = ANY($1)
		  AND end_time > $2
		  AND start_time < $3
		ORDER BY start_time ASC, id ASC
	`

	// queryAnnotations returns annotations overlapping [$2, $3). Annotations
	// without a detector index apply to every detector; an annotation is
	// excluded only when one of its entity fields names a filtered entity
	// with a different value.
	queryAnnotations = `
		SELECT
			a.id, a.job_id, a.type, a.annotation, a.timestamp, a.end_timestamp, a.detector_index,
			a.partition_field_name, a.partition_field_value,
			a.over_field_name, a.over_field_value,
			a.by_field_name, a.by_field_value,
			a.event, a.create_time, a.create_username, a.modified_time, a.modified_username
		FROM annotations a
		WHERE a.job_id = ANY($1)
		  AND COALESCE(a.end_timestamp, a.timestamp) >= $2
		  AND a.timestamp < $3
		  AND (a.detector_index IS NULL OR a.detector_index = $4)
		  AND NOT EXISTS (
			SELECT 1 FROM jsonb_each_text($5::jsonb) AS e(key, value)
			WHERE (a.partition_field_name = e.key AND a.partition_field_value <> e.value)
			   OR (a.over_field_name = e.key AND a.over_field_value <> e.value)
			   OR (a.by_field_name = e.key AND a.by_field_value <> e.value)
		  )
		ORDER BY a.timestamp ASC
		LIMIT $6
	`

	queryForecast = `
		SELECT timestamp, prediction, upper, lower
		FROM forecasts
		WHERE job_id = $1
		  AND forecast_id = $2
		  AND detector_index = $3
		  AND entities @> $4::jsonb
		  AND timestamp >= $5
		  AND timestamp < $6
		ORDER BY timestamp ASC
	`

	// queryExistingTables lists which of the given tables exist in the current schema.
	queryExistingTables = `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = current_schema()
		  AND table_name = ANY($1)
	`
)

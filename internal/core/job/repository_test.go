package job_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aevon-lab/anomaly-explorer/internal/core/job"
)

// writeJob is a test helper that writes a single job YAML file into dir.
func writeJob(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

const latencyJob = `
job_id: "web-latency"
description: "Mean response time per region"
analysis_config:
  bucket_span: "15m"
  detectors:
    - function: "mean"
      field_name: "latency"
      partition_field_name: "region"
model_plot_config:
  enabled: true
datafeed_config:
  source: "web-logs"
`

func TestFileSystemRepository_LoadAndGet(t *testing.T) {
	dir := t.TempDir()
	writeJob(t, dir, "web-latency.yaml", latencyJob)

	repo, err := job.NewFileSystemRepository(dir)
	if err != nil {
		t.Fatalf("NewFileSystemRepository: %v", err)
	}

	j, err := repo.Get(context.Background(), "web-latency")
	if err != nil {
		t.Fatal(err)
	}
	if j.BucketSpan.Duration != 15*time.Minute {
		t.Errorf("BucketSpan = %v, want 15m", j.BucketSpan.Duration)
	}
	if len(j.Detectors) != 1 || j.Detectors[0].Function != "mean" {
		t.Errorf("Detectors = %+v", j.Detectors)
	}
	if !j.ModelPlot.Enabled {
		t.Error("ModelPlot.Enabled = false, want true")
	}
	if j.Datafeed.Source != "web-logs" {
		t.Errorf("Datafeed.Source = %q", j.Datafeed.Source)
	}
	if j.Fingerprint == "" {
		t.Error("Fingerprint is empty")
	}

	_, err = repo.Get(context.Background(), "nonexistent")
	if !errors.Is(err, job.ErrJobNotFound) {
		t.Errorf("Get nonexistent: got %v, want ErrJobNotFound", err)
	}
}

func TestFileSystemRepository_ListOrdered(t *testing.T) {
	dir := t.TempDir()
	writeJob(t, dir, "b.yaml", `
job_id: "b-job"
analysis_config:
  bucket_span: "1h"
  detectors:
    - function: "count"
datafeed_config:
  source: "b"
`)
	writeJob(t, dir, "a.yml", `
job_id: "a-job"
analysis_config:
  bucket_span: "1d"
  detectors:
    - function: "sum"
      field_name: "bytes"
datafeed_config:
  source: "a"
`)
	writeJob(t, dir, "notes.txt", "ignored")

	repo, err := job.NewFileSystemRepository(dir)
	if err != nil {
		t.Fatal(err)
	}
	jobs, err := repo.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(jobs) != 2 {
		t.Fatalf("List: got %d jobs, want 2", len(jobs))
	}
	if jobs[0].JobID != "a-job" || jobs[1].JobID != "b-job" {
		t.Errorf("List order = %s, %s", jobs[0].JobID, jobs[1].JobID)
	}
}

func TestFileSystemRepository_ReportsAllProblems(t *testing.T) {
	dir := t.TempDir()
	writeJob(t, dir, "bad.yaml", `
job_id: "bad"
analysis_config:
  bucket_span: "0m"
  detectors:
    - field_name: "x"
`)

	_, err := job.NewFileSystemRepository(dir)
	if err == nil {
		t.Fatal("expected error for invalid job, got nil")
	}
	for _, want := range []string{"bucket_span", "function must not be empty", "datafeed_config.source"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err.Error(), want)
		}
	}
}

func TestFileSystemRepository_DuplicateJobID(t *testing.T) {
	dir := t.TempDir()
	writeJob(t, dir, "first.yaml", latencyJob)
	writeJob(t, dir, "second.yaml", latencyJob)

	_, err := job.NewFileSystemRepository(dir)
	if err == nil {
		t.Fatal("expected error for duplicate job id, got nil")
	}
}

func TestFileSystemRepository_MissingDir(t *testing.T) {
	// Non-existent directory is valid, zero jobs.
	repo, err := job.NewFileSystemRepository(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("unexpected error for missing dir: %v", err)
	}
	jobs, _ := repo.List(context.Background())
	if len(jobs) != 0 {
		t.Errorf("expected 0 jobs from missing dir, got %d", len(jobs))
	}
}

func TestFileSystemRepository_SkipsEmptyFiles(t *testing.T) {
	dir := t.TempDir()
	writeJob(t, dir, "empty.yaml", "")
	writeJob(t, dir, "comment_only.yaml", "# just a comment\n")
	writeJob(t, dir, "real.yaml", latencyJob)

	repo, err := job.NewFileSystemRepository(dir)
	if err != nil {
		t.Fatal(err)
	}
	jobs, _ := repo.List(context.Background())
	if len(jobs) != 1 {
		t.Errorf("expected 1 job (skipping empty/comment files), got %d", len(jobs))
	}
}

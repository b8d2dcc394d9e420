package job

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aevon-lab/anomaly-explorer/internal/core/aggregation"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// Repository defines the interface for looking up job definitions.
type Repository interface {
	// Get returns the job with the given id, or ErrJobNotFound.
	Get(ctx context.Context, jobID string) (*Job, error)

	// List returns all loaded jobs ordered by id.
	List(ctx context.Context) ([]Job, error)
}

// rawJob is the on-disk YAML shape.
type rawJob struct {
	JobID          string `yaml:"job_id"`
	Description    string `yaml:"description"`
	AnalysisConfig struct {
		BucketSpan string     `yaml:"bucket_span"`
		Detectors  []Detector `yaml:"detectors"`
	} `yaml:"analysis_config"`
	ModelPlotConfig ModelPlotConfig `yaml:"model_plot_config"`
	DatafeedConfig  DatafeedConfig  `yaml:"datafeed_config"`
}

// FileSystemRepository loads job definitions from *.yaml files in a directory.
// Each file contains exactly one job at the top level. Jobs are loaded once at
// startup and cached in memory.
type FileSystemRepository struct {
	dir  string
	jobs map[string]Job // keyed by JobID
}

// NewFileSystemRepository creates a new repository and eagerly loads all jobs
// from dir. Returns an error if any job file is malformed or invalid.
func NewFileSystemRepository(dir string) (*FileSystemRepository, error) {
	repo := &FileSystemRepository{
		dir:  dir,
		jobs: make(map[string]Job),
	}
	if err := repo.load(); err != nil {
		return nil, err
	}
	return repo, nil
}

// NewMemoryRepository builds a repository from already constructed jobs.
func NewMemoryRepository(jobs ...Job) *FileSystemRepository {
	repo := &FileSystemRepository{jobs: make(map[string]Job, len(jobs))}
	for _, j := range jobs {
		repo.jobs[j.JobID] = j
	}
	return repo
}

func (r *FileSystemRepository) load() error {
	info, err := os.Stat(r.dir)
	if os.IsNotExist(err) {
		return nil // no jobs directory: valid, zero jobs configured
	}
	if err != nil {
		return fmt.Errorf("job config dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("job config path %q is not a directory", r.dir)
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return fmt.Errorf("reading job config dir: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() || (!strings.HasSuffix(e.Name(), ".yaml") && !strings.HasSuffix(e.Name(), ".yml")) {
			continue
		}

		path := filepath.Join(r.dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading job file %s: %w", path, err)
		}

		var raw rawJob
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("parsing job file %s: %w", path, err)
		}
		if raw.JobID == "" {
			continue // skip empty / comment-only files
		}

		j, err := raw.build()
		if err != nil {
			return fmt.Errorf("job file %s: %w", path, err)
		}
		j.Fingerprint = fmt.Sprintf("%x", sha256.Sum256(data))

		if _, exists := r.jobs[j.JobID]; exists {
			return fmt.Errorf("job %q: duplicate job id (check multiple YAML files)", j.JobID)
		}
		r.jobs[j.JobID] = j
	}
	return nil
}

// build validates the raw definition, reporting every problem at once.
func (raw rawJob) build() (Job, error) {
	var result *multierror.Error

	bucketSpan, err := aggregation.ParseInterval(raw.AnalysisConfig.BucketSpan)
	if err != nil {
		result = multierror.Append(result, fmt.Errorf("job %q: bucket_span: %w", raw.JobID, err))
	}
	if len(raw.AnalysisConfig.Detectors) == 0 {
		result = multierror.Append(result, fmt.Errorf("job %q: at least one detector is required", raw.JobID))
	}
	for i, d := range raw.AnalysisConfig.Detectors {
		if d.Function == "" {
			result = multierror.Append(result, fmt.Errorf("job %q: detector %d: function must not be empty", raw.JobID, i))
		}
	}
	if raw.DatafeedConfig.Source == "" {
		result = multierror.Append(result, fmt.Errorf("job %q: datafeed_config.source must not be empty", raw.JobID))
	}
	if err := result.ErrorOrNil(); err != nil {
		return Job{}, err
	}

	return Job{
		JobID:       raw.JobID,
		Description: raw.Description,
		BucketSpan:  bucketSpan,
		Detectors:   raw.AnalysisConfig.Detectors,
		ModelPlot:   raw.ModelPlotConfig,
		Datafeed:    raw.DatafeedConfig,
	}, nil
}

// Get returns the job with the given id, or ErrJobNotFound.
func (r *FileSystemRepository) Get(_ context.Context, jobID string) (*Job, error) {
	j, ok := r.jobs[jobID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrJobNotFound, jobID)
	}
	return &j, nil
}

// List returns all loaded jobs ordered by id.
func (r *FileSystemRepository) List(_ context.Context) ([]Job, error) {
	out := make([]Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		out = append(out, j)
	}
	sort.Slice(out, func(i, k int) bool {
		return out[i].JobID < out[k].JobID
	})
	return out, nil
}

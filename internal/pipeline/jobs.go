package pipeline

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"
)

// JobStatus represents the state of a splitting job.
type JobStatus string

const (
	StatusQueued     JobStatus = "queued"
	StatusExtracting JobStatus = "extracting"
	StatusChunking   JobStatus = "chunking"
	StatusWriting    JobStatus = "writing"
	StatusSuggesting JobStatus = "suggesting"
	StatusCompleted  JobStatus = "completed"
	StatusFailed     JobStatus = "failed"
)

// Progress tracks processing progress.
type Progress struct {
	TotalPages     int      `json:"total_pages"`
	PagesProcessed int      `json:"pages_processed"`
	HeadersFound   int      `json:"headers_found"`
	ContentChunks  int      `json:"content_chunks"`
	Errors         []string `json:"errors"`
}

// Job tracks the state of a single document split.
type Job struct {
	mu sync.Mutex

	ID       string
	Filename string
	MaxPages int
	Suggest  bool

	Status JobStatus
	Phase  string

	Progress Progress

	CreatedAt time.Time
	UpdatedAt time.Time

	fileData []byte
	errors   []string
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// AddError records an error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.Progress.Errors = j.errors
	j.UpdatedAt = time.Now()
}

// SetExtraction records page and header counts after the extraction stage.
func (j *Job) SetExtraction(totalPages, pagesProcessed, headersFound int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.TotalPages = totalPages
	j.Progress.PagesProcessed = pagesProcessed
	j.Progress.HeadersFound = headersFound
	j.UpdatedAt = time.Now()
}

// SetChunks records the chunk count after the chunking stage.
func (j *Job) SetChunks(n int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.ContentChunks = n
	j.UpdatedAt = time.Now()
}

// SetFileData sets the raw file bytes for processing.
func (j *Job) SetFileData(data []byte) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.fileData = data
}

// FileData returns the raw file bytes.
func (j *Job) FileData() []byte {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.fileData
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID       string    `json:"job_id"`
	Filename string    `json:"filename"`
	Status   JobStatus `json:"status"`
	Phase    string    `json:"phase"`
	Progress Progress  `json:"progress"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := j.Progress.Errors
	if errs == nil {
		errs = []string{}
	}
	return JobSnapshot{
		ID:       j.ID,
		Filename: j.Filename,
		Status:   j.Status,
		Phase:    j.Phase,
		Progress: Progress{
			TotalPages:     j.Progress.TotalPages,
			PagesProcessed: j.Progress.PagesProcessed,
			HeadersFound:   j.Progress.HeadersFound,
			ContentChunks:  j.Progress.ContentChunks,
			Errors:         errs,
		},
	}
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		if now.Sub(job.UpdatedAt) > s.ttl {
			delete(s.jobs, id)
		}
	}
}

// ContentHashHex computes SHA-256 of content and returns a hex string.
// Job IDs derive from it plus the submission time.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}

// NewJobID builds a job identifier from the filename and submission time.
func NewJobID(filename string, at time.Time) string {
	return ContentHashHex([]byte(fmt.Sprintf("%s-%d", filename, at.UnixNano())))[:20]
}

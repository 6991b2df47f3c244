package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dgallion1/sheetsplit/internal/chunker"
	"github.com/dgallion1/sheetsplit/internal/doctree"
	"github.com/dgallion1/sheetsplit/internal/suggest"
)

// SuggestedStructureFile is the artifact name for the AI-proposed tree.
const SuggestedStructureFile = "suggested_structure.json"

// Worker processes a single splitting job.
type Worker struct {
	proc *Processor
	sugg *suggest.Client
	log  *slog.Logger
}

func NewWorker(proc *Processor, sugg *suggest.Client, log *slog.Logger) *Worker {
	return &Worker{proc: proc, sugg: sugg, log: log}
}

// Process runs the full split pipeline for a job. Uploaded bytes are
// staged to a temp file so the text source can open them by path.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	tmpPath, err := stageUpload(job)
	if err != nil {
		log.Error("staging upload failed", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "staging")
		return
	}
	defer os.Remove(tmpPath)

	// Phase 1: Extract.
	job.SetStatus(StatusExtracting, "extracting")
	ext, err := w.proc.Extract(ctx, tmpPath, job.MaxPages)
	if err != nil {
		log.Error("extraction failed", "error", err)
		job.AddError(fmt.Sprintf("extract: %s", err))
		job.SetStatus(StatusFailed, "extracting")
		return
	}
	job.SetExtraction(ext.TotalPages, ext.PagesProcessed, len(ext.Headers))

	// Phase 2: Chunk and classify.
	job.SetStatus(StatusChunking, "chunking")
	chunks := chunker.Split(ext.FullText, ext.Headers)
	job.SetChunks(len(chunks))
	structure := doctree.Build(chunks)
	log.Info("chunked document", "chunks", len(chunks), "headers", len(ext.Headers))

	// Phase 3: Write the tree.
	job.SetStatus(StatusWriting, "writing")
	stem := DocStem(job.Filename)
	if err := w.proc.Write(stem, structure); err != nil {
		log.Error("write failed", "error", err)
		job.AddError(fmt.Sprintf("write: %s", err))
		job.SetStatus(StatusFailed, "writing")
		return
	}

	// Phase 4: Optional AI structure suggestion. Failure here is recorded
	// but never fails the job; the heuristic tree is already on disk.
	if job.Suggest && w.sugg != nil && strings.EqualFold(filepath.Ext(job.Filename), ".pdf") {
		job.SetStatus(StatusSuggesting, "suggesting")
		raw, err := RunSuggestion(ctx, w.sugg, job.FileData(), job.MaxPages, ext.Headers, log)
		if err != nil {
			log.Error("suggestion failed", "error", err)
			job.AddError(fmt.Sprintf("suggest: %s", err))
		} else if err := w.proc.WriteArtifact(stem, SuggestedStructureFile, raw); err != nil {
			log.Error("suggestion artifact write failed", "error", err)
			job.AddError(fmt.Sprintf("suggest artifact: %s", err))
		}
	}

	job.SetStatus(StatusCompleted, "done")
	log.Info("job complete", "files", structure.FileCount())
}

// RunSuggestion trims the document to the processed page range, asks the
// model for a structure, then refines it with the detected headers.
// Transient API errors are retried with backoff. The returned text is
// opaque; callers persist it as-is.
func RunSuggestion(ctx context.Context, client *suggest.Client, pdfData []byte, maxPages int, headers []string, log *slog.Logger) (string, error) {
	trimmed, err := suggest.TrimPDF(pdfData, maxPages)
	if err != nil {
		// Fall back to the full document rather than failing the path.
		log.Warn("pdf trim failed, uploading full document", "error", err)
		trimmed = pdfData
	}

	tree, err := withRetries(ctx, log, "generate", func() (string, error) {
		return client.GenerateTree(ctx, trimmed)
	})
	if err != nil {
		return "", err
	}

	refined, err := withRetries(ctx, log, "refine", func() (string, error) {
		return client.RefineTree(ctx, tree, headers)
	})
	if err != nil {
		return "", err
	}
	return refined, nil
}

func withRetries(ctx context.Context, log *slog.Logger, stage string, call func() (string, error)) (string, error) {
	var out string
	var lastErr error
	for attempt := range MaxRetries {
		out, lastErr = call()
		if lastErr == nil || !IsRetryable(lastErr) {
			break
		}
		log.Warn("retryable suggestion error", "stage", stage, "attempt", attempt, "error", lastErr)
		select {
		case <-time.After(Backoff(attempt)):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return out, lastErr
}

// stageUpload writes the job's file bytes to a temp file carrying the
// original extension, so source selection by extension still works.
func stageUpload(job *Job) (string, error) {
	ext := filepath.Ext(job.Filename)
	tmp, err := os.CreateTemp("", "sheetsplit-*"+ext)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(job.FileData()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("close temp file: %w", err)
	}
	return tmpPath, nil
}

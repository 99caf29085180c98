package domain

import "time"

// TaskStatus represents the processing state of a queued classification task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusProcessing TaskStatus = "processing"
	TaskStatusDone       TaskStatus = "done"
	TaskStatusFailed     TaskStatus = "failed"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusProcessing, TaskStatusDone, TaskStatusFailed:
		return true
	}
	return false
}

// TaskKind selects what the worker does with a request.
type TaskKind string

const (
	TaskKindAnalyze    TaskKind = "analyze"
	TaskKindTranscribe TaskKind = "transcribe"
)

func (k TaskKind) IsValid() bool {
	return k == TaskKindAnalyze || k == TaskKindTranscribe
}

// ClassificationTask is a request queued for background enrichment.
type ClassificationTask struct {
	ID           int64
	RequestID    int64
	Kind         TaskKind
	Status       TaskStatus
	Attempts     int
	ErrorMessage *string
	RequestedAt  time.Time
	ProcessedAt  *time.Time
	CreatedAt    time.Time
}

// QueueStats holds aggregate counts by status.
type QueueStats struct {
	Pending    int
	Processing int
	Done       int
	Failed     int
	Total      int
}

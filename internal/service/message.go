package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/sms4jawaly/sms4jawaly-go/internal/cache"
	"github.com/sms4jawaly/sms4jawaly-go/jawaly"
)

var (
	// ErrEmptyMessage is returned when no message text is provided.
	ErrEmptyMessage = errors.New("message text is required")
	// ErrNoRecipients is returned when the recipient list is empty.
	ErrNoRecipients = errors.New("at least one recipient is required")
)

// Counter keys under the stats prefix.
const (
	bulkRequestsCounter = "bulk_requests"
	acceptedCounter     = "accepted_messages"
)

type MessageService interface {
	// SendBulk dispatches message to numbers through the gateway. An empty
	// sender falls back to the client's configured default. Partial chunk
	// failures are part of the report, not an error.
	SendBulk(ctx context.Context, message string, numbers []string, sender string) (*jawaly.BulkReport, error)
}

type messageService struct {
	gateway Gateway
	cache   cache.Cache
	jobTTL  time.Duration
}

// NewMessageService creates a message service with the given dependencies.
func NewMessageService(gateway Gateway, c cache.Cache, jobTTL time.Duration) MessageService {
	if jobTTL <= 0 {
		jobTTL = 24 * time.Hour
	}

	return &messageService{
		gateway: gateway,
		cache:   c,
		jobTTL:  jobTTL,
	}
}

func (s *messageService) SendBulk(ctx context.Context, message string, numbers []string, sender string) (*jawaly.BulkReport, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}
	if len(numbers) == 0 {
		return nil, ErrNoRecipients
	}

	if sender == "" {
		sender = s.gateway.Sender()
	}

	report, err := s.gateway.SendBulkAs(ctx, message, sender, numbers)
	if err != nil {
		return nil, fmt.Errorf("bulk send: %w", err)
	}

	log.Printf("[Message] Bulk send done: %d accepted, %d failed, %d job(s)",
		report.TotalSuccess, report.TotalFailed, len(report.JobIDs))

	s.record(ctx, report)

	return report, nil
}

// record keeps best-effort bookkeeping in the cache: dispatch timestamps per
// accepted job plus running counters. Failures are logged only; the report
// has already been produced and must reach the caller.
func (s *messageService) record(ctx context.Context, report *jawaly.BulkReport) {
	if s.cache == nil {
		return
	}

	now := time.Now().Format(time.RFC3339)
	for _, jobID := range report.JobIDs {
		if err := s.cache.Set(ctx, cache.Jobs.Key(jobID), now, s.jobTTL); err != nil {
			log.Printf("[Message] Failed to cache job %s: %v", jobID, err)
		}
	}

	if _, err := s.cache.Incr(ctx, cache.Stats.Key(bulkRequestsCounter)); err != nil {
		log.Printf("[Message] Failed to bump request counter: %v", err)
	}

	if report.TotalSuccess > 0 {
		if _, err := s.cache.IncrBy(ctx, cache.Stats.Key(acceptedCounter), int64(report.TotalSuccess)); err != nil {
			log.Printf("[Message] Failed to bump accepted counter: %v", err)
		}
	}
}

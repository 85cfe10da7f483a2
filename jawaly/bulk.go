package jawaly

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
)

// BulkReport is the aggregated outcome of one bulk send. Every recipient of
// the call is counted exactly once, either in TotalSuccess or in TotalFailed.
type BulkReport struct {
	// Success is true iff no chunk failed.
	Success bool `json:"success"`

	TotalSuccess int `json:"total_success"`
	TotalFailed  int `json:"total_failed"`

	// JobIDs holds the gateway job id of each accepted chunk, in chunk
	// submission order.
	JobIDs []string `json:"job_ids"`

	// Errors groups the numbers of failed chunks by failure reason.
	Errors map[string][]string `json:"errors"`
}

// chunkOutcome is the result of sending one chunk. A chunk either goes
// through as a whole or is rejected as a whole; reason is set on rejection.
type chunkOutcome struct {
	numbers []string
	ok      bool
	jobID   string
	reason  string
}

// chunkSizeFor picks the chunk size for n recipients: small lists go out in
// a single request, mid-sized lists are split into up to five roughly equal
// chunks, anything larger is capped at 100 numbers per request.
func chunkSizeFor(n int) int {
	switch {
	case n <= 5:
		return n
	case n <= 100:
		return (n + 4) / 5
	default:
		return 100
	}
}

// chunkNumbers slices numbers into consecutive groups of at most size
// elements. Order is preserved and the groups partition the input exactly;
// the last group may be shorter.
func chunkNumbers(numbers []string, size int) [][]string {
	if size <= 0 {
		return nil
	}

	chunks := make([][]string, 0, (len(numbers)+size-1)/size)
	for start := 0; start < len(numbers); start += size {
		end := start + size
		if end > len(numbers) {
			end = len(numbers)
		}
		chunks = append(chunks, numbers[start:end])
	}

	return chunks
}

// SendBulk sends message to all numbers using the configured default sender.
func (c *Client) SendBulk(ctx context.Context, message string, numbers []string) (*BulkReport, error) {
	return c.SendBulkAs(ctx, message, c.sender, numbers)
}

// SendSingle sends message to a single number.
func (c *Client) SendSingle(ctx context.Context, message, number string) (*BulkReport, error) {
	return c.SendBulk(ctx, message, []string{number})
}

// SendBulkAs splits numbers into chunks, dispatches one send request per
// chunk concurrently and folds the chunk outcomes into a single report.
//
// A failed chunk never aborts its siblings and never turns into an error
// return: partial failure is a normal outcome, recorded in Errors. The only
// hard error is a client that was not built through New.
func (c *Client) SendBulkAs(ctx context.Context, message, sender string, numbers []string) (*BulkReport, error) {
	if c.httpClient == nil || c.baseURL == "" {
		return nil, errors.New("jawaly: client not configured, use New")
	}

	report := &BulkReport{
		Success: true,
		JobIDs:  []string{},
		Errors:  map[string][]string{},
	}

	if len(numbers) == 0 {
		return report, nil
	}

	chunks := chunkNumbers(numbers, chunkSizeFor(len(numbers)))

	// One goroutine per chunk. Each outcome lands in its submission slot,
	// so the fold below is deterministic regardless of completion order.
	outcomes := make([]chunkOutcome, len(chunks))

	var wg sync.WaitGroup
	for i, chunk := range chunks {
		wg.Add(1)

		go func(i int, chunk []string) {
			defer wg.Done()
			outcomes[i] = c.sendChunk(ctx, message, chunk, sender)
		}(i, chunk)
	}

	// All chunks must report before aggregation starts.
	wg.Wait()

	for _, out := range outcomes {
		if out.ok {
			report.TotalSuccess += len(out.numbers)
			if out.jobID != "" {
				report.JobIDs = append(report.JobIDs, out.jobID)
			}
			continue
		}

		report.TotalFailed += len(out.numbers)
		report.Errors[out.reason] = append(report.Errors[out.reason], out.numbers...)
	}

	report.Success = report.TotalFailed == 0

	return report, nil
}

// sendChunk posts one chunk to the send endpoint and classifies the result.
//
// A 200 response still fails the whole chunk when the gateway reports an
// err_text on the message entry. Non-200 responses use the body's message
// field as the reason when present. Transport and decode failures are folded
// into the rejection reason; no retries happen at this layer.
func (c *Client) sendChunk(ctx context.Context, message string, numbers []string, sender string) chunkOutcome {
	out := chunkOutcome{numbers: numbers}

	payload := SendRequest{
		Messages: []MessagePayload{{
			Text:    message,
			Numbers: numbers,
			Sender:  sender,
		}},
	}

	req, err := c.newRequest(ctx, http.MethodPost, "account/area/sms/send", nil, payload)
	if err != nil {
		out.reason = err.Error()
		return out
	}

	status, raw, err := c.do(req)
	if err != nil {
		out.reason = err.Error()
		return out
	}

	if status != http.StatusOK {
		var body SendResponse
		_ = json.Unmarshal(raw, &body)

		if body.Message != "" {
			out.reason = body.Message
		} else {
			out.reason = fmt.Sprintf("HTTP Error: %d", status)
		}
		return out
	}

	var resp SendResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		out.reason = fmt.Sprintf("failed to parse send response: %v", err)
		return out
	}

	if errText, found := resp.ErrText(); found {
		out.reason = errText
		return out
	}

	out.ok = true
	out.jobID = resp.JobID

	return out
}

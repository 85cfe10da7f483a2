package service

import (
	"context"

	"github.com/sms4jawaly/sms4jawaly-go/jawaly"
)

// Gateway is the slice of the 4jawaly client the services depend on.
// It is satisfied by *jawaly.Client and stubbed in tests.
type Gateway interface {
	SendBulkAs(ctx context.Context, message, sender string, numbers []string) (*jawaly.BulkReport, error)
	GetBalance(ctx context.Context) (*jawaly.BalanceResponse, error)
	GetSenders(ctx context.Context) (*jawaly.SenderNamesResponse, error)
	Sender() string
}

var _ Gateway = (*jawaly.Client)(nil)

package cache

import "fmt"

type Prefix string

const (
	// Balance stores the last fetched balance snapshot as JSON.
	Balance Prefix = "balance"
	// Senders stores the last fetched sender-name list as JSON.
	Senders Prefix = "senders"
	// Jobs stores the dispatch timestamp of accepted gateway jobs.
	Jobs Prefix = "jobs"
	// Stats stores running counters (accepted messages, bulk requests).
	Stats Prefix = "stats"
)

func (p Prefix) Key(id string) string {
	return fmt.Sprintf("%s:%s", p, id)
}

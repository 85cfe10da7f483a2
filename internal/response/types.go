package response

import (
	"github.com/sms4jawaly/sms4jawaly-go/jawaly"
)

type WelcomePayload struct {
	Message string `json:"message"`
}

type HealthPayload struct {
	Status string `json:"status"`
}

type WelcomeResponse struct {
	Success   bool           `json:"success"`
	Data      WelcomePayload `json:"data"`
	Timestamp string         `json:"timestamp"`
}

type HealthResponse struct {
	Success   bool          `json:"success"`
	Data      HealthPayload `json:"data"`
	Timestamp string        `json:"timestamp"`
}

type RefresherControlPayload struct {
	Message string `json:"message"`
}

type RefresherControlResponse struct {
	Success   bool                    `json:"success"`
	Data      RefresherControlPayload `json:"data"`
	Timestamp string                  `json:"timestamp"`
}

// BulkReportDTO is the public-facing shape of a bulk send report. It
// decouples the wire format from the library type and plays nicely
// with Swagger.
type BulkReportDTO struct {
	Success      bool                `json:"success"`
	TotalSuccess int                 `json:"totalSuccess"`
	TotalFailed  int                 `json:"totalFailed"`
	JobIDs       []string            `json:"jobIds"`
	Errors       map[string][]string `json:"errors"`
}

type BulkReportResponse struct {
	Success   bool          `json:"success"`
	Data      BulkReportDTO `json:"data"`
	Timestamp string        `json:"timestamp"`
}

// FromBulkReport converts a library bulk report into its DTO.
func FromBulkReport(r *jawaly.BulkReport) BulkReportDTO {
	return BulkReportDTO{
		Success:      r.Success,
		TotalSuccess: r.TotalSuccess,
		TotalFailed:  r.TotalFailed,
		JobIDs:       r.JobIDs,
		Errors:       r.Errors,
	}
}

type PackageDTO struct {
	ID            int    `json:"id"`
	PackagePoints int    `json:"packagePoints"`
	CurrentPoints int    `json:"currentPoints"`
	ExpireAt      string `json:"expireAt"`
	IsActive      bool   `json:"isActive"`
}

type BalancePayload struct {
	Balance  float64      `json:"balance"`
	Packages []PackageDTO `json:"packages"`
}

type BalanceResponse struct {
	Success   bool           `json:"success"`
	Data      BalancePayload `json:"data"`
	Timestamp string         `json:"timestamp"`
}

// FromBalance converts a library balance response into its payload.
func FromBalance(b *jawaly.BalanceResponse) BalancePayload {
	packages := make([]PackageDTO, len(b.Packages))
	for i, p := range b.Packages {
		packages[i] = PackageDTO{
			ID:            p.ID,
			PackagePoints: p.PackagePoints,
			CurrentPoints: p.CurrentPoints,
			ExpireAt:      p.ExpireAt,
			IsActive:      p.IsActive,
		}
	}

	return BalancePayload{
		Balance:  b.Balance,
		Packages: packages,
	}
}

type SenderDTO struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Note      string `json:"note,omitempty"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type SendersPayload struct {
	Items []SenderDTO `json:"items"`
	Total int         `json:"total"`
}

type SendersResponse struct {
	Success   bool           `json:"success"`
	Data      SendersPayload `json:"data"`
	Timestamp string         `json:"timestamp"`
}

// FromSenders converts a library sender list into its payload.
func FromSenders(s *jawaly.SenderNamesResponse) SendersPayload {
	items := make([]SenderDTO, len(s.Data))
	for i, sn := range s.Data {
		items[i] = SenderDTO{
			ID:        sn.ID,
			Name:      sn.Name,
			Status:    sn.Status,
			Note:      sn.Note,
			CreatedAt: sn.CreatedAt,
			UpdatedAt: sn.UpdatedAt,
		}
	}

	return SendersPayload{
		Items: items,
		Total: s.Total,
	}
}

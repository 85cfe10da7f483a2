package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sms4jawaly/sms4jawaly-go/internal/request"
	"github.com/sms4jawaly/sms4jawaly-go/internal/response"
	"github.com/sms4jawaly/sms4jawaly-go/internal/scheduler"
	"github.com/sms4jawaly/sms4jawaly-go/internal/service"
)

// MessageHandler wires the bulk send endpoint and the balance refresher
// control to HTTP.
type MessageHandler struct {
	msgSvc service.MessageService
	schSvc scheduler.SchedulerService
}

// NewMessageHandler constructs a new MessageHandler with its dependencies.
func NewMessageHandler(msgSvc service.MessageService, schSvc scheduler.SchedulerService) *MessageHandler {
	return &MessageHandler{
		msgSvc: msgSvc,
		schSvc: schSvc,
	}
}

// SendBulk godoc
// @Summary     Send bulk SMS
// @Description Splits the recipient list into chunks, dispatches them to the
// @Description gateway in parallel and returns the aggregated report.
// @Tags        messages
// @Accept      json
// @Produce     json
// @Param       request body request.BulkSendRequest true "Message, recipients and optional sender override"
// @Success     200 {object} response.BulkReportResponse
// @Failure     400 {object} map[string]string
// @Failure     502 {object} map[string]string
// @Router      /messages/bulk [post]
func (h *MessageHandler) SendBulk(w http.ResponseWriter, r *http.Request) {
	var req request.BulkSendRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	report, err := h.msgSvc.SendBulk(r.Context(), req.Message, req.Numbers, req.Sender)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) || errors.Is(err, service.ErrNoRecipients) {
			response.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		response.RespondError(w, http.StatusBadGateway, err.Error())
		return
	}

	// Partial failures are reported inside the payload with a 200;
	// the call itself succeeded.
	response.RespondJSON(w, http.StatusOK, response.FromBulkReport(report))
}

// ControlRefresher godoc
// @Summary     Control balance refresher
// @Description Starts or stops the periodic balance refresher based on the given action.
// @Tags        refresher
// @Accept      json
// @Produce     json
// @Param       request body request.RefresherRequest true "Refresher action (start|stop)"
// @Success     200 {object} response.RefresherControlResponse
// @Failure     400 {object} map[string]string
// @Router      /refresher [post]
func (h *MessageHandler) ControlRefresher(w http.ResponseWriter, r *http.Request) {
	var req request.RefresherRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	switch req.Action {
	case "start":
		if err := h.schSvc.Start(); err != nil {
			response.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}

		payload := response.RefresherControlPayload{
			Message: "refresher started",
		}
		response.RespondJSON(w, http.StatusOK, payload)
		return

	case "stop":
		if err := h.schSvc.Stop(); err != nil {
			response.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}

		payload := response.RefresherControlPayload{
			Message: "refresher stopped",
		}
		response.RespondJSON(w, http.StatusOK, payload)
		return

	default:
		response.RespondError(w, http.StatusBadRequest, "action must be 'start' or 'stop'")
		return
	}
}

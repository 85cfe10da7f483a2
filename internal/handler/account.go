package handler

import (
	"net/http"

	"github.com/sms4jawaly/sms4jawaly-go/internal/response"
	"github.com/sms4jawaly/sms4jawaly-go/internal/service"
)

// AccountHandler serves account-level reads (balance, sender names).
type AccountHandler struct {
	acctSvc service.AccountService
}

// NewAccountHandler constructs a new AccountHandler with its dependencies.
func NewAccountHandler(acctSvc service.AccountService) *AccountHandler {
	return &AccountHandler{acctSvc: acctSvc}
}

// GetBalance godoc
// @Summary     Account balance
// @Description Returns the account balance and active packages, served from
// @Description cache when a fresh snapshot exists.
// @Tags        account
// @Produce     json
// @Success     200 {object} response.BalanceResponse
// @Failure     502 {object} map[string]string
// @Router      /balance [get]
func (h *AccountHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.acctSvc.Balance(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusBadGateway, err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, response.FromBalance(balance))
}

// GetSenders godoc
// @Summary     Approved sender names
// @Description Returns the approved sender names registered on the account.
// @Tags        account
// @Produce     json
// @Success     200 {object} response.SendersResponse
// @Failure     502 {object} map[string]string
// @Router      /senders [get]
func (h *AccountHandler) GetSenders(w http.ResponseWriter, r *http.Request) {
	senders, err := h.acctSvc.Senders(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusBadGateway, err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, response.FromSenders(senders))
}

package routes

import (
	"net/http"

	_ "github.com/sms4jawaly/sms4jawaly-go/internal/docs" // swagger docs
	"github.com/sms4jawaly/sms4jawaly-go/internal/response"
	swaggerHandler "github.com/swaggo/http-swagger"
)

type AppDeps struct {
	Home    HomeHandler
	Message MessageHandler
	Account AccountHandler
}

type HomeHandler interface {
	Index(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
}

type MessageHandler interface {
	SendBulk(w http.ResponseWriter, r *http.Request)
	ControlRefresher(w http.ResponseWriter, r *http.Request)
}

type AccountHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetSenders(w http.ResponseWriter, r *http.Request)
}

func Register(mux *http.ServeMux, d AppDeps) {
	mux.HandleFunc("GET /{$}", d.Home.Index)
	mux.HandleFunc("GET /health", d.Home.Health)

	mux.HandleFunc("POST /messages/bulk", d.Message.SendBulk)
	mux.HandleFunc("POST /refresher", d.Message.ControlRefresher)

	mux.HandleFunc("GET /balance", d.Account.GetBalance)
	mux.HandleFunc("GET /senders", d.Account.GetSenders)

	//Swagger
	mux.HandleFunc("GET /swagger/", swaggerHandler.WrapHandler)

	// Fallback handler for undefined routes (404)
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.RespondError(w, http.StatusNotFound, "route not found")
	}))
}

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sms4jawaly/sms4jawaly-go/internal/config"
	"github.com/sms4jawaly/sms4jawaly-go/jawaly"
)

// sendsms is a small command line front for the gateway client:
//
//	sendsms -message "hello" 9665xxxxxxx 9665yyyyyyy
//	sendsms -balance
//	sendsms -senders
func main() {
	message := flag.String("message", "", "message text to send to the given numbers")
	sender := flag.String("sender", "", "sender name override (defaults to JAWALY_SENDER)")
	balance := flag.Bool("balance", false, "print the account balance and exit")
	senders := flag.Bool("senders", false, "print the approved sender names and exit")
	flag.Parse()

	ctx := context.Background()

	// Credentials come from environment/.env, same as the API server.
	cfg := config.New()

	client, err := jawaly.New(jawaly.Config{
		APIKey:    cfg.Gateway.APIKey,
		APISecret: cfg.Gateway.APISecret,
		Sender:    cfg.Gateway.Sender,
		BaseURL:   cfg.Gateway.BaseURL,
	})
	if err != nil {
		log.Fatalf("[SendSMS] Failed to build gateway client: %v", err)
	}

	switch {
	case *balance:
		resp, err := client.GetBalance(ctx)
		if err != nil {
			log.Fatalf("[SendSMS] Failed to get balance: %v", err)
		}
		printJSON(resp)

	case *senders:
		resp, err := client.GetSenders(ctx)
		if err != nil {
			log.Fatalf("[SendSMS] Failed to get senders: %v", err)
		}
		printJSON(resp)

	default:
		numbers := flag.Args()
		if *message == "" || len(numbers) == 0 {
			fmt.Fprintln(os.Stderr, "usage: sendsms -message <text> [-sender <name>] <number> [number...]")
			fmt.Fprintln(os.Stderr, "       sendsms -balance | -senders")
			os.Exit(2)
		}

		name := *sender
		if name == "" {
			name = client.Sender()
		}

		report, err := client.SendBulkAs(ctx, *message, name, numbers)
		if err != nil {
			log.Fatalf("[SendSMS] Bulk send failed: %v", err)
		}

		printJSON(report)

		if !report.Success {
			os.Exit(1)
		}
	}
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("[SendSMS] Failed to render output: %v", err)
	}
	fmt.Println(string(out))
}

package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alanyoungcy/arbscan/internal/domain"
)

var discard = slog.New(slog.DiscardHandler)

type recordingSender struct {
	name   string
	err    error
	titles []string
	bodies []string
}

func (s *recordingSender) Name() string { return s.name }

func (s *recordingSender) Send(_ context.Context, title, message string) error {
	s.titles = append(s.titles, title)
	s.bodies = append(s.bodies, message)
	return s.err
}

func TestNotifyEventFilter(t *testing.T) {
	sender := &recordingSender{name: "telegram"}
	n := NewNotifier([]Sender{sender}, []string{"opportunity"}, discard)

	if err := n.Notify(context.Background(), EventError, "t1", "m"); err != nil {
		t.Fatalf("filtered Notify: %v", err)
	}
	if len(sender.titles) != 0 {
		t.Errorf("filtered event was delivered: %v", sender.titles)
	}

	if err := n.Notify(context.Background(), EventOpportunity, "t2", "m"); err != nil {
		t.Fatalf("allowed Notify: %v", err)
	}
	if len(sender.titles) != 1 || sender.titles[0] != "t2" {
		t.Errorf("titles = %v, want [t2]", sender.titles)
	}
}

func TestNotifyEmptyEventsAllowsAll(t *testing.T) {
	sender := &recordingSender{name: "discord"}
	n := NewNotifier([]Sender{sender}, nil, discard)

	if err := n.Notify(context.Background(), Event("anything"), "t", "m"); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if len(sender.titles) != 1 {
		t.Errorf("titles = %v, want one delivery", sender.titles)
	}
}

func TestNotifyPartialFailure(t *testing.T) {
	broken := &recordingSender{name: "telegram", err: errors.New("bad token")}
	working := &recordingSender{name: "discord"}
	n := NewNotifier([]Sender{broken, working}, nil, discard)

	err := n.Notify(context.Background(), EventError, "t", "m")
	if err == nil {
		t.Fatal("Notify swallowed the sender error")
	}
	if !strings.Contains(err.Error(), "telegram") {
		t.Errorf("error = %v, want the failing sender named", err)
	}
	if !errors.Is(err, broken.err) {
		t.Errorf("error = %v, want the sender error wrapped", err)
	}
	// The working sender still got the message.
	if len(working.titles) != 1 {
		t.Errorf("working sender deliveries = %v, want 1", working.titles)
	}
}

func TestNotifyOpportunities(t *testing.T) {
	sender := &recordingSender{name: "discord"}
	n := NewNotifier([]Sender{sender}, []string{"opportunity"}, discard)

	opps := []domain.Opportunity{{
		Symbol:            "BTC/USDT",
		BuyExchange:       "binance",
		SellExchange:      "kraken",
		BuyPrice:          64100.5,
		SellPrice:         64500,
		RealProfitPercent: 0.421,
	}}
	if err := n.NotifyOpportunities(context.Background(), opps); err != nil {
		t.Fatalf("NotifyOpportunities: %v", err)
	}
	if len(sender.titles) != 1 || sender.titles[0] != "1 arbitrage opportunities" {
		t.Errorf("titles = %v", sender.titles)
	}
	if !strings.Contains(sender.bodies[0], "buy binance @ 64100.5") {
		t.Errorf("body = %q", sender.bodies[0])
	}
}

func TestTelegramSend(t *testing.T) {
	var (
		gotPath string
		payload map[string]string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	s := NewTelegramSender("123:abc", "42")
	s.baseURL = srv.URL
	if err := s.Send(context.Background(), "title", "body"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if gotPath != "/bot123:abc/sendMessage" {
		t.Errorf("path = %q", gotPath)
	}
	if payload["chat_id"] != "42" || payload["text"] != "*title*\nbody" {
		t.Errorf("payload = %v", payload)
	}
	if payload["parse_mode"] != "Markdown" {
		t.Errorf("parse_mode = %q", payload["parse_mode"])
	}
}

func TestDiscordSend(t *testing.T) {
	var payload map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	s := NewDiscordSender(srv.URL)
	if err := s.Send(context.Background(), "title", "body"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if payload["content"] != "**title**\nbody" {
		t.Errorf("content = %q", payload["content"])
	}
}

func TestSendErrorStatusCarriesReason(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid webhook token", http.StatusUnauthorized)
	}))
	defer srv.Close()

	s := NewDiscordSender(srv.URL)
	err := s.Send(context.Background(), "t", "m")
	if err == nil {
		t.Fatal("Send accepted a 401 response")
	}
	if !strings.Contains(err.Error(), "401") || !strings.Contains(err.Error(), "invalid webhook token") {
		t.Errorf("error = %v, want status and reason", err)
	}
}

func TestFormatOpportunities(t *testing.T) {
	opps := []domain.Opportunity{
		{
			Symbol:            "BTC/USDT",
			BuyExchange:       "binance",
			SellExchange:      "kraken",
			BuyPrice:          64100.5,
			SellPrice:         64500,
			RealProfitPercent: 0.421,
		},
	}

	title, message := FormatOpportunities(opps)
	if title != "1 arbitrage opportunities" {
		t.Errorf("title = %q", title)
	}
	want := "BTC/USDT: buy binance @ 64100.5, sell kraken @ 64500, net 0.421%"
	if message != want {
		t.Errorf("message = %q, want %q", message, want)
	}
}

func TestFormatOpportunitiesTruncated(t *testing.T) {
	opps := make([]domain.Opportunity, 14)
	for i := range opps {
		opps[i] = domain.Opportunity{
			Symbol:      fmt.Sprintf("C%d/USDT", i),
			BuyExchange: "binance", SellExchange: "kraken",
			BuyPrice: 1, SellPrice: 2, RealProfitPercent: 1,
		}
	}

	_, message := FormatOpportunities(opps)
	lines := strings.Split(message, "\n")
	if len(lines) != 11 {
		t.Fatalf("got %d lines, want 10 entries plus the overflow line", len(lines))
	}
	if lines[10] != "... and 4 more" {
		t.Errorf("overflow line = %q", lines[10])
	}
}

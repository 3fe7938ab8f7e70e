package mailer

import (
	"context"
	"testing"

	"github.com/kmolchanov/feedback-service/internal/config"
	"github.com/kmolchanov/feedback-service/internal/logger"
)

func TestNewSMTPMailer(t *testing.T) {
	cfg := config.Mail{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "mailer",
		Password: "secret",
		From:     "noreply@example.com",
	}

	m, err := NewSMTPMailer(cfg, logger.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.from != cfg.From {
		t.Errorf("expected from %s, got %s", cfg.From, m.from)
	}
}

func TestNewSMTPMailer_NoAuth(t *testing.T) {
	cfg := config.Mail{
		Host: "localhost",
		Port: 1025,
		From: "noreply@example.com",
	}

	if _, err := NewSMTPMailer(cfg, logger.Nop()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNopMailer_Send(t *testing.T) {
	if err := (NopMailer{}).Send(context.Background(), "user@example.com", "subject", "body"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

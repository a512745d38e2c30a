package services

import (
  "testing"
  "time"
)

func TestDailyQuoteIsDeterministicPerDay(t *testing.T) {
  svc := NewQuoteService(newTestLogger(t))

  morning := time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC)
  evening := time.Date(2024, 6, 15, 22, 30, 0, 0, time.UTC)

  a := svc.DailyQuote(morning)
  b := svc.DailyQuote(evening)
  if a != b {
    t.Fatalf("same day must give same quote: %+v vs %+v", a, b)
  }
  if a.Text == "" || a.Author == "" {
    t.Fatalf("quote has empty fields: %+v", a)
  }
}

func TestDailyQuoteRotates(t *testing.T) {
  svc := NewQuoteService(newTestLogger(t))

  today := svc.DailyQuote(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))
  tomorrow := svc.DailyQuote(time.Date(2024, 6, 16, 12, 0, 0, 0, time.UTC))
  if today == tomorrow {
    t.Fatalf("consecutive days should rotate the quote")
  }
}

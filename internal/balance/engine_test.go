package balance

import (
	"testing"
	"time"
)

func TestComputeWorkedExample(t *testing.T) {
	// Approved payments: 500 ads, 200 leads, 50 wrong orders.
	// One campaign: 120 spent, 30 leads. Commission 0.10.
	totals := Totals{
		AdsPayments:   500,
		LeadsPayments: 200,
		WrongOrders:   50,
		CampaignSpent: 120,
		CampaignLeads: 30,
	}
	ads, leads := Compute(totals, 0.10)
	if ads != 380 {
		t.Fatalf("ads balance: got %v, want 380", ads)
	}
	if leads != 247 {
		t.Fatalf("leads balance: got %v, want 247", leads)
	}
}

func TestComputeEmptyTotals(t *testing.T) {
	ads, leads := Compute(Totals{}, 0.25)
	if ads != 0 || leads != 0 {
		t.Fatalf("empty totals: got ads=%v leads=%v, want zeros", ads, leads)
	}
}

func TestComputeMayGoNegative(t *testing.T) {
	ads, leads := Compute(Totals{CampaignSpent: 300, CampaignLeads: 100}, 0.5)
	if ads != -300 {
		t.Fatalf("ads balance: got %v, want -300", ads)
	}
	if leads != -50 {
		t.Fatalf("leads balance: got %v, want -50", leads)
	}
}

func TestComputeZeroCommissionIgnoresLeads(t *testing.T) {
	_, leads := Compute(Totals{LeadsPayments: 100, CampaignLeads: 9999}, 0)
	if leads != 100 {
		t.Fatalf("leads balance: got %v, want 100", leads)
	}
}

func TestMonthWindow(t *testing.T) {
	now := time.Date(2024, time.March, 17, 15, 4, 5, 0, time.UTC)
	start, end := MonthWindow(now)
	if !start.Equal(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("window start: got %v", start)
	}
	if !end.Equal(now) {
		t.Fatalf("window end: got %v, want now", end)
	}
}

func TestMonthWindowFirstInstant(t *testing.T) {
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	start, end := MonthWindow(now)
	if !start.Equal(now) {
		t.Fatalf("window start: got %v, want now", start)
	}
	// A payment from the previous month must fall outside [start, end).
	previous := now.Add(-time.Second)
	if !previous.Before(start) {
		t.Fatal("previous-month timestamp should precede window start")
	}
	if end.Before(start) {
		t.Fatal("window end precedes start")
	}
}

// Package balance derives a client's financial position from its
// approved payments and campaign history. Nothing computed here is
// ever written back to storage; every read recomputes from scratch.
package balance

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agencyops/backoffice-api/internal/models"
)

// Totals are the raw sums the engine aggregates per client. Absent
// rows contribute zero.
type Totals struct {
	AdsPayments   float64
	LeadsPayments float64
	WrongOrders   float64
	CampaignSpent float64
	CampaignLeads int
}

// Snapshot is the derived view embedded in client responses.
type Snapshot struct {
	AdsBalance   float64 `json:"ads_balance"`
	LeadsBalance float64 `json:"leads_balance"`
	Membership   bool    `json:"membership"`
}

// Compute applies the balance arithmetic. Results may go negative when
// spend outruns approved payments.
func Compute(t Totals, commission float64) (ads, leads float64) {
	ads = t.AdsPayments - t.CampaignSpent
	leads = t.LeadsPayments + t.WrongOrders - float64(t.CampaignLeads)*commission
	return ads, leads
}

// MonthWindow returns the half-open interval [start of the month
// containing now, now) used for the membership check.
func MonthWindow(now time.Time) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return start, now
}

type Engine struct {
	db *gorm.DB
}

func NewEngine(db *gorm.DB) *Engine {
	return &Engine{db: db}
}

// ForClient computes the client's snapshot at time now.
func (e *Engine) ForClient(clientID uuid.UUID, commission float64, now time.Time) (Snapshot, error) {
	var totals Totals
	var err error

	totals.AdsPayments, err = e.paymentSum(clientID, models.PaymentTypeAdsBalance)
	if err != nil {
		return Snapshot{}, err
	}
	totals.LeadsPayments, err = e.paymentSum(clientID, models.PaymentTypeLeadsBalance)
	if err != nil {
		return Snapshot{}, err
	}
	totals.WrongOrders, err = e.paymentSum(clientID, models.PaymentTypeWrongOrders)
	if err != nil {
		return Snapshot{}, err
	}

	row := e.db.Model(&models.Campaign{}).
		Where("client_id = ?", clientID).
		Select("COALESCE(SUM(amount_spent), 0) AS spent, COALESCE(SUM(leads), 0) AS leads")
	var agg struct {
		Spent float64
		Leads int
	}
	if err := row.Scan(&agg).Error; err != nil {
		return Snapshot{}, fmt.Errorf("campaign totals for client %s: %w", clientID, err)
	}
	totals.CampaignSpent = agg.Spent
	totals.CampaignLeads = agg.Leads

	member, err := e.hasMembership(clientID, now)
	if err != nil {
		return Snapshot{}, err
	}

	ads, leads := Compute(totals, commission)
	return Snapshot{AdsBalance: ads, LeadsBalance: leads, Membership: member}, nil
}

func (e *Engine) paymentSum(clientID uuid.UUID, paymentType string) (float64, error) {
	var total float64
	err := e.db.Model(&models.Payment{}).
		Where("client_id = ? AND status = ? AND type = ?", clientID, models.PaymentApproved, paymentType).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("sum %q payments for client %s: %w", paymentType, clientID, err)
	}
	return total, nil
}

// hasMembership reports whether an approved membership payment exists
// in the current calendar month.
func (e *Engine) hasMembership(clientID uuid.UUID, now time.Time) (bool, error) {
	start, end := MonthWindow(now)
	var count int64
	err := e.db.Model(&models.Payment{}).
		Where("client_id = ? AND status = ? AND type = ? AND created_at >= ? AND created_at < ?",
			clientID, models.PaymentApproved, models.PaymentTypeMembership, start, end).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("membership check for client %s: %w", clientID, err)
	}
	return count > 0, nil
}

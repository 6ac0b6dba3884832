package services

import (
	"testing"

	"github.com/google/uuid"

	"github.com/agencyops/backoffice-api/internal/dto"
	"github.com/agencyops/backoffice-api/internal/models"
	"github.com/agencyops/backoffice-api/internal/policy"
)

func clientCaller() policy.Caller {
	clientID := uuid.New()
	return policy.Caller{UserID: uuid.New(), Role: models.RoleClient, ClientID: &clientID}
}

// A client submitting an already-approved payment must still end up in
// review. Mirrors the Create path: apply the payload, then force.
func TestClientCreateLandsInReview(t *testing.T) {
	approved := models.PaymentApproved
	payment := models.Payment{Status: models.PaymentWaitingApproval}
	if err := applyPayment(&payment, &dto.PaymentRequest{Status: &approved}); err != nil {
		t.Fatalf("applyPayment: %v", err)
	}
	if payment.Status != models.PaymentApproved {
		t.Fatalf("payload status not applied: %q", payment.Status)
	}

	forceClientReview(clientCaller(), &payment)
	if payment.Status != models.PaymentWaitingApproval {
		t.Fatalf("client create status = %q, want %q", payment.Status, models.PaymentWaitingApproval)
	}
}

// A client cannot move its own payment out of review on update either.
func TestClientUpdateCannotLeaveReview(t *testing.T) {
	approved := models.PaymentApproved
	payment := models.Payment{ID: uuid.New(), Status: models.PaymentWaitingApproval}
	if err := applyPayment(&payment, &dto.PaymentRequest{Status: &approved}); err != nil {
		t.Fatalf("applyPayment: %v", err)
	}

	forceClientReview(clientCaller(), &payment)
	if payment.Status != models.PaymentWaitingApproval {
		t.Fatalf("client update status = %q, want %q", payment.Status, models.PaymentWaitingApproval)
	}
}

// Staff set any valid status in either direction, including pulling an
// approved payment back into review.
func TestStaffStatusTransitionsAreFree(t *testing.T) {
	staff := policy.Caller{UserID: uuid.New(), Role: models.RoleManager}

	for _, status := range []string{
		models.PaymentApproved,
		models.PaymentNotApproved,
		models.PaymentWaitingApproval,
	} {
		payment := models.Payment{Status: models.PaymentApproved}
		s := status
		if err := applyPayment(&payment, &dto.PaymentRequest{Status: &s}); err != nil {
			t.Fatalf("applyPayment(%q): %v", status, err)
		}
		forceClientReview(staff, &payment)
		if payment.Status != status {
			t.Fatalf("staff status = %q, want %q", payment.Status, status)
		}
	}
}

func TestApplyPaymentRejectsUnknownValues(t *testing.T) {
	badStatus := "Pending"
	badType := "Refund"
	err := applyPayment(&models.Payment{}, &dto.PaymentRequest{Status: &badStatus, Type: &badType})

	fields, ok := err.(dto.FieldErrors)
	if !ok {
		t.Fatalf("expected field errors, got %v", err)
	}
	if _, ok := fields["status"]; !ok {
		t.Error("missing status field error")
	}
	if _, ok := fields["type"]; !ok {
		t.Error("missing type field error")
	}
}

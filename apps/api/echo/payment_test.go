package echoapi_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zulkitech/traindesk/core"
	"github.com/zulkitech/traindesk/core/payment"
)

func Test_paymentAPI_query(t *testing.T) {
	app := setup(t)
	stu := app.seedStudent(t, "Aisha Rahman", "aisha@example.com")

	app.db.AddPayment(payment.Payment{
		ID:          "p1",
		StudentID:   stu.ID,
		AmountPaid:  1500,
		PaymentDate: core.NewDate(2025, time.March, 1),
		Status:      "Paid",
		ReceiptNo:   "RCP-001",
	})
	// payer record deleted since; the name falls back
	app.db.AddPayment(payment.Payment{
		ID:          "p2",
		StudentID:   "gone",
		AmountPaid:  800,
		PaymentDate: core.NewDate(2025, time.February, 1),
		Status:      "Refunded",
		ReceiptNo:   "RCP-002",
	})

	rec := app.request(t, http.MethodGet, "/v1/payments", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var payments []payment.Payment
	decode(t, rec, &payments)
	require.Len(t, payments, 2)

	byReceipt := make(map[string]payment.Payment, 2)
	for _, pmt := range payments {
		byReceipt[pmt.ReceiptNo] = pmt
	}
	assert.Equal(t, "Aisha Rahman", byReceipt["RCP-001"].StudentName)
	assert.Equal(t, "Paid", byReceipt["RCP-001"].Status)
	assert.Equal(t, "Unknown", byReceipt["RCP-002"].StudentName)
}

func Test_paymentAPI_noWriteRoutes(t *testing.T) {
	app := setup(t)

	rec := app.request(t, http.MethodPost, "/v1/payments", map[string]interface{}{"amount_paid": 100})
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = app.request(t, http.MethodDelete, "/v1/payments", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

package payment

import (
	"time"

	"github.com/zulkitech/traindesk/core"
)

// Payment is a recorded course payment. Read-only in this service: records are
// written by the billing side of the backend.
type Payment struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"student_id"`
	StudentName string    `json:"student_name"` // joined from the student record at read time
	AmountPaid  float64   `json:"amount_paid"`
	PaymentDate core.Date `json:"payment_date"`
	Status      string    `json:"payment_status"`
	ReceiptNo   string    `json:"receipt_no"`
	CreatedAt   time.Time `json:"created_at"` // UTC
}

package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/zulkitech/traindesk/core"
	"github.com/zulkitech/traindesk/core/payment"
)

type paymentRepository struct {
	db *sqlx.DB
}

var _ payment.Repository = (*paymentRepository)(nil) // interface compliance check

func NewPaymentRepository(db *sql.DB) *paymentRepository {
	return &paymentRepository{db: newDB(db)}
}

type paymentRow struct {
	ID          string      `db:"id"`
	StudentID   null.String `db:"student_id"`
	StudentName string      `db:"student_name"`
	AmountPaid  float64     `db:"amount_paid"`
	PaymentDate core.Date   `db:"payment_date"`
	Status      null.String `db:"payment_status"`
	ReceiptNo   null.String `db:"receipt_no"`
	CreatedAt   time.Time   `db:"created_at"`
}

func (r paymentRow) unpack() payment.Payment {
	return payment.Payment{
		ID:          r.ID,
		StudentID:   r.StudentID.String,
		StudentName: r.StudentName,
		AmountPaid:  r.AmountPaid,
		PaymentDate: r.PaymentDate,
		Status:      r.Status.String,
		ReceiptNo:   r.ReceiptNo.String,
		CreatedAt:   r.CreatedAt,
	}
}

func (repo paymentRepository) QueryAllPayments(ctx context.Context) ([]payment.Payment, error) {
	var rows []paymentRow
	// a payment survives its student; fall back to a placeholder name then.
	err := repo.db.SelectContext(ctx, &rows, `
		SELECT p.id, p.student_id, COALESCE(s.name, 'Unknown') AS student_name, p.amount_paid,
		       p.payment_date, p.payment_status, p.receipt_no, p.created_at
		FROM payment p
		LEFT JOIN student s ON s.id = p.student_id
		ORDER BY p.created_at`)
	if err != nil {
		return nil, errors.Wrap(err, "querying payments")
	}
	payments := make([]payment.Payment, 0, len(rows))
	for _, r := range rows {
		payments = append(payments, r.unpack())
	}
	return payments, nil
}

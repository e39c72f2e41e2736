package inmemdb

import (
	"context"

	"github.com/zulkitech/traindesk/core/payment"
)

type paymentRepository struct {
	db *DB
}

var _ payment.Repository = (*paymentRepository)(nil)

func NewPaymentRepository(db *DB) *paymentRepository {
	return &paymentRepository{db: db}
}

// AddPayment seeds a payment record. Payments are read-only through the
// service so there is no Repository method for this.
func (db *DB) AddPayment(pmt payment.Payment) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.payments = append(db.payments, pmt)
}

func (repo paymentRepository) QueryAllPayments(_ context.Context) ([]payment.Payment, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	payments := make([]payment.Payment, 0, len(repo.db.payments))
	for _, pmt := range repo.db.payments {
		if name, ok := repo.db.studentName(pmt.StudentID); ok {
			pmt.StudentName = name
		} else {
			pmt.StudentName = "Unknown"
		}
		payments = append(payments, pmt)
	}
	return payments, nil
}

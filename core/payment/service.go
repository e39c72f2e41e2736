package payment

import "context"

type (
	Repository interface {
		// QueryAllPayments returns all payments with the payer's name joined
		// from the student table.
		QueryAllPayments(ctx context.Context) ([]Payment, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryAll(ctx context.Context) ([]Payment, error) {
	return svc.repo.QueryAllPayments(ctx)
}

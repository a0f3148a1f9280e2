package investment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"investments-api/src/database"
	"investments-api/src/model"

	"github.com/shopspring/decimal"
)

const amountPlaces = 2

var (
	ErrNotFound      = errors.New("investment not found")
	ErrUnknownOwner  = errors.New("user profile for this investment does not exist")
	ErrInvalidAmount = errors.New("valor must fit numeric(12,2)")
)

// maxAmount is the largest magnitude numeric(12,2) can hold.
var maxAmount = decimal.New(1, 10)

type InvestmentRequest struct {
	UserId    int64            `json:"user_id" binding:"required,gt=0"`
	UserCpf   string           `json:"user_cpf" binding:"required,len=11,numeric"`
	Type      string           `json:"tipo" binding:"required,max=50"`
	Code      string           `json:"codigo" binding:"required,max=20"`
	Amount    *decimal.Decimal `json:"valor" binding:"required" swaggertype:"number"`
	Operation string           `json:"operacao" binding:"required,max=20"`
}

type Service struct {
	Repo Repository
	Now  func() time.Time
}

func NewService(repo Repository, options ...func(s *Service)) *Service {
	s := &Service{
		Repo: repo,
		Now:  func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Service) CreateInvestment(ctx context.Context, req InvestmentRequest) (*model.Investment, error) {
	amount, err := roundAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	if err := s.ensureOwner(ctx, req.UserId); err != nil {
		return nil, err
	}

	now := s.Now()
	investment := &model.Investment{
		UserId:    req.UserId,
		UserCpf:   req.UserCpf,
		Type:      strings.TrimSpace(req.Type),
		Code:      strings.TrimSpace(req.Code),
		Amount:    amount,
		Operation: strings.TrimSpace(req.Operation),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, investment); err != nil {
		return nil, translate(err)
	}
	return investment, nil
}

func (s *Service) GetInvestment(ctx context.Context, id int64) (*model.Investment, error) {
	investment, err := s.Repo.GetById(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return investment, nil
}

func (s *Service) ListInvestments(ctx context.Context, filter Filter) ([]model.Investment, error) {
	investments, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, translate(err)
	}
	if investments == nil {
		investments = []model.Investment{}
	}
	return investments, nil
}

// ListByUser lists the investments owned by one profile.
func (s *Service) ListByUser(ctx context.Context, userId int64, limit, offset int) ([]model.Investment, error) {
	return s.ListInvestments(ctx, Filter{UserId: userId, Limit: limit, Offset: offset})
}

func (s *Service) UpdateInvestment(ctx context.Context, id int64, req InvestmentRequest) (*model.Investment, error) {
	amount, err := roundAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	investment, err := s.Repo.GetById(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	if investment.UserId != req.UserId {
		if err := s.ensureOwner(ctx, req.UserId); err != nil {
			return nil, err
		}
	}

	investment.UserId = req.UserId
	investment.UserCpf = req.UserCpf
	investment.Type = strings.TrimSpace(req.Type)
	investment.Code = strings.TrimSpace(req.Code)
	investment.Amount = amount
	investment.Operation = strings.TrimSpace(req.Operation)
	investment.UpdatedAt = s.Now()

	if err := s.Repo.Update(ctx, investment); err != nil {
		return nil, translate(err)
	}
	return investment, nil
}

func (s *Service) DeleteInvestment(ctx context.Context, id int64) error {
	return translate(s.Repo.Delete(ctx, id))
}

func (s *Service) ensureOwner(ctx context.Context, userId int64) error {
	exists, err := s.Repo.OwnerExists(ctx, userId)
	if err != nil {
		return translate(err)
	}
	if !exists {
		return ErrUnknownOwner
	}
	return nil
}

func roundAmount(amount *decimal.Decimal) (decimal.Decimal, error) {
	if amount == nil {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	rounded := amount.Round(amountPlaces)
	if rounded.Abs().GreaterThanOrEqual(maxAmount) {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return rounded, nil
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, database.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, database.ErrForeignKeyViolation):
		return ErrUnknownOwner
	default:
		return fmt.Errorf("investment storage: %w", err)
	}
}

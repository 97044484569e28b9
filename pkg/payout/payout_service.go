package payout

import (
	"context"
	"errors"

	"RecycleHub-Backend/domain"
	"RecycleHub-Backend/entities"
	"RecycleHub-Backend/internal/utils"
	"RecycleHub-Backend/pkg/user"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/iris"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type (
	PayoutService interface {
		RequestWithdrawal(ctx context.Context, req domain.RequestWithdrawalRequest, userID string) (*domain.WithdrawalResponse, error)
		GetUserWithdrawals(ctx context.Context, userID string, page, limit int) ([]*domain.WithdrawalResponse, int64, error)
		GetBalance(ctx context.Context, userID string) (*domain.BalanceResponse, error)
		UpdateWithdrawalStatus(ctx context.Context, id string, req domain.UpdateWithdrawalStatusRequest) error
	}

	payoutService struct {
		payoutRepo PayoutRepository
		userRepo   user.UserRepository
		irisClient *iris.Client
	}
)

func NewPayoutService(payoutRepo PayoutRepository, userRepo user.UserRepository) PayoutService {
	s := &payoutService{
		payoutRepo: payoutRepo,
		userRepo:   userRepo,
	}

	if apiKey := utils.GetConfig("IRIS_API_KEY"); apiKey != "" {
		env := midtrans.Sandbox
		if utils.GetConfig("IsProd") == "true" {
			env = midtrans.Production
		}
		client := iris.Client{}
		client.New(apiKey, env)
		s.irisClient = &client
	}

	return s
}

func (s *payoutService) RequestWithdrawal(ctx context.Context, req domain.RequestWithdrawalRequest, userID string) (*domain.WithdrawalResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		return nil, domain.ErrInvalidWithdrawalAmount
	}

	withdrawal := &entities.WithdrawalTransaction{
		ID:            uuid.New(),
		UserID:        userUUID,
		Amount:        amount,
		Status:        domain.WithdrawalStatusPending,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		AccountName:   req.AccountName,
		Notes:         req.Notes,
	}

	if err := s.payoutRepo.CreateWithBalanceCheck(ctx, withdrawal); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	// The payout gateway call happens after the withdrawal is recorded; a
	// gateway failure leaves the row Pending for a later retry instead of
	// losing the request.
	if s.irisClient != nil {
		s.dispatchPayout(ctx, withdrawal)
	}

	return toWithdrawalResponse(withdrawal), nil
}

func (s *payoutService) dispatchPayout(ctx context.Context, withdrawal *entities.WithdrawalTransaction) {
	payoutReq := &iris.CreatePayoutReq{
		Payouts: []iris.CreatePayoutDetailReq{
			{
				BeneficiaryName:    withdrawal.AccountName,
				BeneficiaryAccount: withdrawal.AccountNumber,
				BeneficiaryBank:    withdrawal.BankName,
				Amount:             withdrawal.Amount.String(),
				Notes:              withdrawal.Notes,
			},
		},
	}

	resp, err := s.irisClient.CreatePayout(*payoutReq)
	if err != nil || len(resp.Payouts) == 0 {
		return
	}

	withdrawal.Status = domain.WithdrawalStatusProcessing
	withdrawal.ReferenceNo = resp.Payouts[0].ReferenceNo
	_ = s.payoutRepo.UpdateStatus(ctx, withdrawal.ID.String(), withdrawal.Status, withdrawal.ReferenceNo)
}

func (s *payoutService) GetUserWithdrawals(ctx context.Context, userID string, page, limit int) ([]*domain.WithdrawalResponse, int64, error) {
	withdrawals, count, err := s.payoutRepo.GetUserWithdrawals(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*domain.WithdrawalResponse, 0, len(withdrawals))
	for _, withdrawal := range withdrawals {
		responses = append(responses, toWithdrawalResponse(withdrawal))
	}
	return responses, count, nil
}

func (s *payoutService) GetBalance(ctx context.Context, userID string) (*domain.BalanceResponse, error) {
	account, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	withdrawn, err := s.payoutRepo.GetTotalWithdrawn(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.BalanceResponse{
		TotalEarnings:    account.TotalEarnings.StringFixed(2),
		TotalWithdrawn:   withdrawn.StringFixed(2),
		AvailableBalance: account.TotalEarnings.Sub(withdrawn).StringFixed(2),
	}, nil
}

// UpdateWithdrawalStatus is the settlement path for gateway callbacks and
// manual admin approval.
func (s *payoutService) UpdateWithdrawalStatus(ctx context.Context, id string, req domain.UpdateWithdrawalStatusRequest) error {
	if _, err := s.payoutRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrWithdrawalNotFound
		}
		return err
	}
	return s.payoutRepo.UpdateStatus(ctx, id, req.Status, req.ReferenceNo)
}

func toWithdrawalResponse(withdrawal *entities.WithdrawalTransaction) *domain.WithdrawalResponse {
	return &domain.WithdrawalResponse{
		ID:            withdrawal.ID.String(),
		Amount:        withdrawal.Amount.StringFixed(2),
		Status:        withdrawal.Status,
		BankName:      withdrawal.BankName,
		AccountNumber: withdrawal.AccountNumber,
		AccountName:   withdrawal.AccountName,
		ReferenceNo:   withdrawal.ReferenceNo,
		Notes:         withdrawal.Notes,
		CreatedAt:     withdrawal.CreatedAt,
	}
}

package service

import (
	"context"
	"fmt"
	"time"

	"coin-ledger/internal/core/domain"
	"coin-ledger/internal/core/ports"
	"coin-ledger/pkg/apperror"

	"github.com/jackc/pgx/v5"
)

// ReportServiceImpl implements ports.ReportService. Reports are computed
// inside the metered transaction, so the charged report reflects the data
// as of the debit.
type ReportServiceImpl struct {
	records  ports.RecordsRepository
	metering ports.MeteringService
	now      func() time.Time
}

// NewReportService creates a new ReportServiceImpl.
func NewReportService(records ports.RecordsRepository, metering ports.MeteringService) *ReportServiceImpl {
	return &ReportServiceImpl{
		records:  records,
		metering: metering,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *ReportServiceImpl) ProfitLoss(ctx context.Context, accountID string, from, to *time.Time) (*domain.ProfitLossReport, *ports.MeteredResult, error) {
	if from != nil && to != nil && !from.Before(*to) {
		return nil, nil, apperror.Validation("from must be before to")
	}

	var report *domain.ProfitLossReport
	charge, err := s.metering.Run(ctx, ports.MeteredRequest{AccountID: accountID, Action: domain.ActionProfitLossReport},
		func(ctx context.Context, tx pgx.Tx) error {
			totals, err := s.records.SumCashflows(ctx, tx, domain.CashflowFilter{AccountID: accountID, From: from, To: to})
			if err != nil {
				return fmt.Errorf("sum cashflows: %w", err)
			}
			report = domain.NewProfitLossReport(accountID, from, to, *totals, s.now())
			return nil
		})
	if err != nil {
		return nil, nil, err
	}
	return report, charge, nil
}

func (s *ReportServiceImpl) InventoryValuation(ctx context.Context, accountID string) (*domain.InventoryReport, *ports.MeteredResult, error) {
	var report *domain.InventoryReport
	charge, err := s.metering.Run(ctx, ports.MeteredRequest{AccountID: accountID, Action: domain.ActionInventoryReport},
		func(ctx context.Context, tx pgx.Tx) error {
			items, err := s.records.ListInventoryItems(ctx, tx, accountID)
			if err != nil {
				return fmt.Errorf("list inventory: %w", err)
			}
			report = domain.NewInventoryReport(accountID, items, s.now())
			return nil
		})
	if err != nil {
		return nil, nil, err
	}
	return report, charge, nil
}

package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dmuturi/pesatrack-be/internal/domain"
)

// GormStore persists expenses and uploads to SQLite through gorm.
// Money columns are stored as fixed-point strings and aggregated in Go so
// that no float arithmetic ever touches an amount.
type GormStore struct {
	db      *gorm.DB
	budgets map[string]decimal.Decimal
}

type expenseRecord struct {
	ID            string  `gorm:"primaryKey;size:36"`
	TransactionID *string `gorm:"uniqueIndex;size:16"`
	Date          string  `gorm:"index;size:32"`
	Description   string
	Category      string `gorm:"index"`
	Amount        string
	Fee           string
	PaymentMethod string
	Source        string
	CreatedAt     time.Time
}

func (expenseRecord) TableName() string { return "expenses" }

type uploadRecord struct {
	ID            string `gorm:"primaryKey;size:36"`
	Status        string
	ScannedLines  int
	ExtractedRows int
	CreatedAt     time.Time
	CompletedAt   *time.Time
}

func (uploadRecord) TableName() string { return "uploads" }

type processedEventRecord struct {
	EventID     string `gorm:"primaryKey;size:64"`
	ProcessedAt time.Time
}

func (processedEventRecord) TableName() string { return "processed_events" }

func NewGormStore(path string) (*GormStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.AutoMigrate(&expenseRecord{}, &uploadRecord{}, &processedEventRecord{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return &GormStore{db: db, budgets: domain.DefaultBudgets}, nil
}

func (s *GormStore) CreateUpload(ctx context.Context, uploadID string) error {
	rec := uploadRecord{
		ID:        uploadID,
		Status:    string(domain.UploadStatusProcessing),
		CreatedAt: time.Now(),
	}
	return s.db.WithContext(ctx).Create(&rec).Error
}

func (s *GormStore) GetUpload(ctx context.Context, uploadID string) (*domain.Upload, error) {
	var rec uploadRecord
	err := s.db.WithContext(ctx).First(&rec, "id = ?", uploadID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUploadNotFound
	}
	if err != nil {
		return nil, err
	}

	return &domain.Upload{
		ID:            rec.ID,
		Status:        domain.UploadStatus(rec.Status),
		ScannedLines:  rec.ScannedLines,
		ExtractedRows: rec.ExtractedRows,
		CreatedAt:     rec.CreatedAt,
		CompletedAt:   rec.CompletedAt,
	}, nil
}

func (s *GormStore) UpdateUploadStatus(ctx context.Context, uploadID string, status domain.UploadStatus) error {
	updates := map[string]interface{}{"status": string(status)}
	if status == domain.UploadStatusCompleted || status == domain.UploadStatusFailed {
		now := time.Now()
		updates["completed_at"] = &now
	}

	res := s.db.WithContext(ctx).Model(&uploadRecord{}).Where("id = ?", uploadID).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUploadNotFound
	}
	return nil
}

func (s *GormStore) RecordUploadProgress(ctx context.Context, uploadID string, scannedLines, extractedRows int) error {
	res := s.db.WithContext(ctx).Model(&uploadRecord{}).Where("id = ?", uploadID).Updates(map[string]interface{}{
		"scanned_lines":  scannedLines,
		"extracted_rows": extractedRows,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUploadNotFound
	}
	return nil
}

func (s *GormStore) AddExpense(ctx context.Context, e domain.Expense) error {
	rec := expenseRecord{
		ID:            e.ID,
		Date:          e.Date,
		Description:   e.Description,
		Category:      e.Category,
		Amount:        e.Amount.StringFixed(2),
		Fee:           e.Fee.StringFixed(2),
		PaymentMethod: e.PaymentMethod,
		Source:        string(e.Source),
		CreatedAt:     e.CreatedAt,
	}
	if e.TransactionID != "" {
		txID := e.TransactionID
		rec.TransactionID = &txID
	}

	err := s.db.WithContext(ctx).Create(&rec).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateTransaction
	}
	return err
}

func (s *GormStore) GetExpense(ctx context.Context, expenseID string) (*domain.Expense, error) {
	var rec expenseRecord
	err := s.db.WithContext(ctx).First(&rec, "id = ?", expenseID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrExpenseNotFound
	}
	if err != nil {
		return nil, err
	}

	e, err := toDomainExpense(rec)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *GormStore) ListExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, int, error) {
	if filter.Page < 1 || filter.PerPage < 1 {
		return nil, 0, domain.ErrInvalidPageParams
	}

	query := s.db.WithContext(ctx).Model(&expenseRecord{})
	if filter.StartDate != "" {
		query = query.Where("date >= ?", filter.StartDate)
	}
	if filter.EndDate != "" {
		query = query.Where("date <= ?", filter.EndDate)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []expenseRecord
	err := query.
		Order("date DESC, created_at DESC").
		Offset((filter.Page - 1) * filter.PerPage).
		Limit(filter.PerPage).
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}

	expenses := make([]domain.Expense, 0, len(records))
	for _, rec := range records {
		e, err := toDomainExpense(rec)
		if err != nil {
			return nil, 0, err
		}
		expenses = append(expenses, e)
	}
	return expenses, int(total), nil
}

func (s *GormStore) SummaryByCategory(ctx context.Context, startDate, endDate string) ([]domain.CategorySummary, error) {
	records, err := s.expensesInRange(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	spent := make(map[string]decimal.Decimal)
	for _, rec := range records {
		amount, err := decimal.NewFromString(rec.Amount)
		if err != nil {
			return nil, fmt.Errorf("corrupt amount for expense %s: %w", rec.ID, err)
		}
		spent[rec.Category] = spent[rec.Category].Add(amount)
	}

	var summary []domain.CategorySummary
	for category, total := range spent {
		budget := s.budgets[category]
		remaining := decimal.Zero
		if budget.IsPositive() {
			remaining = budget.Sub(total)
		}
		summary = append(summary, domain.CategorySummary{
			Category:   category,
			TotalSpent: total,
			Budgeted:   budget,
			Remaining:  remaining,
		})
	}

	for category, budget := range s.budgets {
		if _, ok := spent[category]; ok || !budget.IsPositive() {
			continue
		}
		summary = append(summary, domain.CategorySummary{
			Category:   category,
			TotalSpent: decimal.Zero,
			Budgeted:   budget,
			Remaining:  budget,
		})
	}

	sort.Slice(summary, func(i, j int) bool {
		return summary[i].Category < summary[j].Category
	})
	return summary, nil
}

func (s *GormStore) TotalFees(ctx context.Context, startDate, endDate string) (decimal.Decimal, error) {
	records, err := s.expensesInRange(ctx, startDate, endDate)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, rec := range records {
		fee, err := decimal.NewFromString(rec.Fee)
		if err != nil {
			return decimal.Zero, fmt.Errorf("corrupt fee for expense %s: %w", rec.ID, err)
		}
		total = total.Add(fee)
	}
	return total, nil
}

func (s *GormStore) IsEventProcessed(ctx context.Context, eventID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&processedEventRecord{}).Where("event_id = ?", eventID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *GormStore) MarkEventProcessed(ctx context.Context, eventID string) error {
	rec := processedEventRecord{EventID: eventID, ProcessedAt: time.Now()}
	err := s.db.WithContext(ctx).Create(&rec).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateEvent
	}
	return err
}

func (s *GormStore) expensesInRange(ctx context.Context, startDate, endDate string) ([]expenseRecord, error) {
	query := s.db.WithContext(ctx).Model(&expenseRecord{})
	if startDate != "" {
		query = query.Where("date >= ?", startDate)
	}
	if endDate != "" {
		query = query.Where("date <= ?", endDate)
	}

	var records []expenseRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func toDomainExpense(rec expenseRecord) (domain.Expense, error) {
	amount, err := decimal.NewFromString(rec.Amount)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("corrupt amount for expense %s: %w", rec.ID, err)
	}
	fee, err := decimal.NewFromString(rec.Fee)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("corrupt fee for expense %s: %w", rec.ID, err)
	}

	e := domain.Expense{
		ID:            rec.ID,
		Date:          rec.Date,
		Description:   rec.Description,
		Category:      rec.Category,
		Amount:        amount,
		Fee:           fee,
		PaymentMethod: rec.PaymentMethod,
		Source:        domain.Source(rec.Source),
		CreatedAt:     rec.CreatedAt,
	}
	if rec.TransactionID != nil {
		e.TransactionID = *rec.TransactionID
	}
	return e, nil
}

package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmuturi/pesatrack-be/internal/domain"
)

// MemoryStore keeps everything in process memory. It backs tests and the
// default dev configuration; production uses the SQLite-backed store.
type MemoryStore struct {
	uploads         map[string]*domain.Upload
	expenses        []domain.Expense
	seenTxIDs       map[string]bool
	processedEvents map[string]bool
	budgets         map[string]decimal.Decimal
	mu              sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		uploads:         make(map[string]*domain.Upload),
		seenTxIDs:       make(map[string]bool),
		processedEvents: make(map[string]bool),
		budgets:         domain.DefaultBudgets,
	}
}

func (s *MemoryStore) CreateUpload(ctx context.Context, uploadID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.uploads[uploadID] = &domain.Upload{
		ID:        uploadID,
		Status:    domain.UploadStatusProcessing,
		CreatedAt: time.Now(),
	}
	return nil
}

func (s *MemoryStore) GetUpload(ctx context.Context, uploadID string) (*domain.Upload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	upload, exists := s.uploads[uploadID]
	if !exists {
		return nil, domain.ErrUploadNotFound
	}
	return upload, nil
}

func (s *MemoryStore) UpdateUploadStatus(ctx context.Context, uploadID string, status domain.UploadStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	upload, exists := s.uploads[uploadID]
	if !exists {
		return domain.ErrUploadNotFound
	}

	upload.Status = status
	if status == domain.UploadStatusCompleted || status == domain.UploadStatusFailed {
		now := time.Now()
		upload.CompletedAt = &now
	}
	return nil
}

func (s *MemoryStore) RecordUploadProgress(ctx context.Context, uploadID string, scannedLines, extractedRows int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	upload, exists := s.uploads[uploadID]
	if !exists {
		return domain.ErrUploadNotFound
	}

	upload.ScannedLines = scannedLines
	upload.ExtractedRows = extractedRows
	return nil
}

func (s *MemoryStore) AddExpense(ctx context.Context, e domain.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.TransactionID != "" {
		if s.seenTxIDs[e.TransactionID] {
			return domain.ErrDuplicateTransaction
		}
		s.seenTxIDs[e.TransactionID] = true
	}

	s.expenses = append(s.expenses, e)
	return nil
}

func (s *MemoryStore) GetExpense(ctx context.Context, expenseID string) (*domain.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.expenses {
		if s.expenses[i].ID == expenseID {
			e := s.expenses[i]
			return &e, nil
		}
	}
	return nil, domain.ErrExpenseNotFound
}

func (s *MemoryStore) ListExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, int, error) {
	if filter.Page < 1 || filter.PerPage < 1 {
		return nil, 0, domain.ErrInvalidPageParams
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var filtered []domain.Expense
	for _, e := range s.expenses {
		if !matchesFilter(e, filter) {
			continue
		}
		filtered = append(filtered, e)
	}

	// Most recent first. Canonical dates sort lexically; raw-fallback dates
	// sort wherever their text puts them, which is accepted.
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date > filtered[j].Date
	})

	total := len(filtered)
	start := (filter.Page - 1) * filter.PerPage
	if start >= total {
		return []domain.Expense{}, total, nil
	}
	end := start + filter.PerPage
	if end > total {
		end = total
	}
	return filtered[start:end], total, nil
}

func (s *MemoryStore) SummaryByCategory(ctx context.Context, startDate, endDate string) ([]domain.CategorySummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	spent := make(map[string]decimal.Decimal)
	for _, e := range s.expenses {
		if !inDateRange(e.Date, startDate, endDate) {
			continue
		}
		spent[e.Category] = spent[e.Category].Add(e.Amount)
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

	// Budgeted categories with no spending yet still show up.
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

func (s *MemoryStore) TotalFees(ctx context.Context, startDate, endDate string) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, e := range s.expenses {
		if !inDateRange(e.Date, startDate, endDate) {
			continue
		}
		total = total.Add(e.Fee)
	}
	return total, nil
}

func (s *MemoryStore) IsEventProcessed(ctx context.Context, eventID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.processedEvents[eventID], nil
}

func (s *MemoryStore) MarkEventProcessed(ctx context.Context, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.processedEvents[eventID] {
		return domain.ErrDuplicateEvent
	}
	s.processedEvents[eventID] = true
	return nil
}

func matchesFilter(e domain.Expense, filter domain.ExpenseFilter) bool {
	if filter.Category != "" && e.Category != filter.Category {
		return false
	}
	return inDateRange(e.Date, filter.StartDate, filter.EndDate)
}

func inDateRange(date, start, end string) bool {
	if start != "" && date < start {
		return false
	}
	if end != "" && date > end {
		return false
	}
	return true
}

package service

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/dmuturi/pesatrack-be/internal/domain"
	"github.com/dmuturi/pesatrack-be/pkg/logger"
)

type StatementService interface {
	UploadStatement(ctx context.Context, reader io.Reader) (string, error)
	GetUploadStatus(ctx context.Context, uploadID string) (*domain.Upload, error)
}

type statementService struct {
	repo      domain.Repository
	processor StatementProcessorInterface
	logger    *logger.Logger
}

func NewStatementService(repo domain.Repository, processor StatementProcessorInterface, log *logger.Logger) StatementService {
	return &statementService{
		repo:      repo,
		processor: processor,
		logger:    log,
	}
}

func (s *statementService) UploadStatement(ctx context.Context, reader io.Reader) (string, error) {
	uploadID := uuid.New().String()

	ctx = logger.WithUploadID(ctx, uploadID)
	s.logger.Info(ctx, "Creating upload record")

	if err := s.repo.CreateUpload(ctx, uploadID); err != nil {
		s.logger.Error(ctx, "Failed to create upload", "error", err)
		return "", err
	}

	go func() {
		processCtx := logger.WithUploadID(context.Background(), uploadID)

		s.logger.Info(processCtx, "Starting async statement extraction")

		if err := s.processor.ProcessStream(processCtx, uploadID, reader); err != nil {
			s.logger.Error(processCtx, "Statement extraction failed", "error", err)
			return
		}
		s.logger.Info(processCtx, "Statement extraction completed")
	}()

	return uploadID, nil
}

func (s *statementService) GetUploadStatus(ctx context.Context, uploadID string) (*domain.Upload, error) {
	ctx = logger.WithUploadID(ctx, uploadID)

	upload, err := s.repo.GetUpload(ctx, uploadID)
	if err != nil {
		s.logger.Error(ctx, "Failed to get upload", "error", err)
		return nil, err
	}
	return upload, nil
}

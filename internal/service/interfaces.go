package service

import (
	"context"

	"github.com/alexanderramin/wardrisk/internal/contract"
	"github.com/alexanderramin/wardrisk/internal/domain"
)

// Renderer persists a submission's export bundle.
type Renderer interface {
	Render(sub *domain.Submission) (*domain.ExportBundle, error)
}

type SubmissionService interface {
	Submit(ctx context.Context, req contract.SubmitRequest) (*contract.SubmitResult, error)
}

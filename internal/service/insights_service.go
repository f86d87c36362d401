package service

import (
	"context"

	"github.com/dvaldes/sueno-habitos/internal/domain"
	"github.com/dvaldes/sueno-habitos/internal/llm"
)

// InsightsService generates a narrative reading of the dashboard
// reports.
type InsightsService interface {
	Generate(ctx context.Context, filter domain.ReportFilter) (*domain.InsightsResponse, error)
}

type insightsService struct {
	reportService ReportService
	llmClient     llm.InsightsLLM
}

func NewInsightsService(reportService ReportService, llmClient llm.InsightsLLM) InsightsService {
	return &insightsService{
		reportService: reportService,
		llmClient:     llmClient,
	}
}

func (s *insightsService) Generate(ctx context.Context, filter domain.ReportFilter) (*domain.InsightsResponse, error) {
	insightsCtx, err := s.reportService.BuildInsightsContext(ctx, filter)
	if err != nil {
		return nil, err
	}

	llmOutput, err := s.llmClient.GenerateInsights(ctx, insightsCtx)
	if err != nil {
		return nil, err
	}

	return &domain.InsightsResponse{
		WindowDays: insightsCtx.WindowDays,
		Insights:   *llmOutput,
	}, nil
}

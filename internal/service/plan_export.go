package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/gdghack/stockwise/internal/domain"
	"github.com/rs/zerolog/log"
)

// archivePlan pushes a CSV snapshot of a non-empty plan to object storage
// when an archive is configured. Best effort; failures never reach the
// caller.
func (s *RecommendationService) archivePlan(ctx context.Context, plan domain.BudgetPlan) {
	if s.archive == nil || len(plan.Plan) == 0 {
		return
	}

	data, err := planCSV(plan)
	if err != nil {
		log.Warn().Err(err).Msg("could not encode plan for archiving")
		return
	}

	key := fmt.Sprintf("plan_%s_%s.csv", plan.Strategy, time.Now().UTC().Format("20060102T150405Z"))
	if err := s.archive.UploadPlan(ctx, key, data); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("could not archive plan")
		return
	}

	log.Info().Str("key", key).Int("lines", len(plan.Plan)).Msg("purchase plan archived")
}

// ArchivedPlans lists the keys of previously archived plan snapshots. An
// unconfigured archive simply has no plans.
func (s *RecommendationService) ArchivedPlans(ctx context.Context) ([]string, error) {
	if s.archive == nil {
		return []string{}, nil
	}

	keys, err := s.archive.ListPlans(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list archived plans: %w", err)
	}
	if keys == nil {
		keys = []string{}
	}
	return keys, nil
}

func planCSV(plan domain.BudgetPlan) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"Item ID", "Name", "Quantity", "Cost", "Priority Score", "Remaining Budget"}
	if err := writer.Write(header); err != nil {
		return nil, err
	}

	for _, line := range plan.Plan {
		record := []string{
			strconv.FormatInt(line.ItemID, 10),
			line.Name,
			strconv.Itoa(line.Quantity),
			strconv.FormatFloat(line.Cost, 'f', 2, 64),
			strconv.FormatFloat(line.PriorityScore, 'f', 2, 64),
			strconv.FormatFloat(line.RemainingBudget, 'f', 2, 64),
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Package export renders budget plans into spreadsheet workbooks for
// download. Planners hand these to vendors and finance teams, so the
// layout favors readability over machine parsing.
package export

import (
	"fmt"

	"github.com/planora/budget-api/internal/models"
	"github.com/xuri/excelize/v2"
)

const (
	budgetSheet   = "Budget"
	trackingSheet = "Tracking"
)

// BudgetWorkbook renders the plan, and its tracking summary when present,
// into an xlsx workbook. The caller owns closing the returned file.
func BudgetWorkbook(plan *models.BudgetPlan, tracking *models.TrackingSummary) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", budgetSheet); err != nil {
		return nil, fmt.Errorf("failed to name budget sheet: %w", err)
	}
	if err := writeBudgetSheet(f, plan); err != nil {
		return nil, err
	}

	if tracking != nil && len(tracking.Entries) > 0 {
		if _, err := f.NewSheet(trackingSheet); err != nil {
			return nil, fmt.Errorf("failed to add tracking sheet: %w", err)
		}
		if err := writeTrackingSheet(f, tracking); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func writeBudgetSheet(f *excelize.File, plan *models.BudgetPlan) error {
	headers := []string{"Category", "Recommended", "Min", "Max", "Confidence", "Source"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(budgetSheet, cell, h); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	if err := boldRow(f, budgetSheet, len(headers), 1); err != nil {
		return err
	}

	row := 2
	for _, rec := range plan.Recommendations {
		values := []interface{}{
			string(rec.Category),
			rec.RecommendedAmount.InexactFloat64(),
			rec.MinAmount.InexactFloat64(),
			rec.MaxAmount.InexactFloat64(),
			rec.ConfidenceScore,
			string(rec.PricingSource),
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			if err := f.SetCellValue(budgetSheet, cell, v); err != nil {
				return fmt.Errorf("failed to write %s row: %w", rec.Category, err)
			}
		}
		row++
	}

	row++
	if err := f.SetCellValue(budgetSheet, fmt.Sprintf("A%d", row), "Total"); err != nil {
		return fmt.Errorf("failed to write total label: %w", err)
	}
	if err := f.SetCellValue(budgetSheet, fmt.Sprintf("B%d", row), plan.TotalBudget.InexactFloat64()); err != nil {
		return fmt.Errorf("failed to write total: %w", err)
	}
	if plan.PackageSavings.IsPositive() {
		row++
		if err := f.SetCellValue(budgetSheet, fmt.Sprintf("A%d", row), "Package savings"); err != nil {
			return fmt.Errorf("failed to write savings label: %w", err)
		}
		if err := f.SetCellValue(budgetSheet, fmt.Sprintf("B%d", row), plan.PackageSavings.InexactFloat64()); err != nil {
			return fmt.Errorf("failed to write savings: %w", err)
		}
	}

	return f.SetColWidth(budgetSheet, "A", "F", 16)
}

func writeTrackingSheet(f *excelize.File, tracking *models.TrackingSummary) error {
	headers := []string{"Category", "Estimated", "Actual", "Variance", "Tracked On"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(trackingSheet, cell, h); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	if err := boldRow(f, trackingSheet, len(headers), 1); err != nil {
		return err
	}

	row := 2
	for _, e := range tracking.Entries {
		values := []interface{}{
			string(e.Category),
			e.EstimatedCost.InexactFloat64(),
			e.ActualCost.InexactFloat64(),
			e.Variance.InexactFloat64(),
			e.TrackingDate.Format("2006-01-02"),
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			if err := f.SetCellValue(trackingSheet, cell, v); err != nil {
				return fmt.Errorf("failed to write %s row: %w", e.Category, err)
			}
		}
		row++
	}

	row++
	if err := f.SetCellValue(trackingSheet, fmt.Sprintf("A%d", row), "Accuracy"); err != nil {
		return fmt.Errorf("failed to write accuracy label: %w", err)
	}
	if err := f.SetCellValue(trackingSheet, fmt.Sprintf("B%d", row), tracking.Accuracy); err != nil {
		return fmt.Errorf("failed to write accuracy: %w", err)
	}

	return f.SetColWidth(trackingSheet, "A", "E", 16)
}

func boldRow(f *excelize.File, sheet string, cols, row int) error {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(cols, row)
	return f.SetCellStyle(sheet, first, last, style)
}

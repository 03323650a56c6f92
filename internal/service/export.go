package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/pageza/alchemorsel-v2/scaler/internal/model"
	"github.com/pageza/alchemorsel-v2/scaler/internal/types"
)

const (
	// XLSXContentType is the MIME type of exported shopping lists
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	exportURLExpiry = 15 * time.Minute
)

// ObjectStore is the blob storage used for exports
type ObjectStore interface {
	PutObject(ctx context.Context, key, contentType string, data []byte) error
	GeneratePresignedURL(ctx context.Context, key string, expiration time.Duration) (string, error)
}

// ExportService renders scaled recipes as spreadsheets
type ExportService struct {
	store  ObjectStore
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService creates an ExportService. store may be nil, in which case
// uploads fail with ErrExportUnavailable but downloads still work.
func NewExportService(store ObjectStore, logger *zap.Logger) *ExportService {
	return &ExportService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// ShoppingListXLSX renders the ingredients of recipe as an XLSX workbook
func (s *ExportService) ShoppingListXLSX(ctx context.Context, recipe *model.ScaledRecipe) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	rows := [][]interface{}{
		{recipe.Name},
		{"Servings", recipe.Servings},
		{"Scale", recipe.Factor},
		{},
		{"Quantity", "Unit", "Ingredient", "Note"},
	}
	for _, ing := range recipe.Ingredients {
		rows = append(rows, []interface{}{ing.Display, ing.Unit, ing.Name, ing.Note})
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("failed to address row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}
	if err := f.SetColWidth(sheet, "A", "A", 12); err != nil {
		return nil, fmt.Errorf("failed to size columns: %w", err)
	}
	if err := f.SetColWidth(sheet, "C", "C", 32); err != nil {
		return nil, fmt.Errorf("failed to size columns: %w", err)
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// UploadShoppingList stores the XLSX export and returns a presigned download URL
func (s *ExportService) UploadShoppingList(ctx context.Context, recipe *model.ScaledRecipe) (*types.ExportResponse, error) {
	if s.store == nil {
		return nil, ErrExportUnavailable
	}

	data, err := s.ShoppingListXLSX(ctx, recipe)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("shopping-lists/%s/%s.xlsx", recipe.ID, s.now().UTC().Format("20060102_150405"))
	if err := s.store.PutObject(ctx, key, XLSXContentType, data); err != nil {
		return nil, err
	}
	url, err := s.store.GeneratePresignedURL(ctx, key, exportURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to presign %s: %w", key, err)
	}

	s.logger.Info("shopping list exported",
		zap.String("recipe_id", recipe.ID.String()),
		zap.String("key", key),
		zap.Int("bytes", len(data)),
	)
	return &types.ExportResponse{
		URL:       url,
		Key:       key,
		ExpiresIn: int(exportURLExpiry.Seconds()),
	}, nil
}

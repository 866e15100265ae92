package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"makerspace-system/internal/authz"
	"makerspace-system/internal/dto"
	"makerspace-system/internal/entities"
	"makerspace-system/internal/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// EquipmentImportService loads an inventory spreadsheet into the equipment
// table. Expected columns: model, image (optional), condition (optional),
// quantity (optional, defaults to 1). The header row is located by scanning
// for a row that contains "model".
type EquipmentImportService struct {
	db            *pgxpool.Pool
	equipmentRepo repositories.EquipmentRepositoryInterface
	enforcer      Enforcer
	logger        *zap.Logger
}

func NewEquipmentImportService(
	db *pgxpool.Pool,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	enforcer Enforcer,
	logger *zap.Logger,
) *EquipmentImportService {
	return &EquipmentImportService{db: db, equipmentRepo: equipmentRepo, enforcer: enforcer, logger: logger}
}

func (s *EquipmentImportService) ImportInventory(ctx context.Context, subject *entities.User, filePath string) (*dto.ImportSummaryDTO, error) {
	if err := s.enforcer.Enforce(ctx, subject, authz.EquipmentUpdate, authz.ResourceEquipment); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open inventory file: %w", err)
	}
	defer f.Close()

	var finalRows [][]string
	modelIdx, imageIdx, conditionIdx, quantityIdx := -1, -1, -1, -1
	headerFoundRow := -1

	for _, sheet := range f.GetSheetList() {
		rows, _ := f.GetRows(sheet)
		for rIdx, row := range rows {
			for cIdx, colName := range row {
				switch strings.ToLower(strings.TrimSpace(colName)) {
				case "model":
					modelIdx = cIdx
				case "image", "image url", "image_url":
					imageIdx = cIdx
				case "condition":
					conditionIdx = cIdx
				case "quantity", "qty", "count":
					quantityIdx = cIdx
				}
			}
			if modelIdx != -1 {
				finalRows = rows
				headerFoundRow = rIdx
				break
			}
		}
		if headerFoundRow != -1 {
			break
		}
	}

	if headerFoundRow == -1 {
		return nil, fmt.Errorf("no header row with a 'model' column found in %s", filePath)
	}

	summary := &dto.ImportSummaryDTO{}

	err = repositories.WithTx(ctx, s.db, func(tx pgx.Tx) error {
		for i := headerFoundRow + 1; i < len(finalRows); i++ {
			row := finalRows[i]

			model := safeCell(row, modelIdx)
			if model == "" {
				summary.Skipped++
				continue
			}

			condition := 10
			if c, err := strconv.Atoi(safeCell(row, conditionIdx)); err == nil && c >= 0 && c <= 10 {
				condition = c
			}

			quantity := 1
			if q, err := strconv.Atoi(safeCell(row, quantityIdx)); err == nil && q > 0 {
				quantity = q
			}

			for n := 0; n < quantity; n++ {
				item := &entities.Equipment{
					Model:           model,
					EquipmentImage:  safeCell(row, imageIdx),
					Condition:       condition,
					ConditionNotes:  []string{},
					CheckoutHistory: []int64{},
				}
				if err := s.equipmentRepo.CreateEquipmentInTx(ctx, tx, item); err != nil {
					return fmt.Errorf("row %d: %w", i+1, err)
				}
				summary.Created++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("inventory import finished",
		zap.Int("created", summary.Created),
		zap.Int("skipped", summary.Skipped),
	)
	return summary, nil
}

func safeCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

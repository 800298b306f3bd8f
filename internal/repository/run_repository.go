package repository

import (
	"mcc-scheduler/internal/models"

	"gorm.io/gorm"
)

type RunRepository struct {
	db *gorm.DB
}

func NewRunRepository(db *gorm.DB) *RunRepository {
	return &RunRepository{
		db: db,
	}
}

func (r *RunRepository) CreateRun(run *models.RunRecord) error {
	return r.db.Create(run).Error
}

func (r *RunRepository) FindByID(id uint) (*models.RunRecord, error) {
	var run models.RunRecord
	err := r.db.Preload("Entries").First(&run, id).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// ListByGraph returns every run recorded against graphID, most recent
// first.
func (r *RunRepository) ListByGraph(graphID uint, offset, limit int) ([]models.RunRecord, int64, error) {
	var runs []models.RunRecord
	var total int64

	query := r.db.Model(&models.RunRecord{}).Where("graph_id = ?", graphID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&runs).Error
	if err != nil {
		return nil, 0, err
	}

	return runs, total, nil
}

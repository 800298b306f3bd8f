package repository

import (
	"mcc-scheduler/internal/models"

	"gorm.io/gorm"
)

type GraphRepository struct {
	db *gorm.DB
}

func NewGraphRepository(db *gorm.DB) *GraphRepository {
	return &GraphRepository{
		db: db,
	}
}

// CreateGraph persists a graph together with its nodes and edges in one
// transaction.
func (r *GraphRepository) CreateGraph(graph *models.TaskGraphRecord) error {
	return r.db.Create(graph).Error
}

func (r *GraphRepository) FindByID(id uint) (*models.TaskGraphRecord, error) {
	var graph models.TaskGraphRecord
	err := r.db.Preload("Nodes").Preload("Edges").First(&graph, id).Error
	if err != nil {
		return nil, err
	}
	return &graph, nil
}

// List returns graphs owned by ownerID, most recently created first.
func (r *GraphRepository) List(ownerID uint, offset, limit int) ([]models.TaskGraphRecord, int64, error) {
	var graphs []models.TaskGraphRecord
	var total int64

	query := r.db.Model(&models.TaskGraphRecord{}).Where("owner_id = ?", ownerID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&graphs).Error
	if err != nil {
		return nil, 0, err
	}

	return graphs, total, nil
}

// Delete removes a graph and its nodes and edges. The cascade is handled
// here, by issuing the three deletes inside one transaction.
func (r *GraphRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("graph_id = ?", id).Delete(&models.TaskNodeRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("graph_id = ?", id).Delete(&models.TaskEdgeRecord{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.TaskGraphRecord{}, id).Error
	})
}

package services

import (
	"catchlog/internal/models"
)

type CatchServiceInterface interface {
	AddCatch(in *models.CatchInput) (models.CatchRecord, error)
	GetCatches() []models.CatchRecord
	GetSummary() models.Summary
	Count() int
	GetSnapshot() *models.StorageV1
	PutSnapshot(storage *models.StorageV1)
}

type CatchService struct {
	store *models.CatchStore
}

func (cs *CatchService) AddCatch(in *models.CatchInput) (models.CatchRecord, error) {
	return cs.store.Add(in)
}

func (cs *CatchService) GetCatches() []models.CatchRecord {
	return cs.store.List()
}

func (cs *CatchService) GetSummary() models.Summary {
	return models.Summarize(cs.store.List())
}

func (cs *CatchService) Count() int {
	return cs.store.Len()
}

func (cs *CatchService) GetSnapshot() *models.StorageV1 {
	return &models.StorageV1{
		Version: models.SnapshotVersion,
		Records: cs.store.List(),
	}
}

func (cs *CatchService) PutSnapshot(storage *models.StorageV1) {
	if storage == nil {
		return
	}
	cs.store.PutData(storage.Records)
}

func NewCatchService() CatchServiceInterface {
	return &CatchService{
		store: models.NewCatchStore(),
	}
}

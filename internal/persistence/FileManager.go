package persistence

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"catchlog/internal/models"
	"catchlog/internal/persistence/interfaces"
	"catchlog/internal/providers"
	"catchlog/internal/services"
)

type FileManager struct {
	service    services.CatchServiceInterface
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, service services.CatchServiceInterface, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		service:    service,
		logger:     logger,
	}
}

func (f *FileManager) SaveToFile(fileName string) error {
	storage := f.service.GetSnapshot()

	jsonData, err := json.Marshal(storage)
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *FileManager) Close() {
	f.compressor.Close()
}

func (f *FileManager) LoadFromFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	decompressedData, err := f.compressor.Decompress(data)
	if err != nil {
		return err
	}

	var storage models.StorageV1
	if err := json.Unmarshal(decompressedData, &storage); err == nil && storage.Version == models.SnapshotVersion {
		f.service.PutSnapshot(&storage)
		return nil
	}

	// Pre-versioned snapshots were a bare record array.
	f.logger.Warnf(providers.TypeApp, "Inconsistent DB found, try to migrate from old data format")
	var records []models.CatchRecord
	if err := json.Unmarshal(decompressedData, &records); err != nil {
		f.logger.Warnf(providers.TypeApp, "Migration failed")
		return fmt.Errorf("unrecognized snapshot format: %w", err)
	}
	f.logger.Warnf(providers.TypeApp, "Migration from unversioned format successful")
	f.service.PutSnapshot(&models.StorageV1{Version: models.SnapshotVersion, Records: records})

	return nil
}

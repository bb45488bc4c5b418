package service

import "pdf-extract-api/internal/domain"

// MetadataHarvester reads descriptive metadata from an open document
type MetadataHarvester struct{}

// NewMetadataHarvester creates a metadata harvester
func NewMetadataHarvester() *MetadataHarvester {
	return &MetadataHarvester{}
}

// Harvest always reports page count, encryption and version. Dictionary
// fields are copied only when the document supplies them.
func (h *MetadataHarvester) Harvest(doc domain.OpenDocument) *domain.MetadataResult {
	result := &domain.MetadataResult{
		Pages:     doc.PageCount(),
		Encrypted: doc.Encrypted(),
		Version:   doc.Version(),
	}

	info, ok := doc.Info()
	if !ok || info == nil {
		return result
	}

	result.Title = info.Title
	result.Author = info.Author
	result.Subject = info.Subject
	result.Keywords = info.Keywords
	result.Creator = info.Creator
	result.Producer = info.Producer
	result.CreationDate = info.CreationDate
	result.ModificationDate = info.ModificationDate

	return result
}

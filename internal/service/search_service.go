package service

import (
	"encoding/json"
	"log"

	"anoa.com/campusplacement/internal/model"
	"github.com/meilisearch/meilisearch-go"
)

const jobsIndex = "jobs"

// SearchService maintains a full-text index of active jobs. It is optional:
// callers hold a nil interface when Meilisearch is not configured and fall
// back to database filtering.
type SearchService interface {
	IndexJob(job *model.Job) error
	RemoveJob(id string) error
	SearchJobIDs(query string) ([]string, error)
}

type searchService struct {
	client meilisearch.ServiceManager
}

func NewSearchService(client meilisearch.ServiceManager) SearchService {
	s := &searchService{client: client}
	s.initIndexes()
	return s
}

func (s *searchService) initIndexes() {
	sortableAttrs := []string{"created_at"}
	if _, err := s.client.Index(jobsIndex).UpdateSortableAttributes(&sortableAttrs); err != nil {
		log.Printf("Failed to update jobs sortable attributes: %v", err)
	}

	log.Println("Meilisearch jobs index initialized")
}

type meiliJobDoc struct {
	ID           string `json:"id"`
	Company      string `json:"company"`
	Position     string `json:"position"`
	Requirements string `json:"requirements"`
	CreatedAt    int64  `json:"created_at"`
}

func (s *searchService) IndexJob(job *model.Job) error {
	doc := meiliJobDoc{
		ID:           job.ID.String(),
		Company:      job.Company,
		Position:     job.Position,
		Requirements: job.Requirements,
		CreatedAt:    job.CreatedAt.Unix(),
	}

	task, err := s.client.Index(jobsIndex).AddDocuments([]meiliJobDoc{doc}, strPtr("id"))
	if err != nil {
		return err
	}
	log.Printf("Indexed job %s, task id: %d", job.ID, task.TaskUID)
	return nil
}

func (s *searchService) RemoveJob(id string) error {
	_, err := s.client.Index(jobsIndex).DeleteDocument(id)
	return err
}

func (s *searchService) SearchJobIDs(query string) ([]string, error) {
	resp, err := s.client.Index(jobsIndex).Search(query, &meilisearch.SearchRequest{Limit: 100})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		raw, err := json.Marshal(hit)
		if err != nil {
			continue
		}
		var doc meiliJobDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			continue
		}
		if doc.ID != "" {
			ids = append(ids, doc.ID)
		}
	}

	return ids, nil
}

func strPtr(s string) *string {
	return &s
}

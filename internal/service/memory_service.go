package service

import (
	"context"

	"personal-assistant-be/internal/dto"
	"personal-assistant-be/pkg/memory"
)

type IMemoryService interface {
	Store(ctx context.Context, req *dto.StoreMemoryRequest) (*dto.StoreMemoryResponse, error)
	Search(ctx context.Context, req *dto.SearchMemoryRequest) ([]*dto.MemoryMatchResponse, error)
	Delete(ctx context.Context, id string) error
}

type memoryService struct {
	store memory.Store
}

func NewMemoryService(store memory.Store) IMemoryService {
	return &memoryService{store: store}
}

func (s *memoryService) Store(ctx context.Context, req *dto.StoreMemoryRequest) (*dto.StoreMemoryResponse, error) {
	id, err := s.store.Add(ctx, req.Category, req.Content, req.Metadata)
	if err != nil {
		return nil, err
	}
	return &dto.StoreMemoryResponse{Id: id}, nil
}

func (s *memoryService) Search(ctx context.Context, req *dto.SearchMemoryRequest) ([]*dto.MemoryMatchResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = 5
	}

	var matches []memory.Match
	var err error
	if req.Category != "" {
		matches, err = s.store.Search(ctx, req.Category, req.Query, limit)
	} else {
		matches, err = s.store.SearchAll(ctx, req.Query, limit)
	}
	if err != nil {
		return nil, err
	}

	out := make([]*dto.MemoryMatchResponse, len(matches))
	for i, m := range matches {
		out[i] = &dto.MemoryMatchResponse{
			Id:       m.Item.Id,
			Category: m.Item.Category,
			Content:  m.Item.Content,
			Metadata: m.Item.Metadata,
			Distance: m.Distance,
		}
	}
	return out, nil
}

func (s *memoryService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

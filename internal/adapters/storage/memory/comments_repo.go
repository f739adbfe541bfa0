package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"patient-registry/internal/domain/comments"
)

type commentsRepo struct {
	store *Store
}

func NewCommentsRepo(store *Store) comments.Repository {
	return &commentsRepo{store: store}
}

func (r *commentsRepo) Create(ctx context.Context, c comments.Comment) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("comment id required")
	}
	if _, exists := s.commentsByID[c.ID]; exists {
		return errors.New("comment already exists")
	}
	// Integridad referencial del FK patient_id, versión in-memory.
	if _, exists := s.patientsByID[c.PatientID]; !exists {
		return ErrNotFound
	}

	s.commentsByID[c.ID] = c
	return nil
}

func (r *commentsRepo) GetByID(ctx context.Context, id string) (comments.Comment, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.commentsByID[id]
	if !ok {
		return comments.Comment{}, comments.ErrNotFound
	}
	return c, nil
}

func (r *commentsRepo) ListByPatient(ctx context.Context, patientID string) ([]comments.CommentWithAuthor, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]comments.CommentWithAuthor, 0)
	for _, c := range s.commentsByID {
		if c.PatientID != patientID {
			continue
		}
		out = append(out, comments.CommentWithAuthor{
			Comment: c,
			Author:  s.authorFor(c.AuthorUserID),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *commentsRepo) Delete(ctx context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.commentsByID[id]; !exists {
		return comments.ErrNotFound
	}
	delete(s.commentsByID, id)
	return nil
}

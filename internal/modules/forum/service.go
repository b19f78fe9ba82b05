package forum

import (
	"context"
	"errors"

	"garagehub/internal/domain"
	"garagehub/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	repo *repository.ForumRepository
	hub  *Hub
}

// NewService wires the forum around its repository. hub may be nil when no
// live feed is mounted.
func NewService(repo *repository.ForumRepository, hub *Hub) *Service {
	return &Service{repo: repo, hub: hub}
}

/* ---------- THREADS ---------- */

func (s *Service) ListThreads(ctx context.Context) ([]domain.ForumThread, error) {
	return s.repo.GetThreads(ctx)
}

func (s *Service) GetThread(ctx context.Context, id int64) (*domain.ForumThread, error) {
	t, err := s.repo.GetThreadByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *Service) CreateThread(ctx context.Context, authorID int64, req CreateThreadRequest) (*domain.ForumThread, error) {
	t := &domain.ForumThread{
		Title:    req.Title,
		AuthorID: authorID,
	}
	if err := s.repo.CreateThread(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) UpdateThread(ctx context.Context, userID, threadID int64, req UpdateThreadRequest) (*domain.ForumThread, error) {
	t, err := s.GetThread(ctx, threadID)
	if err != nil {
		return nil, err
	}

	if !domain.CanModify(userID, t) {
		return nil, ErrForbidden
	}

	t.Title = req.Title
	if err := s.repo.UpdateThread(ctx, t); err != nil {
		return nil, err
	}
	return s.repo.GetThreadByID(ctx, threadID)
}

func (s *Service) DeleteThread(ctx context.Context, userID, threadID int64) error {
	t, err := s.GetThread(ctx, threadID)
	if err != nil {
		return err
	}

	if !domain.CanModify(userID, t) {
		return ErrForbidden
	}
	return s.repo.DeleteThread(ctx, threadID)
}

/* ---------- POSTS ---------- */

// CreatePost appends a post to the thread and pushes it to live subscribers.
func (s *Service) CreatePost(ctx context.Context, authorID, threadID int64, req CreatePostRequest) (*domain.ForumPost, error) {
	if _, err := s.GetThread(ctx, threadID); err != nil {
		return nil, err
	}

	p := &domain.ForumPost{
		ThreadID: threadID,
		AuthorID: authorID,
		Content:  req.Content,
	}
	if err := s.repo.CreatePost(ctx, p); err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Broadcast(threadID, NewPostResponse(p))
	}
	return p, nil
}

func (s *Service) UpdatePost(ctx context.Context, userID, postID int64, req UpdatePostRequest) (*domain.ForumPost, error) {
	p, err := s.repo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !domain.CanModify(userID, p) {
		return nil, ErrForbidden
	}

	p.Content = req.Content
	if err := s.repo.UpdatePost(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) DeletePost(ctx context.Context, userID, postID int64) error {
	p, err := s.repo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !domain.CanModify(userID, p) {
		return ErrForbidden
	}
	return s.repo.DeletePost(ctx, postID)
}

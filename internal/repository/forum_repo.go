package repository

import (
	"context"

	"garagehub/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ForumRepository struct {
	db *gorm.DB
}

func NewForumRepository(db *gorm.DB) *ForumRepository {
	return &ForumRepository{db: db}
}

/* ---------- THREADS ---------- */

func (r *ForumRepository) GetThreads(ctx context.Context) ([]domain.ForumThread, error) {
	var threads []domain.ForumThread
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Posts").
		Preload("Posts.Author").
		Find(&threads).Error
	return threads, err
}

func (r *ForumRepository) GetThreadByID(ctx context.Context, id int64) (*domain.ForumThread, error) {
	var thread domain.ForumThread
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Posts").
		Preload("Posts.Author").
		First(&thread, id).Error
	if err != nil {
		return nil, err
	}
	return &thread, nil
}

func (r *ForumRepository) CreateThread(ctx context.Context, t *domain.ForumThread) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(t).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Preload("Author").First(t, t.ID).Error
}

func (r *ForumRepository) UpdateThread(ctx context.Context, t *domain.ForumThread) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(t).Error
}

// DeleteThread removes the thread and its posts together.
func (r *ForumRepository) DeleteThread(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("thread_id = ?", id).Delete(&domain.ForumPost{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.ForumThread{}, id).Error
	})
}

/* ---------- POSTS ---------- */

func (r *ForumRepository) CreatePost(ctx context.Context, p *domain.ForumPost) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Preload("Author").First(p, p.ID).Error
}

func (r *ForumRepository) GetPostByID(ctx context.Context, id int64) (*domain.ForumPost, error) {
	var post domain.ForumPost
	err := r.db.WithContext(ctx).Preload("Author").First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *ForumRepository) UpdatePost(ctx context.Context, p *domain.ForumPost) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(p).Error
}

func (r *ForumRepository) DeletePost(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.ForumPost{}, id).Error
}

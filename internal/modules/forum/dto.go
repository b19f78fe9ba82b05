package forum

import (
	"time"

	"garagehub/internal/domain"
)

type CreateThreadRequest struct {
	Title string `json:"title" validate:"required"`
}

type UpdateThreadRequest struct {
	Title string `json:"title" validate:"required"`
}

type CreatePostRequest struct {
	Content string `json:"content" validate:"required"`
}

type UpdatePostRequest struct {
	Content string `json:"content" validate:"required"`
}

type AuthorResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type PostResponse struct {
	ID        int64          `json:"id"`
	ThreadID  int64          `json:"thread_id"`
	Author    AuthorResponse `json:"author"`
	Content   string         `json:"content"`
	CreatedAt time.Time      `json:"created_at"`
}

type ThreadResponse struct {
	ID        int64          `json:"id"`
	Title     string         `json:"title"`
	Author    AuthorResponse `json:"author"`
	CreatedAt time.Time      `json:"created_at"`
	Posts     []PostResponse `json:"posts"`
}

func newAuthor(u *domain.User) AuthorResponse {
	if u == nil {
		return AuthorResponse{}
	}
	return AuthorResponse{ID: u.ID, Username: u.Username, Email: u.Email}
}

func NewPostResponse(p *domain.ForumPost) PostResponse {
	return PostResponse{
		ID:        p.ID,
		ThreadID:  p.ThreadID,
		Author:    newAuthor(p.Author),
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
	}
}

func NewThreadResponse(t *domain.ForumThread) ThreadResponse {
	resp := ThreadResponse{
		ID:        t.ID,
		Title:     t.Title,
		Author:    newAuthor(t.Author),
		CreatedAt: t.CreatedAt,
	}
	resp.Posts = make([]PostResponse, 0, len(t.Posts))
	for i := range t.Posts {
		resp.Posts = append(resp.Posts, NewPostResponse(&t.Posts[i]))
	}
	return resp
}

func NewThreadResponseList(threads []domain.ForumThread) []ThreadResponse {
	out := make([]ThreadResponse, 0, len(threads))
	for i := range threads {
		out = append(out, NewThreadResponse(&threads[i]))
	}
	return out
}

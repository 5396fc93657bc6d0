package entity

import "time"

// Post is one feed entry. LikeCount and Liked are filled in per viewer
// when the post is served, they are not stored on the post itself.
type Post struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	LikeCount int64     `json:"like_count"`
	Liked     bool      `json:"liked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FeedPage is one page of posts, newest first.
type FeedPage struct {
	Posts      []*Post `json:"posts"`
	Page       int     `json:"page"`
	TotalPages int     `json:"total_pages"`
}

// Profile is the social view of a user: counts plus whether the viewer
// already follows them.
type Profile struct {
	UserID      string `json:"user_id"`
	Followers   int64  `json:"followers"`
	Following   int64  `json:"following"`
	IsFollowing bool   `json:"is_following"`
}

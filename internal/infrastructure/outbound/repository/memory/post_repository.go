package memory

import (
	"context"
	"log/slog"
	"slices"
	"sort"

	"studentoffice-service/internal/custom_errors"
	model "studentoffice-service/internal/domain/models"
)

type PostRepository struct {
	db *DB
}

func (p *PostRepository) Create(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error) {
	p.db.log.Debug("Creating new post (memory impl)", slog.Int64("student_office_id", post.StudentOfficeID), slog.String("title", post.Title))

	p.db.mu.Lock()
	defer p.db.mu.Unlock()

	if _, ok := p.db.state.offices[post.StudentOfficeID]; !ok {
		return nil, custom_errors.ErrDatabaseQuery
	}

	newPost := &model.Post{
		ID:              p.db.state.seq.post.Add(1),
		Title:           post.Title,
		Content:         post.Content,
		CreatedOn:       p.db.now(),
		StudentOfficeID: post.StudentOfficeID,
	}
	if post.PollOptions != nil {
		newPost.PollOptions = slices.Clone(post.PollOptions)
	}
	p.db.state.posts[newPost.ID] = newPost

	return copyPost(newPost), nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	p.db.mu.RLock()
	defer p.db.mu.RUnlock()

	post, ok := p.db.state.posts[id]
	if !ok {
		p.db.log.Debug("Post not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}
	return copyPost(post), nil
}

// LockByID has nothing to lock in memory; a transaction already works on a
// private snapshot.
func (p *PostRepository) LockByID(ctx context.Context, id int64) (*model.Post, error) {
	return p.GetByID(ctx, id)
}

func (p *PostRepository) Update(ctx context.Context, update *model.UpdatePostDTO) (*model.Post, error) {
	p.db.mu.Lock()
	defer p.db.mu.Unlock()

	post, ok := p.db.state.posts[update.ID]
	if !ok || post.StudentOfficeID != update.StudentOfficeID {
		return nil, custom_errors.ErrPostNotFound
	}

	now := p.db.now()
	post.Title = update.Title
	post.Content = update.Content
	post.UpdatedOn = &now

	return copyPost(post), nil
}

func (p *PostRepository) Delete(ctx context.Context, id, studentOfficeID int64) error {
	p.db.mu.Lock()
	defer p.db.mu.Unlock()

	post, ok := p.db.state.posts[id]
	if !ok || post.StudentOfficeID != studentOfficeID {
		return custom_errors.ErrPostNotFound
	}

	delete(p.db.state.posts, id)
	for key := range p.db.state.votes {
		if key.postID == id {
			delete(p.db.state.votes, key)
		}
	}
	return nil
}

func (p *PostRepository) ListFeed(ctx context.Context, filter model.FeedFilter) ([]*model.PostWithVotes, error) {
	p.db.mu.RLock()
	defer p.db.mu.RUnlock()

	var matched []*model.Post
	for _, post := range p.db.state.posts {
		if post.StudentOfficeID != filter.StudentOfficeID {
			continue
		}
		if filter.Cursor != nil && post.ID > *filter.Cursor {
			continue
		}
		matched = append(matched, post)
	}

	// Identity order, not creation stamps: the cursor boundary is an identity.
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })
	if filter.Limit >= 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}

	result := make([]*model.PostWithVotes, 0, len(matched))
	for _, post := range matched {
		withVotes := &model.PostWithVotes{Post: *copyPost(post)}
		for key, option := range p.db.state.votes {
			if key.postID == post.ID {
				withVotes.Votes = append(withVotes.Votes, model.PostVote{UserID: key.userID, OptionIndex: option})
			}
		}
		sort.Slice(withVotes.Votes, func(i, j int) bool {
			return withVotes.Votes[i].UserID < withVotes.Votes[j].UserID
		})
		result = append(result, withVotes)
	}
	return result, nil
}

package service

import (
	"context"

	"github.com/neurox/neurox2-client/internal/adapter"
	"github.com/neurox/neurox2-client/internal/logger"
	"github.com/neurox/neurox2-client/models"
)

type clientForumService struct {
	wellnessAdapter adapter.WellnessAdapter

	logger *logger.Logger
}

func NewClientForumService(wellnessAdapter adapter.WellnessAdapter, logger *logger.Logger) ClientForumService {
	return &clientForumService{
		wellnessAdapter: wellnessAdapter,
		logger:          logger,
	}
}

// Posts implements [ClientForumService].
func (f *clientForumService) Posts(ctx context.Context) ([]models.ForumPost, error) {
	list, err := f.wellnessAdapter.FetchForumPosts(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return list.Posts, nil
}

// PostsByTopic implements [ClientForumService]. The server has no topic
// endpoint, so filtering happens here.
func (f *clientForumService) PostsByTopic(ctx context.Context, topic string) ([]models.ForumPost, error) {
	posts, err := f.Posts(ctx)
	if err != nil {
		return nil, err
	}
	if topic == "" {
		return posts, nil
	}

	filtered := make([]models.ForumPost, 0, len(posts))
	for _, post := range posts {
		if post.Topic == topic {
			filtered = append(filtered, post)
		}
	}

	return filtered, nil
}

// Topics implements [ClientForumService].
func (f *clientForumService) Topics(ctx context.Context) ([]string, error) {
	posts, err := f.Posts(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(posts))
	topics := make([]string, 0, len(posts))
	for _, post := range posts {
		if post.Topic == "" {
			continue
		}
		if _, ok := seen[post.Topic]; ok {
			continue
		}
		seen[post.Topic] = struct{}{}
		topics = append(topics, post.Topic)
	}

	return topics, nil
}

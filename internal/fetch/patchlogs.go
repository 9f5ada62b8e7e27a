package fetch

import (
	"context"

	"github.com/pkg/errors"

	"ordis.dev/itembuilder/internal/constant"
	"ordis.dev/itembuilder/internal/model"
)

func (s *Service) fetchPatchlogs(ctx context.Context, cacheOnly bool) (*model.Patchlogs, error) {
	defer timed("patchlogs")()

	body, changed, err := s.getSource(ctx, constant.SourcePatchlogs, s.conf.PatchlogsURL, cacheOnly)
	if err != nil {
		return nil, err
	}

	posts, err := decodeArray[model.PatchlogPost](body, "posts", "patchlogs")
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode patchlogs index")
	}

	return &model.Patchlogs{
		Changed: changed,
		Posts:   posts,
	}, nil
}

package fetch

import (
	"context"

	"github.com/pkg/errors"

	"ordis.dev/itembuilder/internal/constant"
	"ordis.dev/itembuilder/internal/model"
)

func (s *Service) fetchDrops(ctx context.Context, cacheOnly bool) (*model.Drops, error) {
	defer timed("drops")()

	body, changed, err := s.getSource(ctx, constant.SourceDropChances, s.conf.DropRatesURL, cacheOnly)
	if err != nil {
		return nil, err
	}

	rates, err := decodeArray[model.RawDrop](body, "rates", "data")
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode drop rates")
	}

	return &model.Drops{
		Changed: changed,
		Rates:   rates,
	}, nil
}

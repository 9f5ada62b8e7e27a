package fetch

import (
	"context"

	"github.com/pkg/errors"

	"ordis.dev/itembuilder/internal/constant"
	"ordis.dev/itembuilder/internal/model"
)

func (s *Service) fetchVaultData(ctx context.Context, cacheOnly bool) ([]model.VaultRecord, []model.TitaniaRelic, error) {
	defer timed("vaultdata")()

	body, _, err := s.getSource(ctx, constant.SourceVaultData, s.conf.VaultDataURL, cacheOnly)
	if err != nil {
		return nil, nil, err
	}
	records, err := decodeArray[model.VaultRecord](body, "data")
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to decode vault data")
	}

	body, _, err = s.getSource(ctx, constant.SourceRelics, s.conf.RelicDataURL, cacheOnly)
	if err != nil {
		return nil, nil, err
	}
	relics, err := decodeArray[model.TitaniaRelic](body, "relics")
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to decode relic data")
	}

	return records, relics, nil
}

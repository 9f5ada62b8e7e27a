package fetch

import (
	"context"

	"github.com/pkg/errors"

	"ordis.dev/itembuilder/internal/constant"
	"ordis.dev/itembuilder/internal/model"
)

// wiki data modules, scraped from Lua to JSON by a sibling tool and served
// as plain documents
var wikiaModules = []string{
	"weapons",
	"warframes",
	"mods",
	"versions",
	"ducats",
	"archwings",
	"companions",
}

func (s *Service) fetchWikia(ctx context.Context, cacheOnly bool) (*model.Wikia, error) {
	defer timed("wikia")()

	w := &model.Wikia{}
	for _, module := range wikiaModules {
		key := constant.SourceWikia + ":" + module
		body, _, err := s.getSource(ctx, key, s.conf.WikiaURL+"/data/"+module+".json", cacheOnly)
		if err != nil {
			return nil, err
		}
		if err := decodeWikiaModule(w, module, body); err != nil {
			return nil, errors.Wrapf(err, "failed to decode wikia module %s", module)
		}
	}
	return w, nil
}

func decodeWikiaModule(w *model.Wikia, module string, body []byte) (err error) {
	switch module {
	case "weapons":
		w.Weapons, err = decodeArray[model.WikiaWeapon](body, "data")
	case "warframes":
		w.Warframes, err = decodeArray[model.WikiaWarframe](body, "data")
	case "mods":
		w.Mods, err = decodeArray[model.WikiaMod](body, "data")
	case "versions":
		w.Versions, err = decodeArray[model.WikiaVersion](body, "data")
	case "ducats":
		w.Ducats, err = decodeArray[model.WikiaDucat](body, "data")
	case "archwings":
		w.Archwings, err = decodeArray[model.WikiaWarframe](body, "data")
	case "companions":
		w.Companions, err = decodeArray[model.WikiaWeapon](body, "data")
	}
	return err
}

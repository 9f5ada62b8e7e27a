package build

import (
	"time"

	"ordis.dev/itembuilder/internal/model"
)

// addPatchlogs attaches patch-notes history. The scan over the whole archive
// is the expensive step, so it only runs when the patch source hash changed;
// otherwise the previous build's entries are copied by name.
func (p *Pipeline) addPatchlogs(item *model.Item) {
	if p.raw.Patchlogs == nil {
		return
	}

	lookup := dropLookupName(item)

	if !p.raw.Patchlogs.Changed {
		if prev := p.prev.ByName(item.Name); prev != nil {
			item.Patchlogs = append([]model.Patchlog(nil), prev.Patchlogs...)
			return
		}
	}

	matcher, _ := p.matchers.MutexGetSet("patch:"+lookup, func() (*dropMatcher, error) {
		return newDropMatcher(lookup), nil
	}, time.Hour)

	var logs []model.Patchlog
	for _, post := range p.raw.Patchlogs.Posts {
		if !matcher.matches(post.Name) {
			continue
		}
		logs = append(logs, model.Patchlog{
			Name:      post.Name,
			Date:      post.Date,
			URL:       post.URL,
			Imgur:     post.Imgur,
			Additions: post.Additions,
			Changes:   post.Changes,
			Fixes:     post.Fixes,
		})
	}
	item.Patchlogs = logs
}

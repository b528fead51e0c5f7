package discord

import (
	"sort"
	"strings"
)

// adminSet holds the Discord user IDs allowed to run admin subcommands
type adminSet map[string]struct{}

func newAdminSet(ids []string) adminSet {
	admins := make(adminSet, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		admins[id] = struct{}{}
	}
	return admins
}

func (a adminSet) has(userID string) bool {
	_, ok := a[userID]
	return ok
}

// list returns the admin IDs sorted
func (a adminSet) list() []string {
	ids := make([]string, 0, len(a))
	for id := range a {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

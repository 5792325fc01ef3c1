// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reconcile

import (
	"fmt"
	"reflect"

	"github.com/danielhkuo/gutboard/models"
	"github.com/dustin/go-humanize"
)

// ChangeType labels one divergence between a local and a server
// document.
type ChangeType string

const (
	ChangeTitle    ChangeType = "title"
	ChangeModified ChangeType = "modified"
	ChangeAdded    ChangeType = "added"
	ChangeDeleted  ChangeType = "deleted"
)

// Change records one divergence, addressed by item id (empty for a
// title change). Local and Server carry the two sides where they
// exist.
type Change struct {
	Type   ChangeType   `json:"type"`
	ItemID string       `json:"itemId,omitempty"`
	Label  string       `json:"label,omitempty"`
	Local  *models.Item `json:"local,omitempty"`
	Server *models.Item `json:"server,omitempty"`
}

// Diff compares a stale local document against the authoritative
// server one, as returned on a version conflict. The result is ordered:
// the title change first, then modified items in server order, then
// server-only additions, then local-only deletions.
func Diff(local, server *models.List) []Change {
	var changes []Change

	if local.Title != server.Title {
		changes = append(changes, Change{Type: ChangeTitle})
	}

	localByID := make(map[string]*models.Item, len(local.Items))
	for i := range local.Items {
		localByID[local.Items[i].ID] = &local.Items[i]
	}
	serverByID := make(map[string]*models.Item, len(server.Items))
	for i := range server.Items {
		serverByID[server.Items[i].ID] = &server.Items[i]
	}

	for i := range server.Items {
		sv := &server.Items[i]
		lc, ok := localByID[sv.ID]
		if !ok {
			changes = append(changes, Change{
				Type: ChangeAdded, ItemID: sv.ID, Label: sv.Label, Server: sv,
			})
			continue
		}
		if !reflect.DeepEqual(*lc, *sv) {
			changes = append(changes, Change{
				Type: ChangeModified, ItemID: sv.ID, Label: sv.Label, Local: lc, Server: sv,
			})
		}
	}

	for i := range local.Items {
		lc := &local.Items[i]
		if _, ok := serverByID[lc.ID]; !ok {
			changes = append(changes, Change{
				Type: ChangeDeleted, ItemID: lc.ID, Label: lc.Label, Local: lc,
			})
		}
	}

	return changes
}

// Summary renders a one-line human description of a conflict, suitable
// for surfacing next to the retry prompt.
func Summary(server *models.List, changes []Change) string {
	if len(changes) == 0 {
		return fmt.Sprintf("No differences; the server copy was saved %s",
			humanize.Time(server.UpdatedAt))
	}
	return fmt.Sprintf("%d change(s) since your copy; the server copy was saved %s",
		len(changes), humanize.Time(server.UpdatedAt))
}

package permission

import (
	"fmt"

	"github.com/casinohub/internal/db"
	"gorm.io/gorm"
)

// contentTypes are the API identities that get read permissions.
var contentTypes = []string{
	"article",
	"casino-review",
	"slot",
	"bonus",
	"comment",
	"category",
}

// DesiredActions returns the full permission set one role should hold.
// The public role reads everything and may submit comments; the
// authenticated role additionally moderates comments and mutates content.
func DesiredActions(roleType string) []string {
	actions := make([]string, 0, len(contentTypes)*2+8)
	for _, ct := range contentTypes {
		actions = append(actions, ct+".find", ct+".findOne")
	}
	actions = append(actions, "comment.create")

	if roleType == db.RoleAuthenticated {
		actions = append(actions, "comment.moderate")
		for _, ct := range contentTypes {
			if ct == "comment" {
				continue
			}
			actions = append(actions, ct+".create", ct+".update", ct+".delete")
		}
	}
	return actions
}

// Reconcile computes which desired actions are missing from the existing
// set. Pure so the bootstrap diff can be tested without a database.
func Reconcile(existing, desired []string) []string {
	have := make(map[string]struct{}, len(existing))
	for _, action := range existing {
		have[action] = struct{}{}
	}

	var missing []string
	for _, action := range desired {
		if _, ok := have[action]; ok {
			continue
		}
		have[action] = struct{}{}
		missing = append(missing, action)
	}
	return missing
}

// Bootstrap ensures both built-in roles exist and upserts only the
// permissions each is missing. Safe to run on every startup.
func Bootstrap(gdb *gorm.DB) error {
	roles := []struct {
		name string
		typ  string
	}{
		{name: "Public", typ: db.RolePublic},
		{name: "Authenticated", typ: db.RoleAuthenticated},
	}

	for _, r := range roles {
		var role db.Role
		if err := gdb.Where(db.Role{Type: r.typ}).
			Attrs(db.Role{Name: r.name}).
			FirstOrCreate(&role).Error; err != nil {
			return fmt.Errorf("ensure role %s: %w", r.typ, err)
		}

		var existing []string
		if err := gdb.Model(&db.Permission{}).
			Where("role_id = ?", role.ID).
			Pluck("action", &existing).Error; err != nil {
			return fmt.Errorf("load permissions for %s: %w", r.typ, err)
		}

		missing := Reconcile(existing, DesiredActions(r.typ))
		if len(missing) == 0 {
			continue
		}

		rows := make([]db.Permission, 0, len(missing))
		for _, action := range missing {
			rows = append(rows, db.Permission{Action: action, RoleID: role.ID})
		}
		if err := gdb.Create(&rows).Error; err != nil {
			return fmt.Errorf("create permissions for %s: %w", r.typ, err)
		}
	}
	return nil
}

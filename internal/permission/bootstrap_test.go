package permission

import (
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/casinohub/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupPermissionTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:permission-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := gdb.AutoMigrate(&db.Role{}, &db.Permission{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

func TestReconcileReturnsOnlyMissing(t *testing.T) {
	existing := []string{"article.find", "slot.find"}
	desired := []string{"article.find", "article.findOne", "slot.find", "comment.create"}

	missing := Reconcile(existing, desired)

	want := []string{"article.findOne", "comment.create"}
	if !slices.Equal(missing, want) {
		t.Fatalf("Reconcile = %v, want %v", missing, want)
	}
}

func TestReconcileEmptyWhenUpToDate(t *testing.T) {
	desired := DesiredActions(db.RolePublic)
	if missing := Reconcile(desired, desired); len(missing) != 0 {
		t.Fatalf("expected nothing missing, got %v", missing)
	}
}

func TestReconcileDeduplicatesDesired(t *testing.T) {
	missing := Reconcile(nil, []string{"article.find", "article.find"})
	if len(missing) != 1 {
		t.Fatalf("expected deduplicated result, got %v", missing)
	}
}

func TestDesiredActionsPublicIsReadOnlyPlusCommentCreate(t *testing.T) {
	actions := DesiredActions(db.RolePublic)

	if !slices.Contains(actions, "comment.create") {
		t.Fatal("public role should be allowed to create comments")
	}
	for _, action := range actions {
		if action == "comment.create" {
			continue
		}
		if slices.Contains([]string{"article.create", "article.update", "article.delete", "comment.moderate"}, action) {
			t.Fatalf("public role must not hold %s", action)
		}
	}
}

func TestBootstrapIsIdempotent(t *testing.T) {
	gdb := setupPermissionTestDB(t)

	if err := Bootstrap(gdb); err != nil {
		t.Fatalf("first bootstrap: %v", err)
	}
	var first int64
	gdb.Model(&db.Permission{}).Count(&first)
	if first == 0 {
		t.Fatal("expected permissions after bootstrap")
	}

	if err := Bootstrap(gdb); err != nil {
		t.Fatalf("second bootstrap: %v", err)
	}
	var second int64
	gdb.Model(&db.Permission{}).Count(&second)
	if first != second {
		t.Fatalf("bootstrap is not idempotent: %d then %d rows", first, second)
	}
}

func TestBootstrapBackfillsDeletedPermission(t *testing.T) {
	gdb := setupPermissionTestDB(t)

	if err := Bootstrap(gdb); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	if err := gdb.Where("action = ?", "slot.findOne").
		Delete(&db.Permission{}).Error; err != nil {
		t.Fatalf("delete permission: %v", err)
	}

	if err := Bootstrap(gdb); err != nil {
		t.Fatalf("re-bootstrap: %v", err)
	}

	var count int64
	gdb.Model(&db.Permission{}).Where("action = ?", "slot.findOne").Count(&count)
	if count != 2 { // one per role
		t.Fatalf("expected slot.findOne restored for both roles, got %d rows", count)
	}
}

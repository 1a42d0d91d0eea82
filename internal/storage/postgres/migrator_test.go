package postgres

import (
	"testing"
	"testing/fstest"
)

func TestLoadMigrationsFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"sql/migrations/0002_create_gst_details.sql": {Data: []byte("CREATE TABLE gst_details (id TEXT PRIMARY KEY);")},
		"sql/migrations/0001_create_orders.sql":      {Data: []byte("CREATE TABLE orders (order_id TEXT PRIMARY KEY);")},
	}

	migrations, err := loadMigrationsFromFS(fsys)
	if err != nil {
		t.Fatalf("load migrations: %v", err)
	}
	if len(migrations) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(migrations))
	}
	if migrations[0].Version != 1 || migrations[0].Name != "create_orders" {
		t.Fatalf("unexpected first migration: %+v", migrations[0])
	}
	if migrations[1].Version != 2 || migrations[1].Name != "create_gst_details" {
		t.Fatalf("unexpected second migration: %+v", migrations[1])
	}
}

func TestLoadMigrationsFromFSRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{
			name: "empty directory",
			fsys: fstest.MapFS{},
		},
		{
			name: "bad file name",
			fsys: fstest.MapFS{
				"sql/migrations/create_orders.sql": {Data: []byte("SELECT 1;")},
			},
		},
		{
			name: "empty migration body",
			fsys: fstest.MapFS{
				"sql/migrations/0001_create_orders.sql": {Data: []byte("   \n")},
			},
		},
		{
			name: "duplicate version",
			fsys: fstest.MapFS{
				"sql/migrations/0001_create_orders.sql": {Data: []byte("SELECT 1;")},
				"sql/migrations/0001_create_gst.sql":    {Data: []byte("SELECT 2;")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loadMigrationsFromFS(tt.fsys); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestEmbeddedMigrationsAreWellFormed(t *testing.T) {
	migrations, err := loadMigrationsFromFS(migrationsFS)
	if err != nil {
		t.Fatalf("load embedded migrations: %v", err)
	}
	if len(migrations) == 0 {
		t.Fatal("expected at least one embedded migration")
	}
	for i := 1; i < len(migrations); i++ {
		if migrations[i].Version <= migrations[i-1].Version {
			t.Fatalf("migrations must be strictly ordered by version: %+v", migrations)
		}
	}
}

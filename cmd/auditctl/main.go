// auditctl scans stored job postings for duplicates and prints a JSON
// report per user. Read-only: it never deletes or merges rows. Cleanup is
// a separate, explicitly confirmed operation.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/gofrs/flock"

	"jobtrack-engine/internal/audit"
	"jobtrack-engine/internal/config"
	"jobtrack-engine/internal/store"
)

func main() {
	var (
		dataDir = flag.String("data", "", "data directory (default $JOBTRACK_DATA_DIR or .)")
		user    = flag.String("user", "", "audit a single user (default: all users in the store)")
		strict  = flag.Bool("strict", false, "exact URL/fingerprint matches only, no fuzzy tier")
	)
	flag.Parse()

	dir := *dataDir
	if dir == "" {
		dir = os.Getenv("JOBTRACK_DATA_DIR")
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatal(err)
	}

	// One auditctl per data dir; a second invocation against the same
	// sqlite file would just fight over the single writer connection.
	lock := flock.New(filepath.Join(dir, "auditctl.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		log.Fatalf("lock data dir: %v", err)
	}
	if !ok {
		log.Fatalf("another auditctl is already running in %s", dir)
	}
	defer func() { _ = lock.Unlock() }()

	cfgPath, err := config.EnsureUserConfig(dir, filepath.Join("config", "config.yml"))
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", cfgPath, err)
	}
	cfg, res := config.NormalizeAndValidate(cfg)
	for _, w := range res.Warnings {
		log.Printf("[config] warning: %s", w)
	}
	if !res.OK() {
		log.Fatalf("config invalid: %v", res.Errors)
	}
	if *strict {
		cfg.Dedup.StrictMode = true
	}

	db, err := store.Open(filepath.Join(dir, "jobtrack.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	users := []string{*user}
	if *user == "" {
		users, err = db.ListUsers(ctx)
		if err != nil {
			log.Fatalf("list users: %v", err)
		}
		if len(users) == 0 {
			log.Println("store is empty, nothing to audit")
			return
		}
	}

	runner := audit.NewRunner(cfg, db)
	reports, err := runner.Run(ctx, users)
	if err != nil {
		log.Fatalf("audit failed: %v", err)
	}

	writeJSON(os.Stdout, reports)
}

func writeJSON(w *os.File, v any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

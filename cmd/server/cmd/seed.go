package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/venuebook/server/internal/domain/events"
	"github.com/venuebook/server/internal/storage/jsonfile"
)

var (
	seedFile  string
	seedOwner string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load fixture events into the store",
	Long: `Load events from a JSON fixture file into the configured store.

The fixture is a JSON array of event bodies. Each body must carry the
required fields (name, date, startTime, endTime, venue); extra fields
are kept as-is. Ids and timestamps are assigned on insert, the same as
through the API.

Example:
  server seed --file fixtures/events.json --owner demo`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd)
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "", "fixture file (JSON array of event bodies)")
	seedCmd.Flags().StringVar(&seedOwner, "owner", "dev", "identity recorded as ownerId on seeded events")
	_ = seedCmd.MarkFlagRequired("file")
}

func runSeed(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	data, err := os.ReadFile(seedFile)
	if err != nil {
		return fmt.Errorf("read fixture: %w", err)
	}

	var bodies []map[string]any
	if err := json.Unmarshal(data, &bodies); err != nil {
		return fmt.Errorf("parse fixture: %w", err)
	}

	store := jsonfile.New(cfg.Store.Dir, cfg.Store.File)
	service := events.NewService(store)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for i, body := range bodies {
		event, err := service.Create(ctx, seedOwner, body)
		if err != nil {
			return fmt.Errorf("seed event %d: %w", i, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "seeded %s %q\n", event.ID, event.Name)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d events into %s\n", len(bodies), store.Path())
	return nil
}

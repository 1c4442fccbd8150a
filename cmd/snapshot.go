package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"popdash/internal/app"
	"popdash/internal/config"
	"popdash/internal/wire"
	"popdash/pkg/domain"
	"popdash/pkg/logger"
	"popdash/pkg/storage"

	"github.com/go-faster/jx"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

// snapshotCommand constructs the 'snapshot' subcommand. It runs the scrape
// and aggregation once and prints the snapshot, its views and the summary as
// JSON on stdout. With --store the snapshot is also written to the archive.
func snapshotCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Scrapes the population table once and prints it as JSON",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			store, _ := cmd.Flags().GetBool("store")
			compact, _ := cmd.Flags().GetBool("compact")

			builder := newBuilder(ctx, cfg, noop.NewMeterProvider().Meter(""))
			state := buildState(ctx, cfg, builder, nil)

			snap := *state.Snapshot
			if store {
				var err error
				if snap, err = storeSnapshot(ctx, cfg, snap); err != nil {
					logger.Fatal(ctx, "could not archive snapshot", zap.Error(err))
				}
				logger.Info(ctx, "snapshot archived", zap.Stringer("id", snap.ID))
			}

			if err := writeSnapshot(os.Stdout, snap, state, compact); err != nil {
				logger.Fatal(ctx, "could not write snapshot", zap.Error(err))
			}
		},
	}

	cmd.Flags().Bool("store", false, "Also write the snapshot to the archive database")
	cmd.Flags().Bool("compact", false, "Print JSON without indentation")

	return cmd
}

// storeSnapshot keeps the archive connection open only for the write.
func storeSnapshot(ctx context.Context, cfg *config.Config, snap domain.Snapshot) (domain.Snapshot, error) {
	strg, closeStrg := getPostgres(ctx, cfg)
	defer closeStrg()

	return archiveSnapshot(ctx, strg, snap)
}

// archiveSnapshot stores snap and returns it carrying the archive id.
func archiveSnapshot(ctx context.Context, strg storage.Storage, snap domain.Snapshot) (domain.Snapshot, error) {
	info, err := strg.StoreSnapshot(ctx, snap)
	if err != nil {
		return domain.Snapshot{}, err
	}
	snap.ID = info.ID

	return snap, nil
}

func writeSnapshot(w io.Writer, snap domain.Snapshot, state *app.State, compact bool) error {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	if !compact {
		e.SetIdent(2)
	}
	e.Obj(func(e *jx.Encoder) {
		e.Field("snapshot", func(e *jx.Encoder) { wire.Snapshot(e, &snap) })
		e.Field("views", func(e *jx.Encoder) { wire.Views(e, state.Views) })
		e.Field("summary", func(e *jx.Encoder) { wire.Metrics(e, state.Summary) })
	})
	if _, err := w.Write(append(e.Bytes(), '\n')); err != nil {
		return fmt.Errorf("could not write snapshot: %w", err)
	}

	return nil
}

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"weather-charts/internal/render"
	"weather-charts/internal/views"
)

const clearScreen = "\x1b[H\x1b[2J"

func WatchCommand(newService ServiceFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <station>",
		Short: "Redraw the forecast of a station periodically",
		Long: `Keep one view of a station open and reload it every interval.

Each reload runs in the background. A reload that finishes after a newer
one has started is dropped, so the screen always shows the latest forecast.
Stop with Ctrl+C.

Examples:
  forecast-cli watch TOP
  forecast-cli watch TOP --interval 30m --count 4`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args, newService)
		},
	}

	cmd.Flags().Duration("interval", 10*time.Minute, "Time between reloads")
	cmd.Flags().Int("count", 0, "Stop after this many reloads, 0 means never")
	cmd.Flags().Bool("clear", true, "Clear the screen before each redraw (default on when writing to a terminal)")
	addPlotFlags(cmd)

	return cmd
}

func runWatch(cmd *cobra.Command, args []string, newService ServiceFactory) error {
	interval, _ := cmd.Flags().GetDuration("interval")
	if interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", interval)
	}
	count, _ := cmd.Flags().GetInt("count")
	clearFirst := terminalFlag(cmd, "clear")

	service, err := newService(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	view := service.NewView()

	// the view logs and reports a missing station before any fetch
	station := stationArg(args)
	if station == "" {
		return view.Navigate(ctx, station)
	}

	w := &screen{out: cmd.OutOrStdout(), clear: clearFirst, opts: plotOptions(cmd)}

	// reloads never fail the group: a failed load is drawn, a stale one is dropped
	var g errgroup.Group
	reload := func() {
		g.Go(func() error {
			err := view.Navigate(ctx, station)
			if errors.Is(err, views.ErrStaleResponse) {
				return nil
			}
			w.draw(view.Snapshot())
			return nil
		})
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	reload()
	for n := 1; count == 0 || n < count; n++ {
		select {
		case <-ctx.Done():
			return g.Wait()
		case <-ticker.C:
			reload()
		}
	}

	return g.Wait()
}

// screen serializes redraws coming from concurrent reloads.
type screen struct {
	mu    sync.Mutex
	out   io.Writer
	clear bool
	opts  render.Options
	// last generation drawn, a finished older reload must not replace it
	drawn uint64
}

func (s *screen) draw(snap views.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// a newer reload is in flight and draws when it lands
	if snap.Generation < s.drawn || snap.State == views.StateLoading {
		return
	}
	s.drawn = snap.Generation

	if s.clear {
		fmt.Fprint(s.out, clearScreen)
	}

	title := fmt.Sprintf("%s  (%s, updated %s)", snap.Station, snap.State, time.Now().Format(time.Kitchen))
	switch {
	case snap.State == views.StateFailed:
		fmt.Fprintf(s.out, "%s\nError fetching weather data: %s\n", title, snap.Error)
	case snap.Overlay != nil:
		fmt.Fprintln(s.out, render.Chart(title, *snap.Overlay, s.opts))
	default:
		fmt.Fprintln(s.out, title)
	}
}

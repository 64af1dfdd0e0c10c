package foamslides

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dasdy/foamslides/remote"
	"github.com/dasdy/foamslides/remote/ports"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	filenames         []string
	watchDevices      bool
	remoteStoragePath string
	disableInterface  bool
)

// remoteCmd represents the remote command.
var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Drive the web presentation with a presenter clicker",
	Long: `Provide paths to clicker devices, let foamslides look for them with --watch,
or leave both out to read clicker output from stdin. Every slide shown is recorded
into the storage file.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		lines, closer, err := openClickers(cmd)
		if err != nil {
			return err
		}
		defer closer()

		p, err := newPresentation(ctx, remoteStoragePath)
		if err != nil {
			return err
		}
		defer p.Close()

		g, ctx := errgroup.WithContext(ctx)

		if !disableInterface {
			g.Go(func() error { return p.serve(ctx, port, false) })
		}

		g.Go(func() error {
			remote.Loop(ctx, lines, p.nav)

			return nil
		})

		return g.Wait()
	},
}

func openClickers(cmd *cobra.Command) (<-chan string, func(), error) {
	switch {
	case watchDevices:
		monitor := ports.DefaultMonitoringDeviceReader()

		return monitor.Channel(cmd.Context()), func() {}, nil
	case len(filenames) == 0:
		names, err := ports.GetAvailableDevices()
		if err != nil {
			slog.Warn("Could not list devices", "error", err)
		}

		slog.Info("Will proceed to read from stdin", "suggested", names)

		return ports.ReadFile(os.Stdin), func() {}, nil
	}

	readers := make([]io.Reader, 0, len(filenames))
	closers := make([]io.Closer, 0, len(filenames))
	closeAll := func() {
		for _, c := range closers {
			if err := c.Close(); err != nil {
				slog.Error("Could not close device", "error", err)
			}
		}
	}

	for _, fn := range filenames {
		port, err := ports.Open(fn)
		if err != nil {
			closeAll()

			return nil, nil, suggestDevices(fmt.Errorf("could not open %s: %w", fn, err))
		}

		readers = append(readers, port)
		closers = append(closers, port)
	}

	return ports.ReadFiles(readers...), closeAll, nil
}

func suggestDevices(err error) error {
	names, errInner := ports.GetAvailableDevices()
	if errInner != nil {
		return fmt.Errorf("%w; could not suggest devices: %w", err, errInner)
	}

	if len(names) > 0 {
		return fmt.Errorf("%w. Maybe try instead: %v", err, names)
	}

	return fmt.Errorf("%w. It does not seem like any clicker is connected", err)
}

func init() {
	rootCmd.AddCommand(remoteCmd)

	remoteCmd.Flags().StringSliceVarP(&filenames, "file", "f", []string{}, "List of clicker devices to get input from")
	remoteCmd.Flags().BoolVar(&watchDevices, "watch", false, "Look for clickers and pick up new ones as they are plugged in")
	remoteCmd.Flags().StringVarP(&remoteStoragePath, "storage", "s", "./visits.sqlite", "Record visits into this sqlite file")
	remoteCmd.Flags().IntVarP(&port, "port", "p", 9000, "Port on which server should be watching")
	remoteCmd.Flags().BoolVar(&disableInterface, "no-interface", false, "If provided, no web server will be run")
	remoteCmd.Flags().StringVar(&cachePath, "cache", "./render-cache.sqlite", "Render cache database, empty to disable")
}

// Command advise generates coaching text from a request file without
// starting the HTTP server. It reads the same JSON body POST /advice accepts.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"fitcoach/internal/advice"
	"fitcoach/internal/coachservice"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type options struct {
	date    string
	asJSON  bool
	verbose bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:          "advise [request.json]",
		Short:        "Print the advice the server would return for a request body",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.date, "date", "", "Seed date as YYYY-MM-DD (defaults to today, UTC)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print the JSON response body instead of plain text")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log pipeline details to stderr")

	return cmd
}

func run(ctx context.Context, stdin io.Reader, stdout io.Writer, args []string, opts options) error {
	level := zerolog.WarnLevel
	if opts.verbose {
		level = zerolog.DebugLevel
	}
	logger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	var src io.Reader = stdin
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open request: %w", err)
		}
		defer f.Close()
		src = f
	}

	body, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("read request: %w", err)
	}

	var req advice.AdviceRequest
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			return fmt.Errorf("parse request: %w", err)
		}
	}

	engineOpts := []coachservice.Option{coachservice.WithLogger(logger)}
	if opts.date != "" {
		day, err := time.Parse(time.DateOnly, opts.date)
		if err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
		engineOpts = append(engineOpts, coachservice.WithClock(func() time.Time { return day }))
	}
	engine := coachservice.NewEngine(engineOpts...)

	res, err := engine.Generate(ctx, req.ToInput())
	if err != nil {
		return err
	}

	if opts.asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(advice.AdviceResponse{Advice: res.Text, TopicsUsed: res.TopicsUsed})
	}

	_, err = fmt.Fprintln(stdout, res.Text)
	return err
}

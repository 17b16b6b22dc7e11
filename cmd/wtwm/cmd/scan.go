package cmd

import (
	"fmt"
	"io"
	"os"

	"wtwm/internal/adapters/vocabwatch"
	"wtwm/internal/modkit"
	modmodule "wtwm/internal/modkit/module"
	"wtwm/internal/platform/config"
	"wtwm/internal/platform/logger"
	dom "wtwm/internal/services/mentions/domain"
	mentionsmod "wtwm/internal/services/mentions/module"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type scanFlags struct {
	in       string
	plain    bool
	format   string
	batch    int
	noColor  bool
	skipped  bool
	kind     string
	vocab    string
	baseline string
	label    string
	workers  int
	watch    bool
}

func newScanCmd() *cobra.Command {
	var f scanFlags

	c := &cobra.Command{
		Use:   "scan [flags]",
		Short: "Recognize mentions in comments read from a file or stdin",
		Long: "Reads JSON lines of {\"id\",\"text\"} (or plain lines with --plain) and writes one record per mention.\n" +
			"Flags override CORE_RECOGNIZE_* environment settings.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScan(cmd, f)
		},
	}

	fl := c.Flags()
	fl.StringVarP(&f.in, "in", "i", "-", "input file, - for stdin")
	fl.BoolVar(&f.plain, "plain", false, "treat every input line as a comment; ids are line numbers")
	fl.StringVarP(&f.format, "format", "f", "json", "output format: json|text")
	fl.IntVar(&f.batch, "batch", 500, "comments per batch")
	fl.BoolVar(&f.noColor, "no-color", false, "disable colored text output")
	fl.BoolVar(&f.skipped, "emit-skipped", false, "write a JSON line with the error for every skipped comment")
	fl.StringVar(&f.kind, "kind", "", "recognizer: pattern_recogniser_v1|pattern_baseline")
	fl.StringVar(&f.vocab, "vocab", "", "vocabulary file (.txt or .yaml); built-in when empty")
	fl.StringVar(&f.baseline, "baseline", "", "regex baseline file for pattern_baseline")
	fl.StringVar(&f.label, "label", "", "label for mentions without a category")
	fl.IntVar(&f.workers, "workers", 0, "concurrent recognitions per batch")
	fl.BoolVar(&f.watch, "watch", false, "reload the vocabulary file when it changes")
	return c
}

func runScan(cmd *cobra.Command, f scanFlags) error {
	if f.format != "json" && f.format != "text" {
		return fmt.Errorf("unknown format %q (want json or text)", f.format)
	}
	if f.batch <= 0 {
		f.batch = 1
	}
	if f.noColor {
		color.NoColor = true
	}

	ctx := cmd.Context()
	root := config.New()

	m, err := mentionsmod.New(
		modkit.Deps{Cfg: root, Log: logger.Named("scan")},
		mentionsmod.Options{
			Kind:         f.kind,
			VocabPath:    f.vocab,
			BaselinePath: f.baseline,
			DefaultLabel: f.label,
			Workers:      f.workers,
			Watch:        f.watch,
		},
	)
	if err != nil {
		return err
	}
	runner := modmodule.MustPortsOf[dom.RunnerPort](m)
	reloader, reloadable := modmodule.PortsOf[dom.ReloaderPort](m)

	if m.Options().Watch {
		if !reloadable {
			logger.Named("scan").Warn().Msg("--watch needs a vocabulary file and the pattern recognizer; ignoring")
		} else {
			debounce := root.Prefix("CORE_RECOGNIZE_").MayDuration("WATCH_DEBOUNCE", vocabwatch.DefaultDebounce)
			w, err := vocabwatch.New(reloader.Path(), debounce, reloader.Reload)
			if err != nil {
				return err
			}
			if err := w.Start(ctx); err != nil {
				_ = w.Stop()
				return err
			}
			defer w.Stop()
		}
	}

	in, closeIn, err := openInput(cmd, f.in)
	if err != nil {
		return err
	}
	defer closeIn()

	rd := newReader(in, f.plain)
	out := newPrinter(f.format, cmd.OutOrStdout(), f.skipped)
	for {
		items, err := rd.next(f.batch)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		results, _, err := runner.Run(ctx, items)
		if werr := out.print(results); werr != nil {
			return werr
		}
		if err != nil {
			return err
		}
	}
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return fh, func() { _ = fh.Close() }, nil
}

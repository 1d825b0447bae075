package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"multiselect/internal/config"
	"multiselect/internal/infra/logx"
	"multiselect/internal/ui"
)

// errAborted is returned when the user leaves with ctrl+c.
var errAborted = errors.New("selection aborted")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, errAborted) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "multiselect [items...]",
		Short: "Pick items from a list with fuzzy filtering",
		Long: `Pick zero or more items from a list in the terminal.

Items come from the arguments, else from the [[options]] of the config file,
else one per line from stdin. The selection is printed when you press ctrl+d.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runHandler,
	}

	cmd.Flags().String("config", "", "Config file (default $HOME/"+config.FileName+")")
	cmd.Flags().Bool("show-all", false, "List every option while the query is empty")
	cmd.Flags().Bool("open", false, "Start with the options panel open")
	cmd.Flags().String("placeholder", "", "Input placeholder text")
	cmd.Flags().Int("max-tags", 0, "Tags shown before collapsing into \"N more\"")
	cmd.Flags().StringP("output", "o", "", "Output format: plain, table or json")
	cmd.Flags().Bool("debug", false, "Write verbose debug logs to the configured log file (default multiselect-debug.log)")
	cmd.Flags().Bool("save-config", false, "Write the options and the accepted selection back to the config file")
	return cmd
}

func runHandler(cmd *cobra.Command, args []string) error {
	cfg, path, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	options, selected := ui.OptionsFromConfig(cfg)
	source := path
	piped := !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd())
	switch {
	case len(args) > 0:
		if len(options) > 0 {
			logx.Warnf("ignoring %d options from %s in favour of arguments", len(options), path)
		}
		options, selected, source = ui.NewOptions(args...), nil, "arguments"
	case len(options) == 0 && piped:
		lines, err := readLines(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		options, source = ui.NewOptions(lines...), "stdin"
	}
	logx.Debugf("loaded %d options from %s", len(options), source)
	if len(options) == 0 {
		return errors.New("no items: pass them as arguments, in the config file or on stdin")
	}

	m, err := ui.New(options, ui.Settings{
		Placeholder:          cfg.Placeholder,
		ShowOptionsWhenEmpty: cfg.ShowOptionsWhenEmpty,
		DefaultOpen:          cfg.DefaultOpen,
		MaxTags:              cfg.MaxTags,
		Selected:             selected,
	})
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{tea.WithReportFocus(), tea.WithOutput(os.Stderr)}
	if piped {
		opts = append(opts, tea.WithInputTTY())
	}
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}

	fm, ok := final.(ui.Model)
	if !ok {
		return fmt.Errorf("unexpected model %T", final)
	}
	if !fm.Accepted() {
		logx.Infof("aborted by user")
		return errAborted
	}
	if save, _ := cmd.Flags().GetBool("save-config"); save {
		if err := saveSelection(path, cfg, fm); err != nil {
			return err
		}
	}
	return ui.NewReport(fm).Write(os.Stdout, cfg.Output)
}

// saveSelection stores the model's options and selection in the config file
// so the next run starts from them.
func saveSelection(path string, cfg config.Config, m ui.Model) error {
	cfg.Options, cfg.Selected = ui.ConfigOptions(m.Options(), m.Selected())
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("save config %s: %w", path, err)
	}
	logx.Infof("saved %d options to %s", len(cfg.Options), path)
	return nil
}

// loadConfig reads the config file and applies command line flags on top.
func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, path, err
	}

	flags := cmd.Flags()
	if flags.Changed("show-all") {
		cfg.ShowOptionsWhenEmpty, _ = flags.GetBool("show-all")
	}
	if flags.Changed("open") {
		cfg.DefaultOpen, _ = flags.GetBool("open")
	}
	if flags.Changed("placeholder") {
		cfg.Placeholder, _ = flags.GetString("placeholder")
	}
	if flags.Changed("max-tags") {
		cfg.MaxTags, _ = flags.GetInt("max-tags")
	}
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if debug, _ := flags.GetBool("debug"); debug {
		cfg.Log.Level = "debug"
		cfg.Log.Verbose = true
		if cfg.Log.File == "" {
			cfg.Log.File = "multiselect-debug.log"
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, path, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, path, nil
}

// setupLogging routes logx and the stdlib logger to the configured file.
// Without a file, logs are discarded.
func setupLogging(lc config.Log) (func(), error) {
	level, err := logx.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	logx.SetMinLevel(level)
	logx.SetVerbose(lc.Verbose)
	if lc.File == "" {
		return func() {}, nil
	}

	f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logx.SetOutput(f)
	log.SetFlags(0)
	log.SetOutput(logx.StdlogWriter(logx.LevelDebug, f))
	return func() {
		logx.SetOutput(io.Discard)
		_ = f.Close()
	}, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if l := strings.TrimSpace(sc.Text()); l != "" {
			lines = append(lines, l)
		}
	}
	return lines, sc.Err()
}

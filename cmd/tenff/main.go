// Package main provides the CLI entrypoint for tenff.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tenff-dev/tenff/internal/config"
	"github.com/tenff-dev/tenff/internal/corpus"
	"github.com/tenff-dev/tenff/internal/game"
	"github.com/tenff-dev/tenff/internal/historyui"
	"github.com/tenff-dev/tenff/internal/model"
	"github.com/tenff-dev/tenff/internal/store"
	"github.com/tenff-dev/tenff/internal/term"
)

const (
	defaultTime   = 60
	defaultCorpus = "english"
	defaultWidth  = 80
)

const prolog = "A certain typing contest site spin-off in CLI, without all the " +
	"advertisements, tracking and 10 megabytes of AJAX crap."

var (
	gameTime     int
	gameCorpus   string
	gameWidth    int
	gameList     bool
	gameRigorous bool

	historyLast int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tenff",
		Short:         "Terminal typing speed game",
		Long:          prolog,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runGameCmd,
	}

	rootCmd.Flags().IntVarP(&gameTime, "time", "t", defaultTime, "how long to play the game for (in seconds)")
	rootCmd.Flags().StringVarP(&gameCorpus, "corpus", "c", defaultCorpus, "built-in corpus name or path to a word list")
	rootCmd.Flags().IntVarP(&gameWidth, "width", "w", defaultWidth, "width of the terminal to play in")
	rootCmd.Flags().BoolVarP(&gameList, "list", "l", false, "list the built-in corpora")
	rootCmd.Flags().BoolVarP(&gameRigorous, "rigorous-spaces", "r", false, "treat double space as an error")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newHistoryCmd())

	return rootCmd
}

func runGameCmd(cmd *cobra.Command, _ []string) error {
	if gameList {
		names, err := corpus.Names()
		if err != nil {
			return err
		}
		for _, name := range names {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
		return nil
	}

	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "time", &gameTime, fileCfg.Game.Time)
	applyStringConfig(cmd, "corpus", &gameCorpus, fileCfg.Game.Corpus)
	applyIntConfig(cmd, "width", &gameWidth, fileCfg.Game.Width)
	applyBoolConfig(cmd, "rigorous-spaces", &gameRigorous, fileCfg.Game.RigorousSpaces)

	cfg := model.Config{
		Corpus:         gameCorpus,
		MaxTime:        gameTime,
		Width:          gameWidth,
		RigorousSpaces: gameRigorous,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	words, err := corpus.Load(cfg.Corpus)
	if err != nil {
		return fmt.Errorf("failed to load corpus %q: %w", cfg.Corpus, err)
	}
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	sample := corpus.Sample(words, corpus.SampleSize, rnd)

	maxColumns := term.Width(os.Stdout, cfg.Width)

	raw, err := term.EnableRaw(os.Stdin)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := raw.Restore(); rerr != nil {
			logErrf("%v\n", rerr)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer cancel()

	g := game.New(game.Options{
		Words:          sample,
		MaxTime:        cfg.MaxTime,
		MaxColumns:     maxColumns,
		RigorousSpaces: cfg.RigorousSpaces,
	}, term.NewScreen(os.Stdout), term.ReadEvents(os.Stdin))

	sum, err := g.Run(ctx)
	if err != nil {
		return fmt.Errorf("failed to run game: %w", err)
	}

	saveSession(cfg, sum)
	return nil
}

// saveSession records the finished session in the history database.
// Persistence failures never fail the game.
func saveSession(cfg model.Config, sum game.Summary) {
	if sum.StartedAt.IsZero() {
		return
	}
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		logErrf("failed to open db: %v\n", err)
		return
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	stats := model.SessionStats{
		StartedAt:    sum.StartedAt,
		EndedAt:      sum.EndedAt,
		Corpus:       cfg.Corpus,
		TimeLimitSec: cfg.MaxTime,
		Rigorous:     cfg.RigorousSpaces,
		CorrectChars: sum.CorrectChars,
		WrongChars:   sum.WrongChars,
		KeysPressed:  sum.KeysPressed,
		CorrectWords: sum.CorrectWords,
		WrongWords:   sum.WrongWords,
		DurationMs:   sum.EndedAt.Sub(sum.StartedAt).Milliseconds(),
	}
	if _, err := st.InsertSession(context.Background(), stats); err != nil {
		logErrf("failed to save session: %v\n", err)
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse past sessions",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N sessions")
	return cmd
}

func runHistoryCmd(_ *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	model := historyui.NewModel(st, historyLast)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run history TUI: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tenff configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# time = %d                # Game duration in seconds
# corpus = %q        # Built-in corpus name or path to a word list
# width = %d               # Terminal width to play in
# rigorous-spaces = false  # Treat double space as an error
`,
		defaultTime,
		defaultCorpus,
		defaultWidth,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.MaxTime <= 0 {
		return fmt.Errorf("--time must be > 0")
	}
	if cfg.Width <= 0 {
		return fmt.Errorf("--width must be > 0")
	}
	if cfg.Corpus == "" {
		return fmt.Errorf("--corpus must not be empty")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kzon94/torn-cracking-tool/internal/config"
	"github.com/kzon94/torn-cracking-tool/internal/session"
	"github.com/kzon94/torn-cracking-tool/internal/tui"
	"github.com/kzon94/torn-cracking-tool/pkg/engine"
)

var (
	// Persistent flags
	cfgFile  string
	dictPath string
	topN     int
	verbose  bool

	// Flags for the top command
	topLength     int
	knownPats     []string
	forbiddenPats []string

	logger *zap.Logger
	loader = engine.NewLoader()
)

var rootCmd *cobra.Command

func init() {
	rootCmd = &cobra.Command{
		Use:   "torncrack",
		Short: "Interactive candidate-password filtering tool",
		Long: `torncrack narrows a password dictionary interactively: pick a length,
fix letters you know with a known pattern (-a style), block letters with a
forbidden pattern (-d style), and watch the ranked candidates and
per-position letter frequencies shrink.

Run without arguments for the interactive interface, or use "top" for a
one-shot scripted query.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// The interactive interface owns the terminal, no logger there.
			if cmd == rootCmd {
				return nil
			}

			zcfg := zap.NewProductionConfig()
			if verbose {
				zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = zcfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}
}

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Print the ranked candidates for a length and constraints",
	Long: `Filter the dictionary once and print the ranked table plus the
per-position letter frequencies, without the interactive interface.

Examples:
  torncrack top -l 5
  torncrack top -l 5 -a ..u..
  torncrack top -l 5 -a a.... -d ....o -d ...t.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTop()
	},
}

var lengthsCmd = &cobra.Command{
	Use:   "lengths",
	Short: "Show how many dictionary entries exist per length",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLengths()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&dictPath, "dict", "", "Path to the password dictionary")
	rootCmd.PersistentFlags().IntVar(&topN, "top", 0, "Number of ranked candidates to show")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	topCmd.Flags().IntVarP(&topLength, "length", "l", 0, "Password length to search")
	topCmd.Flags().StringArrayVarP(&knownPats, "known", "a", nil, "Known positions pattern (repeatable)")
	topCmd.Flags().StringArrayVarP(&forbiddenPats, "forbidden", "d", nil, "Forbidden positions pattern (repeatable)")
	_ = topCmd.MarkFlagRequired("length")

	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(lengthsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return config.Config{}, err
	}
	if dictPath != "" {
		cfg.Dictionary = dictPath
	}
	if topN > 0 {
		cfg.TopCandidates = topN
	}
	return cfg, nil
}

func runTUI() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dict, err := loader.Load(cfg.Dictionary)
	if err != nil {
		return fmt.Errorf("password file not found or unreadable: %w", err)
	}

	p := tea.NewProgram(tui.New(cfg, dict), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runTop() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dict, err := loader.Load(cfg.Dictionary)
	if err != nil {
		return fmt.Errorf("password file not found or unreadable: %w", err)
	}
	logger.Debug("dictionary loaded",
		zap.String("path", cfg.Dictionary),
		zap.Int("entries", len(dict)))

	sess, err := session.New(dict, topLength)
	if err != nil {
		return err
	}

	for _, pattern := range knownPats {
		conflicts, err := sess.ApplyKnown(pattern)
		if err != nil {
			return err
		}
		for _, c := range conflicts {
			logger.Warn("known pattern conflict",
				zap.Int("position", c.Pos+1),
				zap.String("existing", string(c.Existing)),
				zap.String("new", string(c.New)))
		}
	}
	for _, pattern := range forbiddenPats {
		if err := sess.ApplyForbidden(pattern); err != nil {
			return err
		}
	}

	if sess.Empty() {
		return fmt.Errorf("no possible passwords remain with these constraints")
	}

	fmt.Print(renderReport(sess, cfg))
	return nil
}

func runLengths() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dict, err := loader.Load(cfg.Dictionary)
	if err != nil {
		return fmt.Errorf("password file not found or unreadable: %w", err)
	}

	fmt.Print(renderLengths(dict))
	return nil
}

package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"qfkeys/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch <blueprint.yaml>",
	Short: "Re-convert a blueprint whenever it changes",
	Long: `Converts the blueprint once, then watches it (and the policy and
keybinding files, when given) and re-runs the conversion on every change.
A failed conversion is logged and the previous output is left in place.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch(args[0])
	},
}

func init() {
	watchCmd.Flags().StringVarP(&convertMode, "mode", "m", "key", `Output mode: "key" or "macro"`)
	watchCmd.Flags().StringVarP(&convertTitle, "title", "t", "", "Macro title (defaults to the blueprint name)")
	watchCmd.Flags().StringVarP(&convertKeybinds, "keybinds", "k", "", "Keybinding definition file (required for macro mode)")
	watchCmd.Flags().StringVarP(&convertPolicy, "config", "c", "", "TOML build policy overlay")
	watchCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output file (defaults to stdout)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(path string) error {
	convertOnce := func() {
		out, err := runConvert(path)
		if err != nil {
			logger.Error("conversion failed", zap.Error(err))
			return
		}
		if err := writeOutput(convertOutput, out); err != nil {
			logger.Error("writing output failed", zap.Error(err))
		}
	}

	convertOnce()

	w, err := watcher.New(200 * time.Millisecond)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(path); err != nil {
		return err
	}
	for _, extra := range []string{convertPolicy, convertKeybinds} {
		if extra == "" {
			continue
		}
		if err := w.Add(extra); err != nil {
			return err
		}
	}

	logger.Info("watching for changes", zap.String("blueprint", path))
	return w.Run(func(changed string) {
		logger.Info("change detected", zap.String("path", changed))
		convertOnce()
	})
}

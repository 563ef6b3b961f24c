package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"qfkeys/internal/blueprint"
	"qfkeys/internal/buildconfig"
	"qfkeys/internal/keybind"
	"qfkeys/internal/keycode"
	"qfkeys/internal/plan"
	"qfkeys/internal/render"
)

var (
	convertMode     string
	convertTitle    string
	convertKeybinds string
	convertPolicy   string
	convertOutput   string
)

var convertCmd = &cobra.Command{
	Use:   "convert <blueprint.yaml>",
	Short: "Convert a blueprint into keystrokes or a macro file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := runConvert(args[0])
		if err != nil {
			return err
		}
		return writeOutput(convertOutput, out)
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertMode, "mode", "m", "key", `Output mode: "key" or "macro"`)
	convertCmd.Flags().StringVarP(&convertTitle, "title", "t", "", "Macro title (defaults to the blueprint name)")
	convertCmd.Flags().StringVarP(&convertKeybinds, "keybinds", "k", "", "Keybinding definition file (required for macro mode)")
	convertCmd.Flags().StringVarP(&convertPolicy, "config", "c", "", "TOML build policy overlay")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output file (defaults to stdout)")
	rootCmd.AddCommand(convertCmd)
}

// runConvert performs one full blueprint conversion.
func runConvert(path string) (string, error) {
	runID := uuid.NewString()
	log := logger.With(zap.String("run_id", runID), zap.String("blueprint", path))

	cfg := buildconfig.Defaults()
	if convertPolicy != "" {
		var err error
		if cfg, err = buildconfig.LoadFile(convertPolicy); err != nil {
			return "", err
		}
	}

	bp, err := blueprint.LoadFile(path)
	if err != nil {
		return "", err
	}
	log.Debug("blueprint loaded",
		zap.String("phase", bp.Phase),
		zap.Int("areas", len(bp.Plots)))

	cc, err := cfg.Phase(bp.Phase)
	if err != nil {
		return "", err
	}

	planner, err := plan.NewPlanner(bp.Grid, cc)
	if err != nil {
		return "", err
	}

	keys, err := planner.Plot(bp.Plots, bp.Start)
	if err != nil {
		return "", err
	}

	mode := keycode.Mode(convertMode)
	var table *keybind.Table
	if mode == keycode.ModeMacro {
		if convertKeybinds == "" {
			return "", fmt.Errorf("macro mode requires --keybinds")
		}
		if table, err = keybind.LoadFile(convertKeybinds); err != nil {
			return "", err
		}
	}

	title := convertTitle
	if title == "" {
		title = bp.Name
	}

	out, err := render.Render(keys, mode, title, table)
	if err != nil {
		return "", err
	}

	log.Info("blueprint converted",
		zap.String("mode", convertMode),
		zap.Int("keycodes", len(keys)))
	return out, nil
}

func writeOutput(path, out string) error {
	if path == "" {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

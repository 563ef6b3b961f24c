package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"qfkeys/internal/keybind"
)

var keybindsCmd = &cobra.Command{
	Use:   "keybinds <interface.txt>",
	Short: "Inspect a keybinding definition file",
	Long:  `Parses a keybinding definition file and prints every key with the actions bound to it, in file order.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := keybind.LoadFile(args[0])
		if err != nil {
			return err
		}

		for _, key := range table.Keys() {
			lines, _ := table.Lookup(key)
			if len(lines) == 0 {
				continue
			}
			actions := make([]string, len(lines))
			for i, l := range lines {
				actions[i] = strings.TrimSpace(l)
			}
			fmt.Printf("%-12s %s\n", key, strings.Join(actions, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keybindsCmd)
}

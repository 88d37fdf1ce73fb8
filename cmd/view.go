package cmd

import (
	"fmt"

	"github.com/mabhi256/jserial/internal/graphview"
	"github.com/mabhi256/jserial/internal/javaserial"
	"github.com/mabhi256/jserial/utils"
	"github.com/spf13/cobra"
)

var viewGzip string

var viewCmd = &cobra.Command{
	Use:               "view [file|-]",
	Short:             `Browse a decoded Java object-serialization stream interactively`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: utils.CompleteFilesByExtension([]string{".ser", ".bin"}, false),
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := readInput(args[0], viewGzip)
		if err != nil {
			return err
		}

		items, err := javaserial.Decode(buf)
		if err != nil {
			return fmt.Errorf("decode %s: %w", args[0], err)
		}

		if err := graphview.StartTUI(items); err != nil {
			return fmt.Errorf("unable to start viewer: %w", err)
		}
		return nil
	},
}

func init() {
	viewCmd.Flags().StringVar(&viewGzip, "gzip", "auto", "gzip handling: auto|always|never")
	rootCmd.AddCommand(viewCmd)
}

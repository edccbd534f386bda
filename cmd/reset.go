package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all study data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return errors.New("reset erases all study data; pass --yes to confirm")
		}

		d, err := openDeps(cmd, false)
		if err != nil {
			return err
		}
		defer d.Close(cmd.Context())

		if err := d.state.Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset study state: %w", err)
		}
		d.log.Info("study state reset")
		fmt.Fprintln(cmd.OutOrStdout(), "모든 학습 기록을 초기화했습니다.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}

package cmd

import (
	"encoding/json"
	"errors"

	"github.com/fox-one/pkg/qrcode"
	"github.com/spf13/cobra"
)

var dispenseCmd = &cobra.Command{
	Use:   "dispense <address>",
	Short: "send the faucet amount to an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		nodeSrv := provideNodeService(ctx)
		result, err := provideFaucetService(nodeSrv).Dispense(ctx, args[0])
		if err != nil {
			return err
		}

		if !result.Valid {
			return errors.New("invalid address")
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}

		qrcode.Fprint(cmd.OutOrStdout(), result.Txid)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dispenseCmd)
}

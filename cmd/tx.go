package cmd

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

var txCmd = &cobra.Command{
	Use:   "tx",
	Short: "raw transaction utilities",
}

var txTestCmd = &cobra.Command{
	Use:   "test <hex>",
	Short: "test whether a signed transaction would be accepted",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		nodeSrv := provideNodeService(ctx)
		acceptance, err := provideRawTransactionService(nodeSrv).TestAccept(ctx, args[0])
		if err != nil {
			return err
		}

		return printJSON(cmd.OutOrStdout(), acceptance)
	},
}

var txBroadcastCmd = &cobra.Command{
	Use:   "broadcast <hex>",
	Short: "test a signed transaction and broadcast it when accepted",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		nodeSrv := provideNodeService(ctx)
		result, err := provideRawTransactionService(nodeSrv).BroadcastIfValid(ctx, args[0])
		if err != nil {
			return err
		}

		return printJSON(cmd.OutOrStdout(), result)
	},
}

var txEmbedCmd = &cobra.Command{
	Use:   "embed <data>",
	Short: "broadcast a transaction embedding data in an OP_RETURN output",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		nodeSrv := provideNodeService(ctx)
		result, err := provideRawTransactionService(nodeSrv).Embed(ctx, args[0])
		if err != nil {
			return err
		}

		return printJSON(cmd.OutOrStdout(), result)
	},
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	rootCmd.AddCommand(txCmd)
	txCmd.AddCommand(txTestCmd, txBroadcastCmd, txEmbedCmd)
}

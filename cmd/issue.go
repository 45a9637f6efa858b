package cmd

import (
	"encoding/json"

	"mint/core"

	"github.com/spf13/cobra"
)

var issueCmd = &cobra.Command{
	Use:   "issue",
	Short: "issue a confidential asset and print the result",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		req := &core.IssuanceRequest{}
		req.AssetAmount, _ = cmd.Flags().GetInt64("asset-amount")
		req.AssetAddress, _ = cmd.Flags().GetString("asset-address")
		req.TokenAmount, _ = cmd.Flags().GetInt64("token-amount")
		req.TokenAddress, _ = cmd.Flags().GetString("token-address")
		req.IssuerPubkey, _ = cmd.Flags().GetString("pubkey")
		req.Name, _ = cmd.Flags().GetString("name")
		req.Ticker, _ = cmd.Flags().GetString("ticker")
		req.Domain, _ = cmd.Flags().GetString("domain")

		precision, _ := cmd.Flags().GetUint8("precision")
		req.Precision = precision

		nodeSrv := provideNodeService(ctx)
		result, err := provideIssuerService(nodeSrv).IssueAsset(ctx, req)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	rootCmd.AddCommand(issueCmd)

	issueCmd.Flags().Int64("asset-amount", 0, "asset amount in the smallest displayed unit")
	issueCmd.Flags().String("asset-address", "", "address receiving the asset")
	issueCmd.Flags().Int64("token-amount", 0, "reissuance token amount in the smallest displayed unit")
	issueCmd.Flags().String("token-address", "", "address receiving the reissuance token")
	issueCmd.Flags().String("pubkey", "", "issuer public key, hex")
	issueCmd.Flags().String("name", "", "asset name")
	issueCmd.Flags().String("ticker", "", "asset ticker")
	issueCmd.Flags().Uint8("precision", 0, "asset precision, 0 to 8")
	issueCmd.Flags().String("domain", "", "issuer domain")
}

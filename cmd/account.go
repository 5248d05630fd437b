package cmd

import (
	"encoding/json"
	"lending/pkg/number"

	"github.com/spf13/cobra"
	"github.com/yiplee/structs"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "inspect ledger accounts",
}

var balanceCmd = &cobra.Command{
	Use:   "balance <asset id> <owner>",
	Short: "deposit balance with accrued interest",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		database := provideDatabase()
		defer database.Close()

		ledgerz := provideLedgerService(database)
		balance, err := ledgerz.BalanceOf(ctx, args[0], args[1])
		if err != nil {
			cmd.PrintErrln("balance", err)
			return
		}

		asset, _ := ledgerz.Assets().Find(args[0])
		cmd.Println(balance.String(), asset.Symbol)
		if asset.Decimals > 0 {
			cmd.Println(balance.Decimal(asset.Decimals).String(), asset.Symbol)
		}
	},
}

var ratioCmd = &cobra.Command{
	Use:   "ratio <owner>",
	Short: "collateral ratio, debt and collateral of a borrower",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		database := provideDatabase()
		defer database.Close()

		ledgerz := provideLedgerService(database)
		position, err := ledgerz.Position(ctx, args[0])
		if err != nil {
			cmd.PrintErrln("position", err)
			return
		}

		m := make(map[string]interface{})
		for _, f := range structs.New(position).Fields() {
			m[f.Tag(structs.DefaultTagName)] = f.Value()
		}
		m["ratio_percent"] = number.Percent(position.Ratio).String()

		data, _ := json.MarshalIndent(m, "", "  ")
		cmd.Println(string(data))
	},
}

func init() {
	rootCmd.AddCommand(accountCmd)
	accountCmd.AddCommand(balanceCmd)
	accountCmd.AddCommand(ratioCmd)
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// op commands invoking the registry transitions. The --account flag plays
// the role of the authenticated caller identity supplied by the host.

var mintCmd = &cobra.Command{
	Use:   "mint",
	Short: "mint a new kitty",
	Run: func(cmd *cobra.Command, args []string) {
		account, ok := accountFlag(cmd)
		if !ok {
			return
		}

		database := provideDatabase()
		defer database.Close()

		registry := provideRegistryService(database)
		kitty, err := registry.Mint(cmd.Context(), account)
		if err != nil {
			cmd.PrintErrln("mint failed:", err)
			return
		}

		fmt.Println("minted", kitty.ID, kitty.Gender, "owner", kitty.Owner)
	},
}

var setPriceCmd = &cobra.Command{
	Use:   "set-price <kitty-id>",
	Short: "list a kitty for sale, or delist it with --delist",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		account, ok := accountFlag(cmd)
		if !ok {
			return
		}
		kittyID := strings.TrimSpace(args[0])

		var price decimal.NullDecimal
		if delist, _ := cmd.Flags().GetBool("delist"); !delist {
			amount, err := cmd.Flags().GetString("price")
			if err != nil || amount == "" {
				cmd.PrintErrln("--price or --delist required")
				return
			}

			value, err := decimal.NewFromString(amount)
			if err != nil {
				cmd.PrintErrln("invalid price:", amount)
				return
			}

			price = decimal.NullDecimal{Decimal: value, Valid: true}
		}

		database := provideDatabase()
		defer database.Close()

		registry := provideRegistryService(database)
		kitty, err := registry.SetPrice(cmd.Context(), account, kittyID, price)
		if err != nil {
			cmd.PrintErrln("set-price failed:", err)
			return
		}

		if kitty.Price.Valid {
			fmt.Println("listed", kitty.ID, "at", kitty.Price.Decimal)
		} else {
			fmt.Println("delisted", kitty.ID)
		}
	},
}

var transferCmd = &cobra.Command{
	Use:   "transfer <kitty-id>",
	Short: "transfer a kitty to another account",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		account, ok := accountFlag(cmd)
		if !ok {
			return
		}
		kittyID := strings.TrimSpace(args[0])

		to, err := cmd.Flags().GetString("to")
		if err != nil || to == "" {
			cmd.PrintErrln("--to required")
			return
		}

		database := provideDatabase()
		defer database.Close()

		registry := provideRegistryService(database)
		if err := registry.Transfer(cmd.Context(), account, to, kittyID); err != nil {
			cmd.PrintErrln("transfer failed:", err)
			return
		}

		fmt.Println("transferred", kittyID, "to", to)
	},
}

var buyCmd = &cobra.Command{
	Use:   "buy <kitty-id>",
	Short: "buy a listed kitty at its asking price",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		account, ok := accountFlag(cmd)
		if !ok {
			return
		}
		kittyID := strings.TrimSpace(args[0])

		amount, err := cmd.Flags().GetString("bid")
		if err != nil || amount == "" {
			cmd.PrintErrln("--bid required")
			return
		}

		bid, err := decimal.NewFromString(amount)
		if err != nil {
			cmd.PrintErrln("invalid bid:", amount)
			return
		}

		database := provideDatabase()
		defer database.Close()

		registry := provideRegistryService(database)
		kitty, err := registry.Buy(cmd.Context(), account, kittyID, bid)
		if err != nil {
			cmd.PrintErrln("buy failed:", err)
			return
		}

		fmt.Println("bought", kitty.ID, "now owned by", kitty.Owner)
	},
}

var depositCmd = &cobra.Command{
	Use:   "deposit",
	Short: "credit an account balance",
	Run: func(cmd *cobra.Command, args []string) {
		account, ok := accountFlag(cmd)
		if !ok {
			return
		}

		amount, err := cmd.Flags().GetString("amount")
		if err != nil || amount == "" {
			cmd.PrintErrln("--amount required")
			return
		}

		value, err := decimal.NewFromString(amount)
		if err != nil || !value.IsPositive() {
			cmd.PrintErrln("invalid amount:", amount)
			return
		}

		database := provideDatabase()
		defer database.Close()

		balances := provideBalanceStore(database)
		if err := database.Tx(func(tx *db.DB) error {
			return balances.Deposit(cmd.Context(), tx, account, value)
		}); err != nil {
			cmd.PrintErrln("deposit failed:", err)
			return
		}

		fmt.Println("deposited", value, "to", account)
	},
}

var kittiesCmd = &cobra.Command{
	Use:   "kitties",
	Short: "list kitties owned by an account",
	Run: func(cmd *cobra.Command, args []string) {
		account, ok := accountFlag(cmd)
		if !ok {
			return
		}

		database := provideDatabase()
		defer database.Close()

		store := provideKittyStore(database)
		ids, err := store.OwnerList(cmd.Context(), account)
		if err != nil {
			cmd.PrintErrln("list failed:", err)
			return
		}

		for _, id := range ids {
			fmt.Println(id)
		}
		fmt.Println(len(ids), "kitties")
	},
}

func accountFlag(cmd *cobra.Command) (string, bool) {
	account, err := cmd.Flags().GetString("account")
	if err != nil || account == "" {
		cmd.PrintErrln("--account required")
		return "", false
	}

	return account, true
}

func init() {
	for _, cmd := range []*cobra.Command{mintCmd, setPriceCmd, transferCmd, buyCmd, depositCmd, kittiesCmd} {
		cmd.Flags().StringP("account", "a", "", "caller account")
		rootCmd.AddCommand(cmd)
	}

	setPriceCmd.Flags().String("price", "", "asking price")
	setPriceCmd.Flags().Bool("delist", false, "clear the price")
	transferCmd.Flags().String("to", "", "recipient account")
	buyCmd.Flags().String("bid", "", "bid price")
	depositCmd.Flags().String("amount", "", "deposit amount")
}

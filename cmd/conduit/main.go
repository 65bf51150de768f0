// conduit manages AWS Service Catalog portfolios and products from a single
// versioned configuration document stored in S3.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/concon121/aws-conduit/internal/conduit"
	"github.com/concon121/aws-conduit/internal/gateway"
)

var (
	flagRegion  string
	flagVerbose bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// app builds the gateway and application layer for a command invocation.
func app(cmd *cobra.Command) (*conduit.Conduit, error) {
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := []gateway.Option{gateway.WithLogger(logger)}
	if flagRegion != "" {
		opts = append(opts, gateway.WithRegion(flagRegion))
	}
	gw, err := gateway.New(cmd.Context(), opts...)
	if err != nil {
		return nil, err
	}
	return conduit.New(gw), nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "conduit",
		Short:         "Manage AWS Service Catalog portfolios and products",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagRegion, "region", "", "AWS region (defaults to the credential chain region)")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newStartCmd(),
		newSupportCmd(),
		newPortfolioCmd(),
		newProductCmd(),
		newBuildCmd(),
		newPackageCmd(),
		newPackageProductCmd(),
		newProvisionCmd(),
		newTerminateCmd(),
		newSyncCmd(),
	)
	return root
}

func newStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Bootstrap the account: config bucket, document and provisioner role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := app(cmd)
			if err != nil {
				return err
			}
			return c.Configure(cmd.Context())
		},
	}
}

func newSupportCmd() *cobra.Command {
	var description, email, url string
	cmd := &cobra.Command{
		Use:   "support",
		Short: "Set default support details for new products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := app(cmd)
			if err != nil {
				return err
			}
			return c.SetSupport(cmd.Context(), description, email, url)
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "support description")
	cmd.Flags().StringVarP(&email, "email", "e", "", "support email address")
	cmd.Flags().StringVarP(&url, "url", "u", "", "support URL")
	return cmd
}

func newPortfolioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Manage portfolios",
	}

	var name, description string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a portfolio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := app(cmd)
			if err != nil {
				return err
			}
			return c.NewPortfolio(cmd.Context(), name, description)
		},
	}
	create.Flags().StringVarP(&name, "name", "n", "", "portfolio name")
	create.Flags().StringVarP(&description, "description", "d", "", "portfolio description")
	create.MarkFlagRequired("name")

	var updName, updID, updDescription string
	update := &cobra.Command{
		Use:   "update",
		Short: "Update a portfolio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := app(cmd)
			if err != nil {
				return err
			}
			return c.UpdatePortfolio(cmd.Context(), updName, updID, updDescription)
		},
	}
	update.Flags().StringVarP(&updName, "name", "n", "", "portfolio name")
	update.Flags().StringVar(&updID, "id", "", "portfolio id (alternative to --name)")
	update.Flags().StringVarP(&updDescription, "description", "d", "", "portfolio description")
	update.MarkFlagsOneRequired("name", "id")

	var delName, delID string
	del := &cobra.Command{
		Use:   "delete",
		Short: "Delete a portfolio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := app(cmd)
			if err != nil {
				return err
			}
			return c.DeletePortfolio(cmd.Context(), delName, delID)
		},
	}
	del.Flags().StringVarP(&delName, "name", "n", "", "portfolio name")
	del.Flags().StringVar(&delID, "id", "", "portfolio id (alternative to --name)")
	del.MarkFlagsOneRequired("name", "id")

	list := &cobra.Command{
		Use:   "list",
		Short: "List portfolios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := app(cmd)
			if err != nil {
				return err
			}
			return c.ListPortfolios(cmd.Context())
		},
	}

	cmd.AddCommand(create, update, del, list)
	return cmd
}

func newProductCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Manage products",
	}

	var name, description, cfnType, portfolio string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a product under a portfolio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := app(cmd)
			if err != nil {
				return err
			}
			return c.NewProduct(cmd.Context(), name, description, cfnType, portfolio)
		},
	}
	create.Flags().StringVarP(&name, "name", "n", "", "product name")
	create.Flags().StringVarP(&description, "description", "d", "", "product description")
	create.Flags().StringVarP(&cfnType, "cfntype", "c", "yaml", "template file type (yaml or json)")
	create.Flags().StringVarP(&portfolio, "portfolio", "p", "", "owning portfolio name")
	create.MarkFlagRequired("name")
	create.MarkFlagRequired("portfolio")

	var updName, updID, updDescription string
	update := &cobra.Command{
		Use:   "update",
		Short: "Update a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := app(cmd)
			if err != nil {
				return err
			}
			return c.UpdateProduct(cmd.Context(), updName, updID, updDescription)
		},
	}
	update.Flags().StringVarP(&updName, "name", "n", "", "product name")
	update.Flags().StringVar(&updID, "id", "", "product id (alternative to --name)")
	update.Flags().StringVarP(&updDescription, "description", "d", "", "product description")
	update.MarkFlagsOneRequired("name", "id")

	var delName, delID string
	del := &cobra.Command{
		Use:   "delete",
		Short: "Delete a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := app(cmd)
			if err != nil {
				return err
			}
			return c.DeleteProduct(cmd.Context(), delName, delID)
		},
	}
	del.Flags().StringVarP(&delName, "name", "n", "", "product name")
	del.Flags().StringVar(&delID, "id", "", "product id (alternative to --name)")
	del.MarkFlagsOneRequired("name", "id")

	list := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := app(cmd)
			if err != nil {
				return err
			}
			return c.ListProducts(cmd.Context())
		},
	}

	var assocProduct, assocPortfolio string
	associate := &cobra.Command{
		Use:   "associate",
		Short: "Associate a product with an additional portfolio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := app(cmd)
			if err != nil {
				return err
			}
			return c.AssociateProduct(cmd.Context(), assocProduct, assocPortfolio)
		},
	}
	associate.Flags().StringVarP(&assocProduct, "name", "n", "", "product name")
	associate.Flags().StringVarP(&assocPortfolio, "portfolio", "p", "", "portfolio name")
	associate.MarkFlagRequired("name")
	associate.MarkFlagRequired("portfolio")

	cmd.AddCommand(create, update, del, list, associate, newProvisionCmd(), newTerminateCmd())
	return cmd
}

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "build [major|minor|patch]",
		Short:     "Release every product in the build specification",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"major", "minor", "patch"},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app(cmd)
			if err != nil {
				return err
			}
			kind := ""
			if len(args) > 0 {
				kind = args[0]
			}
			return c.Build(cmd.Context(), kind)
		},
	}
}

func newPackageCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "package [major|minor|patch]",
		Short:     "Version and upload build artifacts without catalog registration",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"major", "minor", "patch"},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app(cmd)
			if err != nil {
				return err
			}
			kind := ""
			if len(args) > 0 {
				kind = args[0]
			}
			return c.Package(cmd.Context(), kind)
		},
	}
}

func newPackageProductCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "package-product <product> [major|minor|patch]",
		Short:     "Version and upload one product's build artifacts without catalog registration",
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: []string{"major", "minor", "patch"},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app(cmd)
			if err != nil {
				return err
			}
			kind := ""
			if len(args) > 1 {
				kind = args[1]
			}
			return c.PackageProduct(cmd.Context(), args[0], kind)
		},
	}
	return cmd
}

func newProvisionCmd() *cobra.Command {
	var product, instance string
	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Provision, or update, a named instance of a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := app(cmd)
			if err != nil {
				return err
			}
			return c.Provision(cmd.Context(), product, instance)
		},
	}
	cmd.Flags().StringVarP(&product, "name", "n", "", "product name")
	cmd.Flags().StringVarP(&instance, "instance", "i", "", "instance name (defaults to the product name)")
	cmd.MarkFlagRequired("name")
	return cmd
}

func newTerminateCmd() *cobra.Command {
	var product, instance string
	cmd := &cobra.Command{
		Use:   "terminate",
		Short: "Terminate a named provisioned instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := app(cmd)
			if err != nil {
				return err
			}
			return c.Terminate(cmd.Context(), product, instance)
		},
	}
	cmd.Flags().StringVarP(&product, "name", "n", "", "product name")
	cmd.Flags().StringVarP(&instance, "instance", "i", "", "instance name (defaults to the product name)")
	cmd.MarkFlagRequired("name")
	return cmd
}

func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Reconcile the config document against the live catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := app(cmd)
			if err != nil {
				return err
			}
			return c.Sync(cmd.Context())
		},
	}
}

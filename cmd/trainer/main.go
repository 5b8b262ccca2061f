package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"price-optimization-api/training"
)

var opts training.Options

var rootCmd = &cobra.Command{
	Use:   "trainer",
	Short: "Train and save the price optimization model",
	Long: `Fits the demand regression pipeline from historical retail pricing data
and writes the model artifact plus its metadata descriptor. The API
server picks both up lazily on its next load.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return training.Run(opts)
	},
}

func init() {
	rootCmd.Flags().StringVar(&opts.CSVPath, "csv", "retail_price.csv", "path to the training CSV")
	rootCmd.Flags().StringVar(&opts.ModelPath, "model-path", "models/price_model.gob", "output path for the model artifact")
	rootCmd.Flags().StringVar(&opts.MetadataPath, "metadata-path", "models/metadata.json", "output path for the metadata descriptor")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

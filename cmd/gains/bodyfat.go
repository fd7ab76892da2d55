// ABOUTME: CLI command for the body-fat estimate.
// ABOUTME: Height, neck and waist are passed to validation as raw strings.
package main

import (
	"github.com/harperreed/gains/internal/calc"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	bfHeight string
	bfNeck   string
	bfWaist  string
)

var bodyFatCmd = &cobra.Command{
	Use:     "bodyfat",
	Aliases: []string{"bf", "fat"},
	Short:   "Estimate body-fat percentage",
	Long: `Estimate body-fat percentage with the U.S. Navy circumference formula for men.

All measurements are in centimeters. The waist must be larger than the neck.

EXAMPLES:

  gains bodyfat --height 180 --neck 40 --waist 90
  gains bodyfat --height 175 --neck 38 --waist 85 --format html`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := calc.CalculateBodyFat(calc.RawInput{
			calc.FieldHeight: bfHeight,
			calc.FieldNeck:   bfNeck,
			calc.FieldWaist:  bfWaist,
		})
		if err != nil {
			return renderFailure(cmd, err)
		}

		logger.Debug("body fat estimated",
			zap.String("id", c.ID.String()),
			zap.Float64("body_fat_pct", c.Fat.BodyFatPct))
		return renderer.Render(cmd.OutOrStdout(), c)
	},
}

func init() {
	bodyFatCmd.Flags().StringVar(&bfHeight, "height", "", "height in cm")
	bodyFatCmd.Flags().StringVar(&bfNeck, "neck", "", "neck circumference in cm")
	bodyFatCmd.Flags().StringVar(&bfWaist, "waist", "", "waist circumference in cm")
	rootCmd.AddCommand(bodyFatCmd)
}

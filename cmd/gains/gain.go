// ABOUTME: CLI command for the muscle-gain estimate.
// ABOUTME: Flag values are passed to validation as raw strings.
package main

import (
	"github.com/harperreed/gains/internal/calc"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	gainAge          string
	gainTrainingTime string
	gainResultTime   string
	gainWorkout      string
	gainDiet         string
	gainGenetics     string
	gainWeight       string
	gainCurrentFat   string
	gainDesiredFat   string
)

var gainCmd = &cobra.Command{
	Use:     "gain",
	Aliases: []string{"g", "muscle"},
	Short:   "Estimate muscle gain over a training period",
	Long: `Estimate pure lean muscle gain from age, training age, and the quality of
workouts, diet and genetics.

REQUIRED:

  --age             Age in years (16-60)
  --training-time   Months you have already trained (0-300)
  --result-time     Months to project over
  --workout         low | medium | high   (or the full label)
  --diet            poor | average | good (or the full label)
  --genetics        hard | average | easy (or the full label)

OPTIONAL (all three enable the final body weight projection):

  --weight          Current weight in kg
  --current-fat     Current body fat (%)
  --desired-fat     Desired body fat (%), below 100

All validation problems are reported together.

EXAMPLES:

  gains gain --age 25 --training-time 3 --result-time 6 --workout high --diet good --genetics easy
  gains gain --age 34 --training-time 14 --result-time 12 --workout medium --diet average \
      --genetics average --weight 82 --current-fat 22 --desired-fat 15
  gains gain ... --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := calc.RawInput{
			calc.FieldAge:            gainAge,
			calc.FieldTrainingTime:   gainTrainingTime,
			calc.FieldResultTime:     gainResultTime,
			calc.FieldWorkoutQuality: gainWorkout,
			calc.FieldDietQuality:    gainDiet,
			calc.FieldGeneticsType:   gainGenetics,
			calc.FieldCurrentWeight:  gainWeight,
			calc.FieldCurrentFat:     gainCurrentFat,
			calc.FieldDesiredFat:     gainDesiredFat,
		}

		c, err := calc.CalculateMuscleGain(raw)
		if err != nil {
			return renderFailure(cmd, err)
		}

		logger.Debug("muscle gain estimated",
			zap.String("id", c.ID.String()),
			zap.Float64("muscle_gain_kg", c.Gain.MuscleGainKg))
		return renderer.Render(cmd.OutOrStdout(), c)
	},
}

// renderFailure prints validation errors in the selected format and returns
// errInvalidInput. Other errors pass through unchanged.
func renderFailure(cmd *cobra.Command, err error) error {
	errs, ok := calc.AsValidationErrors(err)
	if !ok {
		return err
	}
	logger.Debug("validation failed", zap.Strings("fields", errs.Fields()))
	if rerr := renderer.RenderErrors(cmd.OutOrStdout(), errs); rerr != nil {
		return rerr
	}
	return errInvalidInput
}

func init() {
	gainCmd.Flags().StringVar(&gainAge, "age", "", "age in years")
	gainCmd.Flags().StringVar(&gainTrainingTime, "training-time", "", "months already trained")
	gainCmd.Flags().StringVar(&gainResultTime, "result-time", "", "months to project over")
	gainCmd.Flags().StringVar(&gainWorkout, "workout", "", "workout quality: low, medium, high")
	gainCmd.Flags().StringVar(&gainDiet, "diet", "", "diet quality: poor, average, good")
	gainCmd.Flags().StringVar(&gainGenetics, "genetics", "", "genetics type: hard, average, easy")
	gainCmd.Flags().StringVar(&gainWeight, "weight", "", "current weight in kg (optional)")
	gainCmd.Flags().StringVar(&gainCurrentFat, "current-fat", "", "current body fat % (optional)")
	gainCmd.Flags().StringVar(&gainDesiredFat, "desired-fat", "", "desired body fat % (optional)")
	rootCmd.AddCommand(gainCmd)
}

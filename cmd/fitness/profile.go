package fitness

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/NatiMalka/fitness-time/internal/service"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your user profile",
}

var (
	profileName      string
	profileWeight    float64
	profileHeight    float64
	profileBirthDate string
	profileGender    string
	profileActivity  string
	profileGoal      string
	profileTarget    float64
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or update your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.ProfileInput{
			Name:          profileName,
			WeightKg:      profileWeight,
			HeightCm:      profileHeight,
			BirthDate:     profileBirthDate,
			Gender:        profileGender,
			ActivityLevel: profileActivity,
			WeightGoal:    profileGoal,
		}
		if profileTarget > 0 {
			in.TargetWeightKg = &profileTarget
		}
		return withDB(func(sqldb *sql.DB) error {
			outcome, err := service.SaveProfile(sqldb, in, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile saved")
			announce(outcome)
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			p, err := service.GetProfile(sqldb)
			if err != nil {
				return err
			}
			if p == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No profile yet. Run 'fitness profile set' to create one.")
				return nil
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:           %s\n", p.Name)
			fmt.Fprintf(out, "Weight:         %.1f kg\n", p.WeightKg)
			fmt.Fprintf(out, "Height:         %.0f cm\n", p.HeightCm)
			if p.BirthDate != "" {
				fmt.Fprintf(out, "Birth date:     %s\n", p.BirthDate)
			}
			if p.Gender != "" {
				fmt.Fprintf(out, "Gender:         %s\n", p.Gender)
			}
			fmt.Fprintf(out, "Activity level: %s\n", p.ActivityLevel)
			if p.WeightGoal != "" {
				fmt.Fprintf(out, "Weight goal:    %s\n", p.WeightGoal)
			}
			if p.TargetWeightKg != nil {
				fmt.Fprintf(out, "Target weight:  %.1f kg\n", *p.TargetWeightKg)
			}
			if p.HeightCm > 0 {
				m := p.HeightCm / 100
				bmi := p.WeightKg / (m * m)
				fmt.Fprintf(out, "BMI:            %.1f (%s)\n", bmi, service.BMICategory(bmi))
			}
			fmt.Fprintf(out, "Level:          %d (total %d XP)\n", p.XPLevel, p.XPTotal)
			return nil
		})
	},
}

func init() {
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "Your name")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Current weight in kg")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm")
	profileSetCmd.Flags().StringVar(&profileBirthDate, "birth-date", "", "Birth date (YYYY-MM-DD)")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "Gender (male, female, other)")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "moderate", "Activity level (sedentary, light, moderate, active, veryActive)")
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", "", "Weight goal (lose, maintain, gain)")
	profileSetCmd.Flags().Float64Var(&profileTarget, "target-weight", 0, "Target weight in kg")
	_ = profileSetCmd.MarkFlagRequired("name")
	_ = profileSetCmd.MarkFlagRequired("weight")
	_ = profileSetCmd.MarkFlagRequired("height")

	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)
	rootCmd.AddCommand(profileCmd)
}

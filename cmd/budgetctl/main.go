// budgetctl runs the budget engine offline against the compiled-in rules
// and catalog seeds. Planners and support staff use it to sanity-check
// recommendations without a running API or database.
//
// Usage:
//   budgetctl estimate --event-type wedding --attendees 100 --duration-hours 6 --date 2026-06-20
//   budgetctl packages --event-type wedding
//   budgetctl rules validate --file rules.yml
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/planora/budget-api/internal/models"
	"github.com/planora/budget-api/internal/repository"
	"github.com/planora/budget-api/internal/rules"
	"github.com/planora/budget-api/internal/services"
)

func main() {
	app := &cli.App{
		Name:  "budgetctl",
		Usage: "Offline budget estimation for the events marketplace",

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "rules",
				Usage:   "Path to a rules YAML file (compiled defaults when unset)",
				EnvVars: []string{"RULES_FILE"},
			},
		},

		Commands: []*cli.Command{
			estimateCommand(),
			packagesCommand(),
			rulesCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func estimateCommand() *cli.Command {
	return &cli.Command{
		Name:  "estimate",
		Usage: "Estimate a budget for an event",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "event-type",
				Aliases:  []string{"t"},
				Usage:    "Event type (wedding, corporate, birthday, conference, gala)",
				Required: true,
			},
			&cli.IntFlag{
				Name:     "attendees",
				Aliases:  []string{"a"},
				Usage:    "Expected attendee count",
				Required: true,
			},
			&cli.Float64Flag{
				Name:    "duration-hours",
				Aliases: []string{"hours"},
				Value:   4,
				Usage:   "Event duration in hours",
			},
			&cli.StringFlag{
				Name:     "date",
				Aliases:  []string{"d"},
				Usage:    "Event date (YYYY-MM-DD)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "city",
				Usage: "Event city",
			},
			&cli.StringFlag{
				Name:  "region",
				Usage: "Event region",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "text",
				Usage:   "Output format (text, json)",
			},
			&cli.BoolFlag{
				Name:  "suggestions",
				Usage: "Include cost-saving suggestions",
			},
		},
		Action: runEstimate,
	}
}

func runEstimate(c *cli.Context) error {
	ruleSet, err := loadRules(c)
	if err != nil {
		return err
	}

	date, err := time.Parse("2006-01-02", c.String("date"))
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", c.String("date"))
	}

	recommender := buildEngine(ruleSet)
	ctx, wc := services.NewWarningContext(context.Background())

	plan, err := recommender.Recommend(ctx, &models.RecommendBudgetRequest{
		EventType:     models.EventType(c.String("event-type")),
		AttendeeCount: c.Int("attendees"),
		DurationHours: c.Float64("duration-hours"),
		EventDate:     models.FlexibleDate{Time: date},
		Location: models.Location{
			City:   c.String("city"),
			Region: c.String("region"),
		},
	})
	if err != nil {
		return err
	}

	var suggestions []models.CostSavingSuggestion
	if c.Bool("suggestions") {
		suggestionSvc := services.NewSuggestionService(ruleSet)
		suggestions, _ = suggestionSvc.Generate(ctx, plan)
	}

	if c.String("output") == "json" {
		out := struct {
			Plan        *models.BudgetPlan            `json:"plan"`
			Suggestions []models.CostSavingSuggestion `json:"suggestions,omitempty"`
			Warnings    []models.Warning              `json:"warnings,omitempty"`
		}{plan, suggestions, wc.GetWarnings()}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	printPlan(plan, suggestions, wc.GetWarnings())
	return nil
}

func printPlan(plan *models.BudgetPlan, suggestions []models.CostSavingSuggestion, warnings []models.Warning) {
	fmt.Printf("Budget estimate: %s, %d attendees, %.1fh on %s\n\n",
		plan.EventType, plan.AttendeeCount, plan.DurationHours, plan.EventDate.Format("2006-01-02"))

	fmt.Printf("%-16s %12s %12s %12s %6s  %s\n", "CATEGORY", "RECOMMENDED", "MIN", "MAX", "CONF", "SOURCE")
	for _, rec := range plan.Recommendations {
		fmt.Printf("%-16s %12s %12s %12s %5.0f%%  %s\n",
			rec.Category,
			"$"+rec.RecommendedAmount.StringFixed(2),
			"$"+rec.MinAmount.StringFixed(2),
			"$"+rec.MaxAmount.StringFixed(2),
			rec.ConfidenceScore*100,
			rec.PricingSource,
		)
	}
	fmt.Printf("%-16s %12s\n", "TOTAL", "$"+plan.TotalBudget.StringFixed(2))
	fmt.Printf("\nOverall confidence: %.0f%%\n", plan.OverallConfidence*100)

	if plan.Seasonal != nil {
		fmt.Printf("\nSeason: %s (x%.2f)", plan.Seasonal.SeasonType, plan.Seasonal.SeasonalMultiplier)
		if plan.Seasonal.SpecialDateMultiplier != 1.0 {
			fmt.Printf(", %s (x%.2f)", plan.Seasonal.SpecialDateReason, plan.Seasonal.SpecialDateMultiplier)
		}
		fmt.Println()
	}

	for _, w := range warnings {
		fmt.Printf("warning [%s]: %s\n", w.Code, w.Message)
	}

	if len(suggestions) > 0 {
		fmt.Println("\nCost-saving suggestions:")
		for _, s := range suggestions {
			fmt.Printf("  - %s: save about $%s (%s)\n", s.Title, s.PotentialSavings.StringFixed(2), s.Difficulty)
		}
	}
}

func packagesCommand() *cli.Command {
	return &cli.Command{
		Name:  "packages",
		Usage: "List the seeded package deals for an event type",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "event-type",
				Aliases:  []string{"t"},
				Usage:    "Event type",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "city",
				Usage: "Include deals scoped to this city",
			},
		},
		Action: func(c *cli.Context) error {
			ruleSet, err := loadRules(c)
			if err != nil {
				return err
			}

			catalog := repository.NewMemoryCatalog(ruleSet, time.Now())
			packages, err := catalog.ListPackages(context.Background(),
				models.EventType(c.String("event-type")),
				models.Location{City: c.String("city")},
			)
			if err != nil {
				return err
			}

			if len(packages) == 0 {
				fmt.Println("no packages seeded for this event type")
				return nil
			}

			for _, p := range packages {
				fmt.Printf("#%d %s\n", p.ID, p.Name)
				fmt.Printf("   categories: %v\n", p.ServiceCategories)
				fmt.Printf("   base $%s, %s%% off -> $%s (save $%s)\n",
					p.BasePrice.StringFixed(2), p.DiscountPercent.StringFixed(0),
					p.FinalPrice.StringFixed(2), p.Savings.StringFixed(2))
			}
			return nil
		},
	}
}

func rulesCommand() *cli.Command {
	return &cli.Command{
		Name:  "rules",
		Usage: "Inspect adjustment rules",
		Subcommands: []*cli.Command{
			{
				Name:  "validate",
				Usage: "Validate a rules file before deploying it",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "file",
						Usage:   "Path to the rules YAML file",
						EnvVars: []string{"RULES_FILE"},
					},
				},
				Action: func(c *cli.Context) error {
					path := c.String("file")
					if path == "" {
						path = c.String("rules")
					}

					_, warnings, err := rules.Load(path)
					if err != nil {
						return err
					}
					for _, w := range warnings {
						fmt.Printf("warning: %s\n", w)
					}
					if path == "" {
						fmt.Println("compiled default rules are valid")
					} else {
						fmt.Printf("%s is valid\n", path)
					}
					return nil
				},
			},
		},
	}
}

// loadRules reads the rules file named by the global flag, falling back to
// the compiled defaults.
func loadRules(c *cli.Context) (*rules.Rules, error) {
	ruleSet, warnings, err := rules.Load(c.String("rules"))
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "rules warning: %s\n", w)
	}
	return ruleSet, nil
}

// buildEngine wires the recommendation pipeline against the in-memory
// catalog seeded from the rules.
func buildEngine(ruleSet *rules.Rules) *services.RecommendationService {
	catalog := repository.NewMemoryCatalog(ruleSet, time.Now())
	pricingSvc := services.NewPricingService(catalog, nil)
	seasonalSvc := services.NewSeasonalService(ruleSet)
	locationSvc := services.NewLocationService(ruleSet)
	return services.NewRecommendationService(pricingSvc, seasonalSvc, locationSvc, ruleSet)
}

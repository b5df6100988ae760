package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/mohaimenhasan/flight-delay/internal/config"
	"github.com/mohaimenhasan/flight-delay/internal/dataset"
	"github.com/mohaimenhasan/flight-delay/internal/filter"
	"github.com/mohaimenhasan/flight-delay/internal/pipeline"
)

var Version = "dev"

const targetDateFormat = "2006-01-02"

func main() {
	rootCmd := &cobra.Command{
		Use:     "flightcast",
		Short:   "Forecast monthly international flight counts from historical report data",
		Version: Version,

		SilenceUsage: true,
	}

	rootCmd.AddCommand(predictCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func predictCmd() *cobra.Command {
	cfg := config.Load()

	var (
		dataPath     string
		dateStr      string
		origin       string
		destination  string
		airline      string
		carrierGroup string
		flightType   string
		scheduled    string
		charter      string
	)

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict total flights for the forecasted month nearest a date",
		Long: `Predict aggregates the historical dataset into monthly flight totals,
fits a trend+seasonality model, forecasts forward to cover the requested
date, and reports the estimate for the closest available forecasted month.

All filter flags are optional; each one narrows the dataset by exact match
before aggregation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := time.ParseInLocation(targetDateFormat, dateStr, time.UTC)
			if err != nil {
				return fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", dateStr)
			}

			criteria, err := buildCriteria(origin, destination, airline, carrierGroup, flightType, scheduled, charter)
			if err != nil {
				return err
			}

			source, err := dataset.Open(dataPath, cfg.DateFormat)
			if err != nil {
				return err
			}

			pred, err := pipeline.New(source).PredictClosest(criteria, target)
			if err != nil {
				var emptyErr *filter.EmptyResultError
				if errors.As(err, &emptyErr) {
					return fmt.Errorf("no matching flights: %s", emptyErr.Error())
				}
				return err
			}

			fmt.Printf("Predicted total flights on closest date %s: %.2f\n",
				pred.MatchedDate.Format(targetDateFormat), pred.Estimate)
			fmt.Printf("Prediction range: %.2f to %.2f\n", pred.Lower, pred.Upper)
			return nil
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", cfg.DataPath, "Path to the flight-record dataset (.csv, .db, .sqlite)")
	cmd.Flags().StringVar(&dateStr, "date", "", "Date to predict, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&origin, "origin", "", "US airport code to filter departures from (e.g. JFK)")
	cmd.Flags().StringVar(&destination, "destination", "", "Foreign airport code to filter flights to (e.g. LHR)")
	cmd.Flags().StringVar(&airline, "airline", "", "Airline code (e.g. DL)")
	cmd.Flags().StringVar(&carrierGroup, "carrier-group", "", "Carrier group code")
	cmd.Flags().StringVar(&flightType, "flight-type", "", "Flight type (e.g. Departures)")
	cmd.Flags().StringVar(&scheduled, "scheduled", "", "Filter by scheduled flights (1) or non-scheduled (0)")
	cmd.Flags().StringVar(&charter, "charter", "", "Filter by charter flights (1) or non-charter (0)")
	cmd.MarkFlagRequired("date")

	return cmd
}

// buildCriteria validates the integer-typed filters and assembles the
// filter criteria. String flags pass through; carrier-group must be an
// integer and scheduled/charter must be 0 or 1.
func buildCriteria(origin, destination, airline, carrierGroup, flightType, scheduled, charter string) (filter.Criteria, error) {
	c := filter.Criteria{
		Origin:      origin,
		Destination: destination,
		Airline:     airline,
		FlightType:  flightType,
	}

	if carrierGroup != "" {
		group, err := strconv.Atoi(carrierGroup)
		if err != nil {
			return filter.Criteria{}, fmt.Errorf("invalid --carrier-group %q: expected an integer", carrierGroup)
		}
		c.CarrierGroup = &group
	}

	sched, err := parseBitFlag("scheduled", scheduled)
	if err != nil {
		return filter.Criteria{}, err
	}
	c.Scheduled = sched

	chart, err := parseBitFlag("charter", charter)
	if err != nil {
		return filter.Criteria{}, err
	}
	c.Charter = chart

	return c, nil
}

// parseBitFlag parses an optional 0/1 flag value; "" means unset.
func parseBitFlag(name, value string) (*bool, error) {
	if value == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || (n != 0 && n != 1) {
		return nil, fmt.Errorf("invalid --%s %q: expected 0 or 1", name, value)
	}
	b := n == 1
	return &b, nil
}

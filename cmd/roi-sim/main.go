// roi-sim runs a full financial projection from the command line and
// prints the result as JSON. Useful for sanity-checking assumption changes
// without standing up the API.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"solar_roi_backend/internal/catalog"
	"solar_roi_backend/internal/incentives"
	"solar_roi_backend/internal/rates"
	"solar_roi_backend/internal/roi/service"
	"solar_roi_backend/internal/roi/transport"
	"solar_roi_backend/platform/logger"
	"solar_roi_backend/platform/validator"
)

type simConfig struct{}

func (simConfig) GetOpenEIAPIKey() string        { return os.Getenv("OPENEI_API_KEY") }
func (simConfig) GetOpenEIBaseURL() string       { return "https://api.openei.org/utility_rates" }
func (simConfig) IsRateLookupEnabled() bool      { return os.Getenv("OPENEI_API_KEY") != "" }
func (simConfig) GetRedisURL() string            { return "" }
func (simConfig) GetRateCacheTTL() time.Duration { return time.Hour }

func main() {
	size := flag.Float64("size", 6, "system size in kW")
	prod := flag.Float64("production", 9000, "annual production in kWh")
	state := flag.String("state", "TX", "two-letter state code")
	city := flag.String("city", "", "city name")
	zip := flag.String("zip", "", "zip code for live rate lookup")
	shade := flag.Int("shade", 0, "overall shade percent (0-100)")
	costPerWatt := flag.Float64("cost-per-watt", 0, "installed cost override ($/W)")
	rebate := flag.Float64("rebate", -1, "local rebate override; negative means auto")
	bill := flag.Float64("bill", 0, "current monthly electric bill")
	financing := flag.String("financing", "", "financing type (cash, loan10, loan15, loan20)")
	flag.Parse()

	cat := catalog.MustLoad()
	log := logger.New("cli")
	cfg := simConfig{}

	svc := service.NewService(
		cat,
		rates.NewResolver(cat, cfg, cfg, nil, log),
		incentives.NewResolver(cat),
		log,
	)

	req := transport.CalculateRequest{
		SystemSizeKW:     *size,
		AnnualProduction: *prod,
		ZipCode:          *zip,
		State:            *state,
		City:             *city,
		UserInputs: transport.RawAssumptions{
			FinancingType: *financing,
		},
	}
	if *shade > 0 {
		req.OverallShadePercent = shade
	}
	if *costPerWatt > 0 {
		req.UserInputs.CostPerWatt = costPerWatt
	}
	if *rebate >= 0 {
		req.UserInputs.LocalRebate = rebate
	}
	if *bill > 0 {
		req.UserInputs.CurrentMonthlyBill = bill
	}

	if err := validator.New().Struct(req); err != nil {
		fmt.Fprintln(os.Stderr, "invalid inputs:", err)
		os.Exit(1)
	}

	result, err := svc.Calculate(context.Background(), req)
	if err != nil {
		fmt.Fprintln(os.Stderr, "calculation failed:", err)
		os.Exit(1)
	}

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "encoding failed:", err)
		os.Exit(1)
	}
	fmt.Println(string(encoded))
}

package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/boiler-sim/boiler-sim/boiler"
	"github.com/boiler-sim/boiler-sim/boiler/plant"
	"github.com/boiler-sim/boiler-sim/boiler/scenario"
)

var (
	// CLI flags for the closed-loop run
	plantConfigPath string  // Path to a YAML plant characteristics file
	scenarioPath    string  // Path to a YAML scenario file
	cycles          int     // Number of control cycles to run
	initialLevel    float64 // Starting water level
	steamTarget     float64 // Steam rate the boiler ramps toward
	logLevel        string  // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "boiler-sim",
	Short: "Cycle-driven decision core for a steam boiler controller",
}

// runCmd wires the controller and the simulated plant into a closed loop
// and reports run metrics at the end.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the controller against the simulated plant",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := DefaultCharacteristics()
		if plantConfigPath != "" {
			loaded, err := LoadCharacteristics(plantConfigPath)
			if err != nil {
				logrus.Fatalf("unable to read plant characteristics: %v", err)
			}
			cfg = *loaded
		}
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("invalid plant characteristics: %v", err)
		}

		sc := &scenario.Scenario{Cycles: cycles, InitialLevel: initialLevel, SteamTarget: steamTarget}
		if scenarioPath != "" {
			loaded, err := scenario.Load(scenarioPath)
			if err != nil {
				logrus.Fatalf("unable to read scenario: %v", err)
			}
			sc = loaded
		}
		if err := sc.Validate(cfg.PumpCount()); err != nil {
			logrus.Fatalf("invalid scenario: %v", err)
		}

		logrus.Infof("Starting run: %d cycles, initial level %.2f, steam target %.2f, %d pumps",
			sc.Cycles, sc.InitialLevel, sc.SteamTarget, cfg.PumpCount())

		metrics := RunClosedLoop(cfg, sc)
		metrics.Print()

		logrus.Info("Run complete.")
	},
}

// RunClosedLoop drives the controller against the simulated plant for the
// scenario's cycle count, injecting scheduled faults, and returns the
// aggregated run metrics.
func RunClosedLoop(cfg boiler.PlantCharacteristics, sc *scenario.Scenario) *boiler.Metrics {
	p := plant.New(cfg, sc.InitialLevel, sc.SteamTarget)
	controller := boiler.NewController(cfg)
	metrics := boiler.NewMetrics()

	var inbox, outlet boiler.Mailbox
	for cycle := 0; cycle < sc.Cycles; cycle++ {
		for _, f := range sc.FaultsAt(cycle) {
			p.Inject(f)
		}
		inbox.Reset()
		outlet.Reset()
		p.EmitReadings(&inbox)
		controller.Clock(&inbox, &outlet)
		p.Apply(&outlet)
		p.Advance()
		metrics.ObserveCycle(&outlet, controller.Mode())
	}
	return metrics
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&plantConfigPath, "plant", "", "Path to a YAML plant characteristics file")
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to a YAML scenario file (overrides the run flags below)")
	runCmd.Flags().IntVar(&cycles, "cycles", 60, "Number of control cycles to run")
	runCmd.Flags().Float64Var(&initialLevel, "initial-level", 300, "Starting water level")
	runCmd.Flags().Float64Var(&steamTarget, "steam-target", 4, "Steam rate the boiler ramps toward once running")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(runCmd)
}

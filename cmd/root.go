package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/pacing-sim/pacing-sim/sim"
	"github.com/pacing-sim/pacing-sim/sim/mqtt"
	"github.com/pacing-sim/pacing-sim/sim/trace"
)

var (
	// CLI flags for the run
	modeName         string        // Pacing mode (off, aoo, vvt)
	targetPulses     int           // Number of atrial pulses after which the run stops
	seed             uint64        // Starting cursor of the pseudo-random table
	logLevel         string        // Log verbosity level
	defaultsFilePath string        // Path to defaults.yaml
	clockName        string        // Delay collaborator (busy, sleep, none)
	tickDuration     time.Duration // Wall time per tick for the sleep clock
	traceLevel       string        // Trace verbosity (none, decisions)
	traceOutput      string        // File the decision trace is written to
	mqttBroker       string        // MQTT broker URL; empty disables publishing
	mqttTopic        string        // MQTT topic for pacing events
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "pacing-sim",
	Short: "Tick-driven simulator of a pacing controller against a synthetic heart",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the pacing simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if err := runPacing(cmd, cmd.OutOrStdout()); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

// runPacing wires configuration and collaborators, runs the simulation and
// prints the metrics to out.
func runPacing(cmd *cobra.Command, out io.Writer) error {
	mode, err := sim.ParseMode(modeName)
	if err != nil {
		return err
	}
	if targetPulses <= 0 {
		return fmt.Errorf("--pulses must be positive, got %d", targetPulses)
	}
	if !trace.IsValidTraceLevel(traceLevel) {
		return fmt.Errorf("unknown trace level %q; valid: none, decisions", traceLevel)
	}
	if traceOutput != "" && trace.TraceLevel(traceLevel) != trace.TraceLevelDecisions {
		return fmt.Errorf("--trace-output requires --trace-level %s", trace.TraceLevelDecisions)
	}

	cfg, err := LoadConfig(defaultsFilePath)
	if err != nil {
		return err
	}
	// Flags win over file and environment only when set explicitly.
	if cmd.Flags().Changed("mqtt-broker") {
		cfg.MQTT.Broker = mqttBroker
	}
	if cmd.Flags().Changed("mqtt-topic") {
		cfg.MQTT.Topic = mqttTopic
	}

	clock, err := sim.NewClock(clockName, tickDuration)
	if err != nil {
		return err
	}

	sinks := sim.MultiSink{sim.LogSink{}}
	if cfg.MQTT.Broker != "" {
		publisher, err := mqtt.NewRealPublisher(cfg.MQTT.Broker, cfg.MQTT.Topic)
		if err != nil {
			return fmt.Errorf("mqtt: %w", err)
		}
		defer func() {
			if err := publisher.Close(); err != nil {
				logrus.Warnf("mqtt: close: %v", err)
			}
		}()
		sinks = append(sinks, mqtt.NewSink(publisher))
		logrus.Infof("Publishing pacing events to %s", cfg.MQTT.Broker)
	}

	d := cfg.Device
	logrus.Infof("Device %s (serial %s), lead implanted %s, impedance %d Ohm",
		d.DeviceModel, d.SerialNumber, time.Unix(d.LeadImplantDate, 0).UTC().Format(time.RFC3339), d.LeadImpedance)

	param := cfg.ToParam()
	logrus.Infof("Starting simulation: mode=%s, lrl=%dppm (interval=%d ticks), vrp=%d, seed=%d, clock=%s",
		mode, param.LRL, param.LRLInterval(), param.VRP, seed, clockName)

	s := sim.NewSimulator(sim.SimConfig{
		Mode:                      mode,
		Param:                     param,
		Seed:                      seed,
		InitialVentricularElapsed: 50,
		TraceEnabled:              trace.TraceLevel(traceLevel) == trace.TraceLevelDecisions,
	}, clock, sinks)
	s.Run(targetPulses)

	if err := s.Metrics.Print(out); err != nil {
		return fmt.Errorf("print metrics: %w", err)
	}
	if s.Trace != nil && traceOutput != "" {
		if err := writeTrace(traceOutput, s.Trace); err != nil {
			return err
		}
		logrus.Infof("Decision trace written to %s", traceOutput)
	}

	logrus.Info("Simulation complete.")
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&modeName, "mode", "vvt", "Pacing mode (off, aoo, vvt)")
	runCmd.Flags().IntVar(&targetPulses, "pulses", 20, "Number of atrial pulses after which the run stops")
	runCmd.Flags().Uint64Var(&seed, "seed", sim.DefaultSeed, "Starting cursor of the pseudo-random table")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&defaultsFilePath, "defaults-config", "defaults.yaml", "Path to the defaults file")

	// Wall-clock pacing of the tick loop
	runCmd.Flags().StringVar(&clockName, "clock", sim.ClockBusy, "Delay per tick (busy, sleep, none)")
	runCmd.Flags().DurationVar(&tickDuration, "tick", time.Millisecond, "Wall time per tick for --clock=sleep")

	// Observability
	runCmd.Flags().StringVar(&traceLevel, "trace-level", string(trace.TraceLevelNone), "Decision trace level (none, decisions)")
	runCmd.Flags().StringVar(&traceOutput, "trace-output", "", "Write the decision trace and its summary as JSON to this file")
	runCmd.Flags().StringVar(&mqttBroker, "mqtt-broker", "", "MQTT broker URL (e.g. tcp://localhost:1883); empty disables publishing")
	runCmd.Flags().StringVar(&mqttTopic, "mqtt-topic", mqtt.DefaultTopic, "MQTT topic for pacing events")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}

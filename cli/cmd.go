package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"ptc/calculator"
	"ptc/report"
	"ptc/server"
)

// 命令行参数
var (
	configFile string
	logLevel   string

	sets      []string
	tolerance float64

	sweepParam string
	sweepFrom  float64
	sweepTo    float64
	sweepSteps int
	outFile    string

	profileFile string

	addr string
)

// 当前命令使用的配置，由 Root 的 PersistentPreRunE 读取
var cfg calculator.Config

func init() {
	options := []struct {
		name, shorthand, usage string
		target                 interface{}
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{name: "config", usage: "ini configuration file; built-in literature case when empty",
			target: &configFile, defaultVal: "", flagsets: []*pflag.FlagSet{Root.PersistentFlags()}},
		{name: "log", usage: "log level (trace, debug, info, warn, error)",
			target: &logLevel, defaultVal: "info", flagsets: []*pflag.FlagSet{Root.PersistentFlags()}},
		{name: "set", usage: "override an input, name=value; may be repeated",
			target: &sets, defaultVal: []string{}, flagsets: []*pflag.FlagSet{evaluateCmd.Flags(), sweepCmd.Flags(), dailyCmd.Flags()}},
		{name: "tolerance", usage: "largest accepted percentage error",
			target: &tolerance, defaultVal: 1.2, flagsets: []*pflag.FlagSet{validateCmd.Flags()}},
		{name: "param", shorthand: "p", usage: "input to sweep, one of: " + strings.Join(calculator.ParamNames(), ", "),
			target: &sweepParam, defaultVal: "dni", flagsets: []*pflag.FlagSet{sweepCmd.Flags()}},
		{name: "from", usage: "first sweep value",
			target: &sweepFrom, defaultVal: 0.0, flagsets: []*pflag.FlagSet{sweepCmd.Flags()}},
		{name: "to", usage: "last sweep value",
			target: &sweepTo, defaultVal: 1000.0, flagsets: []*pflag.FlagSet{sweepCmd.Flags()}},
		{name: "steps", usage: "number of sweep points",
			target: &sweepSteps, defaultVal: 11, flagsets: []*pflag.FlagSet{sweepCmd.Flags()}},
		{name: "out", shorthand: "o", usage: "csv output file; standard output when empty",
			target: &outFile, defaultVal: "", flagsets: []*pflag.FlagSet{sweepCmd.Flags(), dailyCmd.Flags()}},
		{name: "profile", usage: "hourly irradiance csv (hour,dni); built-in clear day when empty",
			target: &profileFile, defaultVal: "", flagsets: []*pflag.FlagSet{dailyCmd.Flags()}},
		{name: "addr", usage: "listen address; [server] addr from the configuration when empty",
			target: &addr, defaultVal: "", flagsets: []*pflag.FlagSet{serveCmd.Flags()}},
	}
	for _, o := range options {
		for _, set := range o.flagsets {
			switch t := o.target.(type) {
			case *string:
				set.StringVarP(t, o.name, o.shorthand, o.defaultVal.(string), o.usage)
			case *float64:
				set.Float64VarP(t, o.name, o.shorthand, o.defaultVal.(float64), o.usage)
			case *int:
				set.IntVarP(t, o.name, o.shorthand, o.defaultVal.(int), o.usage)
			case *[]string:
				set.StringArrayVarP(t, o.name, o.shorthand, o.defaultVal.([]string), o.usage)
			default:
				panic(fmt.Errorf("invalid option type %T for %s", o.target, o.name))
			}
		}
	}

	Root.AddCommand(evaluateCmd)
	Root.AddCommand(validateCmd)
	Root.AddCommand(sweepCmd)
	Root.AddCommand(dailyCmd)
	Root.AddCommand(serveCmd)
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "ptc",
	Short: "Parabolic trough receiver heat loss model",
	Long: `ptc evaluates the steady-state heat loss and useful energy gain of a
parabolic trough collector receiver with an evacuated glass envelope.
Use the subcommands below to evaluate a single operating point, compare
against the literature case, sweep an input or run an hourly profile.`,
	SilenceUsage:      true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

func Execute() error {
	return Root.Execute()
}

func setConfig() error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	if configFile == "" {
		cfg = calculator.DefaultConfig()
	} else {
		cfg, err = calculator.LoadConfig(configFile)
		if err != nil {
			return err
		}
	}
	for _, s := range sets {
		name, value, err := parseSet(s)
		if err != nil {
			return err
		}
		if err := calculator.SetParam(&cfg.Inputs, name, value); err != nil {
			return err
		}
	}
	return nil
}

func parseSet(s string) (string, float64, error) {
	name, raw, ok := strings.Cut(s, "=")
	if !ok {
		return "", 0, fmt.Errorf("--set %q: want name=value", s)
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return "", 0, fmt.Errorf("--set %q: %w", s, err)
	}
	return strings.TrimSpace(name), value, nil
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate one operating point",
	Long: `evaluate solves the glass envelope energy balance for the configured
inputs and prints the loss coefficient, heat removal factor, useful gain
and outlet temperature.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := calculator.NewCalculator(cfg)
		result, err := c.Run()
		if err != nil {
			return err
		}
		return report.WriteTable(cmd.OutOrStdout(), c.Inputs(), result)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Compare the literature case against its published result",
	Long: `validate evaluates the built-in literature case with the optical
efficiency left out of the useful gain, the setting the published values
were produced with, and prints the percentage errors.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := calculator.Evaluate(calculator.DefaultInputs(), calculator.BenchmarkOptions())
		if err != nil {
			return err
		}
		v := report.Compare(result, calculator.DefaultBenchmark())
		if err := report.WriteValidation(cmd.OutOrStdout(), v); err != nil {
			return err
		}
		if !v.Within(tolerance) {
			return fmt.Errorf("validation error above %g%%: Q_u %.2f%%, T_out %.2f%%", tolerance, v.GainError, v.OutletError)
		}
		return nil
	},
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep one input over a range",
	Long: `sweep evaluates the configured case at evenly spaced values of one
input and writes one csv row per value. Points that fail keep their error
message in the error column.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := calculator.Span(sweepFrom, sweepTo, sweepSteps)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		points, err := calculator.Sweep(ctx, cfg.Inputs, cfg.Options, sweepParam, values, cfg.Workers, nil)
		if err != nil {
			return err
		}
		s := calculator.Summarize(points)
		log.WithFields(log.Fields{
			"param":     sweepParam,
			"points":    s.Points,
			"failed":    s.Failed,
			"meanGain":  s.MeanGain,
			"minGain":   s.MinGain,
			"maxGain":   s.MaxGain,
			"minOutlet": s.MinOutlet,
			"maxOutlet": s.MaxOutlet,
		}).Info("参数扫描完成")

		return withOutput(cmd, func(w io.Writer) error {
			return report.WriteSweepCSV(w, points)
		})
	},
}

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Evaluate an hourly irradiance profile",
	Long: `daily evaluates each hour of an irradiance profile as an independent
steady state and reports the energy collected over the day.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		profile := calculator.DefaultProfile()
		if profileFile != "" {
			f, err := os.Open(profileFile)
			if err != nil {
				return err
			}
			defer f.Close()
			if profile, err = report.ReadProfileCSV(f); err != nil {
				return err
			}
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		d, err := calculator.RunDaily(ctx, cfg.Inputs, cfg.Options, profile, cfg.Workers)
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"hours":       len(d.Hours),
			"collectedMJ": d.CollectedEnergy / 1e6,
			"lostMJ":      d.LostEnergy / 1e6,
			"lossHours":   d.LossHours,
			"peakGainW":   d.PeakGain,
		}).Info("逐时计算完成")

		return withOutput(cmd, func(w io.Writer) error {
			return report.WriteDailyCSV(w, d.Hours)
		})
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the websocket evaluation service",
	Long: `serve listens for websocket connections on /ws. Each connection keeps
its own inputs and result history.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if addr == "" {
			addr = cfg.Addr
		}
		upgrader := websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		}
		return server.NewServer(addr, upgrader, cfg).Serve()
	},
}

// 写入 --out 指定的文件，未指定时写标准输出
func withOutput(cmd *cobra.Command, f func(w io.Writer) error) error {
	if outFile == "" {
		return f(cmd.OutOrStdout())
	}
	file, err := os.Create(outFile)
	if err != nil {
		return err
	}
	if err := f(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/IOVASCON/projeto-csv-super/internal/config"
)

var errUnexpectedArgs = errors.New("unexpected arguments")

// parseFlags overrides cfg with the flags present in args. Flags that are
// not given keep the loaded value. Values following -segmentos up to the
// next flag are all taken as segments, so both "-segmentos A,B" and
// "-segmentos A B" work.
func parseFlags(args []string, cfg *config.Config, out io.Writer) error {
	fs := flag.NewFlagSet("kpigen", flag.ContinueOnError)
	fs.SetOutput(out)

	fs.IntVar(&cfg.Records, "registros", cfg.Records, "Number of records in general mode")
	fs.Func("segmentos", "Segments drawn for each record, comma or space separated (default "+strings.Join(cfg.Segments, ",")+")",
		func(v string) error {
			cfg.Segments = splitList(v)
			return nil
		})
	fs.StringVar(&cfg.StartDate, "data_inicio", cfg.StartDate, "Start date (YYYY-MM-DD)")
	fs.StringVar(&cfg.EndDate, "data_fim", cfg.EndDate, "End date (YYYY-MM-DD)")
	fs.Float64Var(&cfg.OutlierProbability, "outliers", cfg.OutlierProbability, "Outlier probability per record (0.01 = 1%)")
	fs.StringVar(&cfg.Output, "arquivo_saida", cfg.Output, "Output CSV file")

	fs.BoolFunc("modo_hotel_unico", "Generate the detailed single-hotel dataset", func(v string) error {
		if v == "false" {
			cfg.Mode = config.ModeGeneral
			return nil
		}
		cfg.Mode = config.ModeHotel
		return nil
	})
	fs.StringVar(&cfg.HotelName, "nome_hotel", cfg.HotelName, "Hotel name (hotel mode)")
	fs.IntVar(&cfg.TotalRooms, "total_quartos", cfg.TotalRooms, "Total rooms (hotel mode)")
	fs.IntVar(&cfg.MaxCustomersPerDay, "max_clientes_por_dia", cfg.MaxCustomersPerDay, "Maximum customers arriving per day (hotel mode)")

	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed; 0 seeds from the clock")
	fs.StringVar(&cfg.ChainMode, "chain", cfg.ChainMode, "Drift chain mode: global or segment")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Concurrent chains in segment chain mode")
	fs.Float64Var(&cfg.DriftScale, "drift_scale", cfg.DriftScale, "Multiplier applied to every drift step")
	fs.BoolVar(&cfg.Progress, "progress", cfg.Progress, "Show a progress bar on stderr")
	fs.StringVar(&cfg.MetricsFile, "metrics_file", cfg.MetricsFile, "Write a Prometheus textfile snapshot here")
	fs.StringVar(&cfg.MetricsNamespace, "metrics_namespace", cfg.MetricsNamespace, "Namespace of the exported metrics")
	fs.StringVar(&cfg.LogLevel, "log_level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFormat, "log_format", cfg.LogFormat, "Log format: text or json")

	if err := fs.Parse(joinSegments(args)); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(out, "%s: %s\n", errUnexpectedArgs, strings.Join(fs.Args(), " "))
		fs.Usage()
		return fmt.Errorf("%w: %s", errUnexpectedArgs, strings.Join(fs.Args(), " "))
	}
	return nil
}

// joinSegments folds the bare values after -segmentos into a single
// comma-separated value.
func joinSegments(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			return append(out, args[i:]...)
		}

		name, inline, hasInline := strings.Cut(strings.TrimLeft(a, "-"), "=")
		if !strings.HasPrefix(a, "-") || name != "segmentos" {
			out = append(out, a)
			continue
		}

		var values []string
		if hasInline {
			values = append(values, inline)
		}
		for i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			i++
			values = append(values, args[i])
		}
		if len(values) == 0 {
			out = append(out, a)
			continue
		}
		out = append(out, "-segmentos="+strings.Join(values, ","))
	}
	return out
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IOVASCON/projeto-csv-super/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestParseFlags(t *testing.T) {
	convey.Convey("Given a loaded config", t, func() {
		cfg := config.New()
		cfg.Records = 10
		var out bytes.Buffer

		convey.Convey("When no flags are given", func() {
			err := parseFlags(nil, cfg, &out)

			convey.Convey("Then loaded values are kept", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Records, convey.ShouldEqual, 10)
				convey.So(cfg.Mode, convey.ShouldEqual, config.ModeGeneral)
				convey.So(len(cfg.Segments), convey.ShouldEqual, 10)
			})
		})

		convey.Convey("When general flags are given", func() {
			err := parseFlags([]string{
				"-registros", "25",
				"-segmentos", "Varejo, TI,,Hotelaria",
				"-data_inicio", "2021-01-01",
				"-outliers", "0.5",
				"-seed", "7",
				"-chain", "segment",
			}, cfg, &out)

			convey.Convey("Then only those values change", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Records, convey.ShouldEqual, 25)
				convey.So(cfg.Segments, convey.ShouldResemble, []string{"Varejo", "TI", "Hotelaria"})
				convey.So(cfg.StartDate, convey.ShouldEqual, "2021-01-01")
				convey.So(cfg.EndDate, convey.ShouldEqual, "2020-12-31")
				convey.So(cfg.OutlierProbability, convey.ShouldEqual, 0.5)
				convey.So(cfg.Seed, convey.ShouldEqual, int64(7))
				convey.So(cfg.ChainMode, convey.ShouldEqual, config.ChainSegment)
			})
		})

		convey.Convey("When the hotel switch is given", func() {
			err := parseFlags([]string{"-modo_hotel_unico", "-total_quartos", "20", "-nome_hotel", "Pousada"}, cfg, &out)

			convey.Convey("Then hotel mode is selected", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Mode, convey.ShouldEqual, config.ModeHotel)
				convey.So(cfg.TotalRooms, convey.ShouldEqual, 20)
				convey.So(cfg.HotelName, convey.ShouldEqual, "Pousada")
			})
		})

		convey.Convey("When segments are given as separate values", func() {
			err := parseFlags([]string{
				"-segmentos", "Aviação", "Finanças", "Metalurgia",
				"--arquivo_saida", "x.csv",
				"-data_fim", "2020-06-30",
			}, cfg, &out)

			convey.Convey("Then every value is a segment and later flags still apply", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Segments, convey.ShouldResemble, []string{"Aviação", "Finanças", "Metalurgia"})
				convey.So(cfg.Output, convey.ShouldEqual, "x.csv")
				convey.So(cfg.EndDate, convey.ShouldEqual, "2020-06-30")
			})
		})

		convey.Convey("When the inline form is followed by more values", func() {
			err := parseFlags([]string{"--segmentos=TI,Banco", "Varejo"}, cfg, &out)

			convey.Convey("Then all of them are kept", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Segments, convey.ShouldResemble, []string{"TI", "Banco", "Varejo"})
			})
		})

		convey.Convey("When positional arguments are left over", func() {
			err := parseFlags([]string{"-registros", "5", "extra", "-arquivo_saida", "x.csv"}, cfg, &out)

			convey.Convey("Then parsing fails instead of dropping them", func() {
				convey.So(errors.Is(err, errUnexpectedArgs), convey.ShouldBeTrue)
				convey.So(out.String(), convey.ShouldContainSubstring, "extra -arquivo_saida x.csv")
				convey.So(cfg.Output, convey.ShouldEqual, "dados.csv")
			})
		})

		convey.Convey("When an unknown flag is given", func() {
			err := parseFlags([]string{"-nope"}, cfg, &out)

			convey.Convey("Then parsing fails with usage on out", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(out.String(), convey.ShouldContainSubstring, "registros")
			})
		})
	})
}

func TestRun(t *testing.T) {
	convey.Convey("Given a temporary output path", t, func() {
		path := filepath.Join(t.TempDir(), "dados.csv")
		var stdout, stderr bytes.Buffer

		convey.Convey("When a small seeded general run is executed", func() {
			code := run([]string{
				"-registros", "12",
				"-seed", "3",
				"-progress=false",
				"-arquivo_saida", path,
			}, &stdout, &stderr)

			convey.Convey("Then it exits cleanly and reports the file", func() {
				convey.So(code, convey.ShouldEqual, exitOK)
				convey.So(stdout.String(), convey.ShouldEqual,
					"Arquivo '"+path+"' criado no modo original com 12 registros.\n")
				data, err := os.ReadFile(path)
				convey.So(err, convey.ShouldBeNil)
				convey.So(strings.Count(string(data), "\n"), convey.ShouldEqual, 13)
			})
		})

		convey.Convey("When the date range is inverted", func() {
			code := run([]string{
				"-data_inicio", "2021-01-01",
				"-data_fim", "2020-01-01",
				"-progress=false",
				"-arquivo_saida", path,
			}, &stdout, &stderr)

			convey.Convey("Then it fails before writing", func() {
				convey.So(code, convey.ShouldEqual, exitError)
				_, err := os.Stat(path)
				convey.So(os.IsNotExist(err), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When arguments are left over", func() {
			code := run([]string{"-progress=false", "-arquivo_saida", path, "sobra"}, &stdout, &stderr)

			convey.Convey("Then it exits with a usage error and writes nothing", func() {
				convey.So(code, convey.ShouldEqual, exitUsage)
				_, err := os.Stat(path)
				convey.So(os.IsNotExist(err), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When JSON logs and a metrics namespace are requested", func() {
			prom := filepath.Join(t.TempDir(), "kpigen.prom")
			code := run([]string{
				"-registros", "4",
				"-seed", "5",
				"-progress=false",
				"-log_format", "json",
				"-metrics_namespace", "bi",
				"-metrics_file", prom,
				"-arquivo_saida", path,
			}, &stdout, &stderr)

			convey.Convey("Then logs are JSON and metrics use the namespace", func() {
				convey.So(code, convey.ShouldEqual, exitOK)
				convey.So(stderr.String(), convey.ShouldContainSubstring, `"msg":"dataset written"`)
				data, err := os.ReadFile(prom)
				convey.So(err, convey.ShouldBeNil)
				convey.So(string(data), convey.ShouldContainSubstring, `bi_generator_rows_written_total{mode="general"} 4`)
			})
		})

		convey.Convey("When help is requested", func() {
			code := run([]string{"-h"}, &stdout, &stderr)

			convey.Convey("Then it exits with success", func() {
				convey.So(code, convey.ShouldEqual, exitOK)
			})
		})
	})
}

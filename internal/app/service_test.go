package service_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/IOVASCON/projeto-csv-super/internal/adapters/csvout"
	service "github.com/IOVASCON/projeto-csv-super/internal/app"
	"github.com/IOVASCON/projeto-csv-super/internal/config"
	"github.com/IOVASCON/projeto-csv-super/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func kpiParams(n int) service.KPIParams {
	return service.KPIParams{
		Records:  n,
		Segments: []string{"Hotelaria", "Varejo", "TI", "Saúde"},
		Start:    day("2020-01-01"),
		End:      day("2020-03-31"),
	}
}

func TestGenerateKPI(t *testing.T) {
	Convey("Given a seeded runner", t, func() {
		ctx := context.Background()
		runner := service.New(service.WithSeed(42))

		Convey("When 200 records are generated", func() {
			recs, err := runner.GenerateKPI(ctx, kpiParams(200))
			So(err, ShouldBeNil)
			So(len(recs), ShouldEqual, 200)

			Convey("Then IDs are a permutation of 1..N", func() {
				seen := make(map[int]bool)
				for _, r := range recs {
					So(r.ID, ShouldBeBetweenOrEqual, 1, 200)
					seen[r.ID] = true
				}
				So(len(seen), ShouldEqual, 200)
			})

			Convey("Then records are sorted by date inside the range", func() {
				for i, r := range recs {
					So(r.Date.Before(day("2020-01-01")), ShouldBeFalse)
					So(r.Date.After(day("2020-03-31")), ShouldBeFalse)
					if i > 0 {
						So(recs[i-1].DateString() <= r.DateString(), ShouldBeTrue)
					}
				}
			})

			Convey("Then equal dates keep generation order", func() {
				for i := 1; i < len(recs); i++ {
					if recs[i-1].DateString() == recs[i].DateString() {
						So(recs[i-1].ID, ShouldBeLessThan, recs[i].ID)
					}
				}
			})

			Convey("Then segments come from the list", func() {
				for _, r := range recs {
					So(r.Segment, ShouldBeIn, []string{"Hotelaria", "Varejo", "TI", "Saúde"})
				}
			})
		})

		Convey("When the same seed runs twice", func() {
			a, errA := runner.GenerateKPI(ctx, kpiParams(60))
			b, errB := service.New(service.WithSeed(42)).GenerateKPI(ctx, kpiParams(60))

			Convey("Then the rows are identical", func() {
				So(errA, ShouldBeNil)
				So(errB, ShouldBeNil)
				So(csvout.KPIRows(a), ShouldResemble, csvout.KPIRows(b))
			})
		})

		Convey("When the outlier probability is zero and drift is frozen", func() {
			frozen := service.New(service.WithSeed(7), service.WithOutlierProbability(0), service.WithDriftScale(0))
			recs, err := frozen.GenerateKPI(ctx, service.KPIParams{
				Records:  20,
				Segments: []string{"Hotelaria"},
				Start:    day("2021-06-01"),
				End:      day("2021-06-30"),
			})

			Convey("Then drifted metrics never move along the chain", func() {
				So(err, ShouldBeNil)
				for _, r := range recs {
					So(r.OccupancyRate, ShouldNotBeNil)
					So(*r.OccupancyRate, ShouldEqual, *recs[0].OccupancyRate)
				}
			})
		})
	})
}

func TestGenerateKPISegmentChains(t *testing.T) {
	Convey("Given segment chain mode", t, func() {
		ctx := context.Background()
		serial := service.New(service.WithSeed(99), service.WithChainMode(config.ChainSegment), service.WithWorkers(1))
		parallel := service.New(service.WithSeed(99), service.WithChainMode(config.ChainSegment), service.WithWorkers(4))

		Convey("When one and four workers generate the same seed", func() {
			a, errA := serial.GenerateKPI(ctx, kpiParams(150))
			b, errB := parallel.GenerateKPI(ctx, kpiParams(150))

			Convey("Then the output does not depend on scheduling", func() {
				So(errA, ShouldBeNil)
				So(errB, ShouldBeNil)
				So(len(a), ShouldEqual, 150)
				So(csvout.KPIRows(a), ShouldResemble, csvout.KPIRows(b))
			})

			Convey("Then every slot is filled once", func() {
				seen := make(map[int]bool)
				for _, r := range b {
					So(r, ShouldNotBeNil)
					seen[r.ID] = true
				}
				So(len(seen), ShouldEqual, 150)
			})
		})
	})
}

func TestGenerateKPIEdges(t *testing.T) {
	Convey("Given a runner", t, func() {
		ctx := context.Background()
		runner := service.New(service.WithSeed(1))

		Convey("When no records are requested", func() {
			recs, err := runner.GenerateKPI(ctx, kpiParams(0))

			Convey("Then nothing is generated", func() {
				So(err, ShouldBeNil)
				So(recs, ShouldBeEmpty)
			})
		})

		Convey("When the segment list is empty", func() {
			p := kpiParams(5)
			p.Segments = nil
			_, err := runner.GenerateKPI(ctx, p)

			Convey("Then ErrNoSegments is returned", func() {
				So(errors.Is(err, service.ErrNoSegments), ShouldBeTrue)
			})
		})

		Convey("When the range is inverted", func() {
			p := kpiParams(5)
			p.Start, p.End = p.End, p.Start
			_, err := runner.GenerateKPI(ctx, p)

			Convey("Then ErrInvalidRange is returned", func() {
				So(errors.Is(err, service.ErrInvalidRange), ShouldBeTrue)
			})
		})

		Convey("When the context is cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			_, errGlobal := runner.GenerateKPI(cctx, kpiParams(5))
			_, errSegment := service.New(service.WithSeed(1), service.WithChainMode(config.ChainSegment)).
				GenerateKPI(cctx, kpiParams(5))

			Convey("Then both chain modes stop with the context error", func() {
				So(errors.Is(errGlobal, context.Canceled), ShouldBeTrue)
				So(errors.Is(errSegment, context.Canceled), ShouldBeTrue)
			})
		})
	})
}

func TestGenerateHotel(t *testing.T) {
	Convey("Given a seeded runner with a progress bar", t, func() {
		var progress bytes.Buffer
		runner := service.New(service.WithSeed(5), service.WithProgress(&progress))

		Convey("When a two-day hotel run is generated", func() {
			stays, err := runner.GenerateHotel(context.Background(), service.HotelParams{
				HotelName:          "Test Hotel",
				TotalRooms:         10,
				Start:              day("2024-01-01"),
				End:                day("2024-01-02"),
				MaxCustomersPerDay: 3,
			})

			Convey("Then between 2 and 6 stays are returned with progress shown", func() {
				So(err, ShouldBeNil)
				So(len(stays), ShouldBeBetweenOrEqual, 2, 6)
				So(progress.Len(), ShouldBeGreaterThan, 0)
			})
		})
	})
}

func testConfig(t *testing.T, mode string) *config.Config {
	cfg := config.New()
	cfg.Mode = mode
	cfg.Records = 30
	cfg.Seed = 2024
	cfg.Progress = false
	cfg.Output = filepath.Join(t.TempDir(), "out.csv")
	cfg.StartDate = "2024-01-01"
	cfg.EndDate = "2024-01-05"
	return cfg
}

func TestRun(t *testing.T) {
	Convey("Given a general-mode config", t, func() {
		cfg := testConfig(t, config.ModeGeneral)
		cfg.MetricsFile = filepath.Join(filepath.Dir(cfg.Output), "kpigen.prom")

		Convey("When the run completes", func() {
			sum, err := service.Run(context.Background(), cfg)

			Convey("Then the CSV has a header and one row per record", func() {
				So(err, ShouldBeNil)
				So(sum.Rows, ShouldEqual, 30)
				So(sum.RunID, ShouldNotBeEmpty)

				data, readErr := os.ReadFile(cfg.Output)
				So(readErr, ShouldBeNil)
				lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
				So(len(lines), ShouldEqual, 31)
				So(lines[0], ShouldStartWith, "registro_id,data,ano,mes,dia,segmento")
			})

			Convey("Then a metrics snapshot is written", func() {
				data, readErr := os.ReadFile(cfg.MetricsFile)
				So(readErr, ShouldBeNil)
				So(string(data), ShouldContainSubstring, "kpigen_generator_records_generated_total")
			})
		})
	})

	Convey("Given a hotel-mode config", t, func() {
		cfg := testConfig(t, config.ModeHotel)

		Convey("When the run completes", func() {
			sum, err := service.Run(context.Background(), cfg)

			Convey("Then the hotel header is written", func() {
				So(err, ShouldBeNil)
				data, readErr := os.ReadFile(cfg.Output)
				So(readErr, ShouldBeNil)
				So(string(data), ShouldStartWith, strings.Join(csvout.HotelHeader, ",")+"\n")
				So(strings.Count(string(data), "\n"), ShouldEqual, sum.Rows+1)
			})
		})
	})

	Convey("Given an invalid config", t, func() {
		cfg := testConfig(t, "bogus")

		Convey("Then Run rejects it before writing", func() {
			_, err := service.Run(context.Background(), cfg)
			So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
			_, statErr := os.Stat(cfg.Output)
			So(os.IsNotExist(statErr), ShouldBeTrue)
		})

		Convey("Then a Runner reports the unknown mode", func() {
			_, err := service.New().Run(context.Background(), cfg)
			So(errors.Is(err, service.ErrUnknownMode), ShouldBeTrue)
		})
	})

	Convey("Given a cancelled context", t, func() {
		cfg := testConfig(t, config.ModeGeneral)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		Convey("Then nothing is written", func() {
			_, err := service.Run(ctx, cfg)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
			_, statErr := os.Stat(cfg.Output)
			So(os.IsNotExist(statErr), ShouldBeTrue)
		})
	})
}

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			metricsEnabledOpt := WithMetricsEnabled(true)

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(metricsEnabledOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(true),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with nil histogram buckets", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithHistogramBuckets(nil), WithPrometheusRegistry(registry))

			Convey("Then it should fall back to the defaults", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with an empty namespace", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithNamespace(""), WithPrometheusRegistry(registry))

			Convey("Then it should keep the default namespace", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given metrics recording", t, func() {
		Convey("When recording dataset metrics", func() {
			Convey("Then it should record load durations", func() {
				So(func() {
					RecordDatasetLoadDuration(1200.0)
					RecordDatasetLoadDuration(4500.0)
				}, ShouldNotPanic)
			})

			Convey("And it should record load failures", func() {
				So(func() {
					RecordDatasetLoadFailure()
					RecordDatasetLoadFailure()
				}, ShouldNotPanic)
			})

			Convey("And it should update dataset gauges", func() {
				So(func() {
					UpdateDatasetRows(50000)
					UpdateDatasetEntities(240)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording query metrics", func() {
			Convey("Then it should record queries by kind", func() {
				So(func() {
					RecordQuery("timeseries")
					RecordQuery("ranking")
					RecordQuery("summary")
				}, ShouldNotPanic)
			})

			Convey("And it should record query durations", func() {
				So(func() {
					RecordQueryDuration("timeseries", 2.0)
					RecordQueryDuration("ranking", 5.0)
					RecordQueryDuration("summary", 1.0)
				}, ShouldNotPanic)
			})

			Convey("And it should record empty results", func() {
				So(func() {
					RecordEmptyResult("timeseries")
					RecordEmptyResult("summary")
				}, ShouldNotPanic)
			})
		})

		Convey("When recording HTTP metrics", func() {
			Convey("Then it should record HTTP requests", func() {
				So(func() {
					RecordHTTPRequest("timeseries", "GET", "200")
					RecordHTTPRequest("ranking", "GET", "200")
					RecordHTTPRequest("summary", "GET", "400")
				}, ShouldNotPanic)
			})

			Convey("And it should record HTTP request duration", func() {
				So(func() {
					RecordHTTPRequestDuration("timeseries", "GET", "200", 5.0)
					RecordHTTPRequestDuration("ranking", "GET", "200", 10.0)
				}, ShouldNotPanic)
			})

			Convey("And it should record errors by endpoint", func() {
				So(func() {
					RecordErrorByEndpoint("timeseries", "GET", "client_error")
					RecordErrorByEndpoint("summary", "GET", "server_error")
				}, ShouldNotPanic)
			})
		})

		Convey("When recording system metrics", func() {
			Convey("Then it should update system memory usage", func() {
				So(func() {
					UpdateSystemMemoryUsage(1024 * 1024 * 100) // 100MB
					UpdateSystemMemoryUsage(1024 * 1024 * 200) // 200MB
				}, ShouldNotPanic)
			})

			Convey("And it should update system goroutine count", func() {
				So(func() {
					UpdateSystemGoroutineCount(100)
					UpdateSystemGoroutineCount(200)
				}, ShouldNotPanic)
			})

			Convey("And it should record system GC pause time", func() {
				So(func() {
					RecordSystemGCPauseTime(1.0)
					RecordSystemGCPauseTime(2.0)
				}, ShouldNotPanic)
			})
		})
	})
}

func TestMetricsEdgeCases(t *testing.T) {
	Convey("Given metrics edge cases", t, func() {
		Convey("When recording metrics with edge values", func() {
			Convey("And using zero values", func() {
				So(func() {
					UpdateDatasetRows(0)
					UpdateDatasetEntities(0)
					RecordQueryDuration("timeseries", 0.0)
					RecordHTTPRequestDuration("test", "GET", "200", 0.0)
				}, ShouldNotPanic)
			})

			Convey("And using very large values", func() {
				So(func() {
					UpdateDatasetRows(10_000_000)
					RecordDatasetLoadDuration(600_000.0)
					RecordHTTPRequestDuration("test", "GET", "200", 30000.0)
				}, ShouldNotPanic)
			})

			Convey("And using empty strings", func() {
				So(func() {
					RecordHTTPRequest("", "", "200")
					RecordHTTPRequestDuration("", "", "200", 10.0)
					RecordErrorByEndpoint("", "", "")
					RecordQuery("")
				}, ShouldNotPanic)
			})
		})
	})
}

func TestMetricsConcurrency(t *testing.T) {
	Convey("Given metrics concurrency", t, func() {
		Convey("When recording metrics concurrently", func() {
			done := make(chan bool, 10)

			for i := 0; i < 10; i++ {
				go func(id int) {
					for j := 0; j < 100; j++ {
						RecordQuery("timeseries")
						UpdateDatasetRows(50000 + j)
						RecordQueryDuration("ranking", float64(j))
						RecordHTTPRequest("timeseries", "GET", "200")
					}
					done <- true
				}(i)
			}

			for i := 0; i < 10; i++ {
				<-done
			}

			Convey("Then it should handle concurrent access without panics", func() {
				So(true, ShouldBeTrue) // If we get here, no panics occurred
			})
		})
	})
}

func TestGetRegistry(t *testing.T) {
	Convey("Given the metrics package", t, func() {
		Convey("When fetching the exposition registry", func() {
			registry := GetRegistry()

			Convey("Then it should return the custom registry", func() {
				So(registry, ShouldNotBeNil)

				families, err := registry.Gather()
				So(err, ShouldBeNil)
				So(families, ShouldNotBeNil)
			})
		})
	})
}

package repository_test

import (
	"context"
	"testing"

	repository "github.com/carbonlens/carbonlens/internal/adapters/repository"
	"github.com/carbonlens/carbonlens/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemStore(t *testing.T) {
	Convey("Given loader output", t, func() {
		ctx := context.Background()
		observations := []model.Observation{
			{Entity: "World", Year: 2019, CO2: 36000},
			{Entity: "China", Year: 2019, CO2: 10100},
			{Entity: "China", Year: 2020, CO2: 10600},
			{Entity: "Albania", Year: 1990, CO2: 6},
		}

		Convey("When building a store", func() {
			store := repository.NewMemStore(ctx, observations, repository.WithMetrics(false))

			Convey("Then All returns every row", func() {
				So(store.Len(ctx), ShouldEqual, 4)
				So(len(store.All(ctx)), ShouldEqual, 4)
			})

			Convey("And Entities returns distinct names, sorted", func() {
				entities := store.Entities(ctx)
				So(entities, ShouldResemble, []string{"Albania", "China", "World"})
			})

			Convey("And YearBounds spans the dataset", func() {
				span, ok := store.YearBounds(ctx)
				So(ok, ShouldBeTrue)
				So(span.Min, ShouldEqual, 1990)
				So(span.Max, ShouldEqual, 2020)
			})
		})

		Convey("When building a store from an empty dataset", func() {
			store := repository.NewMemStore(ctx, []model.Observation{}, repository.WithMetrics(false))

			Convey("Then it reports emptiness instead of fake bounds", func() {
				So(store.Len(ctx), ShouldEqual, 0)
				So(len(store.Entities(ctx)), ShouldEqual, 0)

				_, ok := store.YearBounds(ctx)
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When building a store from a single row", func() {
			store := repository.NewMemStore(ctx, observations[:1], repository.WithMetrics(false))

			Convey("Then the span collapses to that year", func() {
				span, ok := store.YearBounds(ctx)
				So(ok, ShouldBeTrue)
				So(span.Min, ShouldEqual, 2019)
				So(span.Max, ShouldEqual, 2019)
			})
		})

		Convey("When the store is used as a Store interface", func() {
			var store repository.Store = repository.NewMemStore(ctx, observations, repository.WithMetrics(false))

			Convey("Then the interface view matches the concrete one", func() {
				So(store.Len(ctx), ShouldEqual, 4)
			})
		})
	})
}

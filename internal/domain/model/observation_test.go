package model_test

import (
	"encoding/json"
	"testing"

	"github.com/carbonlens/carbonlens/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestObservation_Key(t *testing.T) {
	Convey("Given observations", t, func() {
		Convey("When two observations share entity and year", func() {
			a := model.Observation{Entity: "Germany", Year: 1990, CO2: 1000}
			b := model.Observation{Entity: "Germany", Year: 1990, CO2: 999}

			Convey("Then their keys are equal", func() {
				So(a.Key(), ShouldEqual, b.Key())
			})
		})

		Convey("When observations differ in entity or year", func() {
			a := model.Observation{Entity: "Germany", Year: 1990}
			b := model.Observation{Entity: "Germany", Year: 1991}
			c := model.Observation{Entity: "France", Year: 1990}

			Convey("Then their keys differ", func() {
				So(a.Key(), ShouldNotEqual, b.Key())
				So(a.Key(), ShouldNotEqual, c.Key())
			})
		})

		Convey("When an entity name could collide with a year suffix", func() {
			// "Niger" + 1990 must not collide with "Nige" + "r1990"-style
			// concatenations; the NUL separator prevents it.
			a := model.Observation{Entity: "Country 1", Year: 990}
			b := model.Observation{Entity: "Country 19", Year: 90}

			Convey("Then the keys stay distinct", func() {
				So(a.Key(), ShouldNotEqual, b.Key())
			})
		})
	})
}

func TestObservation_JSON(t *testing.T) {
	Convey("Given an observation with optional fields", t, func() {
		perCapita := 9.2
		population := int64(83_000_000)
		obs := model.Observation{
			Entity:       "Germany",
			Year:         2020,
			CO2:          644.3,
			CO2PerCapita: &perCapita,
			Population:   &population,
		}

		Convey("When marshalled", func() {
			data, err := json.Marshal(obs)
			So(err, ShouldBeNil)

			Convey("Then it uses the wire field names", func() {
				s := string(data)
				So(s, ShouldContainSubstring, `"entity":"Germany"`)
				So(s, ShouldContainSubstring, `"year":2020`)
				So(s, ShouldContainSubstring, `"co2":644.3`)
				So(s, ShouldContainSubstring, `"co2_per_capita":9.2`)
				So(s, ShouldContainSubstring, `"population":83000000`)
			})
		})

		Convey("When optional fields are nil", func() {
			bare := model.Observation{Entity: "Asia", Year: 2020, CO2: 20000}
			data, err := json.Marshal(bare)
			So(err, ShouldBeNil)

			Convey("Then they are omitted from the payload", func() {
				s := string(data)
				So(s, ShouldNotContainSubstring, "co2_per_capita")
				So(s, ShouldNotContainSubstring, "population")
			})
		})
	})
}

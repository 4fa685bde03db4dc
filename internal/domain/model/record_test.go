package model_test

import (
	"encoding/json"
	"testing"

	model "github.com/highOnBits/time-guess/internal/domain/model"
	"github.com/highOnBits/time-guess/internal/domain/timeofday"
	. "github.com/smartystreets/goconvey/convey"
)

func mustTime(s string) timeofday.Time {
	t, err := timeofday.Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDailyRecord(t *testing.T) {
	Convey("Given an empty record", t, func() {
		rec := model.DailyRecord{}

		Convey("Then it has no guesses and is not revealed", func() {
			So(rec.GuessCount(), ShouldEqual, 0)
			So(rec.Revealed(), ShouldBeFalse)
		})
	})

	Convey("Given a record with guesses and an actual time", t, func() {
		actual := mustTime("17:05")
		rec := model.DailyRecord{
			Guesses: map[string]timeofday.Time{
				"Gaurav":  mustTime("17:00"),
				"Upanshu": mustTime("17:15"),
			},
			ActualTime: &actual,
		}

		Convey("Then counts and reveal state reflect the contents", func() {
			So(rec.GuessCount(), ShouldEqual, 2)
			So(rec.Revealed(), ShouldBeTrue)
		})

		Convey("When cloned", func() {
			clone := rec.Clone()
			clone.Guesses["Yatin"] = mustTime("16:50")
			*clone.ActualTime = mustTime("18:00")

			Convey("Then mutations do not leak back", func() {
				So(rec.GuessCount(), ShouldEqual, 2)
				So(rec.ActualTime.String(), ShouldEqual, "17:05")
			})
		})
	})
}

func TestDocumentRoundTrip(t *testing.T) {
	Convey("Given a document with revealed and unrevealed days", t, func() {
		actual := mustTime("16:10")
		doc := model.Document{
			"2025-07-31": {
				Guesses: map[string]timeofday.Time{
					"Gaurav":  mustTime("16:10"),
					"Upanshu": mustTime("16:20"),
					"Yatin":   mustTime("16:30"),
				},
				ActualTime: &actual,
			},
			"2025-08-01": {
				Guesses: map[string]timeofday.Time{
					"Gaurav": mustTime("15:00"),
				},
			},
		}

		Convey("When serialized and deserialized", func() {
			data, err := json.Marshal(doc)
			So(err, ShouldBeNil)

			var back model.Document
			So(json.Unmarshal(data, &back), ShouldBeNil)

			Convey("Then the mapping is reproduced exactly", func() {
				So(back, ShouldResemble, doc)
			})

			Convey("And the wire shape uses HH:MM strings", func() {
				So(string(data), ShouldContainSubstring, `"actual_time":"16:10"`)
				So(string(data), ShouldContainSubstring, `"Yatin":"16:30"`)
			})
		})

		Convey("Then RevealedDates lists only revealed days", func() {
			So(doc.RevealedDates(), ShouldResemble, []string{"2025-07-31"})
		})

		Convey("When cloned", func() {
			clone := doc.Clone()
			delete(clone, "2025-07-31")
			clone["2025-08-01"].Guesses["Upanshu"] = mustTime("15:30")

			Convey("Then the original is untouched", func() {
				So(doc, ShouldContainKey, "2025-07-31")
				So(doc["2025-08-01"].GuessCount(), ShouldEqual, 1)
			})
		})
	})
}

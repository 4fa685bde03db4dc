package leaderboard_test

import (
	"testing"

	game "github.com/highOnBits/time-guess/internal/domain/game"
	"github.com/highOnBits/time-guess/internal/domain/leaderboard"
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

func testRoster() game.Roster {
	r, err := game.NewRoster("Gaurav", "Upanshu", "Yatin")
	if err != nil {
		panic(err)
	}
	return r
}

func revealedDay(actual string, guesses map[string]string) model.DailyRecord {
	rec := model.DailyRecord{Guesses: make(map[string]timeofday.Time, len(guesses))}
	for name, t := range guesses {
		rec.Guesses[name] = mustTime(t)
	}
	at := mustTime(actual)
	rec.ActualTime = &at
	return rec
}

func TestDayResults(t *testing.T) {
	roster := testRoster()

	Convey("Given the canonical example day", t, func() {
		rec := revealedDay("17:05", map[string]string{
			"Gaurav":  "17:00",
			"Upanshu": "17:15",
			"Yatin":   "16:50",
		})

		Convey("When computing the day's results", func() {
			results, err := leaderboard.DayResults(rec, roster)
			So(err, ShouldBeNil)

			Convey("Then misses are 5, 10, 15 and Gaurav wins", func() {
				So(results, ShouldHaveLength, 3)
				So(results[0].Name, ShouldEqual, "Gaurav")
				So(results[0].MissMinutes, ShouldEqual, 5)
				So(results[0].Winner, ShouldBeTrue)
				So(results[1].Name, ShouldEqual, "Upanshu")
				So(results[1].MissMinutes, ShouldEqual, 10)
				So(results[1].Winner, ShouldBeFalse)
				So(results[2].Name, ShouldEqual, "Yatin")
				So(results[2].MissMinutes, ShouldEqual, 15)
			})

			Convey("And misses come formatted for display", func() {
				So(results[0].Miss, ShouldEqual, "5m")
			})
		})
	})

	Convey("Given two participants tied at the smallest miss", t, func() {
		// Gaurav 5 under, Upanshu 5 over, Yatin 15 under.
		rec := revealedDay("17:05", map[string]string{
			"Gaurav":  "17:00",
			"Upanshu": "17:10",
			"Yatin":   "16:50",
		})

		Convey("When computing the day's results", func() {
			results, err := leaderboard.DayResults(rec, roster)
			So(err, ShouldBeNil)

			Convey("Then both tied participants are winners sharing rank 1", func() {
				So(results[0].Winner, ShouldBeTrue)
				So(results[1].Winner, ShouldBeTrue)
				So(results[0].Rank, ShouldEqual, 1)
				So(results[1].Rank, ShouldEqual, 1)
				So(results[2].Rank, ShouldEqual, 3)
				So(results[2].Winner, ShouldBeFalse)
			})
		})
	})

	Convey("Given an unrevealed day", t, func() {
		rec := model.DailyRecord{Guesses: map[string]timeofday.Time{"Gaurav": mustTime("17:00")}}

		Convey("Then results fail with ErrNotRevealed", func() {
			_, err := leaderboard.DayResults(rec, roster)
			So(err, ShouldWrap, leaderboard.ErrNotRevealed)
		})
	})

	Convey("Given a large miss", t, func() {
		rec := revealedDay("18:05", map[string]string{
			"Gaurav":  "17:00",
			"Upanshu": "18:00",
			"Yatin":   "18:10",
		})

		Convey("Then it is formatted with hours", func() {
			results, err := leaderboard.DayResults(rec, roster)
			So(err, ShouldBeNil)
			So(results[2].Name, ShouldEqual, "Gaurav")
			So(results[2].Miss, ShouldEqual, "1h 5m")
		})
	})
}

func TestStandings(t *testing.T) {
	roster := testRoster()

	Convey("Given a document with two revealed days and one in progress", t, func() {
		doc := model.Document{
			"2025-07-31": revealedDay("16:10", map[string]string{
				"Gaurav":  "16:10",
				"Upanshu": "16:20",
				"Yatin":   "16:30",
			}),
			"2025-08-02": revealedDay("14:23", map[string]string{
				"Gaurav":  "14:30",
				"Upanshu": "15:00",
				"Yatin":   "13:00",
			}),
			"2025-08-03": {
				Guesses: map[string]timeofday.Time{"Yatin": mustTime("12:00")},
			},
		}

		Convey("When computing standings", func() {
			standings := leaderboard.Standings(doc, roster)

			Convey("Then Gaurav leads with two wins", func() {
				So(standings, ShouldHaveLength, 3)
				So(standings[0].Name, ShouldEqual, "Gaurav")
				So(standings[0].Wins, ShouldEqual, 2)
				So(standings[0].Rank, ShouldEqual, 1)
			})

			Convey("And winless participants tie on rank, ordered by name", func() {
				So(standings[1].Name, ShouldEqual, "Upanshu")
				So(standings[2].Name, ShouldEqual, "Yatin")
				So(standings[1].Rank, ShouldEqual, 2)
				So(standings[2].Rank, ShouldEqual, 2)
			})

			Convey("And nobody's wins exceed the number of revealed days", func() {
				revealed := len(doc.RevealedDates())
				for _, s := range standings {
					So(s.Wins, ShouldBeLessThanOrEqualTo, revealed)
				}
			})

			Convey("And the unrevealed day contributed nothing", func() {
				for _, s := range standings {
					So(s.DaysPlayed, ShouldEqual, 2)
				}
			})

			Convey("And total miss minutes accumulate across days", func() {
				// Gaurav: 0 + 7; Upanshu: 10 + 37; Yatin: 20 + 83.
				So(standings[0].MissMinutes, ShouldEqual, 7)
				So(standings[1].MissMinutes, ShouldEqual, 47)
				So(standings[2].MissMinutes, ShouldEqual, 103)
			})
		})
	})

	Convey("Given a day where everyone ties", t, func() {
		doc := model.Document{
			"2025-08-05": revealedDay("12:10", map[string]string{
				"Gaurav":  "12:00",
				"Upanshu": "12:20",
				"Yatin":   "12:00",
			}),
		}

		Convey("Then every participant at the smallest miss is credited a win", func() {
			standings := leaderboard.Standings(doc, roster)
			byName := map[string]leaderboard.Standing{}
			for _, s := range standings {
				byName[s.Name] = s
			}
			So(byName["Gaurav"].Wins, ShouldEqual, 1)
			So(byName["Yatin"].Wins, ShouldEqual, 1)
			So(byName["Upanshu"].Wins, ShouldEqual, 0)
		})
	})

	Convey("Given an empty document", t, func() {
		standings := leaderboard.Standings(model.Document{}, roster)

		Convey("Then the full roster appears with zero wins in name order", func() {
			So(standings, ShouldHaveLength, 3)
			So(standings[0].Name, ShouldEqual, "Gaurav")
			So(standings[0].Wins, ShouldEqual, 0)
			So(standings[0].Rank, ShouldEqual, 1)
			So(standings[2].Rank, ShouldEqual, 1)
		})
	})
}

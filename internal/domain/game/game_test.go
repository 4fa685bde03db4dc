package game_test

import (
	"testing"

	game "github.com/highOnBits/time-guess/internal/domain/game"
	model "github.com/highOnBits/time-guess/internal/domain/model"
	"github.com/highOnBits/time-guess/internal/domain/timeofday"
	. "github.com/smartystreets/goconvey/convey"
)

const day = "2025-08-29"

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

func TestNewRoster(t *testing.T) {
	Convey("Given roster construction", t, func() {
		Convey("Then three unique names are accepted in order", func() {
			r, err := game.NewRoster("Gaurav", "Upanshu", "Yatin")
			So(err, ShouldBeNil)
			So(r, ShouldResemble, game.Roster{"Gaurav", "Upanshu", "Yatin"})
		})

		Convey("Then the wrong count is rejected", func() {
			_, err := game.NewRoster("Gaurav", "Upanshu")
			So(err, ShouldNotBeNil)
		})

		Convey("Then duplicates are rejected", func() {
			_, err := game.NewRoster("Gaurav", "Gaurav", "Yatin")
			So(err, ShouldNotBeNil)
		})

		Convey("Then blank names are rejected", func() {
			_, err := game.NewRoster("Gaurav", "  ", "Yatin")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSubmitGuess(t *testing.T) {
	roster := testRoster()

	Convey("Given an empty document", t, func() {
		doc := model.Document{}

		Convey("When a roster member guesses", func() {
			err := game.SubmitGuess(doc, roster, day, "Gaurav", mustTime("17:00"))

			Convey("Then the day's record is created with the guess", func() {
				So(err, ShouldBeNil)
				rec := game.Record(doc, day)
				So(rec.GuessCount(), ShouldEqual, 1)
				So(rec.Guesses["Gaurav"].String(), ShouldEqual, "17:00")
			})
		})

		Convey("When a stranger guesses", func() {
			err := game.SubmitGuess(doc, roster, day, "Mallory", mustTime("17:00"))

			Convey("Then it fails with ErrInvalidParticipant and stores nothing", func() {
				So(err, ShouldWrap, game.ErrInvalidParticipant)
				So(game.Record(doc, day).GuessCount(), ShouldEqual, 0)
			})
		})

		Convey("When a participant guesses twice", func() {
			So(game.SubmitGuess(doc, roster, day, "Gaurav", mustTime("17:00")), ShouldBeNil)
			err := game.SubmitGuess(doc, roster, day, "Gaurav", mustTime("18:00"))

			Convey("Then the resubmission is rejected and the first guess stands", func() {
				So(err, ShouldWrap, game.ErrDuplicateGuess)
				So(game.Record(doc, day).Guesses["Gaurav"].String(), ShouldEqual, "17:00")
			})
		})
	})

	Convey("Given a revealed day", t, func() {
		doc := model.Document{}
		So(game.SubmitGuess(doc, roster, day, "Gaurav", mustTime("17:00")), ShouldBeNil)
		So(game.SubmitGuess(doc, roster, day, "Upanshu", mustTime("17:15")), ShouldBeNil)
		So(game.SubmitGuess(doc, roster, day, "Yatin", mustTime("16:50")), ShouldBeNil)
		So(game.Reveal(doc, roster, day, mustTime("17:05")), ShouldBeNil)

		Convey("When anyone tries to guess", func() {
			err := game.SubmitGuess(doc, roster, day, "Gaurav", mustTime("17:30"))

			Convey("Then it fails with ErrAlreadyRevealed", func() {
				So(err, ShouldWrap, game.ErrAlreadyRevealed)
			})
		})
	})
}

func TestReveal(t *testing.T) {
	roster := testRoster()

	Convey("Given a day with fewer than three guesses", t, func() {
		doc := model.Document{}
		So(game.SubmitGuess(doc, roster, day, "Gaurav", mustTime("17:00")), ShouldBeNil)
		So(game.SubmitGuess(doc, roster, day, "Yatin", mustTime("16:50")), ShouldBeNil)

		Convey("When revealing the actual time", func() {
			err := game.Reveal(doc, roster, day, mustTime("17:05"))

			Convey("Then it fails with ErrIncompleteGuesses", func() {
				So(err, ShouldWrap, game.ErrIncompleteGuesses)
				So(game.Record(doc, day).Revealed(), ShouldBeFalse)
			})
		})
	})

	Convey("Given a day where everyone guessed", t, func() {
		doc := model.Document{}
		So(game.SubmitGuess(doc, roster, day, "Gaurav", mustTime("17:00")), ShouldBeNil)
		So(game.SubmitGuess(doc, roster, day, "Upanshu", mustTime("17:15")), ShouldBeNil)
		So(game.SubmitGuess(doc, roster, day, "Yatin", mustTime("16:50")), ShouldBeNil)

		Convey("When revealing the actual time", func() {
			err := game.Reveal(doc, roster, day, mustTime("17:05"))

			Convey("Then the day is revealed", func() {
				So(err, ShouldBeNil)
				rec := game.Record(doc, day)
				So(rec.Revealed(), ShouldBeTrue)
				So(rec.ActualTime.String(), ShouldEqual, "17:05")
			})

			Convey("And a second reveal fails with ErrAlreadyRevealed", func() {
				So(err, ShouldBeNil)
				So(game.Reveal(doc, roster, day, mustTime("18:00")), ShouldWrap, game.ErrAlreadyRevealed)
			})
		})
	})
}

func TestReset(t *testing.T) {
	roster := testRoster()

	Convey("Given a revealed day and an untouched other day", t, func() {
		doc := model.Document{}
		other := "2025-08-28"
		So(game.SubmitGuess(doc, roster, other, "Gaurav", mustTime("12:00")), ShouldBeNil)
		So(game.SubmitGuess(doc, roster, day, "Gaurav", mustTime("17:00")), ShouldBeNil)
		So(game.SubmitGuess(doc, roster, day, "Upanshu", mustTime("17:15")), ShouldBeNil)
		So(game.SubmitGuess(doc, roster, day, "Yatin", mustTime("16:50")), ShouldBeNil)
		So(game.Reveal(doc, roster, day, mustTime("17:05")), ShouldBeNil)

		Convey("When resetting the day", func() {
			game.Reset(doc, day)

			Convey("Then the day reads back empty", func() {
				rec := game.Record(doc, day)
				So(rec.GuessCount(), ShouldEqual, 0)
				So(rec.Revealed(), ShouldBeFalse)
				So(roster.StateOf(rec), ShouldEqual, game.StateEmpty)
			})

			Convey("And the other day is untouched", func() {
				So(game.Record(doc, other).GuessCount(), ShouldEqual, 1)
			})

			Convey("And resetting again is a harmless no-op", func() {
				game.Reset(doc, day)
				So(game.Record(doc, day).GuessCount(), ShouldEqual, 0)
			})
		})
	})
}

func TestStateMachine(t *testing.T) {
	roster := testRoster()

	Convey("Given a fresh day", t, func() {
		doc := model.Document{}

		Convey("Then the lifecycle walks empty, guessing, ready, revealed", func() {
			So(roster.StateOf(game.Record(doc, day)), ShouldEqual, game.StateEmpty)

			So(game.SubmitGuess(doc, roster, day, "Gaurav", mustTime("17:00")), ShouldBeNil)
			So(roster.StateOf(game.Record(doc, day)), ShouldEqual, game.StateGuessing)

			So(game.SubmitGuess(doc, roster, day, "Upanshu", mustTime("17:15")), ShouldBeNil)
			So(roster.StateOf(game.Record(doc, day)), ShouldEqual, game.StateGuessing)

			So(game.SubmitGuess(doc, roster, day, "Yatin", mustTime("16:50")), ShouldBeNil)
			So(roster.StateOf(game.Record(doc, day)), ShouldEqual, game.StateReadyToReveal)

			So(game.Reveal(doc, roster, day, mustTime("17:05")), ShouldBeNil)
			So(roster.StateOf(game.Record(doc, day)), ShouldEqual, game.StateRevealed)

			game.Reset(doc, day)
			So(roster.StateOf(game.Record(doc, day)), ShouldEqual, game.StateEmpty)
		})
	})
}

package config_test

import (
	"testing"

	"github.com/highOnBits/time-guess/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
			convey.So(cfg.DataFile, convey.ShouldEqual, "data/data.json")
			convey.So(cfg.Participants, convey.ShouldResemble, []string{"Gaurav", "Upanshu", "Yatin"})
			convey.So(cfg.WSSendBuffer, convey.ShouldEqual, 8)
		})
	})
}

package toml

import (
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"
)

type serverConfig struct {
	Host    string    `toml:"host"`
	Port    int       `toml:"port"`
	Ratio   float64   `toml:"ratio"`
	Debug   bool      `toml:"debug"`
	Tags    []string  `toml:"tags"`
	Limits  limits    `toml:"limits"`
	Started time.Time `toml:"started"`
}

type limits struct {
	Burst int `toml:"burst"`
}

func TestDecode(t *testing.T) {
	convey.Convey("a result tree decodes onto a struct", t, func() {
		src := `
host = "localhost"
port = 8080
ratio = 0.75
debug = true
tags = ["db", "cache"]
started = 2024-03-01T12:00:00Z

[limits]
burst = 16
`
		tree, err := ParseString(src)
		convey.So(err, convey.ShouldBeNil)

		var cfg serverConfig
		convey.So(Decode(tree, &cfg), convey.ShouldBeNil)
		convey.So(cfg.Host, convey.ShouldEqual, "localhost")
		convey.So(cfg.Port, convey.ShouldEqual, 8080)
		convey.So(cfg.Ratio, convey.ShouldEqual, 0.75)
		convey.So(cfg.Debug, convey.ShouldBeTrue)
		convey.So(cfg.Tags, convey.ShouldResemble, []string{"db", "cache"})
		convey.So(cfg.Limits.Burst, convey.ShouldEqual, 16)
		convey.So(cfg.Started.Equal(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)), convey.ShouldBeTrue)
	})
}

func TestUnmarshal(t *testing.T) {
	convey.Convey("Unmarshal parses and decodes in one step", t, func() {
		var cfg struct {
			Name  string `toml:"name"`
			Ports []int  `toml:"ports"`
		}
		err := Unmarshal([]byte("name = \"api\"\nports = [8001, 8002]"), &cfg)
		convey.So(err, convey.ShouldBeNil)
		convey.So(cfg.Name, convey.ShouldEqual, "api")
		convey.So(cfg.Ports, convey.ShouldResemble, []int{8001, 8002})
	})

	convey.Convey("a lex error surfaces through Unmarshal", t, func() {
		var cfg struct{}
		err := Unmarshal([]byte("x = %"), &cfg)
		convey.So(err, convey.ShouldNotBeNil)
		convey.So(err.Error(), convey.ShouldContainSubstring, "lex error")
	})
}

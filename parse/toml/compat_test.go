package toml

import (
	"testing"

	bstoml "github.com/BurntSushi/toml"
	"github.com/smartystreets/goconvey/convey"
)

// The subset this parser accepts is also valid TOML, so on that subset the
// result tree should match what a full TOML implementation decodes.
func TestResultTreeMatchesBurntSushi(t *testing.T) {
	convey.Convey("scalars sections and lists agree", t, func() {
		src := `
title = "compat"
count = 42
ratio = 2.5
enabled = true
tags = ["a", "b", "c"]
matrix = [[1, 2], [3, 4]]

[server]
host = "localhost"
port = 8080

[server.limits]
burst = 10
`
		ours, err := ParseString(src)
		convey.So(err, convey.ShouldBeNil)

		var theirs map[string]any
		_, err = bstoml.Decode(src, &theirs)
		convey.So(err, convey.ShouldBeNil)

		convey.So(ours, convey.ShouldResemble, theirs)
	})

	convey.Convey("root and section ordering agree", t, func() {
		src := `
before = 1

[s]
inside = 2
`
		ours, err := ParseString(src)
		convey.So(err, convey.ShouldBeNil)

		var theirs map[string]any
		_, err = bstoml.Decode(src, &theirs)
		convey.So(err, convey.ShouldBeNil)

		convey.So(ours, convey.ShouldResemble, theirs)
	})
}

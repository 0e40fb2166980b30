package toml

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"
)

func TestScalarAssignments(t *testing.T) {
	convey.Convey("each scalar kind decodes", t, func() {
		cases := map[string]any{
			`a = 1`:     int64(1),
			`a = 1.5`:   float64(1.5),
			`a = true`:  true,
			`a = "hi"`:  "hi",
			`a = false`: false,
		}
		for src, want := range cases {
			root, err := ParseString(src)
			convey.So(err, convey.ShouldBeNil)
			convey.So(root, convey.ShouldResemble, map[string]any{"a": want})
		}
	})

	convey.Convey("datetimes decode to timestamps", t, func() {
		root, err := ParseString(`dob = 1979-05-27T07:32:00Z`)
		convey.So(err, convey.ShouldBeNil)
		dob, ok := root["dob"].(time.Time)
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(dob.Equal(time.Date(1979, 5, 27, 7, 32, 0, 0, time.UTC)), convey.ShouldBeTrue)
	})
}

func TestSectionNesting(t *testing.T) {
	convey.Convey("a dotted header opens nested maps", t, func() {
		src := `
[a.b]
x = 1
`
		root, err := ParseString(src)
		convey.So(err, convey.ShouldBeNil)
		convey.So(root, convey.ShouldResemble, map[string]any{
			"a": map[string]any{
				"b": map[string]any{"x": int64(1)},
			},
		})
	})

	convey.Convey("sections sharing a prefix share the parent map", t, func() {
		src := `
[server.alpha]
port = 8001

[server.beta]
port = 8002
`
		root, err := ParseString(src)
		convey.So(err, convey.ShouldBeNil)
		server := root["server"].(map[string]any)
		convey.So(len(server), convey.ShouldEqual, 2)
		convey.So(server["alpha"], convey.ShouldResemble, map[string]any{"port": int64(8001)})
		convey.So(server["beta"], convey.ShouldResemble, map[string]any{"port": int64(8002)})
	})
}

func TestRootThenSection(t *testing.T) {
	convey.Convey("assignments before the first header land at the root", t, func() {
		src := `
title = "root level"

[owner]
name = "Tom"
`
		root, err := ParseString(src)
		convey.So(err, convey.ShouldBeNil)
		convey.So(root["title"], convey.ShouldEqual, "root level")
		convey.So(root["owner"], convey.ShouldResemble, map[string]any{"name": "Tom"})
	})
}

func TestListOrder(t *testing.T) {
	convey.Convey("list order is exactly as written", t, func() {
		root, err := ParseString(`a = [3, 1, 2]`)
		convey.So(err, convey.ShouldBeNil)
		convey.So(root["a"], convey.ShouldResemble, []any{int64(3), int64(1), int64(2)})
	})

	convey.Convey("mixed scalar kinds keep their positions", t, func() {
		root, err := ParseString(`a = [1, "two", true, 4.0]`)
		convey.So(err, convey.ShouldBeNil)
		convey.So(root["a"], convey.ShouldResemble, []any{int64(1), "two", true, float64(4.0)})
	})
}

func TestNestedLists(t *testing.T) {
	convey.Convey("nested lists recurse", t, func() {
		root, err := ParseString(`a = [[1, 2], [3, 4]]`)
		convey.So(err, convey.ShouldBeNil)
		convey.So(root["a"], convey.ShouldResemble, []any{
			[]any{int64(1), int64(2)},
			[]any{int64(3), int64(4)},
		})
	})

	convey.Convey("deep nesting keeps pairing straight", t, func() {
		root, err := ParseString(`a = [[[1], 2], 3]`)
		convey.So(err, convey.ShouldBeNil)
		convey.So(root["a"], convey.ShouldResemble, []any{
			[]any{[]any{int64(1)}, int64(2)},
			int64(3),
		})
	})
}

func TestComments(t *testing.T) {
	convey.Convey("comments never reach the result tree", t, func() {
		src := `
# leading comment
a = 1 # trailing comment with tokens: x = [2]
[s] # header comment
b = 2
`
		root, err := ParseString(src)
		convey.So(err, convey.ShouldBeNil)
		convey.So(root, convey.ShouldResemble, map[string]any{
			"a": int64(1),
			"s": map[string]any{"b": int64(2)},
		})
	})
}

func TestStringEscapes(t *testing.T) {
	convey.Convey("tab newline and carriage return decode", t, func() {
		root, err := ParseString(`s = "a\tb\nc\rd"`)
		convey.So(err, convey.ShouldBeNil)
		convey.So(root["s"], convey.ShouldEqual, "a\tb\nc\rd")
	})
}

func TestIdempotence(t *testing.T) {
	convey.Convey("parsing the same text twice gives equal trees", t, func() {
		src := `
top = "level"

[db]
ports = [8001, 8001, 8002]
enabled = true

[db.limits]
burst = 1.5
`
		first, err := ParseString(src)
		convey.So(err, convey.ShouldBeNil)
		second, err := ParseString(src)
		convey.So(err, convey.ShouldBeNil)
		convey.So(reflect.DeepEqual(first, second), convey.ShouldBeTrue)
	})
}

func TestLexErrorPosition(t *testing.T) {
	convey.Convey("a bare symbol reports its line and column", t, func() {
		root, err := ParseString("a = 1\nb = @")
		convey.So(root, convey.ShouldBeNil)
		convey.So(err, convey.ShouldNotBeNil)
		convey.So(err.Error(), convey.ShouldEqual, "lex error at line 2 4: b = @")
	})

	convey.Convey("reader and file entry points surface the same failure", t, func() {
		_, err := Parse(strings.NewReader("x = $"))
		convey.So(err, convey.ShouldNotBeNil)
		convey.So(err.Error(), convey.ShouldContainSubstring, "lex error at line 1")
	})
}

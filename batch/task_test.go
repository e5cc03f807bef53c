package batch

import (
	"testing"

	"github.com/tunegrab-cli/tunegrab/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestGatherTasks(t *testing.T) {
	Convey("GatherTasks", t, func() {
		Convey("Should classify positional arguments", func() {
			tasks, err := GatherTasks([]string{
				"https://www.youtube.com/watch?v=abc",
				"band album",
			}, "", nil)

			So(err, ShouldBeNil)
			So(tasks, ShouldHaveLength, 2)
			So(tasks[0].Kind, ShouldEqual, TaskLocator)
			So(tasks[1].Kind, ShouldEqual, TaskSearch)
		})

		Convey("Should read tasks from a file", func() {
			content := []byte("# my albums\n\nband one full album\nhttps://www.youtube.com/playlist?list=PLxyz\n   \n")
			So(filesystem.API().WriteFile("tasks.txt", content, 0o644), ShouldBeNil)

			tasks, err := GatherTasks(nil, "tasks.txt", nil)
			So(err, ShouldBeNil)
			So(tasks, ShouldHaveLength, 2)
			So(tasks[0], ShouldResemble, Task{Kind: TaskSearch, Value: "band one full album"})
			So(tasks[1].Kind, ShouldEqual, TaskLocator)
		})

		Convey("Should fail on a missing file", func() {
			_, err := GatherTasks(nil, "missing.txt", nil)
			So(err, ShouldNotBeNil)
		})

		Convey("Should append explicit search terms last", func() {
			tasks, err := GatherTasks([]string{"first"}, "", []string{"second"})
			So(err, ShouldBeNil)
			So(tasks, ShouldHaveLength, 2)
			So(tasks[1], ShouldResemble, Task{Kind: TaskSearch, Value: "second"})
		})

		Convey("Should return no tasks for no input", func() {
			tasks, err := GatherTasks(nil, "", nil)
			So(err, ShouldBeNil)
			So(tasks, ShouldBeEmpty)
		})
	})
}

package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/tunegrab-cli/tunegrab/filesystem"
	"github.com/tunegrab-cli/tunegrab/key"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Should register the documented factory defaults", func() {
			_ = Setup()
			So(viper.GetString(key.DownloadFormat), ShouldEqual, "mp4")
			So(viper.GetInt(key.SearchLimit), ShouldEqual, 20)
			So(viper.GetString(key.DownloadDirFallback), ShouldEqual, "downloads")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("search.timeout_seconds"), ShouldEqual, "search_timeout_seconds")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Field", t, func() {
		field := Default[key.SearchLimit]

		Convey("Env should carry the application prefix", func() {
			So(field.Env(), ShouldEqual, "TUNEGRAB_SEARCH_LIMIT")
		})

		Convey("Pretty should render without panicking", func() {
			So(field.Pretty(), ShouldNotBeEmpty)
		})
	})
}

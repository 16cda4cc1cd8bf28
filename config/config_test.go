package config

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidharvest/vidharvest/constant"
	"github.com/vidharvest/vidharvest/filesystem"
	"github.com/vidharvest/vidharvest/key"
	"github.com/vidharvest/vidharvest/where"
)

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		filesystem.SetMemMapFs()
		t.Setenv(where.EnvConfigPath, "/cfg")

		Convey("Should initialize without a config file", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetString(key.InputPath), ShouldEqual, constant.DefaultInput)
			So(viper.GetInt(key.ExtractTextLimit), ShouldEqual, 50)
		})

		Convey("Should read values from vidharvest.toml", func() {
			err := filesystem.API().WriteFile(where.ConfigFile(), []byte("[output]\npreview = 9\n"), 0o644)
			So(err, ShouldBeNil)
			So(Setup(), ShouldBeNil)
			So(viper.GetInt(key.OutputPreview), ShouldEqual, 9)
			viper.Set(key.OutputPreview, 5)
		})

		Convey("Should let environment variables override defaults", func() {
			t.Setenv("VIDHARVEST_OUTPUT_CSV", "elsewhere.csv")
			So(Setup(), ShouldBeNil)
			So(viper.GetString(key.OutputCSV), ShouldEqual, "elsewhere.csv")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("extract.text_limit"), ShouldEqual, "extract_text_limit")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Field", t, func() {
		field := Default[key.ExtractTextLimit]

		Convey("Env uses the application prefix", func() {
			So(field.Env(), ShouldEqual, "VIDHARVEST_EXTRACT_TEXT_LIMIT")
		})

		Convey("MarshalJSON reports type and default", func() {
			data, err := json.Marshal(&field)
			So(err, ShouldBeNil)

			var decoded map[string]any
			So(json.Unmarshal(data, &decoded), ShouldBeNil)
			So(decoded["type"], ShouldEqual, "int")
			So(decoded["default"], ShouldEqual, float64(50))
			So(decoded["key"], ShouldEqual, key.ExtractTextLimit)
		})
	})
}

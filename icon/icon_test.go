package icon

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidharvest/vidharvest/key"
)

func TestGet(t *testing.T) {
	Convey("Given the registered icons", t, func() {
		all := []Icon{Success, Fail, Progress, Warn, Video}

		Convey("They render for each variant", func() {
			for _, variant := range AvailableVariants() {
				Convey("variant="+variant, func() {
					viper.Set(key.IconsVariant, variant)
					for _, i := range all {
						So(Get(i), ShouldNotBeEmpty)
					}
				})
			}
		})

		Convey("They are empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			So(Get(Success), ShouldBeEmpty)
		})

		Convey("An unregistered icon is empty", func() {
			viper.Set(key.IconsVariant, "plain")
			So(Get(Icon(99)), ShouldBeEmpty)
		})
	})
}

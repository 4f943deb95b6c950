package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080, Mode: "debug"},
		Store: StoreConfig{
			AdminEmail:      "admin@1gother.com",
			MasterSerialIDs: []int64{1, 111},
			SerialBase:      1000,
		},
	}
}

func TestConfigValidate(t *testing.T) {
	Convey("configuration validation", t, func() {
		Convey("a complete config passes", func() {
			So(validConfig().Validate(), ShouldBeNil)
		})

		Convey("server port must be in range", func() {
			cfg := validConfig()
			cfg.Server.Port = 0
			So(cfg.Validate(), ShouldNotBeNil)

			cfg.Server.Port = 70000
			So(cfg.Validate(), ShouldNotBeNil)
		})

		Convey("server mode is a closed set", func() {
			cfg := validConfig()
			cfg.Server.Mode = "production"
			So(cfg.Validate(), ShouldNotBeNil)
		})

		Convey("admin email must look like an email", func() {
			cfg := validConfig()
			cfg.Store.AdminEmail = "not-an-email"
			So(cfg.Validate(), ShouldNotBeNil)

			cfg.Store.AdminEmail = ""
			So(cfg.Validate(), ShouldNotBeNil)
		})

		Convey("at least one master serial is required", func() {
			cfg := validConfig()
			cfg.Store.MasterSerialIDs = nil
			So(cfg.Validate(), ShouldNotBeNil)
		})

		Convey("master serials must sit below the allocation base", func() {
			cfg := validConfig()
			cfg.Store.MasterSerialIDs = []int64{1, 2000}
			So(cfg.Validate(), ShouldNotBeNil)
		})
	})
}

func TestStoreConfigMasterSerials(t *testing.T) {
	Convey("reserved master serials", t, func() {
		store := StoreConfig{MasterSerialIDs: []int64{1, 111}}

		Convey("the first entry is the canonical master serial", func() {
			So(store.MasterSerialID(), ShouldEqual, 1)
		})

		Convey("every listed serial is recognized", func() {
			So(store.IsMasterSerial(1), ShouldBeTrue)
			So(store.IsMasterSerial(111), ShouldBeTrue)
			So(store.IsMasterSerial(1001), ShouldBeFalse)
		})

		Convey("an empty list recognizes nothing", func() {
			empty := StoreConfig{}
			So(empty.IsMasterSerial(1), ShouldBeFalse)
		})
	})
}

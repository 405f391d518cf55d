package config

import "vhdlsem/location"

func testPos() location.Span {
	return location.Point(location.MustNewSourceID("config_test"), 1, 1)
}

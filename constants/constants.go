package constants

import (
	"os"
	"strconv"
)

func GetLogLevel() string {
	level := os.Getenv("BMSDEX_LOG_LEVEL")
	if level != "" {
		return level
	}
	return "info"
}

// GetLogFormat is "console" or "json".
func GetLogFormat() string {
	format := os.Getenv("BMSDEX_LOG_FORMAT")
	if format != "" {
		return format
	}
	return "console"
}

func GetServeAddr() string {
	addr := os.Getenv("BMSDEX_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

func GetMaxBodySize() int64 {
	size, err := strconv.ParseInt(os.Getenv("BMSDEX_MAX_BODY"), 10, 64)
	if err == nil && size > 0 {
		return size
	}
	return DefaultMaxBodySize
}

const DefaultMaxBodySize = 16 * 1024 * 1024

var ChartExtensions = []string{".bms", ".bme", ".bml"}

// extension used by unpack when the payload type can't be sniffed
const UnknownAssetExtension = ".bin"

package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Scan  bool
	Match bool
	Watch bool
}

var d *debug

func init() {
	d = &debug{}
	d.Scan = boolEnv("DOCDRIFT_DEBUG_SCAN")
	d.Match = boolEnv("DOCDRIFT_DEBUG_MATCH")
	d.Watch = boolEnv("DOCDRIFT_DEBUG_WATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Scan() bool {
	return d.Scan
}
func Match() bool {
	return d.Match
}
func Watch() bool {
	return d.Watch
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func JSON(v any) string {
	d, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(d)
}

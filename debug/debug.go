package debug

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-json"
)

type debug struct {
	Load  bool
	Data  bool
	Query bool
}

var d *debug

func init() {
	d = &debug{}
	d.Load = boolEnv("TMX_DEBUG_LOAD")
	d.Data = boolEnv("TMX_DEBUG_DATA")
	d.Query = boolEnv("TMX_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Load() bool {
	return d.Load
}
func Data() bool {
	return d.Data
}
func Query() bool {
	return d.Query
}

func Logf(msg string, args ...any) {
	for i := range args {
		switch a := args[i].(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

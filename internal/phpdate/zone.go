package phpdate

import (
	"os"
	"strings"
	"sync"
	"time"
)

// zoneName returns the IANA identifier of loc. Go names the process zone
// "Local", so that one is looked up from $TZ or the /etc/localtime link.
func zoneName(loc *time.Location) string {
	if loc != time.Local {
		return loc.String()
	}

	return localZoneName()
}

//nolint:gochecknoglobals // resolved once per process, like time.Local
var localZoneName = sync.OnceValue(func() string {
	if tz, ok := os.LookupEnv("TZ"); ok {
		tz = strings.TrimPrefix(tz, ":")
		if tz == "" {
			return "UTC"
		}
		return trimZoneinfo(tz)
	}

	if target, err := os.Readlink("/etc/localtime"); err == nil {
		return trimZoneinfo(target)
	}

	return "UTC"
})

func trimZoneinfo(path string) string {
	if _, name, ok := strings.Cut(path, "zoneinfo/"); ok {
		return name
	}
	return path
}

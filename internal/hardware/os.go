package hardware

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// OSDescription returns a human-readable OS line for the window header and
// the copy summary, e.g. "Microsoft Windows 11 Pro 10.0.22631 (amd64)".
func OSDescription(ctx context.Context) string {
	info, err := host.InfoWithContext(ctx)
	if err != nil || strings.TrimSpace(info.Platform) == "" {
		return runtime.GOOS + "/" + runtime.GOARCH
	}
	return fmt.Sprintf("%s %s (%s)",
		strings.TrimSpace(info.Platform),
		strings.TrimSpace(info.PlatformVersion),
		runtime.GOARCH)
}

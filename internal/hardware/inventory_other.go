//go:build !windows

package hardware

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// NewInventory returns the gopsutil-backed inventory used on non-Windows
// hosts. The CLI builds everywhere; the viewer window does not.
func NewInventory() Inventory {
	return portableInventory{}
}

type portableInventory struct{}

func (portableInventory) CPU(ctx context.Context) (CPUInfo, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil || len(infos) == 0 {
		return CPUInfo{}, fmt.Errorf("cpu query: %w", ErrUnavailable)
	}
	info := CPUInfo{Model: infos[0].ModelName, Arch: runtime.GOARCH}
	if n, err := cpu.CountsWithContext(ctx, false); err == nil {
		info.PhysicalCores = n
	}
	if n, err := cpu.CountsWithContext(ctx, true); err == nil {
		info.LogicalCores = n
	}
	return info, nil
}

// GPU enumeration has no portable OS interface; only the Windows build
// answers it.
func (portableInventory) GPU(ctx context.Context) ([]GPUInfo, error) {
	return nil, fmt.Errorf("gpu query: %w", ErrUnavailable)
}

func (portableInventory) Memory(ctx context.Context) (MemoryInfo, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return MemoryInfo{}, fmt.Errorf("memory query: %w", ErrUnavailable)
	}
	return MemoryInfo{
		Total:       vm.Total,
		Available:   vm.Available,
		Used:        vm.Used,
		UsedPercent: vm.UsedPercent,
	}, nil
}

// Package hardware queries the host machine for CPU, GPU and RAM details
// and normalizes them into display strings.
package hardware

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Unavailable is the placeholder shown for a hardware class the host
// inventory could not answer.
const Unavailable = "Unavailable"

// ErrUnavailable is returned by platform inventories when a hardware class
// cannot be queried on this host (interface absent, no matching device,
// insufficient privilege).
var ErrUnavailable = errors.New("hardware query unavailable")

// CPUInfo describes the first enumerated processor package.
type CPUInfo struct {
	Model         string
	Arch          string
	PhysicalCores int
	LogicalCores  int
}

// GPUInfo describes one display adapter.
type GPUInfo struct {
	Name          string
	DriverVersion string
	Status        string
	VRAM          uint64 // bytes; 0 when the driver does not report it
}

// MemoryInfo describes physical memory at query time.
type MemoryInfo struct {
	Total       uint64
	Available   uint64
	Used        uint64
	UsedPercent float64
}

// Inventory answers structured hardware queries against the host OS.
// Implementations are per-platform; NewInventory returns the one for the
// current build target.
type Inventory interface {
	CPU(ctx context.Context) (CPUInfo, error)
	GPU(ctx context.Context) ([]GPUInfo, error)
	Memory(ctx context.Context) (MemoryInfo, error)
}

// Snapshot is one point-in-time read of the machine, already formatted for
// display. Fields never hold an empty string: a failed sub-query carries
// the Unavailable sentinel instead.
type Snapshot struct {
	CPU     string    `json:"cpu"`
	GPU     string    `json:"gpu"`
	RAM     string    `json:"ram"`
	TakenAt time.Time `json:"taken_at"`
}

// Collect runs the three sub-queries independently and combines the results.
// A failure in one sub-query never blocks the others, and Collect itself
// never fails.
func Collect(ctx context.Context, inv Inventory) Snapshot {
	snap := Snapshot{TakenAt: time.Now()}

	if cpu, err := inv.CPU(ctx); err != nil {
		snap.CPU = Unavailable
	} else {
		snap.CPU = describeCPU(cpu)
	}

	if gpus, err := inv.GPU(ctx); err != nil {
		snap.GPU = Unavailable
	} else {
		snap.GPU = describeGPU(gpus)
	}

	if mem, err := inv.Memory(ctx); err != nil {
		snap.RAM = Unavailable
	} else {
		snap.RAM = describeMemory(mem)
	}

	return snap
}

func describeCPU(cpu CPUInfo) string {
	model := strings.TrimSpace(cpu.Model)
	if model == "" {
		return Unavailable
	}
	return model
}

// describeGPU reports the first named adapter in OS enumeration order, so
// multi-GPU machines show their primary adapter.
func describeGPU(gpus []GPUInfo) string {
	for _, gpu := range gpus {
		if name := strings.TrimSpace(gpu.Name); name != "" {
			return name
		}
	}
	return Unavailable
}

func describeMemory(mem MemoryInfo) string {
	if mem.Total == 0 {
		return Unavailable
	}
	return FormatBytes(mem.Total)
}

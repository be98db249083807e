//go:build windows

package hardware

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"unsafe"

	"github.com/yusufpapurcu/wmi"
	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

// NewInventory returns the WMI-backed Windows inventory.
func NewInventory() Inventory {
	return windowsInventory{}
}

type windowsInventory struct{}

// Win32_Processor mirrors the WMI class of the same name; the wmi package
// derives the query FROM clause from the struct name.
type Win32_Processor struct {
	Name                      string
	NumberOfCores             uint32
	NumberOfLogicalProcessors uint32
}

// Win32_VideoController mirrors the WMI display adapter class. Pointer
// fields because virtual and partially-installed adapters report NULL.
type Win32_VideoController struct {
	Name          string
	DriverVersion *string
	Status        *string
	AdapterRAM    *uint32
}

func (windowsInventory) CPU(ctx context.Context) (CPUInfo, error) {
	var procs []Win32_Processor
	if err := wmi.Query(wmi.CreateQuery(&procs, ""), &procs); err != nil || len(procs) == 0 {
		// WMI can be down (service stopped, broken repository); the registry
		// carries the same model string.
		model, regErr := cpuModelFromRegistry()
		if regErr != nil {
			return CPUInfo{}, fmt.Errorf("cpu query: %w", ErrUnavailable)
		}
		return CPUInfo{Model: model, Arch: runtime.GOARCH}, nil
	}
	p := procs[0]
	return CPUInfo{
		Model:         p.Name,
		Arch:          runtime.GOARCH,
		PhysicalCores: int(p.NumberOfCores),
		LogicalCores:  int(p.NumberOfLogicalProcessors),
	}, nil
}

func cpuModelFromRegistry() (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE,
		`HARDWARE\DESCRIPTION\System\CentralProcessor\0`, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer k.Close()

	name, _, err := k.GetStringValue("ProcessorNameString")
	if err != nil {
		return "", err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrUnavailable
	}
	return name, nil
}

func (windowsInventory) GPU(ctx context.Context) ([]GPUInfo, error) {
	var adapters []Win32_VideoController
	if err := wmi.Query(wmi.CreateQuery(&adapters, ""), &adapters); err != nil {
		return nil, fmt.Errorf("gpu query: %w", ErrUnavailable)
	}
	if len(adapters) == 0 {
		return nil, fmt.Errorf("no display adapter: %w", ErrUnavailable)
	}

	gpus := make([]GPUInfo, 0, len(adapters))
	for _, a := range adapters {
		g := GPUInfo{Name: a.Name}
		if a.DriverVersion != nil {
			g.DriverVersion = *a.DriverVersion
		}
		if a.Status != nil {
			g.Status = *a.Status
		}
		if a.AdapterRAM != nil {
			g.VRAM = uint64(*a.AdapterRAM)
		}
		gpus = append(gpus, g)
	}
	return gpus, nil
}

var (
	modKernel32              = windows.NewLazySystemDLL("kernel32.dll")
	procGlobalMemoryStatusEx = modKernel32.NewProc("GlobalMemoryStatusEx")
)

// memoryStatusEx mirrors MEMORYSTATUSEX from the Windows API.
type memoryStatusEx struct {
	DwLength                uint32
	DwMemoryLoad            uint32
	UllTotalPhys            uint64
	UllAvailPhys            uint64
	UllTotalPageFile        uint64
	UllAvailPageFile        uint64
	UllTotalVirtual         uint64
	UllAvailVirtual         uint64
	UllAvailExtendedVirtual uint64
}

func (windowsInventory) Memory(ctx context.Context) (MemoryInfo, error) {
	var mem memoryStatusEx
	mem.DwLength = uint32(unsafe.Sizeof(mem))
	if ret, _, _ := procGlobalMemoryStatusEx.Call(uintptr(unsafe.Pointer(&mem))); ret == 0 {
		return MemoryInfo{}, fmt.Errorf("memory query: %w", ErrUnavailable)
	}
	return MemoryInfo{
		Total:       mem.UllTotalPhys,
		Available:   mem.UllAvailPhys,
		Used:        mem.UllTotalPhys - mem.UllAvailPhys,
		UsedPercent: float64(mem.DwMemoryLoad),
	}, nil
}

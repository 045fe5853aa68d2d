package memory

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// DeviceProfile describes the memory of one compute device model.
type DeviceProfile struct {
	MemoryGiB float64 `yaml:"memory_gib"` // total device memory
	// ReservedMiB is memory the simulation keeps free for the runtime and
	// plugins that allocate outside the estimators (reservedGpuMemorySize).
	ReservedMiB float64 `yaml:"reserved_mib"`
}

// DeviceCatalog maps a device name (e.g. "A100-40GB") to its profile.
type DeviceCatalog map[string]DeviceProfile

type deviceCatalogFile struct {
	Devices DeviceCatalog `yaml:"devices"`
}

// LoadDeviceCatalog reads a YAML device catalog with strict field checking.
func LoadDeviceCatalog(path string) (DeviceCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read device catalog %q: %w", path, err)
	}
	var f deviceCatalogFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse device catalog: %w", err)
	}
	for name, d := range f.Devices {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("device %q: %w", name, err)
		}
	}
	return f.Devices, nil
}

// GetDevice returns the profile for the named device.
// Returns an error listing the available devices if name is not found.
func (c DeviceCatalog) GetDevice(name string) (DeviceProfile, error) {
	d, ok := c[name]
	if !ok {
		available := make([]string, 0, len(c))
		for k := range c {
			available = append(available, k)
		}
		sort.Strings(available)
		return DeviceProfile{}, fmt.Errorf("device %q not found in catalog (available: %v)", name, available)
	}
	return d, nil
}

// Validate checks that memory is positive and the reservation fits into it.
func (d DeviceProfile) Validate() error {
	if d.MemoryGiB <= 0 || math.IsNaN(d.MemoryGiB) || math.IsInf(d.MemoryGiB, 0) {
		return fmt.Errorf("%w: memory_gib must be a valid positive number, got %v", ErrInvalidParameter, d.MemoryGiB)
	}
	if d.ReservedMiB < 0 || math.IsNaN(d.ReservedMiB) || math.IsInf(d.ReservedMiB, 0) {
		return fmt.Errorf("%w: reserved_mib must be >= 0 and finite, got %v", ErrInvalidParameter, d.ReservedMiB)
	}
	if d.ReservedMiB*(1<<20) >= d.MemoryGiB*(1<<30) {
		return fmt.Errorf("%w: reserved_mib %v leaves no usable memory", ErrInvalidParameter, d.ReservedMiB)
	}
	return nil
}

// Usable returns the bytes left to the simulation after the reservation.
func (d DeviceProfile) Usable() int64 {
	return int64(d.MemoryGiB*(1<<30)) - int64(d.ReservedMiB*(1<<20))
}

// Headroom returns Usable minus total; negative when the estimate does not
// fit on the device.
func (d DeviceProfile) Headroom(total int64) int64 {
	return d.Usable() - total
}

package memory

import (
	"fmt"
	"io"
)

// Component is one labelled share of a device estimate.
type Component struct {
	Name  string `yaml:"name"`
	Bytes int64  `yaml:"bytes"`
}

// Breakdown holds the estimate of every memory consumer on one device.
// Species and calorimeters keep the order they were added in.
type Breakdown struct {
	Fields       int64       `yaml:"fields"`
	SuperCells   int64       `yaml:"super_cells"`
	Particles    []Component `yaml:"particles,omitempty"`
	RNG          int64       `yaml:"rng"`
	Calorimeters []Component `yaml:"calorimeters,omitempty"`
}

// Components flattens the breakdown into labelled entries, fields first.
func (b *Breakdown) Components() []Component {
	out := []Component{
		{Name: "fields", Bytes: b.Fields},
		{Name: "super cells", Bytes: b.SuperCells},
	}
	for _, p := range b.Particles {
		out = append(out, Component{Name: "particles/" + p.Name, Bytes: p.Bytes})
	}
	out = append(out, Component{Name: "rng", Bytes: b.RNG})
	for _, cal := range b.Calorimeters {
		out = append(out, Component{Name: "calorimeter/" + cal.Name, Bytes: cal.Bytes})
	}
	return out
}

// Total sums all components.
func (b *Breakdown) Total() (int64, error) {
	var total int64
	for _, c := range b.Components() {
		var err error
		if total, err = addBytes(total, c.Bytes); err != nil {
			return 0, err
		}
	}
	return total, nil
}

// Print writes a human readable table of the breakdown to w.
func (b *Breakdown) Print(w io.Writer) error {
	total, err := b.Total()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "=== Device Memory Estimate ===")
	for _, c := range b.Components() {
		fmt.Fprintf(w, "%-28s: %12s  (%d B)\n", c.Name, FormatBytes(c.Bytes), c.Bytes)
	}
	fmt.Fprintf(w, "%-28s: %12s  (%d B)\n", "total", FormatBytes(total), total)
	return nil
}

// FormatBytes renders n with binary (IEC) units, e.g. "1.50 GiB".
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit && n > -unit {
		return fmt.Sprintf("%d B", n)
	}
	v := float64(n)
	suffixes := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	i := -1
	for (v >= unit || v <= -unit) && i < len(suffixes)-1 {
		v /= unit
		i++
	}
	return fmt.Sprintf("%.2f %s", v, suffixes[i])
}

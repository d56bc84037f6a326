package host

import (
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"
)

// Image names a file to load at a given origin, binary or Intel HEX.
type Image struct {
	Path   string
	Origin uint16
	Hex    bool
}

// LoadAll reads every image concurrently (disk I/O, not the shared
// memory write, is the point of parallelizing) and writes each into m.
// WriteByte (used by LoadHex) and LoadBinary serialize on m.mu, so concurrent loads of
// disjoint or even overlapping regions are race-free; the first
// load error is returned once every goroutine has finished.
func (m *Machine) LoadAll(images []Image) error {
	var g errgroup.Group
	for _, img := range images {
		img := img
		g.Go(func() error {
			if img.Hex {
				f, err := os.Open(img.Path)
				if err != nil {
					return fmt.Errorf("host: open %s: %w", img.Path, err)
				}
				defer f.Close()
				if err := m.LoadHex(f); err != nil {
					return fmt.Errorf("host: load %s: %w", img.Path, err)
				}
				return nil
			}

			data, err := os.ReadFile(img.Path)
			if err != nil {
				return fmt.Errorf("host: read %s: %w", img.Path, err)
			}
			m.LoadBinary(img.Origin, data)
			return nil
		})
	}
	return g.Wait()
}

package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// WriteTextfile snapshots the global registry to path in the text
// exposition format, for the node exporter textfile collector.
func WriteTextfile(path string) error {
	return WriteTextfileFrom(path, customRegistry)
}

// WriteTextfileFrom snapshots g to path. The file is replaced atomically.
func WriteTextfileFrom(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrTextfile, path, err)
	}
	return nil
}

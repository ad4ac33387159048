package wheelcatalog

import (
	"io"
	"os"

	"nuzlocke-tracker/internal/domain/wheel"
	"nuzlocke-tracker/internal/pkg/errs"

	"github.com/pelletier/go-toml/v2"
)

type file struct {
	Segments []segment `toml:"segment"`
}

type segment struct {
	Name         string `toml:"name"`
	Description  string `toml:"description"`
	Color        string `toml:"color"`
	BalanceDelta int64  `toml:"balance_delta"`
}

// Load returns the built-in catalog when path is empty.
func Load(path string) (wheel.Catalog, error) {
	if path == "" {
		return wheel.DefaultCatalog(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return wheel.Catalog{}, errs.Wrapf(err, "open wheel catalog %s", path)
	}
	defer f.Close()

	return Decode(f)
}

func Decode(r io.Reader) (wheel.Catalog, error) {
	var raw file
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return wheel.Catalog{}, errs.Wrap(err, "decode wheel catalog")
	}

	segments := make([]wheel.Segment, 0, len(raw.Segments))
	for _, s := range raw.Segments {
		segments = append(segments, wheel.Segment{
			Name:         s.Name,
			Description:  s.Description,
			Color:        s.Color,
			BalanceDelta: s.BalanceDelta,
		})
	}
	return wheel.NewCatalog(segments)
}

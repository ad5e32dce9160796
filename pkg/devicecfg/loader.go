package devicecfg

import (
	"embed"
	"os"

	"github.com/netscript/gencisco/pkg/errors"
	"github.com/netscript/gencisco/pkg/filesystem"
	"github.com/netscript/gencisco/pkg/logging"
	"github.com/spf13/afero"
)

//go:embed examples
var examples embed.FS

// LoadOptions tweak how a source file is read.
type LoadOptions struct {
	// CreateIfMissing writes the default configuration for Device before
	// loading when the source does not exist. It only applies to INI sources.
	CreateIfMissing bool
	// Device selects the default configuration written by CreateIfMissing.
	Device string
}

// Loader reads configuration files from a filesystem.
type Loader struct {
	fs afero.Fs
}

// NewLoader returns a loader over fs; a nil fs means the OS filesystem.
func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: filesystem.OrOS(fs)}
}

// Load reads and parses the configuration at path.
func (l *Loader) Load(path string, opts LoadOptions) (*Document, error) {
	logger := logging.GetLogger("devicecfg")
	format := FormatFor(path)

	exists, err := afero.Exists(l.fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot access %s", path)
	}
	if !exists && opts.CreateIfMissing && format == FormatINI {
		logger.Info().Str("path", path).Str("device", opts.Device).Msg("Creating default configuration")
		if err := l.WriteDefault(path, opts.Device); err != nil {
			return nil, err
		}
	}

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %s", path).
			WithDetail("path", path)
	}

	doc, err := Parse(data, format)
	if err != nil {
		if genErr, ok := err.(*errors.GenError); ok {
			genErr.WithDetail("path", path)
		}
		return nil, err
	}
	doc.Source = path

	logger.Debug().
		Str("path", path).
		Str("format", string(format)).
		Strs("sections", doc.SectionNames()).
		Msg("Loaded configuration")

	return doc, nil
}

// WriteDefault writes the example configuration for device at path, in the
// format implied by its extension. Existing files are never replaced.
func (l *Loader) WriteDefault(path, device string) error {
	exists, err := afero.Exists(l.fs, path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot access %s", path)
	}
	if exists {
		return errors.Newf(errors.ErrConfigExists, "configuration file already exists (%s)", path)
	}

	content, err := DefaultContent(device, FormatFor(path))
	if err != nil {
		return err
	}

	return filesystem.WriteAtomic(l.fs, path, content, 0644)
}

// Parse parses data in the given format.
func Parse(data []byte, format Format) (*Document, error) {
	doc := NewDocument("")

	var err error
	switch format {
	case FormatYAML:
		err = parseYAML(data, doc)
	case FormatTOML:
		err = parseTOML(data, doc)
	case FormatINI:
		err = parseINI(data, doc)
	default:
		err = errors.Newf(errors.ErrConfigParse, "unsupported format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// DefaultContent returns the bundled example configuration for a device.
func DefaultContent(device string, format Format) ([]byte, error) {
	if device == "" {
		device = "router"
	}
	name := "examples/" + device + format.Extension()
	data, err := examples.ReadFile(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrUnknownDevice, "no default configuration for device %q", device)
		}
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to read bundled example")
	}
	return data, nil
}

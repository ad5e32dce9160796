package generator

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/netscript/gencisco/pkg/config"
	"github.com/netscript/gencisco/pkg/devicecfg"
	"github.com/netscript/gencisco/pkg/errors"
	"github.com/netscript/gencisco/pkg/filesystem"
	"github.com/netscript/gencisco/pkg/logging"
	"github.com/netscript/gencisco/pkg/script"
	"github.com/netscript/gencisco/pkg/selector"
	"github.com/netscript/gencisco/pkg/templates"
	"github.com/spf13/afero"
)

// Options describe one run.
type Options struct {
	// Source is the device configuration file.
	Source string
	// Destination defaults to DefaultDestination(Source).
	Destination string
	// Override replaces an existing destination.
	Override bool
	// Echo writes the final script to Stdout as well.
	Echo bool
	// Device forces a profile instead of detecting it from Source.
	Device string
	// CreateIfMissing writes the device's default configuration when an
	// INI source does not exist yet.
	CreateIfMissing bool

	// Settings defaults to the embedded defaults only.
	Settings *config.Settings
	// FS defaults to the OS filesystem.
	FS afero.Fs
	// Store defaults to Settings.Templates.Dir or the embedded templates.
	Store  *templates.Store
	Stdout io.Writer
}

// Result summarizes a successful run.
type Result struct {
	Source      string
	Destination string
	Device      string
	Templates   int
	Script      string
}

// DefaultDestination is the source base name with its extension replaced
// by ext (".txt" when empty).
func DefaultDestination(source, ext string) string {
	if ext == "" {
		ext = ".txt"
	}
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ext
}

// Run performs the conversion described by opts.
func Run(opts Options) (*Result, error) {
	logger := logging.GetLogger("generator")

	if opts.Source == "" {
		return nil, errors.New(errors.ErrInvalidInput, "no source configuration file given")
	}

	settings := opts.Settings
	if settings == nil {
		var err error
		settings, err = config.Load(config.LoadOptions{SkipUserConfig: true})
		if err != nil {
			return nil, err
		}
	}

	fsys := filesystem.OrOS(opts.FS)

	dest := opts.Destination
	if dest == "" {
		dest = DefaultDestination(opts.Source, settings.Output.Extension)
	}

	defer logging.LogOperationStart(logger, "generate")()
	logger.Debug().
		Str("source", opts.Source).
		Str("destination", dest).
		Str("device", opts.Device).
		Bool("override", opts.Override).
		Msg("Generating script")

	// Refuse early so no work is wasted on a run that cannot write
	if !opts.Override {
		exists, err := filesystem.Exists(fsys, dest)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, errors.Newf(errors.ErrDestinationExists,
				"destination file already exists (%s); use --override to replace it", dest).
				WithDetail("path", dest)
		}
	}

	set, err := settings.ProfileSet()
	if err != nil {
		return nil, err
	}
	profile, err := set.Resolve(opts.Device, opts.Source)
	if err != nil {
		return nil, err
	}

	doc, err := devicecfg.NewLoader(fsys).Load(opts.Source, devicecfg.LoadOptions{
		CreateIfMissing: opts.CreateIfMissing,
		Device:          profile.Name,
	})
	if err != nil {
		return nil, err
	}

	refs, err := selector.Select(profile, doc)
	if err != nil {
		return nil, err
	}

	store := opts.Store
	if store == nil {
		store, err = templates.FromDir(fsys, settings.Templates.Dir)
		if err != nil {
			return nil, err
		}
	}

	assembler := script.NewAssembler(store, profile, script.Options{
		Delimiter: settings.Header.Delimiter,
		Width:     settings.Header.Width,
		Separator: settings.Output.Separator,
	})
	assembled, err := assembler.Assemble(refs)
	if err != nil {
		return nil, err
	}

	rendered, err := assembled.Render(doc)
	if err != nil {
		return nil, err
	}
	text := script.Clean(rendered)

	if err := filesystem.WriteAtomic(fsys, dest, []byte(text), 0644); err != nil {
		return nil, err
	}

	logger.Info().
		Str("source", opts.Source).
		Str("destination", dest).
		Str("device", profile.Name).
		Int("templates", len(refs)).
		Msg("Script written")

	if opts.Echo && opts.Stdout != nil {
		if _, err := fmt.Fprint(opts.Stdout, text); err != nil {
			return nil, errors.Wrap(err, errors.ErrFileWrite, "failed to echo script")
		}
	}

	return &Result{
		Source:      opts.Source,
		Destination: dest,
		Device:      profile.Name,
		Templates:   len(refs),
		Script:      text,
	}, nil
}

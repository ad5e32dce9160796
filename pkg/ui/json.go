package ui

import (
	"encoding/json"
	"io"

	"github.com/netscript/gencisco/pkg/errors"
)

// jsonRenderer writes machine-readable JSON
type jsonRenderer struct {
	encoder *json.Encoder
}

func newJSONRenderer(output io.Writer) *jsonRenderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &jsonRenderer{encoder: encoder}
}

func (r *jsonRenderer) RenderResult(result ResultView) error {
	return r.encoder.Encode(result)
}

func (r *jsonRenderer) RenderProfiles(list []ProfileView) error {
	return r.encoder.Encode(list)
}

func (r *jsonRenderer) RenderProfile(profile ProfileView) error {
	return r.encoder.Encode(profile)
}

func (r *jsonRenderer) RenderError(err error) error {
	obj := map[string]interface{}{
		"error": errorLine(err),
		"code":  string(errors.GetErrorCode(err)),
	}
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		obj["details"] = details
	}
	return r.encoder.Encode(obj)
}

func (r *jsonRenderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}

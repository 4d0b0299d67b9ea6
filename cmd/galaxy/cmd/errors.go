package cmd

import (
	"errors"
	"fmt"

	"github.com/galaxypad/galaxy/internal/galerrors"
)

// reportErr renders a structured galerrors.Report in red with its
// phase/code prefix (or as JSON under --json), or falls back to the
// bare error text for anything that isn't one (there shouldn't be any
// left by the time an error reaches the CLI, but this keeps it from
// panicking if one slips through).
func reportErr(err error) error {
	if err == nil {
		return nil
	}
	rep, ok := galerrors.AsReport(err)
	if !ok {
		return err
	}
	if jsonOutput {
		data, marshalErr := rep.ToJSON(true)
		if marshalErr != nil {
			return err
		}
		return errors.New(string(data))
	}
	return fmt.Errorf("%s [%s/%s]", red(rep.Message), rep.Phase, rep.Code)
}

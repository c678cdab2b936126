package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-clip-keeper/internal/app"
	"github.com/MKhiriev/go-clip-keeper/models"
	"github.com/pterm/pterm"
)

// writerTarget applies a decrypted secret by printing its masked form. It is
// the shell's stand-in for a password field.
type writerTarget struct {
	w io.Writer
}

func newWriterTarget(w io.Writer) *writerTarget {
	return &writerTarget{w: w}
}

func (t *writerTarget) Apply(_ context.Context, result models.DecryptResult) error {
	if _, err := fmt.Fprintln(t.w, result.SecretMasked); err != nil {
		return err
	}
	pterm.Success.Printfln(app.MsgPasswordPasted, result.Length)
	return nil
}

func (t *writerTarget) ObserveState(cycleID string, state models.CycleState) {
	pterm.Debug.Printfln("cycle %s: %s", cycleID, state)
}

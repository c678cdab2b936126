// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-clip-keeper/internal/app"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

const (
	defaultGenerateLength = 16
	defaultTokenCaller    = "extension"
)

func (a *App) decryptCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt the clipboard, print the masked secret and sanitize",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result := a.services.Cycle.Run(cmd.Context(), newWriterTarget(cmd.OutOrStdout()))
			if !result.Success {
				pterm.Error.Println(result.Error)
				return fmt.Errorf("%w: %s", ErrDecryptFailed, result.Error)
			}

			a.waitSanitize()
			return nil
		},
	}
}

func (a *App) sanitizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sanitize",
		Short: "Overwrite the clipboard with decoy strings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.services.Cycle.ScheduleSanitize(cmd.Context())
			a.waitSanitize()
			return nil
		},
	}
}

// waitSanitize blocks on the detached sanitize passes with a spinner.
// Sanitize never reports failures, so the spinner always ends in success.
func (a *App) waitSanitize() {
	spinner, _ := pterm.DefaultSpinner.WithRemoveWhenDone(true).Start("Sanitizing clipboard")
	a.services.Cycle.Wait()
	if spinner != nil {
		_ = spinner.Stop()
	}
	pterm.Success.Println(app.MsgSanitizeFinished)
}

func (a *App) statusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check whether the backend is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, _ := cmd.Flags().GetString("output")
			if output != "" && output != "json" {
				return fmt.Errorf("%w: %q", ErrUnknownOutputFormat, output)
			}

			report := a.services.Status.Check(cmd.Context())

			if output == "json" {
				return writeJSON(cmd.OutOrStdout(), report)
			}

			if !report.Connected {
				pterm.Error.Printfln(app.MsgCannotReachBackend, report.Address)
				return fmt.Errorf("backend status: %s", report.Error)
			}

			rows := pterm.TableData{
				{"Property", "Value"},
				{"Backend", report.Address},
				{"Password generated", yesNo(report.Backend.HasPassword)},
				{"Password encrypted", yesNo(report.Backend.HasEncrypted)},
			}
			if report.Backend.PasswordLength > 0 {
				rows = append(rows, []string{"Password length", fmt.Sprint(report.Backend.PasswordLength)})
			}
			return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
		},
	}
	cmd.Flags().StringP("output", "o", "", "Output format (json)")

	return cmd
}

func (a *App) copyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "copy",
		Short: "Put the backend's encrypted password on the clipboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.services.Vault.CopyEncrypted(cmd.Context()); err != nil {
				return err
			}
			pterm.Success.Println(app.MsgEncryptedCopied)
			return nil
		},
	}
}

func (a *App) generateCommand() *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Ask the backend to generate a new password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := a.services.Vault.Generate(cmd.Context(), length)
			if err != nil {
				return err
			}

			rows := pterm.TableData{
				{"Property", "Value"},
				{"Password", resp.Masked},
				{"Length", fmt.Sprint(resp.Length)},
			}
			if err = pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
				return err
			}
			pterm.Info.Println("Run 'encrypt' next to prepare it for the clipboard")
			return nil
		},
	}
	cmd.Flags().IntVarP(&length, "length", "l", defaultGenerateLength, "Password length")

	return cmd
}

func (a *App) encryptCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt",
		Short: "Ask the backend to encrypt the last generated password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := a.services.Vault.Encrypt(cmd.Context())
			if err != nil {
				return err
			}

			rows := pterm.TableData{
				{"Property", "Value"},
				{"Preview", resp.Preview},
				{"Length", fmt.Sprint(resp.Length)},
			}
			return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
		},
	}
}

func (a *App) openCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "open",
		Short: "Open the backend web UI in the browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.openURL(a.address); err != nil {
				pterm.Warning.Printfln("Could not open browser automatically, visit %s", a.address)
				return fmt.Errorf("open browser: %w", err)
			}
			pterm.Info.Printfln("Opened %s in browser", a.address)
			return nil
		},
	}
}

func (a *App) tokenCommand() *cobra.Command {
	var caller string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a relay bearer token",
		Long: `Issue a bearer token for callers of the relay HTTP API.

The token is signed with the relay signing key (--token-sign-key or
RELAY_TOKEN_SIGN_KEY) and printed on stdout so it can be piped into the
extension settings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := a.services.Token.Issue(caller)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token.SignedString)
			return err
		},
	}
	cmd.Flags().StringVar(&caller, "caller", defaultTokenCaller, "Token subject")

	return cmd
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// version must work without a reachable configuration
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", a.buildInfo.Version)
			fmt.Fprintf(out, "Build date: %s\n", a.buildInfo.Date)
			fmt.Fprintf(out, "Build commit: %s\n", a.buildInfo.Commit)
			return nil
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

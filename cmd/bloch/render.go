package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/bloch"
	"github.com/aretw0/bloch/internal/presentation/circuit"
	"github.com/aretw0/bloch/internal/presentation/tui"
	"github.com/aretw0/bloch/pkg/gate"
	"github.com/spf13/cobra"
)

const wrapWidth = 80

func newRenderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <gate>",
		Short: "Render a gate in the terminal",
		Long: `Applies the gate to |0> and prints its description, the resulting state,
the Bloch vector and a circuit diagram.`,
		Example: `  bloch render H
  bloch render T --projection legacy
  bloch render X --json
  bloch render S --png s.png
  bloch render Y --mermaid`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sym, err := gate.Parse(args[0])
			if err != nil {
				return err
			}
			asJSON, _ := cmd.Flags().GetBool("json")
			pngPath, _ := cmd.Flags().GetString("png")
			mermaid, _ := cmd.Flags().GetBool("mermaid")

			scene, err := a.engine.Render(cmd.Context(), bloch.Request{
				Gate:      sym,
				SkipImage: pngPath == "",
			})
			if err != nil {
				return err
			}

			if pngPath != "" {
				if err := os.WriteFile(pngPath, scene.CircuitPNG, 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", pngPath, err)
				}
				a.logger.Info("Circuit image written", "path", pngPath, "bytes", len(scene.CircuitPNG))
			}

			out := cmd.OutOrStdout()
			if mermaid {
				fmt.Fprint(out, circuit.Mermaid(scene.Gate))
				return nil
			}
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(scene)
			}

			var render tui.Renderer = tui.Plain
			if out == os.Stdout {
				render = tui.ForStdout(wrapWidth)
			}
			text, err := render(scene.Markdown())
			if err != nil {
				return fmt.Errorf("failed to render description: %w", err)
			}
			fmt.Fprintln(out, text)
			fmt.Fprintf(out, "State: %s\n\n", scene.State)
			tui.PrintReadout(out, scene.Vector)
			fmt.Fprintf(out, "\n%s\n", scene.Circuit)
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Print the scene as JSON")
	cmd.Flags().String("png", "", "Write the circuit diagram to this PNG file")
	cmd.Flags().Bool("mermaid", false, "Print the circuit as a Mermaid flowchart")
	cmd.MarkFlagsMutuallyExclusive("json", "mermaid")
	return cmd
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newContentCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Administrar el contenido editable del sitio",
	}

	cmd.AddCommand(newContentGetCmd(flags))
	cmd.AddCommand(newContentSetCmd(flags))

	return cmd
}

func newContentGetCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Mostrar el documento de contenido",
		RunE: func(cmd *cobra.Command, args []string) error {
			gw, err := flags.newGateway()
			if err != nil {
				return err
			}
			doc, err := gw.GetContent(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, doc)
		},
	}
}

func newContentSetCmd(flags *rootFlags) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Reemplazar el documento de contenido completo",
		Long: `Reemplaza el documento entero (no hay patch por sección).
El JSON se lee de --file, o de stdin si no se indica archivo.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, file)
			if err != nil {
				return err
			}

			var doc map[string]any
			if err := json.Unmarshal(raw, &doc); err != nil {
				return fmt.Errorf("el contenido tiene que ser un objeto JSON: %w", err)
			}

			gw, err := flags.newGateway()
			if err != nil {
				return err
			}
			stored, err := gw.ReplaceContent(cmd.Context(), doc)
			if err != nil {
				return err
			}
			return printJSON(cmd, stored)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "archivo JSON con el documento")

	return cmd
}

func readInput(cmd *cobra.Command, file string) ([]byte, error) {
	if file != "" {
		return os.ReadFile(file)
	}
	return io.ReadAll(cmd.InOrStdin())
}

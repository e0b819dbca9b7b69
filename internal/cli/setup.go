package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"poppy-paws/internal/gateway"
)

func newInitCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Aprovisionar el datastore (idempotente)",
		Long: `Crea las tablas si no existen y siembra el contenido y los dos
perros de ejemplo solo si la tabla está vacía. Seguro de repetir.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// init no tiene camino de fallback: sin API no hay nada
			// que aprovisionar.
			remote, err := gateway.NewClient(flags.apiBaseURL, flags.token)
			if err != nil {
				return err
			}
			if err := remote.Init(cmd.Context()); err != nil {
				return err
			}
			return printJSON(cmd, map[string]string{"message": "Database initialized successfully"})
		},
	}
}

func newLoginCmd(flags *rootFlags) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Obtener un token de sesión de admin",
		Long: `Cambia la password del back office por un token de sesión firmado.
Exportá el token como PAWS_TOKEN para los demás comandos.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv("PAWS_PASSWORD")
			}
			if password == "" {
				return errors.New("falta la password (--password o $PAWS_PASSWORD)")
			}

			remote, err := gateway.NewClient(flags.apiBaseURL, "")
			if err != nil {
				return err
			}
			tok, err := remote.Login(cmd.Context(), password)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "password del back office (default $PAWS_PASSWORD)")

	return cmd
}

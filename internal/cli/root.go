// Paquete cli: comandos del back office. Es la consola de admin del
// sitio; habla con la API a través del gateway.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"poppy-paws/internal/gateway"
	"poppy-paws/internal/platform/logger"
)

type rootFlags struct {
	apiBaseURL string
	token      string
	fallback   bool
	mirrorDir  string
}

func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "pawctl",
		Short: "Consola de administración del sitio de adopciones",
		Long: `pawctl administra los perros en adopción y el contenido editable
del sitio contra la API. Con --local-fallback, si la API no responde
las operaciones degradan a un espejo local (solo para desarrollo).`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// .env si existe; los errores se ignoran a propósito.
			_ = godotenv.Load()

			if flags.token == "" {
				flags.token = os.Getenv("PAWS_TOKEN")
			}
			if flags.apiBaseURL == "" {
				if v := os.Getenv("PAWS_API"); v != "" {
					flags.apiBaseURL = v
				} else {
					flags.apiBaseURL = "http://localhost:8080"
				}
			}
			if flags.mirrorDir == "" {
				flags.mirrorDir = defaultMirrorDir()
			}
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.apiBaseURL, "api", "", "URL base de la API (default $PAWS_API o http://localhost:8080)")
	pf.StringVar(&flags.token, "token", "", "token de sesión de admin (default $PAWS_TOKEN)")
	pf.BoolVar(&flags.fallback, "local-fallback", false, "degradar al espejo local si la API falla")
	pf.StringVar(&flags.mirrorDir, "mirror-dir", "", "directorio del espejo local")

	cmd.AddCommand(newDogsCmd(flags))
	cmd.AddCommand(newContentCmd(flags))
	cmd.AddCommand(newInitCmd(flags))
	cmd.AddCommand(newLoginCmd(flags))

	return cmd
}

func (f *rootFlags) newGateway() (*gateway.Gateway, error) {
	remote, err := gateway.NewClient(f.apiBaseURL, f.token)
	if err != nil {
		return nil, fmt.Errorf("cliente de API: %w", err)
	}

	return gateway.New(gateway.GatewayOptions{
		Remote:   remote,
		Mirror:   gateway.NewMirror(f.mirrorDir),
		Fallback: f.fallback,
		Logger:   logger.NewFromEnv(),
	}), nil
}

func (f *rootFlags) newMirror() *gateway.Mirror {
	return gateway.NewMirror(f.mirrorDir)
}

func defaultMirrorDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "poppy-paws")
}

// printJSON imprime el resultado tal como lo devolvería la API.
func printJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"poppy-paws/internal/domain/dogs"
	"poppy-paws/internal/gateway"
)

func newDogsCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dogs",
		Short: "Administrar los perros en adopción",
	}

	cmd.AddCommand(newDogsListCmd(flags))
	cmd.AddCommand(newDogsGetCmd(flags))
	cmd.AddCommand(newDogsCreateCmd(flags))
	cmd.AddCommand(newDogsUpdateCmd(flags))
	cmd.AddCommand(newDogsDeleteCmd(flags))

	return cmd
}

func newDogsListCmd(flags *rootFlags) *cobra.Command {
	var local bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Listar todos los perros",
		RunE: func(cmd *cobra.Command, args []string) error {
			// --local es la vista de la página pública: lee solo el
			// espejo, con los perros de ejemplo si nunca se pobló.
			if local {
				items, err := flags.newMirror().ListDogsOrSamples(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd, items)
			}

			gw, err := flags.newGateway()
			if err != nil {
				return err
			}
			items, err := gw.ListDogs(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, items)
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "leer solo el espejo local, sin llamar a la API")

	return cmd
}

func newDogsGetCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Mostrar un perro por id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			gw, err := flags.newGateway()
			if err != nil {
				return err
			}
			d, err := gw.GetDog(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd, d)
		},
	}
}

// dogFlags son los campos mutables, compartidos por create y update.
type dogFlags struct {
	name        string
	breed       string
	age         string
	size        string
	personality []string
	description string
	images      []string
	location    string
	sponsored   bool
}

func (df *dogFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&df.name, "name", "", "nombre")
	f.StringVar(&df.breed, "breed", "", "raza")
	f.StringVar(&df.age, "age", "", "edad (texto libre, ej. \"2 years\")")
	f.StringVar(&df.size, "size", "", "tamaño (Small/Medium/Large)")
	f.StringSliceVar(&df.personality, "personality", nil, "tags de personalidad")
	f.StringVar(&df.description, "description", "", "descripción larga")
	f.StringSliceVar(&df.images, "image", nil, "archivo de imagen local o ruta estática (repetible)")
	f.StringVar(&df.location, "location", "", "ubicación")
	f.BoolVar(&df.sponsored, "sponsored", false, "marcar como apadrinado")
}

// toDog arma el registro. Los archivos de imagen se codifican de a
// uno; los que fallan se reportan y el guardado sigue con el resto.
func (df *dogFlags) toDog(cmd *cobra.Command) dogs.Dog {
	images := make([]string, 0, len(df.images))
	var files []string
	for _, img := range df.images {
		if looksLikeFile(img) {
			files = append(files, img)
		} else {
			images = append(images, img)
		}
	}

	encoded, skipped := gateway.EncodeImages(files)
	for _, err := range skipped {
		fmt.Fprintf(cmd.ErrOrStderr(), "imagen salteada: %v\n", err)
	}
	images = append(images, encoded...)

	return dogs.Dog{
		Name:        df.name,
		Breed:       df.breed,
		Age:         df.age,
		Size:        df.size,
		Personality: df.personality,
		Description: df.description,
		Images:      images,
		Location:    df.location,
		IsSponsored: df.sponsored,
	}
}

func newDogsCreateCmd(flags *rootFlags) *cobra.Command {
	df := &dogFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publicar un perro nuevo",
		RunE: func(cmd *cobra.Command, args []string) error {
			gw, err := flags.newGateway()
			if err != nil {
				return err
			}
			created, err := gw.CreateDog(cmd.Context(), df.toDog(cmd))
			if err != nil {
				return err
			}
			return printJSON(cmd, created)
		},
	}

	df.register(cmd)
	return cmd
}

func newDogsUpdateCmd(flags *rootFlags) *cobra.Command {
	df := &dogFlags{}

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Reemplazar los datos de un perro",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			gw, err := flags.newGateway()
			if err != nil {
				return err
			}
			updated, err := gw.UpdateDog(cmd.Context(), id, df.toDog(cmd))
			if err != nil {
				return err
			}
			return printJSON(cmd, updated)
		},
	}

	df.register(cmd)
	return cmd
}

func newDogsDeleteCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Dar de baja un perro",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			gw, err := flags.newGateway()
			if err != nil {
				return err
			}
			if err := gw.DeleteDog(cmd.Context(), id); err != nil {
				return err
			}
			return printJSON(cmd, map[string]string{"message": "Dog deleted successfully"})
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id inválido %q", s)
	}
	return id, nil
}

// looksLikeFile distingue un archivo local de una ruta estática o
// data URI que va tal cual al registro.
func looksLikeFile(s string) bool {
	if len(s) == 0 {
		return false
	}
	if s[0] == '/' {
		// Las rutas estáticas del sitio empiezan con /assets.
		return false
	}
	for _, prefix := range []string{"data:", "http://", "https://"} {
		if len(s) >= len(prefix) && s[:len(prefix)] == prefix {
			return false
		}
	}
	return true
}

// seed_catalog genera el script SQL que carga regiones y productos del storefront
// a partir de una exportación JSON del catálogo.
//
// Uso:
//
//	seed_catalog validate --in catalog.json
//	seed_catalog generate --in catalog.json [--out migrations/002_seed_catalog.sql]
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer) *cli.App {
	return &cli.App{
		Name:   "seed_catalog",
		Usage:  "Genera el SQL de carga del catálogo del storefront",
		Writer: w,
		Commands: []*cli.Command{
			validateCommand(),
			generateCommand(),
		},
	}
}

func inFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "in",
		Aliases:  []string{"i"},
		Usage:    "Ruta del catálogo JSON",
		Required: true,
	}
}

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Revisa referencias e importes del catálogo sin escribir nada",
		Flags: []cli.Flag{inFlag()},
		Action: func(c *cli.Context) error {
			cat, err := loadCatalog(c.String("in"))
			if err != nil {
				return err
			}
			if problems := cat.validate(); len(problems) > 0 {
				return fmt.Errorf("catálogo inválido:\n  %s", strings.Join(problems, "\n  "))
			}
			r, p, v := cat.summary()
			fmt.Fprintf(c.App.Writer, "Catálogo válido: %d regiones, %d productos, %d variantes\n", r, p, v)
			return nil
		},
	}
}

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Escribe el script SQL de carga",
		Flags: []cli.Flag{
			inFlag(),
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Ruta del script de salida (por defecto migrations/002_seed_catalog.sql del módulo)",
			},
			&cli.BoolFlag{
				Name:  "skip-validation",
				Usage: "Genera aunque el catálogo tenga problemas",
			},
		},
		Action: func(c *cli.Context) error {
			in := c.String("in")
			cat, err := loadCatalog(in)
			if err != nil {
				return err
			}
			if !c.Bool("skip-validation") {
				if problems := cat.validate(); len(problems) > 0 {
					return fmt.Errorf("catálogo inválido:\n  %s", strings.Join(problems, "\n  "))
				}
			}

			outPath := c.String("out")
			if outPath == "" {
				outPath = filepath.Join(findModuleRoot(), "migrations", "002_seed_catalog.sql")
			}
			out, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("crear archivo: %w", err)
			}
			defer out.Close()

			if err := cat.writeSQL(out, filepath.Base(in)); err != nil {
				return fmt.Errorf("escribir SQL: %w", err)
			}
			r, p, v := cat.summary()
			fmt.Fprintf(c.App.Writer, "Generado %s: %d regiones, %d productos, %d variantes\n", outPath, r, p, v)
			return nil
		},
	}
}

func loadCatalog(path string) (*catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abrir catálogo: %w", err)
	}
	defer f.Close()
	return decodeCatalog(f)
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}

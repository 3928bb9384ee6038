// Command token emite un JWT de desarrollo para probar la API con JWT_SECRET configurado.
//
//	go run ./cmd/token -role manager -user ana
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/inventario-dashboard/pkg/config"
	"github.com/jhoicas/inventario-dashboard/pkg/jwt"
)

func main() {
	role := flag.String("role", jwt.RoleAdmin, "rol: admin | manager | viewer")
	user := flag.String("user", "dev", "id del usuario")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	if !cfg.JWT.Enabled() {
		fmt.Fprintln(os.Stderr, "JWT_SECRET no configurado: la API no requiere token")
		os.Exit(1)
	}
	switch *role {
	case jwt.RoleAdmin, jwt.RoleManager, jwt.RoleViewer:
	default:
		fmt.Fprintf(os.Stderr, "rol desconocido %q\n", *role)
		os.Exit(2)
	}

	tok, err := jwt.Generate(cfg.JWT.Secret, *user, *role, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		fmt.Fprintln(os.Stderr, "generar token:", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}

// packctl ejecuta sin base de datos las mismas reglas de empaque que la API:
// tara estimada, máximo de paquetes y validación de un borrador completo.
//
// Uso:
//
//	packctl tare --type pouch --size 500 --unit gm
//	packctl max-packets --stored-kg 120 --type bag --size 1 --unit kg
//	packctl validate borrador.json
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		if !errors.Is(err, errPlanRejected) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

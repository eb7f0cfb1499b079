// cmd/genhash/main.go — imprime el hash bcrypt de una clave.
// Uso: go run cmd/genhash/main.go <clave>
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	clave := "tayta2026"
	if len(os.Args) > 1 {
		clave = os.Args[1]
	}
	h, err := bcrypt.GenerateFromPassword([]byte(clave), 12)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(h))
}

// Command hashgen prints a bcrypt hash for an admin password.
//
// Usage: hashgen <password>
//
// Paste the output into ADMIN_PASSWORD_HASHES as "email:hash" to onboard
// an admin; there is no in-band flow that creates one.
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashgen <password>")
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash password: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(hash))
}

package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// mkpasswd generates the bcrypt hash an accounts file entry needs.
func main() {
	password := flag.String("password", "", "Password to hash (required)")
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost factor")
	outputYAML := flag.Bool("yaml", false, "Output a ready-to-paste accounts entry")
	id := flag.String("id", "usr-1", "Member ID for the -yaml entry")
	email := flag.String("email", "member@devcell.club", "Email for the -yaml entry")
	name := flag.String("name", "New Member", "Name for the -yaml entry")
	role := flag.String("role", "member", "Role for the -yaml entry")

	flag.Parse()

	if *password == "" {
		fmt.Fprintln(os.Stderr, "Usage: mkpasswd -password <password> [-yaml]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), *cost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error hashing password: %v\n", err)
		os.Exit(1)
	}

	if *outputYAML {
		entry := map[string]any{
			"accounts": []map[string]string{
				{
					"id":            *id,
					"email":         *email,
					"name":          *name,
					"role":          *role,
					"password_hash": string(hash),
				},
			},
		}
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(entry); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding entry: %v\n", err)
			os.Exit(1)
		}
		_ = enc.Close()
		return
	}

	fmt.Println(string(hash))
}

package service

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// SeedAccount is one entry of the accounts file. There is no member
// database; the club roster is seeded from YAML at startup.
type SeedAccount struct {
	ID           string `yaml:"id"`
	Email        string `yaml:"email"`
	Name         string `yaml:"name"`
	Role         string `yaml:"role"`
	PasswordHash string `yaml:"password_hash"`
}

type accountsFile struct {
	Accounts []SeedAccount `yaml:"accounts"`
}

// LoadAccounts reads the roster from a YAML file:
//
//	accounts:
//	  - id: usr-1
//	    email: asha@example.com
//	    name: Asha Verma
//	    role: member
//	    password_hash: $2a$12$...
//
// Hashes are bcrypt, generated with cmd/mkpasswd.
func LoadAccounts(path string) ([]SeedAccount, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read accounts file: %w", err)
	}

	var f accountsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse accounts file: %w", err)
	}

	for i, a := range f.Accounts {
		if a.ID == "" || a.Email == "" || a.PasswordHash == "" {
			return nil, fmt.Errorf("account %d: id, email and password_hash are required", i)
		}
	}

	return f.Accounts, nil
}

// DevAccounts returns a built-in roster for development, used when no
// accounts file is configured. The password for every account is
// "portal-dev".
func DevAccounts() []SeedAccount {
	hash, err := bcrypt.GenerateFromPassword([]byte("portal-dev"), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("service: hash dev password: %v", err))
	}

	return []SeedAccount{
		{
			ID:           "usr-dev-1",
			Email:        "asha@devcell.club",
			Name:         "Asha Verma",
			Role:         "member",
			PasswordHash: string(hash),
		},
		{
			ID:           "usr-dev-2",
			Email:        "lead@devcell.club",
			Name:         "Club Lead",
			Role:         "admin",
			PasswordHash: string(hash),
		},
	}
}

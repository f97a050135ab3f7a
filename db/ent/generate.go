package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

// Generates the ent client into gen/ent. Run from the repo root:
//
//	go run ./db/ent
func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/chartpull/clinical-features/gen/ent",
			Schema:  "github.com/chartpull/clinical-features/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}

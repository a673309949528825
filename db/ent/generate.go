// Regenerates the ent client under gen/ent from the schemas in ./schema.
// Run from the repository root: go run ./db/ent
package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "./gen/ent",
			Package: "github.com/fiscaldata/nf-extractor/gen/ent",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}

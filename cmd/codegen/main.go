package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/slotparty/slotparty/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const arityCountKey = "count"

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the fixed-arity signal wrappers",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityCountKey,
				Usage: "Highest argument count to generate wrappers for",
				Value: 4,
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for slot started")
	defer func() {
		log.Printf("Codegen for slot finished in %v", time.Since(start))
	}()

	count := cmd.Uint(arityCountKey)
	log.Printf("Max arity: %d", count)

	contents := templates.ArityGen(int(count))
	return os.WriteFile("slot/arity.go", []byte(contents), 0644)
}

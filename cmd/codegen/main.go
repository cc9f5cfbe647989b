package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/tchw/lftree/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	arityCountKey = "count"
	outPathKey    = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "codegen",
		Usage: "Generate the fixed-arity bind/alt combinator API",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityCountKey,
				Usage: "Highest combinator arity to generate",
				Value: 8,
			},
			&cli.StringFlag{
				Name:  outPathKey,
				Usage: "File the generated combinators are written to",
				Value: "future/combinators.go",
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
	log.Printf("Codegen for combinators started")
	defer func() {
		log.Printf("Codegen for combinators finished in %v", time.Since(start))
	}()

	arities := int(cmd.Uint(arityCountKey))
	log.Printf("Generating arities 1..%d", arities)

	contents := templates.CombinatorsGen(arities)
	return os.WriteFile(cmd.String(outPathKey), []byte(contents), 0644)
}

package main

import (
	"os"
	"reflect"
	"strings"

	musgen "github.com/mus-format/musgen-go/mus"
	genops "github.com/mus-format/musgen-go/options/generate"
	structops "github.com/mus-format/musgen-go/options/struct"
	typeops "github.com/mus-format/musgen-go/options/type"
	"github.com/poiesic/recall/core"
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	// If we're in the core subpackage, cd up to project root
	if strings.HasSuffix(cwd, "core") {
		if err := os.Chdir(".."); err != nil {
			panic(err)
		}
	}
	g, err := musgen.NewCodeGenerator(
		genops.WithPkgPath("github.com/poiesic/recall/core"),
	)
	if err != nil {
		panic(err)
	}

	g.AddDefinedType(reflect.TypeFor[core.ID]())
	g.AddDefinedType(reflect.TypeFor[core.ItemType]())
	g.AddDefinedType(reflect.TypeFor[core.ProcessingStatus]())

	// Unix micro timestamps
	opts := typeops.WithTimeUnit(typeops.Micro)

	err = g.AddStruct(reflect.TypeFor[core.SiteMetadata](),
		structops.WithField(),
		structops.WithField())
	if err != nil {
		panic(err)
	}

	err = g.AddStruct(reflect.TypeFor[core.Item](),
		structops.WithField(), // Id
		structops.WithField(), // OwnerId
		structops.WithField(), // Type
		structops.WithField(), // Title
		structops.WithField(), // Content
		structops.WithField(), // Link
		structops.WithField(), // Tags
		structops.WithField(), // Summary
		structops.WithField(), // Keywords
		structops.WithField(), // Embedding
		structops.WithField(), // Site
		structops.WithField(), // Status
		structops.WithField(), // StatusError
		structops.WithField(opts), // CreatedAt
		structops.WithField(opts)) // UpdatedAt
	if err != nil {
		panic(err)
	}

	bs, err := g.Generate()
	if err != nil {
		panic(err)
	}

	err = os.WriteFile("./core/items_mus.gen.go", bs, 0644)
	if err != nil {
		panic(err)
	}
}

package main

import (
	"fmt"

	"ecsreg/ecs"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Position and Velocity stand in for the kind of component types a
// host embeds; the registry itself never cares what T is beyond its
// type identity.
type Position struct{ X, Y float64 }
type Velocity struct{ DX, DY float64 }

type Name string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scripted walkthrough of the registry",
	Run: func(cmd *cobra.Command, args []string) {
		runWalkthrough()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runWalkthrough() {
	section := color.New(color.FgCyan, color.Bold)
	ok := color.New(color.FgGreen)
	info := color.New(color.FgYellow)

	r := ecs.NewRegistry()

	section.Println("== basic lifecycle ==")
	hero := r.CreateEntity()
	ecs.Emplace(r, hero, Position{1, 2})
	ecs.Emplace(r, hero, Velocity{0.5, -0.5})
	ecs.Emplace(r, hero, Name("hero"))
	info.Printf("created entity %d with Position, Velocity, Name\n", hero)
	ok.Printf("has<Position>: %v  get<Position>: %+v\n", ecs.Has[Position](r, hero), *ecs.Get[Position](r, hero))

	destroyed := r.DestroyEntity(hero)
	ok.Printf("destroy_entity returned %v; has<Position> now %v\n", destroyed, ecs.Has[Position](r, hero))

	section.Println("\n== reserve / instantiate split ==")
	pending := r.ReserveEntity()
	info.Printf("reserved id %d; has_entity: %v\n", pending, r.HasEntity(pending))
	r.InstantiateEntity(pending)
	ok.Printf("instantiated id %d; has_entity: %v\n", pending, r.HasEntity(pending))

	section.Println("\n== view over (Position, Velocity) with a Name filter ==")
	still := r.CreateEntity()
	ecs.Emplace(r, still, Position{10, 10})
	ecs.Emplace(r, still, Velocity{0, 0})

	moving := r.CreateEntity()
	ecs.Emplace(r, moving, Position{0, 0})
	ecs.Emplace(r, moving, Velocity{1, 1})
	ecs.Emplace(r, moving, Name("moving"))

	nameFilter := ecs.ComponentType[Name]()
	v := ecs.NewView2[Position, Velocity](r, nameFilter)
	for v.Next() {
		e := v.Entity()
		p, vel := v.Get()
		fmt.Printf("  entity %d: pos=%+v vel=%+v\n", e, *p, *vel)
	}
}
